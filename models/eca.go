package models

import "time"

// Eca is an extracurricular activity shown on the ECA page.
type Eca struct {
	ID           int       `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title        string    `json:"title" db:"title" gorm:"type:text;not null" validate:"required"`
	Organization string    `json:"organization" db:"organization" gorm:"type:text;not null" validate:"required"`
	Role         string    `json:"role" db:"role" gorm:"type:text;not null" validate:"required"`
	Description  string    `json:"description" db:"description" gorm:"type:text;not null" validate:"required"`
	StartDate    string    `json:"startDate" db:"start_date" gorm:"type:text;not null" validate:"required"`
	EndDate      *string   `json:"endDate,omitempty" db:"end_date" gorm:"type:text"`
	ImageURL     *string   `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
