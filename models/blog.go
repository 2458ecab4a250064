package models

import "time"

// Blog is an external blog post link, typically pointing at Medium.
type Blog struct {
	ID            int       `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title         string    `json:"title" db:"title" gorm:"type:text;not null" validate:"required"`
	Description   string    `json:"description" db:"description" gorm:"type:text;not null" validate:"required"`
	MediumURL     string    `json:"mediumUrl" db:"medium_url" gorm:"type:text;not null" validate:"required,url"`
	ImageURL      *string   `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	PublishedDate *string   `json:"publishedDate,omitempty" db:"published_date" gorm:"type:text"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
