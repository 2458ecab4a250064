package models

import "time"

// Experience is a work/learning experience card. DisplayOrder controls the
// sequence on the About page; "order" is kept out of the column name because
// it is an SQL keyword.
type Experience struct {
	ID           int       `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Role         string    `json:"role" db:"role" gorm:"type:text;not null" validate:"required"`
	Duration     string    `json:"duration" db:"duration" gorm:"type:text;not null" validate:"required"`
	Description  string    `json:"description" db:"description" gorm:"type:text;not null" validate:"required"`
	DisplayOrder int       `json:"order" db:"display_order" gorm:"column:display_order;not null;default:0"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
