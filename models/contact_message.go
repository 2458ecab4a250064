package models

import "time"

// ContactMessage is a visitor submission from the contact form. Messages are
// only ever created and read; there is no update or delete path.
type ContactMessage struct {
	ID        int       `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null" validate:"required"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null" validate:"required,email"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null" validate:"required"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
