package models

import "time"

// AdditionalSkill is a flat tag shown in the "also familiar with" list,
// independent of any SkillCategory.
type AdditionalSkill struct {
	ID        int       `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null" validate:"required"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
