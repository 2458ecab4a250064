package models

import "time"

// SkillCategory groups skills under a named heading with an icon. Deleting a
// category removes its skills as well.
type SkillCategory struct {
	ID        int       `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null" validate:"required"`
	Icon      string    `json:"icon" db:"icon" gorm:"type:text;not null" validate:"required"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	Skills []Skill `json:"skills,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
}

// Skill is a single proficiency entry belonging to a SkillCategory.
type Skill struct {
	ID         int       `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	CategoryID int       `json:"categoryId" db:"category_id" gorm:"not null;index:idx_skill_category_id" validate:"required"`
	Name       string    `json:"name" db:"name" gorm:"type:text;not null" validate:"required"`
	Level      string    `json:"level" db:"level" gorm:"type:text;not null" validate:"required,oneof=Expert Advanced Intermediate Learning"`
	Percentage int       `json:"percentage" db:"percentage" gorm:"not null" validate:"min=0,max=100"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
