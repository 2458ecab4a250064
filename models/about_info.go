package models

import "time"

// AboutInfo holds the About page copy. The site treats it as a singleton: the
// API always reads the first row and upserts into it rather than accumulating
// rows.
type AboutInfo struct {
	ID                int       `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Bio               string    `json:"bio" db:"bio" gorm:"type:text;not null" validate:"required"`
	Passion           string    `json:"passion" db:"passion" gorm:"type:text;not null" validate:"required"`
	YearsExperience   string    `json:"yearsExperience" db:"years_experience" gorm:"type:text;not null" validate:"required"`
	ProjectsCompleted string    `json:"projectsCompleted" db:"projects_completed" gorm:"type:text;not null" validate:"required"`
	AspirationLabel   string    `json:"aspirationLabel" db:"aspiration_label" gorm:"type:text;not null" validate:"required"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
