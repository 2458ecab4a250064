package models

import "time"

// Project represents a portfolio project shown on the Projects page.
// Category is an open string; the site currently uses fullstack, backend,
// frontend and data.
type Project struct {
	ID           int        `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title        string     `json:"title" db:"title" gorm:"type:text;not null" validate:"required"`
	Description  string     `json:"description" db:"description" gorm:"type:text;not null" validate:"required"`
	Technologies StringList `json:"technologies" db:"technologies" gorm:"type:text;not null" validate:"required,min=1"`
	Category     string     `json:"category" db:"category" gorm:"type:text;not null" validate:"required"`
	GithubURL    *string    `json:"githubUrl,omitempty" db:"github_url" gorm:"type:text"`
	LiveURL      *string    `json:"liveUrl,omitempty" db:"live_url" gorm:"type:text"`
	DocsURL      *string    `json:"docsUrl,omitempty" db:"docs_url" gorm:"type:text"`
	ImageURL     string     `json:"imageUrl" db:"image_url" gorm:"type:text;not null" validate:"required"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
