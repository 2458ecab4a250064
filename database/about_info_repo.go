package database

import (
	"errors"
	"time"

	"github.com/saadtahsin/portfolio-backend/models"
	"gorm.io/gorm"
)

type AboutInfoRepo struct {
	db *gorm.DB
}

func NewAboutInfoRepo(db *gorm.DB) *AboutInfoRepo {
	return &AboutInfoRepo{db}
}

// First returns the singleton about-info row, or nil when none exists yet
func (r *AboutInfoRepo) First() (*models.AboutInfo, error) {
	var info models.AboutInfo
	err := r.db.Order("id").First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Add inserts the about-info row into the database
func (r *AboutInfoRepo) Add(info *models.AboutInfo) error {
	return r.db.Create(info).Error
}

// Update updates the about-info row and bumps its updatedAt timestamp
func (r *AboutInfoRepo) Update(info *models.AboutInfo) error {
	info.UpdatedAt = time.Now().UTC()
	return r.db.Save(info).Error
}
