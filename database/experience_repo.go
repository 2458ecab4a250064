package database

import (
	"errors"

	"github.com/saadtahsin/portfolio-backend/models"
	"gorm.io/gorm"
)

type ExperienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) *ExperienceRepo {
	return &ExperienceRepo{db}
}

// FindAll returns all experiences ordered by their display sequence
func (r *ExperienceRepo) FindAll() ([]*models.Experience, error) {
	var experiences []*models.Experience
	err := r.db.Order("display_order").Find(&experiences).Error
	return experiences, err
}

// FindByID returns an experience by its ID, or nil when no row matches
func (r *ExperienceRepo) FindByID(id int) (*models.Experience, error) {
	var experience models.Experience
	err := r.db.First(&experience, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

// Add inserts a new experience into the database
func (r *ExperienceRepo) Add(experience *models.Experience) error {
	return r.db.Create(experience).Error
}

// Update updates an existing experience in the database
func (r *ExperienceRepo) Update(experience *models.Experience) error {
	return r.db.Save(experience).Error
}

// Delete removes an experience from the database by id
func (r *ExperienceRepo) Delete(id int) error {
	return r.db.Delete(&models.Experience{}, id).Error
}
