package database

import (
	"errors"

	"github.com/saadtahsin/portfolio-backend/models"
	"gorm.io/gorm"
)

type AdditionalSkillRepo struct {
	db *gorm.DB
}

func NewAdditionalSkillRepo(db *gorm.DB) *AdditionalSkillRepo {
	return &AdditionalSkillRepo{db}
}

// FindAll returns all additional skills from the database
func (r *AdditionalSkillRepo) FindAll() ([]*models.AdditionalSkill, error) {
	var skills []*models.AdditionalSkill
	err := r.db.Find(&skills).Error
	return skills, err
}

// FindByID returns an additional skill by its ID, or nil when no row matches
func (r *AdditionalSkillRepo) FindByID(id int) (*models.AdditionalSkill, error) {
	var skill models.AdditionalSkill
	err := r.db.First(&skill, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Add inserts a new additional skill into the database
func (r *AdditionalSkillRepo) Add(skill *models.AdditionalSkill) error {
	return r.db.Create(skill).Error
}

// Delete removes an additional skill from the database by id
func (r *AdditionalSkillRepo) Delete(id int) error {
	return r.db.Delete(&models.AdditionalSkill{}, id).Error
}
