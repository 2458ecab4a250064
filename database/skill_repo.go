package database

import (
	"errors"

	"github.com/saadtahsin/portfolio-backend/models"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns all skills from the database
func (r *SkillRepo) FindAll() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Find(&skills).Error
	return skills, err
}

// FindByCategory returns the skills belonging to one category
func (r *SkillRepo) FindByCategory(categoryID int) ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Where("category_id = ?", categoryID).Find(&skills).Error
	return skills, err
}

// FindByID returns a skill by its ID, or nil when no row matches
func (r *SkillRepo) FindByID(id int) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Add inserts a new skill into the database
func (r *SkillRepo) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// Update updates an existing skill in the database
func (r *SkillRepo) Update(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

// Delete removes a skill from the database by id
func (r *SkillRepo) Delete(id int) error {
	return r.db.Delete(&models.Skill{}, id).Error
}
