package database

import (
	"errors"

	"github.com/saadtahsin/portfolio-backend/models"
	"gorm.io/gorm"
)

type SkillCategoryRepo struct {
	db *gorm.DB
}

func NewSkillCategoryRepo(db *gorm.DB) *SkillCategoryRepo {
	return &SkillCategoryRepo{db}
}

// FindAll returns all skill categories with their skills preloaded
func (r *SkillCategoryRepo) FindAll() ([]*models.SkillCategory, error) {
	var categories []*models.SkillCategory
	err := r.db.Preload("Skills").Find(&categories).Error
	return categories, err
}

// FindByID returns a skill category by its ID, or nil when no row matches
func (r *SkillCategoryRepo) FindByID(id int) (*models.SkillCategory, error) {
	var category models.SkillCategory
	err := r.db.Preload("Skills").First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Add inserts a new skill category into the database
func (r *SkillCategoryRepo) Add(category *models.SkillCategory) error {
	return r.db.Create(category).Error
}

// Update updates an existing skill category in the database
func (r *SkillCategoryRepo) Update(category *models.SkillCategory) error {
	return r.db.Save(category).Error
}

// Delete removes a skill category and its skills by id. Both deletes run in
// one transaction so a crash cannot leave orphaned skill rows behind.
func (r *SkillCategoryRepo) Delete(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.Skill{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SkillCategory{}, id).Error
	})
}
