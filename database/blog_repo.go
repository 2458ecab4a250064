package database

import (
	"errors"

	"github.com/saadtahsin/portfolio-backend/models"
	"gorm.io/gorm"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// FindAll returns all blogs from the database
func (r *BlogRepo) FindAll() ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.Find(&blogs).Error
	return blogs, err
}

// FindByID returns a blog by its ID, or nil when no row matches
func (r *BlogRepo) FindByID(id int) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.First(&blog, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// Add inserts a new blog into the database
func (r *BlogRepo) Add(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

// Update updates an existing blog in the database
func (r *BlogRepo) Update(blog *models.Blog) error {
	return r.db.Save(blog).Error
}

// Delete removes a blog from the database by id
func (r *BlogRepo) Delete(id int) error {
	return r.db.Delete(&models.Blog{}, id).Error
}
