package database

import (
	"errors"

	"github.com/saadtahsin/portfolio-backend/models"
	"gorm.io/gorm"
)

type EcaRepo struct {
	db *gorm.DB
}

func NewEcaRepo(db *gorm.DB) *EcaRepo {
	return &EcaRepo{db}
}

// FindAll returns all ECAs from the database
func (r *EcaRepo) FindAll() ([]*models.Eca, error) {
	var ecas []*models.Eca
	err := r.db.Find(&ecas).Error
	return ecas, err
}

// FindByID returns an ECA by its ID, or nil when no row matches
func (r *EcaRepo) FindByID(id int) (*models.Eca, error) {
	var eca models.Eca
	err := r.db.First(&eca, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &eca, nil
}

// Add inserts a new ECA into the database
func (r *EcaRepo) Add(eca *models.Eca) error {
	return r.db.Create(eca).Error
}

// Update updates an existing ECA in the database
func (r *EcaRepo) Update(eca *models.Eca) error {
	return r.db.Save(eca).Error
}

// Delete removes an ECA from the database by id
func (r *EcaRepo) Delete(id int) error {
	return r.db.Delete(&models.Eca{}, id).Error
}
