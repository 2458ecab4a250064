package database

import (
	"errors"

	"github.com/saadtahsin/portfolio-backend/models"
	"gorm.io/gorm"
)

// ContactMessageRepo is intentionally append-and-read only: messages are
// never updated or deleted through the API.
type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// FindAll returns all contact messages from the database
func (r *ContactMessageRepo) FindAll() ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage
	err := r.db.Find(&messages).Error
	return messages, err
}

// FindByID returns a contact message by its ID, or nil when no row matches
func (r *ContactMessageRepo) FindByID(id int) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.First(&message, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// Add inserts a new contact message into the database
func (r *ContactMessageRepo) Add(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}
