package database

import (
	"gorm.io/gorm"

	"github.com/dalemartenxen/PECE-Portfolio/models"
)

type ContactSubmissionRepo struct {
	db *gorm.DB
}

func NewContactSubmissionRepo(db *gorm.DB) *ContactSubmissionRepo {
	return &ContactSubmissionRepo{db}
}

// FindAll returns all contact submissions, newest first
func (r *ContactSubmissionRepo) FindAll() ([]models.ContactSubmission, error) {
	var submissions []models.ContactSubmission
	err := r.db.Order("created_at DESC").Find(&submissions).Error
	return submissions, err
}

// Add inserts a new contact submission into the database
func (r *ContactSubmissionRepo) Add(submission *models.ContactSubmission) error {
	return r.db.Create(submission).Error
}
