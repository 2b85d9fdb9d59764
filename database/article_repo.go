package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dalemartenxen/PECE-Portfolio/models"
)

type ArticleRepo struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) *ArticleRepo {
	return &ArticleRepo{db}
}

// FindAll returns all articles, newest first
func (r *ArticleRepo) FindAll() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Order("created_at DESC").Find(&articles).Error
	return articles, err
}

// FindByID returns an article by its ID, or nil when absent
func (r *ArticleRepo) FindByID(id string) (*models.Article, error) {
	var article models.Article
	err := r.db.First(&article, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Add inserts a new article into the database
func (r *ArticleRepo) Add(article *models.Article) error {
	return r.db.Create(article).Error
}
