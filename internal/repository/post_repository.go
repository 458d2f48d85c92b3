package repository

import (
	"time"

	"github.com/postpilot/social-scheduler-api/internal/database"
	"github.com/postpilot/social-scheduler-api/internal/models"
	"github.com/postpilot/social-scheduler-api/internal/utils"
	"gorm.io/gorm"
)

// GormPostRepository is a GORM implementation of PostRepository
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &GormPostRepository{db: db}
}

// Create creates a new post
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// FindByID finds a post by ID
func (r *GormPostRepository) FindByID(id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListByUser retrieves a user's posts, newest created first
func (r *GormPostRepository) ListByUser(userID string, params *utils.PaginationParams) ([]models.Post, error) {
	var posts []models.Post
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if params != nil {
		query = query.Scopes(database.Paginate(*params))
	}
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByUserAndStatus retrieves a user's posts in the given status, newest created first
func (r *GormPostRepository) ListByUserAndStatus(userID string, status models.PostStatus, params *utils.PaginationParams) ([]models.Post, error) {
	var posts []models.Post
	query := r.db.Where("user_id = ? AND status = ?", userID, status).Order("created_at DESC")
	if params != nil {
		query = query.Scopes(database.Paginate(*params))
	}
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Update applies the given column changes and returns the updated post.
// updated_at refreshes on every call, even an otherwise-empty change set.
func (r *GormPostRepository) Update(id string, changes map[string]interface{}) (*models.Post, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	for column, value := range changes {
		updates[column] = value
	}

	tx := r.db.Model(&models.Post{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.FindByID(id)
}

// Delete removes a post and reports whether a row existed
func (r *GormPostRepository) Delete(id string) (bool, error) {
	tx := r.db.Where("id = ?", id).Delete(&models.Post{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
