package repository

import (
	"github.com/postpilot/social-scheduler-api/internal/models"
	"github.com/postpilot/social-scheduler-api/internal/utils"
)

// UserRepository defines the interface for user data access.
// Lookups return gorm.ErrRecordNotFound when the id does not resolve.
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Update applies the given column changes and returns the updated user
	Update(id string, changes map[string]interface{}) (*models.User, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	// Create creates a new post
	Create(post *models.Post) error

	// FindByID finds a post by ID
	FindByID(id string) (*models.Post, error)

	// ListByUser retrieves a user's posts, newest created first. A nil
	// params returns the full result set.
	ListByUser(userID string, params *utils.PaginationParams) ([]models.Post, error)

	// ListByUserAndStatus retrieves a user's posts in the given status,
	// newest created first
	ListByUserAndStatus(userID string, status models.PostStatus, params *utils.PaginationParams) ([]models.Post, error)

	// Update applies the given column changes, refreshes updated_at, and
	// returns the updated post. No status-transition validation happens
	// here; any status value a caller writes is accepted as-is.
	Update(id string, changes map[string]interface{}) (*models.Post, error)

	// Delete removes a post and reports whether a row existed
	Delete(id string) (bool, error)
}

// SocialAccountRepository defines the interface for social account data access
type SocialAccountRepository interface {
	// Create creates a new social account
	Create(account *models.SocialAccount) error

	// FindByID finds a social account by ID
	FindByID(id string) (*models.SocialAccount, error)

	// ListByUser retrieves all of a user's social accounts
	ListByUser(userID string) ([]models.SocialAccount, error)

	// FindByUserAndPlatform finds a user's account for the given platform
	FindByUserAndPlatform(userID string, platform models.Platform) (*models.SocialAccount, error)

	// Update applies the given column changes and returns the updated account
	Update(id string, changes map[string]interface{}) (*models.SocialAccount, error)

	// Delete removes a social account and reports whether a row existed
	Delete(id string) (bool, error)
}
