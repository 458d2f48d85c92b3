package repository

import (
	"github.com/postpilot/social-scheduler-api/internal/models"
	"gorm.io/gorm"
)

// GormSocialAccountRepository is a GORM implementation of SocialAccountRepository
type GormSocialAccountRepository struct {
	db *gorm.DB
}

// NewSocialAccountRepository creates a new SocialAccountRepository
func NewSocialAccountRepository(db *gorm.DB) SocialAccountRepository {
	return &GormSocialAccountRepository{db: db}
}

// Create creates a new social account
func (r *GormSocialAccountRepository) Create(account *models.SocialAccount) error {
	return r.db.Create(account).Error
}

// FindByID finds a social account by ID
func (r *GormSocialAccountRepository) FindByID(id string) (*models.SocialAccount, error) {
	var account models.SocialAccount
	if err := r.db.Where("id = ?", id).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// ListByUser retrieves all of a user's social accounts
func (r *GormSocialAccountRepository) ListByUser(userID string) ([]models.SocialAccount, error) {
	var accounts []models.SocialAccount
	if err := r.db.Where("user_id = ?", userID).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// FindByUserAndPlatform finds a user's account for the given platform
func (r *GormSocialAccountRepository) FindByUserAndPlatform(userID string, platform models.Platform) (*models.SocialAccount, error) {
	var account models.SocialAccount
	if err := r.db.Where("user_id = ? AND platform = ?", userID, platform).
		First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// Update applies the given column changes and returns the updated account
func (r *GormSocialAccountRepository) Update(id string, changes map[string]interface{}) (*models.SocialAccount, error) {
	if len(changes) > 0 {
		tx := r.db.Model(&models.SocialAccount{}).Where("id = ?", id).Updates(changes)
		if tx.Error != nil {
			return nil, tx.Error
		}
		if tx.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.FindByID(id)
}

// Delete removes a social account and reports whether a row existed
func (r *GormSocialAccountRepository) Delete(id string) (bool, error) {
	tx := r.db.Where("id = ?", id).Delete(&models.SocialAccount{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
