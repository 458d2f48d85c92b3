package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/postpilot/social-scheduler-api/internal/models"
	"github.com/postpilot/social-scheduler-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound         = errors.New("social account not found")
	ErrMissingPlatformUsername = errors.New("platform username is required")
)

// SocialAccountService handles connected-account business logic.
type SocialAccountService struct {
	accountRepo repository.SocialAccountRepository
}

// NewSocialAccountService creates a new SocialAccountService.
func NewSocialAccountService(accountRepo repository.SocialAccountRepository) *SocialAccountService {
	return &SocialAccountService{
		accountRepo: accountRepo,
	}
}

// CreateAccountInput represents the caller-controlled fields of a new
// connection. Tokens and connection state are server-controlled.
type CreateAccountInput struct {
	Platform         string
	PlatformUsername string
}

// Create records a newly connected account as connected-now.
func (s *SocialAccountService) Create(userID string, input CreateAccountInput) (*models.SocialAccount, error) {
	platform := models.Platform(input.Platform)
	if !platform.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlatform, input.Platform)
	}
	if input.PlatformUsername == "" {
		return nil, ErrMissingPlatformUsername
	}

	now := time.Now()
	account := &models.SocialAccount{
		UserID:           userID,
		Platform:         platform,
		PlatformUsername: input.PlatformUsername,
		IsConnected:      true,
		ConnectedAt:      &now,
	}

	if err := s.accountRepo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create social account: %w", err)
	}

	return account, nil
}

// List retrieves a user's accounts, optionally narrowed to one platform.
func (s *SocialAccountService) List(userID string, platform string) ([]models.SocialAccount, error) {
	if platform != "" {
		p := models.Platform(platform)
		if !p.IsValid() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPlatform, platform)
		}
		account, err := s.accountRepo.FindByUserAndPlatform(userID, p)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []models.SocialAccount{}, nil
			}
			return nil, fmt.Errorf("failed to find social account: %w", err)
		}
		return []models.SocialAccount{*account}, nil
	}
	return s.accountRepo.ListByUser(userID)
}

// Get retrieves a social account by ID.
func (s *SocialAccountService) Get(id string) (*models.SocialAccount, error) {
	account, err := s.accountRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find social account: %w", err)
	}
	return account, nil
}

// UpdateAccountInput carries a partial update; nil fields keep their
// stored values.
type UpdateAccountInput struct {
	Platform         *string
	PlatformUsername *string
	IsConnected      *bool
}

// Update merges the supplied fields into an account.
func (s *SocialAccountService) Update(id string, input UpdateAccountInput) (*models.SocialAccount, error) {
	changes := map[string]interface{}{}

	if input.Platform != nil {
		platform := models.Platform(*input.Platform)
		if !platform.IsValid() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPlatform, *input.Platform)
		}
		changes["platform"] = platform
	}
	if input.PlatformUsername != nil {
		if *input.PlatformUsername == "" {
			return nil, ErrMissingPlatformUsername
		}
		changes["platform_username"] = *input.PlatformUsername
	}
	if input.IsConnected != nil {
		changes["is_connected"] = *input.IsConnected
	}

	account, err := s.accountRepo.Update(id, changes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to update social account: %w", err)
	}

	return account, nil
}

// Delete disconnects an account. Returns ErrAccountNotFound when no row
// existed.
func (s *SocialAccountService) Delete(id string) error {
	removed, err := s.accountRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete social account: %w", err)
	}
	if !removed {
		return ErrAccountNotFound
	}
	return nil
}
