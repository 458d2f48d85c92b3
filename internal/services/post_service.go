package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/postpilot/social-scheduler-api/internal/models"
	"github.com/postpilot/social-scheduler-api/internal/repository"
	"github.com/postpilot/social-scheduler-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrEmptyContent    = errors.New("content is required")
	ErrNoPlatforms     = errors.New("at least one platform is required")
	ErrUnknownPlatform = errors.New("unknown platform")
	ErrUnknownStatus   = errors.New("unknown status")
)

// PostService handles post lifecycle business logic.
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
	}
}

// CreatePostInput represents the caller-controlled fields of a new post.
// Status, publish timestamps, and ids are server-controlled.
type CreatePostInput struct {
	Content     string
	MediaURLs   []string
	Platforms   []string
	ScheduledAt *time.Time
}

// Create stores a new post. Status is always draft on creation, whatever
// the request carried, and mediaUrls defaults to an empty list.
func (s *PostService) Create(userID string, input CreatePostInput) (*models.Post, error) {
	if input.Content == "" {
		return nil, ErrEmptyContent
	}
	if err := validatePlatforms(input.Platforms); err != nil {
		return nil, err
	}

	mediaURLs := input.MediaURLs
	if mediaURLs == nil {
		mediaURLs = []string{}
	}

	post := &models.Post{
		UserID:      userID,
		Content:     input.Content,
		MediaURLs:   models.StringSlice(mediaURLs),
		Platforms:   models.StringSlice(input.Platforms),
		Status:      models.PostStatusDraft,
		ScheduledAt: input.ScheduledAt,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// List retrieves a user's posts, newest first, optionally filtered by status.
func (s *PostService) List(userID string, status string, params *utils.PaginationParams) ([]models.Post, error) {
	if status != "" {
		postStatus := models.PostStatus(status)
		if !postStatus.IsValid() {
			return nil, ErrUnknownStatus
		}
		return s.postRepo.ListByUserAndStatus(userID, postStatus, params)
	}
	return s.postRepo.ListByUser(userID, params)
}

// Get retrieves a post by ID.
func (s *PostService) Get(id string) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return post, nil
}

// UpdatePostInput carries a partial update. Nil fields were not supplied
// and keep their stored values; ScheduledAtSet distinguishes "clear the
// schedule" from "leave it alone".
type UpdatePostInput struct {
	Content        *string
	MediaURLs      *[]string
	Platforms      *[]string
	ScheduledAt    *time.Time
	ScheduledAtSet bool
}

// Update merges the supplied fields into a post. Only content, mediaUrls,
// platforms, and scheduledAt are caller-updatable; updatedAt refreshes on
// every call.
func (s *PostService) Update(id string, input UpdatePostInput) (*models.Post, error) {
	changes := map[string]interface{}{}

	if input.Content != nil {
		if *input.Content == "" {
			return nil, ErrEmptyContent
		}
		changes["content"] = *input.Content
	}
	if input.MediaURLs != nil {
		changes["media_urls"] = models.StringSlice(*input.MediaURLs)
	}
	if input.Platforms != nil {
		if err := validatePlatforms(*input.Platforms); err != nil {
			return nil, err
		}
		changes["platforms"] = models.StringSlice(*input.Platforms)
	}
	if input.ScheduledAtSet {
		changes["scheduled_at"] = input.ScheduledAt
	}

	post, err := s.postRepo.Update(id, changes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// Delete removes a post. Returns ErrPostNotFound when no row existed.
func (s *PostService) Delete(id string) error {
	removed, err := s.postRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if !removed {
		return ErrPostNotFound
	}
	return nil
}

func validatePlatforms(platforms []string) error {
	if len(platforms) == 0 {
		return ErrNoPlatforms
	}
	for _, p := range platforms {
		if !models.Platform(p).IsValid() {
			return fmt.Errorf("%w: %s", ErrUnknownPlatform, p)
		}
	}
	return nil
}
