package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostStatus tracks where a post is in its lifecycle. Posts are always
// created as draft; nothing in the data layer restricts later writes.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPosted    PostStatus = "posted"
	PostStatusFailed    PostStatus = "failed"
)

// PostStatuses lists every known post status id.
var PostStatuses = []PostStatus{
	PostStatusDraft,
	PostStatusScheduled,
	PostStatusPosted,
	PostStatusFailed,
}

// IsValid reports whether s is a member of the known status set.
func (s PostStatus) IsValid() bool {
	for _, known := range PostStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Post struct {
	ID          string      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      string      `gorm:"type:varchar(36);not null;index" json:"userId"`
	Content     string      `gorm:"type:text;not null" json:"content"`
	MediaURLs   StringSlice `gorm:"type:text" json:"mediaUrls"`
	Platforms   StringSlice `gorm:"type:text;not null" json:"platforms"`
	Status      PostStatus  `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	ScheduledAt *time.Time  `json:"scheduledAt"`
	PublishedAt *time.Time  `json:"publishedAt"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// BeforeCreate assigns a generated ID when none was supplied.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
