package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SocialAccount struct {
	ID               string     `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID           string     `gorm:"type:varchar(36);not null;index" json:"userId"`
	Platform         Platform   `gorm:"type:varchar(20);not null" json:"platform"`
	PlatformUsername string     `gorm:"type:varchar(255);not null" json:"platformUsername"`
	IsConnected      bool       `gorm:"default:true" json:"isConnected"`
	AccessToken      *string    `gorm:"type:text" json:"accessToken"`
	RefreshToken     *string    `gorm:"type:text" json:"refreshToken"`
	ConnectedAt      *time.Time `json:"connectedAt"`
}

// BeforeCreate assigns a generated ID when none was supplied.
func (a *SocialAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
