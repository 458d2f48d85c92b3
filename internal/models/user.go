package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName  *string   `gorm:"type:varchar(255)" json:"fullName"`
	AvatarURL *string   `gorm:"type:text" json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations
	Posts          []Post          `gorm:"foreignKey:UserID" json:"-"`
	SocialAccounts []SocialAccount `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate assigns a generated ID when none was supplied.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
