package users

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       string `gorm:"type:uuid;primaryKey"`
	Username string `gorm:"not null;uniqueIndex:idx_users_username"`
	Email    string `gorm:"not null;uniqueIndex:idx_users_email"`

	// bcrypt hash; also part of the password reset signing secret
	Password string `gorm:"not null"`

	ShowName    string `gorm:"column:show_name"`
	ContactInfo string `gorm:"column:contact_info"`
	CustomTable string `gorm:"column:custom_table"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// DisplayName falls back to the username when no show name was set.
func (u User) DisplayName() string {
	if u.ShowName != "" {
		return u.ShowName
	}
	return u.Username
}
