package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile はマジックリンクで作成されるユーザー
type UserProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

type CheckAdminResponse struct {
	IsAdmin bool `json:"isAdmin"`
}
