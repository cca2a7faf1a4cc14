package model

import (
	"time"

	"github.com/google/uuid"
)

// MagicLinkToken はログインリンク用のワンタイムトークン
// メールで送るトークンは "<ID>.<verifier>" で、DBには verifier の bcrypt ハッシュのみ保存する
type MagicLinkToken struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SecretHash string    `gorm:"not null"`
	ExpiresAt  time.Time `gorm:"not null"`
}

func (MagicLinkToken) TableName() string {
	return "magic_link_tokens"
}
