//go:generate mockery --name TokenRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_quiz_keep/internal/middleware"
	"go_5_quiz_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TokenRepository interface {
	Create(ctx context.Context, db *gorm.DB, token *model.MagicLinkToken) error
	FindByID(ctx context.Context, db *gorm.DB, tokenID uuid.UUID) (*model.MagicLinkToken, error)
	Delete(ctx context.Context, db *gorm.DB, tokenID uuid.UUID) error
}

type gormTokenRepository struct{}

func NewGormTokenRepository() TokenRepository {
	return &gormTokenRepository{}
}

func (r *gormTokenRepository) Create(ctx context.Context, db *gorm.DB, token *model.MagicLinkToken) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(token).Error; err != nil {
		logger.Error("Failed to create magic link token", "error", err)
		return fmt.Errorf("gormTokenRepository.Create: %w", err)
	}
	return nil
}

func (r *gormTokenRepository) FindByID(ctx context.Context, db *gorm.DB, tokenID uuid.UUID) (*model.MagicLinkToken, error) {
	logger := middleware.GetLogger(ctx)
	var token model.MagicLinkToken
	if err := db.WithContext(ctx).Where("id = ?", tokenID).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Failed to find magic link token", "error", err)
		return nil, fmt.Errorf("gormTokenRepository.FindByID: %w", err)
	}
	return &token, nil
}

// Delete は使用済み・期限切れのトークンを削除します。存在しなくてもエラーにしない
func (r *gormTokenRepository) Delete(ctx context.Context, db *gorm.DB, tokenID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("id = ?", tokenID).Delete(&model.MagicLinkToken{})
	if result.Error != nil {
		logger.Error("Failed to delete magic link token", "error", result.Error)
		return fmt.Errorf("gormTokenRepository.Delete: %w", result.Error)
	}
	return nil
}
