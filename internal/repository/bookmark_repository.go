//go:generate mockery --name BookmarkRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_5_quiz_keep/internal/middleware"
	"go_5_quiz_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookmarkRepository interface {
	// Add は既に登録済みでもエラーにしません
	Add(ctx context.Context, db *gorm.DB, bookmark *model.Bookmark) error
	Delete(ctx context.Context, db *gorm.DB, userID uuid.UUID, questionID int) error
	ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Bookmark, error)
	QuestionIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]int, error)
}

type gormBookmarkRepository struct{}

func NewGormBookmarkRepository() BookmarkRepository {
	return &gormBookmarkRepository{}
}

func (r *gormBookmarkRepository) Add(ctx context.Context, db *gorm.DB, bookmark *model.Bookmark) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
			DoNothing: true,
		}).
		Create(bookmark)
	if result.Error != nil {
		// 同時リクエストで ON CONFLICT をすり抜けた場合も登録済みとして扱う
		if isUniqueViolation(result.Error) {
			logger.Debug("Bookmark already exists", "question_id", bookmark.QuestionID)
			return nil
		}
		logger.Error("Error adding bookmark in DB",
			"error", result.Error,
			"user_id", bookmark.UserID.String(),
			"question_id", bookmark.QuestionID,
		)
		return fmt.Errorf("gormBookmarkRepository.Add: %w", result.Error)
	}
	return nil
}

func (r *gormBookmarkRepository) Delete(ctx context.Context, db *gorm.DB, userID uuid.UUID, questionID int) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		Delete(&model.Bookmark{})
	if result.Error != nil {
		logger.Error("Error deleting bookmark in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"question_id", questionID,
		)
		return fmt.Errorf("gormBookmarkRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Debug("Bookmark not found for deletion (idempotent)", "question_id", questionID)
	}
	return nil
}

func (r *gormBookmarkRepository) ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Bookmark, error) {
	logger := middleware.GetLogger(ctx)
	bookmarks := []*model.Bookmark{}
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&bookmarks).Error
	if err != nil {
		logger.Error("Error listing bookmarks in DB", "error", err, "user_id", userID.String())
		return nil, fmt.Errorf("gormBookmarkRepository.ListByUser: %w", err)
	}
	return bookmarks, nil
}

func (r *gormBookmarkRepository) QuestionIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]int, error) {
	logger := middleware.GetLogger(ctx)
	ids := []int{}
	err := db.WithContext(ctx).
		Model(&model.Bookmark{}).
		Where("user_id = ?", userID).
		Order("question_id ASC").
		Pluck("question_id", &ids).Error
	if err != nil {
		logger.Error("Error plucking bookmarked question IDs in DB", "error", err, "user_id", userID.String())
		return nil, fmt.Errorf("gormBookmarkRepository.QuestionIDs: %w", err)
	}
	return ids, nil
}
