//go:generate mockery --name BookmarkService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"go_5_quiz_keep/internal/model"
	"go_5_quiz_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookmarkService の Add と Remove は冪等です
type BookmarkService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*model.Bookmark, error)
	Add(ctx context.Context, userID uuid.UUID, questionID int) error
	Remove(ctx context.Context, userID uuid.UUID, questionID int) error
}

type bookmarkService struct {
	db           *gorm.DB
	questionRepo repository.QuestionRepository
	bookmarkRepo repository.BookmarkRepository
}

func NewBookmarkService(db *gorm.DB, questionRepo repository.QuestionRepository, bookmarkRepo repository.BookmarkRepository) BookmarkService {
	return &bookmarkService{
		db:           db,
		questionRepo: questionRepo,
		bookmarkRepo: bookmarkRepo,
	}
}

func (s *bookmarkService) List(ctx context.Context, userID uuid.UUID) ([]*model.Bookmark, error) {
	bookmarks, err := s.bookmarkRepo.ListByUser(ctx, s.db, userID)
	if err != nil {
		return nil, model.NewAppError("BOOKMARK_FETCH_FAILED", "ブックマークの取得に失敗しました", "", err)
	}
	return bookmarks, nil
}

func (s *bookmarkService) Add(ctx context.Context, userID uuid.UUID, questionID int) error {
	exists, err := s.questionRepo.Exists(ctx, s.db, questionID)
	if err != nil {
		return model.NewAppError("BOOKMARK_ADD_FAILED", "ブックマークの追加に失敗しました", "", err)
	}
	if !exists {
		return model.NewAppError("QUESTION_NOT_FOUND", "問題が見つかりません", "questionId", model.ErrNotFound)
	}

	if err := s.bookmarkRepo.Add(ctx, s.db, &model.Bookmark{UserID: userID, QuestionID: questionID}); err != nil {
		return model.NewAppError("BOOKMARK_ADD_FAILED", "ブックマークの追加に失敗しました", "", err)
	}
	return nil
}

func (s *bookmarkService) Remove(ctx context.Context, userID uuid.UUID, questionID int) error {
	if err := s.bookmarkRepo.Delete(ctx, s.db, userID, questionID); err != nil {
		return model.NewAppError("BOOKMARK_DELETE_FAILED", "ブックマークの削除に失敗しました", "", err)
	}
	return nil
}
