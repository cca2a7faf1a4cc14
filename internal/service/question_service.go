//go:generate mockery --name QuestionService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"go_5_quiz_keep/internal/middleware"
	"go_5_quiz_keep/internal/model"
	"go_5_quiz_keep/internal/quiz"
	"go_5_quiz_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestionService は学習モードごとの出題を選びます。どのモードも最大 count 件をシャッフルして返します
type QuestionService interface {
	Random(ctx context.Context, count int) ([]*model.Question, error)
	ByChapter(ctx context.Context, chapter, count int) ([]*model.Question, error)
	// Weak は最新の回答が不正解だった問題を返します
	Weak(ctx context.Context, userID uuid.UUID, count int) ([]*model.Question, error)
	Bookmarked(ctx context.Context, userID uuid.UUID, count int) ([]*model.Question, error)
	Chapters(ctx context.Context) ([]model.ChapterSummary, error)
}

type questionService struct {
	db           *gorm.DB
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	bookmarkRepo repository.BookmarkRepository
	shuffler     *quiz.Shuffler
}

func NewQuestionService(
	db *gorm.DB,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	bookmarkRepo repository.BookmarkRepository,
	shuffler *quiz.Shuffler,
) QuestionService {
	return &questionService{
		db:           db,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		bookmarkRepo: bookmarkRepo,
		shuffler:     shuffler,
	}
}

func errFetchQuestions(err error) error {
	return model.NewAppError("QUESTION_FETCH_FAILED", "問題の取得に失敗しました", "", err)
}

func (s *questionService) Random(ctx context.Context, count int) ([]*model.Question, error) {
	questions, err := s.questionRepo.Random(ctx, s.db, count)
	if err != nil {
		return nil, errFetchQuestions(err)
	}
	return quiz.Pick(s.shuffler, questions, count), nil
}

func (s *questionService) ByChapter(ctx context.Context, chapter, count int) ([]*model.Question, error) {
	questions, err := s.questionRepo.FindByChapter(ctx, s.db, chapter)
	if err != nil {
		return nil, errFetchQuestions(err)
	}
	return quiz.Pick(s.shuffler, questions, count), nil
}

func (s *questionService) Weak(ctx context.Context, userID uuid.UUID, count int) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)

	history, err := s.answerRepo.FindFactsByUser(ctx, s.db, userID, nil)
	if err != nil {
		return nil, errFetchQuestions(err)
	}

	ids := quiz.WeakQuestionIDs(history)
	logger.Debug("Weak questions selected", "user_id", userID, "weak_count", len(ids))
	if len(ids) == 0 {
		return []*model.Question{}, nil
	}

	questions, err := s.questionRepo.FindByIDs(ctx, s.db, ids)
	if err != nil {
		return nil, errFetchQuestions(err)
	}
	return quiz.Pick(s.shuffler, questions, count), nil
}

func (s *questionService) Bookmarked(ctx context.Context, userID uuid.UUID, count int) ([]*model.Question, error) {
	ids, err := s.bookmarkRepo.QuestionIDs(ctx, s.db, userID)
	if err != nil {
		return nil, errFetchQuestions(err)
	}
	if len(ids) == 0 {
		return []*model.Question{}, nil
	}

	questions, err := s.questionRepo.FindByIDs(ctx, s.db, ids)
	if err != nil {
		return nil, errFetchQuestions(err)
	}
	return quiz.Pick(s.shuffler, questions, count), nil
}

func (s *questionService) Chapters(ctx context.Context) ([]model.ChapterSummary, error) {
	chapters, err := s.questionRepo.ListChapters(ctx, s.db)
	if err != nil {
		return nil, model.NewAppError("CHAPTER_FETCH_FAILED", "分野の取得に失敗しました", "", err)
	}
	return chapters, nil
}
