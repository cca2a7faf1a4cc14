//go:generate mockery --name QuestionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_quiz_keep/internal/middleware"
	"go_5_quiz_keep/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const batchSize = 100

type QuestionRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, id int) (*model.Question, error)
	FindByIDs(ctx context.Context, db *gorm.DB, ids []int) ([]*model.Question, error)
	FindByChapter(ctx context.Context, db *gorm.DB, chapter int) ([]*model.Question, error)
	Random(ctx context.Context, db *gorm.DB, limit int) ([]*model.Question, error)
	ListChapters(ctx context.Context, db *gorm.DB) ([]model.ChapterSummary, error)
	Exists(ctx context.Context, db *gorm.DB, id int) (bool, error)
	MaxID(ctx context.Context, tx *gorm.DB) (int, error)
	CreateBatch(ctx context.Context, tx *gorm.DB, questions []*model.Question) error
	Upsert(ctx context.Context, tx *gorm.DB, questions []*model.Question) error
}

type gormQuestionRepository struct{}

func NewGormQuestionRepository() QuestionRepository {
	return &gormQuestionRepository{}
}

func (r *gormQuestionRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	var question model.Question
	if err := db.WithContext(ctx).First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding question by ID in DB", "error", err, "question_id", id)
		return nil, fmt.Errorf("gormQuestionRepository.FindByID: %w", err)
	}
	return &question, nil
}

// FindByIDs は id の昇順で返します。存在しない id は無視
func (r *gormQuestionRepository) FindByIDs(ctx context.Context, db *gorm.DB, ids []int) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	questions := []*model.Question{}
	if len(ids) == 0 {
		return questions, nil
	}
	if err := db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&questions).Error; err != nil {
		logger.Error("Error finding questions by IDs in DB", "error", err, "count", len(ids))
		return nil, fmt.Errorf("gormQuestionRepository.FindByIDs: %w", err)
	}
	return questions, nil
}

func (r *gormQuestionRepository) FindByChapter(ctx context.Context, db *gorm.DB, chapter int) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	questions := []*model.Question{}
	if err := db.WithContext(ctx).Where("chapter = ?", chapter).Order("id ASC").Find(&questions).Error; err != nil {
		logger.Error("Error finding questions by chapter in DB", "error", err, "chapter", chapter)
		return nil, fmt.Errorf("gormQuestionRepository.FindByChapter: %w", err)
	}
	return questions, nil
}

// Random は RANDOM() 順で最大 limit 件を返します (PostgreSQL / SQLite 共通)
func (r *gormQuestionRepository) Random(ctx context.Context, db *gorm.DB, limit int) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	questions := []*model.Question{}
	err := db.WithContext(ctx).
		Order("RANDOM()").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		logger.Error("Error finding random questions in DB", "error", err, "limit", limit)
		return nil, fmt.Errorf("gormQuestionRepository.Random: %w", err)
	}
	return questions, nil
}

func (r *gormQuestionRepository) ListChapters(ctx context.Context, db *gorm.DB) ([]model.ChapterSummary, error) {
	logger := middleware.GetLogger(ctx)
	chapters := []model.ChapterSummary{}
	err := db.WithContext(ctx).
		Model(&model.Question{}).
		Select("chapter, MIN(chapter_title) AS chapter_title, COUNT(*) AS question_count").
		Group("chapter").
		Order("chapter ASC").
		Scan(&chapters).Error
	if err != nil {
		logger.Error("Error listing chapters in DB", "error", err)
		return nil, fmt.Errorf("gormQuestionRepository.ListChapters: %w", err)
	}
	return chapters, nil
}

func (r *gormQuestionRepository) Exists(ctx context.Context, db *gorm.DB, id int) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	if err := db.WithContext(ctx).Model(&model.Question{}).Where("id = ?", id).Count(&count).Error; err != nil {
		logger.Error("Error checking question existence in DB", "error", err, "question_id", id)
		return false, fmt.Errorf("gormQuestionRepository.Exists: %w", err)
	}
	return count > 0, nil
}

// MaxID は最大の問題IDを返します。0件なら 0
func (r *gormQuestionRepository) MaxID(ctx context.Context, tx *gorm.DB) (int, error) {
	logger := middleware.GetLogger(ctx)
	var maxID int
	if err := tx.WithContext(ctx).Model(&model.Question{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
		logger.Error("Error reading max question ID in DB", "error", err)
		return 0, fmt.Errorf("gormQuestionRepository.MaxID: %w", err)
	}
	return maxID, nil
}

func (r *gormQuestionRepository) CreateBatch(ctx context.Context, tx *gorm.DB, questions []*model.Question) error {
	logger := middleware.GetLogger(ctx)
	if len(questions) == 0 {
		return nil
	}
	if err := tx.WithContext(ctx).CreateInBatches(questions, batchSize).Error; err != nil {
		if isUniqueViolation(err) {
			logger.Warn("Duplicate question ID on batch create", "error", err)
			return model.ErrConflict
		}
		logger.Error("Error creating questions in DB", "error", err, "count", len(questions))
		return fmt.Errorf("gormQuestionRepository.CreateBatch: %w", err)
	}
	return nil
}

// Upsert は id が衝突した行を上書きします
func (r *gormQuestionRepository) Upsert(ctx context.Context, tx *gorm.DB, questions []*model.Question) error {
	logger := middleware.GetLogger(ctx)
	if len(questions) == 0 {
		return nil
	}
	err := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(questionUpsertColumns),
		}).
		CreateInBatches(questions, batchSize).Error
	if err != nil {
		logger.Error("Error upserting questions in DB", "error", err, "count", len(questions))
		return fmt.Errorf("gormQuestionRepository.Upsert: %w", err)
	}
	return nil
}

// created_at は初回取り込み時の値を残す
var questionUpsertColumns = []string{
	"chapter", "chapter_title", "category", "problem_no", "problem_prompt",
	"statement_no", "statement_text", "answer", "explanation", "updated_at",
}
