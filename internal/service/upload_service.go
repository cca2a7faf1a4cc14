//go:generate mockery --name UploadService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"strconv"
	"strings"

	"go_5_quiz_keep/internal/csvparser"
	"go_5_quiz_keep/internal/middleware"
	"go_5_quiz_keep/internal/model"
	"go_5_quiz_keep/internal/repository"

	"gorm.io/gorm"
)

// UploadService は管理者がアップロードしたCSVから問題を登録します
type UploadService interface {
	UploadCSV(ctx context.Context, csv string) (*model.UploadQuestionsResponse, error)
}

type uploadService struct {
	db           *gorm.DB
	questionRepo repository.QuestionRepository
}

func NewUploadService(db *gorm.DB, questionRepo repository.QuestionRepository) UploadService {
	return &uploadService{db: db, questionRepo: questionRepo}
}

// UploadCSV は一部の行にエラーがあっても、変換できた行は登録します。
// 登録できる行が1件もなければ行エラーを details に付けて InvalidInput を返します
func (s *uploadService) UploadCSV(ctx context.Context, csv string) (*model.UploadQuestionsResponse, error) {
	logger := middleware.GetLogger(ctx)

	if strings.TrimSpace(csv) == "" {
		return nil, model.NewAppError("CSV_REQUIRED", "CSVデータが必要です", "csv", model.ErrInvalidInput)
	}

	parsed := csvparser.Parse(csv)
	questions, rowErrors := toQuestions(parsed)
	if len(questions) == 0 {
		logger.Warn("CSV upload rejected", "error_count", len(rowErrors))
		return nil, model.NewAppError("CSV_PARSE_FAILED", "CSVのパースに失敗しました", "csv", model.ErrInvalidInput).
			WithDetails(rowErrors)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		maxID, err := s.questionRepo.MaxID(ctx, tx)
		if err != nil {
			return err
		}
		for i, q := range questions {
			q.ID = maxID + i + 1
		}
		return s.questionRepo.CreateBatch(ctx, tx, questions)
	})
	if err != nil {
		logger.Error("Failed to insert uploaded questions", "error", err, "count", len(questions))
		return nil, model.NewAppError("QUESTION_INSERT_FAILED", "問題の登録に失敗しました", "", err)
	}

	logger.Info("Questions uploaded", "inserted_count", len(questions), "error_count", len(rowErrors))
	return &model.UploadQuestionsResponse{
		Success:       true,
		InsertedCount: len(questions),
		Errors:        rowErrors,
	}, nil
}

// toQuestions はパース済みの行を問題に変換します。分野IDが整数でない行は行エラーにします
func toQuestions(parsed csvparser.Result) ([]*model.Question, []csvparser.RowError) {
	rowErrors := make([]csvparser.RowError, 0, len(parsed.Errors))
	rowErrors = append(rowErrors, parsed.Errors...)

	questions := make([]*model.Question, 0, len(parsed.Questions))
	for _, row := range parsed.Questions {
		chapter, err := strconv.Atoi(row.ChapterID)
		if err != nil {
			rowErrors = append(rowErrors, csvparser.RowError{Row: row.Row, Message: "分野IDは整数で指定してください"})
			continue
		}
		if row.QuestionText == "" {
			continue
		}
		questions = append(questions, &model.Question{
			Chapter:       chapter,
			ChapterTitle:  row.ChapterName,
			Category:      row.ChapterName,
			StatementText: row.QuestionText,
			Answer:        model.MarkOf(row.CorrectAnswer),
			Explanation:   row.Explanation,
		})
	}
	return questions, rowErrors
}
