package service

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"go_5_quiz_keep/internal/config"
	"go_5_quiz_keep/internal/csvparser"
	"go_5_quiz_keep/internal/middleware"
	"go_5_quiz_keep/internal/model"
	"go_5_quiz_keep/internal/repository"

	"gorm.io/gorm"
)

// master CSV の列
const (
	colID = iota
	_
	colChapter
	colChapterTitle
	colProblemNo
	colProblemPrompt
	colCategory
	colStatementNo
	colStatementText
	colAnswer
	colExplanation
)

const utf8BOM = "\ufeff"

// ImportResult は取り込みの件数。Failed はバッチ単位で失敗した行数
type ImportResult struct {
	Columns  []string
	Total    int
	Imported int
	Skipped  int
	Failed   int
}

// ImportService は問題マスターCSVをIDで upsert します
type ImportService struct {
	db           *gorm.DB
	questionRepo repository.QuestionRepository
	batchSize    int
}

func NewImportService(db *gorm.DB, questionRepo repository.QuestionRepository) *ImportService {
	return &ImportService{db: db, questionRepo: questionRepo, batchSize: config.ImportBatchSize}
}

// ParseMaster は1行目をヘッダーとして読み飛ばし、IDか問題文のない行を除いた問題を返します
func ParseMaster(r io.Reader) ([]*model.Question, ImportResult, error) {
	var result ImportResult
	questions := []*model.Question{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	header := true
	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), utf8BOM))
		if line == "" {
			continue
		}
		if header {
			result.Columns = csvparser.SplitLine(line)
			header = false
			continue
		}
		result.Total++

		q, ok := masterRowToQuestion(csvparser.SplitLine(line))
		if !ok {
			result.Skipped++
			continue
		}
		questions = append(questions, q)
	}
	if err := scanner.Err(); err != nil {
		return nil, result, err
	}
	return questions, result, nil
}

func masterRowToQuestion(cols []string) (*model.Question, bool) {
	col := func(i int) string {
		if i < len(cols) {
			return cols[i]
		}
		return ""
	}

	id, err := strconv.Atoi(col(colID))
	if err != nil || id <= 0 || col(colStatementText) == "" {
		return nil, false
	}

	chapter, err := strconv.Atoi(col(colChapter))
	if err != nil {
		chapter = 1
	}

	answer := model.MarkTrue
	if col(colAnswer) == string(model.MarkFalse) {
		answer = model.MarkFalse
	}

	return &model.Question{
		ID:            id,
		Chapter:       chapter,
		ChapterTitle:  col(colChapterTitle),
		Category:      col(colCategory),
		ProblemNo:     optionalInt(col(colProblemNo)),
		ProblemPrompt: optionalString(col(colProblemPrompt)),
		StatementNo:   optionalInt(col(colStatementNo)),
		StatementText: col(colStatementText),
		Answer:        answer,
		Explanation:   optionalString(col(colExplanation)),
	}, true
}

func optionalInt(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Import は batchSize 件ずつ別トランザクションで upsert します。失敗したバッチは Failed に数えて続行
func (s *ImportService) Import(ctx context.Context, r io.Reader, dryRun bool) (ImportResult, error) {
	logger := middleware.GetLogger(ctx)

	questions, result, err := ParseMaster(r)
	if err != nil {
		return result, err
	}
	logger.Info("Master CSV parsed", "total", result.Total, "valid", len(questions), "skipped", result.Skipped)

	if dryRun {
		return result, nil
	}

	for start := 0; start < len(questions); start += s.batchSize {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		end := min(start+s.batchSize, len(questions))
		batch := questions[start:end]

		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return s.questionRepo.Upsert(ctx, tx, batch)
		})
		if err != nil {
			logger.Warn("Import batch failed", "batch", start/s.batchSize+1, "error", err)
			result.Failed += len(batch)
			continue
		}
		result.Imported += len(batch)
	}

	logger.Info("Master CSV imported", "imported", result.Imported, "failed", result.Failed)
	return result, nil
}
