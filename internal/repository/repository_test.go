package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go_5_quiz_keep/internal/model"
	"go_5_quiz_keep/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func strPtr(s string) *string { return &s }

func newQuestion(id, chapter int, title string, answer model.Mark) *model.Question {
	return &model.Question{
		ID:            id,
		Chapter:       chapter,
		ChapterTitle:  title,
		Category:      title,
		StatementText: fmt.Sprintf("問題文 %d", id),
		Answer:        answer,
	}
}

type RepositoryTestSuite struct {
	suite.Suite
	db           *gorm.DB
	ctx          context.Context
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	bookmarkRepo repository.BookmarkRepository
	userRepo     repository.UserRepository
	tokenRepo    repository.TokenRepository
}

func (s *RepositoryTestSuite) SetupTest() {
	// テストごとに別のインメモリDBを使う
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	s.Require().NoError(err)
	s.Require().NoError(repository.AutoMigrate(db))

	s.db = db
	s.ctx = context.Background()
	s.questionRepo = repository.NewGormQuestionRepository()
	s.answerRepo = repository.NewGormAnswerRepository()
	s.bookmarkRepo = repository.NewGormBookmarkRepository()
	s.userRepo = repository.NewGormUserRepository()
	s.tokenRepo = repository.NewGormTokenRepository()
}

func (s *RepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func (s *RepositoryTestSuite) seedQuestions() {
	questions := []*model.Question{
		newQuestion(1, 1, "民法", model.MarkTrue),
		newQuestion(2, 1, "民法", model.MarkFalse),
		newQuestion(3, 2, "宅建業法", model.MarkTrue),
		newQuestion(4, 3, "法令上の制限", model.MarkFalse),
		newQuestion(5, 2, "宅建業法", model.MarkFalse),
	}
	s.Require().NoError(s.questionRepo.CreateBatch(s.ctx, s.db, questions))
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

// --- QuestionRepository ---

func (s *RepositoryTestSuite) TestQuestion_FindByID() {
	s.seedQuestions()

	s.Run("正常系: 存在するID", func() {
		q, err := s.questionRepo.FindByID(s.ctx, s.db, 3)
		s.Require().NoError(err)
		s.Equal(2, q.Chapter)
		s.Equal(model.MarkTrue, q.Answer)
	})

	s.Run("異常系: 存在しないID", func() {
		q, err := s.questionRepo.FindByID(s.ctx, s.db, 999)
		s.ErrorIs(err, model.ErrNotFound)
		s.Nil(q)
	})
}

func (s *RepositoryTestSuite) TestQuestion_FindByIDs() {
	s.seedQuestions()

	qs, err := s.questionRepo.FindByIDs(s.ctx, s.db, []int{5, 1, 42})
	s.Require().NoError(err)
	s.Require().Len(qs, 2)
	s.Equal(1, qs[0].ID)
	s.Equal(5, qs[1].ID)

	empty, err := s.questionRepo.FindByIDs(s.ctx, s.db, nil)
	s.Require().NoError(err)
	s.NotNil(empty)
	s.Empty(empty)
}

func (s *RepositoryTestSuite) TestQuestion_FindByChapter() {
	s.seedQuestions()

	qs, err := s.questionRepo.FindByChapter(s.ctx, s.db, 2)
	s.Require().NoError(err)
	s.Require().Len(qs, 2)
	s.Equal([]int{3, 5}, []int{qs[0].ID, qs[1].ID})

	none, err := s.questionRepo.FindByChapter(s.ctx, s.db, 99)
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *RepositoryTestSuite) TestQuestion_Random() {
	s.seedQuestions()

	qs, err := s.questionRepo.Random(s.ctx, s.db, 3)
	s.Require().NoError(err)
	s.Len(qs, 3)

	all, err := s.questionRepo.Random(s.ctx, s.db, 50)
	s.Require().NoError(err)
	s.Len(all, 5)
}

func (s *RepositoryTestSuite) TestQuestion_ListChapters() {
	s.seedQuestions()

	chapters, err := s.questionRepo.ListChapters(s.ctx, s.db)
	s.Require().NoError(err)
	s.Equal([]model.ChapterSummary{
		{Chapter: 1, ChapterTitle: "民法", QuestionCount: 2},
		{Chapter: 2, ChapterTitle: "宅建業法", QuestionCount: 2},
		{Chapter: 3, ChapterTitle: "法令上の制限", QuestionCount: 1},
	}, chapters)
}

func (s *RepositoryTestSuite) TestQuestion_ExistsAndMaxID() {
	maxID, err := s.questionRepo.MaxID(s.ctx, s.db)
	s.Require().NoError(err)
	s.Equal(0, maxID, "空のテーブルでは0")

	s.seedQuestions()

	maxID, err = s.questionRepo.MaxID(s.ctx, s.db)
	s.Require().NoError(err)
	s.Equal(5, maxID)

	ok, err := s.questionRepo.Exists(s.ctx, s.db, 4)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.questionRepo.Exists(s.ctx, s.db, 6)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RepositoryTestSuite) TestQuestion_CreateBatch_ManyRows() {
	questions := make([]*model.Question, 0, 250)
	for i := 1; i <= 250; i++ {
		questions = append(questions, newQuestion(i, i%5+1, "分野", model.MarkTrue))
	}
	s.Require().NoError(s.questionRepo.CreateBatch(s.ctx, s.db, questions))

	var count int64
	s.Require().NoError(s.db.Model(&model.Question{}).Count(&count).Error)
	s.Equal(int64(250), count)
}

func (s *RepositoryTestSuite) TestQuestion_Upsert() {
	s.seedQuestions()

	updated := newQuestion(2, 1, "民法(改)", model.MarkTrue)
	updated.Explanation = strPtr("解説")
	inserted := newQuestion(10, 4, "税・その他", model.MarkFalse)

	s.Require().NoError(s.questionRepo.Upsert(s.ctx, s.db, []*model.Question{updated, inserted}))

	q, err := s.questionRepo.FindByID(s.ctx, s.db, 2)
	s.Require().NoError(err)
	s.Equal("民法(改)", q.ChapterTitle)
	s.Equal(model.MarkTrue, q.Answer)
	s.Require().NotNil(q.Explanation)
	s.Equal("解説", *q.Explanation)

	ok, err := s.questionRepo.Exists(s.ctx, s.db, 10)
	s.Require().NoError(err)
	s.True(ok)

	var count int64
	s.Require().NoError(s.db.Model(&model.Question{}).Count(&count).Error)
	s.Equal(int64(6), count)
}

// --- AnswerRepository ---

func (s *RepositoryTestSuite) TestAnswer_FindFactsByUser() {
	s.seedQuestions()
	userID := uuid.New()
	otherID := uuid.New()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	answers := []*model.AnswerHistory{
		{UserID: userID, QuestionID: 1, IsCorrect: true, AnsweredAt: base},
		{UserID: userID, QuestionID: 3, IsCorrect: false, AnsweredAt: base.Add(2 * time.Hour)},
		{UserID: userID, QuestionID: 1, IsCorrect: false, AnsweredAt: base.Add(time.Hour)},
		{UserID: otherID, QuestionID: 2, IsCorrect: true, AnsweredAt: base.Add(3 * time.Hour)},
	}
	for _, a := range answers {
		s.Require().NoError(s.answerRepo.Create(s.ctx, s.db, a))
		s.NotZero(a.ID)
	}

	s.Run("正常系: 全期間は新しい順で分野が結合される", func() {
		facts, err := s.answerRepo.FindFactsByUser(s.ctx, s.db, userID, nil)
		s.Require().NoError(err)
		s.Require().Len(facts, 3)
		s.Equal(3, facts[0].QuestionID)
		s.Equal(2, facts[0].Chapter)
		s.Equal("宅建業法", facts[0].ChapterTitle)
		s.False(facts[0].IsCorrect)
		s.Equal(1, facts[1].QuestionID)
		s.False(facts[1].IsCorrect)
		s.Equal(1, facts[2].QuestionID)
		s.True(facts[2].IsCorrect)
		s.True(facts[2].AnsweredAt.Equal(base))
	})

	s.Run("正常系: since 以降のみ", func() {
		since := base.Add(30 * time.Minute)
		facts, err := s.answerRepo.FindFactsByUser(s.ctx, s.db, userID, &since)
		s.Require().NoError(err)
		s.Len(facts, 2)
	})

	s.Run("正常系: 回答のないユーザーは空", func() {
		facts, err := s.answerRepo.FindFactsByUser(s.ctx, s.db, uuid.New(), nil)
		s.Require().NoError(err)
		s.NotNil(facts)
		s.Empty(facts)
	})
}

// --- BookmarkRepository ---

func (s *RepositoryTestSuite) TestBookmark_AddIsIdempotent() {
	s.seedQuestions()
	userID := uuid.New()

	s.Require().NoError(s.bookmarkRepo.Add(s.ctx, s.db, &model.Bookmark{UserID: userID, QuestionID: 3}))
	s.Require().NoError(s.bookmarkRepo.Add(s.ctx, s.db, &model.Bookmark{UserID: userID, QuestionID: 3}))
	s.Require().NoError(s.bookmarkRepo.Add(s.ctx, s.db, &model.Bookmark{UserID: userID, QuestionID: 1}))
	s.Require().NoError(s.bookmarkRepo.Add(s.ctx, s.db, &model.Bookmark{UserID: uuid.New(), QuestionID: 3}))

	ids, err := s.bookmarkRepo.QuestionIDs(s.ctx, s.db, userID)
	s.Require().NoError(err)
	s.Equal([]int{1, 3}, ids)

	list, err := s.bookmarkRepo.ListByUser(s.ctx, s.db, userID)
	s.Require().NoError(err)
	s.Len(list, 2)
}

func (s *RepositoryTestSuite) TestBookmark_Delete() {
	s.seedQuestions()
	userID := uuid.New()
	s.Require().NoError(s.bookmarkRepo.Add(s.ctx, s.db, &model.Bookmark{UserID: userID, QuestionID: 2}))

	s.Require().NoError(s.bookmarkRepo.Delete(s.ctx, s.db, userID, 2))
	// 2回目も成功する
	s.Require().NoError(s.bookmarkRepo.Delete(s.ctx, s.db, userID, 2))

	ids, err := s.bookmarkRepo.QuestionIDs(s.ctx, s.db, userID)
	s.Require().NoError(err)
	s.Empty(ids)
}

// --- UserRepository / TokenRepository ---

func (s *RepositoryTestSuite) TestUser_CreateAndFind() {
	user := &model.UserProfile{ID: uuid.New(), Email: "user@example.com"}
	s.Require().NoError(s.userRepo.Create(s.ctx, s.db, user))

	found, err := s.userRepo.FindByEmail(s.ctx, s.db, "user@example.com")
	s.Require().NoError(err)
	s.Equal(user.ID, found.ID)
	s.False(found.IsAdmin)

	byID, err := s.userRepo.FindByID(s.ctx, s.db, user.ID)
	s.Require().NoError(err)
	s.Equal("user@example.com", byID.Email)

	_, err = s.userRepo.FindByID(s.ctx, s.db, uuid.New())
	s.ErrorIs(err, model.ErrNotFound)

	_, err = s.userRepo.FindByEmail(s.ctx, s.db, "nobody@example.com")
	s.ErrorIs(err, model.ErrNotFound)

	err = s.userRepo.Create(s.ctx, s.db, &model.UserProfile{ID: uuid.New(), Email: "user@example.com"})
	s.ErrorIs(err, model.ErrConflict)
}

func (s *RepositoryTestSuite) TestToken_Lifecycle() {
	token := &model.MagicLinkToken{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		SecretHash: "hash",
		ExpiresAt:  time.Now().Add(15 * time.Minute).UTC(),
	}
	s.Require().NoError(s.tokenRepo.Create(s.ctx, s.db, token))

	found, err := s.tokenRepo.FindByID(s.ctx, s.db, token.ID)
	s.Require().NoError(err)
	s.Equal(token.UserID, found.UserID)
	s.Equal("hash", found.SecretHash)

	s.Require().NoError(s.tokenRepo.Delete(s.ctx, s.db, token.ID))
	_, err = s.tokenRepo.FindByID(s.ctx, s.db, token.ID)
	s.ErrorIs(err, model.ErrNotFound)

	s.Require().NoError(s.tokenRepo.Delete(s.ctx, s.db, token.ID))
}

func TestAutoMigrate_CreatesTables(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:automigrate?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	for _, table := range []string{"questions", "answer_history", "bookmarks", "user_profiles", "magic_link_tokens"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
