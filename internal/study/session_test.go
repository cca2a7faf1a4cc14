package study

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go_5_quiz_keep/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedSession(t *testing.T, questions ...model.QuestionResponse) (*Session, *sliceQueue) {
	t.Helper()
	queue := &sliceQueue{}
	s := NewSession(&fakeSource{questions: questions}, queue, 10)
	require.NoError(t, s.Start(context.Background(), ModeRandom, nil))
	return s, queue
}

func TestSession_Start(t *testing.T) {
	ctx := context.Background()
	chapter := 3

	tests := []struct {
		name    string
		source  *fakeSource
		mode    Mode
		chapter *int
		wantErr error
	}{
		{name: "正常系: ランダム", source: &fakeSource{questions: []model.QuestionResponse{question(1, model.MarkTrue)}}, mode: ModeRandom},
		{name: "正常系: 分野別", source: &fakeSource{questions: []model.QuestionResponse{question(1, model.MarkTrue)}}, mode: ModeCategory, chapter: &chapter},
		{name: "異常系: 分野別で分野なし", source: &fakeSource{}, mode: ModeCategory, wantErr: ErrChapterRequired},
		{name: "異常系: 不明なモード", source: &fakeSource{}, mode: Mode("daily"), wantErr: ErrInvalidMode},
		{name: "異常系: 問題が0件", source: &fakeSource{questions: []model.QuestionResponse{}}, mode: ModeWeak, wantErr: ErrNoQuestions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(tt.source, nil, 10)
			err := s.Start(ctx, tt.mode, tt.chapter)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, StateEmpty, s.State())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StateActive, s.State())
			assert.Equal(t, tt.mode, tt.source.gotMode)
			assert.Equal(t, tt.chapter, tt.source.gotChapter)
			assert.Equal(t, 10, tt.source.gotCount)
		})
	}

	t.Run("異常系: 取得エラーはラップして返し、前のセッションは破棄", func(t *testing.T) {
		source := &fakeSource{questions: []model.QuestionResponse{question(1, model.MarkTrue)}}
		s := NewSession(source, nil, 10)
		require.NoError(t, s.Start(ctx, ModeRandom, nil))

		cause := errors.New("connection refused")
		source.err = cause
		err := s.Start(ctx, ModeRandom, nil)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, StateEmpty, s.State())
		assert.Zero(t, s.Total())
	})
}

func TestSession_Flow(t *testing.T) {
	s, queue := startedSession(t, question(1, model.MarkTrue), question(2, model.MarkFalse), question(3, model.MarkTrue))

	correct, err := s.Answer(true)
	require.NoError(t, err)
	assert.True(t, correct)

	assert.ErrorIs(t, s.SubmitAnswer(false), ErrAlreadyAnswered, "同じ問題への2回目の回答は拒否")
	assert.Equal(t, 1, s.AnsweredCount())

	s.Next()
	correct, err = s.Answer(true)
	require.NoError(t, err)
	assert.False(t, correct, "× の問題に ○ と答えたら不正解")

	s.Next()
	assert.False(t, s.IsCompleted())
	require.NoError(t, s.SubmitAnswer(true))

	assert.True(t, s.IsCompleted())
	assert.Equal(t, StateCompleted, s.State())
	assert.Equal(t, 2, s.CorrectCount())

	s.Next()
	assert.Equal(t, 2, s.Index(), "最後の問題より先には進まない")

	assert.Equal(t, []Answer{{1, true}, {2, false}, {3, true}}, queue.answers)
}

func TestSession_Result(t *testing.T) {
	s, _ := startedSession(t, question(10, model.MarkTrue), question(20, model.MarkFalse), question(30, model.MarkTrue))
	require.NoError(t, s.SubmitAnswer(false))
	s.Next()
	require.NoError(t, s.SubmitAnswer(true))
	s.Next()
	require.NoError(t, s.SubmitAnswer(true))

	first := s.Result()
	second := s.Result()
	assert.Equal(t, first, second, "何度取得しても同じ")

	assert.Equal(t, ModeRandom, first.Mode)
	assert.Equal(t, 3, first.TotalQuestions)
	assert.Equal(t, 2, first.CorrectCount)
	assert.Equal(t, 66.7, first.Accuracy)
	assert.Equal(t, []int{10}, first.IncorrectQuestionIDs)
	require.Len(t, first.AnsweredQuestions, 3)
	assert.Equal(t, AnsweredQuestion{
		IsCorrect: true,
		Question:  ResultQuestion{ID: 20, QuestionText: "問題", CorrectAnswer: false, ChapterName: "民法"},
	}, first.AnsweredQuestions[1])

	assert.Equal(t, StateCompleted, s.State(), "Result は状態を変えない")
}

func TestSession_ResultBeforeCompletion(t *testing.T) {
	s, _ := startedSession(t, question(1, model.MarkTrue), question(2, model.MarkTrue))
	require.NoError(t, s.SubmitAnswer(true))

	r := s.Result()
	assert.Equal(t, 2, r.TotalQuestions)
	assert.Equal(t, 50.0, r.Accuracy)
	assert.False(t, r.AnsweredQuestions[1].IsCorrect, "未回答は不正解扱い")
}

func TestSession_EmptyAndReset(t *testing.T) {
	s := NewSession(&fakeSource{}, nil, 10)
	assert.ErrorIs(t, s.SubmitAnswer(true), ErrNoCurrentQuestion)
	_, err := s.Answer(true)
	assert.ErrorIs(t, err, ErrNoCurrentQuestion)
	assert.False(t, s.IsCompleted(), "問題がなければ完了ではない")
	assert.Equal(t, 0.0, s.Result().Accuracy)

	s2, _ := startedSession(t, question(1, model.MarkTrue))
	require.NoError(t, s2.SubmitAnswer(true))
	s2.Reset()
	assert.Equal(t, StateEmpty, s2.State())
	assert.Zero(t, s2.AnsweredCount())
	_, ok := s2.Current()
	assert.False(t, ok)
}

func TestSession_ConcurrentSubmit(t *testing.T) {
	s, queue := startedSession(t, question(1, model.MarkTrue))

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.SubmitAnswer(true) == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	assert.Len(t, queue.answers, 1)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("bookmark")
	require.NoError(t, err)
	assert.Equal(t, ModeBookmark, m)

	_, err = ParseMode("daily")
	assert.ErrorIs(t, err, ErrInvalidMode)
}
