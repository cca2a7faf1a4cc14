package study

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go_5_quiz_keep/internal/model"
	"go_5_quiz_keep/internal/quiz"
)

var (
	ErrChapterRequired   = errors.New("分野が指定されていません")
	ErrInvalidMode       = errors.New("無効な学習モードです")
	ErrNoQuestions       = errors.New("問題がありません")
	ErrNoCurrentQuestion = errors.New("回答する問題がありません")
	ErrAlreadyAnswered   = errors.New("この問題には回答済みです")
)

// State はセッションの状態
type State int

const (
	StateEmpty State = iota
	StateActive
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateCompleted:
		return "completed"
	default:
		return "empty"
	}
}

// ResultQuestion は結果画面に出す問題の要約
type ResultQuestion struct {
	ID            int    `json:"id"`
	QuestionText  string `json:"questionText"`
	CorrectAnswer bool   `json:"correctAnswer"`
	ChapterName   string `json:"chapterName"`
}

type AnsweredQuestion struct {
	IsCorrect bool           `json:"isCorrect"`
	Question  ResultQuestion `json:"question"`
}

// Result はセッションの集計。何度取得しても同じ値になる
type Result struct {
	Mode                 Mode               `json:"mode"`
	TotalQuestions       int                `json:"totalQuestions"`
	CorrectCount         int                `json:"correctCount"`
	Accuracy             float64            `json:"accuracy"`
	IncorrectQuestionIDs []int              `json:"incorrectQuestionIds"`
	AnsweredQuestions    []AnsweredQuestion `json:"answeredQuestions"`
}

// Session は1回分の出題を管理します。Empty -> Active -> Completed と遷移し、
// Completed から Empty へは Reset でのみ戻ります
type Session struct {
	mu       sync.Mutex
	source   QuestionSource
	queue    AnswerQueue
	count    int
	mode     Mode
	chapter  *int
	items    []model.QuestionResponse
	index    int
	answers  []Answer
	answered map[int]bool
}

// NewSession の queue が nil の場合、回答はセッション内にのみ記録されます
func NewSession(source QuestionSource, queue AnswerQueue, count int) *Session {
	return &Session{source: source, queue: queue, count: count}
}

// Start は問題を取得してセッションを開始します。失敗した場合セッションは Empty のまま
func (s *Session) Start(ctx context.Context, mode Mode, chapter *int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()

	switch mode {
	case ModeRandom, ModeWeak, ModeBookmark:
	case ModeCategory:
		if chapter == nil {
			return ErrChapterRequired
		}
	default:
		return ErrInvalidMode
	}

	items, err := s.source.FetchQuestions(ctx, mode, chapter, s.count)
	if err != nil {
		return fmt.Errorf("問題の取得に失敗しました: %w", err)
	}
	if len(items) == 0 {
		return ErrNoQuestions
	}

	s.mode = mode
	s.chapter = chapter
	s.items = items
	return nil
}

// SubmitAnswer は現在の問題への回答を記録し、永続化をキューに積みます
func (s *Session) SubmitAnswer(isCorrect bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitLocked(isCorrect)
}

func (s *Session) submitLocked(isCorrect bool) error {
	q, ok := s.currentLocked()
	if !ok {
		return ErrNoCurrentQuestion
	}
	if s.answered[q.ID] {
		return ErrAlreadyAnswered
	}

	a := Answer{QuestionID: q.ID, IsCorrect: isCorrect}
	s.answers = append(s.answers, a)
	s.answered[q.ID] = true
	if s.queue != nil {
		s.queue.Enqueue(a)
	}
	return nil
}

// Answer は choice を現在の問題の正解と照合してから記録します
func (s *Session) Answer(choice bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.currentLocked()
	if !ok {
		return false, ErrNoCurrentQuestion
	}
	isCorrect := choice == q.Answer.Bool()
	if err := s.submitLocked(isCorrect); err != nil {
		return false, err
	}
	return isCorrect, nil
}

// Next は次の問題へ進みます。最後の問題では何もしない
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index < len(s.items)-1 {
		s.index++
	}
}

func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.mode = ""
	s.chapter = nil
	s.items = nil
	s.index = 0
	s.answers = nil
	s.answered = make(map[int]bool)
}

func (s *Session) currentLocked() (model.QuestionResponse, bool) {
	if s.index < 0 || s.index >= len(s.items) {
		return model.QuestionResponse{}, false
	}
	return s.items[s.index], true
}

// Current は現在の問題を返します
func (s *Session) Current() (model.QuestionResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

func (s *Session) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

func (s *Session) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Session) AnsweredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

func (s *Session) CorrectCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.correctLocked()
}

func (s *Session) correctLocked() int {
	n := 0
	for _, a := range s.answers {
		if a.IsCorrect {
			n++
		}
	}
	return n
}

// IsCompleted は保持せず、回答数と問題数から求める
func (s *Session) IsCompleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completedLocked()
}

func (s *Session) completedLocked() bool {
	return len(s.items) > 0 && len(s.answers) >= len(s.items)
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case len(s.items) == 0:
		return StateEmpty
	case s.completedLocked():
		return StateCompleted
	default:
		return StateActive
	}
}

// Result はセッションの状態を変更しません
func (s *Session) Result() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[int]bool, len(s.answers))
	incorrect := []int{}
	for _, a := range s.answers {
		byID[a.QuestionID] = a.IsCorrect
		if !a.IsCorrect {
			incorrect = append(incorrect, a.QuestionID)
		}
	}

	answered := make([]AnsweredQuestion, 0, len(s.items))
	for _, q := range s.items {
		answered = append(answered, AnsweredQuestion{
			IsCorrect: byID[q.ID],
			Question: ResultQuestion{
				ID:            q.ID,
				QuestionText:  q.StatementText,
				CorrectAnswer: q.Answer.Bool(),
				ChapterName:   q.ChapterTitle,
			},
		})
	}

	correct := s.correctLocked()
	return Result{
		Mode:                 s.mode,
		TotalQuestions:       len(s.items),
		CorrectCount:         correct,
		Accuracy:             quiz.Accuracy(correct, len(s.items)),
		IncorrectQuestionIDs: incorrect,
		AnsweredQuestions:    answered,
	}
}
