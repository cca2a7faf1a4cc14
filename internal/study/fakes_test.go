package study

import (
	"context"
	"sync"

	"go_5_quiz_keep/internal/model"
)

type fakeSource struct {
	questions []model.QuestionResponse
	err       error

	gotMode    Mode
	gotChapter *int
	gotCount   int
}

func (f *fakeSource) FetchQuestions(ctx context.Context, mode Mode, chapter *int, count int) ([]model.QuestionResponse, error) {
	f.gotMode, f.gotChapter, f.gotCount = mode, chapter, count
	if f.err != nil {
		return nil, f.err
	}
	return f.questions, nil
}

// sliceQueue は積まれた回答を記録するだけの AnswerQueue
type sliceQueue struct {
	mu      sync.Mutex
	answers []Answer
}

func (q *sliceQueue) Enqueue(a Answer) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.answers = append(q.answers, a)
}

func question(id int, answer model.Mark) model.QuestionResponse {
	return model.QuestionResponse{
		ID:            id,
		Chapter:       1,
		ChapterTitle:  "民法",
		StatementText: "問題",
		Answer:        answer,
		CorrectAnswer: answer.Bool(),
	}
}
