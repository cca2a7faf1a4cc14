package study

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go_5_quiz_keep/internal/config"

	"k8s.io/apimachinery/pkg/util/wait"
)

// RecorderStats は送信キューの累計件数
type RecorderStats struct {
	Delivered int
	Dropped   int
	Failed    int
	Pending   int
}

// Recorder は回答を非同期にサーバーへ送ります。キューは上限付きで、
// あふれた場合は最も古い回答を捨てます。送信は1つのワーカーが順番に行います
type Recorder struct {
	store    AnswerStore
	backoff  wait.Backoff
	capacity int
	logger   *slog.Logger

	mu     sync.Mutex
	queue  []Answer
	closed bool
	stats  RecorderStats

	notify  chan struct{}
	closing chan struct{}
	done    chan struct{}
	ctx     context.Context
	cancel  context.CancelFunc
}

// temporary は再送してよいエラーかを返す (client.APIError が実装)
type temporary interface {
	Temporary() bool
}

// NewRecorder はワーカーを起動した Recorder を返します。Close で停止すること
func NewRecorder(store AnswerStore, cfg config.RecorderConfig, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = 100
	}
	backoff := wait.Backoff{
		Duration: cfg.InitialBackoff,
		Factor:   cfg.Factor,
		Jitter:   cfg.Jitter,
		Steps:    cfg.Steps,
	}
	if backoff.Duration <= 0 {
		backoff.Duration = 200 * time.Millisecond
	}
	if backoff.Factor <= 0 {
		backoff.Factor = 2.0
	}
	if backoff.Steps <= 0 {
		backoff.Steps = 5
	}

	ctx, cancel := context.WithCancel(context.Background())
	r := &Recorder{
		store:    store,
		backoff:  backoff,
		capacity: capacity,
		logger:   logger.With("component", "recorder"),
		notify:   make(chan struct{}, 1),
		closing:  make(chan struct{}),
		done:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
	go r.run()
	return r
}

// Enqueue はブロックしません。キューが満杯なら最も古い回答を捨てます
func (r *Recorder) Enqueue(a Answer) {
	r.mu.Lock()
	if r.closed {
		r.stats.Dropped++
		r.mu.Unlock()
		r.logger.Warn("Answer enqueued after close, dropped", "question_id", a.QuestionID)
		return
	}
	if len(r.queue) >= r.capacity {
		oldest := r.queue[0]
		r.queue = r.queue[1:]
		r.stats.Dropped++
		r.logger.Warn("Answer queue full, dropping oldest", "dropped_question_id", oldest.QuestionID, "capacity", r.capacity)
	}
	r.queue = append(r.queue, a)
	r.mu.Unlock()

	select {
	case r.notify <- struct{}{}:
	default:
	}
}

func (r *Recorder) pop() (Answer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queue) == 0 {
		return Answer{}, false
	}
	a := r.queue[0]
	r.queue = r.queue[1:]
	return a, true
}

func (r *Recorder) run() {
	defer close(r.done)
	for {
		if r.ctx.Err() != nil {
			r.mu.Lock()
			r.stats.Dropped += len(r.queue)
			r.queue = nil
			r.mu.Unlock()
			return
		}

		if a, ok := r.pop(); ok {
			r.deliver(a)
			continue
		}

		select {
		case <-r.notify:
		case <-r.closing:
			r.mu.Lock()
			empty := len(r.queue) == 0
			r.mu.Unlock()
			if empty {
				return
			}
		}
	}
}

func (r *Recorder) deliver(a Answer) {
	var lastErr error
	err := wait.ExponentialBackoffWithContext(r.ctx, r.backoff, func(ctx context.Context) (bool, error) {
		err := r.store.RecordAnswer(ctx, a.QuestionID, a.IsCorrect)
		if err == nil {
			return true, nil
		}
		lastErr = err
		var t temporary
		if errors.As(err, &t) && !t.Temporary() {
			return false, err
		}
		r.logger.Debug("Answer delivery failed, retrying", "question_id", a.QuestionID, "error", err)
		return false, nil
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.stats.Failed++
		r.logger.Error("Failed to record answer", "question_id", a.QuestionID, "error", lastErr)
		return
	}
	r.stats.Delivered++
}

// Close は新しい回答の受付を止め、キューが空になるまで待ちます。
// ctx が先に終わった場合は残りを捨てて ctx.Err() を返します
func (r *Recorder) Close(ctx context.Context) error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.closing)
	}
	r.mu.Unlock()

	select {
	case <-r.done:
		r.cancel()
		return nil
	case <-ctx.Done():
		r.cancel()
		<-r.done
		return ctx.Err()
	}
}

func (r *Recorder) Stats() RecorderStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.stats
	s.Pending = len(r.queue)
	return s
}
