package study

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	ErrBookmarkLoad   = errors.New("ブックマーク状態の取得に失敗しました")
	ErrBookmarkAdd    = errors.New("ブックマークの追加に失敗しました")
	ErrBookmarkRemove = errors.New("ブックマークの解除に失敗しました")
)

// BookmarkTracker はブックマーク済みの問題IDを手元に保持します
type BookmarkTracker struct {
	mu    sync.Mutex
	store BookmarkStore
	ids   map[int]struct{}
}

func NewBookmarkTracker(store BookmarkStore) *BookmarkTracker {
	return &BookmarkTracker{store: store, ids: make(map[int]struct{})}
}

// Load はサーバーのブックマーク一覧で置き換えます
func (t *BookmarkTracker) Load(ctx context.Context) error {
	bookmarks, err := t.store.ListBookmarks(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBookmarkLoad, err)
	}

	ids := make(map[int]struct{}, len(bookmarks))
	for _, b := range bookmarks {
		ids[b.QuestionID] = struct{}{}
	}

	t.mu.Lock()
	t.ids = ids
	t.mu.Unlock()
	return nil
}

func (t *BookmarkTracker) IsBookmarked(questionID int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.ids[questionID]
	return ok
}

// Toggle は先に手元の状態を切り替えてからサーバーに反映します。
// 反映に失敗した場合は元に戻してエラーを返します。戻り値は切り替え後の状態
func (t *BookmarkTracker) Toggle(ctx context.Context, questionID int) (bool, error) {
	t.mu.Lock()
	_, was := t.ids[questionID]
	t.setLocked(questionID, !was)
	t.mu.Unlock()

	var err error
	if was {
		if rerr := t.store.RemoveBookmark(ctx, questionID); rerr != nil {
			err = fmt.Errorf("%w: %v", ErrBookmarkRemove, rerr)
		}
	} else {
		if aerr := t.store.AddBookmark(ctx, questionID); aerr != nil {
			err = fmt.Errorf("%w: %v", ErrBookmarkAdd, aerr)
		}
	}

	if err != nil {
		t.mu.Lock()
		t.setLocked(questionID, was)
		t.mu.Unlock()
		return was, err
	}
	return !was, nil
}

func (t *BookmarkTracker) setLocked(questionID int, on bool) {
	if on {
		t.ids[questionID] = struct{}{}
	} else {
		delete(t.ids, questionID)
	}
}

// IDs は昇順のスナップショット
func (t *BookmarkTracker) IDs() []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]int, 0, len(t.ids))
	for id := range t.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
