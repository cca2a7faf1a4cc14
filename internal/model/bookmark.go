// internal/model/bookmark.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark は (user_id, question_id) で一意
type Bookmark struct {
	ID         int64     `gorm:"primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bookmarks_user_question"`
	QuestionID int       `gorm:"not null;uniqueIndex:idx_bookmarks_user_question"`
	CreatedAt  time.Time
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

type AddBookmarkRequest struct {
	QuestionID int `json:"questionId" validate:"required,gt=0"`
}

type BookmarkResponse struct {
	ID         int64     `json:"id"`
	QuestionID int       `json:"questionId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewBookmarkResponse(b *Bookmark) BookmarkResponse {
	return BookmarkResponse{ID: b.ID, QuestionID: b.QuestionID, CreatedAt: b.CreatedAt}
}

type BookmarksResponse struct {
	Bookmarks []BookmarkResponse `json:"bookmarks"`
}
