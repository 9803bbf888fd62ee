package domain

import (
	"time"

	"github.com/google/uuid"
)

type Like struct {
	ID        int64     `db:"id" json:"id"`
	EntryID   uuid.UUID `db:"entry_id" json:"entry_id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// LikeCount is one row of a grouped like-count query.
type LikeCount struct {
	EntryID uuid.UUID `db:"entry_id" json:"entry_id"`
	Count   int64     `db:"count" json:"count"`
}

// CommentCount is one row of a grouped comment-count query.
type CommentCount struct {
	EntryID uuid.UUID `db:"entry_id" json:"entry_id"`
	Count   int64     `db:"count" json:"count"`
}

type Comment struct {
	ID        int64     `db:"id" json:"id"`
	EntryID   uuid.UUID `db:"entry_id" json:"entry_id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Content   string    `db:"content" json:"content"`
	IsDeleted bool      `db:"is_deleted" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CommentView is a comment with the commenter's public profile fields.
type CommentView struct {
	Comment
	Username  string  `db:"username" json:"username"`
	AvatarURL *string `db:"avatar_url" json:"avatar_url,omitempty"`
}
