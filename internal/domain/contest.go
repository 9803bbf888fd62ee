package domain

import (
	"time"

	"github.com/google/uuid"
)

type Contest struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	Name              string     `db:"name" json:"name"`
	Description       string     `db:"description" json:"description"`
	UploadStartAt     time.Time  `db:"upload_start_at" json:"upload_start_at"`
	UploadEndAt       time.Time  `db:"upload_end_at" json:"upload_end_at"`
	VoteStartAt       time.Time  `db:"vote_start_at" json:"vote_start_at"`
	VoteEndAt         time.Time  `db:"vote_end_at" json:"vote_end_at"`
	ResultPublishAt   *time.Time `db:"result_publish_at" json:"result_publish_at,omitempty"`
	MaxEntriesPerUser int        `db:"max_entries_per_user" json:"max_entries_per_user"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// UploadOpen reports whether the contest accepts uploads at the given moment.
func (c *Contest) UploadOpen(now time.Time) bool {
	return !now.Before(c.UploadStartAt) && !now.After(c.UploadEndAt)
}
