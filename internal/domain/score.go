package domain

import (
	"time"

	"github.com/google/uuid"
)

// JudgeScore is one judge's evaluation of one entry, 0-100.
type JudgeScore struct {
	ID        int64     `db:"id" json:"id"`
	ContestID uuid.UUID `db:"contest_id" json:"contest_id"`
	EntryID   uuid.UUID `db:"entry_id" json:"entry_id"`
	JudgeID   uuid.UUID `db:"judge_id" json:"judge_id"`
	Score     float64   `db:"score" json:"score"`
	Comment   *string   `db:"comment" json:"comment,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
