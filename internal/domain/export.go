package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExportRow is one denormalized line of the admin export: one row per entry,
// both variants, with profile, category, score and like data merged in.
type ExportRow struct {
	ID            uuid.UUID `json:"id"`
	Kind          EntryKind `json:"kind"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	AuthorName    string    `json:"author_name"`
	RealName      string    `json:"real_name"`
	School        string    `json:"school"`
	Branch        string    `json:"branch"`
	CategoryNames string    `json:"category_names"`
	ImageURL      string    `json:"image_url"`
	ImageCount    int       `json:"image_count"`
	AvgJudgeScore float64   `json:"avg_judge_score"`
	LikeCount     int64     `json:"like_count"`
	CreatedAt     time.Time `json:"created_at"`
}
