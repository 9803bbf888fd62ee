package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryKind tags the two entry variants. A single photo and an image series
// are separate rows in separate tables; everything that renders or exports
// them works on a shared projection built by the Card/export mappers.
type EntryKind string

const (
	EntryKindSingle EntryKind = "single"
	EntryKindSeries EntryKind = "series"
)

type EntryStatus string

const (
	EntryStatusPublic  EntryStatus = "public"
	EntryStatusHidden  EntryStatus = "hidden"
	EntryStatusBlocked EntryStatus = "blocked"
)

type Photo struct {
	ID           uuid.UUID   `db:"id" json:"id"`
	ContestID    uuid.UUID   `db:"contest_id" json:"contest_id"`
	UserID       uuid.UUID   `db:"user_id" json:"user_id"`
	Title        string      `db:"title" json:"title"`
	Description  string      `db:"description" json:"description"`
	AuthorName   string      `db:"author_name" json:"author_name"`
	ImageURL     string      `db:"image_url" json:"image_url"`
	ThumbnailURL *string     `db:"thumbnail_url" json:"thumbnail_url,omitempty"`
	FileSize     int64       `db:"file_size" json:"file_size"`
	Status       EntryStatus `db:"status" json:"status"`
	IsDeleted    bool        `db:"is_deleted" json:"-"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at" json:"updated_at"`
}

type Series struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	ContestID     uuid.UUID   `db:"contest_id" json:"contest_id"`
	UserID        uuid.UUID   `db:"user_id" json:"user_id"`
	Title         string      `db:"title" json:"title"`
	Description   string      `db:"description" json:"description"`
	AuthorName    string      `db:"author_name" json:"author_name"`
	CoverImageURL string      `db:"cover_image_url" json:"cover_image_url"`
	ImageCount    int         `db:"image_count" json:"image_count"`
	Status        EntryStatus `db:"status" json:"status"`
	IsDeleted     bool        `db:"is_deleted" json:"-"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at" json:"updated_at"`
}

type SeriesImage struct {
	ID       int64     `db:"id" json:"id"`
	SeriesID uuid.UUID `db:"series_id" json:"series_id"`
	ImageURL string    `db:"image_url" json:"image_url"`
	OrderIdx int       `db:"order_idx" json:"order_idx"`
}

// EntryCard is the common projection of both variants used by list views.
type EntryCard struct {
	ID           uuid.UUID   `json:"id"`
	Kind         EntryKind   `json:"kind"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	AuthorName   string      `json:"author_name"`
	ImageURL     string      `json:"image_url"`
	ImageCount   int         `json:"image_count"`
	Status       EntryStatus `json:"status"`
	LikeCount    int64       `json:"like_count"`
	CommentCount int64       `json:"comment_count"`
	CreatedAt    time.Time   `json:"created_at"`
}

func (p *Photo) Card() EntryCard {
	imageURL := p.ImageURL
	if p.ThumbnailURL != nil && *p.ThumbnailURL != "" {
		imageURL = *p.ThumbnailURL
	}

	return EntryCard{
		ID:          p.ID,
		Kind:        EntryKindSingle,
		Title:       p.Title,
		Description: p.Description,
		AuthorName:  p.AuthorName,
		ImageURL:    imageURL,
		ImageCount:  1,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
}

func (s *Series) Card() EntryCard {
	return EntryCard{
		ID:          s.ID,
		Kind:        EntryKindSeries,
		Title:       s.Title,
		Description: s.Description,
		AuthorName:  s.AuthorName,
		ImageURL:    s.CoverImageURL,
		ImageCount:  s.ImageCount,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
	}
}

// EntryDetail is the single-entry view: the card plus everything the detail
// page renders.
type EntryDetail struct {
	EntryCard
	Categories []string      `json:"categories"`
	Images     []SeriesImage `json:"images,omitempty"`
	Author     *Profile      `json:"author,omitempty"`
	Liked      bool          `json:"liked"`
}
