package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/shutterclub/photocontest/internal/domain"
	"github.com/shutterclub/photocontest/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// ListEntriesOpts narrows public entry listings. A nil OnlyIDs means no id
// filter; an empty non-nil set means "match nothing" and is short-circuited
// by the callers before a query is built.
type ListEntriesOpts struct {
	OnlyIDs []uuid.UUID
}

type Store interface {
	CreateProfile(ctx context.Context, profile *domain.Profile) error
	GetProfileByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*domain.Profile, error)
	ListProfiles(ctx context.Context) ([]*domain.Profile, error)
	ListProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Profile, error)
	UpdateProfileRole(ctx context.Context, id uuid.UUID, role domain.Role) error

	ListContests(ctx context.Context) ([]*domain.Contest, error)
	GetContestByID(ctx context.Context, id uuid.UUID) (*domain.Contest, error)
	GetCurrentContest(ctx context.Context) (*domain.Contest, error)

	ListCategories(ctx context.Context) ([]*domain.Category, error)
	LinkPhotoCategories(ctx context.Context, photoID uuid.UUID, categoryIDs []int64) error
	LinkSeriesCategories(ctx context.Context, seriesID uuid.UUID, categoryIDs []int64) error
	ListPhotoCategoriesByPhotoIDs(ctx context.Context, photoIDs []uuid.UUID) ([]*domain.EntryCategory, error)
	ListSeriesCategoriesBySeriesIDs(ctx context.Context, seriesIDs []uuid.UUID) ([]*domain.EntryCategory, error)
	ListPhotoIDsByCategoryID(ctx context.Context, categoryID int64) ([]uuid.UUID, error)
	ListSeriesIDsByCategoryID(ctx context.Context, categoryID int64) ([]uuid.UUID, error)

	InsertPhoto(ctx context.Context, photo *domain.Photo) error
	InsertSeries(ctx context.Context, series *domain.Series, images []*domain.SeriesImage) error
	GetPhotoByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error)
	GetSeriesByID(ctx context.Context, id uuid.UUID) (*domain.Series, error)
	ListSeriesImages(ctx context.Context, seriesID uuid.UUID) ([]domain.SeriesImage, error)
	ListContestPhotos(ctx context.Context, contestID uuid.UUID) ([]*domain.Photo, error)
	ListContestSeries(ctx context.Context, contestID uuid.UUID) ([]*domain.Series, error)
	ListPublicPhotos(ctx context.Context, opts ListEntriesOpts) ([]*domain.Photo, error)
	ListPublicSeries(ctx context.Context, opts ListEntriesOpts) ([]*domain.Series, error)
	ListUserPhotos(ctx context.Context, userID uuid.UUID) ([]*domain.Photo, error)
	ListUserSeries(ctx context.Context, userID uuid.UUID) ([]*domain.Series, error)
	SoftDeletePhoto(ctx context.Context, id, userID uuid.UUID) (bool, error)
	SoftDeleteSeries(ctx context.Context, id, userID uuid.UUID) (bool, error)
	CountUserEntries(ctx context.Context, contestID, userID uuid.UUID) (int64, error)

	UpsertScore(ctx context.Context, score *domain.JudgeScore) error
	ListScoresByJudge(ctx context.Context, judgeID uuid.UUID) ([]*domain.JudgeScore, error)
	ListScoresByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]*domain.JudgeScore, error)

	InsertLike(ctx context.Context, entryID, userID uuid.UUID) error
	DeleteLike(ctx context.Context, entryID, userID uuid.UUID) error
	HasLiked(ctx context.Context, entryID, userID uuid.UUID) (bool, error)
	CountLikes(ctx context.Context, entryID uuid.UUID) (int64, error)
	CountLikesByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]*domain.LikeCount, error)

	InsertComment(ctx context.Context, comment *domain.Comment) error
	ListCommentsByEntryID(ctx context.Context, entryID uuid.UUID) ([]*domain.CommentView, error)
	CountCommentsByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]*domain.CommentCount, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
