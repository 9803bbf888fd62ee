// Package storetest provides a hand-rolled store.Store fake for service
// tests. Each method delegates to an optional function field; unset fields
// return zero values so tests only wire what they exercise.
package storetest

import (
	"context"

	"github.com/google/uuid"

	"github.com/shutterclub/photocontest/internal/domain"
	"github.com/shutterclub/photocontest/internal/pkg/store"
)

type Fake struct {
	CreateProfileFn     func(ctx context.Context, profile *domain.Profile) error
	GetProfileByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetProfileByEmailFn func(ctx context.Context, email string) (*domain.Profile, error)
	ListProfilesFn      func(ctx context.Context) ([]*domain.Profile, error)
	ListProfilesByIDsFn func(ctx context.Context, ids []uuid.UUID) ([]*domain.Profile, error)
	UpdateProfileRoleFn func(ctx context.Context, id uuid.UUID, role domain.Role) error

	ListContestsFn      func(ctx context.Context) ([]*domain.Contest, error)
	GetContestByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Contest, error)
	GetCurrentContestFn func(ctx context.Context) (*domain.Contest, error)

	ListCategoriesFn                  func(ctx context.Context) ([]*domain.Category, error)
	LinkPhotoCategoriesFn             func(ctx context.Context, photoID uuid.UUID, categoryIDs []int64) error
	LinkSeriesCategoriesFn            func(ctx context.Context, seriesID uuid.UUID, categoryIDs []int64) error
	ListPhotoCategoriesByPhotoIDsFn   func(ctx context.Context, photoIDs []uuid.UUID) ([]*domain.EntryCategory, error)
	ListSeriesCategoriesBySeriesIDsFn func(ctx context.Context, seriesIDs []uuid.UUID) ([]*domain.EntryCategory, error)
	ListPhotoIDsByCategoryIDFn        func(ctx context.Context, categoryID int64) ([]uuid.UUID, error)
	ListSeriesIDsByCategoryIDFn       func(ctx context.Context, categoryID int64) ([]uuid.UUID, error)

	InsertPhotoFn       func(ctx context.Context, photo *domain.Photo) error
	InsertSeriesFn      func(ctx context.Context, series *domain.Series, images []*domain.SeriesImage) error
	GetPhotoByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.Photo, error)
	GetSeriesByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Series, error)
	ListSeriesImagesFn  func(ctx context.Context, seriesID uuid.UUID) ([]domain.SeriesImage, error)
	ListContestPhotosFn func(ctx context.Context, contestID uuid.UUID) ([]*domain.Photo, error)
	ListContestSeriesFn func(ctx context.Context, contestID uuid.UUID) ([]*domain.Series, error)
	ListPublicPhotosFn  func(ctx context.Context, opts store.ListEntriesOpts) ([]*domain.Photo, error)
	ListPublicSeriesFn  func(ctx context.Context, opts store.ListEntriesOpts) ([]*domain.Series, error)
	ListUserPhotosFn    func(ctx context.Context, userID uuid.UUID) ([]*domain.Photo, error)
	ListUserSeriesFn    func(ctx context.Context, userID uuid.UUID) ([]*domain.Series, error)
	SoftDeletePhotoFn   func(ctx context.Context, id, userID uuid.UUID) (bool, error)
	SoftDeleteSeriesFn  func(ctx context.Context, id, userID uuid.UUID) (bool, error)
	CountUserEntriesFn  func(ctx context.Context, contestID, userID uuid.UUID) (int64, error)

	UpsertScoreFn          func(ctx context.Context, score *domain.JudgeScore) error
	ListScoresByJudgeFn    func(ctx context.Context, judgeID uuid.UUID) ([]*domain.JudgeScore, error)
	ListScoresByEntryIDsFn func(ctx context.Context, entryIDs []uuid.UUID) ([]*domain.JudgeScore, error)

	InsertLikeFn           func(ctx context.Context, entryID, userID uuid.UUID) error
	DeleteLikeFn           func(ctx context.Context, entryID, userID uuid.UUID) error
	HasLikedFn             func(ctx context.Context, entryID, userID uuid.UUID) (bool, error)
	CountLikesFn           func(ctx context.Context, entryID uuid.UUID) (int64, error)
	CountLikesByEntryIDsFn func(ctx context.Context, entryIDs []uuid.UUID) ([]*domain.LikeCount, error)

	InsertCommentFn           func(ctx context.Context, comment *domain.Comment) error
	ListCommentsByEntryIDFn   func(ctx context.Context, entryID uuid.UUID) ([]*domain.CommentView, error)
	CountCommentsByEntryIDsFn func(ctx context.Context, entryIDs []uuid.UUID) ([]*domain.CommentCount, error)
}

var _ store.Store = (*Fake)(nil)

func (f *Fake) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	if f.CreateProfileFn == nil {
		return nil
	}
	return f.CreateProfileFn(ctx, profile)
}

func (f *Fake) GetProfileByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if f.GetProfileByIDFn == nil {
		return nil, nil
	}
	return f.GetProfileByIDFn(ctx, id)
}

func (f *Fake) GetProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	if f.GetProfileByEmailFn == nil {
		return nil, nil
	}
	return f.GetProfileByEmailFn(ctx, email)
}

func (f *Fake) ListProfiles(ctx context.Context) ([]*domain.Profile, error) {
	if f.ListProfilesFn == nil {
		return nil, nil
	}
	return f.ListProfilesFn(ctx)
}

func (f *Fake) ListProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Profile, error) {
	if f.ListProfilesByIDsFn == nil {
		return nil, nil
	}
	return f.ListProfilesByIDsFn(ctx, ids)
}

func (f *Fake) UpdateProfileRole(ctx context.Context, id uuid.UUID, role domain.Role) error {
	if f.UpdateProfileRoleFn == nil {
		return nil
	}
	return f.UpdateProfileRoleFn(ctx, id, role)
}

func (f *Fake) ListContests(ctx context.Context) ([]*domain.Contest, error) {
	if f.ListContestsFn == nil {
		return nil, nil
	}
	return f.ListContestsFn(ctx)
}

func (f *Fake) GetContestByID(ctx context.Context, id uuid.UUID) (*domain.Contest, error) {
	if f.GetContestByIDFn == nil {
		return nil, nil
	}
	return f.GetContestByIDFn(ctx, id)
}

func (f *Fake) GetCurrentContest(ctx context.Context) (*domain.Contest, error) {
	if f.GetCurrentContestFn == nil {
		return nil, nil
	}
	return f.GetCurrentContestFn(ctx)
}

func (f *Fake) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	if f.ListCategoriesFn == nil {
		return nil, nil
	}
	return f.ListCategoriesFn(ctx)
}

func (f *Fake) LinkPhotoCategories(ctx context.Context, photoID uuid.UUID, categoryIDs []int64) error {
	if f.LinkPhotoCategoriesFn == nil {
		return nil
	}
	return f.LinkPhotoCategoriesFn(ctx, photoID, categoryIDs)
}

func (f *Fake) LinkSeriesCategories(ctx context.Context, seriesID uuid.UUID, categoryIDs []int64) error {
	if f.LinkSeriesCategoriesFn == nil {
		return nil
	}
	return f.LinkSeriesCategoriesFn(ctx, seriesID, categoryIDs)
}

func (f *Fake) ListPhotoCategoriesByPhotoIDs(ctx context.Context, photoIDs []uuid.UUID) ([]*domain.EntryCategory, error) {
	if f.ListPhotoCategoriesByPhotoIDsFn == nil {
		return nil, nil
	}
	return f.ListPhotoCategoriesByPhotoIDsFn(ctx, photoIDs)
}

func (f *Fake) ListSeriesCategoriesBySeriesIDs(ctx context.Context, seriesIDs []uuid.UUID) ([]*domain.EntryCategory, error) {
	if f.ListSeriesCategoriesBySeriesIDsFn == nil {
		return nil, nil
	}
	return f.ListSeriesCategoriesBySeriesIDsFn(ctx, seriesIDs)
}

func (f *Fake) ListPhotoIDsByCategoryID(ctx context.Context, categoryID int64) ([]uuid.UUID, error) {
	if f.ListPhotoIDsByCategoryIDFn == nil {
		return nil, nil
	}
	return f.ListPhotoIDsByCategoryIDFn(ctx, categoryID)
}

func (f *Fake) ListSeriesIDsByCategoryID(ctx context.Context, categoryID int64) ([]uuid.UUID, error) {
	if f.ListSeriesIDsByCategoryIDFn == nil {
		return nil, nil
	}
	return f.ListSeriesIDsByCategoryIDFn(ctx, categoryID)
}

func (f *Fake) InsertPhoto(ctx context.Context, photo *domain.Photo) error {
	if f.InsertPhotoFn == nil {
		return nil
	}
	return f.InsertPhotoFn(ctx, photo)
}

func (f *Fake) InsertSeries(ctx context.Context, series *domain.Series, images []*domain.SeriesImage) error {
	if f.InsertSeriesFn == nil {
		return nil
	}
	return f.InsertSeriesFn(ctx, series, images)
}

func (f *Fake) GetPhotoByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
	if f.GetPhotoByIDFn == nil {
		return nil, nil
	}
	return f.GetPhotoByIDFn(ctx, id)
}

func (f *Fake) GetSeriesByID(ctx context.Context, id uuid.UUID) (*domain.Series, error) {
	if f.GetSeriesByIDFn == nil {
		return nil, nil
	}
	return f.GetSeriesByIDFn(ctx, id)
}

func (f *Fake) ListSeriesImages(ctx context.Context, seriesID uuid.UUID) ([]domain.SeriesImage, error) {
	if f.ListSeriesImagesFn == nil {
		return nil, nil
	}
	return f.ListSeriesImagesFn(ctx, seriesID)
}

func (f *Fake) ListContestPhotos(ctx context.Context, contestID uuid.UUID) ([]*domain.Photo, error) {
	if f.ListContestPhotosFn == nil {
		return nil, nil
	}
	return f.ListContestPhotosFn(ctx, contestID)
}

func (f *Fake) ListContestSeries(ctx context.Context, contestID uuid.UUID) ([]*domain.Series, error) {
	if f.ListContestSeriesFn == nil {
		return nil, nil
	}
	return f.ListContestSeriesFn(ctx, contestID)
}

func (f *Fake) ListPublicPhotos(ctx context.Context, opts store.ListEntriesOpts) ([]*domain.Photo, error) {
	if f.ListPublicPhotosFn == nil {
		return nil, nil
	}
	return f.ListPublicPhotosFn(ctx, opts)
}

func (f *Fake) ListPublicSeries(ctx context.Context, opts store.ListEntriesOpts) ([]*domain.Series, error) {
	if f.ListPublicSeriesFn == nil {
		return nil, nil
	}
	return f.ListPublicSeriesFn(ctx, opts)
}

func (f *Fake) ListUserPhotos(ctx context.Context, userID uuid.UUID) ([]*domain.Photo, error) {
	if f.ListUserPhotosFn == nil {
		return nil, nil
	}
	return f.ListUserPhotosFn(ctx, userID)
}

func (f *Fake) ListUserSeries(ctx context.Context, userID uuid.UUID) ([]*domain.Series, error) {
	if f.ListUserSeriesFn == nil {
		return nil, nil
	}
	return f.ListUserSeriesFn(ctx, userID)
}

func (f *Fake) SoftDeletePhoto(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	if f.SoftDeletePhotoFn == nil {
		return false, nil
	}
	return f.SoftDeletePhotoFn(ctx, id, userID)
}

func (f *Fake) SoftDeleteSeries(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	if f.SoftDeleteSeriesFn == nil {
		return false, nil
	}
	return f.SoftDeleteSeriesFn(ctx, id, userID)
}

func (f *Fake) CountUserEntries(ctx context.Context, contestID, userID uuid.UUID) (int64, error) {
	if f.CountUserEntriesFn == nil {
		return 0, nil
	}
	return f.CountUserEntriesFn(ctx, contestID, userID)
}

func (f *Fake) UpsertScore(ctx context.Context, score *domain.JudgeScore) error {
	if f.UpsertScoreFn == nil {
		return nil
	}
	return f.UpsertScoreFn(ctx, score)
}

func (f *Fake) ListScoresByJudge(ctx context.Context, judgeID uuid.UUID) ([]*domain.JudgeScore, error) {
	if f.ListScoresByJudgeFn == nil {
		return nil, nil
	}
	return f.ListScoresByJudgeFn(ctx, judgeID)
}

func (f *Fake) ListScoresByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]*domain.JudgeScore, error) {
	if f.ListScoresByEntryIDsFn == nil {
		return nil, nil
	}
	return f.ListScoresByEntryIDsFn(ctx, entryIDs)
}

func (f *Fake) InsertLike(ctx context.Context, entryID, userID uuid.UUID) error {
	if f.InsertLikeFn == nil {
		return nil
	}
	return f.InsertLikeFn(ctx, entryID, userID)
}

func (f *Fake) DeleteLike(ctx context.Context, entryID, userID uuid.UUID) error {
	if f.DeleteLikeFn == nil {
		return nil
	}
	return f.DeleteLikeFn(ctx, entryID, userID)
}

func (f *Fake) HasLiked(ctx context.Context, entryID, userID uuid.UUID) (bool, error) {
	if f.HasLikedFn == nil {
		return false, nil
	}
	return f.HasLikedFn(ctx, entryID, userID)
}

func (f *Fake) CountLikes(ctx context.Context, entryID uuid.UUID) (int64, error) {
	if f.CountLikesFn == nil {
		return 0, nil
	}
	return f.CountLikesFn(ctx, entryID)
}

func (f *Fake) CountLikesByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]*domain.LikeCount, error) {
	if f.CountLikesByEntryIDsFn == nil {
		return nil, nil
	}
	return f.CountLikesByEntryIDsFn(ctx, entryIDs)
}

func (f *Fake) InsertComment(ctx context.Context, comment *domain.Comment) error {
	if f.InsertCommentFn == nil {
		return nil
	}
	return f.InsertCommentFn(ctx, comment)
}

func (f *Fake) ListCommentsByEntryID(ctx context.Context, entryID uuid.UUID) ([]*domain.CommentView, error) {
	if f.ListCommentsByEntryIDFn == nil {
		return nil, nil
	}
	return f.ListCommentsByEntryIDFn(ctx, entryID)
}

func (f *Fake) CountCommentsByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]*domain.CommentCount, error) {
	if f.CountCommentsByEntryIDsFn == nil {
		return nil, nil
	}
	return f.CountCommentsByEntryIDsFn(ctx, entryIDs)
}
