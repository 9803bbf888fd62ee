package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/shutterclub/photocontest/internal/domain"
)

var (
	photoColumns = []string{
		"id", "contest_id", "user_id", "title", "description", "author_name",
		"image_url", "thumbnail_url", "file_size", "status", "is_deleted",
		"created_at", "updated_at",
	}
	seriesColumns = []string{
		"id", "contest_id", "user_id", "title", "description", "author_name",
		"cover_image_url", "image_count", "status", "is_deleted",
		"created_at", "updated_at",
	}
	seriesImageColumns = []string{"id", "series_id", "image_url", "order_idx"}
)

func (s *store) InsertPhoto(ctx context.Context, photo *domain.Photo) error {
	query := builder().Insert(tablePhotos).
		Columns("id", "contest_id", "user_id", "title", "description",
			"author_name", "image_url", "thumbnail_url", "file_size", "status").
		Values(photo.ID, photo.ContestID, photo.UserID, photo.Title, photo.Description,
			photo.AuthorName, photo.ImageURL, photo.ThumbnailURL, photo.FileSize, photo.Status)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return fmt.Errorf("insert photo: %w", wrapErr(err))
	}

	return nil
}

func (s *store) InsertSeries(ctx context.Context, series *domain.Series, images []*domain.SeriesImage) error {
	query := builder().Insert(tableSeries).
		Columns("id", "contest_id", "user_id", "title", "description",
			"author_name", "cover_image_url", "image_count", "status").
		Values(series.ID, series.ContestID, series.UserID, series.Title, series.Description,
			series.AuthorName, series.CoverImageURL, series.ImageCount, series.Status)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return fmt.Errorf("insert series: %w", wrapErr(err))
	}

	imagesQuery := builder().Insert(tableSeriesImages).
		Columns("series_id", "image_url", "order_idx")
	for _, image := range images {
		imagesQuery = imagesQuery.Values(series.ID, image.ImageURL, image.OrderIdx)
	}

	if _, err := s.pool.Execx(ctx, imagesQuery); err != nil {
		return fmt.Errorf("insert series images: %w", wrapErr(err))
	}

	return nil
}

func (s *store) GetPhotoByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
	query := builder().Select(photoColumns...).
		From(tablePhotos).
		Where(sq.And{sq.Eq{"id": id}, sq.Eq{"is_deleted": false}})

	var selected domain.Photo
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) GetSeriesByID(ctx context.Context, id uuid.UUID) (*domain.Series, error) {
	query := builder().Select(seriesColumns...).
		From(tableSeries).
		Where(sq.And{sq.Eq{"id": id}, sq.Eq{"is_deleted": false}})

	var selected domain.Series
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListSeriesImages(ctx context.Context, seriesID uuid.UUID) ([]domain.SeriesImage, error) {
	query := builder().Select(seriesImageColumns...).
		From(tableSeriesImages).
		Where(sq.Eq{"series_id": seriesID}).
		OrderBy("order_idx")

	var selected []domain.SeriesImage
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// ListContestPhotos returns every non-deleted photo of the contest,
// newest first, regardless of status. Used by the admin export.
func (s *store) ListContestPhotos(ctx context.Context, contestID uuid.UUID) ([]*domain.Photo, error) {
	query := builder().Select(photoColumns...).
		From(tablePhotos).
		Where(sq.And{sq.Eq{"contest_id": contestID}, sq.Eq{"is_deleted": false}}).
		OrderBy("created_at desc")

	var selected []*domain.Photo
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListContestSeries(ctx context.Context, contestID uuid.UUID) ([]*domain.Series, error) {
	query := builder().Select(seriesColumns...).
		From(tableSeries).
		Where(sq.And{sq.Eq{"contest_id": contestID}, sq.Eq{"is_deleted": false}}).
		OrderBy("created_at desc")

	var selected []*domain.Series
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListPublicPhotos(ctx context.Context, opts ListEntriesOpts) ([]*domain.Photo, error) {
	query := builder().Select(photoColumns...).
		From(tablePhotos).
		Where(sq.And{sq.Eq{"status": domain.EntryStatusPublic}, sq.Eq{"is_deleted": false}}).
		OrderBy("created_at desc")
	if opts.OnlyIDs != nil {
		query = query.Where(sq.Eq{"id": opts.OnlyIDs})
	}

	var selected []*domain.Photo
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListPublicSeries(ctx context.Context, opts ListEntriesOpts) ([]*domain.Series, error) {
	query := builder().Select(seriesColumns...).
		From(tableSeries).
		Where(sq.And{sq.Eq{"status": domain.EntryStatusPublic}, sq.Eq{"is_deleted": false}}).
		OrderBy("created_at desc")
	if opts.OnlyIDs != nil {
		query = query.Where(sq.Eq{"id": opts.OnlyIDs})
	}

	var selected []*domain.Series
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListUserPhotos(ctx context.Context, userID uuid.UUID) ([]*domain.Photo, error) {
	query := builder().Select(photoColumns...).
		From(tablePhotos).
		Where(sq.And{sq.Eq{"user_id": userID}, sq.Eq{"is_deleted": false}}).
		OrderBy("created_at desc")

	var selected []*domain.Photo
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListUserSeries(ctx context.Context, userID uuid.UUID) ([]*domain.Series, error) {
	query := builder().Select(seriesColumns...).
		From(tableSeries).
		Where(sq.And{sq.Eq{"user_id": userID}, sq.Eq{"is_deleted": false}}).
		OrderBy("created_at desc")

	var selected []*domain.Series
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) SoftDeletePhoto(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	return s.softDeleteEntry(ctx, tablePhotos, id, userID)
}

func (s *store) SoftDeleteSeries(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	return s.softDeleteEntry(ctx, tableSeries, id, userID)
}

// softDeleteEntry flips is_deleted for the owner's entry. The user_id
// predicate keeps deletion owner-only at the query level.
func (s *store) softDeleteEntry(ctx context.Context, table string, id, userID uuid.UUID) (bool, error) {
	query := builder().Update(table).
		Set("is_deleted", true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.And{sq.Eq{"id": id}, sq.Eq{"user_id": userID}, sq.Eq{"is_deleted": false}})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return false, fmt.Errorf("soft delete entry: %w", wrapErr(err))
	}

	return tag.RowsAffected() > 0, nil
}

func (s *store) CountUserEntries(ctx context.Context, contestID, userID uuid.UUID) (int64, error) {
	var total int64
	for _, table := range []string{tablePhotos, tableSeries} {
		query := builder().Select("count(*)").
			From(table).
			Where(sq.And{
				sq.Eq{"contest_id": contestID},
				sq.Eq{"user_id": userID},
				sq.Eq{"is_deleted": false},
			})

		var count int64
		if err := s.pool.Getx(ctx, &count, query); err != nil {
			return 0, wrapErr(err)
		}
		total += count
	}

	return total, nil
}
