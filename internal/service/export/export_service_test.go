package export

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shutterclub/photocontest/internal/domain"
	"github.com/shutterclub/photocontest/internal/pkg/store/storetest"
)

func TestAggregate_EmptyContest(t *testing.T) {
	svc := NewExportService(&storetest.Fake{})

	rows, err := svc.Aggregate(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestAggregate_AverageScore(t *testing.T) {
	contestID := uuid.New()
	photoID := uuid.New()
	ownerID := uuid.New()

	tests := []struct {
		name   string
		scores []float64
		want   float64
	}{
		{name: "three judges", scores: []float64{80, 90, 95.5}, want: 88.5},
		{name: "no scores", scores: nil, want: 0},
		{name: "single score rounds half away from zero", scores: []float64{85.555}, want: 85.56},
		{name: "mean rounds half away from zero", scores: []float64{0.01, 0.02}, want: 0.02},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &storetest.Fake{
				ListContestPhotosFn: func(ctx context.Context, id uuid.UUID) ([]*domain.Photo, error) {
					return []*domain.Photo{{ID: photoID, UserID: ownerID, Title: "dawn"}}, nil
				},
				ListScoresByEntryIDsFn: func(ctx context.Context, entryIDs []uuid.UUID) ([]*domain.JudgeScore, error) {
					scores := make([]*domain.JudgeScore, 0, len(tt.scores))
					for _, s := range tt.scores {
						scores = append(scores, &domain.JudgeScore{EntryID: photoID, JudgeID: uuid.New(), Score: s})
					}
					return scores, nil
				},
			}

			rows, err := NewExportService(fake).Aggregate(context.Background(), contestID)
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, tt.want, rows[0].AvgJudgeScore)
		})
	}
}

func TestAggregate_MergesProfileAndCategories(t *testing.T) {
	photoID := uuid.New()
	ownerID := uuid.New()

	fake := &storetest.Fake{
		ListContestPhotosFn: func(ctx context.Context, id uuid.UUID) ([]*domain.Photo, error) {
			return []*domain.Photo{{
				ID: photoID, UserID: ownerID, Title: "dawn", AuthorName: "ann", ImageURL: "http://img/1.jpg",
			}}, nil
		},
		ListProfilesByIDsFn: func(ctx context.Context, ids []uuid.UUID) ([]*domain.Profile, error) {
			assert.Equal(t, []uuid.UUID{ownerID}, ids)
			return []*domain.Profile{{ID: ownerID, RealName: "Ann Lee", School: "Central High", Branch: "North"}}, nil
		},
		ListPhotoCategoriesByPhotoIDsFn: func(ctx context.Context, ids []uuid.UUID) ([]*domain.EntryCategory, error) {
			return []*domain.EntryCategory{
				{EntryID: photoID, CategoryName: "Nature"},
				{EntryID: photoID, CategoryName: "Portrait"},
			}, nil
		},
		CountLikesByEntryIDsFn: func(ctx context.Context, ids []uuid.UUID) ([]*domain.LikeCount, error) {
			return []*domain.LikeCount{{EntryID: photoID, Count: 7}}, nil
		},
	}

	rows, err := NewExportService(fake).Aggregate(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, domain.EntryKindSingle, row.Kind)
	assert.Equal(t, "ann", row.AuthorName)
	assert.Equal(t, "Ann Lee", row.RealName)
	assert.Equal(t, "Central High", row.School)
	assert.Equal(t, "North", row.Branch)
	assert.Equal(t, "Nature, Portrait", row.CategoryNames)
	assert.Equal(t, "http://img/1.jpg", row.ImageURL)
	assert.Equal(t, 1, row.ImageCount)
	assert.Equal(t, int64(7), row.LikeCount)
}

func TestAggregate_MissingProfileKeepsRow(t *testing.T) {
	photoID := uuid.New()

	fake := &storetest.Fake{
		ListContestPhotosFn: func(ctx context.Context, id uuid.UUID) ([]*domain.Photo, error) {
			return []*domain.Photo{{ID: photoID, UserID: uuid.New(), Title: "orphan"}}, nil
		},
	}

	rows, err := NewExportService(fake).Aggregate(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].RealName)
	assert.Equal(t, "", rows[0].School)
	assert.Equal(t, "", rows[0].Branch)
	assert.Equal(t, int64(0), rows[0].LikeCount)
}

func TestAggregate_SeriesVariant(t *testing.T) {
	seriesID := uuid.New()

	fake := &storetest.Fake{
		ListContestSeriesFn: func(ctx context.Context, id uuid.UUID) ([]*domain.Series, error) {
			return []*domain.Series{{
				ID: seriesID, UserID: uuid.New(), Title: "seasons",
				CoverImageURL: "http://img/cover.jpg", ImageCount: 5,
			}}, nil
		},
	}

	rows, err := NewExportService(fake).Aggregate(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.EntryKindSeries, rows[0].Kind)
	assert.Equal(t, 5, rows[0].ImageCount)
	assert.Equal(t, "http://img/cover.jpg", rows[0].ImageURL)
}

func TestAggregate_SortsByCreatedAtDescStable(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	older := uuid.New()
	newer := uuid.New()
	tiedA := uuid.New()
	tiedB := uuid.New()

	fake := &storetest.Fake{
		ListContestPhotosFn: func(ctx context.Context, id uuid.UUID) ([]*domain.Photo, error) {
			return []*domain.Photo{
				{ID: older, UserID: uuid.New(), CreatedAt: base.Add(-time.Hour)},
				{ID: tiedA, UserID: uuid.New(), CreatedAt: base},
				{ID: tiedB, UserID: uuid.New(), CreatedAt: base},
			}, nil
		},
		ListContestSeriesFn: func(ctx context.Context, id uuid.UUID) ([]*domain.Series, error) {
			return []*domain.Series{{ID: newer, UserID: uuid.New(), CreatedAt: base.Add(time.Hour)}}, nil
		},
	}

	rows, err := NewExportService(fake).Aggregate(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, newer, rows[0].ID)
	// Equal timestamps keep their fetch order.
	assert.Equal(t, tiedA, rows[1].ID)
	assert.Equal(t, tiedB, rows[2].ID)
	assert.Equal(t, older, rows[3].ID)
}

func TestAggregate_SkipsFetchesForEmptyVariant(t *testing.T) {
	photoID := uuid.New()
	var seriesFetches atomic.Int32

	fake := &storetest.Fake{
		ListContestPhotosFn: func(ctx context.Context, id uuid.UUID) ([]*domain.Photo, error) {
			return []*domain.Photo{{ID: photoID, UserID: uuid.New()}}, nil
		},
		ListSeriesCategoriesBySeriesIDsFn: func(ctx context.Context, ids []uuid.UUID) ([]*domain.EntryCategory, error) {
			seriesFetches.Add(1)
			return nil, nil
		},
		ListScoresByEntryIDsFn: func(ctx context.Context, ids []uuid.UUID) ([]*domain.JudgeScore, error) {
			assert.Equal(t, []uuid.UUID{photoID}, ids)
			return nil, nil
		},
	}

	_, err := NewExportService(fake).Aggregate(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Zero(t, seriesFetches.Load())
}

func TestAggregate_FetchErrorAborts(t *testing.T) {
	cause := errors.New("connection reset")

	fake := &storetest.Fake{
		ListContestPhotosFn: func(ctx context.Context, id uuid.UUID) ([]*domain.Photo, error) {
			return []*domain.Photo{{ID: uuid.New(), UserID: uuid.New()}}, nil
		},
		CountLikesByEntryIDsFn: func(ctx context.Context, ids []uuid.UUID) ([]*domain.LikeCount, error) {
			return nil, cause
		},
	}

	rows, err := NewExportService(fake).Aggregate(context.Background(), uuid.New())
	require.ErrorIs(t, err, cause)
	assert.Nil(t, rows)
}

func TestAggregate_OneRowPerEntryDespiteManyTags(t *testing.T) {
	photoID := uuid.New()

	fake := &storetest.Fake{
		ListContestPhotosFn: func(ctx context.Context, id uuid.UUID) ([]*domain.Photo, error) {
			return []*domain.Photo{{ID: photoID, UserID: uuid.New()}}, nil
		},
		ListPhotoCategoriesByPhotoIDsFn: func(ctx context.Context, ids []uuid.UUID) ([]*domain.EntryCategory, error) {
			return []*domain.EntryCategory{
				{EntryID: photoID, CategoryName: "A"},
				{EntryID: photoID, CategoryName: "B"},
				{EntryID: photoID, CategoryName: "C"},
			}, nil
		},
	}

	rows, err := NewExportService(fake).Aggregate(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A, B, C", rows[0].CategoryNames)
}
