package gallery

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shutterclub/photocontest/internal/domain"
	"github.com/shutterclub/photocontest/internal/pkg/store"
	"github.com/shutterclub/photocontest/internal/pkg/store/storetest"
)

func TestList_EmptyCategoryShortCircuits(t *testing.T) {
	categoryID := int64(42)

	entriesQueried := false
	fake := &storetest.Fake{
		ListPhotoIDsByCategoryIDFn: func(ctx context.Context, id int64) ([]uuid.UUID, error) {
			return nil, nil
		},
		ListSeriesIDsByCategoryIDFn: func(ctx context.Context, id int64) ([]uuid.UUID, error) {
			return nil, nil
		},
		ListPublicPhotosFn: func(ctx context.Context, opts store.ListEntriesOpts) ([]*domain.Photo, error) {
			entriesQueried = true
			return nil, nil
		},
		ListPublicSeriesFn: func(ctx context.Context, opts store.ListEntriesOpts) ([]*domain.Series, error) {
			entriesQueried = true
			return nil, nil
		},
	}

	cards, err := NewGalleryService(fake).List(context.Background(), ListOpts{CategoryID: &categoryID})
	require.NoError(t, err)
	assert.Empty(t, cards)
	assert.False(t, entriesQueried)
}

func TestList_CategoryFilterNarrowsQueries(t *testing.T) {
	categoryID := int64(7)
	photoID := uuid.New()

	fake := &storetest.Fake{
		ListPhotoIDsByCategoryIDFn: func(ctx context.Context, id int64) ([]uuid.UUID, error) {
			return []uuid.UUID{photoID}, nil
		},
		ListSeriesIDsByCategoryIDFn: func(ctx context.Context, id int64) ([]uuid.UUID, error) {
			return nil, nil
		},
		ListPublicPhotosFn: func(ctx context.Context, opts store.ListEntriesOpts) ([]*domain.Photo, error) {
			assert.Equal(t, []uuid.UUID{photoID}, opts.OnlyIDs)
			return []*domain.Photo{{ID: photoID}}, nil
		},
		ListPublicSeriesFn: func(ctx context.Context, opts store.ListEntriesOpts) ([]*domain.Series, error) {
			t.Error("series query should be skipped when no series match the category")
			return nil, nil
		},
	}

	cards, err := NewGalleryService(fake).List(context.Background(), ListOpts{CategoryID: &categoryID})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, photoID, cards[0].ID)
}

func TestList_SortLatest(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	older, newer := uuid.New(), uuid.New()

	fake := &storetest.Fake{
		ListPublicPhotosFn: func(ctx context.Context, opts store.ListEntriesOpts) ([]*domain.Photo, error) {
			return []*domain.Photo{{ID: older, CreatedAt: base}}, nil
		},
		ListPublicSeriesFn: func(ctx context.Context, opts store.ListEntriesOpts) ([]*domain.Series, error) {
			return []*domain.Series{{ID: newer, CreatedAt: base.Add(time.Hour)}}, nil
		},
	}

	cards, err := NewGalleryService(fake).List(context.Background(), ListOpts{Sort: SortLatest})
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, newer, cards[0].ID)
	assert.Equal(t, older, cards[1].ID)
}

func TestList_SortPopular(t *testing.T) {
	loved, ignored := uuid.New(), uuid.New()

	fake := &storetest.Fake{
		ListPublicPhotosFn: func(ctx context.Context, opts store.ListEntriesOpts) ([]*domain.Photo, error) {
			return []*domain.Photo{{ID: ignored}, {ID: loved}}, nil
		},
		CountLikesByEntryIDsFn: func(ctx context.Context, ids []uuid.UUID) ([]*domain.LikeCount, error) {
			return []*domain.LikeCount{{EntryID: loved, Count: 9}}, nil
		},
	}

	cards, err := NewGalleryService(fake).List(context.Background(), ListOpts{Sort: SortPopular})
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, loved, cards[0].ID)
	assert.Equal(t, int64(9), cards[0].LikeCount)
	assert.Equal(t, int64(0), cards[1].LikeCount)
}
