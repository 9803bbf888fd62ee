package gallery

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/shutterclub/photocontest/internal/domain"
	"github.com/shutterclub/photocontest/internal/pkg/store"
)

type Sort string

const (
	SortLatest  Sort = "latest"
	SortPopular Sort = "popular"
)

// ListOpts filters the public gallery. A nil CategoryID means all
// categories.
type ListOpts struct {
	CategoryID *int64
	Sort       Sort
}

type Service struct {
	store store.Store
}

func NewGalleryService(store store.Store) *Service {
	return &Service{store: store}
}

// List returns public, non-deleted entries of both variants as cards with
// like and comment counts merged in.
func (svc *Service) List(ctx context.Context, opts ListOpts) ([]domain.EntryCard, error) {
	photoOpts, seriesOpts := store.ListEntriesOpts{}, store.ListEntriesOpts{}
	if opts.CategoryID != nil {
		photoIDs, err := svc.store.ListPhotoIDsByCategoryID(ctx, *opts.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("store.ListPhotoIDsByCategoryID: %w", err)
		}
		seriesIDs, err := svc.store.ListSeriesIDsByCategoryID(ctx, *opts.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("store.ListSeriesIDsByCategoryID: %w", err)
		}

		// Nothing tagged with the category: done, no entry queries.
		if len(photoIDs) == 0 && len(seriesIDs) == 0 {
			return []domain.EntryCard{}, nil
		}

		photoOpts.OnlyIDs = photoIDs
		seriesOpts.OnlyIDs = seriesIDs
	}

	var (
		photos []*domain.Photo
		series []*domain.Series
		err    error
	)
	if photoOpts.OnlyIDs == nil || len(photoOpts.OnlyIDs) > 0 {
		if photos, err = svc.store.ListPublicPhotos(ctx, photoOpts); err != nil {
			return nil, fmt.Errorf("store.ListPublicPhotos: %w", err)
		}
	}
	if seriesOpts.OnlyIDs == nil || len(seriesOpts.OnlyIDs) > 0 {
		if series, err = svc.store.ListPublicSeries(ctx, seriesOpts); err != nil {
			return nil, fmt.Errorf("store.ListPublicSeries: %w", err)
		}
	}

	cards := make([]domain.EntryCard, 0, len(photos)+len(series))
	entryIDs := make([]uuid.UUID, 0, len(photos)+len(series))
	for _, p := range photos {
		cards = append(cards, p.Card())
		entryIDs = append(entryIDs, p.ID)
	}
	for _, sr := range series {
		cards = append(cards, sr.Card())
		entryIDs = append(entryIDs, sr.ID)
	}

	likeCounts, err := svc.store.CountLikesByEntryIDs(ctx, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("store.CountLikesByEntryIDs: %w", err)
	}
	commentCounts, err := svc.store.CountCommentsByEntryIDs(ctx, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("store.CountCommentsByEntryIDs: %w", err)
	}

	likesMap := make(map[uuid.UUID]int64, len(likeCounts))
	for _, lc := range likeCounts {
		likesMap[lc.EntryID] = lc.Count
	}
	commentsMap := make(map[uuid.UUID]int64, len(commentCounts))
	for _, cc := range commentCounts {
		commentsMap[cc.EntryID] = cc.Count
	}
	for i := range cards {
		cards[i].LikeCount = likesMap[cards[i].ID]
		cards[i].CommentCount = commentsMap[cards[i].ID]
	}

	switch opts.Sort {
	case SortPopular:
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].LikeCount > cards[j].LikeCount
		})
	default:
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].CreatedAt.After(cards[j].CreatedAt)
		})
	}

	return cards, nil
}
