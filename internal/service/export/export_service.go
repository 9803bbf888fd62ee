// Package export builds the admin export: one denormalized row per contest
// entry, with profile, category, judge-score and like data merged in.
package export

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/shutterclub/photocontest/internal/domain"
	"github.com/shutterclub/photocontest/internal/pkg/logger"
	"github.com/shutterclub/photocontest/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewExportService(store store.Store) *Service {
	return &Service{store: store}
}

// Aggregate loads every non-deleted entry of the contest, both variants,
// and merges profiles, categories, scores and likes into export rows,
// sorted by creation time descending. Any fetch failure aborts the whole
// aggregation; partial results are never returned.
func (s *Service) Aggregate(ctx context.Context, contestID uuid.UUID) ([]domain.ExportRow, error) {
	photos, err := s.store.ListContestPhotos(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("store.ListContestPhotos: %w", err)
	}

	series, err := s.store.ListContestSeries(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("store.ListContestSeries: %w", err)
	}

	if len(photos) == 0 && len(series) == 0 {
		return []domain.ExportRow{}, nil
	}

	ownerIDs := distinctOwnerIDs(photos, series)
	photoIDs := make([]uuid.UUID, 0, len(photos))
	for _, p := range photos {
		photoIDs = append(photoIDs, p.ID)
	}
	seriesIDs := make([]uuid.UUID, 0, len(series))
	for _, sr := range series {
		seriesIDs = append(seriesIDs, sr.ID)
	}

	// The remaining fetches are independent of each other; run them
	// concurrently and merge only after all of them are done. Empty id
	// sets are skipped without a fetch.
	var (
		profiles                  []*domain.Profile
		photoTags, seriesTags     []*domain.EntryCategory
		photoScores, seriesScores []*domain.JudgeScore
		photoLikes, seriesLikes   []*domain.LikeCount
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		if profiles, err = s.store.ListProfilesByIDs(egCtx, ownerIDs); err != nil {
			return fmt.Errorf("store.ListProfilesByIDs: %w", err)
		}
		return nil
	})
	if len(photoIDs) > 0 {
		eg.Go(func() error {
			var err error
			if photoTags, err = s.store.ListPhotoCategoriesByPhotoIDs(egCtx, photoIDs); err != nil {
				return fmt.Errorf("store.ListPhotoCategoriesByPhotoIDs: %w", err)
			}
			return nil
		})
		eg.Go(func() error {
			var err error
			if photoScores, err = s.store.ListScoresByEntryIDs(egCtx, photoIDs); err != nil {
				return fmt.Errorf("store.ListScoresByEntryIDs(photos): %w", err)
			}
			return nil
		})
		eg.Go(func() error {
			var err error
			if photoLikes, err = s.store.CountLikesByEntryIDs(egCtx, photoIDs); err != nil {
				return fmt.Errorf("store.CountLikesByEntryIDs(photos): %w", err)
			}
			return nil
		})
	}
	if len(seriesIDs) > 0 {
		eg.Go(func() error {
			var err error
			if seriesTags, err = s.store.ListSeriesCategoriesBySeriesIDs(egCtx, seriesIDs); err != nil {
				return fmt.Errorf("store.ListSeriesCategoriesBySeriesIDs: %w", err)
			}
			return nil
		})
		eg.Go(func() error {
			var err error
			if seriesScores, err = s.store.ListScoresByEntryIDs(egCtx, seriesIDs); err != nil {
				return fmt.Errorf("store.ListScoresByEntryIDs(series): %w", err)
			}
			return nil
		})
		eg.Go(func() error {
			var err error
			if seriesLikes, err = s.store.CountLikesByEntryIDs(egCtx, seriesIDs); err != nil {
				return fmt.Errorf("store.CountLikesByEntryIDs(series): %w", err)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		logger.Errorf(ctx, "export aggregation, contest_id-%s: %s", contestID, err.Error())
		return nil, err
	}

	// Fold the fan-out rows into per-entry lookups before merging, so a
	// photo with three tags still produces exactly one output row.
	profilesMap := make(map[uuid.UUID]*domain.Profile, len(profiles))
	for _, p := range profiles {
		profilesMap[p.ID] = p
	}

	categoriesMap := make(map[uuid.UUID][]string)
	for _, tag := range append(photoTags, seriesTags...) {
		categoriesMap[tag.EntryID] = append(categoriesMap[tag.EntryID], tag.CategoryName)
	}

	scoresMap := make(map[uuid.UUID][]float64)
	for _, score := range append(photoScores, seriesScores...) {
		scoresMap[score.EntryID] = append(scoresMap[score.EntryID], score.Score)
	}

	likesMap := make(map[uuid.UUID]int64)
	for _, lc := range append(photoLikes, seriesLikes...) {
		likesMap[lc.EntryID] = lc.Count
	}

	rows := make([]domain.ExportRow, 0, len(photos)+len(series))
	for _, p := range photos {
		rows = append(rows, buildRow(p.Card(), p.UserID, p.ImageURL, profilesMap, categoriesMap, scoresMap, likesMap))
	}
	for _, sr := range series {
		rows = append(rows, buildRow(sr.Card(), sr.UserID, sr.CoverImageURL, profilesMap, categoriesMap, scoresMap, likesMap))
	}

	// Stable: equal timestamps keep their fetch order.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})

	return rows, nil
}

func buildRow(
	card domain.EntryCard,
	ownerID uuid.UUID,
	imageURL string,
	profilesMap map[uuid.UUID]*domain.Profile,
	categoriesMap map[uuid.UUID][]string,
	scoresMap map[uuid.UUID][]float64,
	likesMap map[uuid.UUID]int64,
) domain.ExportRow {
	row := domain.ExportRow{
		ID:            card.ID,
		Kind:          card.Kind,
		Title:         card.Title,
		Description:   card.Description,
		AuthorName:    card.AuthorName,
		CategoryNames: joinNames(categoriesMap[card.ID]),
		ImageURL:      imageURL,
		ImageCount:    card.ImageCount,
		AvgJudgeScore: averageScore(scoresMap[card.ID]),
		LikeCount:     likesMap[card.ID],
		CreatedAt:     card.CreatedAt,
	}

	// A missing profile is expected for removed accounts; the row keeps
	// empty strings rather than failing the export.
	if profile, ok := profilesMap[ownerID]; ok {
		row.RealName = profile.RealName
		row.School = profile.School
		row.Branch = profile.Branch
	}

	return row
}

func joinNames(names []string) string {
	out := ""
	for i, name := range names {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out
}

// averageScore returns the arithmetic mean rounded to two decimals, half
// away from zero. No scores means 0, never NaN.
func averageScore(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}

	sum := decimal.Zero
	for _, score := range scores {
		sum = sum.Add(decimal.NewFromFloat(score))
	}

	return sum.Div(decimal.NewFromInt(int64(len(scores)))).Round(2).InexactFloat64()
}

func distinctOwnerIDs(photos []*domain.Photo, series []*domain.Series) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(photos)+len(series))
	ids := make([]uuid.UUID, 0, len(photos)+len(series))
	for _, p := range photos {
		if _, ok := seen[p.UserID]; !ok {
			seen[p.UserID] = struct{}{}
			ids = append(ids, p.UserID)
		}
	}
	for _, sr := range series {
		if _, ok := seen[sr.UserID]; !ok {
			seen[sr.UserID] = struct{}{}
			ids = append(ids, sr.UserID)
		}
	}

	return ids
}
