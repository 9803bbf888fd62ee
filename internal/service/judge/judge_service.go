package judge

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/shutterclub/photocontest/internal/domain"
	"github.com/shutterclub/photocontest/internal/pkg/constants"
	"github.com/shutterclub/photocontest/internal/pkg/logger"
	"github.com/shutterclub/photocontest/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewJudgeService(store store.Store) *Service {
	return &Service{store: store}
}

// ScoredEntry pairs a card with the calling judge's own score, if any.
type ScoredEntry struct {
	domain.EntryCard
	MyScore *float64 `json:"my_score,omitempty"`
}

// ListEntries returns every public entry with the judge's existing score
// attached, newest first.
func (svc *Service) ListEntries(ctx context.Context, judgeID uuid.UUID) ([]ScoredEntry, error) {
	photos, err := svc.store.ListPublicPhotos(ctx, store.ListEntriesOpts{})
	if err != nil {
		return nil, fmt.Errorf("store.ListPublicPhotos: %w", err)
	}
	series, err := svc.store.ListPublicSeries(ctx, store.ListEntriesOpts{})
	if err != nil {
		return nil, fmt.Errorf("store.ListPublicSeries: %w", err)
	}

	scores, err := svc.store.ListScoresByJudge(ctx, judgeID)
	if err != nil {
		return nil, fmt.Errorf("store.ListScoresByJudge: %w", err)
	}
	scoresMap := make(map[uuid.UUID]float64, len(scores))
	for _, score := range scores {
		scoresMap[score.EntryID] = score.Score
	}

	entries := make([]ScoredEntry, 0, len(photos)+len(series))
	for _, p := range photos {
		entries = append(entries, scored(p.Card(), scoresMap))
	}
	for _, sr := range series {
		entries = append(entries, scored(sr.Card(), scoresMap))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries, nil
}

func scored(card domain.EntryCard, scoresMap map[uuid.UUID]float64) ScoredEntry {
	entry := ScoredEntry{EntryCard: card}
	if score, ok := scoresMap[card.ID]; ok {
		entry.MyScore = &score
	}
	return entry
}

// SubmitScore records or replaces the judge's score for an entry. Scoring
// the same entry twice overwrites, it never duplicates.
func (svc *Service) SubmitScore(ctx context.Context, judgeID uuid.UUID, request *domain.SubmitScoreRequest) error {
	if request.Score < 0 || request.Score > 100 {
		return constants.ErrScoreOutOfRange
	}

	contest, err := svc.store.GetCurrentContest(ctx)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return constants.ErrNoActiveContest
		}
		return fmt.Errorf("store.GetCurrentContest: %w", err)
	}

	if err := svc.entryExists(ctx, request.EntryID); err != nil {
		return err
	}

	score := &domain.JudgeScore{
		ContestID: contest.ID,
		EntryID:   request.EntryID,
		JudgeID:   judgeID,
		Score:     request.Score,
	}
	if comment := strings.TrimSpace(request.Comment); comment != "" {
		score.Comment = &comment
	}

	if err := svc.store.UpsertScore(ctx, score); err != nil {
		return fmt.Errorf("store.UpsertScore: %w", err)
	}

	logger.Infof(ctx, "score submitted: entry_id-%s, judge_id-%s", request.EntryID, judgeID)

	return nil
}

func (svc *Service) entryExists(ctx context.Context, entryID uuid.UUID) error {
	_, err := svc.store.GetPhotoByID(ctx, entryID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, constants.ErrDBNotFound) {
		return fmt.Errorf("store.GetPhotoByID: %w", err)
	}

	if _, err := svc.store.GetSeriesByID(ctx, entryID); err != nil {
		return fmt.Errorf("store.GetSeriesByID: %w", err)
	}

	return nil
}
