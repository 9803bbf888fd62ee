package judge

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shutterclub/photocontest/internal/domain"
	"github.com/shutterclub/photocontest/internal/pkg/constants"
	"github.com/shutterclub/photocontest/internal/pkg/store"
	"github.com/shutterclub/photocontest/internal/pkg/store/storetest"
)

func TestListEntries_AttachesOwnScores(t *testing.T) {
	judgeID := uuid.New()
	scoredID, unscoredID := uuid.New(), uuid.New()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	fake := &storetest.Fake{
		ListPublicPhotosFn: func(ctx context.Context, opts store.ListEntriesOpts) ([]*domain.Photo, error) {
			return []*domain.Photo{
				{ID: scoredID, CreatedAt: base.Add(time.Hour)},
				{ID: unscoredID, CreatedAt: base},
			}, nil
		},
		ListScoresByJudgeFn: func(ctx context.Context, id uuid.UUID) ([]*domain.JudgeScore, error) {
			assert.Equal(t, judgeID, id)
			return []*domain.JudgeScore{{EntryID: scoredID, JudgeID: judgeID, Score: 77}}, nil
		},
	}

	entries, err := NewJudgeService(fake).ListEntries(context.Background(), judgeID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.NotNil(t, entries[0].MyScore)
	assert.Equal(t, 77.0, *entries[0].MyScore)
	assert.Nil(t, entries[1].MyScore)
}

func TestSubmitScore_RangeCheck(t *testing.T) {
	svc := NewJudgeService(&storetest.Fake{})

	for _, score := range []float64{-1, 100.5} {
		err := svc.SubmitScore(context.Background(), uuid.New(), &domain.SubmitScoreRequest{
			EntryID: uuid.New(), Score: score,
		})
		require.ErrorIs(t, err, constants.ErrScoreOutOfRange, "score=%v", score)
	}
}

func TestSubmitScore_NoActiveContest(t *testing.T) {
	fake := &storetest.Fake{
		GetCurrentContestFn: func(ctx context.Context) (*domain.Contest, error) {
			return nil, constants.ErrDBNotFound
		},
	}

	err := NewJudgeService(fake).SubmitScore(context.Background(), uuid.New(), &domain.SubmitScoreRequest{
		EntryID: uuid.New(), Score: 50,
	})
	require.ErrorIs(t, err, constants.ErrNoActiveContest)
}

func TestSubmitScore_UnknownEntry(t *testing.T) {
	fake := &storetest.Fake{
		GetCurrentContestFn: func(ctx context.Context) (*domain.Contest, error) {
			return &domain.Contest{ID: uuid.New()}, nil
		},
		GetPhotoByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
			return nil, constants.ErrDBNotFound
		},
		GetSeriesByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Series, error) {
			return nil, constants.ErrDBNotFound
		},
	}

	err := NewJudgeService(fake).SubmitScore(context.Background(), uuid.New(), &domain.SubmitScoreRequest{
		EntryID: uuid.New(), Score: 50,
	})
	require.ErrorIs(t, err, constants.ErrDBNotFound)
}

func TestSubmitScore_Upserts(t *testing.T) {
	contestID := uuid.New()
	entryID := uuid.New()
	judgeID := uuid.New()

	var saved *domain.JudgeScore
	fake := &storetest.Fake{
		GetCurrentContestFn: func(ctx context.Context) (*domain.Contest, error) {
			return &domain.Contest{ID: contestID}, nil
		},
		GetPhotoByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
			return &domain.Photo{ID: id}, nil
		},
		UpsertScoreFn: func(ctx context.Context, score *domain.JudgeScore) error {
			saved = score
			return nil
		},
	}

	err := NewJudgeService(fake).SubmitScore(context.Background(), judgeID, &domain.SubmitScoreRequest{
		EntryID: entryID, Score: 88.5, Comment: "  strong composition  ",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, contestID, saved.ContestID)
	assert.Equal(t, entryID, saved.EntryID)
	assert.Equal(t, judgeID, saved.JudgeID)
	assert.Equal(t, 88.5, saved.Score)
	require.NotNil(t, saved.Comment)
	assert.Equal(t, "strong composition", *saved.Comment)
}

func TestSubmitScore_EmptyCommentStaysNil(t *testing.T) {
	var saved *domain.JudgeScore
	fake := &storetest.Fake{
		GetCurrentContestFn: func(ctx context.Context) (*domain.Contest, error) {
			return &domain.Contest{ID: uuid.New()}, nil
		},
		GetPhotoByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
			return &domain.Photo{ID: id}, nil
		},
		UpsertScoreFn: func(ctx context.Context, score *domain.JudgeScore) error {
			saved = score
			return nil
		},
	}

	err := NewJudgeService(fake).SubmitScore(context.Background(), uuid.New(), &domain.SubmitScoreRequest{
		EntryID: uuid.New(), Score: 10, Comment: "   ",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Nil(t, saved.Comment)
}
