package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/shutterclub/photocontest/internal/domain"
)

var scoreColumns = []string{
	"id", "contest_id", "entry_id", "judge_id", "score", "comment", "created_at",
}

func (s *store) UpsertScore(ctx context.Context, score *domain.JudgeScore) error {
	query := builder().Insert(tableJudgeScores).
		Columns("contest_id", "entry_id", "judge_id", "score", "comment").
		Values(score.ContestID, score.EntryID, score.JudgeID, score.Score, score.Comment).
		Suffix(`on conflict (entry_id, judge_id) do update set score=excluded.score, comment=excluded.comment`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return fmt.Errorf("upsert score: %w", wrapErr(err))
	}

	return nil
}

func (s *store) ListScoresByJudge(ctx context.Context, judgeID uuid.UUID) ([]*domain.JudgeScore, error) {
	query := builder().Select(scoreColumns...).
		From(tableJudgeScores).
		Where(sq.Eq{"judge_id": judgeID})

	var selected []*domain.JudgeScore
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListScoresByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]*domain.JudgeScore, error) {
	// Membership queries over an empty set never reach the pool.
	if len(entryIDs) == 0 {
		return nil, nil
	}

	query := builder().Select(scoreColumns...).
		From(tableJudgeScores).
		Where(sq.Eq{"entry_id": entryIDs}).
		OrderBy("id")

	var selected []*domain.JudgeScore
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
