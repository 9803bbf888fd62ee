package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/shutterclub/photocontest/internal/domain"
)

var contestColumns = []string{
	"id", "name", "description", "upload_start_at", "upload_end_at",
	"vote_start_at", "vote_end_at", "result_publish_at",
	"max_entries_per_user", "created_at", "updated_at",
}

func (s *store) ListContests(ctx context.Context) ([]*domain.Contest, error) {
	query := builder().Select(contestColumns...).
		From(tableContests).
		OrderBy("created_at desc")

	var selected []*domain.Contest
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) GetContestByID(ctx context.Context, id uuid.UUID) (*domain.Contest, error) {
	query := builder().Select(contestColumns...).
		From(tableContests).
		Where(sq.Eq{"id": id})

	var selected domain.Contest
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

// GetCurrentContest returns the most recently created contest.
func (s *store) GetCurrentContest(ctx context.Context) (*domain.Contest, error) {
	query := builder().Select(contestColumns...).
		From(tableContests).
		OrderBy("created_at desc").
		Limit(1)

	var selected domain.Contest
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}
