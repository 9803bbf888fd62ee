package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/shutterclub/photocontest/internal/domain"
	"github.com/shutterclub/photocontest/internal/pkg/constants"
)

func (s *store) InsertLike(ctx context.Context, entryID, userID uuid.UUID) error {
	query := builder().Insert(tableLikes).
		Columns("entry_id", "user_id").
		Values(entryID, userID).
		Suffix("on conflict (entry_id, user_id) do nothing")

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return fmt.Errorf("insert like: %w", wrapErr(err))
	}

	return nil
}

func (s *store) DeleteLike(ctx context.Context, entryID, userID uuid.UUID) error {
	query := builder().Delete(tableLikes).
		Where(sq.And{sq.Eq{"entry_id": entryID}, sq.Eq{"user_id": userID}})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return fmt.Errorf("delete like: %w", wrapErr(err))
	}

	return nil
}

func (s *store) HasLiked(ctx context.Context, entryID, userID uuid.UUID) (bool, error) {
	query := builder().Select("1").
		From(tableLikes).
		Where(sq.And{sq.Eq{"entry_id": entryID}, sq.Eq{"user_id": userID}})

	var one int
	if err := s.pool.Getx(ctx, &one, query); err != nil {
		if errors.Is(wrapErr(err), constants.ErrDBNotFound) {
			return false, nil
		}
		return false, wrapErr(err)
	}

	return true, nil
}

func (s *store) CountLikes(ctx context.Context, entryID uuid.UUID) (int64, error) {
	query := builder().Select("count(*)").
		From(tableLikes).
		Where(sq.Eq{"entry_id": entryID})

	var count int64
	if err := s.pool.Getx(ctx, &count, query); err != nil {
		return 0, wrapErr(err)
	}

	return count, nil
}

func (s *store) CountLikesByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]*domain.LikeCount, error) {
	// Membership queries over an empty set never reach the pool.
	if len(entryIDs) == 0 {
		return nil, nil
	}

	query := builder().Select("entry_id", "count(*) as count").
		From(tableLikes).
		Where(sq.Eq{"entry_id": entryIDs}).
		GroupBy("entry_id")

	var selected []*domain.LikeCount
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
