package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/shutterclub/photocontest/internal/domain"
)

func (s *store) InsertComment(ctx context.Context, comment *domain.Comment) error {
	query := builder().Insert(tableComments).
		Columns("entry_id", "user_id", "content").
		Values(comment.EntryID, comment.UserID, comment.Content)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return fmt.Errorf("insert comment: %w", wrapErr(err))
	}

	return nil
}

func (s *store) ListCommentsByEntryID(ctx context.Context, entryID uuid.UUID) ([]*domain.CommentView, error) {
	query := builder().Select(
		"cm.id", "cm.entry_id", "cm.user_id", "cm.content", "cm.is_deleted",
		"cm.created_at", "p.username", "p.avatar_url").
		From(tableComments + " cm").
		Join(tableProfiles + " p on p.id=cm.user_id").
		Where(sq.And{sq.Eq{"cm.entry_id": entryID}, sq.Eq{"cm.is_deleted": false}}).
		OrderBy("cm.created_at desc")

	var selected []*domain.CommentView
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) CountCommentsByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]*domain.CommentCount, error) {
	// Membership queries over an empty set never reach the pool.
	if len(entryIDs) == 0 {
		return nil, nil
	}

	query := builder().Select("entry_id", "count(*) as count").
		From(tableComments).
		Where(sq.And{sq.Eq{"entry_id": entryIDs}, sq.Eq{"is_deleted": false}}).
		GroupBy("entry_id")

	var selected []*domain.CommentCount
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
