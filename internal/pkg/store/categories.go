package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/shutterclub/photocontest/internal/domain"
)

var categoryColumns = []string{"id", "name", "slug", "order_idx"}

func (s *store) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	query := builder().Select(categoryColumns...).
		From(tableCategories).
		OrderBy("order_idx")

	var selected []*domain.Category
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) LinkPhotoCategories(ctx context.Context, photoID uuid.UUID, categoryIDs []int64) error {
	return s.linkEntryCategories(ctx, tablePhotoCategories, photoID, categoryIDs)
}

func (s *store) LinkSeriesCategories(ctx context.Context, seriesID uuid.UUID, categoryIDs []int64) error {
	return s.linkEntryCategories(ctx, tableSeriesCategories, seriesID, categoryIDs)
}

func (s *store) linkEntryCategories(ctx context.Context, table string, entryID uuid.UUID, categoryIDs []int64) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	query := builder().Insert(table).
		Columns("entry_id", "category_id").
		Suffix("on conflict do nothing")
	for _, categoryID := range categoryIDs {
		query = query.Values(entryID, categoryID)
	}

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return fmt.Errorf("link categories: %w", wrapErr(err))
	}

	return nil
}

func (s *store) ListPhotoCategoriesByPhotoIDs(ctx context.Context, photoIDs []uuid.UUID) ([]*domain.EntryCategory, error) {
	return s.listEntryCategories(ctx, tablePhotoCategories, photoIDs)
}

func (s *store) ListSeriesCategoriesBySeriesIDs(ctx context.Context, seriesIDs []uuid.UUID) ([]*domain.EntryCategory, error) {
	return s.listEntryCategories(ctx, tableSeriesCategories, seriesIDs)
}

func (s *store) listEntryCategories(ctx context.Context, table string, entryIDs []uuid.UUID) ([]*domain.EntryCategory, error) {
	// Membership queries over an empty set never reach the pool.
	if len(entryIDs) == 0 {
		return nil, nil
	}

	query := builder().Select("ec.entry_id", "ec.category_id", "c.name as category_name").
		From(table + " ec").
		Join(tableCategories + " c on c.id=ec.category_id").
		Where(sq.Eq{"ec.entry_id": entryIDs}).
		OrderBy("ec.entry_id", "c.order_idx")

	var selected []*domain.EntryCategory
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListPhotoIDsByCategoryID(ctx context.Context, categoryID int64) ([]uuid.UUID, error) {
	return s.listEntryIDsByCategoryID(ctx, tablePhotoCategories, categoryID)
}

func (s *store) ListSeriesIDsByCategoryID(ctx context.Context, categoryID int64) ([]uuid.UUID, error) {
	return s.listEntryIDsByCategoryID(ctx, tableSeriesCategories, categoryID)
}

func (s *store) listEntryIDsByCategoryID(ctx context.Context, table string, categoryID int64) ([]uuid.UUID, error) {
	query := builder().Select("entry_id").
		From(table).
		Where(sq.Eq{"category_id": categoryID})

	var selected []uuid.UUID
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
