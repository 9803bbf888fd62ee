package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/shutterclub/photocontest/internal/domain"
	"github.com/shutterclub/photocontest/internal/pkg/constants"
)

var profileColumns = []string{
	"id", "email", "password_hash", "username", "real_name", "school",
	"branch", "role", "avatar_url", "created_at", "updated_at",
}

func (s *store) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	query := builder().Insert(tableProfiles).
		Columns("id", "email", "password_hash", "username", "real_name", "school", "branch", "role").
		Values(profile.ID, profile.Email, profile.PasswordHash, profile.Username,
			profile.RealName, profile.School, profile.Branch, profile.Role)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return fmt.Errorf("insert profile: %w", wrapErr(err))
	}

	return nil
}

func (s *store) GetProfileByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := builder().Select(profileColumns...).
		From(tableProfiles).
		Where(sq.Eq{"id": id})

	var selected domain.Profile
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) GetProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := builder().Select(profileColumns...).
		From(tableProfiles).
		Where(sq.Eq{"email": email})

	var selected domain.Profile
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListProfiles(ctx context.Context) ([]*domain.Profile, error) {
	query := builder().Select(profileColumns...).
		From(tableProfiles).
		OrderBy("created_at desc")

	var selected []*domain.Profile
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Profile, error) {
	// Membership queries over an empty set never reach the pool.
	if len(ids) == 0 {
		return nil, nil
	}

	query := builder().Select(profileColumns...).
		From(tableProfiles).
		Where(sq.Eq{"id": ids})

	var selected []*domain.Profile
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpdateProfileRole(ctx context.Context, id uuid.UUID, role domain.Role) error {
	query := builder().Update(tableProfiles).
		Set("role", role).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return fmt.Errorf("update profile role: %w", wrapErr(err))
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}

	return nil
}
