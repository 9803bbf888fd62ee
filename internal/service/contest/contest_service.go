package contest

import (
	"context"
	"fmt"

	"github.com/shutterclub/photocontest/internal/domain"
	"github.com/shutterclub/photocontest/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewContestService(store store.Store) *Service {
	return &Service{store: store}
}

func (svc *Service) ListContests(ctx context.Context) ([]*domain.Contest, error) {
	contests, err := svc.store.ListContests(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListContests: %w", err)
	}

	return contests, nil
}

func (svc *Service) CurrentContest(ctx context.Context) (*domain.Contest, error) {
	contest, err := svc.store.GetCurrentContest(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.GetCurrentContest: %w", err)
	}

	return contest, nil
}

func (svc *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := svc.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListCategories: %w", err)
	}

	return categories, nil
}
