package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/shutterclub/photocontest/internal/domain"
	"github.com/shutterclub/photocontest/internal/pkg/constants"
	"github.com/shutterclub/photocontest/internal/pkg/logger"
	"github.com/shutterclub/photocontest/internal/pkg/store"
	"github.com/shutterclub/photocontest/internal/pkg/utils"
)

type Service struct {
	store store.Store
}

func NewAuthService(store store.Store) *Service {
	return &Service{store: store}
}

func (svc *Service) Signup(ctx context.Context, request *domain.SignupRequest) (*domain.AuthResponse, error) {
	if _, err := svc.store.GetProfileByEmail(ctx, request.Email); !errors.Is(err, constants.ErrDBNotFound) {
		if err == nil {
			return nil, constants.ErrEmailAlreadyTaken
		}
		return nil, fmt.Errorf("store.GetProfileByEmail: %w", err)
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		ID:           uuid.New(),
		Email:        request.Email,
		PasswordHash: hash,
		Username:     request.Username,
		RealName:     request.RealName,
		School:       request.School,
		Branch:       request.Branch,
		Role:         domain.RoleParticipant,
	}
	if err := svc.store.CreateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("store.CreateProfile: %w", err)
	}

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{UserID: profile.ID})
	if err != nil {
		return nil, err
	}

	logger.Infof(ctx, "signup: user_id-%s", profile.ID)

	return &domain.AuthResponse{Profile: profile, AuthToken: authToken}, nil
}

func (svc *Service) Login(ctx context.Context, request *domain.LoginRequest) (*domain.AuthResponse, error) {
	profile, err := svc.store.GetProfileByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrUnauthorized
		}
		return nil, fmt.Errorf("store.GetProfileByEmail: %w", err)
	}

	if err := utils.ValidatePassword(profile.PasswordHash, request.Password); err != nil {
		return nil, err
	}

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{UserID: profile.ID})
	if err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "login: user_id-%s", profile.ID)

	return &domain.AuthResponse{Profile: profile, AuthToken: authToken}, nil
}
