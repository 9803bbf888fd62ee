package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shutterclub/photocontest/internal/domain"
	"github.com/shutterclub/photocontest/internal/pkg/constants"
	"github.com/shutterclub/photocontest/internal/pkg/store/storetest"
	"github.com/shutterclub/photocontest/internal/pkg/utils"
)

func TestMain(m *testing.M) {
	viper.Set(constants.ViperSecretKey, "test-secret")
	m.Run()
}

func TestSignup_EmailTaken(t *testing.T) {
	fake := &storetest.Fake{
		GetProfileByEmailFn: func(ctx context.Context, email string) (*domain.Profile, error) {
			return &domain.Profile{ID: uuid.New(), Email: email}, nil
		},
	}

	_, err := NewAuthService(fake).Signup(context.Background(), &domain.SignupRequest{
		Username: "ann", Email: "ann@example.com", Password: "secret1",
	})
	require.ErrorIs(t, err, constants.ErrEmailAlreadyTaken)
}

func TestSignup_CreatesParticipant(t *testing.T) {
	var created *domain.Profile
	fake := &storetest.Fake{
		GetProfileByEmailFn: func(ctx context.Context, email string) (*domain.Profile, error) {
			return nil, constants.ErrDBNotFound
		},
		CreateProfileFn: func(ctx context.Context, profile *domain.Profile) error {
			created = profile
			return nil
		},
	}

	resp, err := NewAuthService(fake).Signup(context.Background(), &domain.SignupRequest{
		Username: "ann", Email: "ann@example.com", Password: "secret1", School: "Central High",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, domain.RoleParticipant, created.Role)
	assert.NotEqual(t, "secret1", created.PasswordHash)
	assert.NotEmpty(t, resp.AuthToken)

	token, err := utils.ParseAuthToken(resp.AuthToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, token.UserID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	fake := &storetest.Fake{
		GetProfileByEmailFn: func(ctx context.Context, email string) (*domain.Profile, error) {
			return nil, constants.ErrDBNotFound
		},
	}

	_, err := NewAuthService(fake).Login(context.Background(), &domain.LoginRequest{
		Email: "ghost@example.com", Password: "whatever",
	})
	require.ErrorIs(t, err, constants.ErrUnauthorized)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("correct horse")
	require.NoError(t, err)

	fake := &storetest.Fake{
		GetProfileByEmailFn: func(ctx context.Context, email string) (*domain.Profile, error) {
			return &domain.Profile{ID: uuid.New(), Email: email, PasswordHash: hash}, nil
		},
	}

	_, err = NewAuthService(fake).Login(context.Background(), &domain.LoginRequest{
		Email: "ann@example.com", Password: "battery staple",
	})
	require.ErrorIs(t, err, constants.ErrUnauthorized)
}

func TestLogin_Succeeds(t *testing.T) {
	hash, err := utils.HashPassword("correct horse")
	require.NoError(t, err)
	profileID := uuid.New()

	fake := &storetest.Fake{
		GetProfileByEmailFn: func(ctx context.Context, email string) (*domain.Profile, error) {
			return &domain.Profile{ID: profileID, Email: email, PasswordHash: hash}, nil
		},
	}

	resp, err := NewAuthService(fake).Login(context.Background(), &domain.LoginRequest{
		Email: "ann@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	token, err := utils.ParseAuthToken(resp.AuthToken)
	require.NoError(t, err)
	assert.Equal(t, profileID, token.UserID)
}
