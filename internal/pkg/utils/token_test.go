package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shutterclub/photocontest/internal/pkg/constants"
)

func TestMain(m *testing.M) {
	viper.Set(constants.ViperSecretKey, "test-secret")
	m.Run()
}

func TestAuthTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	signed, err := GenerateAuthToken(&AuthTokenWrapper{UserID: userID})
	require.NoError(t, err)

	parsed, err := ParseAuthToken(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed.UserID)
	assert.Greater(t, parsed.ExpiresAt, parsed.IssuedAt)
}

func TestParseAuthToken_Garbage(t *testing.T) {
	_, err := ParseAuthToken("not.a.token")
	require.ErrorIs(t, err, constants.ErrUnauthorized)
}

func TestParseAuthToken_WrongSecret(t *testing.T) {
	signed, err := GenerateAuthToken(&AuthTokenWrapper{UserID: uuid.New()})
	require.NoError(t, err)

	viper.Set(constants.ViperSecretKey, "rotated")
	defer viper.Set(constants.ViperSecretKey, "test-secret")

	_, err = ParseAuthToken(signed)
	require.ErrorIs(t, err, constants.ErrUnauthorized)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	require.NoError(t, ValidatePassword(hash, "secret1"))
	require.ErrorIs(t, ValidatePassword(hash, "secret2"), constants.ErrUnauthorized)
}
