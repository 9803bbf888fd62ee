package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"participant", "judge", "admin"} {
		role, err := ParseRole(raw)
		require.NoError(t, err)
		assert.True(t, role.Valid())
	}

	_, err := ParseRole("superuser")
	require.Error(t, err)
	assert.False(t, Role("superuser").Valid())
}

func TestPhotoCard_PrefersThumbnail(t *testing.T) {
	thumb := "http://img/thumb.jpg"
	photo := &Photo{ImageURL: "http://img/full.jpg", ThumbnailURL: &thumb}

	card := photo.Card()
	assert.Equal(t, thumb, card.ImageURL)
	assert.Equal(t, EntryKindSingle, card.Kind)
	assert.Equal(t, 1, card.ImageCount)

	photo.ThumbnailURL = nil
	assert.Equal(t, "http://img/full.jpg", photo.Card().ImageURL)
}

func TestSeriesCard(t *testing.T) {
	series := &Series{CoverImageURL: "http://img/cover.jpg", ImageCount: 4}

	card := series.Card()
	assert.Equal(t, EntryKindSeries, card.Kind)
	assert.Equal(t, "http://img/cover.jpg", card.ImageURL)
	assert.Equal(t, 4, card.ImageCount)
}

func TestContestUploadOpen(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	contest := &Contest{UploadStartAt: now.Add(-time.Hour), UploadEndAt: now.Add(time.Hour)}

	assert.True(t, contest.UploadOpen(now))
	assert.True(t, contest.UploadOpen(contest.UploadStartAt))
	assert.True(t, contest.UploadOpen(contest.UploadEndAt))
	assert.False(t, contest.UploadOpen(now.Add(-2*time.Hour)))
	assert.False(t, contest.UploadOpen(now.Add(2*time.Hour)))
}
