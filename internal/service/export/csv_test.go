package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shutterclub/photocontest/internal/domain"
)

func TestWriteCSV_BOMAndHeader(t *testing.T) {
	out := string(WriteCSV(nil))

	require.True(t, strings.HasPrefix(out, "\uFEFF"))
	assert.Equal(t,
		"ID,Type,Title,Description,Author,Real Name,School,Branch,Categories,Images,Average Score,Likes,Created At,Image URL\n",
		strings.TrimPrefix(out, "\uFEFF"))
}

func TestWriteCSV_Escaping(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "sunset", want: "sunset"},
		{name: "comma", in: "red, gold", want: `"red, gold"`},
		{name: "quotes", in: `He said "hi"`, want: `"He said ""hi"""`},
		{name: "newline", in: "two\nlines", want: "\"two\nlines\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeField(tt.in))
		})
	}
}

func TestWriteCSV_RowFormat(t *testing.T) {
	id := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	row := domain.ExportRow{
		ID:            id,
		Kind:          domain.EntryKindSingle,
		Title:         "dawn, early",
		Description:   "first light",
		AuthorName:    "ann",
		RealName:      "Ann Lee",
		School:        "Central High",
		Branch:        "North",
		CategoryNames: "Nature, Portrait",
		ImageURL:      "http://img/1.jpg",
		ImageCount:    1,
		AvgJudgeScore: 88.5,
		LikeCount:     7,
		CreatedAt:     time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC),
	}

	out := string(WriteCSV([]domain.ExportRow{row}))
	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(out, "\uFEFF"), "\n"), "\n")
	require.Len(t, lines, 2)

	// Numeric fields stay unquoted, text fields with commas get quoted.
	assert.Equal(t,
		id.String()+`,single,"dawn, early",first light,ann,Ann Lee,Central High,North,"Nature, Portrait",1,88.5,7,2026-05-01 09:30:00,http://img/1.jpg`,
		lines[1])
}

func TestWriteCSV_RoundTripsThroughStandardReader(t *testing.T) {
	rows := []domain.ExportRow{
		{ID: uuid.New(), Kind: domain.EntryKindSeries, Title: "a \"quoted\"\ntitle, long", AuthorName: "bo", ImageCount: 4, AvgJudgeScore: 72.25, CreatedAt: time.Now().UTC()},
		{ID: uuid.New(), Kind: domain.EntryKindSingle, Title: "plain", AuthorName: "cy", ImageCount: 1, CreatedAt: time.Now().UTC()},
	}

	out := strings.TrimPrefix(string(WriteCSV(rows)), "\uFEFF")
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "a \"quoted\"\ntitle, long", records[1][2])
	assert.Equal(t, "72.25", records[1][10])
	assert.Equal(t, "plain", records[2][2])
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "0", formatScore(0))
	assert.Equal(t, "88.5", formatScore(88.5))
	assert.Equal(t, "85.56", formatScore(85.56))
}

func TestFileName(t *testing.T) {
	now := time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "Spring Contest_2026-08-31.csv", FileName("Spring Contest", now))
}
