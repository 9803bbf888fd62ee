package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shutterclub/photocontest/internal/domain"
)

// utf8BOM keeps spreadsheet applications from misreading the encoding.
const utf8BOM = "\uFEFF"

var csvHeader = []string{
	"ID", "Type", "Title", "Description", "Author", "Real Name", "School",
	"Branch", "Categories", "Images", "Average Score", "Likes", "Created At",
	"Image URL",
}

// WriteCSV serializes export rows: BOM, header, one line per row, comma
// separated, "\n" terminated. Text fields containing a comma, quote or
// newline are double-quoted with inner quotes doubled; numeric fields stay
// bare. Timestamps are written human-readable, not ISO: the file is meant
// to be opened by people, not re-imported.
func WriteCSV(rows []domain.ExportRow) []byte {
	var b strings.Builder
	b.WriteString(utf8BOM)
	writeLine(&b, csvHeader)

	for _, row := range rows {
		writeLine(&b, []string{
			row.ID.String(),
			string(row.Kind),
			escapeField(row.Title),
			escapeField(row.Description),
			escapeField(row.AuthorName),
			escapeField(row.RealName),
			escapeField(row.School),
			escapeField(row.Branch),
			escapeField(row.CategoryNames),
			strconv.Itoa(row.ImageCount),
			formatScore(row.AvgJudgeScore),
			strconv.FormatInt(row.LikeCount, 10),
			row.CreatedAt.Format("2006-01-02 15:04:05"),
			escapeField(row.ImageURL),
		})
	}

	return []byte(b.String())
}

func writeLine(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(field)
	}
	b.WriteByte('\n')
}

func escapeField(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// FileName derives the download name from the contest name and the day of
// the export.
func FileName(contestName string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", contestName, now.Format("2006-01-02"))
}
