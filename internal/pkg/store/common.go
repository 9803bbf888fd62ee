package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/shutterclub/photocontest/internal/pkg/constants"
)

const (
	tableProfiles         = "profiles"
	tableContests         = "contests"
	tableCategories       = "categories"
	tablePhotos           = "photos"
	tableSeries           = "photo_series"
	tableSeriesImages     = "series_images"
	tablePhotoCategories  = "photo_categories"
	tableSeriesCategories = "series_categories"
	tableJudgeScores      = "judge_scores"
	tableLikes            = "likes"
	tableComments         = "comments"
)

func wrapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return constants.ErrDBNotFound
	}
	return err
}

// builder returns a squirrel builder with Postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
