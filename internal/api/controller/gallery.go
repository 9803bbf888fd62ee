package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shutterclub/photocontest/internal/service/gallery"
)

func (c *Controller) Gallery(ctx echo.Context) error {
	opts := gallery.ListOpts{Sort: gallery.SortLatest}

	if raw := ctx.QueryParams().Get("category_id"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			opts.CategoryID = &categoryID
		}
	}
	if ctx.QueryParams().Get("sort") == string(gallery.SortPopular) {
		opts.Sort = gallery.SortPopular
	}

	cards, err := c.galleryService.List(ctx.Request().Context(), opts)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, cards)
}
