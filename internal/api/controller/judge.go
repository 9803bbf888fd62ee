package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shutterclub/photocontest/internal/domain"
)

func (c *Controller) JudgeEntries(ctx echo.Context) error {
	entries, err := c.judgeService.ListEntries(ctx.Request().Context(), mustProfile(ctx).ID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, entries)
}

func (c *Controller) SubmitScore(ctx echo.Context) error {
	request := new(domain.SubmitScoreRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}

	if err := c.judgeService.SubmitScore(ctx.Request().Context(), mustProfile(ctx).ID, request); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
