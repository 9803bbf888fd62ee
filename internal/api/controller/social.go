package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shutterclub/photocontest/internal/domain"
)

func (c *Controller) Like(ctx echo.Context) error {
	id, err := entryID(ctx)
	if err != nil {
		return err
	}

	if err := c.entryService.Like(ctx.Request().Context(), id, mustProfile(ctx).ID); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) Unlike(ctx echo.Context) error {
	id, err := entryID(ctx)
	if err != nil {
		return err
	}

	if err := c.entryService.Unlike(ctx.Request().Context(), id, mustProfile(ctx).ID); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) ListComments(ctx echo.Context) error {
	id, err := entryID(ctx)
	if err != nil {
		return err
	}

	comments, err := c.entryService.ListComments(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, comments)
}

func (c *Controller) AddComment(ctx echo.Context) error {
	id, err := entryID(ctx)
	if err != nil {
		return err
	}

	request := new(domain.CreateCommentRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}

	if err := c.entryService.AddComment(ctx.Request().Context(), id, mustProfile(ctx).ID, request.Content); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusCreated)
}
