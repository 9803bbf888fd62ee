package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) ListContests(ctx echo.Context) error {
	contests, err := c.contestService.ListContests(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, contests)
}

func (c *Controller) CurrentContest(ctx echo.Context) error {
	contest, err := c.contestService.CurrentContest(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, contest)
}

func (c *Controller) ListCategories(ctx echo.Context) error {
	categories, err := c.contestService.ListCategories(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, categories)
}
