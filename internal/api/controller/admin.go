package controller

import (
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shutterclub/photocontest/internal/domain"
	"github.com/shutterclub/photocontest/internal/pkg/constants"
	"github.com/shutterclub/photocontest/internal/service/export"
)

func (c *Controller) ListUsers(ctx echo.Context) error {
	profiles, err := c.store.ListProfiles(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, profiles)
}

func (c *Controller) SetUserRole(ctx echo.Context) error {
	request := new(domain.SetRoleRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}

	role, err := domain.ParseRole(request.Role)
	if err != nil {
		return constants.NewCodedError(http.StatusBadRequest, err.Error())
	}

	if err := c.store.UpdateProfileRole(ctx.Request().Context(), request.UserID, role); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) ExportRows(ctx echo.Context) error {
	contest, err := c.exportContest(ctx)
	if err != nil {
		return err
	}

	rows, err := c.exportService.Aggregate(ctx.Request().Context(), contest.ID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) ExportCSV(ctx echo.Context) error {
	contest, err := c.exportContest(ctx)
	if err != nil {
		return err
	}

	rows, err := c.exportService.Aggregate(ctx.Request().Context(), contest.ID)
	if err != nil {
		return err
	}

	fileName := export.FileName(contest.Name, time.Now())
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename*=UTF-8''`+url.PathEscape(fileName))

	return ctx.Blob(http.StatusOK, "text/csv; charset=utf-8", export.WriteCSV(rows))
}

// exportContest resolves the contest to export: explicit contest_id query
// param, or the current contest.
func (c *Controller) exportContest(ctx echo.Context) (*domain.Contest, error) {
	if raw := ctx.QueryParams().Get("contest_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, constants.NewCodedError(http.StatusBadRequest, "bad contest id")
		}
		return c.store.GetContestByID(ctx.Request().Context(), id)
	}

	return c.store.GetCurrentContest(ctx.Request().Context())
}
