package controller

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shutterclub/photocontest/internal/domain"
	"github.com/shutterclub/photocontest/internal/pkg/constants"
)

func (c *Controller) Signup(ctx echo.Context) error {
	request := new(domain.SignupRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}

	resp, err := c.authService.Signup(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	setAuthCookie(ctx, resp.AuthToken)

	return ctx.JSON(http.StatusCreated, resp)
}

func (c *Controller) Login(ctx echo.Context) error {
	request := new(domain.LoginRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}

	resp, err := c.authService.Login(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	setAuthCookie(ctx, resp.AuthToken)

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) Logout(ctx echo.Context) error {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) Me(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, mustProfile(ctx))
}

func setAuthCookie(ctx echo.Context, token string) {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(constants.AuthTokenTTLHours * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// mustProfile is only called behind AuthMiddleware, which always sets the
// profile.
func mustProfile(ctx echo.Context) *domain.Profile {
	return ctx.Get(constants.CtxKeyProfile).(*domain.Profile)
}

// viewerID returns uuid.Nil when the request carries no profile.
func viewerID(ctx echo.Context) uuid.UUID {
	if profile, ok := ctx.Get(constants.CtxKeyProfile).(*domain.Profile); ok {
		return profile.ID
	}
	return uuid.Nil
}
