package api

import (
	"github.com/labstack/echo/v4"

	"github.com/shutterclub/photocontest/internal/domain"
	"github.com/shutterclub/photocontest/internal/pkg/constants"
	"github.com/shutterclub/photocontest/internal/pkg/utils"
)

// AuthMiddleware resolves the auth cookie to a profile and stores it on the
// request context. Requests without a valid cookie are rejected.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
		if err != nil {
			return constants.ErrMissingAuthCookie
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		profile, err := svc.store.GetProfileByID(ctx.Request().Context(), token.UserID)
		if err != nil {
			return constants.ErrUnauthorized
		}

		ctx.Set(constants.CtxKeyProfile, profile)

		return next(ctx)
	}
}

// OptionalAuthMiddleware is AuthMiddleware for routes that also serve
// anonymous visitors: a missing or invalid cookie passes through without a
// profile.
func (svc *APIService) OptionalAuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
		if err != nil {
			return next(ctx)
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return next(ctx)
		}

		if profile, err := svc.store.GetProfileByID(ctx.Request().Context(), token.UserID); err == nil {
			ctx.Set(constants.CtxKeyProfile, profile)
		}

		return next(ctx)
	}
}

func (svc *APIService) RequireRole(roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			profile, ok := ctx.Get(constants.CtxKeyProfile).(*domain.Profile)
			if !ok {
				return constants.ErrUnauthorized
			}

			for _, role := range roles {
				if profile.Role == role {
					return next(ctx)
				}
			}

			return constants.ErrForbidden
		}
	}
}
