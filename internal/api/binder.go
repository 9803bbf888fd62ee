package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shutterclub/photocontest/internal/pkg/constants"
)

type requestBinder struct {
	base echo.DefaultBinder
}

// NewBinder binds and validates in one step, so controllers work with
// already-checked requests.
func NewBinder() *requestBinder {
	return &requestBinder{}
}

func (b *requestBinder) Bind(i interface{}, c echo.Context) error {
	if err := b.base.Bind(i, c); err != nil {
		return constants.NewCodedError(http.StatusBadRequest, err.Error())
	}
	return c.Validate(i)
}
