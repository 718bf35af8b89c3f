package controllers

import (
	"errors"
	"fmt"

	"github.com/l3montree-dev/fixflow/shared"
	"github.com/labstack/echo/v4"
)

// serviceError keeps typed service errors intact so that the error handler can map them.
// Everything else becomes a 500 with the given message.
func serviceError(err error, message string) error {
	var typed *shared.TypedError
	if errors.As(err, &typed) {
		return err
	}
	return echo.NewHTTPError(500, message).WithInternal(err)
}

func bindAndValidate(ctx shared.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}
	return nil
}
