package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"trustcart/internal/common"
	"trustcart/internal/models"

	"github.com/labstack/echo/v4"
)

// httpError translates a service error into an HTTP error. Unknown errors are
// reported as 500 without their message.
func httpError(err error) error {
	switch {
	case errors.Is(err, models.ErrProductNotFound),
		errors.Is(err, models.ErrBundleNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrStateNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidConfig):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, models.ErrInvalidProduct),
		errors.Is(err, models.ErrNotEnoughProducts),
		errors.Is(err, models.ErrUnsupportedFormat),
		errors.Is(err, models.ErrConfirmationMissing):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, models.ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrStorageDisabled):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return echo.NewHTTPError(http.StatusRequestTimeout, "Request cancelled")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error").SetInternal(err)
	}
}

// workspaceID returns the workspace of the authenticated user.
func workspaceID(c echo.Context) (string, error) {
	id, ok := common.WorkspaceIDFromContext(c.Request().Context())
	if !ok {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Session not found")
	}
	return id, nil
}

// requireConfirmation guards destructive bulk operations behind ?confirm=true.
func requireConfirmation(c echo.Context) error {
	if confirmed, _ := strconv.ParseBool(c.QueryParam("confirm")); !confirmed {
		return httpError(models.ErrConfirmationMissing)
	}
	return nil
}

func bindJSON(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	return nil
}
