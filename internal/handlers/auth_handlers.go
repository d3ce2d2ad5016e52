package handlers

import (
	"errors"
	"net/http"

	"trustcart/internal/common"
	"trustcart/internal/models"
	"trustcart/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandlers handles authentication-related HTTP requests
type AuthHandlers struct {
	authService services.AuthService
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(authService services.AuthService) *AuthHandlers {
	return &AuthHandlers{authService: authService}
}

// Register handles POST /auth/register
func (h *AuthHandlers) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Account created successfully",
		"user":    user,
	})
}

// Login handles POST /auth/login
func (h *AuthHandlers) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if req.Email == "" || req.Password == "" {
		return common.SendValidationError(c, "email", "Email and password are required")
	}

	session, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, session)
}

// Logout handles POST /auth/logout by revoking the presented token.
func (h *AuthHandlers) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	tokenID, expiresAt, ok := common.GetTokenFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Session not found")
	}
	if err := h.authService.Logout(ctx, tokenID, expiresAt); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Me handles GET /me
func (h *AuthHandlers) Me(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Session not found")
	}
	user, err := h.authService.CurrentUser(ctx, userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}
