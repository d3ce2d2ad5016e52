package common

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	UserIDKey      contextKey = "user_id"
	TokenIDKey     contextKey = "token_id"
	TokenExpiryKey contextKey = "token_expiry"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error"`
}

// CreateErrorResponse creates a standardized error response
func CreateErrorResponse(code string, message string, details map[string]string) *ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	resp.Error.Details = details
	return &resp
}

// SendValidationError sends a validation error response
func SendValidationError(c echo.Context, field, message string) error {
	details := map[string]string{
		field: message,
	}
	return c.JSON(http.StatusBadRequest, CreateErrorResponse("VALIDATION_ERROR", "Validation failed", details))
}

// SafeString safely handles string pointer operations
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// WithSession stores the authenticated identity on the context.
func WithSession(ctx context.Context, userID uuid.UUID, tokenID string, expiresAt time.Time) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, TokenIDKey, tokenID)
	return context.WithValue(ctx, TokenExpiryKey, expiresAt)
}

// GetUserIDFromContext extracts the user ID from the request context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetTokenFromContext returns the session token id and its expiry.
func GetTokenFromContext(ctx context.Context) (string, time.Time, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	if !ok {
		return "", time.Time{}, false
	}
	expiresAt, _ := ctx.Value(TokenExpiryKey).(time.Time)
	return tokenID, expiresAt, true
}

// WorkspaceIDFromContext returns the workspace owned by the authenticated user.
func WorkspaceIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := GetUserIDFromContext(ctx)
	if !ok || userID == uuid.Nil {
		return "", false
	}
	return userID.String(), true
}
