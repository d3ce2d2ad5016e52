package common

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"normalises case and spaces", "  Owner@Example.COM ", "owner@example.com", false},
		{"empty", "   ", "", true},
		{"missing domain", "owner@", "", true},
		{"display name form rejected", "Owner <owner@example.com>", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateEmail(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long-enough"))
	assert.Error(t, ValidatePassword(string(make([]byte, 73))))
}

func TestValidateNonNegativeFloat(t *testing.T) {
	assert.NoError(t, ValidateNonNegativeFloat(0, "costPrice"))
	assert.EqualError(t, ValidateNonNegativeFloat(-1, "costPrice"), "costPrice cannot be negative")
	assert.Error(t, ValidateNonNegativeFloat(math.NaN(), "costPrice"))
}

func TestValidateOptionalString(t *testing.T) {
	s := "  trimmed  "
	require.NoError(t, ValidateOptionalString(&s, "sku", 20))
	assert.Equal(t, "trimmed", s)
	assert.Error(t, ValidateOptionalString(&s, "sku", 3))
	assert.NoError(t, ValidateOptionalString(nil, "sku", 3))
}

func TestSessionContext(t *testing.T) {
	userID := uuid.New()
	expires := time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)
	ctx := WithSession(context.Background(), userID, "tok-1", expires)

	gotUser, ok := GetUserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, userID, gotUser)

	tokenID, gotExpiry, ok := GetTokenFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "tok-1", tokenID)
	assert.Equal(t, expires, gotExpiry)

	workspaceID, ok := WorkspaceIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, userID.String(), workspaceID)

	_, ok = WorkspaceIDFromContext(context.Background())
	assert.False(t, ok)
}
