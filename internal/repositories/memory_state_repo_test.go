package repositories

import (
	"context"
	"testing"
	"time"

	"trustcart/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

func TestMemoryStateRepo_NotFoundUntilSaved(t *testing.T) {
	repo := NewMemoryStateRepo()
	ctx := context.Background()

	_, err := repo.LoadProducts(ctx, "ws")
	assert.ErrorIs(t, err, models.ErrStateNotFound)
	_, err = repo.LoadConfig(ctx, "ws")
	assert.ErrorIs(t, err, models.ErrStateNotFound)
	_, err = repo.LoadBundles(ctx, "ws")
	assert.ErrorIs(t, err, models.ErrStateNotFound)

	require.NoError(t, repo.SaveBundles(ctx, "ws", nil))
	bundles, err := repo.LoadBundles(ctx, "ws")
	require.NoError(t, err)
	assert.Empty(t, bundles)
}

func TestMemoryStateRepo_CopiesOnSaveAndLoad(t *testing.T) {
	repo := NewMemoryStateRepo()
	ctx := context.Background()
	products := models.DefaultProducts(fixedNow)
	products[1].SellingPrice = models.Float64Ptr(500)

	require.NoError(t, repo.SaveProducts(ctx, "ws", products))
	products[0].Name = "mutated after save"
	*products[1].SellingPrice = 1

	loaded, err := repo.LoadProducts(ctx, "ws")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated after save", loaded[0].Name)
	assert.Equal(t, 500.0, loaded[1].ManualSellingPrice())

	loaded[0].Name = "mutated after load"
	again, err := repo.LoadProducts(ctx, "ws")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated after load", again[0].Name)
}

func TestMemoryStateRepo_ConfigAndWorkspaces(t *testing.T) {
	repo := NewMemoryStateRepo()
	ctx := context.Background()
	cfg := models.DefaultPricingConfig()
	cfg.ProfitMargin = 50

	require.NoError(t, repo.SaveConfig(ctx, "b", cfg))
	require.NoError(t, repo.SaveProducts(ctx, "a", nil))

	loaded, err := repo.LoadConfig(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	ids, err := repo.ListWorkspaces(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}
