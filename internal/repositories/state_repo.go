package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"trustcart/internal/models"

	"github.com/jackc/pgx/v5"
)

const (
	kindProducts = "products"
	kindConfig   = "config"
	kindBundles  = "bundles"
)

// StateRepository persists the three workspace collections. Load methods
// return models.ErrStateNotFound when nothing was saved yet.
type StateRepository interface {
	LoadProducts(ctx context.Context, workspaceID string) ([]models.Product, error)
	SaveProducts(ctx context.Context, workspaceID string, products []models.Product) error
	LoadConfig(ctx context.Context, workspaceID string) (models.PricingConfig, error)
	SaveConfig(ctx context.Context, workspaceID string, cfg models.PricingConfig) error
	LoadBundles(ctx context.Context, workspaceID string) ([]models.BundleOffer, error)
	SaveBundles(ctx context.Context, workspaceID string, bundles []models.BundleOffer) error
	ListWorkspaces(ctx context.Context) ([]string, error)
}

type stateRepo struct {
	db DBTX
}

func NewStateRepo(db DBTX) StateRepository {
	return &stateRepo{db: db}
}

func (r *stateRepo) load(ctx context.Context, workspaceID, kind string, dest any) error {
	var payload []byte
	query := `SELECT payload FROM workspace_state WHERE workspace_id = $1 AND kind = $2`
	err := r.db.QueryRow(ctx, query, workspaceID, kind).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrStateNotFound
		}
		return fmt.Errorf("failed to load %s: %w", kind, err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("failed to decode %s: %w", kind, err)
	}
	return nil
}

func (r *stateRepo) save(ctx context.Context, workspaceID, kind string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", kind, err)
	}
	query := `
		INSERT INTO workspace_state (workspace_id, kind, payload, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (workspace_id, kind) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, workspaceID, kind, payload); err != nil {
		return fmt.Errorf("failed to save %s: %w", kind, err)
	}
	return nil
}

func (r *stateRepo) LoadProducts(ctx context.Context, workspaceID string) ([]models.Product, error) {
	var products []models.Product
	if err := r.load(ctx, workspaceID, kindProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *stateRepo) SaveProducts(ctx context.Context, workspaceID string, products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}
	return r.save(ctx, workspaceID, kindProducts, products)
}

func (r *stateRepo) LoadConfig(ctx context.Context, workspaceID string) (models.PricingConfig, error) {
	var cfg models.PricingConfig
	if err := r.load(ctx, workspaceID, kindConfig, &cfg); err != nil {
		return models.PricingConfig{}, err
	}
	return cfg, nil
}

func (r *stateRepo) SaveConfig(ctx context.Context, workspaceID string, cfg models.PricingConfig) error {
	return r.save(ctx, workspaceID, kindConfig, cfg)
}

func (r *stateRepo) LoadBundles(ctx context.Context, workspaceID string) ([]models.BundleOffer, error) {
	var bundles []models.BundleOffer
	if err := r.load(ctx, workspaceID, kindBundles, &bundles); err != nil {
		return nil, err
	}
	return bundles, nil
}

func (r *stateRepo) SaveBundles(ctx context.Context, workspaceID string, bundles []models.BundleOffer) error {
	if bundles == nil {
		bundles = []models.BundleOffer{}
	}
	return r.save(ctx, workspaceID, kindBundles, bundles)
}

func (r *stateRepo) ListWorkspaces(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT workspace_id FROM workspace_state ORDER BY workspace_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
