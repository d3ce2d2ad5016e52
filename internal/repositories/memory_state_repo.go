package repositories

import (
	"context"
	"sort"
	"sync"

	"trustcart/internal/models"
)

type memoryWorkspace struct {
	products []models.Product
	config   *models.PricingConfig
	bundles  []models.BundleOffer
}

type memoryStateRepo struct {
	mu         sync.RWMutex
	workspaces map[string]*memoryWorkspace
}

// NewMemoryStateRepo keeps workspace state in process memory. Values are
// copied on the way in and out so callers never share slices with the store.
func NewMemoryStateRepo() StateRepository {
	return &memoryStateRepo{workspaces: make(map[string]*memoryWorkspace)}
}

func (r *memoryStateRepo) workspace(id string) *memoryWorkspace {
	ws, ok := r.workspaces[id]
	if !ok {
		ws = &memoryWorkspace{}
		r.workspaces[id] = ws
	}
	return ws
}

func (r *memoryStateRepo) LoadProducts(ctx context.Context, workspaceID string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ws, ok := r.workspaces[workspaceID]
	if !ok || ws.products == nil {
		return nil, models.ErrStateNotFound
	}
	return models.CloneProducts(ws.products), nil
}

func (r *memoryStateRepo) SaveProducts(ctx context.Context, workspaceID string, products []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cloned := models.CloneProducts(products)
	if cloned == nil {
		cloned = []models.Product{}
	}
	r.workspace(workspaceID).products = cloned
	return nil
}

func (r *memoryStateRepo) LoadConfig(ctx context.Context, workspaceID string) (models.PricingConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ws, ok := r.workspaces[workspaceID]
	if !ok || ws.config == nil {
		return models.PricingConfig{}, models.ErrStateNotFound
	}
	return *ws.config, nil
}

func (r *memoryStateRepo) SaveConfig(ctx context.Context, workspaceID string, cfg models.PricingConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workspace(workspaceID).config = &cfg
	return nil
}

func (r *memoryStateRepo) LoadBundles(ctx context.Context, workspaceID string) ([]models.BundleOffer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ws, ok := r.workspaces[workspaceID]
	if !ok || ws.bundles == nil {
		return nil, models.ErrStateNotFound
	}
	return models.CloneBundles(ws.bundles), nil
}

func (r *memoryStateRepo) SaveBundles(ctx context.Context, workspaceID string, bundles []models.BundleOffer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cloned := models.CloneBundles(bundles)
	if cloned == nil {
		cloned = []models.BundleOffer{}
	}
	r.workspace(workspaceID).bundles = cloned
	return nil
}

func (r *memoryStateRepo) ListWorkspaces(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.workspaces))
	for id := range r.workspaces {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
