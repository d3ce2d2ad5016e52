package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"trustcart/internal/caching"
	"trustcart/internal/models"
	"trustcart/internal/repositories"

	"go.uber.org/zap"
)

// WorkspaceState is a consistent copy of everything stored for a workspace.
type WorkspaceState struct {
	Products []models.Product     `json:"products"`
	Config   models.PricingConfig `json:"config"`
	Bundles  []models.BundleOffer `json:"bundles"`
}

// WorkspaceService owns the persisted state of every workspace. Mutations of
// one workspace are serialized; each one loads the current collection, builds
// a new one and saves it whole. The plain reads do not take the lock, so an
// update callback may call them to see the state its mutation is based on.
type WorkspaceService interface {
	Products(ctx context.Context, workspaceID string) ([]models.Product, error)
	Config(ctx context.Context, workspaceID string) (models.PricingConfig, error)
	Bundles(ctx context.Context, workspaceID string) ([]models.BundleOffer, error)
	State(ctx context.Context, workspaceID string) (WorkspaceState, error)

	UpdateProducts(ctx context.Context, workspaceID string, fn func([]models.Product) ([]models.Product, error)) ([]models.Product, error)
	UpdateBundles(ctx context.Context, workspaceID string, fn func([]models.BundleOffer) ([]models.BundleOffer, error)) ([]models.BundleOffer, error)
	SaveConfig(ctx context.Context, workspaceID string, cfg models.PricingConfig) error

	ListWorkspaces(ctx context.Context) ([]string, error)
}

type workspaceService struct {
	repo          repositories.StateRepository
	cacheSvc      caching.CacheService
	logger        *zap.Logger
	defaultConfig models.PricingConfig
	now           func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewWorkspaceService(repo repositories.StateRepository, cacheSvc caching.CacheService, logger *zap.Logger, defaultConfig models.PricingConfig) WorkspaceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &workspaceService{
		repo:          repo,
		cacheSvc:      cacheSvc,
		logger:        logger,
		defaultConfig: defaultConfig,
		now:           time.Now,
		locks:         make(map[string]*sync.Mutex),
	}
}

func (s *workspaceService) lock(workspaceID string) func() {
	s.mu.Lock()
	l, ok := s.locks[workspaceID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[workspaceID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (s *workspaceService) Products(ctx context.Context, workspaceID string) ([]models.Product, error) {
	products, err := s.repo.LoadProducts(ctx, workspaceID)
	if errors.Is(err, models.ErrStateNotFound) {
		return models.DefaultProducts(s.now()), nil
	}
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *workspaceService) Config(ctx context.Context, workspaceID string) (models.PricingConfig, error) {
	cfg, err := s.repo.LoadConfig(ctx, workspaceID)
	if errors.Is(err, models.ErrStateNotFound) {
		return s.defaultConfig, nil
	}
	if err != nil {
		return models.PricingConfig{}, err
	}
	return cfg, nil
}

func (s *workspaceService) Bundles(ctx context.Context, workspaceID string) ([]models.BundleOffer, error) {
	bundles, err := s.repo.LoadBundles(ctx, workspaceID)
	if errors.Is(err, models.ErrStateNotFound) {
		return []models.BundleOffer{}, nil
	}
	if err != nil {
		return nil, err
	}
	return bundles, nil
}

func (s *workspaceService) State(ctx context.Context, workspaceID string) (WorkspaceState, error) {
	unlock := s.lock(workspaceID)
	defer unlock()

	products, err := s.Products(ctx, workspaceID)
	if err != nil {
		return WorkspaceState{}, err
	}
	cfg, err := s.Config(ctx, workspaceID)
	if err != nil {
		return WorkspaceState{}, err
	}
	bundles, err := s.Bundles(ctx, workspaceID)
	if err != nil {
		return WorkspaceState{}, err
	}
	return WorkspaceState{Products: products, Config: cfg, Bundles: bundles}, nil
}

func (s *workspaceService) UpdateProducts(ctx context.Context, workspaceID string, fn func([]models.Product) ([]models.Product, error)) ([]models.Product, error) {
	unlock := s.lock(workspaceID)
	defer unlock()

	current, err := s.Products(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	next, err := fn(models.CloneProducts(current))
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveProducts(ctx, workspaceID, next); err != nil {
		return nil, fmt.Errorf("failed to save products: %w", err)
	}
	s.invalidate(ctx, workspaceID)
	return next, nil
}

func (s *workspaceService) UpdateBundles(ctx context.Context, workspaceID string, fn func([]models.BundleOffer) ([]models.BundleOffer, error)) ([]models.BundleOffer, error) {
	unlock := s.lock(workspaceID)
	defer unlock()

	current, err := s.Bundles(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	next, err := fn(models.CloneBundles(current))
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveBundles(ctx, workspaceID, next); err != nil {
		return nil, fmt.Errorf("failed to save bundles: %w", err)
	}
	return next, nil
}

func (s *workspaceService) SaveConfig(ctx context.Context, workspaceID string, cfg models.PricingConfig) error {
	unlock := s.lock(workspaceID)
	defer unlock()

	if err := s.repo.SaveConfig(ctx, workspaceID, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	s.invalidate(ctx, workspaceID)
	return nil
}

func (s *workspaceService) ListWorkspaces(ctx context.Context) ([]string, error) {
	return s.repo.ListWorkspaces(ctx)
}

func (s *workspaceService) invalidate(ctx context.Context, workspaceID string) {
	if err := s.cacheSvc.InvalidateWorkspace(ctx, workspaceID); err != nil {
		s.logger.Warn("failed to invalidate workspace cache", zap.String("workspace_id", workspaceID), zap.Error(err))
	}
}
