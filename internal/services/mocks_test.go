package services

import (
	"context"
	"time"

	"trustcart/internal/caching"
	"trustcart/internal/models"
	"trustcart/internal/repositories"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// MockStateRepository is a testify double of repositories.StateRepository.
type MockStateRepository struct {
	mock.Mock
}

var _ repositories.StateRepository = (*MockStateRepository)(nil)

func (m *MockStateRepository) LoadProducts(ctx context.Context, workspaceID string) ([]models.Product, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockStateRepository) SaveProducts(ctx context.Context, workspaceID string, products []models.Product) error {
	args := m.Called(ctx, workspaceID, products)
	return args.Error(0)
}

func (m *MockStateRepository) LoadConfig(ctx context.Context, workspaceID string) (models.PricingConfig, error) {
	args := m.Called(ctx, workspaceID)
	return args.Get(0).(models.PricingConfig), args.Error(1)
}

func (m *MockStateRepository) SaveConfig(ctx context.Context, workspaceID string, cfg models.PricingConfig) error {
	args := m.Called(ctx, workspaceID, cfg)
	return args.Error(0)
}

func (m *MockStateRepository) LoadBundles(ctx context.Context, workspaceID string) ([]models.BundleOffer, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BundleOffer), args.Error(1)
}

func (m *MockStateRepository) SaveBundles(ctx context.Context, workspaceID string, bundles []models.BundleOffer) error {
	args := m.Called(ctx, workspaceID, bundles)
	return args.Error(0)
}

func (m *MockStateRepository) ListWorkspaces(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

// MockCacheService is a testify double of caching.CacheService.
type MockCacheService struct {
	mock.Mock
}

var _ caching.CacheService = (*MockCacheService)(nil)

func (m *MockCacheService) GetDashboard(ctx context.Context, workspaceID string) (*models.Dashboard, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dashboard), args.Error(1)
}

func (m *MockCacheService) SetDashboard(ctx context.Context, workspaceID string, dashboard *models.Dashboard, ttl time.Duration) error {
	args := m.Called(ctx, workspaceID, dashboard, ttl)
	return args.Error(0)
}

func (m *MockCacheService) GetAnalysis(ctx context.Context, workspaceID string) (*models.AnalysisReport, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnalysisReport), args.Error(1)
}

func (m *MockCacheService) SetAnalysis(ctx context.Context, workspaceID string, report *models.AnalysisReport, ttl time.Duration) error {
	args := m.Called(ctx, workspaceID, report, ttl)
	return args.Error(0)
}

func (m *MockCacheService) InvalidateWorkspace(ctx context.Context, workspaceID string) error {
	args := m.Called(ctx, workspaceID)
	return args.Error(0)
}

func (m *MockCacheService) GetDetectedCategory(ctx context.Context, productName string) (string, error) {
	args := m.Called(ctx, productName)
	return args.String(0), args.Error(1)
}

func (m *MockCacheService) SetDetectedCategory(ctx context.Context, productName, category string, ttl time.Duration) error {
	args := m.Called(ctx, productName, category, ttl)
	return args.Error(0)
}

func (m *MockCacheService) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockCacheService) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockStorageService is a testify double of StorageService.
type MockStorageService struct {
	mock.Mock
}

func (m *MockStorageService) Upload(ctx context.Context, objectName string, data []byte, contentType string) error {
	args := m.Called(ctx, objectName, data, contentType)
	return args.Error(0)
}

func (m *MockStorageService) PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectName, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockStorageService) EnsureBucketExists(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStorageService) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

// newTestWorkspaces wires a workspace service over the in-memory adapters with a fixed clock.
func newTestWorkspaces() (WorkspaceService, caching.CacheService) {
	cache := caching.NewMemoryCacheService()
	ws := NewWorkspaceService(repositories.NewMemoryStateRepo(), cache, nil, models.DefaultPricingConfig())
	ws.(*workspaceService).now = fixedClock
	return ws, cache
}

func pricedProduct(id, name, category string, cost, selling float64) models.Product {
	return models.Product{
		ID:           id,
		Name:         name,
		Category:     category,
		CostPrice:    cost,
		SellingPrice: models.Float64Ptr(selling),
		Quantity:     1,
		IsActive:     true,
		LastUpdated:  fixedNow,
	}
}
