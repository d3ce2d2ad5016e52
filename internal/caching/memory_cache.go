package caching

import (
	"context"
	"slices"
	"sync"
	"time"

	"trustcart/internal/models"
)

type memoryEntry struct {
	value     any
	expiresAt time.Time
}

// memoryCacheService serves single-instance deployments without Redis.
// Entries expire lazily on read.
type memoryCacheService struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCacheService() CacheService {
	return &memoryCacheService{entries: make(map[string]memoryEntry), now: time.Now}
}

func (m *memoryCacheService) get(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		delete(m.entries, key)
		return nil, false
	}
	return e.value, true
}

func (m *memoryCacheService) set(key string, value any, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.entries[key] = e
}

func (m *memoryCacheService) GetDashboard(ctx context.Context, workspaceID string) (*models.Dashboard, error) {
	v, ok := m.get(dashboardKey(workspaceID))
	if !ok {
		return nil, nil
	}
	d := v.(models.Dashboard)
	return &d, nil
}

func (m *memoryCacheService) SetDashboard(ctx context.Context, workspaceID string, dashboard *models.Dashboard, ttl time.Duration) error {
	d := *dashboard
	d.CategoryStats = slices.Clone(dashboard.CategoryStats)
	m.set(dashboardKey(workspaceID), d, ttl)
	return nil
}

func (m *memoryCacheService) GetAnalysis(ctx context.Context, workspaceID string) (*models.AnalysisReport, error) {
	v, ok := m.get(analysisKey(workspaceID))
	if !ok {
		return nil, nil
	}
	r := v.(models.AnalysisReport)
	return &r, nil
}

func (m *memoryCacheService) SetAnalysis(ctx context.Context, workspaceID string, report *models.AnalysisReport, ttl time.Duration) error {
	r := *report
	r.CategoryDistribution = slices.Clone(report.CategoryDistribution)
	r.Recommendations = slices.Clone(report.Recommendations)
	m.set(analysisKey(workspaceID), r, ttl)
	return nil
}

func (m *memoryCacheService) InvalidateWorkspace(ctx context.Context, workspaceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, dashboardKey(workspaceID))
	delete(m.entries, analysisKey(workspaceID))
	return nil
}

func (m *memoryCacheService) GetDetectedCategory(ctx context.Context, productName string) (string, error) {
	v, ok := m.get(categoryKey(productName))
	if !ok {
		return "", nil
	}
	return v.(string), nil
}

func (m *memoryCacheService) SetDetectedCategory(ctx context.Context, productName, category string, ttl time.Duration) error {
	m.set(categoryKey(productName), category, ttl)
	return nil
}

func (m *memoryCacheService) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	m.set(revokedKey(tokenID), true, ttl)
	return nil
}

func (m *memoryCacheService) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	_, ok := m.get(revokedKey(tokenID))
	return ok, nil
}

func (m *memoryCacheService) Ping(ctx context.Context) error {
	return nil
}
