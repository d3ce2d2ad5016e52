package caching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"trustcart/internal/models"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "trustcart:"

// CacheService is a cache-aside store. A miss is reported as a nil value and
// a nil error, so callers only handle errors for real failures.
type CacheService interface {
	// Derived workspace views
	GetDashboard(ctx context.Context, workspaceID string) (*models.Dashboard, error)
	SetDashboard(ctx context.Context, workspaceID string, dashboard *models.Dashboard, ttl time.Duration) error
	GetAnalysis(ctx context.Context, workspaceID string) (*models.AnalysisReport, error)
	SetAnalysis(ctx context.Context, workspaceID string, report *models.AnalysisReport, ttl time.Duration) error
	InvalidateWorkspace(ctx context.Context, workspaceID string) error

	// Category detection memo, keyed by the lower-cased product name
	GetDetectedCategory(ctx context.Context, productName string) (string, error)
	SetDetectedCategory(ctx context.Context, productName, category string, ttl time.Duration) error

	// Revoked session tokens
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)

	Ping(ctx context.Context) error
}

func dashboardKey(workspaceID string) string {
	return fmt.Sprintf("%sdashboard:%s", keyPrefix, workspaceID)
}

func analysisKey(workspaceID string) string {
	return fmt.Sprintf("%sanalysis:%s", keyPrefix, workspaceID)
}

func categoryKey(productName string) string {
	return fmt.Sprintf("%scategory:%s", keyPrefix, strings.ToLower(strings.TrimSpace(productName)))
}

func revokedKey(tokenID string) string {
	return fmt.Sprintf("%srevoked:%s", keyPrefix, tokenID)
}

type redisCacheService struct {
	client *redis.Client
}

// NewRedisCacheService accepts a bare host:port or a redis:// URL.
func NewRedisCacheService(addr, password string, db int) CacheService {
	parsedAddr := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://")
	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})
	return &redisCacheService{client: client}
}

func (r *redisCacheService) getJSON(ctx context.Context, key string, dest any) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *redisCacheService) setJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) GetDashboard(ctx context.Context, workspaceID string) (*models.Dashboard, error) {
	var dashboard models.Dashboard
	found, err := r.getJSON(ctx, dashboardKey(workspaceID), &dashboard)
	if err != nil || !found {
		return nil, err
	}
	return &dashboard, nil
}

func (r *redisCacheService) SetDashboard(ctx context.Context, workspaceID string, dashboard *models.Dashboard, ttl time.Duration) error {
	return r.setJSON(ctx, dashboardKey(workspaceID), dashboard, ttl)
}

func (r *redisCacheService) GetAnalysis(ctx context.Context, workspaceID string) (*models.AnalysisReport, error) {
	var report models.AnalysisReport
	found, err := r.getJSON(ctx, analysisKey(workspaceID), &report)
	if err != nil || !found {
		return nil, err
	}
	return &report, nil
}

func (r *redisCacheService) SetAnalysis(ctx context.Context, workspaceID string, report *models.AnalysisReport, ttl time.Duration) error {
	return r.setJSON(ctx, analysisKey(workspaceID), report, ttl)
}

func (r *redisCacheService) InvalidateWorkspace(ctx context.Context, workspaceID string) error {
	return r.client.Del(ctx, dashboardKey(workspaceID), analysisKey(workspaceID)).Err()
}

func (r *redisCacheService) GetDetectedCategory(ctx context.Context, productName string) (string, error) {
	val, err := r.client.Get(ctx, categoryKey(productName)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

func (r *redisCacheService) SetDetectedCategory(ctx context.Context, productName, category string, ttl time.Duration) error {
	return r.client.Set(ctx, categoryKey(productName), category, ttl).Err()
}

func (r *redisCacheService) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	return r.client.Set(ctx, revokedKey(tokenID), "1", ttl).Err()
}

func (r *redisCacheService) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
