package services

import (
	"context"
	"strings"
	"time"

	"trustcart/internal/caching"
	"trustcart/internal/categories"
	"trustcart/internal/models"

	"go.uber.org/zap"
)

const detectedCategoryTTL = 24 * time.Hour

type CategoryService interface {
	// Detect classifies a product name. A cancelled context abandons the
	// lookup, so a newer lookup from the same form can replace it.
	Detect(ctx context.Context, productName string) (string, error)
	Suggestions(input string, limit int) []string
	Popular() []string
}

type categoryService struct {
	cacheSvc caching.CacheService
	logger   *zap.Logger
	detect   func(string) string
}

func NewCategoryService(cacheSvc caching.CacheService, logger *zap.Logger) CategoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &categoryService{cacheSvc: cacheSvc, logger: logger, detect: categories.Detect}
}

func (s *categoryService) Detect(ctx context.Context, productName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(productName) == "" {
		return models.UncategorizedCategory, nil
	}

	cached, err := s.cacheSvc.GetDetectedCategory(ctx, productName)
	if err != nil {
		s.logger.Warn("category cache read failed", zap.Error(err))
	} else if cached != "" {
		return cached, nil
	}

	category := s.detect(productName)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.cacheSvc.SetDetectedCategory(ctx, productName, category, detectedCategoryTTL); err != nil {
		s.logger.Warn("category cache write failed", zap.Error(err))
	}
	return category, nil
}

func (s *categoryService) Suggestions(input string, limit int) []string {
	return categories.Suggestions(input, limit)
}

func (s *categoryService) Popular() []string {
	return categories.Popular()
}
