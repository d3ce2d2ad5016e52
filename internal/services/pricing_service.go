package services

import (
	"context"
	"time"

	"trustcart/internal/caching"
	"trustcart/internal/jobs"
	"trustcart/internal/models"
	"trustcart/internal/pricing"
	"trustcart/internal/strategies"

	"go.uber.org/zap"
)

const dashboardTTL = 10 * time.Minute

type PricingService interface {
	Config(ctx context.Context, workspaceID string) (models.PricingConfig, error)
	UpdateConfig(ctx context.Context, workspaceID string, cfg models.PricingConfig) (models.PricingConfig, error)
	Calculate(ctx context.Context, workspaceID string, costPrice float64) (models.PriceCalculation, error)
	Dashboard(ctx context.Context, workspaceID string) (*models.Dashboard, error)
	RefreshDashboard(ctx context.Context, workspaceID string) (*models.Dashboard, error)

	// ApplyToAll overwrites the selling price of every product that has a
	// cost price with the derived price. It returns the number of products changed.
	ApplyToAll(ctx context.Context, workspaceID string) (int, error)
	// RecalculateMissing fills only absent selling prices, or all of them when force is set.
	RecalculateMissing(ctx context.Context, workspaceID string, force bool) ([]models.Product, error)

	Recommendations(ctx context.Context, workspaceID string) ([]models.Recommendation, error)
	ApplyPsychologicalPrice(ctx context.Context, workspaceID, productID string) (*models.Product, error)
	ApplyPsychologicalPricing(ctx context.Context, workspaceID string) (int, error)
}

type pricingService struct {
	workspaces WorkspaceService
	cacheSvc   caching.CacheService
	logger     *zap.Logger
	now        func() time.Time
}

func NewPricingService(workspaces WorkspaceService, cacheSvc caching.CacheService, logger *zap.Logger) PricingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &pricingService{workspaces: workspaces, cacheSvc: cacheSvc, logger: logger, now: time.Now}
}

func (s *pricingService) Config(ctx context.Context, workspaceID string) (models.PricingConfig, error) {
	return s.workspaces.Config(ctx, workspaceID)
}

func (s *pricingService) UpdateConfig(ctx context.Context, workspaceID string, cfg models.PricingConfig) (models.PricingConfig, error) {
	if err := pricing.ValidateConfig(&cfg); err != nil {
		return models.PricingConfig{}, err
	}
	if err := s.workspaces.SaveConfig(ctx, workspaceID, cfg); err != nil {
		return models.PricingConfig{}, err
	}
	s.logger.Info("pricing config updated", zap.String("workspace_id", workspaceID))
	return cfg, nil
}

func (s *pricingService) Calculate(ctx context.Context, workspaceID string, costPrice float64) (models.PriceCalculation, error) {
	cfg, err := s.workspaces.Config(ctx, workspaceID)
	if err != nil {
		return models.PriceCalculation{}, err
	}
	return pricing.CalculatePrice(costPrice, cfg), nil
}

func (s *pricingService) Dashboard(ctx context.Context, workspaceID string) (*models.Dashboard, error) {
	cached, err := s.cacheSvc.GetDashboard(ctx, workspaceID)
	if err != nil {
		s.logger.Warn("dashboard cache read failed", zap.String("workspace_id", workspaceID), zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}
	return s.RefreshDashboard(ctx, workspaceID)
}

func (s *pricingService) RefreshDashboard(ctx context.Context, workspaceID string) (*models.Dashboard, error) {
	state, err := s.workspaces.State(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	dashboard := &models.Dashboard{
		Metrics:            pricing.CalculateMetrics(state.Products, state.Config),
		CategoryStats:      pricing.CategoryBreakdown(state.Products, state.Config),
		ProfitDistribution: pricing.ProfitDistributionOf(state.Products, state.Config),
		Currency:           state.Config.Currency,
	}
	if err := s.cacheSvc.SetDashboard(ctx, workspaceID, dashboard, dashboardTTL); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.String("workspace_id", workspaceID), zap.Error(err))
	}
	return dashboard, nil
}

func (s *pricingService) ApplyToAll(ctx context.Context, workspaceID string) (int, error) {
	changed := 0
	_, err := s.workspaces.UpdateProducts(ctx, workspaceID, func(products []models.Product) ([]models.Product, error) {
		cfg, err := s.workspaces.Config(ctx, workspaceID)
		if err != nil {
			return nil, err
		}
		now := s.now()
		for i := range products {
			if products[i].CostPrice <= 0 {
				continue
			}
			price := pricing.CalculatePrice(products[i].CostPrice, cfg).SellingPrice
			products[i].SellingPrice = models.Float64Ptr(price)
			products[i].LastUpdated = now
			changed++
		}
		return products, nil
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info("pricing applied to all products", zap.String("workspace_id", workspaceID), zap.Int("updated", changed))
	return changed, nil
}

func (s *pricingService) RecalculateMissing(ctx context.Context, workspaceID string, force bool) ([]models.Product, error) {
	return s.workspaces.UpdateProducts(ctx, workspaceID, func(products []models.Product) ([]models.Product, error) {
		cfg, err := s.workspaces.Config(ctx, workspaceID)
		if err != nil {
			return nil, err
		}
		return jobs.RecalculateFormulas(products, cfg, s.now(), force), nil
	})
}

func (s *pricingService) Recommendations(ctx context.Context, workspaceID string) ([]models.Recommendation, error) {
	state, err := s.workspaces.State(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return strategies.GenerateRecommendations(state.Products, state.Config), nil
}

func (s *pricingService) ApplyPsychologicalPrice(ctx context.Context, workspaceID, productID string) (*models.Product, error) {
	var updated models.Product
	_, err := s.workspaces.UpdateProducts(ctx, workspaceID, func(products []models.Product) ([]models.Product, error) {
		i := indexOfProduct(products, productID)
		if i < 0 {
			return nil, models.ErrProductNotFound
		}
		price := products[i].ManualSellingPrice()
		if price <= 0 {
			return nil, models.ErrInvalidProduct
		}
		products[i].SellingPrice = models.Float64Ptr(strategies.PsychologicalPrice(price))
		products[i].LastUpdated = s.now()
		updated = products[i]
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *pricingService) ApplyPsychologicalPricing(ctx context.Context, workspaceID string) (int, error) {
	changed := 0
	_, err := s.workspaces.UpdateProducts(ctx, workspaceID, func(products []models.Product) ([]models.Product, error) {
		now := s.now()
		for i := range products {
			price := products[i].ManualSellingPrice()
			if price <= 0 || !strategies.NeedsPsychologicalPrice(price) {
				continue
			}
			products[i].SellingPrice = models.Float64Ptr(strategies.PsychologicalPrice(price))
			products[i].LastUpdated = now
			changed++
		}
		return products, nil
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}
