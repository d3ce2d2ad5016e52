package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"trustcart/internal/common"
	"trustcart/internal/models"
	"trustcart/internal/pricing"
	"trustcart/internal/strategies"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultBundleColor = "#6B7280"

type BundleService interface {
	List(ctx context.Context, workspaceID string) ([]models.BundleOffer, error)
	// Suggestions generates bundles from the current products without saving them.
	Suggestions(ctx context.Context, workspaceID string) ([]models.BundleOffer, error)
	// CreateFromSuggestion saves the generated bundle for category.
	CreateFromSuggestion(ctx context.Context, workspaceID, category string) (*models.BundleOffer, error)
	Create(ctx context.Context, workspaceID string, req models.BundleCreate) (*models.BundleOffer, error)
	Update(ctx context.Context, workspaceID, id string, update models.BundleUpdate) (*models.BundleOffer, error)
	Delete(ctx context.Context, workspaceID, id string) error
	Duplicate(ctx context.Context, workspaceID, id string) (*models.BundleOffer, error)
}

type bundleService struct {
	workspaces WorkspaceService
	logger     *zap.Logger
	now        func() time.Time
}

func NewBundleService(workspaces WorkspaceService, logger *zap.Logger) BundleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &bundleService{workspaces: workspaces, logger: logger, now: time.Now}
}

func (s *bundleService) List(ctx context.Context, workspaceID string) ([]models.BundleOffer, error) {
	return s.workspaces.Bundles(ctx, workspaceID)
}

func (s *bundleService) Suggestions(ctx context.Context, workspaceID string) ([]models.BundleOffer, error) {
	products, err := s.workspaces.Products(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	suggestions := strategies.GenerateAutoBundles(products, s.now())
	if suggestions == nil {
		suggestions = []models.BundleOffer{}
	}
	return suggestions, nil
}

func (s *bundleService) CreateFromSuggestion(ctx context.Context, workspaceID, category string) (*models.BundleOffer, error) {
	suggestions, err := s.Suggestions(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(suggestions, func(b models.BundleOffer) bool { return b.Category == category })
	if i < 0 {
		return nil, fmt.Errorf("%w: no bundle can be generated for %q", models.ErrNotEnoughProducts, category)
	}
	bundle := suggestions[i]
	if err := s.append(ctx, workspaceID, bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

func (s *bundleService) Create(ctx context.Context, workspaceID string, req models.BundleCreate) (*models.BundleOffer, error) {
	if err := common.ValidateRequiredString(req.Name, "name"); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidProduct, err)
	}
	if req.Discount != nil && (*req.Discount < 0 || *req.Discount >= 100) {
		return nil, fmt.Errorf("%w: discount must be in [0, 100)", models.ErrInvalidProduct)
	}
	if len(req.ProductIDs) < 2 {
		return nil, fmt.Errorf("%w: a bundle needs at least 2 products", models.ErrNotEnoughProducts)
	}

	state, err := s.workspaces.State(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	// Snapshots carry the price in effect, so derived prices count toward the bundle.
	selected := make([]models.Product, 0, len(req.ProductIDs))
	for _, id := range req.ProductIDs {
		i := indexOfProduct(state.Products, id)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", models.ErrProductNotFound, id)
		}
		p := state.Products[i].Clone()
		price := pricing.EffectiveSellingPrice(p, state.Config)
		if price <= 0 {
			return nil, fmt.Errorf("%w: product %s has no price", models.ErrInvalidProduct, id)
		}
		p.SellingPrice = models.Float64Ptr(price)
		selected = append(selected, p)
	}

	category := selected[0].Category
	discount := 0.0
	color := defaultBundleColor
	if cfg, ok := strategies.BundleConfigFor(category); ok {
		discount = cfg.Discount
		color = cfg.Color
	}
	if req.Discount != nil {
		discount = *req.Discount
	}
	if req.Color != nil && strings.TrimSpace(*req.Color) != "" {
		color = strings.TrimSpace(*req.Color)
	}

	bundle := strategies.NewBundle(strategies.BundleID(category, s.now()), strings.TrimSpace(req.Name), category, selected, discount, color)
	if err := s.append(ctx, workspaceID, bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

func (s *bundleService) append(ctx context.Context, workspaceID string, bundle models.BundleOffer) error {
	_, err := s.workspaces.UpdateBundles(ctx, workspaceID, func(bundles []models.BundleOffer) ([]models.BundleOffer, error) {
		return append(bundles, bundle), nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("bundle created", zap.String("workspace_id", workspaceID), zap.String("bundle_id", bundle.ID), zap.Int("products", len(bundle.Products)))
	return nil
}

func (s *bundleService) Update(ctx context.Context, workspaceID, id string, update models.BundleUpdate) (*models.BundleOffer, error) {
	if update.Discount != nil && (*update.Discount < 0 || *update.Discount >= 100) {
		return nil, fmt.Errorf("%w: discount must be in [0, 100)", models.ErrInvalidProduct)
	}
	var updated models.BundleOffer
	_, err := s.workspaces.UpdateBundles(ctx, workspaceID, func(bundles []models.BundleOffer) ([]models.BundleOffer, error) {
		i := indexOfBundle(bundles, id)
		if i < 0 {
			return nil, models.ErrBundleNotFound
		}
		b := &bundles[i]
		if update.Name != nil && strings.TrimSpace(*update.Name) != "" {
			b.Name = strings.TrimSpace(*update.Name)
		}
		if update.Discount != nil {
			b.Discount = *update.Discount
			b.BundlePrice = strategies.BundlePrice(b.OriginalPrice, b.Discount)
		}
		if update.Color != nil {
			b.Color = *update.Color
		}
		if update.IsActive != nil {
			b.IsActive = *update.IsActive
		}
		updated = b.Clone()
		return bundles, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *bundleService) Delete(ctx context.Context, workspaceID, id string) error {
	_, err := s.workspaces.UpdateBundles(ctx, workspaceID, func(bundles []models.BundleOffer) ([]models.BundleOffer, error) {
		i := indexOfBundle(bundles, id)
		if i < 0 {
			return nil, models.ErrBundleNotFound
		}
		return slices.Delete(bundles, i, i+1), nil
	})
	return err
}

func (s *bundleService) Duplicate(ctx context.Context, workspaceID, id string) (*models.BundleOffer, error) {
	var copyOf models.BundleOffer
	_, err := s.workspaces.UpdateBundles(ctx, workspaceID, func(bundles []models.BundleOffer) ([]models.BundleOffer, error) {
		i := indexOfBundle(bundles, id)
		if i < 0 {
			return nil, models.ErrBundleNotFound
		}
		copyOf = bundles[i].Clone()
		copyOf.ID = "bundle_" + uuid.NewString()
		copyOf.Name = bundles[i].Name + " (Copy)"
		return append(bundles, copyOf), nil
	})
	if err != nil {
		return nil, err
	}
	return &copyOf, nil
}

func indexOfBundle(bundles []models.BundleOffer, id string) int {
	return slices.IndexFunc(bundles, func(b models.BundleOffer) bool { return b.ID == id })
}
