package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"trustcart/internal/common"
	"trustcart/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductService interface {
	List(ctx context.Context, workspaceID string, filter models.ProductFilter) ([]models.Product, error)
	Get(ctx context.Context, workspaceID, id string) (*models.Product, error)
	Create(ctx context.Context, workspaceID string, req models.ProductCreate) (*models.Product, error)
	Update(ctx context.Context, workspaceID, id string, update models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, workspaceID, id string) error
	Duplicate(ctx context.Context, workspaceID, id string) (*models.Product, error)
	Reset(ctx context.Context, workspaceID string) ([]models.Product, error)
}

type productService struct {
	workspaces  WorkspaceService
	categorySvc CategoryService
	logger      *zap.Logger
	now         func() time.Time
	newID       func() string
}

func NewProductService(workspaces WorkspaceService, categorySvc CategoryService, logger *zap.Logger) ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &productService{
		workspaces:  workspaces,
		categorySvc: categorySvc,
		logger:      logger,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

func (s *productService) List(ctx context.Context, workspaceID string, filter models.ProductFilter) ([]models.Product, error) {
	products, err := s.workspaces.Products(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	if query == "" && filter.Category == "" {
		return products, nil
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Category), query) &&
			!strings.Contains(strings.ToLower(common.SafeString(p.SKU)), query) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *productService) Get(ctx context.Context, workspaceID, id string) (*models.Product, error) {
	products, err := s.workspaces.Products(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	i := indexOfProduct(products, id)
	if i < 0 {
		return nil, models.ErrProductNotFound
	}
	return &products[i], nil
}

func (s *productService) Create(ctx context.Context, workspaceID string, req models.ProductCreate) (*models.Product, error) {
	if err := validateProductCreate(&req); err != nil {
		return nil, err
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		detected, err := s.categorySvc.Detect(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		category = detected
	}

	product := models.Product{
		ID:           s.newID(),
		Name:         strings.TrimSpace(req.Name),
		Category:     category,
		CostPrice:    req.CostPrice,
		SellingPrice: positiveOrNil(req.SellingPrice),
		MarketPrice:  positiveOrNil(req.MarketPrice),
		Quantity:     1,
		IsActive:     true,
		Description:  req.Description,
		SKU:          req.SKU,
		Supplier:     req.Supplier,
		LastUpdated:  s.now(),
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	_, err := s.workspaces.UpdateProducts(ctx, workspaceID, func(products []models.Product) ([]models.Product, error) {
		return append(products, product), nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("product created", zap.String("workspace_id", workspaceID), zap.String("product_id", product.ID))
	return &product, nil
}

func (s *productService) Update(ctx context.Context, workspaceID, id string, update models.ProductUpdate) (*models.Product, error) {
	if err := validateProductUpdate(&update); err != nil {
		return nil, err
	}

	var updated models.Product
	_, err := s.workspaces.UpdateProducts(ctx, workspaceID, func(products []models.Product) ([]models.Product, error) {
		i := indexOfProduct(products, id)
		if i < 0 {
			return nil, models.ErrProductNotFound
		}
		applyProductUpdate(&products[i], update)
		products[i].LastUpdated = s.now()
		updated = products[i]
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *productService) Delete(ctx context.Context, workspaceID, id string) error {
	_, err := s.workspaces.UpdateProducts(ctx, workspaceID, func(products []models.Product) ([]models.Product, error) {
		i := indexOfProduct(products, id)
		if i < 0 {
			return nil, models.ErrProductNotFound
		}
		return slices.Delete(products, i, i+1), nil
	})
	return err
}

func (s *productService) Duplicate(ctx context.Context, workspaceID, id string) (*models.Product, error) {
	var copyOf models.Product
	_, err := s.workspaces.UpdateProducts(ctx, workspaceID, func(products []models.Product) ([]models.Product, error) {
		i := indexOfProduct(products, id)
		if i < 0 {
			return nil, models.ErrProductNotFound
		}
		copyOf = products[i].Clone()
		copyOf.ID = s.newID()
		copyOf.Name = products[i].Name + " (Copy)"
		copyOf.LastUpdated = s.now()
		return append(products, copyOf), nil
	})
	if err != nil {
		return nil, err
	}
	return &copyOf, nil
}

func (s *productService) Reset(ctx context.Context, workspaceID string) ([]models.Product, error) {
	return s.workspaces.UpdateProducts(ctx, workspaceID, func([]models.Product) ([]models.Product, error) {
		return models.DefaultProducts(s.now()), nil
	})
}

func indexOfProduct(products []models.Product, id string) int {
	return slices.IndexFunc(products, func(p models.Product) bool { return p.ID == id })
}

func positiveOrNil(v *float64) *float64 {
	if v == nil || *v <= 0 {
		return nil
	}
	return models.Float64Ptr(*v)
}

func validateProductCreate(req *models.ProductCreate) error {
	if err := common.ValidateRequiredString(req.Name, "name"); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidProduct, err)
	}
	if err := common.ValidateNonNegativeFloat(req.CostPrice, "costPrice"); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidProduct, err)
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", models.ErrInvalidProduct)
	}
	return validateOptionalFields(req.SellingPrice, req.MarketPrice, req.Description, req.SKU, req.Supplier)
}

func validateProductUpdate(u *models.ProductUpdate) error {
	if u.Name != nil {
		if err := common.ValidateRequiredString(*u.Name, "name"); err != nil {
			return fmt.Errorf("%w: %v", models.ErrInvalidProduct, err)
		}
	}
	if u.CostPrice != nil {
		if err := common.ValidateNonNegativeFloat(*u.CostPrice, "costPrice"); err != nil {
			return fmt.Errorf("%w: %v", models.ErrInvalidProduct, err)
		}
	}
	if u.Quantity != nil && *u.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", models.ErrInvalidProduct)
	}
	return validateOptionalFields(u.SellingPrice, u.MarketPrice, u.Description, u.SKU, u.Supplier)
}

func validateOptionalFields(selling, market *float64, description, sku, supplier *string) error {
	for name, v := range map[string]*float64{"sellingPrice": selling, "marketPrice": market} {
		if v == nil {
			continue
		}
		if err := common.ValidateNonNegativeFloat(*v, name); err != nil {
			return fmt.Errorf("%w: %v", models.ErrInvalidProduct, err)
		}
	}
	if err := common.ValidateOptionalString(description, "description", 2000); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidProduct, err)
	}
	if err := common.ValidateOptionalString(sku, "sku", 100); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidProduct, err)
	}
	if err := common.ValidateOptionalString(supplier, "supplier", 200); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidProduct, err)
	}
	return nil
}

func applyProductUpdate(p *models.Product, u models.ProductUpdate) {
	if u.Name != nil {
		p.Name = strings.TrimSpace(*u.Name)
	}
	if u.Category != nil {
		p.Category = strings.TrimSpace(*u.Category)
	}
	if u.CostPrice != nil {
		p.CostPrice = *u.CostPrice
	}
	if u.ClearSellingPrice {
		p.SellingPrice = nil
	} else if u.SellingPrice != nil {
		p.SellingPrice = positiveOrNil(u.SellingPrice)
	}
	if u.MarketPrice != nil {
		p.MarketPrice = positiveOrNil(u.MarketPrice)
	}
	if u.Quantity != nil {
		p.Quantity = *u.Quantity
	}
	if u.IsActive != nil {
		p.IsActive = *u.IsActive
	}
	if u.Description != nil {
		p.Description = u.Description
	}
	if u.SKU != nil {
		p.SKU = u.SKU
	}
	if u.Supplier != nil {
		p.Supplier = u.Supplier
	}
}
