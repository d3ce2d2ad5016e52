package handlers

import (
	"net/http"
	"strconv"

	"trustcart/internal/common"
	"trustcart/internal/models"
	"trustcart/internal/pricing"
	"trustcart/internal/services"

	"github.com/labstack/echo/v4"
)

// PricingHandlers serves the dashboard, settings and pricing strategy endpoints.
type PricingHandlers struct {
	pricingService services.PricingService
}

func NewPricingHandlers(pricingService services.PricingService) *PricingHandlers {
	return &PricingHandlers{pricingService: pricingService}
}

// GetDashboard handles GET /dashboard
func (h *PricingHandlers) GetDashboard(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	dashboard, err := h.pricingService.Dashboard(c.Request().Context(), ws)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dashboard)
}

// GetConfig handles GET /config
func (h *PricingHandlers) GetConfig(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	cfg, err := h.pricingService.Config(c.Request().Context(), ws)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cfg)
}

// UpdateConfig handles PUT /config. An invalid configuration is rejected with 422.
func (h *PricingHandlers) UpdateConfig(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	var cfg models.PricingConfig
	if err := bindJSON(c, &cfg); err != nil {
		return err
	}
	saved, err := h.pricingService.UpdateConfig(c.Request().Context(), ws, cfg)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, saved)
}

type calculateRequest struct {
	CostPrice float64 `json:"costPrice"`
}

// Calculate handles POST /pricing/calculate
func (h *PricingHandlers) Calculate(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	var req calculateRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := common.ValidateNonNegativeFloat(req.CostPrice, "costPrice"); err != nil {
		return common.SendValidationError(c, "costPrice", err.Error())
	}

	result, err := h.pricingService.Calculate(c.Request().Context(), ws, req.CostPrice)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// ApplyToAll handles POST /pricing/apply-all?confirm=true
func (h *PricingHandlers) ApplyToAll(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	if err := requireConfirmation(c); err != nil {
		return err
	}
	updated, err := h.pricingService.ApplyToAll(c.Request().Context(), ws)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"updated": updated})
}

// Recalculate handles POST /pricing/recalculate?force=
func (h *PricingHandlers) Recalculate(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	force, _ := strconv.ParseBool(c.QueryParam("force"))
	products, err := h.pricingService.RecalculateMissing(c.Request().Context(), ws, force)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
		"total":    len(products),
	})
}

// ApplyPsychologicalPricing handles POST /pricing/psychological
func (h *PricingHandlers) ApplyPsychologicalPricing(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	updated, err := h.pricingService.ApplyPsychologicalPricing(c.Request().Context(), ws)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"updated": updated})
}

// Recommendations handles GET /strategies/recommendations
func (h *PricingHandlers) Recommendations(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	recs, err := h.pricingService.Recommendations(c.Request().Context(), ws)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"recommendations": recs})
}

type dynamicPriceRequest struct {
	SellingPrice float64 `json:"sellingPrice"`
	models.PricingFactors
}

// DynamicPrice handles POST /strategies/dynamic-price
func (h *PricingHandlers) DynamicPrice(c echo.Context) error {
	var req dynamicPriceRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := common.ValidateNonNegativeFloat(req.SellingPrice, "sellingPrice"); err != nil {
		return common.SendValidationError(c, "sellingPrice", err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"price": pricing.ApplyDynamicPricing(req.SellingPrice, req.PricingFactors),
	})
}

type volumeDiscountRequest struct {
	Quantity  int     `json:"quantity"`
	BasePrice float64 `json:"basePrice"`
}

// VolumeDiscount handles POST /strategies/volume-discount
func (h *PricingHandlers) VolumeDiscount(c echo.Context) error {
	var req volumeDiscountRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if req.Quantity < 0 {
		return common.SendValidationError(c, "quantity", "quantity cannot be negative")
	}
	unit := pricing.VolumeDiscount(req.Quantity, req.BasePrice)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"unitPrice": unit,
		"total":     unit * float64(req.Quantity),
	})
}

type loyaltyDiscountRequest struct {
	Tier      string  `json:"tier"`
	BasePrice float64 `json:"basePrice"`
}

// LoyaltyDiscount handles POST /strategies/loyalty-discount
func (h *PricingHandlers) LoyaltyDiscount(c echo.Context) error {
	var req loyaltyDiscountRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"price": pricing.LoyaltyDiscount(req.Tier, req.BasePrice),
	})
}
