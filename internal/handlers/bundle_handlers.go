package handlers

import (
	"net/http"
	"strings"

	"trustcart/internal/common"
	"trustcart/internal/models"
	"trustcart/internal/services"

	"github.com/labstack/echo/v4"
)

// BundleHandlers handles HTTP requests for bundle offers
type BundleHandlers struct {
	bundleService services.BundleService
}

func NewBundleHandlers(bundleService services.BundleService) *BundleHandlers {
	return &BundleHandlers{bundleService: bundleService}
}

// ListBundles handles GET /bundles
func (h *BundleHandlers) ListBundles(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	bundles, err := h.bundleService.List(c.Request().Context(), ws)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"bundles": bundles})
}

// Suggestions handles GET /bundles/suggestions
func (h *BundleHandlers) Suggestions(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	suggestions, err := h.bundleService.Suggestions(c.Request().Context(), ws)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"suggestions": suggestions})
}

type fromSuggestionRequest struct {
	Category string `json:"category"`
}

// CreateFromSuggestion handles POST /bundles/from-suggestion
func (h *BundleHandlers) CreateFromSuggestion(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	var req fromSuggestionRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if strings.TrimSpace(req.Category) == "" {
		return common.SendValidationError(c, "category", "category is required")
	}
	bundle, err := h.bundleService.CreateFromSuggestion(c.Request().Context(), ws, req.Category)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, bundle)
}

// CreateBundle handles POST /bundles
func (h *BundleHandlers) CreateBundle(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	var req models.BundleCreate
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	bundle, err := h.bundleService.Create(c.Request().Context(), ws, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, bundle)
}

// UpdateBundle handles PUT /bundles/:id
func (h *BundleHandlers) UpdateBundle(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	var req models.BundleUpdate
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	bundle, err := h.bundleService.Update(c.Request().Context(), ws, c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bundle)
}

// DeleteBundle handles DELETE /bundles/:id
func (h *BundleHandlers) DeleteBundle(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	if err := h.bundleService.Delete(c.Request().Context(), ws, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DuplicateBundle handles POST /bundles/:id/duplicate
func (h *BundleHandlers) DuplicateBundle(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	bundle, err := h.bundleService.Duplicate(c.Request().Context(), ws, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, bundle)
}
