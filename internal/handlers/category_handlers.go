package handlers

import (
	"net/http"
	"strconv"

	"trustcart/internal/categories"
	"trustcart/internal/services"

	"github.com/labstack/echo/v4"
)

const maxSuggestionLimit = 50

// CategoryHandlers handles category-related HTTP requests
type CategoryHandlers struct {
	categoryService services.CategoryService
}

// NewCategoryHandlers creates a new category handlers instance
func NewCategoryHandlers(categoryService services.CategoryService) *CategoryHandlers {
	return &CategoryHandlers{categoryService: categoryService}
}

// Detect handles GET /categories/detect?name=
func (h *CategoryHandlers) Detect(c echo.Context) error {
	name := c.QueryParam("name")
	category, err := h.categoryService.Detect(c.Request().Context(), name)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"name":     name,
		"category": category,
	})
}

// Suggestions handles GET /categories/suggestions?q=&limit=
func (h *CategoryHandlers) Suggestions(c echo.Context) error {
	limit := categories.DefaultSuggestionLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if l, err := strconv.Atoi(raw); err == nil && l > 0 {
			limit = min(l, maxSuggestionLimit)
		}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"categories": h.categoryService.Suggestions(c.QueryParam("q"), limit),
	})
}

// Popular handles GET /categories/popular
func (h *CategoryHandlers) Popular(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"categories": h.categoryService.Popular(),
	})
}
