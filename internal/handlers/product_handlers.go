package handlers

import (
	"net/http"

	"trustcart/internal/models"
	"trustcart/internal/services"

	"github.com/labstack/echo/v4"
)

// ProductHandlers handles HTTP requests for products
type ProductHandlers struct {
	productService services.ProductService
	pricingService services.PricingService
}

// NewProductHandlers creates a new product handlers instance
func NewProductHandlers(productService services.ProductService, pricingService services.PricingService) *ProductHandlers {
	return &ProductHandlers{
		productService: productService,
		pricingService: pricingService,
	}
}

// ListProducts handles GET /products?q=&category=
func (h *ProductHandlers) ListProducts(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}

	filter := models.ProductFilter{
		Query:    c.QueryParam("q"),
		Category: c.QueryParam("category"),
	}
	products, err := h.productService.List(c.Request().Context(), ws, filter)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
		"total":    len(products),
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandlers) GetProduct(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	product, err := h.productService.Get(c.Request().Context(), ws, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /products
func (h *ProductHandlers) CreateProduct(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	var req models.ProductCreate
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	product, err := h.productService.Create(c.Request().Context(), ws, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Product created successfully",
		"product": product,
	})
}

// UpdateProduct handles PUT /products/:id. Omitted fields are left unchanged.
func (h *ProductHandlers) UpdateProduct(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	var req models.ProductUpdate
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	product, err := h.productService.Update(c.Request().Context(), ws, c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct handles DELETE /products/:id
func (h *ProductHandlers) DeleteProduct(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	if err := h.productService.Delete(c.Request().Context(), ws, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DuplicateProduct handles POST /products/:id/duplicate
func (h *ProductHandlers) DuplicateProduct(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	product, err := h.productService.Duplicate(c.Request().Context(), ws, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, product)
}

// ResetProducts handles POST /products/reset?confirm=true
func (h *ProductHandlers) ResetProducts(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	if err := requireConfirmation(c); err != nil {
		return err
	}
	products, err := h.productService.Reset(c.Request().Context(), ws)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
		"total":    len(products),
	})
}

// ApplyPsychologicalPrice handles POST /products/:id/psychological-price
func (h *ProductHandlers) ApplyPsychologicalPrice(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	product, err := h.pricingService.ApplyPsychologicalPrice(c.Request().Context(), ws, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}
