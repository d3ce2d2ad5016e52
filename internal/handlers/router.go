package handlers

import (
	"trustcart/internal/middleware"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups every HTTP handler set served by the API.
type Handlers struct {
	Auth       *AuthHandlers
	Products   *ProductHandlers
	Pricing    *PricingHandlers
	Bundles    *BundleHandlers
	Categories *CategoryHandlers
	Transfer   *TransferHandlers
	Health     *HealthHandlers
}

// RegisterRoutes mounts the public and authenticated routes. requireAuth
// guards everything except health, swagger, register and login.
func RegisterRoutes(e *echo.Echo, h Handlers, requireAuth echo.MiddlewareFunc) {
	versionMiddleware := middleware.NewVersionMiddleware()
	e.Use(versionMiddleware.APIVersionResolver())

	// Health endpoints (no auth required)
	e.GET("/health", h.Health.HealthCheck)
	e.GET("/health/ready", h.Health.ReadinessCheck)
	e.GET("/health/live", h.Health.LivenessCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := versionMiddleware.VersionRoute(e, "v1")

	auth := v1.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	protected := v1.Group("")
	protected.Use(requireAuth)

	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/me", h.Auth.Me)

	// Products
	protected.GET("/products", h.Products.ListProducts)
	protected.POST("/products", h.Products.CreateProduct)
	protected.POST("/products/reset", h.Products.ResetProducts)
	protected.GET("/products/:id", h.Products.GetProduct)
	protected.PUT("/products/:id", h.Products.UpdateProduct)
	protected.DELETE("/products/:id", h.Products.DeleteProduct)
	protected.POST("/products/:id/duplicate", h.Products.DuplicateProduct)
	protected.POST("/products/:id/psychological-price", h.Products.ApplyPsychologicalPrice)

	// Dashboard and settings
	protected.GET("/dashboard", h.Pricing.GetDashboard)
	protected.GET("/config", h.Pricing.GetConfig)
	protected.PUT("/config", h.Pricing.UpdateConfig)
	protected.POST("/pricing/calculate", h.Pricing.Calculate)
	protected.POST("/pricing/apply-all", h.Pricing.ApplyToAll)
	protected.POST("/pricing/recalculate", h.Pricing.Recalculate)
	protected.POST("/pricing/psychological", h.Pricing.ApplyPsychologicalPricing)

	// Strategies
	protected.GET("/strategies/recommendations", h.Pricing.Recommendations)
	protected.POST("/strategies/dynamic-price", h.Pricing.DynamicPrice)
	protected.POST("/strategies/volume-discount", h.Pricing.VolumeDiscount)
	protected.POST("/strategies/loyalty-discount", h.Pricing.LoyaltyDiscount)

	// Bundles
	protected.GET("/bundles", h.Bundles.ListBundles)
	protected.POST("/bundles", h.Bundles.CreateBundle)
	protected.GET("/bundles/suggestions", h.Bundles.Suggestions)
	protected.POST("/bundles/from-suggestion", h.Bundles.CreateFromSuggestion)
	protected.PUT("/bundles/:id", h.Bundles.UpdateBundle)
	protected.DELETE("/bundles/:id", h.Bundles.DeleteBundle)
	protected.POST("/bundles/:id/duplicate", h.Bundles.DuplicateBundle)

	// Categories
	protected.GET("/categories/detect", h.Categories.Detect)
	protected.GET("/categories/suggestions", h.Categories.Suggestions)
	protected.GET("/categories/popular", h.Categories.Popular)

	// Import, export and snapshots
	protected.POST("/import", h.Transfer.Import)
	protected.GET("/import/template", h.Transfer.Template)
	protected.GET("/analysis", h.Transfer.Analysis)
	protected.GET("/export/products.csv", h.Transfer.ExportProductsCSV)
	protected.GET("/export/bundles.csv", h.Transfer.ExportBundlesCSV)
	protected.GET("/export/workbook.xlsx", h.Transfer.ExportWorkbook)
	protected.GET("/export/price-list.pdf", h.Transfer.ExportPriceList)
	protected.POST("/snapshots", h.Transfer.CreateSnapshot)
	protected.GET("/snapshots/latest", h.Transfer.LatestSnapshot)
}
