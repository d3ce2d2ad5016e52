// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "security": [{"BearerAuth": []}],
    "paths": {
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Create an account", "security": [], "responses": {"201": {"description": "Created"}, "409": {"description": "Email already registered"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Start a 24h session", "security": [], "responses": {"200": {"description": "Session token"}, "401": {"description": "Invalid credentials"}}}},
        "/auth/logout": {"post": {"tags": ["auth"], "summary": "Revoke the current token", "responses": {"204": {"description": "Revoked"}}}},
        "/me": {"get": {"tags": ["auth"], "summary": "Current user", "responses": {"200": {"description": "User"}}}},
        "/products": {
            "get": {"tags": ["products"], "summary": "List products, filtered by q and category", "responses": {"200": {"description": "Products"}}},
            "post": {"tags": ["products"], "summary": "Add a product; a blank category is detected", "responses": {"201": {"description": "Created"}}}
        },
        "/products/reset": {"post": {"tags": ["products"], "summary": "Restore the sample catalogue (confirm=true)", "responses": {"200": {"description": "Products"}}}},
        "/products/{id}": {
            "get": {"tags": ["products"], "summary": "Get a product", "responses": {"200": {"description": "Product"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["products"], "summary": "Edit product fields", "responses": {"200": {"description": "Product"}}},
            "delete": {"tags": ["products"], "summary": "Delete a product", "responses": {"204": {"description": "Deleted"}}}
        },
        "/products/{id}/duplicate": {"post": {"tags": ["products"], "summary": "Copy a product", "responses": {"201": {"description": "Copy"}}}},
        "/products/{id}/psychological-price": {"post": {"tags": ["strategies"], "summary": "Apply the charm price to one product", "responses": {"200": {"description": "Product"}}}},
        "/dashboard": {"get": {"tags": ["pricing"], "summary": "Portfolio metrics, category stats and margin distribution", "responses": {"200": {"description": "Dashboard"}}}},
        "/config": {
            "get": {"tags": ["pricing"], "summary": "Pricing configuration", "responses": {"200": {"description": "Config"}}},
            "put": {"tags": ["pricing"], "summary": "Replace the pricing configuration", "responses": {"200": {"description": "Config"}, "422": {"description": "Invalid configuration"}}}
        },
        "/pricing/calculate": {"post": {"tags": ["pricing"], "summary": "Price a cost", "responses": {"200": {"description": "Calculation"}}}},
        "/pricing/apply-all": {"post": {"tags": ["pricing"], "summary": "Overwrite every selling price (confirm=true)", "responses": {"200": {"description": "Updated count"}}}},
        "/pricing/recalculate": {"post": {"tags": ["pricing"], "summary": "Fill missing selling prices", "responses": {"200": {"description": "Products"}}}},
        "/pricing/psychological": {"post": {"tags": ["strategies"], "summary": "Apply charm prices where they differ by more than 10", "responses": {"200": {"description": "Updated count"}}}},
        "/strategies/recommendations": {"get": {"tags": ["strategies"], "summary": "Rule-based recommendations", "responses": {"200": {"description": "Recommendations"}}}},
        "/strategies/dynamic-price": {"post": {"tags": ["strategies"], "summary": "Season, demand and competition adjustment", "responses": {"200": {"description": "Price"}}}},
        "/strategies/volume-discount": {"post": {"tags": ["strategies"], "summary": "Quantity discount", "responses": {"200": {"description": "Price"}}}},
        "/strategies/loyalty-discount": {"post": {"tags": ["strategies"], "summary": "Loyalty tier discount", "responses": {"200": {"description": "Price"}}}},
        "/bundles": {
            "get": {"tags": ["bundles"], "summary": "Saved bundles", "responses": {"200": {"description": "Bundles"}}},
            "post": {"tags": ["bundles"], "summary": "Create a bundle from product ids", "responses": {"201": {"description": "Bundle"}}}
        },
        "/bundles/suggestions": {"get": {"tags": ["bundles"], "summary": "Generated bundle suggestions", "responses": {"200": {"description": "Suggestions"}}}},
        "/bundles/from-suggestion": {"post": {"tags": ["bundles"], "summary": "Save the suggestion for a category", "responses": {"201": {"description": "Bundle"}}}},
        "/bundles/{id}": {
            "put": {"tags": ["bundles"], "summary": "Edit a bundle", "responses": {"200": {"description": "Bundle"}}},
            "delete": {"tags": ["bundles"], "summary": "Delete a bundle", "responses": {"204": {"description": "Deleted"}}}
        },
        "/bundles/{id}/duplicate": {"post": {"tags": ["bundles"], "summary": "Copy a bundle", "responses": {"201": {"description": "Copy"}}}},
        "/categories/detect": {"get": {"tags": ["categories"], "summary": "Detect a category from a product name", "responses": {"200": {"description": "Category"}}}},
        "/categories/suggestions": {"get": {"tags": ["categories"], "summary": "Taxonomy entries matching q", "responses": {"200": {"description": "Categories"}}}},
        "/categories/popular": {"get": {"tags": ["categories"], "summary": "Quick-pick categories", "responses": {"200": {"description": "Categories"}}}},
        "/import": {"post": {"tags": ["transfer"], "summary": "Import a CSV or XLSX file (mode=append|replace)", "consumes": ["multipart/form-data"], "responses": {"200": {"description": "Processing result"}}}},
        "/import/template": {"get": {"tags": ["transfer"], "summary": "Sample CSV", "responses": {"200": {"description": "CSV"}}}},
        "/analysis": {"get": {"tags": ["transfer"], "summary": "Catalogue analysis", "responses": {"200": {"description": "Report"}}}},
        "/export/products.csv": {"get": {"tags": ["transfer"], "summary": "Products CSV", "responses": {"200": {"description": "CSV"}}}},
        "/export/bundles.csv": {"get": {"tags": ["transfer"], "summary": "Bundles CSV", "responses": {"200": {"description": "CSV"}}}},
        "/export/workbook.xlsx": {"get": {"tags": ["transfer"], "summary": "Multi-sheet workbook", "responses": {"200": {"description": "XLSX"}}}},
        "/export/price-list.pdf": {"get": {"tags": ["transfer"], "summary": "Printable price list", "responses": {"200": {"description": "PDF"}}}},
        "/snapshots": {"post": {"tags": ["transfer"], "summary": "Upload the current workbook to object storage", "responses": {"201": {"description": "Object name"}, "503": {"description": "Storage not configured"}}}},
        "/snapshots/latest": {"get": {"tags": ["transfer"], "summary": "Presigned URL of the latest snapshot", "responses": {"200": {"description": "URL"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "TrustCart Pricing API",
	Description:      "Product pricing, bundles and catalogue import/export for small online stores.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
