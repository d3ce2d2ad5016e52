package handlers

import (
	"fmt"
	"net/http"
	"time"

	"trustcart/internal/common"
	"trustcart/internal/models"
	"trustcart/internal/services"

	"github.com/labstack/echo/v4"
)

const csvContentType = "text/csv; charset=utf-8"

// TransferHandlers serves import, export, analysis and snapshot endpoints.
type TransferHandlers struct {
	transferService services.TransferService
	now             func() time.Time
}

func NewTransferHandlers(transferService services.TransferService) *TransferHandlers {
	return &TransferHandlers{transferService: transferService, now: time.Now}
}

// Import handles POST /import (multipart: file, mode=append|replace). The
// processing result is returned as data even when the file was rejected.
func (h *TransferHandlers) Import(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}

	mode := models.ImportMode(c.FormValue("mode"))
	switch mode {
	case "":
		mode = models.ImportModeAppend
	case models.ImportModeAppend, models.ImportModeReplace:
	default:
		return common.SendValidationError(c, "mode", "mode must be append or replace")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return common.SendValidationError(c, "file", "a file upload is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unable to read uploaded file")
	}
	defer file.Close()

	result, err := h.transferService.Import(c.Request().Context(), ws, fileHeader.Filename, file, mode)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// Template handles GET /import/template
func (h *TransferHandlers) Template(c echo.Context) error {
	return h.attachment(c, "trustcart-template.csv", csvContentType, h.transferService.Template())
}

// Analysis handles GET /analysis
func (h *TransferHandlers) Analysis(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	report, err := h.transferService.Analysis(c.Request().Context(), ws)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}

// ExportProductsCSV handles GET /export/products.csv
func (h *TransferHandlers) ExportProductsCSV(c echo.Context) error {
	return h.exportCSV(c, "products", true)
}

// ExportBundlesCSV handles GET /export/bundles.csv
func (h *TransferHandlers) ExportBundlesCSV(c echo.Context) error {
	return h.exportCSV(c, "bundles", false)
}

func (h *TransferHandlers) exportCSV(c echo.Context, name string, products bool) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	productsCSV, bundlesCSV, err := h.transferService.ExportCSV(c.Request().Context(), ws)
	if err != nil {
		return httpError(err)
	}
	data := bundlesCSV
	if products {
		data = productsCSV
	}
	return h.attachment(c, h.filename(name, "csv"), csvContentType, data)
}

// ExportWorkbook handles GET /export/workbook.xlsx
func (h *TransferHandlers) ExportWorkbook(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	data, err := h.transferService.ExportXLSX(c.Request().Context(), ws)
	if err != nil {
		return httpError(err)
	}
	return h.attachment(c, h.filename("pricing", "xlsx"), services.XLSXContentType, data)
}

// ExportPriceList handles GET /export/price-list.pdf
func (h *TransferHandlers) ExportPriceList(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	data, err := h.transferService.ExportPriceList(c.Request().Context(), ws)
	if err != nil {
		return httpError(err)
	}
	return h.attachment(c, h.filename("price-list", "pdf"), "application/pdf", data)
}

// CreateSnapshot handles POST /snapshots by uploading the current workbook.
func (h *TransferHandlers) CreateSnapshot(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	object, err := h.transferService.UploadSnapshot(c.Request().Context(), ws)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"object": object})
}

// LatestSnapshot handles GET /snapshots/latest with a short-lived download URL.
func (h *TransferHandlers) LatestSnapshot(c echo.Context) error {
	ws, err := workspaceID(c)
	if err != nil {
		return err
	}
	url, err := h.transferService.SnapshotURL(c.Request().Context(), ws)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}

func (h *TransferHandlers) filename(name, ext string) string {
	return fmt.Sprintf("trustcart-%s-%s.%s", name, h.now().Format("2006-01-02"), ext)
}

func (h *TransferHandlers) attachment(c echo.Context, filename, contentType string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, contentType, data)
}
