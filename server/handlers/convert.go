package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bahadricoz/Shopify-r-n-converter/converter"
	"github.com/bahadricoz/Shopify-r-n-converter/internal/config"
	apperrors "github.com/bahadricoz/Shopify-r-n-converter/server/errors"
	"github.com/bahadricoz/Shopify-r-n-converter/server/services"
)

// ConvertHandler handles upload, preview and download of conversions.
type ConvertHandler struct {
	cfg     *config.Config
	service *services.ConvertService
}

// NewConvertHandler creates a new conversion handler.
func NewConvertHandler(cfg *config.Config, service *services.ConvertService) *ConvertHandler {
	return &ConvertHandler{
		cfg:     cfg,
		service: service,
	}
}

// ConvertResponse is the preview returned after a successful conversion.
type ConvertResponse struct {
	ID               string     `json:"id"`
	SourceFile       string     `json:"source_file"`
	InputRows        int        `json:"input_rows"`
	OutputRows       int        `json:"output_rows"`
	Columns          []string   `json:"columns"`
	Preview          [][]string `json:"preview"`
	PreviewTruncated bool       `json:"preview_truncated"`
	CSVURL           string     `json:"csv_url"`
	XLSXURL          string     `json:"xlsx_url"`
}

// HandleIndex serves the upload page.
// GET /
func (h *ConvertHandler) HandleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"ExpectedColumns": converter.ShopifyColumns,
		"MaxUploadSizeMB": h.cfg.MaxUploadSizeMB,
	})
}

// HandleConvert accepts a Shopify export upload, converts it and returns a
// table preview plus download links for both serialized forms.
// POST /api/convert
func (h *ConvertHandler) HandleConvert(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		SendJSONError(c, http.StatusBadRequest, "failed to get file from form")
		return
	}
	defer file.Close()

	if header.Size > h.cfg.MaxUploadSizeBytes() {
		SendJSONError(c, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("file exceeds the %d MB upload limit", h.cfg.MaxUploadSizeMB))
		return
	}

	result, err := h.service.ConvertUpload(header.Filename, file)
	if err != nil {
		HandleAppError(c, err)
		return
	}

	previewRows := result.Table.RowCount()
	truncated := false
	if previewRows > h.cfg.PreviewRowsMax {
		previewRows = h.cfg.PreviewRowsMax
		truncated = true
	}
	preview := make([][]string, 0, previewRows)
	for i := 0; i < previewRows; i++ {
		preview = append(preview, result.Table.Row(i))
	}

	SendJSONResponse(c, http.StatusOK, ConvertResponse{
		ID:               result.ID,
		SourceFile:       result.SourceName,
		InputRows:        result.InputRows,
		OutputRows:       result.OutputRows,
		Columns:          result.Table.Headers(),
		Preview:          preview,
		PreviewTruncated: truncated,
		CSVURL:           "/api/convert/" + result.ID + "/csv",
		XLSXURL:          "/api/convert/" + result.ID + "/xlsx",
	})
}

// HandleDownloadCSV serves a finished conversion as UTF-8 CSV with BOM.
// GET /api/convert/:id/csv
func (h *ConvertHandler) HandleDownloadCSV(c *gin.Context) {
	result, err := h.service.GetResult(c.Param("id"))
	if err != nil {
		HandleAppError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := converter.WriteCSV(&buf, result.Table); err != nil {
		HandleAppError(c, apperrors.NewInternalError("failed to serialize CSV", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.DownloadName("csv")))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// HandleDownloadXLSX serves a finished conversion as an Excel workbook.
// GET /api/convert/:id/xlsx
func (h *ConvertHandler) HandleDownloadXLSX(c *gin.Context) {
	result, err := h.service.GetResult(c.Param("id"))
	if err != nil {
		HandleAppError(c, err)
		return
	}

	data, err := converter.WriteXLSXBuffer(result.Table)
	if err != nil {
		HandleAppError(c, apperrors.NewInternalError("failed to serialize Excel file", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.DownloadName("xlsx")))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// HandleHealth is the liveness probe.
// GET /health
func (h *ConvertHandler) HandleHealth(c *gin.Context) {
	SendJSONResponse(c, http.StatusOK, gin.H{
		"status":  "ok",
		"results": h.service.ResultCount(),
	})
}
