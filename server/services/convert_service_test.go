package services

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bahadricoz/Shopify-r-n-converter/internal/config"
	apperrors "github.com/bahadricoz/Shopify-r-n-converter/server/errors"
)

func newTestService(t *testing.T) *ConvertService {
	t.Helper()
	return NewConvertService(&config.Config{
		Port:            "8080",
		UploadDir:       t.TempDir(),
		MaxUploadSizeMB: 10,
		ResultTTL:       time.Minute,
		PreviewRowsMax:  100,
	})
}

const sampleCSV = `Handle,Title,Option1 Name,Option1 Value,Variant SKU,Variant Price
tee,Tee,Size,S,TS-S,199.90
,,,M,TS-M,199.90
mug,Mug,Title,Default Title,MUG-1,59.90
`

func TestConvertUpload(t *testing.T) {
	service := newTestService(t)

	result, err := service.ConvertUpload("export.csv", strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, "export.csv", result.SourceName)
	assert.Equal(t, 3, result.InputRows)
	assert.Equal(t, 3, result.OutputRows) // 2 variants + 1 simple
	assert.NotEmpty(t, result.ID)

	fetched, err := service.GetResult(result.ID)
	require.NoError(t, err)
	assert.Same(t, result, fetched)
}

func TestConvertUpload_UnsupportedExtension(t *testing.T) {
	service := newTestService(t)

	_, err := service.ConvertUpload("export.pdf", strings.NewReader("x"))
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnsupportedMediaType, appErr.StatusCode())
}

func TestConvertUpload_MissingHandleColumn(t *testing.T) {
	service := newTestService(t)

	_, err := service.ConvertUpload("export.csv", strings.NewReader("Title\nShirt\n"))
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode())
	assert.Contains(t, appErr.UserMessage(), "Handle")
}

func TestGetResult_Unknown(t *testing.T) {
	service := newTestService(t)

	_, err := service.GetResult("no-such-id")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode())
}

func TestGetResult_Expired(t *testing.T) {
	service := newTestService(t)

	result, err := service.ConvertUpload("export.csv", strings.NewReader(sampleCSV))
	require.NoError(t, err)

	// age the result past the TTL
	service.mu.Lock()
	service.results[result.ID].CreatedAt = time.Now().Add(-2 * time.Minute)
	service.mu.Unlock()

	_, err = service.GetResult(result.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode())
	assert.Equal(t, 0, service.ResultCount())
}

func TestDownloadName(t *testing.T) {
	result := &ConversionResult{SourceName: "winter catalog.xlsx"}
	assert.Equal(t, "ikas_donusum_winter catalog.csv", result.DownloadName("csv"))
	assert.Equal(t, "ikas_donusum_winter catalog.xlsx", result.DownloadName("xlsx"))

	result = &ConversionResult{SourceName: ".csv"}
	assert.Equal(t, "ikas_donusum_shopify_export.csv", result.DownloadName("csv"))
}
