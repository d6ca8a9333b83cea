package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bahadricoz/Shopify-r-n-converter/internal/config"
	"github.com/bahadricoz/Shopify-r-n-converter/server/handlers"
	"github.com/bahadricoz/Shopify-r-n-converter/server/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:            "8080",
		UploadDir:       t.TempDir(),
		MaxUploadSizeMB: 10,
		ResultTTL:       time.Minute,
		PreviewRowsMax:  50,
	}
	return NewRouter(cfg, services.NewConvertService(cfg))
}

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/convert", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

const sampleCSV = `Handle,Title,Vendor,Option1 Name,Option1 Value,Variant SKU,Variant Price,Status
tee,Tee,Acme,Size,S,TS-S,199.90,active
,,,,M,TS-M,199.90,
mug,Mug,,Title,Default Title,MUG-1,59.90,active
`

func TestConvertEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "export.csv", sampleCSV))
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.ConvertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 3, resp.InputRows)
	assert.Equal(t, 3, resp.OutputRows)
	assert.Len(t, resp.Columns, 37)
	assert.Len(t, resp.Preview, 3)
	assert.False(t, resp.PreviewTruncated)
	assert.Equal(t, "/api/convert/"+resp.ID+"/csv", resp.CSVURL)

	// CSV download round-trip
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, resp.CSVURL, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "ikas_donusum_export.csv")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte{0xEF, 0xBB, 0xBF}))

	// XLSX download
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, resp.XLSXURL, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
}

func TestConvertEndpoint_MissingHandleColumn(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "export.csv", "Title\nShirt\n"))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Handle")
}

func TestConvertEndpoint_UnsupportedExtension(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "export.pdf", "nope"))

	require.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestConvertEndpoint_NoFile(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/convert", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownload_UnknownID(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/convert/nope/csv", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestIndexPage(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Shopify")
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
