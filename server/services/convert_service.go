package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bahadricoz/Shopify-r-n-converter/converter"
	"github.com/bahadricoz/Shopify-r-n-converter/internal/config"
	apperrors "github.com/bahadricoz/Shopify-r-n-converter/server/errors"
)

// ConversionResult is one finished conversion, kept in memory until it
// expires so the client can download both serialized forms.
type ConversionResult struct {
	ID         string
	SourceName string
	Table      *converter.Table
	InputRows  int
	OutputRows int
	CreatedAt  time.Time
}

// DownloadName builds the client-facing file name for a download in the
// given format.
func (r *ConversionResult) DownloadName(ext string) string {
	base := filepath.Base(r.SourceName)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." {
		stem = "shopify_export"
	}
	return "ikas_donusum_" + stem + "." + ext
}

// ConvertService runs Shopify → ikas conversions and holds finished
// results for download. Results are process-local and expire after the
// configured TTL; nothing is persisted.
type ConvertService struct {
	cfg *config.Config

	mu      sync.Mutex
	results map[string]*ConversionResult
}

// NewConvertService creates a new conversion service.
func NewConvertService(cfg *config.Config) *ConvertService {
	return &ConvertService{
		cfg:     cfg,
		results: make(map[string]*ConversionResult),
	}
}

// ConvertUpload writes the uploaded bytes to a temporary file keeping the
// original extension, loads it and runs the conversion. The temporary file
// is removed afterwards.
func (s *ConvertService) ConvertUpload(filename string, data io.Reader) (*ConversionResult, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv", ".xlsx", ".xls":
	default:
		return nil, apperrors.NewUnsupportedMediaError(
			fmt.Sprintf("unsupported file extension %q, please provide CSV or XLSX", ext), nil)
	}

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return nil, apperrors.NewInternalError("failed to create upload directory", err)
	}

	tmp, err := os.CreateTemp(s.cfg.UploadDir, "shopify-*"+ext)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create temporary file", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, data); err != nil {
		tmp.Close()
		return nil, apperrors.NewInternalError("failed to save uploaded file", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, apperrors.NewInternalError("failed to save uploaded file", err)
	}

	src, err := converter.LoadFile(tmpPath)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error(), err)
	}

	out, err := converter.Convert(src)
	if err != nil {
		if errors.Is(err, converter.ErrHandleColumnMissing) {
			return nil, apperrors.NewValidationError(err.Error(), err)
		}
		return nil, apperrors.NewInternalError("conversion failed", err)
	}

	result := &ConversionResult{
		ID:         uuid.New().String(),
		SourceName: filename,
		Table:      out,
		InputRows:  src.RowCount(),
		OutputRows: out.RowCount(),
		CreatedAt:  time.Now(),
	}

	s.mu.Lock()
	s.evictExpiredLocked()
	s.results[result.ID] = result
	s.mu.Unlock()

	return result, nil
}

// GetResult returns a finished conversion by ID, or a not-found error when
// it never existed or has expired.
func (s *ConvertService) GetResult(id string) (*ConversionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked()
	result, ok := s.results[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("conversion result not found or expired", nil)
	}
	return result, nil
}

// ResultCount returns the number of results currently held.
func (s *ConvertService) ResultCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}

func (s *ConvertService) evictExpiredLocked() {
	cutoff := time.Now().Add(-s.cfg.ResultTTL)
	for id, result := range s.results {
		if result.CreatedAt.Before(cutoff) {
			delete(s.results, id)
		}
	}
}
