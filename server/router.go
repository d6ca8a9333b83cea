package server

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/bahadricoz/Shopify-r-n-converter/internal/config"
	"github.com/bahadricoz/Shopify-r-n-converter/server/handlers"
	"github.com/bahadricoz/Shopify-r-n-converter/server/middleware"
	"github.com/bahadricoz/Shopify-r-n-converter/server/services"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// NewRouter assembles the gin engine: middleware chain, templates and
// routes.
func NewRouter(cfg *config.Config, service *services.ConvertService) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadSizeBytes()

	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinLoggerMiddleware())
	router.Use(middleware.GinRecoveryMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())

	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.tmpl")))

	h := handlers.NewConvertHandler(cfg, service)

	router.GET("/", h.HandleIndex)
	router.GET("/health", h.HandleHealth)

	api := router.Group("/api")
	{
		api.POST("/convert", h.HandleConvert)
		api.GET("/convert/:id/csv", h.HandleDownloadCSV)
		api.GET("/convert/:id/xlsx", h.HandleDownloadXLSX)
	}

	return router
}
