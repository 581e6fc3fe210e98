// Package api wires the HTTP routes.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pdatalab/tripmatch-backend-go/internal/config"
	"github.com/pdatalab/tripmatch-backend-go/internal/handler"
	"github.com/pdatalab/tripmatch-backend-go/internal/middleware"
	"github.com/pdatalab/tripmatch-backend-go/internal/service"
	"github.com/pdatalab/tripmatch-backend-go/internal/store"
)

// SetupRouter builds the gin engine with all routes and middleware.
func SetupRouter(cfg *config.Config, log zerolog.Logger) *gin.Engine {
	st := store.New(cfg.MaxDatasets)

	datasets := service.NewDatasetService(st, cfg.Ingest, log)
	reconcile := service.NewReconcileService(st, log)
	audit := service.NewAuditService(st, log)
	fusion := service.NewFusionService(st, log)
	export := service.NewExportService(reconcile, audit, fusion)

	datasetHandler := handler.NewDatasetHandler(datasets)
	reconcileHandler := handler.NewReconcileHandler(reconcile)
	auditHandler := handler.NewAuditHandler(audit)
	fusionHandler := handler.NewFusionHandler(fusion)
	exportHandler := handler.NewExportHandler(export)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(log))

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateLimitWindow))
	api.Use(middleware.Auth(cfg.JWTSecret))
	{
		api.POST("/datasets", datasetHandler.Upload)
		api.GET("/datasets", datasetHandler.List)
		api.GET("/datasets/:id", datasetHandler.Get)
		api.DELETE("/datasets/:id", datasetHandler.Delete)

		api.POST("/datasets/:id/reconcile", reconcileHandler.Reconcile)
		api.POST("/datasets/:id/audit", auditHandler.Audit)
		api.POST("/datasets/:id/fusion", fusionHandler.Fusion)
		api.GET("/datasets/:id/export", exportHandler.Export)
	}

	return r
}
