package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/unitrack/unimatch-api/internal/database"
	"github.com/unitrack/unimatch-api/internal/logger"
	"github.com/unitrack/unimatch-api/internal/services"
	"github.com/unitrack/unimatch-api/pkg/config"
)

// Handlers groups the HTTP handlers mounted by RegisterRoutes
type Handlers struct {
	Suggest *SuggestHandler
	Health  *HealthHandler
}

// SetupRoutes wires services and handlers and configures all API routes
func SetupRoutes(r *gin.Engine, db *database.DB, cfg *config.Config, log logger.Logger) error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database connection is required")
	}
	if cfg == nil {
		return fmt.Errorf("configuration is required")
	}
	if log == nil {
		log = logger.NewNop()
	}

	svc := services.NewServices(db.DB, cfg, log)

	RegisterRoutes(r, &Handlers{
		Suggest: NewSuggestHandler(svc.Match, log),
		Health:  NewHealthHandler(db, log),
	})

	return nil
}

// RegisterRoutes mounts the handlers on the router
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.GET("/health", h.Health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	ai := r.Group("/api/ai")
	{
		ai.POST("/suggest", h.Suggest.Suggest)
	}
}
