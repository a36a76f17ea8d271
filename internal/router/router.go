package router

import (
	"github.com/gin-gonic/gin"

	"revos/internal/config"
	"revos/internal/handler"
	"revos/internal/middleware"
	"revos/internal/service"
)

// Handlers bundles every handler the router wires up.
type Handlers struct {
	Auth      *handler.AuthHandler
	Element   *handler.ElementHandler
	Parameter *handler.ParameterHandler
	Category  *handler.CategoryHandler
	ViewRange *handler.ViewRangeHandler
	Report    *handler.ReportHandler
	Command   *handler.CommandHandler
	Health    *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, authSvc service.AuthService, commandSvc service.CommandService, h Handlers) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/token", h.Auth.Token)

	// Protected routes - require valid JWT; every command is audited
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))
	protected.Use(middleware.Audit(commandSvc))

	// Element routes
	elements := protected.Group("/elements")
	elements.POST("/filter", h.Element.Filter)
	elements.POST("/color", h.Element.OverrideColor)
	elements.GET("/:id", h.Element.Get)
	elements.GET("/:id/parameters/:name", h.Parameter.Get)
	elements.POST("/:id/parameters/query", h.Parameter.GetMany)

	// Parameter writes
	protected.PUT("/parameters", h.Parameter.Set)
	protected.PUT("/parameters/batch", h.Parameter.SetBatch)

	// Category capabilities
	protected.GET("/categories", h.Category.List)
	protected.GET("/categories/:name", h.Category.Get)

	// View range and levels
	protected.POST("/viewrange/resolve", h.ViewRange.Resolve)
	protected.GET("/levels", h.ViewRange.Levels)

	// Reports
	protected.POST("/reports", h.Report.Generate)
	protected.DELETE("/reports/*key", h.Report.Delete)

	// Command audit log
	protected.GET("/commands", h.Command.List)

	return r
}
