package handlers

import (
	"tempconv/internal/logger"
	"tempconv/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services    *service.Service
	log         *logger.Logger
	requireAuth bool
}

// NewHandler constructs a new HTTP handler with dependencies. When
// requireAuth is set, /api/v1 needs a bearer token.
func NewHandler(services *service.Service, log *logger.Logger, requireAuth bool) *Handler {
	return &Handler{services: services, log: log, requireAuth: requireAuth}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	// Snapshot stream (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	if h.requireAuth {
		api.Use(h.userIdMiddleware)
	}
	{
		api.GET("/scales", h.listScales)
		h.registerConvertRoutes(api)
		h.registerHistoryRoutes(api)
		api.GET("/notifications", h.listNotifications)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerConvertRoutes(api *gin.RouterGroup) {
	convert := api.Group("/convert")
	{
		// Body example: {"value":"36.6","from":"celsius","to":"fahrenheit"}
		convert.POST("", h.convert)
		convert.POST("/swap", h.swap)
		convert.GET("/state", h.getState)
	}
}

func (h *Handler) registerHistoryRoutes(api *gin.RouterGroup) {
	hist := api.Group("/history")
	{
		hist.GET("", h.getHistory)
		hist.DELETE("", h.clearHistory)
		hist.POST("/edit/cancel", h.cancelEdit)
		hist.POST("/:id/edit", h.startEdit)
		hist.PUT("/:id", h.saveEdit)
		hist.DELETE("/:id", h.deleteEntry)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	api.GET("/logs", h.getLogs)
}
