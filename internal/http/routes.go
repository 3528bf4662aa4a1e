package http

import (
	"taskmanager/internal/config"
	"taskmanager/internal/http/handlers"
	"taskmanager/internal/http/middleware"
	"taskmanager/internal/store"
	"taskmanager/internal/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the task resource, health probes and the event
// stream onto the router.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, st *store.TaskStore, hub *ws.Hub, version string) {
	h := handlers.New(st, hub)
	healthHandler := handlers.NewHealthHandler(st, version)

	r.GET("/", h.Root)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	tasks := r.Group("/tasks")
	if cfg.APIRateLimit > 0 {
		tasks.Use(middleware.RateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	}
	tasks.GET("", h.ListTasks)
	tasks.POST("", h.CreateTask)
	tasks.PUT("/:id", h.UpdateTask)
	tasks.DELETE("/:id", h.DeleteTask)

	// Live task events
	r.GET("/ws", h.WS(cfg.AllowedOrigins))
}
