package http

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	AllowedOrigins []string
	RequestTimeout time.Duration

	// RateLimiter is optional; the caller owns its lifecycle.
	RateLimiter *RateLimiter
}

// NewRouter wires the middleware chain and registers every booking route.
func NewRouter(h *AppointmentsHandler, log *slog.Logger, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(AccessLog(log))
	r.Use(RequestTimeout(cfg.RequestTimeout))
	if cfg.RateLimiter != nil {
		r.Use(RateLimit(cfg.RateLimiter))
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/", h.Home)
	r.POST("/add_appointments", h.Create)
	r.PUT("/update_appointments/:id", h.Update)
	r.POST("/show_appointments", h.List)
	r.GET("/appointment_details/:id", h.Get)
	r.DELETE("/delete_appointments/:id", h.Delete)

	return r
}
