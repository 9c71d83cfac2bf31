package middleware

import (
	"log/slog"
	"slices"

	"gin-auction-service/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always exposes Retry-After so browsers can honour 503 backoff
// from bid placement, and lets the event stream upgrade to websocket.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	expose := cfg.ExposeHeaders
	if !slices.Contains(expose, "Retry-After") {
		expose = append(slices.Clone(expose), "Retry-After")
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		AllowWebSockets:  true,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "expose_headers", expose)
	return cors.New(corsCfg)
}
