package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gin-auction-service/internal/handler/api"
	"gin-auction-service/internal/handler/middleware"
	"gin-auction-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auctions *api.AuctionHandler
	Bids     *api.BidHandler
	Stream   *api.StreamHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := []gin.HandlerFunc{authMiddleware.RequireAuth()}

	apiGroup := engine.Group("/api")
	{
		auctions := apiGroup.Group("/auctions")
		addRoutes(auctions, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Auctions.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Auctions.Get},
			{Method: http.MethodGet, Path: "/:id/bids", Handler: h.Bids.List},
			{Method: http.MethodGet, Path: "/:id/events", Handler: h.Stream.Stream},

			{Method: http.MethodPost, Path: "", Handler: h.Auctions.Create, Mw: requireAuth},
			{Method: http.MethodPost, Path: "/:id/activate", Handler: h.Auctions.Activate, Mw: requireAuth},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Auctions.Cancel, Mw: requireAuth},
			{Method: http.MethodPost, Path: "/:id/bids", Handler: h.Bids.Place, Mw: requireAuth},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
