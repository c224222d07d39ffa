// Package routes assembles the gin engine.
package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/safar/freight-quotes/internal/api/handlers"
	"github.com/safar/freight-quotes/internal/api/middleware"
	"github.com/safar/freight-quotes/internal/config"
	"go.uber.org/zap"
)

const (
	PathQuotes       = "/quotes"
	PathOrders       = "/orders"
	PathEditRequests = "/edit-requests"
	PathDocuments    = "/documents"
)

type Handlers struct {
	Quotes    *handlers.QuoteHandler
	Edits     *handlers.EditHandler
	Documents *handlers.DocumentHandler
	Health    *handlers.HealthHandler
}

func New(cfg *config.Config, h Handlers, tokens middleware.TokenParser, logger *zap.Logger) *gin.Engine {
	if cfg.IsLocal() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))

	r.GET("/health", h.Health.Health)

	v1 := r.Group("/v1")
	v1.GET("/statuses", h.Quotes.Statuses)

	authed := v1.Group("", middleware.Auth(tokens))
	addQuoteRoutes(authed, h.Quotes, h.Edits, h.Documents)
	addEditRequestRoutes(authed, h.Edits)
	addDocumentRoutes(authed, h.Documents)

	return r
}

func addQuoteRoutes(rg *gin.RouterGroup, quotes *handlers.QuoteHandler, edits *handlers.EditHandler, docs *handlers.DocumentHandler) {
	q := rg.Group(PathQuotes)
	{
		q.POST("", quotes.CreateQuote)
		q.GET("", quotes.ListQuotes)
		q.GET("/:id", quotes.GetQuote)
		q.PATCH("/:id", edits.EditQuote)
		q.POST("/:id/duplicate", quotes.Duplicate)
		q.POST("/:id/reverse", quotes.Reverse)
		q.PATCH("/:id/status", quotes.SetStatus)
		q.POST("/:id/order", quotes.ConvertToOrder)
		q.POST("/:id/archive", quotes.Archive)
		q.POST("/:id/reject", quotes.Reject)
		q.POST("/:id/cancel", quotes.Cancel)
		q.GET("/:id/history", edits.ListHistory)
		q.GET("/:id/documents", docs.List)
		q.POST("/:id/documents", docs.Upload)
	}

	rg.GET(PathOrders, quotes.ListOrders)
}

func addEditRequestRoutes(rg *gin.RouterGroup, edits *handlers.EditHandler) {
	er := rg.Group(PathEditRequests)
	{
		er.GET("", edits.ListRequests)
		er.POST("/:id/approve", edits.Approve)
		er.POST("/:id/reject", edits.Reject)
	}
}

func addDocumentRoutes(rg *gin.RouterGroup, docs *handlers.DocumentHandler) {
	d := rg.Group(PathDocuments)
	{
		d.GET("/:id", docs.Download)
		d.DELETE("/:id", docs.Delete)
	}
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Authorization", "Content-Type", middleware.HeaderXRequestID},
		ExposeHeaders: []string{middleware.HeaderXRequestID},
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	return c
}
