// Package httpapi wires the HTTP transport (Gin) to the quote service,
// middleware, route handlers, and the embedded frontend. It centralizes
// cross-cutting concerns: tracing, correlation IDs, logging, panic
// recovery, body limits, compression, metrics, rate limiting, the origin
// allow-list, and security headers.
package httpapi

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/quotably/go-quote-backend/docs" // swagger spec registration
	"github.com/quotably/go-quote-backend/internal/config"
	"github.com/quotably/go-quote-backend/internal/http/handlers"
	"github.com/quotably/go-quote-backend/internal/http/middleware"
	"github.com/quotably/go-quote-backend/internal/services"
	"github.com/quotably/go-quote-backend/internal/web"
)

// RegisterRoutes attaches all middleware and endpoints to the given Gin
// engine.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything (when enabled)
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after the logger
//  5. Body size limiter
//  6. Gzip response compression
//  7. Metrics
//  8. Rate limiter (when configured)
//  9. Origin allow-list, then security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) error {
	handlers.RegisterValidations()

	// 1) Trace all HTTP requests
	if cfg.OTEL.Enabled {
		r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	}

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured access logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500
	r.Use(middleware.Recovery())

	// 5) Global body size limit
	r.Use(limitBody(cfg.MaxBodyBytes))

	// 6) Response compression
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus request metrics
	r.Use(middleware.Metrics())

	// 8) Token-bucket rate limiter per client IP
	if cfg.RateRPS > 0 {
		rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst)
		r.Use(rl.Handler())
	}

	// 9) Origin allow-list (403 on disallowed Origin) and security headers
	r.Use(middleware.OriginAllowlist(cfg.CORS.AllowedOrigins))
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS: cfg.Security.EnableHSTS,
		HSTSMaxAge: cfg.Security.HSTSMaxAge,
	}))

	// Routes registered from here on run behind the complete middleware
	// chain, /metrics included.
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Fallback
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, "Not Found")
	})

	// Liveness check, kept at /api for client compatibility.
	r.GET("/api", handlers.Health)

	// Dependency injection: handlers ← service ← db
	h := handlers.New(&services.QuoteService{DB: db})

	api := r.Group(cfg.APIBasePath) // e.g. "/api/v1"
	{
		api.GET("/quotes", h.ListQuotes)
		api.POST("/quotes", h.CreateQuote)
		api.GET("/quotes/:id", h.GetQuote)
		api.PUT("/quotes/:id", h.UpdateQuote)
		api.DELETE("/quotes/:id", h.DeleteQuote)
	}

	// Swagger UI and raw spec (opt-in)
	if cfg.SwaggerEnabled {
		r.GET("/api/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		r.GET("/api/docs.json", func(c *gin.Context) {
			doc, err := swag.ReadDoc()
			if err != nil {
				handlers.Fail(c, http.StatusInternalServerError,
					"Error while serving swagger documentation in json format")
				return
			}
			c.Data(http.StatusOK, "application/json", []byte(doc))
		})
	}

	// Embedded frontend: the three client routes get the SPA entry
	// document, everything else under / is a static asset.
	index, err := web.Index()
	if err != nil {
		return err
	}
	assets, err := web.Assets()
	if err != nil {
		return err
	}
	spa := func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	}
	r.GET("/", spa)
	r.GET("/quote/new", spa)
	r.GET("/quote/edit/:id", spa)
	fileServer := http.FileServer(http.FS(assets))
	r.GET("/styles.css", gin.WrapH(fileServer))
	r.GET("/scripts/*filepath", gin.WrapH(fileServer))

	return nil
}

// limitBody caps the request body size for all endpoints using
// http.MaxBytesReader; oversized bodies make downstream reads fail.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
