package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/karadarhythm/health-api/internal/middleware"
	"github.com/karadarhythm/health-api/internal/model"
)

// Handler registers a route subtree.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// Config carries everything the router assembly needs.
type Config struct {
	TimeoutSeconds    int
	RateLimitRPS      float64
	RateLimitBurst    int
	StaticCacheMaxAge int

	// ReadyCheck reports whether the storage backend is reachable;
	// nil means always ready.
	ReadyCheck func() error
}

type Router struct {
	engine  *gin.Engine
	metrics *routerMetrics
	config  Config
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
}

// New assembles the engine with the full middleware chain. Handlers
// register themselves afterwards via Register / RegisterCached.
func New(config Config) *Router {
	gin.SetMode(gin.ReleaseMode)
	registerValidations()

	if config.TimeoutSeconds == 0 {
		config.TimeoutSeconds = 30
	}
	if config.StaticCacheMaxAge == 0 {
		config.StaticCacheMaxAge = 3600
	}

	r := &Router{
		engine:  gin.New(),
		metrics: initRouterMetrics(),
		config:  config,
	}

	r.engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
		middleware.Timeout(time.Duration(config.TimeoutSeconds)*time.Second),
		middleware.CORS(),
	)
	if config.RateLimitRPS > 0 {
		r.engine.Use(middleware.RateLimit(config.RateLimitRPS, config.RateLimitBurst))
	}

	r.setupHealth()
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// API returns the /api/v1 group handlers register under.
func (r *Router) API() *gin.RouterGroup {
	return r.engine.Group("/api/v1")
}

// Register mounts handlers under /api/v1.
func (r *Router) Register(handlers ...Handler) {
	api := r.API()
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}
}

// RegisterCached mounts handlers for static catalog data with
// cache-control headers.
func (r *Router) RegisterCached(handlers ...Handler) {
	api := r.API()
	api.Use(middleware.StaticCache(r.config.StaticCacheMaxAge))
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) setupHealth() {
	health := r.engine.Group("/health")
	{
		health.GET("/live", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		health.GET("/ready", func(c *gin.Context) {
			if r.config.ReadyCheck != nil {
				if err := r.config.ReadyCheck(); err != nil {
					c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
					return
				}
			}
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}
}

// registerValidations installs the dateonly binding rule used by the
// request models.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(model.DateFormat, fl.Field().String())
		return err == nil
	})
}

func initRouterMetrics() *routerMetrics {
	return &routerMetrics{
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "health_api_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "health_api_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}
