package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/school-helper-backend/internal/config"
	"github.com/stemsi/school-helper-backend/internal/handler"
	"github.com/stemsi/school-helper-backend/internal/middleware"
	"github.com/stemsi/school-helper-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Student    *handler.StudentHandler
	Marksheet  *handler.MarksheetHandler
	AdmitCard  *handler.AdmitCardHandler
	Attendance *handler.AttendanceHandler
	System     *handler.SystemHandler
}

// Options carries the optional cross-cutting pieces.
type Options struct {
	// Limiter guards write endpoints. Nil disables rate limiting.
	Limiter middleware.Limiter
	// Metrics exposes /metrics. Nil disables it.
	Metrics *middleware.Metrics
}

// SetupRouter configures global middleware and the route table.
func SetupRouter(handlers *Handlers, cfg *config.Config, opts Options, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so browser clients work without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request ID first so recovery and logging can reference it.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().
			Interface("panic", recovered).
			Str("request_id", response.RequestID(c)).
			Msg("Handler panicked")
		response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
	}))

	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
		router.GET("/metrics", opts.Metrics.Handler())
	}

	router.Use(middleware.BrotliWithConfig(middleware.BrotliConfig{
		Skipper: func(c *gin.Context) bool { return c.Request.URL.Path == "/metrics" },
	}))

	// ─── System ────────────────────────────────────────────────────────
	router.GET("/", handlers.System.Root)
	router.GET("/test", middleware.NoStore(), handlers.System.Diagnose)

	// ─── Records ───────────────────────────────────────────────────────
	// Writes are rate limited per client IP; reads are not.
	limit := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if opts.Limiter == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{middleware.RateLimit(opts.Limiter, log), h}
	}

	records := router.Group("/", middleware.NoStore())
	{
		records.POST("/students", limit(handlers.Student.Create)...)
		records.GET("/students", handlers.Student.List)
		records.GET("/students/:id", handlers.Student.GetByID)

		records.POST("/marksheets", limit(handlers.Marksheet.Create)...)
		records.GET("/marksheets", handlers.Marksheet.List)

		records.POST("/admit-cards", limit(handlers.AdmitCard.Create)...)
		records.GET("/admit-cards", handlers.AdmitCard.List)

		records.POST("/attendance", limit(handlers.Attendance.Mark)...)
		records.GET("/attendance", handlers.Attendance.List)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	return router
}
