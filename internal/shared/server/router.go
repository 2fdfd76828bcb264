package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-analytics/internal/analyses"
	"resume-analytics/internal/resumes"
	"resume-analytics/internal/shared/auth"
	"resume-analytics/internal/shared/config"
	"resume-analytics/internal/shared/metrics"
	"resume-analytics/internal/shared/server/middleware"
	"resume-analytics/internal/shared/server/respond"
	"resume-analytics/internal/users"
)

// RouterDeps groups handlers and settings needed to build the router.
type RouterDeps struct {
	Config          config.Config
	Tokens          *auth.TokenMaker
	UserHandler     *users.Handler
	ResumeHandler   *resumes.Handler
	AnalysisHandler *analyses.Handler
	// Limiter is shared across requests; nil creates a fresh one.
	Limiter *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"status": "healthy"})
	})

	limit := middleware.RateLimit(middleware.RateLimitConfig{
		Rules:    rateLimitRules(deps.Config),
		GroupFor: middleware.GroupByRoute(scoringRoutes),
		Limiter:  deps.Limiter,
	})

	public := api.Group("")
	public.Use(limit)
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterPublicRoutes(public)
	}

	protected := api.Group("")
	protected.Use(middleware.Auth(deps.Tokens), limit)
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(protected)
	}
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(protected)
	}
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(protected)
	}

	return r
}

// scoringRoutes run the scoring engine or render documents and share a
// tighter bucket than the rest of the API.
var scoringRoutes = map[string]string{
	"POST /api/v1/analyze":               middleware.GroupScoring,
	"POST /api/v1/compare":               middleware.GroupScoring,
	"POST /api/v1/compare/report":        middleware.GroupScoring,
	"POST /api/v1/match-job-description": middleware.GroupScoring,
	"GET /api/v1/report/:id":             middleware.GroupScoring,
}

func rateLimitRules(cfg config.Config) map[string]middleware.RateLimitRule {
	return map[string]middleware.RateLimitRule{
		middleware.GroupDefault: {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
		middleware.GroupScoring: {Rate: cfg.RateLimitRPS / 2, Burst: max(cfg.RateLimitBurst/2, 1)},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
