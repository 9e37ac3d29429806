package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "resumeforge/internal/auth"
	"resumeforge/internal/editor"
	"resumeforge/internal/export"
	"resumeforge/internal/jobs"
	"resumeforge/internal/resumes"
	"resumeforge/internal/shared/config"
	"resumeforge/internal/shared/metrics"
	"resumeforge/internal/shared/server/middleware"
	"resumeforge/internal/shared/server/respond"
	"resumeforge/internal/users"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config         config.Config
	ResumesHandler *resumes.Handler
	JobsHandler    *jobs.Handler
	EditorHandler  *editor.Handler
	ExportHandler  *export.Handler
	UsersHandler   *users.Handler
	GoogleAuth     *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(costlyRouteLimits()),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(api)
	}
	if deps.JobsHandler != nil {
		deps.JobsHandler.RegisterRoutes(api)
	}
	if deps.EditorHandler != nil {
		deps.EditorHandler.RegisterRoutes(api)
	}
	if deps.ExportHandler != nil {
		deps.ExportHandler.RegisterRoutes(api)
	}

	return r
}

// costlyRouteLimits throttles the endpoints that fan out to the suggestion
// provider or a headless browser. Everything else passes through unlimited.
func costlyRouteLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"suggest": {Rate: 0.5, Burst: 5},
			"export":  {Rate: 0.2, Burst: 3},
		},
		GroupFor: func(c *gin.Context) string {
			path := c.Request.URL.Path
			switch {
			case strings.Contains(path, "/suggest/"):
				return "suggest"
			case strings.HasSuffix(path, "/export"):
				return "export"
			default:
				return ""
			}
		},
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
