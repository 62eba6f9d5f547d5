package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/country-list-service/internal/config"
	"github.com/maxviazov/country-list-service/internal/service"
	"github.com/maxviazov/country-list-service/pkg/response"
	"github.com/rs/zerolog"
)

// NewRouter builds a gin engine with the common middleware (access log,
// panic recovery, CORS) and every public route mounted.
func NewRouter(svc service.CountryService, logger zerolog.Logger, corsCfg config.CORSConfig) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.Use(requestLogger(logger))
	r.Use(recovery(logger))
	r.Use(corsMiddleware(corsCfg))
	Register(r, svc)
	return r
}

// Register mounts all public routes on the given engine, plus the JSON 404
// fallback for everything else.
func Register(r *gin.Engine, svc service.CountryService) {
	NewHealthHandler().Register(r)
	NewCountryHandler(svc).Register(r)
	RegisterDocs(r)

	r.NoRoute(func(c *gin.Context) {
		response.WriteError(c, &response.RouteNotFoundError{
			Path:            c.Request.URL.Path,
			AvailableRoutes: AvailableRoutes,
		})
	})
}
