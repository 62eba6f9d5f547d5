package handler

import "github.com/gin-gonic/gin"

// Public paths. Keep a single source of truth to avoid drift between
// registration, the 404 payload and tests.
const (
	RootPath      = "/"
	CountriesPath = "/countries"
	OpenAPIPath   = "/openapi.yaml"
	DocsPath      = "/docs"
)

// AvailableRoutes is advertised to clients that hit an unknown path.
var AvailableRoutes = []string{RootPath, CountriesPath, OpenAPIPath, DocsPath}

// readOnly mounts handlers for GET and HEAD on path and on its trailing-slash
// twin, so "/countries/" is served instead of redirected.
func readOnly(r gin.IRouter, path string, handlers ...gin.HandlerFunc) {
	paths := []string{path}
	if path != RootPath {
		paths = append(paths, path+"/")
	}
	for _, p := range paths {
		r.GET(p, handlers...)
		r.HEAD(p, handlers...)
	}
}
