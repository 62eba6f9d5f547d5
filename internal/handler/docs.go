package handler

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

// OpenAPI document describing the public routes, embedded at build time.
//
//go:embed openapi.yaml
var openAPISpec []byte

// Swagger UI page loaded from a CDN, pointed at OpenAPIPath.
//
//go:embed swagger.html
var swaggerHTML []byte

// RegisterDocs mounts documentation endpoints at the root:
//   - GET /openapi.yaml: raw OpenAPI document
//   - GET /docs: Swagger UI rendering of it
func RegisterDocs(r gin.IRouter) {
	readOnly(r, OpenAPIPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", openAPISpec)
	})
	readOnly(r, DocsPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", swaggerHTML)
	})
}
