package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler answers the root route with static status info.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

func (h *HealthHandler) Register(r gin.IRouter) {
	readOnly(r, RootPath, h.Root)
}

// Root reports liveness plus hints on where to go next.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Country List API is running",
		"endpoints": gin.H{
			"countries":     CountriesPath + "?offset=0&limit=10",
			"documentation": OpenAPIPath,
			"docs":          DocsPath,
		},
	})
}
