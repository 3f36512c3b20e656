// internal/handlers/health.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is reported by the health endpoint. Overridden at build time with
// -ldflags "-X github.com/javajoker/jobtracker/internal/handlers.Version=...".
var Version = "dev"

// GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": Version,
	})
}
