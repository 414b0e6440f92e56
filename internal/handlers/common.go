package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studioboard/internal/repo"
)

// respondErr maps service errors onto the HTTP surface: 404 for unknown
// ids, 503 when the durable store is down and no fallback applied
// (production writes), 500 for anything else. Binding failures are
// handled at the call site as 400s.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, repo.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
