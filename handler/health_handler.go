package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ShaikM36/tds-virtual-ta/types"
)

type HealthHandler interface {
	HandleRoot(c *gin.Context)
	HandleHealth(c *gin.Context)
}

type healthHandler struct{}

func NewHealthHandler() HealthHandler {
	return &healthHandler{}
}

func (h *healthHandler) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, types.RootResponse{
		Message:   "TDS Virtual TA API is running",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// HandleHealth reports liveness only; it never checks downstream APIs.
func (h *healthHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
