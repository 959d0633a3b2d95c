package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShaikM36/tds-virtual-ta/types"
)

// Recovery is the service boundary for unexpected failures: any panic in a
// handler surfaces to the caller as a generic 500. Callers never see a
// partial response or a stack trace.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Panic handling %s %s: %v", c.Request.Method, c.Request.URL.Path, r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{
					Detail: "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
