package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS accepts requests from any origin; the relay has no access control.
func CORS() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Writer.Header()
		header.Set("Access-Control-Allow-Origin", "*")
		header.Set("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS")
		header.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Range")
		header.Set("Access-Control-Expose-Headers", "Content-Length, Content-Type, X-Request-ID")

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	}
}
