package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger stamps every request with an id and logs it once served.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Set("request_id", requestID)
		ctx.Header(RequestIDHeader, requestID)

		ctx.Next()

		attrs := []any{
			slog.String("request_id", requestID),
			slog.String("method", ctx.Request.Method),
			slog.String("route", ctx.FullPath()),
			slog.Int("status", ctx.Writer.Status()),
			slog.Int("bytes", ctx.Writer.Size()),
			slog.Duration("latency", time.Since(start)),
		}
		if ctx.Writer.Status() >= 500 {
			logger.Warn("request served", attrs...)
			return
		}
		logger.Info("request served", attrs...)
	}
}
