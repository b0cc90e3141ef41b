package controller

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse writes the static error payload shared by every endpoint.
// Callers never pass error details; they stay in the logs.
func ErrorResponse(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, gin.H{"error": message})
}
