package controller

import (
	"log/slog"
	"net/http"

	"github.com/Super-Badmen-Viper/SongRelay/domain"
	"github.com/gin-gonic/gin"
)

type HealthController struct {
	SongUsecase    domain.SongUsecase
	PollingEnabled bool
	Logger         *slog.Logger
}

func NewHealthController(uc domain.SongUsecase, pollingEnabled bool, logger *slog.Logger) *HealthController {
	return &HealthController{SongUsecase: uc, PollingEnabled: pollingEnabled, Logger: logger}
}

func (c *HealthController) GetHealth(ctx *gin.Context) {
	count, err := c.SongUsecase.Count(ctx.Request.Context())
	if err != nil {
		c.Logger.ErrorContext(ctx.Request.Context(), "health check", slog.Any("error", err))
		ErrorResponse(ctx, http.StatusInternalServerError, "Health check failed")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"songs":   count,
		"polling": c.PollingEnabled,
	})
}
