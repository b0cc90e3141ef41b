package controller

import (
	"log/slog"
	"net/http"

	"github.com/Super-Badmen-Viper/SongRelay/domain"
	"github.com/gin-gonic/gin"
	"github.com/mdobak/go-xerrors"
)

const msgFetchSongs = "Failed to fetch songs"

type SongController struct {
	SongUsecase domain.SongUsecase
	Logger      *slog.Logger
}

func NewSongController(uc domain.SongUsecase, logger *slog.Logger) *SongController {
	return &SongController{SongUsecase: uc, Logger: logger}
}

func (c *SongController) GetSongs(ctx *gin.Context) {
	songs, err := c.SongUsecase.List(ctx.Request.Context())
	if err != nil {
		c.Logger.ErrorContext(ctx.Request.Context(), "list songs", slog.Any("error", xerrors.New(err)))
		ErrorResponse(ctx, http.StatusInternalServerError, msgFetchSongs)
		return
	}
	if songs == nil {
		songs = []*domain.Song{}
	}

	ctx.JSON(http.StatusOK, songs)
}
