package controller

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/Super-Badmen-Viper/SongRelay/domain"
	"github.com/gin-gonic/gin"
	"github.com/h2non/filetype"
	"github.com/mdobak/go-xerrors"
)

const (
	msgAudioError     = "Audio error"
	msgThumbnailError = "Thumbnail error"

	// sniffLen covers the largest magic-number header filetype inspects.
	sniffLen           = 262
	defaultContentType = "application/octet-stream"
)

// ProxyController streams platform files to the caller. The bot token only
// appears in server-side requests; responses carry either the bytes or a
// static error payload.
type ProxyController struct {
	ProxyUsecase domain.ProxyUsecase
	Logger       *slog.Logger
}

func NewProxyController(uc domain.ProxyUsecase, logger *slog.Logger) *ProxyController {
	return &ProxyController{ProxyUsecase: uc, Logger: logger}
}

func (c *ProxyController) StreamAudio(ctx *gin.Context) {
	c.stream(ctx, ctx.Param("file_id"), msgAudioError)
}

func (c *ProxyController) StreamThumbnail(ctx *gin.Context) {
	c.stream(ctx, ctx.Param("thumb_id"), msgThumbnailError)
}

func (c *ProxyController) stream(ctx *gin.Context, fileID, errorMessage string) {
	reqCtx := ctx.Request.Context()

	file, err := c.ProxyUsecase.Open(reqCtx, fileID)
	if err != nil {
		c.Logger.WarnContext(reqCtx, "open platform file", slog.String("file_id", fileID), slog.Any("error", xerrors.New(err)))
		ErrorResponse(ctx, http.StatusInternalServerError, errorMessage)
		return
	}
	defer file.Body.Close()

	body := bufio.NewReaderSize(file.Body, sniffLen*2)
	head, err := body.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		c.Logger.WarnContext(reqCtx, "read platform file", slog.String("file_id", fileID), slog.Any("error", xerrors.New(err)))
		ErrorResponse(ctx, http.StatusInternalServerError, errorMessage)
		return
	}

	ctx.DataFromReader(http.StatusOK, file.ContentLength, contentType(file.ContentType, head), body, nil)
}

// contentType keeps a meaningful upstream type and otherwise sniffs the header.
func contentType(upstream string, head []byte) string {
	if upstream != "" && upstream != defaultContentType {
		return upstream
	}
	if kind, err := filetype.Match(head); err == nil && kind != filetype.Unknown {
		return kind.MIME.Value
	}
	return defaultContentType
}
