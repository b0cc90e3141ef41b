package route

import (
	"log/slog"
	"time"

	"github.com/Super-Badmen-Viper/SongRelay/api/middleware"
	"github.com/Super-Badmen-Viper/SongRelay/domain"
	"github.com/Super-Badmen-Viper/SongRelay/mongo"
	"github.com/gin-gonic/gin"
)

type Options struct {
	Timeout        time.Duration
	DB             mongo.Database
	Files          domain.FileSource
	PollingEnabled bool
	Logger         *slog.Logger
}

func Setup(opts Options, engine *gin.Engine) {
	engine.Use(
		gin.Recovery(),
		middleware.RequestLogger(opts.Logger),
		middleware.CORS(),
	)

	apiRouter := engine.Group("/api")
	NewSongRouter(opts.Timeout, opts.DB, apiRouter, opts.Logger)
	NewHealthRouter(opts.Timeout, opts.DB, opts.PollingEnabled, apiRouter, opts.Logger)

	telegramRouter := engine.Group("/telegram")
	NewTelegramRouter(opts.Files, telegramRouter, opts.Logger)
}
