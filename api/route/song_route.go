package route

import (
	"log/slog"
	"time"

	"github.com/Super-Badmen-Viper/SongRelay/api/controller"
	"github.com/Super-Badmen-Viper/SongRelay/domain"
	"github.com/Super-Badmen-Viper/SongRelay/mongo"
	"github.com/Super-Badmen-Viper/SongRelay/repository"
	"github.com/Super-Badmen-Viper/SongRelay/usecase"
	"github.com/gin-gonic/gin"
)

func NewSongRouter(timeout time.Duration, db mongo.Database, group *gin.RouterGroup, logger *slog.Logger) {
	repo := repository.NewSongRepository(db, domain.CollectionSong)
	uc := usecase.NewSongUsecase(repo, timeout)
	ctrl := controller.NewSongController(uc, logger)

	group.GET("/songs", ctrl.GetSongs)
}

func NewHealthRouter(timeout time.Duration, db mongo.Database, pollingEnabled bool, group *gin.RouterGroup, logger *slog.Logger) {
	repo := repository.NewSongRepository(db, domain.CollectionSong)
	uc := usecase.NewSongUsecase(repo, timeout)
	ctrl := controller.NewHealthController(uc, pollingEnabled, logger)

	group.GET("/health", ctrl.GetHealth)
}
