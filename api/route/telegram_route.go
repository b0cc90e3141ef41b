package route

import (
	"log/slog"

	"github.com/Super-Badmen-Viper/SongRelay/api/controller"
	"github.com/Super-Badmen-Viper/SongRelay/domain"
	"github.com/Super-Badmen-Viper/SongRelay/usecase"
	"github.com/gin-gonic/gin"
)

func NewTelegramRouter(files domain.FileSource, group *gin.RouterGroup, logger *slog.Logger) {
	uc := usecase.NewProxyUsecase(files)
	ctrl := controller.NewProxyController(uc, logger)

	group.GET("/audio/:file_id", ctrl.StreamAudio)
	group.GET("/thumbnail/:thumb_id", ctrl.StreamThumbnail)
}
