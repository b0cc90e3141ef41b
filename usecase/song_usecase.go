package usecase

import (
	"context"
	"time"

	"github.com/Super-Badmen-Viper/SongRelay/domain"
)

// songUsecase embeds the generic read usecase; listing needs no custom logic.
type songUsecase struct {
	BaseUsecase[domain.Song]
}

func NewSongUsecase(repo domain.SongRepository, timeout time.Duration) domain.SongUsecase {
	return &songUsecase{
		BaseUsecase: NewBaseUsecase[domain.Song](repo, timeout),
	}
}

func (uc *songUsecase) List(ctx context.Context) ([]*domain.Song, error) {
	return uc.GetAll(ctx)
}
