package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/SongRelay/domain"
)

type ingestUsecase struct {
	songRepo domain.SongRepository
	timeout  time.Duration
}

func NewIngestUsecase(repo domain.SongRepository, timeout time.Duration) domain.IngestUsecase {
	return &ingestUsecase{
		songRepo: repo,
		timeout:  timeout,
	}
}

// Ingest walks the batch in order. The cursor moves past every update before
// its attachment is stored, so updates without audio (or that fail to store)
// are never redelivered. A store error stops the batch.
func (uc *ingestUsecase) Ingest(ctx context.Context, offset int64, updates []domain.Update) (int64, []*domain.Song, error) {
	var saved []*domain.Song
	for _, update := range updates {
		offset = update.UpdateID + 1

		audio := update.AudioOf()
		if audio == nil {
			continue
		}

		song, err := uc.save(ctx, audio)
		if err != nil {
			return offset, saved, fmt.Errorf("update %d: %w", update.UpdateID, err)
		}
		if song != nil {
			saved = append(saved, song)
		}
	}
	return offset, saved, nil
}

// save returns nil when a record with the same file_id already exists.
func (uc *ingestUsecase) save(ctx context.Context, audio *domain.Audio) (*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	exists, err := uc.songRepo.ExistsByFileID(ctx, audio.FileID)
	if err != nil {
		return nil, fmt.Errorf("check song %q: %w", audio.FileID, err)
	}
	if exists {
		return nil, nil
	}

	song := domain.NewSongFromAudio(audio)
	if err := uc.songRepo.Create(ctx, song); err != nil {
		if errors.Is(err, domain.ErrSongExists) {
			return nil, nil
		}
		return nil, fmt.Errorf("create song %q: %w", audio.FileID, err)
	}
	return song, nil
}
