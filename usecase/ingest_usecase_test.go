package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Super-Badmen-Viper/SongRelay/domain"
	"github.com/Super-Badmen-Viper/SongRelay/domain/mocks"
	"github.com/Super-Badmen-Viper/SongRelay/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func audioUpdate(id int64, audio domain.Audio) domain.Update {
	return domain.Update{UpdateID: id, Message: &domain.Message{MessageID: id, Audio: &audio}}
}

func TestIngestSavesNewAudio(t *testing.T) {
	repo := mocks.NewSongRepository(t)
	repo.On("ExistsByFileID", mock.Anything, "A").Return(false, nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Song) bool {
		return s.FileID == "A" && s.Title == "T" && s.Performer == "P" && s.Duration == 120 && s.ThumbID == ""
	})).Return(nil).Once()

	uc := usecase.NewIngestUsecase(repo, time.Second)
	next, saved, err := uc.Ingest(context.Background(), 0, []domain.Update{
		audioUpdate(5, domain.Audio{FileID: "A", Title: "T", Performer: "P", Duration: 120}),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(6), next)
	require.Len(t, saved, 1)
	assert.Equal(t, domain.Song{FileID: "A", ThumbID: "", Title: "T", Performer: "P", Duration: 120}, *saved[0])
}

func TestIngestAdvancesCursorWithoutAudio(t *testing.T) {
	repo := mocks.NewSongRepository(t)

	uc := usecase.NewIngestUsecase(repo, time.Second)
	next, saved, err := uc.Ingest(context.Background(), 3, []domain.Update{
		{UpdateID: 3},
		{UpdateID: 4, Message: &domain.Message{MessageID: 1}},
		{UpdateID: 9},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), next)
	assert.Empty(t, saved)
	repo.AssertNotCalled(t, "ExistsByFileID", mock.Anything, mock.Anything)
}

func TestIngestEmptyBatchKeepsCursor(t *testing.T) {
	repo := mocks.NewSongRepository(t)

	uc := usecase.NewIngestUsecase(repo, time.Second)
	next, saved, err := uc.Ingest(context.Background(), 42, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(42), next)
	assert.Empty(t, saved)
}

func TestIngestSkipsKnownFileID(t *testing.T) {
	repo := mocks.NewSongRepository(t)
	repo.On("ExistsByFileID", mock.Anything, "A").Return(true, nil).Once()

	uc := usecase.NewIngestUsecase(repo, time.Second)
	next, saved, err := uc.Ingest(context.Background(), 0, []domain.Update{
		audioUpdate(5, domain.Audio{FileID: "A", Title: "T"}),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(6), next)
	assert.Empty(t, saved)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestIngestAppliesPlaceholders(t *testing.T) {
	repo := mocks.NewSongRepository(t)
	repo.On("ExistsByFileID", mock.Anything, "B").Return(false, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	uc := usecase.NewIngestUsecase(repo, time.Second)
	_, saved, err := uc.Ingest(context.Background(), 0, []domain.Update{
		audioUpdate(1, domain.Audio{FileID: "B", Duration: 30}),
	})

	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, domain.DefaultSongTitle, saved[0].Title)
	assert.Equal(t, domain.DefaultSongPerformer, saved[0].Performer)
	assert.Equal(t, "", saved[0].ThumbID)
}

func TestIngestReadsLegacyThumb(t *testing.T) {
	repo := mocks.NewSongRepository(t)
	repo.On("ExistsByFileID", mock.Anything, "C").Return(false, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	uc := usecase.NewIngestUsecase(repo, time.Second)
	_, saved, err := uc.Ingest(context.Background(), 0, []domain.Update{
		audioUpdate(1, domain.Audio{FileID: "C", Thumb: &domain.PhotoSize{FileID: "old-thumb"}}),
	})

	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "old-thumb", saved[0].ThumbID)
}

func TestIngestTreatsDuplicateKeyAsExisting(t *testing.T) {
	repo := mocks.NewSongRepository(t)
	repo.On("ExistsByFileID", mock.Anything, "A").Return(false, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrSongExists).Once()

	uc := usecase.NewIngestUsecase(repo, time.Second)
	next, saved, err := uc.Ingest(context.Background(), 0, []domain.Update{
		audioUpdate(5, domain.Audio{FileID: "A"}),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(6), next)
	assert.Empty(t, saved)
}

func TestIngestStopsOnStoreError(t *testing.T) {
	storeErr := errors.New("connection reset")
	repo := mocks.NewSongRepository(t)
	repo.On("ExistsByFileID", mock.Anything, "A").Return(false, nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Song) bool { return s.FileID == "A" })).Return(nil).Once()
	repo.On("ExistsByFileID", mock.Anything, "B").Return(false, storeErr).Once()

	uc := usecase.NewIngestUsecase(repo, time.Second)
	next, saved, err := uc.Ingest(context.Background(), 0, []domain.Update{
		audioUpdate(10, domain.Audio{FileID: "A"}),
		audioUpdate(11, domain.Audio{FileID: "B"}),
		audioUpdate(12, domain.Audio{FileID: "C"}),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, int64(12), next)
	require.Len(t, saved, 1)
	assert.Equal(t, "A", saved[0].FileID)
}
