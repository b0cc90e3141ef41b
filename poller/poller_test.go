package poller

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/Super-Badmen-Viper/SongRelay/domain"
	"github.com/Super-Badmen-Viper/SongRelay/domain/mocks"
	"github.com/Super-Badmen-Viper/SongRelay/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type memorySongRepository struct {
	mu    sync.Mutex
	songs []*domain.Song
}

func (r *memorySongRepository) Create(_ context.Context, song *domain.Song) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.songs {
		if s.FileID == song.FileID {
			return domain.ErrSongExists
		}
	}
	stored := *song
	r.songs = append(r.songs, &stored)
	return nil
}

func (r *memorySongRepository) GetAll(context.Context) ([]*domain.Song, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*domain.Song{}, r.songs...), nil
}

func (r *memorySongRepository) GetByFilter(ctx context.Context, _ interface{}) ([]*domain.Song, error) {
	return r.GetAll(ctx)
}

func (r *memorySongRepository) GetOneByFilter(context.Context, interface{}) (*domain.Song, error) {
	return nil, errors.New("not supported")
}

func (r *memorySongRepository) Count(context.Context, interface{}) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.songs)), nil
}

func (r *memorySongRepository) ExistsByFilter(context.Context, interface{}) (bool, error) {
	return false, errors.New("not supported")
}

func (r *memorySongRepository) ExistsByFileID(_ context.Context, fileID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.songs {
		if s.FileID == fileID {
			return true, nil
		}
	}
	return false, nil
}

type step struct {
	updates []domain.Update
	err     error
}

// scriptedSource replays steps in order, then cancels the run.
type scriptedSource struct {
	mu      sync.Mutex
	steps   []step
	offsets []int64
	cancel  context.CancelFunc
}

func (s *scriptedSource) GetUpdates(_ context.Context, offset int64, _ int) ([]domain.Update, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offsets = append(s.offsets, offset)
	idx := len(s.offsets) - 1
	if idx < len(s.steps) {
		return s.steps[idx].updates, s.steps[idx].err
	}
	s.cancel()
	return nil, nil
}

func audioUpdate(id int64, fileID, title string) domain.Update {
	return domain.Update{
		UpdateID: id,
		Message:  &domain.Message{MessageID: id, Audio: &domain.Audio{FileID: fileID, Title: title, Performer: "P", Duration: 120}},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPollOnceSavesAndAdvances(t *testing.T) {
	source := mocks.NewUpdateSource(t)
	source.On("GetUpdates", mock.Anything, int64(0), 60).
		Return([]domain.Update{audioUpdate(5, "A", "T")}, nil).Once()
	repo := &memorySongRepository{}

	p := New(source, usecase.NewIngestUsecase(repo, time.Second), 60, time.Millisecond, quietLogger())
	next, err := p.PollOnce(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, int64(6), next)
	require.Len(t, repo.songs, 1)
	assert.Equal(t, domain.Song{FileID: "A", ThumbID: "", Title: "T", Performer: "P", Duration: 120}, *repo.songs[0])
}

func TestPollOnceReplayDoesNotDuplicate(t *testing.T) {
	batch := []domain.Update{audioUpdate(5, "A", "T")}
	source := mocks.NewUpdateSource(t)
	source.On("GetUpdates", mock.Anything, int64(0), 60).Return(batch, nil).Twice()
	repo := &memorySongRepository{}

	p := New(source, usecase.NewIngestUsecase(repo, time.Second), 60, time.Millisecond, quietLogger())
	for i := 0; i < 2; i++ {
		next, err := p.PollOnce(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, int64(6), next)
	}

	assert.Len(t, repo.songs, 1)
}

func TestPollOnceRequestFailureKeepsOffset(t *testing.T) {
	source := mocks.NewUpdateSource(t)
	source.On("GetUpdates", mock.Anything, int64(17), 60).Return(nil, errors.New("network down")).Once()
	repo := &memorySongRepository{}

	p := New(source, usecase.NewIngestUsecase(repo, time.Second), 60, time.Millisecond, quietLogger())
	next, err := p.PollOnce(context.Background(), 17)

	require.Error(t, err)
	assert.Equal(t, int64(17), next)
	assert.Empty(t, repo.songs)
}

func TestRunThreadsCursorAcrossCycles(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := &scriptedSource{
		cancel: cancel,
		steps: []step{
			{updates: []domain.Update{audioUpdate(1, "A", "T"), {UpdateID: 2}}},
			{err: errors.New("timeout")},
			{updates: []domain.Update{audioUpdate(3, "A", "T"), audioUpdate(4, "B", "")}},
		},
	}
	repo := &memorySongRepository{}

	p := New(source, usecase.NewIngestUsecase(repo, time.Second), 60, time.Millisecond, quietLogger())
	final := p.Run(ctx)

	assert.Equal(t, int64(5), final)
	assert.Equal(t, []int64{0, 3, 3, 5}, source.offsets)
	require.Len(t, repo.songs, 2)
	assert.Equal(t, "A", repo.songs[0].FileID)
	assert.Equal(t, "B", repo.songs[1].FileID)
	assert.Equal(t, domain.DefaultSongTitle, repo.songs[1].Title)
}

func TestRunStopsDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	polled := make(chan struct{})
	source := mocks.NewUpdateSource(t)
	source.On("GetUpdates", mock.Anything, int64(0), 60).
		Run(func(mock.Arguments) { close(polled) }).
		Return([]domain.Update{}, nil).Once()

	p := New(source, usecase.NewIngestUsecase(&memorySongRepository{}, time.Second), 60, time.Hour, quietLogger())

	done := make(chan int64)
	go func() { done <- p.Run(ctx) }()

	select {
	case <-polled:
	case <-time.After(time.Second):
		t.Fatal("poller never polled")
	}
	cancel()

	select {
	case offset := <-done:
		assert.Equal(t, int64(0), offset)
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancellation")
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	p := New(nil, nil, 0, 0, nil)
	assert.Equal(t, DefaultLongPollTimeout, p.timeout)
	assert.Equal(t, DefaultInterval, p.interval)
}
