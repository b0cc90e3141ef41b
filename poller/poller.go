// Package poller drives the long-poll loop against the platform update feed.
package poller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Super-Badmen-Viper/SongRelay/domain"
	"github.com/mdobak/go-xerrors"
)

const (
	DefaultLongPollTimeout = 60
	DefaultInterval        = 2 * time.Second
)

type Poller struct {
	source   domain.UpdateSource
	ingest   domain.IngestUsecase
	timeout  int
	interval time.Duration
	logger   *slog.Logger
}

// New returns a poller. A zero timeout or interval falls back to the defaults.
func New(source domain.UpdateSource, ingest domain.IngestUsecase, timeout int, interval time.Duration, logger *slog.Logger) *Poller {
	if timeout <= 0 {
		timeout = DefaultLongPollTimeout
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		source:   source,
		ingest:   ingest,
		timeout:  timeout,
		interval: interval,
		logger:   logger.With(slog.String("component", "poller")),
	}
}

// PollOnce runs a single cycle starting at offset and returns the cursor to
// use for the next one. When the request itself fails the offset comes back
// unchanged so the same window is fetched again.
func (p *Poller) PollOnce(ctx context.Context, offset int64) (int64, error) {
	updates, err := p.source.GetUpdates(ctx, offset, p.timeout)
	if err != nil {
		return offset, fmt.Errorf("poll updates at offset %d: %w", offset, err)
	}

	next, saved, err := p.ingest.Ingest(ctx, offset, updates)
	for _, song := range saved {
		p.logger.InfoContext(ctx, "song saved",
			slog.String("title", song.Title),
			slog.String("performer", song.Performer),
			slog.String("file_id", song.FileID),
		)
	}
	if err != nil {
		return next, fmt.Errorf("ingest updates: %w", err)
	}
	return next, nil
}

// Run polls until ctx is cancelled and returns the last cursor. Every cycle is
// followed by the fixed interval, whether it succeeded or not; errors are
// logged and never stop the loop.
func (p *Poller) Run(ctx context.Context) int64 {
	var offset int64
	timer := time.NewTimer(p.interval)
	timer.Stop()
	defer timer.Stop()

	p.logger.InfoContext(ctx, "polling started", slog.Int("long_poll_timeout", p.timeout), slog.Duration("interval", p.interval))
	for ctx.Err() == nil {
		next, err := p.PollOnce(ctx, offset)
		offset = next
		if err != nil && ctx.Err() == nil {
			p.logger.WarnContext(ctx, "polling error (ignore if offline)",
				slog.Int64("offset", offset),
				slog.Any("error", xerrors.New(err)),
			)
		}

		timer.Reset(p.interval)
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
	}
	p.logger.Info("polling stopped", slog.Int64("offset", offset))
	return offset
}
