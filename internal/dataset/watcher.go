package dataset

import (
	"context"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// WatcherConfig holds configuration for the refresh watcher.
type WatcherConfig struct {
	// Service is the dataset service to refresh.
	Service *Service

	// Paths are the source files whose modification times are polled.
	Paths []string

	// Interval is the polling interval (default: 30 seconds).
	Interval time.Duration

	// MaxRetryElapsed bounds the backoff retries after a failed refresh
	// (default: 5 minutes).
	MaxRetryElapsed time.Duration

	// Logger for watcher events.
	Logger zerolog.Logger
}

// Watcher polls source file modification times and refreshes the dataset
// when any source changes. A failed refresh is retried with exponential
// backoff; the old snapshot keeps serving throughout.
type Watcher struct {
	service         *Service
	paths           []string
	interval        time.Duration
	maxRetryElapsed time.Duration
	logger          zerolog.Logger

	lastSeen time.Time
}

// NewWatcher creates a watcher. The modification-time baseline is taken
// lazily on the first poll, so a snapshot loaded at startup is not reloaded
// immediately.
func NewWatcher(cfg WatcherConfig) *Watcher {
	interval := cfg.Interval
	if interval == 0 {
		interval = 30 * time.Second
	}
	maxRetryElapsed := cfg.MaxRetryElapsed
	if maxRetryElapsed == 0 {
		maxRetryElapsed = 5 * time.Minute
	}
	return &Watcher{
		service:         cfg.Service,
		paths:           cfg.Paths,
		interval:        interval,
		maxRetryElapsed: maxRetryElapsed,
		logger:          cfg.Logger,
	}
}

// Run polls until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	w.lastSeen = w.latestModTime()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().
		Dur("interval", w.interval).
		Int("sources", len(w.paths)).
		Msg("dataset watcher started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("dataset watcher stopped")
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *Watcher) poll(ctx context.Context) {
	latest := w.latestModTime()
	if !latest.After(w.lastSeen) {
		return
	}

	w.logger.Info().
		Time("modified_at", latest).
		Msg("source change detected, refreshing dataset")

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = w.maxRetryElapsed

	err := backoff.Retry(func() error {
		return w.service.Refresh(ctx)
	}, backoff.WithContext(bo, ctx))

	if err != nil {
		w.logger.Error().Err(err).Msg("dataset refresh retries exhausted")
		// Leave lastSeen untouched so the next poll tries again.
		return
	}
	w.lastSeen = latest
}

// latestModTime returns the newest modification time across the watched
// files. Missing files are skipped; the loader reports them properly when a
// refresh actually runs.
func (w *Watcher) latestModTime() time.Time {
	var latest time.Time
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
	}
	return latest
}
