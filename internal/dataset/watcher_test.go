package dataset_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/nexgen/dispatch-optimizer/internal/dataset"
)

func TestWatcher_RefreshesOnSourceChange(t *testing.T) {
	dir := t.TempDir()
	writeFixtureSources(t, dir)

	logger := zerolog.New(io.Discard)
	loader := dataset.NewLoader(dir, logger)
	svc := dataset.NewService(loader, logger)
	require.NoError(t, svc.Refresh(context.Background()))

	before, err := svc.Snapshot()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher := dataset.NewWatcher(dataset.WatcherConfig{
		Service:  svc,
		Paths:    loader.SourcePaths(),
		Interval: 10 * time.Millisecond,
		Logger:   logger,
	})
	go watcher.Run(ctx)

	// Give the watcher time to take its baseline, then bump a source's
	// modification time well past it.
	time.Sleep(50 * time.Millisecond)
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "orders.csv"), future, future))

	require.Eventually(t, func() bool {
		after, err := svc.Snapshot()
		return err == nil && after != before
	}, 2*time.Second, 10*time.Millisecond, "watcher must reload after a source change")
}

func TestWatcher_NoChangeNoRefresh(t *testing.T) {
	dir := t.TempDir()
	writeFixtureSources(t, dir)

	logger := zerolog.New(io.Discard)
	loader := dataset.NewLoader(dir, logger)
	svc := dataset.NewService(loader, logger)
	require.NoError(t, svc.Refresh(context.Background()))

	before, err := svc.Snapshot()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	watcher := dataset.NewWatcher(dataset.WatcherConfig{
		Service:  svc,
		Paths:    loader.SourcePaths(),
		Interval: 10 * time.Millisecond,
		Logger:   logger,
	})
	go watcher.Run(ctx)

	time.Sleep(100 * time.Millisecond)
	cancel()

	after, err := svc.Snapshot()
	require.NoError(t, err)
	require.Same(t, before, after, "untouched sources must not trigger a reload")
}
