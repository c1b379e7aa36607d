package dataset

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Service holds the current snapshot and rebuilds it on demand. The
// snapshot is read-only once published: requests share it without locking
// beyond the pointer swap, and a refresh replaces it wholesale. A failed
// reload leaves the previous snapshot serving.
type Service struct {
	loader *Loader
	logger zerolog.Logger

	mu       sync.RWMutex
	snapshot *Snapshot
}

// NewService creates a dataset service around the given loader. No data is
// loaded until the first Refresh.
func NewService(loader *Loader, logger zerolog.Logger) *Service {
	return &Service{loader: loader, logger: logger}
}

// Snapshot returns the current snapshot, or ErrNotLoaded before the first
// successful Refresh.
func (s *Service) Snapshot() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, ErrNotLoaded
	}
	return s.snapshot, nil
}

// Refresh rebuilds the snapshot from the source files and swaps it in
// atomically. The load runs outside the lock so in-flight requests keep
// reading the old snapshot until the new one is ready.
func (s *Service) Refresh(ctx context.Context) error {
	started := time.Now()
	snapshot, err := s.loader.Load(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("dataset refresh failed, keeping previous snapshot")
		return err
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	s.logger.Info().
		Dur("duration", time.Since(started)).
		Int("orders", snapshot.Orders.NumRows()).
		Int("vehicles", snapshot.Fleet.NumRows()).
		Msg("dataset snapshot refreshed")
	return nil
}

// Status describes the cache for the ops endpoints.
type Status struct {
	Loaded       bool      `json:"loaded"`
	LoadedAt     time.Time `json:"loadedAt,omitempty"`
	OrderCount   int       `json:"orderCount"`
	VehicleCount int       `json:"vehicleCount"`
}

// Status reports whether a snapshot is loaded and how big it is.
func (s *Service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return Status{}
	}
	return Status{
		Loaded:       true,
		LoadedAt:     s.snapshot.LoadedAt,
		OrderCount:   s.snapshot.Orders.NumRows(),
		VehicleCount: s.snapshot.Fleet.NumRows(),
	}
}
