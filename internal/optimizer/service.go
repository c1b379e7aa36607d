package optimizer

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nexgen/dispatch-optimizer/internal/dataset"
)

// ServiceConfig holds configuration for the optimization service.
type ServiceConfig struct {
	// Dataset supplies the shared read-only snapshot.
	Dataset *dataset.Service

	// Predictor config; zero fields fall back to defaults.
	Predictor PredictorConfig

	// Filter config; zero value falls back to defaults.
	Filter FilterConfig

	// Logger for per-request events.
	Logger zerolog.Logger
}

// Service runs the per-request pipeline: order lookup → candidate filter →
// prediction → scoring. It only reads the shared snapshot; all mutable
// state is request-local, so any number of requests may run concurrently.
type Service struct {
	data      *dataset.Service
	predictor *Predictor
	filter    FilterConfig
	logger    zerolog.Logger
}

// NewService creates an optimization service.
func NewService(cfg ServiceConfig) *Service {
	filter := cfg.Filter
	if len(filter.PerishableCategories) == 0 {
		filter.PerishableCategories = DefaultFilterConfig().PerishableCategories
	}
	if filter.RefrigeratedType == "" {
		filter.RefrigeratedType = DefaultFilterConfig().RefrigeratedType
	}
	return &Service{
		data:      cfg.Dataset,
		predictor: NewPredictor(cfg.Predictor),
		filter:    filter,
		logger:    cfg.Logger,
	}
}

// Optimize recommends the best-fitting vehicle for one order. Errors are
// scoped to the request: they never touch the cached snapshot.
func (s *Service) Optimize(ctx context.Context, orderID string, weights Weights) (*Recommendation, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot, err := s.data.Snapshot()
	if err != nil {
		return nil, err
	}

	row := dataset.FindRow(snapshot.Orders, dataset.KeyOrderID, orderID)
	if row < 0 {
		return nil, ErrOrderNotFound
	}

	// Schema check runs before any prediction arithmetic.
	fleet, err := ParseFleet(snapshot.Fleet)
	if err != nil {
		return nil, err
	}

	category, _ := snapshot.Orders.Value("product_category", row).Text()
	eligible, err := EligibleVehicles(fleet, category, s.filter)
	if err != nil {
		return nil, err
	}

	route := Route{
		DistanceKm:        numericField(snapshot.Orders, "distance_km", row),
		TrafficDelayHours: numericField(snapshot.Orders, "traffic_delays_hours", row),
		TollCharges:       numericField(snapshot.Orders, "toll_charges", row),
	}

	started := time.Now()
	candidates, err := s.predictor.Predict(route, eligible)
	if err != nil {
		return nil, err
	}
	ranked := Rank(candidates, weights)

	s.logger.Debug().
		Str("order_id", orderID).
		Str("product_category", category).
		Int("eligible", len(ranked)).
		Dur("duration", time.Since(started)).
		Msg("optimization complete")

	return &Recommendation{
		OrderID:    orderID,
		Weights:    weights.Normalize(),
		Best:       ranked[0],
		Candidates: ranked,
	}, nil
}

// numericField reads an imputed numeric cell. Imputation guarantees the
// required columns are complete, so a non-number here simply reads as 0.
func numericField(t *dataset.Table, col string, row int) float64 {
	f, _ := t.Value(col, row).Float()
	return f
}
