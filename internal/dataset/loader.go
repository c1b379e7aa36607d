package dataset

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Logical source names and their files. All seven must be present for a
// load to succeed; inventory and feedback pass through to the display layer
// without feeding the scoring core.
const (
	SourceOrders      = "orders"
	SourcePerformance = "delivery_performance"
	SourceRoutes      = "routes_distance"
	SourceFleet       = "vehicle_fleet"
	SourceCosts       = "cost_breakdown"
	SourceInventory   = "warehouse_inventory"
	SourceFeedback    = "customer_feedback"
)

// sourceFiles maps logical source names to file names, in load order.
var sourceFiles = []struct {
	name string
	file string
}{
	{SourceOrders, "orders.csv"},
	{SourcePerformance, "delivery_performance.csv"},
	{SourceRoutes, "routes_distance.csv"},
	{SourceFleet, "vehicle_fleet.csv"},
	{SourceCosts, "cost_breakdown.csv"},
	{SourceInventory, "warehouse_inventory.csv"},
	{SourceFeedback, "customer_feedback.csv"},
}

// KeyOrderID is the join key shared by the order-centric sources.
const KeyOrderID = "order_id"

// Snapshot is one fully prepared data set: the merged and imputed order
// table plus the reference tables. Snapshots are immutable after
// construction and safe to share across concurrent requests.
type Snapshot struct {
	Orders    *Table
	Fleet     *Table
	Inventory *Table
	Feedback  *Table
	LoadedAt  time.Time
}

// Loader reads the seven source files from a directory and runs the
// preparation pipeline: header cleaning, left joins, imputation, timestamp
// parsing, delay derivation.
type Loader struct {
	dir    string
	logger zerolog.Logger
}

// NewLoader creates a loader for the given data directory.
func NewLoader(dir string, logger zerolog.Logger) *Loader {
	return &Loader{dir: dir, logger: logger}
}

// SourcePaths returns the absolute paths of all source files, for the
// refresh watcher.
func (l *Loader) SourcePaths() []string {
	paths := make([]string, 0, len(sourceFiles))
	for _, src := range sourceFiles {
		paths = append(paths, filepath.Join(l.dir, src.file))
	}
	return paths
}

// Load reads every source and builds a fresh snapshot. A missing file is an
// *UnavailableError naming the source; a malformed file is a *LoadError
// carrying the cause. Either aborts the whole load; no partial snapshot is
// ever returned.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	tables := make(map[string]*Table, len(sourceFiles))
	for _, src := range sourceFiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t, err := l.readSource(src.name, src.file)
		if err != nil {
			return nil, err
		}
		tables[src.name] = t
		l.logger.Debug().
			Str("source", src.name).
			Int("rows", t.NumRows()).
			Int("columns", t.NumCols()).
			Msg("source loaded")
	}

	orders := tables[SourceOrders]
	for _, secondary := range []string{SourcePerformance, SourceRoutes, SourceCosts} {
		merged, err := LeftJoin(orders, tables[secondary], KeyOrderID, secondary)
		if err != nil {
			return nil, err
		}
		orders = merged
	}

	if err := ImputeMedians(orders, RequiredNumericColumns); err != nil {
		return nil, &LoadError{Source: SourceOrders, Err: err}
	}
	for _, col := range []string{ColPromisedDelivery, ColActualDelivery} {
		if err := ParseTimestampColumn(orders, col); err != nil {
			return nil, &LoadError{Source: SourceOrders, Err: err}
		}
	}
	if err := DeriveDelay(orders, ColActualDelivery, ColPromisedDelivery, ColDeliveryDelay); err != nil {
		return nil, &LoadError{Source: SourceOrders, Err: err}
	}

	snapshot := &Snapshot{
		Orders:    orders,
		Fleet:     tables[SourceFleet],
		Inventory: tables[SourceInventory],
		Feedback:  tables[SourceFeedback],
		LoadedAt:  time.Now(),
	}

	l.logger.Info().
		Int("orders", snapshot.Orders.NumRows()).
		Int("vehicles", snapshot.Fleet.NumRows()).
		Msg("dataset prepared")

	return snapshot, nil
}

func (l *Loader) readSource(name, file string) (*Table, error) {
	f, err := os.Open(filepath.Join(l.dir, file))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &UnavailableError{Source: name}
		}
		return nil, &LoadError{Source: name, Err: err}
	}
	defer f.Close()

	t, err := ReadTable(f)
	if err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}
	return t, nil
}
