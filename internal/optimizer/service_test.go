package optimizer_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexgen/dispatch-optimizer/internal/dataset"
	"github.com/nexgen/dispatch-optimizer/internal/optimizer"
)

// newTestDataset loads a small fixture dataset from a temp directory.
// Overrides replace individual source files before the load.
func newTestDataset(t *testing.T, overrides map[string]string) *dataset.Service {
	t.Helper()
	files := map[string]string{
		"orders.csv": "Order ID,Product Category,Priority,Carrier,Customer Rating\n" +
			"ORD001,Food & Beverage,Express,FastShip,4.5\n" +
			"ORD002,Electronics,Standard,QuickHaul,3.9\n",
		"delivery_performance.csv": "Order ID,Promised Delivery Days,Actual Delivery Days\n" +
			"ORD001,2026-03-01 08:00:00,2026-03-01 13:00:00\n",
		"routes_distance.csv": "Order ID,Distance (km),Traffic Delays (Hours),Toll Charges\n" +
			"ORD001,100,1,5\n" +
			"ORD002,250,2.5,12\n",
		"cost_breakdown.csv": "Order ID,Fuel Consumption (Liters),Delivery Cost\n" +
			"ORD001,12,85\n" +
			"ORD002,30,190\n",
		"vehicle_fleet.csv": "Vehicle ID,Vehicle Type,Fuel Efficiency km per L,CO2 Emissions kg per km,Capacity kg\n" +
			"TRK001,Truck,8,0.3,5000\n" +
			"VAN001,Van,10,0.2,1200\n" +
			"REF001,Refrigerated Unit,6,0.35,3000\n",
		"warehouse_inventory.csv": "Warehouse,Product Category,Stock\nWH-North,Electronics,120\n",
		"customer_feedback.csv":   "Order ID,Rating,Comment\nORD001,5,great\n",
	}
	for name, content := range overrides {
		files[name] = content
	}

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	svc := dataset.NewService(dataset.NewLoader(dir, zerolog.New(io.Discard)), zerolog.New(io.Discard))
	require.NoError(t, svc.Refresh(context.Background()))
	return svc
}

func newTestEngine(t *testing.T, overrides map[string]string) *optimizer.Service {
	t.Helper()
	return optimizer.NewService(optimizer.ServiceConfig{
		Dataset: newTestDataset(t, overrides),
		Logger:  zerolog.New(io.Discard),
	})
}

func TestService_Optimize_PerishableOrder(t *testing.T) {
	engine := newTestEngine(t, nil)

	rec, err := engine.Optimize(context.Background(), "ORD001", optimizer.Weights{Cost: 1, Time: 1, CO2: 1})
	require.NoError(t, err)

	assert.Equal(t, "ORD001", rec.OrderID)

	// Food & Beverage is perishable: only the refrigerated unit qualifies.
	require.Len(t, rec.Candidates, 1)
	assert.Equal(t, "REF001", rec.Best.ID)

	// One candidate means zero variance on every metric, so the score is
	// exactly zero.
	assert.Equal(t, 0.0, rec.Best.Score)

	// ORD001: distance 100, traffic 1, tolls 5; refrigerated unit runs at
	// the default 50 km/h with efficiency 6.
	assert.InDelta(t, 100.0/50+1, rec.Best.PredictedTimeHours, 1e-9)
	assert.InDelta(t, (100.0/6)*1.5+(100.0/50+1)*20+5, rec.Best.PredictedCost, 1e-9)
	assert.InDelta(t, 100*0.35, rec.Best.PredictedCO2Kg, 1e-9)

	// Weights come back normalized.
	assert.InDelta(t, 1.0, rec.Weights.Cost+rec.Weights.Time+rec.Weights.CO2, 1e-9)
}

func TestService_Optimize_NonPerishableOrder(t *testing.T) {
	engine := newTestEngine(t, nil)

	rec, err := engine.Optimize(context.Background(), "ORD002", optimizer.Weights{Cost: 1, Time: 1, CO2: 1})
	require.NoError(t, err)

	// Electronics excludes the refrigerated unit.
	require.Len(t, rec.Candidates, 2)
	for _, c := range rec.Candidates {
		assert.NotEqual(t, "REF001", c.ID)
	}

	// Candidates come back sorted ascending, best first.
	assert.Equal(t, rec.Candidates[0].ID, rec.Best.ID)
	assert.LessOrEqual(t, rec.Candidates[0].Score, rec.Candidates[1].Score)
}

func TestService_Optimize_OrderNotFound(t *testing.T) {
	engine := newTestEngine(t, nil)

	_, err := engine.Optimize(context.Background(), "ORD999", optimizer.Weights{Cost: 1})
	require.ErrorIs(t, err, optimizer.ErrOrderNotFound)
}

func TestService_Optimize_NegativeWeights(t *testing.T) {
	engine := newTestEngine(t, nil)

	_, err := engine.Optimize(context.Background(), "ORD001", optimizer.Weights{Cost: -1})
	require.Error(t, err)
	assert.NotErrorIs(t, err, optimizer.ErrOrderNotFound)
}

func TestService_Optimize_NoEligibleVehicle(t *testing.T) {
	engine := newTestEngine(t, map[string]string{
		"vehicle_fleet.csv": "Vehicle ID,Vehicle Type,Fuel Efficiency km per L,CO2 Emissions kg per km,Capacity kg\n" +
			"TRK001,Truck,8,0.3,5000\n",
	})

	_, err := engine.Optimize(context.Background(), "ORD001", optimizer.Weights{Cost: 1})
	require.ErrorIs(t, err, optimizer.ErrNoEligibleVehicle)
}

func TestService_Optimize_BrokenFleetSchema(t *testing.T) {
	engine := newTestEngine(t, map[string]string{
		"vehicle_fleet.csv": "Vehicle ID,Vehicle Type\nTRK001,Truck\n",
	})

	_, err := engine.Optimize(context.Background(), "ORD002", optimizer.Weights{Cost: 1})
	require.Error(t, err)

	var schemaErr *dataset.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, dataset.SourceFleet, schemaErr.Table)
	assert.Contains(t, schemaErr.Expected, "fuel_efficiency_km_per_l")
}

func TestService_Optimize_CancelledContext(t *testing.T) {
	engine := newTestEngine(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Optimize(ctx, "ORD001", optimizer.Weights{Cost: 1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseFleet(t *testing.T) {
	engine := newTestDataset(t, nil)
	snapshot, err := engine.Snapshot()
	require.NoError(t, err)

	vehicles, err := optimizer.ParseFleet(snapshot.Fleet)
	require.NoError(t, err)
	require.Len(t, vehicles, 3)

	assert.Equal(t, "TRK001", vehicles[0].ID)
	assert.Equal(t, "Truck", vehicles[0].Type)
	assert.Equal(t, 8.0, vehicles[0].FuelEfficiencyKmPerL)
	assert.Equal(t, 0.3, vehicles[0].CO2KgPerKm)
	assert.Equal(t, 5000.0, vehicles[0].CapacityKg)
}
