// Package optimizer implements the multi-criteria vehicle recommendation
// engine: candidate filtering, per-vehicle cost/time/emissions prediction,
// and weighted min-max scoring over the prepared dataset.
package optimizer

import (
	"errors"
	"fmt"

	"github.com/nexgen/dispatch-optimizer/internal/dataset"
)

// Request-scoped errors.
var (
	// ErrOrderNotFound means the requested order id is not in the merged
	// table.
	ErrOrderNotFound = errors.New("order not found")

	// ErrNoEligibleVehicle means the candidate filter produced an empty
	// set; the caller should report "no suitable vehicle", not an empty
	// ranking.
	ErrNoEligibleVehicle = errors.New("no eligible vehicle for order requirements")
)

// VehicleDataError reports a vehicle whose reference data would make a
// prediction divide by zero. It is a precondition violation, caught before
// any arithmetic runs.
type VehicleDataError struct {
	VehicleID string
	Field     string
}

func (e *VehicleDataError) Error() string {
	return fmt.Sprintf("vehicle %q has invalid %s", e.VehicleID, e.Field)
}

// Fleet table columns the predictor requires.
var fleetColumns = []string{
	"vehicle_id",
	"vehicle_type",
	"fuel_efficiency_km_per_l",
	"co2_emissions_kg_per_km",
	"capacity_kg",
}

// Vehicle is one fleet record: immutable reference data for a session.
type Vehicle struct {
	ID                   string  `json:"vehicleId"`
	Type                 string  `json:"vehicleType"`
	FuelEfficiencyKmPerL float64 `json:"fuelEfficiencyKmPerL"`
	CO2KgPerKm           float64 `json:"co2EmissionsKgPerKm"`
	CapacityKg           float64 `json:"capacityKg"`
}

// Candidate is one (order, eligible vehicle) scoring row. Rows are created
// fresh per optimization request and never persisted.
type Candidate struct {
	Vehicle

	AvgSpeedKmh        float64 `json:"avgSpeedKmh"`
	PredictedTimeHours float64 `json:"predictedTimeHours"`
	PredictedCost      float64 `json:"predictedCost"`
	PredictedCO2Kg     float64 `json:"predictedCo2Kg"`

	NormCost float64 `json:"normCost"`
	NormTime float64 `json:"normTime"`
	NormCO2  float64 `json:"normCo2"`

	Score float64 `json:"optimizationScore"`
}

// Recommendation is the full ranked candidate table plus the winner, so the
// caller can show both the best vehicle and the alternatives.
type Recommendation struct {
	OrderID    string      `json:"orderId"`
	Weights    Weights     `json:"weights"`
	Best       Candidate   `json:"best"`
	Candidates []Candidate `json:"candidates"`
}

// ParseFleet converts the fleet table into vehicle records. The required
// columns are checked up front so a broken fleet file surfaces as a
// *dataset.SchemaError naming expected vs found columns, never as a
// downstream division error.
func ParseFleet(t *dataset.Table) ([]Vehicle, error) {
	var missing bool
	for _, col := range fleetColumns {
		if !t.HasColumn(col) {
			missing = true
			break
		}
	}
	if missing {
		return nil, &dataset.SchemaError{
			Table:    dataset.SourceFleet,
			Expected: fleetColumns,
			Found:    t.Columns(),
		}
	}

	vehicles := make([]Vehicle, 0, t.NumRows())
	for row := 0; row < t.NumRows(); row++ {
		vehicles = append(vehicles, Vehicle{
			ID:                   textOrKey(t.Value("vehicle_id", row)),
			Type:                 textOrKey(t.Value("vehicle_type", row)),
			FuelEfficiencyKmPerL: floatOrZero(t.Value("fuel_efficiency_km_per_l", row)),
			CO2KgPerKm:           floatOrZero(t.Value("co2_emissions_kg_per_km", row)),
			CapacityKg:           floatOrZero(t.Value("capacity_kg", row)),
		})
	}
	return vehicles, nil
}

func textOrKey(v dataset.Value) string {
	if s, ok := v.Text(); ok {
		return s
	}
	return v.String()
}

func floatOrZero(v dataset.Value) float64 {
	f, _ := v.Float()
	return f
}
