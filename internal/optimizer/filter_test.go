package optimizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexgen/dispatch-optimizer/internal/optimizer"
)

func testFleet() []optimizer.Vehicle {
	return []optimizer.Vehicle{
		{ID: "TRK001", Type: "Truck", FuelEfficiencyKmPerL: 8, CO2KgPerKm: 0.3, CapacityKg: 5000},
		{ID: "VAN001", Type: "Van", FuelEfficiencyKmPerL: 12, CO2KgPerKm: 0.18, CapacityKg: 1200},
		{ID: "REF001", Type: "Refrigerated Unit", FuelEfficiencyKmPerL: 6, CO2KgPerKm: 0.35, CapacityKg: 3000},
		{ID: "BIK001", Type: "Express Bike", FuelEfficiencyKmPerL: 40, CO2KgPerKm: 0.02, CapacityKg: 30},
	}
}

func TestFilterConfig_IsPerishable(t *testing.T) {
	cfg := optimizer.DefaultFilterConfig()

	assert.True(t, cfg.IsPerishable("Food & Beverage"))
	assert.True(t, cfg.IsPerishable("Healthcare"))
	assert.True(t, cfg.IsPerishable("food & beverage"), "matching is case-insensitive")
	assert.False(t, cfg.IsPerishable("Electronics"))
	assert.False(t, cfg.IsPerishable(""))
}

func TestEligibleVehicles_PerishableGetsRefrigeratedOnly(t *testing.T) {
	eligible, err := optimizer.EligibleVehicles(testFleet(), "Food & Beverage", optimizer.DefaultFilterConfig())
	require.NoError(t, err)

	require.Len(t, eligible, 1)
	assert.Equal(t, "REF001", eligible[0].ID)
}

func TestEligibleVehicles_NonPerishableExcludesRefrigerated(t *testing.T) {
	eligible, err := optimizer.EligibleVehicles(testFleet(), "Electronics", optimizer.DefaultFilterConfig())
	require.NoError(t, err)

	require.Len(t, eligible, 3)
	for _, v := range eligible {
		assert.NotEqual(t, "REF001", v.ID)
	}
}

func TestEligibleVehicles_EmptySet(t *testing.T) {
	// A fleet with no refrigerated unit cannot serve a perishable order.
	fleet := []optimizer.Vehicle{
		{ID: "TRK001", Type: "Truck", FuelEfficiencyKmPerL: 8},
	}
	_, err := optimizer.EligibleVehicles(fleet, "Healthcare", optimizer.DefaultFilterConfig())
	require.ErrorIs(t, err, optimizer.ErrNoEligibleVehicle)
}

func TestEligibleVehicles_EmptyFleet(t *testing.T) {
	_, err := optimizer.EligibleVehicles(nil, "Electronics", optimizer.DefaultFilterConfig())
	require.ErrorIs(t, err, optimizer.ErrNoEligibleVehicle)
}
