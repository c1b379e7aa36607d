package optimizer

import (
	"strings"
)

// PredictorConfig holds the fixed assumptions behind the per-vehicle
// predictions. All of it is configuration, overridable per deployment.
type PredictorConfig struct {
	// FuelPricePerLiter is the assumed fuel price (default: 1.50).
	FuelPricePerLiter float64

	// LaborCostPerHour is the assumed driver rate (default: 20.00).
	LaborCostPerHour float64

	// SpeedByType maps lowercase vehicle types to assumed average speeds
	// in km/h. A static assumption table, not a learned model.
	SpeedByType map[string]float64

	// DefaultSpeedKmh applies to vehicle types absent from SpeedByType
	// (default: 50).
	DefaultSpeedKmh float64
}

// DefaultPredictorConfig returns the stock assumption table: express bikes
// and vans average 60 km/h, trucks 45, everything else 50.
func DefaultPredictorConfig() PredictorConfig {
	return PredictorConfig{
		FuelPricePerLiter: 1.50,
		LaborCostPerHour:  20.00,
		SpeedByType: map[string]float64{
			"express bike": 60,
			"van":          60,
			"truck":        45,
		},
		DefaultSpeedKmh: 50,
	}
}

// Route carries the order attributes the predictions depend on. After
// imputation every field is a concrete number.
type Route struct {
	DistanceKm        float64
	TrafficDelayHours float64
	TollCharges       float64
}

// Predictor computes predicted time, cost and emissions per vehicle.
type Predictor struct {
	cfg PredictorConfig
}

// NewPredictor creates a predictor, filling zero config fields with the
// defaults.
func NewPredictor(cfg PredictorConfig) *Predictor {
	def := DefaultPredictorConfig()
	if cfg.FuelPricePerLiter == 0 {
		cfg.FuelPricePerLiter = def.FuelPricePerLiter
	}
	if cfg.LaborCostPerHour == 0 {
		cfg.LaborCostPerHour = def.LaborCostPerHour
	}
	if len(cfg.SpeedByType) == 0 {
		cfg.SpeedByType = def.SpeedByType
	}
	if cfg.DefaultSpeedKmh == 0 {
		cfg.DefaultSpeedKmh = def.DefaultSpeedKmh
	}
	return &Predictor{cfg: cfg}
}

// SpeedFor returns the assumed average speed for a vehicle type.
func (p *Predictor) SpeedFor(vehicleType string) float64 {
	if speed, ok := p.cfg.SpeedByType[strings.ToLower(vehicleType)]; ok {
		return speed
	}
	return p.cfg.DefaultSpeedKmh
}

// Predict builds one candidate row per vehicle:
//
//	time = distance/speed + traffic
//	cost = (distance/efficiency)*fuel_price + time*labor_rate + tolls
//	co2  = distance * emissions_per_km
//
// A vehicle with non-positive fuel efficiency, or a speed assumption that
// is not positive, is a *VehicleDataError. The guard runs before any
// division so a bad record can never produce Inf.
func (p *Predictor) Predict(route Route, vehicles []Vehicle) ([]Candidate, error) {
	candidates := make([]Candidate, 0, len(vehicles))
	for _, v := range vehicles {
		speed := p.SpeedFor(v.Type)
		if speed <= 0 {
			return nil, &VehicleDataError{VehicleID: v.ID, Field: "avg_speed_kmh"}
		}
		if v.FuelEfficiencyKmPerL <= 0 {
			return nil, &VehicleDataError{VehicleID: v.ID, Field: "fuel_efficiency_km_per_l"}
		}

		timeHours := route.DistanceKm/speed + route.TrafficDelayHours
		fuelLiters := route.DistanceKm / v.FuelEfficiencyKmPerL
		cost := fuelLiters*p.cfg.FuelPricePerLiter + timeHours*p.cfg.LaborCostPerHour + route.TollCharges

		candidates = append(candidates, Candidate{
			Vehicle:            v,
			AvgSpeedKmh:        speed,
			PredictedTimeHours: timeHours,
			PredictedCost:      cost,
			PredictedCO2Kg:     route.DistanceKm * v.CO2KgPerKm,
		})
	}
	return candidates, nil
}
