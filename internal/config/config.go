// Package config loads service configuration: defaults, an optional YAML
// file, then environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full service configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port string `yaml:"port"`

	// Environment name reported to telemetry (development, production...).
	Environment string `yaml:"environment"`

	// DataDir holds the seven source CSV files.
	DataDir string `yaml:"data_dir"`

	// RefreshInterval is the source polling interval of the watcher.
	RefreshInterval time.Duration `yaml:"refresh_interval"`

	Telemetry Telemetry `yaml:"telemetry"`
	Engine    Engine    `yaml:"engine"`
}

// Telemetry configures the OpenTelemetry exporters.
type Telemetry struct {
	Enabled      bool   `yaml:"enabled"`
	OTLPEndpoint string `yaml:"otlp_endpoint"`
}

// Engine holds the documented, overridable scoring assumptions.
type Engine struct {
	// FuelPricePerLiter and LaborCostPerHour feed the cost prediction.
	FuelPricePerLiter float64 `yaml:"fuel_price_per_liter"`
	LaborCostPerHour  float64 `yaml:"labor_cost_per_hour"`

	// SpeedByVehicleType maps lowercase vehicle types to assumed average
	// speeds in km/h; DefaultSpeedKmh covers everything else.
	SpeedByVehicleType map[string]float64 `yaml:"speed_by_vehicle_type"`
	DefaultSpeedKmh    float64            `yaml:"default_speed_kmh"`

	// PerishableCategories require the refrigerated vehicle type.
	PerishableCategories []string `yaml:"perishable_categories"`
	RefrigeratedType     string   `yaml:"refrigerated_type"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Port:            "8080",
		Environment:     "development",
		DataDir:         "data",
		RefreshInterval: 30 * time.Second,
		Telemetry: Telemetry{
			Enabled:      false,
			OTLPEndpoint: "localhost:4317",
		},
		Engine: Engine{
			FuelPricePerLiter: 1.50,
			LaborCostPerHour:  20.00,
			SpeedByVehicleType: map[string]float64{
				"express bike": 60,
				"van":          60,
				"truck":        45,
			},
			DefaultSpeedKmh:      50,
			PerishableCategories: []string{"Food & Beverage", "Healthcare"},
			RefrigeratedType:     "refrigerated unit",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty), then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("APP_PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("REFRESH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.RefreshInterval = d
		}
	}
	if v := os.Getenv("OTEL_ENABLED"); v != "" {
		c.Telemetry.Enabled = v == "true"
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		c.Telemetry.OTLPEndpoint = v
	}
	if v, ok := envFloat("FUEL_PRICE_PER_LITER"); ok {
		c.Engine.FuelPricePerLiter = v
	}
	if v, ok := envFloat("LABOR_COST_PER_HOUR"); ok {
		c.Engine.LaborCostPerHour = v
	}
}

func envFloat(key string) (float64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
