package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexgen/dispatch-optimizer/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
	assert.False(t, cfg.Telemetry.Enabled)

	assert.Equal(t, 1.50, cfg.Engine.FuelPricePerLiter)
	assert.Equal(t, 20.00, cfg.Engine.LaborCostPerHour)
	assert.Equal(t, 45.0, cfg.Engine.SpeedByVehicleType["truck"])
	assert.Equal(t, 60.0, cfg.Engine.SpeedByVehicleType["van"])
	assert.Equal(t, 50.0, cfg.Engine.DefaultSpeedKmh)
	assert.Contains(t, cfg.Engine.PerishableCategories, "Food & Beverage")
	assert.Equal(t, "refrigerated unit", cfg.Engine.RefrigeratedType)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default().Port, cfg.Port)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
port: "9090"
environment: production
data_dir: /srv/logistics
refresh_interval: 2m
engine:
  fuel_price_per_liter: 1.85
  labor_cost_per_hour: 25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "/srv/logistics", cfg.DataDir)
	assert.Equal(t, 2*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 1.85, cfg.Engine.FuelPricePerLiter)
	assert.Equal(t, 25.0, cfg.Engine.LaborCostPerHour)

	// Fields the file does not set keep their defaults.
	assert.Equal(t, 50.0, cfg.Engine.DefaultSpeedKmh)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unclosed"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "7070")
	t.Setenv("APP_ENV", "staging")
	t.Setenv("DATA_DIR", "/tmp/sources")
	t.Setenv("REFRESH_INTERVAL", "45s")
	t.Setenv("FUEL_PRICE_PER_LITER", "2.10")
	t.Setenv("LABOR_COST_PER_HOUR", "22.5")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "/tmp/sources", cfg.DataDir)
	assert.Equal(t, 45*time.Second, cfg.RefreshInterval)
	assert.Equal(t, 2.10, cfg.Engine.FuelPricePerLiter)
	assert.Equal(t, 22.5, cfg.Engine.LaborCostPerHour)
}

func TestLoad_InvalidEnvValuesAreIgnored(t *testing.T) {
	t.Setenv("REFRESH_INTERVAL", "not a duration")
	t.Setenv("FUEL_PRICE_PER_LITER", "expensive")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
	assert.Equal(t, 1.50, cfg.Engine.FuelPricePerLiter)
}
