package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		DatabaseURL: "postgres://localhost:5432/brigade",
		RoleRatios:  map[string]float64{"Server": 0.5, "Cook": 0.3},
		DemandWeekday: map[int]float64{
			12: 40, 13: 35, 18: 60, 19: 65,
		},
		DemandWeekend: map[int]float64{
			12: 60, 13: 55, 18: 90, 19: 95,
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidate_MissingDatabaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseURL = ""

	assert.Error(t, Validate(cfg))
}

func TestValidate_NegativeRatio(t *testing.T) {
	cfg := validConfig()
	cfg.RoleRatios["Server"] = -0.1

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestValidate_DemandOutsideOperatingHours(t *testing.T) {
	cfg := validConfig()
	cfg.DemandWeekday[3] = 10

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operating hours")
}

func TestValidate_TemplateOverrideBackwards(t *testing.T) {
	cfg := validConfig()
	cfg.ShiftTemplates = []TemplateOverride{
		{Name: "brunch", StartHour: 14, EndHour: 10},
	}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endHour")
}

func TestTables_OverridesApplyOnTopOfDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.ShiftTemplates = []TemplateOverride{
		{Name: "brunch", StartHour: 10, EndHour: 14, Category: "midday"},
	}
	cfg.RoleAliases = map[string][]string{
		"Server": {"Server", "Sommelier"},
	}

	tables := cfg.Tables()

	brunch, ok := tables.Templates["brunch"]
	require.True(t, ok)
	assert.Equal(t, 4, brunch.Length) // derived from window
	// Default templates survive alongside overrides
	assert.Contains(t, tables.Templates, "lunch")
	assert.Equal(t, "Server", tables.RoleForPosition("Sommelier"))
}

func TestLoadFromPath_RoundTrip(t *testing.T) {
	content := `
databaseURL: postgres://localhost:5432/brigade
roleRatios:
  Server: 0.5
  Cook: 0.3
demandWeekday:
  12: 40
  18: 60
demandWeekend:
  12: 70
  19: 95
seed: 7
`
	dir := t.TempDir()
	path := filepath.Join(dir, "brigade_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 0.5, cfg.RoleRatios["Server"])

	curve := cfg.DemandCurve()
	assert.Equal(t, 40.0, curve["weekday"][12])
	assert.Equal(t, 95.0, curve["weekend"][19])
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
