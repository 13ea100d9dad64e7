package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rgoodall/brigade/pkg/core/model"
	"github.com/rgoodall/brigade/pkg/core/scheduling"
)

// TemplateOverride customizes or adds a shift template
type TemplateOverride struct {
	Name      string `yaml:"name" validate:"required"`
	StartHour int    `yaml:"startHour" validate:"min=0,max=23"`
	EndHour   int    `yaml:"endHour" validate:"min=1,max=24"`
	Length    int    `yaml:"length,omitempty"`
	Category  string `yaml:"category,omitempty"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// RoleRatios maps role -> target fraction of floor staff
	RoleRatios map[string]float64 `yaml:"roleRatios" validate:"required"`

	// Demand is the covers-per-hour curve keyed by hour of day (9-23)
	DemandWeekday map[int]float64 `yaml:"demandWeekday"`
	DemandWeekend map[int]float64 `yaml:"demandWeekend"`

	// Seed fixes the stagger source; 0 derives it from the period start so
	// reruns of the same period stay reproducible
	Seed int64 `yaml:"seed,omitempty"`

	// Optional overrides of the built-in static tables
	ShiftTemplates  []TemplateOverride  `yaml:"shiftTemplates,omitempty" validate:"dive"`
	RoleAliases     map[string][]string `yaml:"roleAliases,omitempty"`
	RolePreferences map[string][]string `yaml:"rolePreferences,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from brigade_config.yaml
// It looks for the config file in the current directory first, then in the
// user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and the scheduling tables
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for role, ratio := range cfg.RoleRatios {
		if ratio < 0 {
			return fmt.Errorf("role ratio for %q must be non-negative, got %v", role, ratio)
		}
	}

	for name, curve := range map[string]map[int]float64{
		"demandWeekday": cfg.DemandWeekday,
		"demandWeekend": cfg.DemandWeekend,
	} {
		for hour, covers := range curve {
			if hour < 9 || hour > 23 {
				return fmt.Errorf("%s hour %d is outside operating hours 9-23", name, hour)
			}
			if covers < 0 {
				return fmt.Errorf("%s covers at hour %d must be non-negative, got %v", name, hour, covers)
			}
		}
	}

	for i, tpl := range cfg.ShiftTemplates {
		if tpl.EndHour <= tpl.StartHour {
			return fmt.Errorf("shiftTemplates[%d] (%s): endHour must be after startHour", i, tpl.Name)
		}
	}

	return nil
}

// DemandCurve builds the engine's demand curve from the config
func (c *Config) DemandCurve() model.DemandCurve {
	curve := model.DemandCurve{}
	if len(c.DemandWeekday) > 0 {
		curve[model.DayTypeWeekday] = c.DemandWeekday
	}
	if len(c.DemandWeekend) > 0 {
		curve[model.DayTypeWeekend] = c.DemandWeekend
	}
	return curve
}

// Tables builds the engine's static tables, applying any configured
// overrides on top of the defaults
func (c *Config) Tables() scheduling.Tables {
	tables := scheduling.DefaultTables()

	for _, tpl := range c.ShiftTemplates {
		length := tpl.Length
		if length == 0 {
			length = tpl.EndHour - tpl.StartHour
		}
		tables.Templates[tpl.Name] = scheduling.ShiftTemplate{
			Name:      tpl.Name,
			StartHour: tpl.StartHour,
			EndHour:   tpl.EndHour,
			Length:    length,
			Category:  tpl.Category,
		}
	}

	if len(c.RoleAliases) > 0 {
		for role, aliases := range c.RoleAliases {
			tables.RoleAliases[role] = aliases
		}
	}
	if len(c.RolePreferences) > 0 {
		for role, prefs := range c.RolePreferences {
			tables.RolePreferences[role] = prefs
		}
	}

	return tables
}

// findConfigFile searches for brigade_config.yaml in the current directory,
// then the home directory
func findConfigFile() (string, error) {
	const configName = "brigade_config.yaml"

	if _, err := os.Stat(configName); err == nil {
		return configName, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(home, configName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", configName)
}
