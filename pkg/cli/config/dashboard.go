package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trackboard/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Dashboard holds the dashboard layout configuration
type Dashboard struct {
	ConfigPath string
	DataDir    string
}

// Flags returns CLI flags for Dashboard configuration
func (d *Dashboard) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Dashboard layout YAML file (built-in layout if not set)",
			Category:    "Dashboard",
			Sources:     cli.EnvVars("TRACKBOARD_CONFIG"),
			Destination: &d.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "Directory of the xlsx sources (overrides data_dir of the layout)",
			Category:    "Dashboard",
			Sources:     cli.EnvVars("TRACKBOARD_DATA_DIR"),
			Destination: &d.DataDir,
		},
	}
}

// Configure returns the validated dashboard layout
func (d *Dashboard) Configure() (*model.DashboardConfig, error) {
	cfg := model.DefaultDashboardConfig()
	if d.ConfigPath != "" {
		loaded, err := LoadDashboardFromFile(d.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if d.DataDir != "" {
		cfg.DataDir = d.DataDir
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid dashboard configuration",
			goerr.V("path", d.ConfigPath))
	}

	return cfg, nil
}

// LogValue returns structured log value
func (d Dashboard) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config", d.ConfigPath),
		slog.String("data_dir", d.DataDir),
	)
}

// LoadDashboardFromFile loads a dashboard layout from YAML file. Omitted
// fields are left empty; Configure fills them with the defaults.
func LoadDashboardFromFile(path string) (*model.DashboardConfig, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required")
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	// Parse YAML
	var config model.DashboardConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration",
			goerr.V("path", path))
	}

	return &config, nil
}
