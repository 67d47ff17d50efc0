package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/romancalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the name of the file that marks a workspace root.
const ConfigFile = "romancalc.yaml"

// LoadConfig loads romancalc.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("%w: %w", err, domain.ErrInvalidConfig),
		}
	}

	// Apply parsed values on top of defaults.
	if y.RomanCalc.History.Enabled != nil {
		cfg.History.Enabled = *y.RomanCalc.History.Enabled
	}
	if y.RomanCalc.History.Dir != "" {
		cfg.History.Dir = y.RomanCalc.History.Dir
	}
	if y.RomanCalc.Output.Format != "" {
		f, err := domain.ParseOutputFormat(y.RomanCalc.Output.Format)
		if err != nil {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("output.format: %v: %w", err, domain.ErrInvalidConfig),
			}
		}
		cfg.Output.Format = f
	}

	return cfg, nil
}

type yamlConfig struct {
	RomanCalc struct {
		History struct {
			Enabled *bool  `yaml:"enabled"`
			Dir     string `yaml:"dir"`
		} `yaml:"history"`

		Output struct {
			Format string `yaml:"format"`
		} `yaml:"output"`
	} `yaml:"romancalc"`
}
