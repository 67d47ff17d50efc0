package domain

import "fmt"

// OutputFormat selects how CLI results are printed.
type OutputFormat string

const (
	FormatPretty OutputFormat = "pretty"
	FormatJSON   OutputFormat = "json"
)

// ParseOutputFormat accepts "pretty", "json" or "" (pretty).
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatPretty, "":
		return FormatPretty, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected pretty|json)", s)
	}
}

// Config represents the romancalc configuration loaded from romancalc.yaml.
type Config struct {
	History HistoryConfig
	Output  OutputConfig
}

type HistoryConfig struct {
	Enabled bool
	Dir     string
}

type OutputConfig struct {
	Format OutputFormat
}

// DefaultConfig provides sane defaults if romancalc.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		History: HistoryConfig{
			Enabled: true,
			Dir:     "history",
		},
		Output: OutputConfig{Format: FormatPretty},
	}
}
