package domain

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.History.Enabled {
		t.Fatalf("expected history enabled by default")
	}
	if cfg.History.Dir != "history" {
		t.Fatalf("expected history dir=history, got %q", cfg.History.Dir)
	}
	if cfg.Output.Format != FormatPretty {
		t.Fatalf("expected pretty output, got %q", cfg.Output.Format)
	}
}

func TestParseOutputFormat(t *testing.T) {
	cases := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", FormatPretty, false},
		{"pretty", FormatPretty, false},
		{"json", FormatJSON, false},
		{"xml", "", true},
	}
	for _, c := range cases {
		got, err := ParseOutputFormat(c.in)
		if c.wantErr {
			if err == nil || !strings.Contains(err.Error(), c.in) {
				t.Errorf("ParseOutputFormat(%q): expected error mentioning input, got %v", c.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseOutputFormat(%q): unexpected error %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseOutputFormat(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
