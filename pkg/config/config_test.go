package config_test

import (
	"testing"

	"github.com/brianbland/statcharts/pkg/config"
	"github.com/brianbland/statcharts/pkg/surface"
)

func TestParseDefaults(t *testing.T) {
	parser := config.NewParser()
	cfg, err := parser.Parse(nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Width != 1200 || cfg.Height != 800 {
		t.Errorf("Unexpected default canvas: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Format != "png" {
		t.Errorf("Unexpected default format: %s", cfg.Format)
	}
	if cfg.Seed != 42 {
		t.Errorf("Unexpected default seed: %d", cfg.Seed)
	}
}

func TestParseOverrides(t *testing.T) {
	parser := config.NewParser()
	cfg, err := parser.Parse([]string{"-width=800", "-height=600", "-format=both", "-best-fit", "-seed=7"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("Unexpected canvas: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Format != "both" {
		t.Errorf("Unexpected format: %s", cfg.Format)
	}
	if !cfg.BestFitLines {
		t.Error("Expected best-fit lines enabled")
	}
	if cfg.Seed != 7 {
		t.Errorf("Unexpected seed: %d", cfg.Seed)
	}
}

func TestParseRejectsInvalidFormat(t *testing.T) {
	parser := config.NewParser()
	if _, err := parser.Parse([]string{"-format=xml"}); err == nil {
		t.Error("Expected error for invalid format")
	}
}

func TestParseRejectsNonPositiveCanvas(t *testing.T) {
	parser := config.NewParser()
	if _, err := parser.Parse([]string{"-width=0"}); err == nil {
		t.Error("Expected error for zero width")
	}
}

func TestChartValidate(t *testing.T) {
	cfg := config.DefaultChart()
	cfg.Width = 400
	cfg.Height = 300
	if err := cfg.Validate(); err != nil {
		t.Errorf("Valid chart config rejected: %v", err)
	}

	bad := cfg
	bad.GraphSize = 1.5
	if err := bad.Validate(); err == nil {
		t.Error("Expected error for graph size above 1")
	}

	bad = cfg
	bad.MarkerDensity = 0
	if err := bad.Validate(); err == nil {
		t.Error("Expected error for zero marker density")
	}

	bad = cfg
	bad.BorderWidth = -1
	if err := bad.Validate(); err == nil {
		t.Error("Expected error for negative border width")
	}
}

func TestChartColorDefaults(t *testing.T) {
	cfg := config.DefaultChart()

	// White background complements to black for axes and text.
	if got := cfg.PrimaryColor(); got != (surface.Color{}) {
		t.Errorf("Expected black primary, got %+v", got)
	}
	if got := cfg.BorderColor(); got != cfg.PrimaryColor() {
		t.Errorf("Expected border to follow primary, got %+v", got)
	}

	red := surface.Color{R: 200}
	cfg.Primary = &red
	if got := cfg.PrimaryColor(); got != red {
		t.Errorf("Expected explicit primary, got %+v", got)
	}
	if got := cfg.BorderColor(); got != red {
		t.Errorf("Expected border to follow explicit primary, got %+v", got)
	}
}
