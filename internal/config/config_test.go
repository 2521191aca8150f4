package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Plot.FreqMin <= 0 {
		t.Error("freq_min should be positive")
	}
	if cfg.Plot.FreqMax <= cfg.Plot.FreqMin {
		t.Error("freq_max should exceed freq_min")
	}
	if cfg.Plot.Samples < 2 {
		t.Error("samples should be at least 2")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")

	cfg := DefaultConfig()
	cfg.Numerator = []float64{3, 4, 1}
	cfg.Denominator = []float64{0, 2, 1}
	cfg.RenderCmd = "python network.py"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(loaded.Numerator) != 3 || loaded.Numerator[1] != 4 {
		t.Errorf("expected numerator [3 4 1], got %v", loaded.Numerator)
	}
	if len(loaded.Denominator) != 3 {
		t.Errorf("expected 3 denominator coefficients, got %v", loaded.Denominator)
	}
	if loaded.RenderCmd != "python network.py" {
		t.Errorf("expected render cmd preserved, got %q", loaded.RenderCmd)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	data := []byte("numerator: [1, 1]\ndenominator: [0, 1]\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Plot.Samples != DefaultSamples {
		t.Errorf("expected default samples %d, got %d", DefaultSamples, cfg.Plot.Samples)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing coefficients")
	}

	cfg.Numerator = []float64{1, 1}
	cfg.Denominator = []float64{0, 1}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	cfg.Plot.FreqMax = cfg.Plot.FreqMin
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty frequency range")
	}
}
