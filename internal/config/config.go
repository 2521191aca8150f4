package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFreqMin = 0.01
	DefaultFreqMax = 100.0
	DefaultSamples = 120
	DefaultWidth   = 80
	DefaultHeight  = 12
)

type Config struct {
	Numerator   []float64  `yaml:"numerator"`
	Denominator []float64  `yaml:"denominator"`
	RenderCmd   string     `yaml:"render_cmd"`
	Plot        PlotConfig `yaml:"plot"`
}

type PlotConfig struct {
	FreqMin float64 `yaml:"freq_min"`
	FreqMax float64 `yaml:"freq_max"`
	Samples int     `yaml:"samples"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Plot: PlotConfig{
			FreqMin: DefaultFreqMin,
			FreqMax: DefaultFreqMax,
			Samples: DefaultSamples,
			Width:   DefaultWidth,
			Height:  DefaultHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that both coefficient lists are present. Coefficients are
// ascending-power, so a declared degree n means n+1 entries; an empty list
// has no degree to declare and is rejected here rather than deep in the
// synthesis pipeline.
func (c *Config) Validate() error {
	if len(c.Numerator) == 0 {
		return fmt.Errorf("config: numerator coefficients missing")
	}
	if len(c.Denominator) == 0 {
		return fmt.Errorf("config: denominator coefficients missing")
	}
	if c.Plot.Samples < 2 {
		return fmt.Errorf("config: plot samples must be at least 2")
	}
	if c.Plot.FreqMin <= 0 || c.Plot.FreqMax <= c.Plot.FreqMin {
		return fmt.Errorf("config: plot frequency range must satisfy 0 < min < max")
	}
	return nil
}
