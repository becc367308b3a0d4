package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	trend "github.com/aouyang1/go-trend"
	"gopkg.in/yaml.v3"
)

var ErrNegativePeriods = errors.New("periods must not be negative")

// DefaultValues is the sample series fit when no values are supplied.
var DefaultValues = []float64{2.0, 3.0, 5.0, 7.0, 11.0}

// Config describes a fit run. It can be loaded from a YAML file and is overridden by command line
// flags.
type Config struct {
	Values  []float64 `yaml:"values"`
	Index   []float64 `yaml:"index,omitempty"`
	Periods int       `yaml:"periods"`
	Solver  string    `yaml:"solver"`
	Plot    string    `yaml:"plot,omitempty"`
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads a YAML config file, filling in defaults for any missing fields.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Periods < 0 {
		return nil, fmt.Errorf("got %d periods, %w", cfg.Periods, ErrNegativePeriods)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.Values) == 0 {
		c.Values = append([]float64(nil), DefaultValues...)
	}
	if c.Periods == 0 {
		c.Periods = trend.DefaultHorizonCnt
	}
	if c.Solver == "" {
		c.Solver = string(trend.SolverClosedForm)
	}
}

// Options converts the config into trend options.
func (c *Config) Options() *trend.Options {
	return &trend.Options{
		Solver:     trend.Solver(c.Solver),
		HorizonCnt: c.Periods,
	}
}
