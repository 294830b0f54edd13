package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel = "logdecay"
	DefaultX0    = 1.0
	DefaultY0    = 1.0
	DefaultXEnd  = 10.0
	DefaultSteps = 1000
	DefaultTol   = 1e-6
)

type Config struct {
	Model string  `yaml:"model"`
	X0    float64 `yaml:"x0"`
	Y0    float64 `yaml:"y0"`
	XEnd  float64 `yaml:"xend"`
	Steps int     `yaml:"steps"`
	// Oracle holds the adaptive-run settings.
	Oracle OracleConfig `yaml:"oracle"`
}

type OracleConfig struct {
	Tol float64 `yaml:"tol"`
	// MaxStep caps the adaptive step; 0 defaults to the fixed grid's h so
	// the oracle never strides across the comparison grid.
	MaxStep float64 `yaml:"max_step"`
}

func Default() *Config {
	return &Config{
		Model: DefaultModel,
		X0:    DefaultX0,
		Y0:    DefaultY0,
		XEnd:  DefaultXEnd,
		Steps: DefaultSteps,
		Oracle: OracleConfig{
			Tol: DefaultTol,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
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

// H returns the fixed grid's step size.
func (c *Config) H() float64 {
	if c.Steps == 0 {
		return 0
	}
	return (c.XEnd - c.X0) / float64(c.Steps)
}
