package manifold

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Config holds the simulation settings shared by the tracker and the backend.
type Config struct {
	Gravity       [3]float64 `yaml:"gravity"`
	MaxSubSteps   int        `yaml:"max_sub_steps"`
	FixedTimeStep float64    `yaml:"fixed_time_step"`
	CellSize      float64    `yaml:"cell_size"`
	Cells         int        `yaml:"cells"`
	Workers       int        `yaml:"workers"`
}

func DefaultConfig() Config {
	return Config{
		Gravity:       [3]float64{0, -9.81, 0},
		MaxSubSteps:   4,
		FixedTimeStep: 1.0 / 60.0,
		CellSize:      4,
		Cells:         1024,
		Workers:       1,
	}
}

// LoadConfig reads a YAML configuration file. Missing fields keep their
// default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.MaxSubSteps < 1 {
		return fmt.Errorf("max_sub_steps must be at least 1, got %d", c.MaxSubSteps)
	}
	if c.FixedTimeStep <= 0 {
		return fmt.Errorf("fixed_time_step must be positive, got %g", c.FixedTimeStep)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell_size must be positive, got %g", c.CellSize)
	}
	if c.Cells < 1 {
		return fmt.Errorf("cells must be at least 1, got %d", c.Cells)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}

	return nil
}

func (c Config) GravityVec() mgl64.Vec3 {
	return mgl64.Vec3{c.Gravity[0], c.Gravity[1], c.Gravity[2]}
}
