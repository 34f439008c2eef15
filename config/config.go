// Package config loads the bake settings used by the CLI.
package config

import (
	"fmt"
	"os"

	"github.com/voxelsplace/voxmesh/api"
	"github.com/voxelsplace/voxmesh/collide"
	"gopkg.in/yaml.v3"
)

// EnvPath names the variable consulted when Load gets an empty path.
const EnvPath = "VOXMESH_CONFIG"

type Config struct {
	Collider  collide.Detail `yaml:"collider"`
	Topology  api.Topology   `yaml:"topology"`
	Workers   int            `yaml:"workers"`
	Generator string         `yaml:"generator"`
}

func Default() *Config {
	return &Config{
		Collider:  collide.Exact,
		Topology:  api.TopologyPoints,
		Workers:   1,
		Generator: "voxmesh",
	}
}

// Load reads a YAML file over Default. An empty path falls back to
// $VOXMESH_CONFIG; if that is unset too the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return cfg, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("config %s: workers must be >= 0, got %d", path, cfg.Workers)
	}
	return cfg, nil
}

// Options maps the file settings onto api.Options.
func (c *Config) Options() api.Options {
	return api.Options{Collider: c.Collider, Workers: c.Workers}
}
