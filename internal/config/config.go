package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Bench  BenchConfig  `yaml:"bench"`
	Bridge BridgeConfig `yaml:"bridge"`
}

// ---- BENCH ----

type BenchConfig struct {
	Ticks      int    `yaml:"ticks"`
	Control    uint32 `yaml:"control"`
	LoaderDone bool   `yaml:"loader_done"`
	TraceEvery int    `yaml:"trace_every"`
}

// ---- BRIDGE ----

// The bridge section is opt-in: an empty endpoint disables it and the
// remaining bridge fields are ignored.
type BridgeConfig struct {
	Endpoint   string `yaml:"endpoint"`
	UnitID     uint8  `yaml:"unit_id"`
	TimeoutMs  int    `yaml:"timeout_ms"`
	IntervalMs int    `yaml:"interval_ms"`

	// Register geometry. Control0 occupies two holding registers at
	// control_addr, the status block four at status_addr.
	ControlAddr uint16  `yaml:"control_addr"`
	StatusAddr  uint16  `yaml:"status_addr"`
	LoaderAddr  *uint16 `yaml:"loader_addr"` // discrete input (optional, opt-in)
}

// Load reads and parses a configuration file. It does not validate; call
// Validate, then Normalize, on the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config load")
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.Wrap(err, "config parse")
	}
	return cfg, nil
}
