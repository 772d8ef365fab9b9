package config

import (
	"fmt"
)

// register block sizes, fixed by the register map
const (
	controlRegs = 2
	statusRegs  = 4
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg.Bench.Ticks < 0 {
		return fmt.Errorf("bench: ticks must not be negative, got %d", cfg.Bench.Ticks)
	}
	if cfg.Bench.TraceEvery < 0 {
		return fmt.Errorf("bench: trace_every must not be negative, got %d", cfg.Bench.TraceEvery)
	}

	// bridge is opt-in
	if cfg.Bridge.Endpoint == "" {
		return nil
	}

	if cfg.Bridge.TimeoutMs < 0 {
		return fmt.Errorf("bridge: timeout_ms must not be negative, got %d", cfg.Bridge.TimeoutMs)
	}
	if cfg.Bridge.IntervalMs < 0 {
		return fmt.Errorf("bridge: interval_ms must not be negative, got %d", cfg.Bridge.IntervalMs)
	}

	// both register blocks must fit the holding register table
	if int(cfg.Bridge.ControlAddr)+controlRegs-1 > 0xffff {
		return fmt.Errorf("bridge: control block %d-%d exceeds the register table",
			cfg.Bridge.ControlAddr, int(cfg.Bridge.ControlAddr)+controlRegs-1)
	}
	if int(cfg.Bridge.StatusAddr)+statusRegs-1 > 0xffff {
		return fmt.Errorf("bridge: status block %d-%d exceeds the register table",
			cfg.Bridge.StatusAddr, int(cfg.Bridge.StatusAddr)+statusRegs-1)
	}

	// the blocks share the holding register table and must not overlap
	cStart, cEnd := int(cfg.Bridge.ControlAddr), int(cfg.Bridge.ControlAddr)+controlRegs-1
	sStart, sEnd := int(cfg.Bridge.StatusAddr), int(cfg.Bridge.StatusAddr)+statusRegs-1
	if !(cEnd < sStart || cStart > sEnd) {
		return fmt.Errorf("bridge: control block %d-%d overlaps status block %d-%d",
			cStart, cEnd, sStart, sEnd)
	}

	// loader_addr lives in the discrete input table, a separate address
	// space; no overlap to check.

	return nil
}
