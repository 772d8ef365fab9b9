package config

// Defaults applied by Normalize.
const (
	DefaultTicks      = 32
	DefaultTraceEvery = 1
	DefaultTimeoutMs  = 500
	DefaultIntervalMs = 100
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Bench.Ticks == 0 {
		cfg.Bench.Ticks = DefaultTicks
	}
	if cfg.Bench.TraceEvery == 0 {
		cfg.Bench.TraceEvery = DefaultTraceEvery
	}

	// Skip the bridge section when not opted in.
	if cfg.Bridge.Endpoint == "" {
		return
	}

	if cfg.Bridge.TimeoutMs == 0 {
		cfg.Bridge.TimeoutMs = DefaultTimeoutMs
	}
	if cfg.Bridge.IntervalMs == 0 {
		cfg.Bridge.IntervalMs = DefaultIntervalMs
	}
}
