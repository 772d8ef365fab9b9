// Copyright 2025 The forgehdl Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package forge

// A CounterInput is one cycle's worth of sampled inputs to the controlled
// counter: the four enable conditions and the counter_max configuration
// value presented by the host on this cycle.
type CounterInput struct {
	ForgeReady bool
	UserEnable bool
	ClkEnable  bool
	LoaderDone bool
	Max        uint16
}

// A CounterStatus is the externally visible output of one counter cycle.
// Count is the counter value after the clock edge. Overflow is a single
// cycle pulse: it is true only on a cycle where the counter wrapped to zero
// and false again on the next cycle unless the counter wraps again.
type CounterStatus struct {
	Count    uint32
	Overflow bool
}

// A CounterState is the complete register state of the controlled counter:
// the update guard, the running count and the latched counter_max. The zero
// value is the reset state (guard idle, count zero, max zero).
//
// CounterState is a value type with a pure Step: the same state and input
// always produce the same next state and status, which makes cycle accurate
// replay and state comparison trivial. For a counter wired into a Bench see
// package forgelib.
type CounterState struct {
	Guard GuardState
	Count uint32
	Max   uint16
}

// Step computes one clock edge. It returns the state after the edge and the
// status visible on the following cycle.
//
// While the guard is idle the count is held at zero and the configuration is
// hot: the Max sampled on the cycle the enable line rises is the one that
// stays latched for the whole locked run. While locked, a released enable
// aborts the run and discards the count; otherwise the counter increments
// until Count >= Max, wraps to zero and pulses Overflow for that single
// cycle. A latched Max of zero wraps on every enabled cycle.
//
// Step never fails. Out of range configuration cannot be expressed (Max is
// uint16, matching the register field) and every input combination has a
// defined next state.
func (s CounterState) Step(in CounterInput) (CounterState, CounterStatus) {
	enable := GlobalEnable(in.ForgeReady, in.UserEnable, in.ClkEnable, in.LoaderDone)
	next := s
	next.Guard = s.Guard.Next(enable)

	var out CounterStatus
	switch s.Guard {
	case GuardIdle:
		next.Max = in.Max
		next.Count = 0
	case GuardLocked:
		switch {
		case !enable:
			// aborted run: progress is discarded, not paused
			next.Count = 0
		case s.Count >= uint32(s.Max):
			next.Count = 0
			out.Overflow = true
		default:
			next.Count = s.Count + 1
		}
	}
	out.Count = next.Count
	return next, out
}

// StateIndex returns the counter's state index as reported to the scaling
// encoder: 0 for idle, 1 for locked.
func (s CounterState) StateIndex() uint32 {
	if s.Guard == GuardLocked {
		return 1
	}
	return 0
}

// Status returns the counter's raw status word: fault clear (the counter has
// no fault source) and the low 7 bits of the count as magnitude.
func (s CounterState) Status() StatusWord {
	return MakeStatusWord(false, uint8(s.Count))
}

// ReadyForUpdates reports whether configuration written on the next cycle
// will be honored.
func (s CounterState) ReadyForUpdates() bool { return s.Guard.ReadyForUpdates() }
