package forge

// A GuardState is the state of the configuration update guard, a two state
// machine clocked by the global enable line. Configuration registers are
// writable in Idle and frozen in Locked; a write arriving while Locked is
// dropped silently, it neither takes effect later nor raises an error.
type GuardState uint8

// Guard states. GuardIdle is the reset state.
const (
	GuardIdle GuardState = iota
	GuardLocked
)

// Next returns the guard state after one clock edge with the global enable
// line at the given level. The lock tracks the enable line one for one:
// enable high locks (or keeps locked), enable low releases. Disabling is
// always honored, there is no state that ignores a released enable.
func (s GuardState) Next(enable bool) GuardState {
	if enable {
		return GuardLocked
	}
	return GuardIdle
}

// ReadyForUpdates reports whether configuration writes are accepted in this
// state. It is true exactly in GuardIdle.
func (s GuardState) ReadyForUpdates() bool { return s == GuardIdle }

func (s GuardState) String() string {
	switch s {
	case GuardIdle:
		return "Idle"
	case GuardLocked:
		return "Locked"
	}
	return "GuardState(" + string('0'+rune(s)) + ")"
}

// A Guard holds a GuardState across clock ticks. The zero value is a guard
// in GuardIdle, ready for use.
type Guard struct {
	state GuardState
}

// Step advances the guard by one clock edge and reports whether a
// configuration write sampled during this cycle was accepted. Acceptance
// depends on the state the guard was in when the cycle started, not on the
// state it transitions to: the cycle that locks the guard still accepts the
// value sampled on its edge.
func (g *Guard) Step(enable bool) (accepted bool) {
	accepted = g.state == GuardIdle
	g.state = g.state.Next(enable)
	return accepted
}

// State returns the current guard state.
func (g *Guard) State() GuardState { return g.state }

// Ready reports whether the guard currently accepts configuration writes.
func (g *Guard) Ready() bool { return g.state.ReadyForUpdates() }

// Reset returns the guard to GuardIdle. Reset is synchronous and always
// honored, locked or not.
func (g *Guard) Reset() { g.state = GuardIdle }
