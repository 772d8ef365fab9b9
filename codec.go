// Copyright 2025 The forgehdl Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package forge

// Control0 field positions. The layout is a frozen interop contract between
// the host driver and the logic: enable flags pack into the top bits,
// counter_max into the low half word, bits 28:16 are reserved.
const (
	CtlForgeReady ControlWord = 1 << 31
	CtlUserEnable ControlWord = 1 << 30
	CtlClkEnable  ControlWord = 1 << 29

	ctlMaxMask ControlWord = 0x0000ffff
)

// StsOverflow is the overflow pulse bit of the Status1 register. All other
// Status1 bits read as zero.
const StsOverflow uint32 = 1 << 0

// ControlFields is the decoded form of the Control0 register.
type ControlFields struct {
	ForgeReady bool
	UserEnable bool
	ClkEnable  bool
	CounterMax uint16
}

// DecodeControl unpacks a Control0 register value. Reserved bits 28:16 are
// ignored: any value a host leaves there decodes identically to zero, so
// drivers that write garbage into the reserved field stay compatible.
func DecodeControl(w ControlWord) ControlFields {
	return ControlFields{
		ForgeReady: w&CtlForgeReady != 0,
		UserEnable: w&CtlUserEnable != 0,
		ClkEnable:  w&CtlClkEnable != 0,
		CounterMax: uint16(w & ctlMaxMask),
	}
}

// Encode packs the fields back into a Control0 register value with the
// reserved bits zero. DecodeControl(f.Encode()) == f for any f.
func (f ControlFields) Encode() ControlWord {
	var w ControlWord
	if f.ForgeReady {
		w |= CtlForgeReady
	}
	if f.UserEnable {
		w |= CtlUserEnable
	}
	if f.ClkEnable {
		w |= CtlClkEnable
	}
	return w | ControlWord(f.CounterMax)
}

// EncodeCounterStatus packs a counter status into the two status registers:
// Status0 is the full 32-bit count, Status1 carries the overflow pulse in
// bit 0 and zeroes elsewhere.
func EncodeCounterStatus(st CounterStatus) (status0, status1 uint32) {
	status0 = st.Count
	if st.Overflow {
		status1 = StsOverflow
	}
	return status0, status1
}

// DecodeCounterStatus unpacks the two status registers. Bits 31:1 of
// Status1 are ignored.
func DecodeCounterStatus(status0, status1 uint32) CounterStatus {
	return CounterStatus{
		Count:    status0,
		Overflow: status1&StsOverflow != 0,
	}
}

// Observation word layout. The observation wire carries everything the
// scaling encoder needs from a component in one word: ready_for_updates in
// bit 16, the state index in bits 15:8 and the raw status word in bits 7:0.
// It is an internal wire format, not part of the host register map.
const (
	obsReady      uint32 = 1 << 16
	obsStateShift        = 8
	obsStateMask  uint32 = 0xff << obsStateShift
)

// EncodeObservation packs a component observation into a wire word. Only the
// low 8 bits of the state index are representable, which covers every FORGE
// component in circulation.
func EncodeObservation(ready bool, state uint32, status StatusWord) uint32 {
	w := state<<obsStateShift&obsStateMask | uint32(status)
	if ready {
		w |= obsReady
	}
	return w
}

// DecodeObservation unpacks an observation wire word.
func DecodeObservation(w uint32) (ready bool, state uint32, status StatusWord) {
	return w&obsReady != 0, (w & obsStateMask) >> obsStateShift, StatusWord(w)
}
