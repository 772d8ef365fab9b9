package forge

// A ControlWord is the raw 32-bit value of a control register as written by
// the host. Field layout is fixed by the register map, see DecodeControl.
type ControlWord uint32

// A ScaledCode is a signed 16-bit encoder output. Its magnitude grows
// monotonically with the state index, its sign mirrors the fault flag of the
// status word it was derived from.
type ScaledCode int16

// A StatusWord is the 8-bit raw status of a component: a fault flag in the
// high bit and a 7-bit magnitude in the low bits.
type StatusWord uint8

const statusFault StatusWord = 0x80

// MakeStatusWord assembles a status word from a fault flag and a magnitude.
// Only the low 7 bits of the magnitude are representable; higher bits are
// dropped.
func MakeStatusWord(fault bool, magnitude uint8) StatusWord {
	w := StatusWord(magnitude) &^ statusFault
	if fault {
		w |= statusFault
	}
	return w
}

// Fault reports whether the fault flag (bit 7) is set.
func (w StatusWord) Fault() bool { return w&statusFault != 0 }

// Magnitude returns the 7-bit magnitude field (bits 6:0).
func (w StatusWord) Magnitude() uint8 { return uint8(w &^ statusFault) }
