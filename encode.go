// Copyright 2025 The forgehdl Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package forge

// Scaling law constants. These are dimensionless platform constants, not
// tunables: every FORGE revision computes codes from the same law.
const (
	// BaseUnit is the code contribution of one state index step.
	BaseUnit = 200
	// ScaleNum and ScaleDen scale the status magnitude contribution.
	// The division truncates: 127 * ScaleNum / ScaleDen = 99.
	ScaleNum = 100
	ScaleDen = 128
)

// ScaledCode bounds. Results beyond CodeMax clamp to it; CodeMin is the
// clamped negative bound. -32768 is never produced, so the negated code of
// any valid positive code is itself valid.
const (
	CodeMax ScaledCode = 32767
	CodeMin ScaledCode = -32767
)

// EncodeState computes the scaled code for a state index and a raw status
// word:
//
//	code = BaseUnit*state + Magnitude(status)*ScaleNum/ScaleDen
//
// using integer arithmetic throughout, with the division truncating toward
// zero. A set fault flag flips the sign of the final code and nothing else;
// encode(s, w) == -encode(s, w&^0x80) whenever the fault bit of w is set.
// A magnitude of zero in a faulted word still yields BaseUnit*state with the
// sign flipped, which is 0 for state 0.
//
// EncodeState is a pure function of its arguments. The same (state, status)
// pair always yields the same code.
func EncodeState(state uint32, status StatusWord) ScaledCode {
	m := int64(BaseUnit)*int64(state) + int64(status.Magnitude())*ScaleNum/ScaleDen
	if m > int64(CodeMax) {
		m = int64(CodeMax)
	}
	if status.Fault() {
		m = -m
	}
	return ScaledCode(m)
}
