// Copyright 2025 The forgehdl Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package forgelib

import (
	"github.com/forgehdl/forge"
)

var observerSpec = &forge.BlockSpec{
	Name:     "Observer",
	Controls: forge.Words(pObs),
	Statuses: forge.Words(pCode),
	Mount: func(s *forge.Socket) []forge.Stepper {
		obs, code := s.Slot(pObs), s.Slot(pCode)
		return []forge.Stepper{forge.StepperFn(func(b *forge.Bench) {
			_, state, status := forge.DecodeObservation(b.Get(obs))
			b.Set(code, uint32(int32(forge.EncodeState(state, status))))
		})}
	}}

// Observer returns a scaling encoder block. It decodes the observation word
// of a component and re-encodes it as a scaled code, one observation per
// tick.
//
//	Controls: obs
//	Statuses: code
//
// The code word is the signed 16-bit scaled code sign extended to 32 bits;
// read it back with int32(w).
//
func Observer(c string) forge.Block { return observerSpec.NewBlock(c) }
