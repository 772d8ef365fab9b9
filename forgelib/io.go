// Copyright 2025 The forgehdl Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package forgelib

import (
	"github.com/forgehdl/forge"
)

// Input creates a function based input.
//
//	Statuses: out
//	Function: out = f()
//
func Input(f func() uint32) forge.NewBlockFn {
	p := &forge.BlockSpec{
		Name:     "Input",
		Statuses: forge.Words(pOut),
		Mount: func(s *forge.Socket) []forge.Stepper {
			out := s.Slot(pOut)
			return []forge.Stepper{forge.StepperFn(func(b *forge.Bench) {
				b.Set(out, f())
			})}
		},
	}
	return p.NewBlock
}

// Output creates an output or probe. The f function is called with the
// sampled word on every tick.
//
//	Controls: in
//	Function: f(in)
//
func Output(f func(uint32)) forge.NewBlockFn {
	p := &forge.BlockSpec{
		Name:     "Output",
		Controls: forge.Words(pIn),
		Mount: func(s *forge.Socket) []forge.Stepper {
			in := s.Slot(pIn)
			return []forge.Stepper{forge.StepperFn(func(b *forge.Bench) {
				f(b.Get(in))
			})}
		},
	}
	return p.NewBlock
}

// Const creates a constant word source. For a zero constant, connect the
// control word to the zero wire instead.
//
//	Statuses: out
//	Function: out = v
//
func Const(v uint32) forge.NewBlockFn {
	p := &forge.BlockSpec{
		Name:     "Const",
		Statuses: forge.Words(pOut),
		Mount: func(s *forge.Socket) []forge.Stepper {
			out := s.Slot(pOut)
			return []forge.Stepper{forge.StepperFn(func(b *forge.Bench) {
				b.Set(out, v)
			})}
		},
	}
	return p.NewBlock
}
