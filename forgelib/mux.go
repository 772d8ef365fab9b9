// Copyright 2025 The forgehdl Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package forgelib

import "github.com/forgehdl/forge"

// Mux returns a word multiplexer. Unlike the logic blocks, sel is read as a
// whole: any non-zero value selects b.
//
//	Controls: a, b, sel
//	Statuses: out
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(c string) forge.Block { return mux.NewBlock(c) }

var mux = forge.BlockSpec{
	Name:     "MUX",
	Controls: forge.Words("a, b, sel"),
	Statuses: forge.Words(pOut),
	Mount: func(s *forge.Socket) []forge.Stepper {
		a, b, sel, out := s.Slot(pA), s.Slot(pB), s.Slot(pSel), s.Slot(pOut)
		return []forge.Stepper{forge.StepperFn(func(bn *forge.Bench) {
			if bn.Get(sel) != 0 {
				bn.Set(out, bn.Get(b))
			} else {
				bn.Set(out, bn.Get(a))
			}
		})}
	},
}

// DMux returns a word demultiplexer.
//
//	Controls: in, sel
//	Statuses: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(c string) forge.Block { return dmux.NewBlock(c) }

var dmux = forge.BlockSpec{
	Name:     "DMUX",
	Controls: forge.Words("in, sel"),
	Statuses: forge.Words("a, b"),
	Mount: func(s *forge.Socket) []forge.Stepper {
		in, sel, a, b := s.Slot(pIn), s.Slot(pSel), s.Slot(pA), s.Slot(pB)
		return []forge.Stepper{forge.StepperFn(func(bn *forge.Bench) {
			if bn.Get(sel) != 0 {
				bn.Set(a, 0)
				bn.Set(b, bn.Get(in))
			} else {
				bn.Set(a, bn.Get(in))
				bn.Set(b, 0)
			}
		})}
	},
}
