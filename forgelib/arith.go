// Copyright 2025 The forgehdl Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package forgelib

import "github.com/forgehdl/forge"

var adder = &forge.BlockSpec{
	Name:     "ADD",
	Controls: forge.Words("a, b"),
	Statuses: forge.Words(pOut),
	Mount: func(s *forge.Socket) []forge.Stepper {
		a, b, out := s.Slot(pA), s.Slot(pB), s.Slot(pOut)
		return []forge.Stepper{
			forge.StepperFn(func(bn *forge.Bench) {
				bn.Set(out, bn.Get(a)+bn.Get(b))
			})}
	}}

// Add returns a word adder. The sum wraps at 32 bits, there is no carry
// status.
//
//	Controls: a, b
//	Statuses: out
//	Function: out = a + b
//
func Add(c string) forge.Block {
	return adder.NewBlock(c)
}

var incer = &forge.BlockSpec{
	Name:     "INC",
	Controls: forge.Words(pIn),
	Statuses: forge.Words(pOut),
	Mount: func(s *forge.Socket) []forge.Stepper {
		in, out := s.Slot(pIn), s.Slot(pOut)
		return []forge.Stepper{
			forge.StepperFn(func(bn *forge.Bench) {
				bn.Set(out, bn.Get(in)+1)
			})}
	}}

// Inc returns a word incrementer, wrapping at 32 bits.
//
//	Controls: in
//	Statuses: out
//	Function: out = in + 1
//
func Inc(c string) forge.Block {
	return incer.NewBlock(c)
}
