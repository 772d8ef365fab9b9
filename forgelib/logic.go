// Copyright 2025 The forgehdl Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package forgelib

import (
	"strconv"

	"github.com/forgehdl/forge"
)

var notGate = forge.BlockSpec{Name: "NOT", Controls: forge.Words(pIn), Statuses: forge.Words(pOut),
	Mount: func(s *forge.Socket) []forge.Stepper {
		in, out := s.Slot(pIn), s.Slot(pOut)
		return []forge.Stepper{
			forge.StepperFn(func(b *forge.Bench) { b.Set(out, ^b.Get(in)) }),
		}
	},
}

// Not returns a bitwise NOT block. Like all logic blocks it works on whole
// words, every one of the 32 wire bits independently.
//
//	Controls: in
//	Statuses: out
//	Function: out = ^in
//
func Not(c string) forge.Block { return notGate.NewBlock(c) }

// other gates
type gate func(a, b uint32) uint32

func (g gate) mount(s *forge.Socket) []forge.Stepper {
	a, b, out := s.Slot(pA), s.Slot(pB), s.Slot(pOut)
	return []forge.Stepper{
		forge.StepperFn(func(bn *forge.Bench) { bn.Set(out, g(bn.Get(a), bn.Get(b))) }),
	}
}

func newGate(name string, fn func(a, b uint32) uint32) *forge.BlockSpec {
	return &forge.BlockSpec{
		Name:     name,
		Controls: gateIn,
		Statuses: gateOut,
		Mount:    gate(fn).mount,
	}
}

var (
	gateIn  = forge.Words("a, b")
	gateOut = forge.Words(pOut)

	and  = newGate("AND", func(a, b uint32) uint32 { return a & b })
	nand = newGate("NAND", func(a, b uint32) uint32 { return ^(a & b) })
	or   = newGate("OR", func(a, b uint32) uint32 { return a | b })
	nor  = newGate("NOR", func(a, b uint32) uint32 { return ^(a | b) })
	xor  = newGate("XOR", func(a, b uint32) uint32 { return a ^ b })
	xnor = newGate("XNOR", func(a, b uint32) uint32 { return ^(a ^ b) })
)

// And returns a bitwise AND block.
//
//	Controls: a, b
//	Statuses: out
//	Function: out = a & b
//
func And(c string) forge.Block { return and.NewBlock(c) }

// Nand returns a bitwise NAND block.
//
//	Controls: a, b
//	Statuses: out
//	Function: out = ^(a & b)
//
func Nand(c string) forge.Block { return nand.NewBlock(c) }

// Or returns a bitwise OR block.
//
//	Controls: a, b
//	Statuses: out
//	Function: out = a | b
//
func Or(c string) forge.Block { return or.NewBlock(c) }

// Nor returns a bitwise NOR block.
//
//	Controls: a, b
//	Statuses: out
//	Function: out = ^(a | b)
//
func Nor(c string) forge.Block { return nor.NewBlock(c) }

// Xor returns a bitwise XOR block.
//
//	Controls: a, b
//	Statuses: out
//	Function: out = a ^ b
//
func Xor(c string) forge.Block { return xor.NewBlock(c) }

// Xnor returns a bitwise XNOR block.
//
//	Controls: a, b
//	Statuses: out
//	Function: out = ^(a ^ b)
//
func Xnor(c string) forge.Block { return xnor.NewBlock(c) }

// OrNWay returns a N-Way OR block.
//
//	Controls: in[n]
//	Statuses: out
//	Function: out = in[0] | in[1] | ... | in[n-1]
//
func OrNWay(ways int) forge.NewBlockFn {
	return (&forge.BlockSpec{
		Name:     "OR" + strconv.Itoa(ways) + "Way",
		Controls: forge.Words(pIn + "[" + strconv.Itoa(ways) + "]"),
		Statuses: forge.Words(pOut),
		Mount: func(s *forge.Socket) []forge.Stepper {
			in, out := s.Bus(pIn), s.Slot(pOut)
			return []forge.Stepper{
				forge.StepperFn(func(b *forge.Bench) {
					var v uint32
					for _, n := range in {
						v |= b.Get(n)
					}
					b.Set(out, v)
				})}
		}}).NewBlock
}

// AndNWay returns a N-Way AND block.
//
//	Controls: in[n]
//	Statuses: out
//	Function: out = in[0] & in[1] & ... & in[n-1]
//
func AndNWay(ways int) forge.NewBlockFn {
	return (&forge.BlockSpec{
		Name:     "AND" + strconv.Itoa(ways) + "Way",
		Controls: forge.Words(pIn + "[" + strconv.Itoa(ways) + "]"),
		Statuses: forge.Words(pOut),
		Mount: func(s *forge.Socket) []forge.Stepper {
			in, out := s.Bus(pIn), s.Slot(pOut)
			return []forge.Stepper{
				forge.StepperFn(func(b *forge.Bench) {
					v := ^uint32(0)
					for _, n := range in {
						v &= b.Get(n)
					}
					b.Set(out, v)
				})}
		}}).NewBlock
}
