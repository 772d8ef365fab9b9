// Copyright 2025 The forgehdl Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package forge

import "github.com/pkg/errors"

// A Stepper is a mounted block instance within a Bench. On every clock tick
// the bench calls Step exactly once: the stepper reads its control words
// from the current frame via Bench.Get, computes one clock edge and writes
// all of its status words into the next frame via Bench.Set. Reset returns
// the stepper to its power-on state.
//
// Step must write every status word it owns on every tick, enabled or not,
// and must not retain the *Bench across calls.
type Stepper interface {
	Step(b *Bench)
	Reset()
}

// StepperFn adapts a plain update function to the Stepper interface with a
// no-op Reset. It fits combinational blocks, whose outputs depend on the
// current frame only.
type StepperFn func(b *Bench)

// Step calls f.
func (f StepperFn) Step(b *Bench) { f(b) }

// Reset implements Stepper. Combinational blocks hold no state.
func (f StepperFn) Reset() {}

// A MountFn mounts a block into socket s. MountFn's should query the socket
// for assigned word slots and return steppers closed over these slots.
//
// For example, a block forwarding its input verbatim can be defined like
// this:
//
//	repeat := &BlockSpec{
//		Name:     "Repeat",
//		Controls: Words("in"),
//		Statuses: Words("out"),
//		Mount: func(s *Socket) []Stepper {
//			in, out := s.Slot("in"), s.Slot("out")
//			return []Stepper{
//				StepperFn(func(b *Bench) { b.Set(out, b.Get(in)) }),
//			}
//		}}
type MountFn func(s *Socket) []Stepper

// A BlockSpec wraps a block specification (its blueprint).
//
// Custom blocks are implemented by creating a BlockSpec:
//
//	repeatSpec := &forge.BlockSpec{
//		Name:     "Repeat",
//		Controls: forge.Words("in"),
//		Statuses: forge.Words("out"),
//		Mount: func(s *forge.Socket) []forge.Stepper {
//			in, out := s.Slot("in"), s.Slot("out")
//			return []forge.Stepper{
//				forge.StepperFn(func(b *forge.Bench) { b.Set(out, b.Get(in)) }),
//			}
//		}}
//
// Then get a NewBlockFn for that BlockSpec:
//
//	var repeat = repeatSpec.NewBlock
//
// or:
//
//	func Repeat(c string) forge.Block { return repeatSpec.NewBlock(c) }
//
// which can then be handed to NewBench alongside other blocks:
//
//	b, _ := forge.NewBench(
//		repeat("in=host, out=echo"),
//		...
//	)
type BlockSpec struct {
	// Block name, used in wiring error messages.
	Name string
	// Control (input) word names. Must be distinct. Use the Words()
	// function to expand a description like "ctl, sts[2]" to
	// []string{"ctl", "sts[0]", "sts[1]"}.
	Controls []string
	// Status (output) word names. Must be distinct from each other and
	// from the control names. Expand with Words() as well.
	Statuses []string

	// Mount function (see MountFn).
	Mount MountFn
}

// NewBlock wraps the spec with the given connections into a Block. It panics
// if the connection string is malformed or names a word absent from the
// spec; connection strings are blueprint constants, getting one wrong is a
// programming error.
func (p *BlockSpec) NewBlock(connections string) Block {
	cs, err := parseConnections(connections)
	if err != nil {
		panic(err)
	}
	known := make(map[string]bool, len(p.Controls)+len(p.Statuses))
	for _, w := range p.Controls {
		known[w] = true
	}
	for _, w := range p.Statuses {
		known[w] = true
	}
	for _, c := range cs {
		if !known[c.block] {
			panic(errors.Errorf("block %s has no word named %s", p.Name, c.block))
		}
	}
	return Block{p, cs}
}

// A NewBlockFn is a function that takes a connection configuration and
// returns a new Block. See parseConnections for the configuration string
// syntax.
type NewBlockFn func(connections string) Block

// A Block wraps a block specification together with its wiring within a
// bench.
type Block struct {
	*BlockSpec
	conns []conn
}
