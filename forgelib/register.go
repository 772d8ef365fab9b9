// Copyright 2025 The forgehdl Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package forgelib

import "github.com/forgehdl/forge"

type delay struct {
	in, out int
	v       uint32
}

func (d *delay) Step(b *forge.Bench) {
	b.Set(d.out, d.v)
	d.v = b.Get(d.in)
}

func (d *delay) Reset() { d.v = 0 }

// Delay returns a one-word delay line.
//
//	Controls: in
//	Statuses: out
//	Function: out(t) = in(t-2) // one tick behind a directly driven wire
//
func Delay(c string) forge.Block {
	return (&forge.BlockSpec{
		Name:     "DELAY",
		Controls: forge.Words(pIn),
		Statuses: forge.Words(pOut),
		Mount: func(s *forge.Socket) []forge.Stepper {
			return []forge.Stepper{&delay{in: s.Slot(pIn), out: s.Slot(pOut)}}
		}}).NewBlock(c)
}

type register struct {
	in, load, out int
	v             uint32
}

func (r *register) Step(b *forge.Bench) {
	b.Set(r.out, r.v)
	if b.Get(r.load) != 0 {
		r.v = b.Get(r.in)
	}
}

func (r *register) Reset() { r.v = 0 }

// Register returns a load-gated word register.
//
//	Controls: in, load
//	Statuses: out
//	Function: v(t) = in(t-1) if load(t-1) != 0 else v(t-1)
//	          out(t) = v(t-1)
//
func Register(c string) forge.Block {
	return (&forge.BlockSpec{
		Name:     "REG",
		Controls: forge.Words("in, load"),
		Statuses: forge.Words(pOut),
		Mount: func(s *forge.Socket) []forge.Stepper {
			return []forge.Stepper{&register{in: s.Slot(pIn), load: s.Slot(pLoad), out: s.Slot(pOut)}}
		}}).NewBlock(c)
}
