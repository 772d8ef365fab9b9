// Copyright 2025 The forgehdl Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package forgelib provides a library of ready-made FORGE blocks for forge
// benches.
//
// Copyright 2025 The forgehdl Authors.
//
// This package is licensed under the MIT license. See license text in the LICENSE file.
//
package forgelib

import (
	"github.com/forgehdl/forge"
)

// common word names
const (
	pCtl  = "ctl"
	pLdr  = "ldr"
	pSts  = "sts"
	pObs  = "obs"
	pRdy  = "rdy"
	pCode = "code"
	pIn   = "in"
	pOut  = "out"
	pA    = "a"
	pB    = "b"
	pSel  = "sel"
	pLoad = "load"
)

type counter struct {
	ctl, ldr int
	sts      []int
	obs, rdy int
	state    forge.CounterState
}

func (c *counter) Reset() { c.state = forge.CounterState{} }

func (c *counter) Step(b *forge.Bench) {
	f := forge.DecodeControl(forge.ControlWord(b.Get(c.ctl)))
	next, out := c.state.Step(forge.CounterInput{
		ForgeReady: f.ForgeReady,
		UserEnable: f.UserEnable,
		ClkEnable:  f.ClkEnable,
		LoaderDone: b.Get(c.ldr)&1 != 0,
		Max:        f.CounterMax,
	})
	c.state = next
	s0, s1 := forge.EncodeCounterStatus(out)
	b.Set(c.sts[0], s0)
	b.Set(c.sts[1], s1)
	b.Set(c.obs, forge.EncodeObservation(next.ReadyForUpdates(), next.StateIndex(), next.Status()))
	b.Set(c.rdy, boolWord(next.ReadyForUpdates()))
}

var counterSpec = &forge.BlockSpec{
	Name:     "Counter",
	Controls: forge.Words("ctl, ldr"),
	Statuses: forge.Words("sts[2], obs, rdy"),
	Mount: func(s *forge.Socket) []forge.Stepper {
		return []forge.Stepper{&counter{
			ctl: s.Slot(pCtl),
			ldr: s.Slot(pLdr),
			sts: s.Bus(pSts),
			obs: s.Slot(pObs),
			rdy: s.Slot(pRdy),
		}}
	}}

// Counter returns a controlled counter block. The ctl word uses the Control0
// register layout (see forge.DecodeControl); only bit 0 of ldr is read.
//
//	Controls: ctl, ldr
//	Statuses: sts[0] (counter value), sts[1] (overflow pulse in bit 0),
//	          obs (observation word for Observer), rdy (ready_for_updates in bit 0)
//
// All statuses reflect the state after the tick's clock edge: on the tick
// after a wrap, sts[0] reads 0 and sts[1] pulses, together.
//
func Counter(c string) forge.Block { return counterSpec.NewBlock(c) }

func boolWord(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}
