// Copyright 2025 The forgehdl Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package bridge couples a Modbus endpoint to a bench hosted counter: every
// cycle it polls the control registers, runs one bench tick and writes the
// status registers back.
package bridge

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/forgehdl/forge"
	"github.com/forgehdl/forge/forgelib"
)

// A Bridge owns one bench and one endpoint. Control writes take effect over
// the following cycles as they cross the input, counter and register stages;
// hosts polling the status block see the reaction a few cycles after their
// write, never a partially applied one.
type Bridge struct {
	geo    Geometry
	client Client
	bench  *forge.Bench

	control uint32
	loader  bool
	status  [2]uint32
	rdy     uint32
	code    uint32
}

// New builds the bridge's bench: host inputs, the controller assembly and
// register probes.
func New(client Client, geo Geometry) (*Bridge, error) {
	br := &Bridge{
		geo:    geo,
		client: client,
		loader: geo.LoaderAddr == nil,
	}
	b, err := forge.NewBench(
		forgelib.Input(func() uint32 { return br.control })("out=ctl"),
		forgelib.Input(func() uint32 {
			if br.loader {
				return 1
			}
			return 0
		})("out=ldr"),
		forgelib.Controller("ctl=ctl, ldr=ldr, sts[0..1]=sts[0..1], rdy=rdy, code=code"),
		forgelib.Output(func(w uint32) { br.status[0] = w })("in=sts[0]"),
		forgelib.Output(func(w uint32) { br.status[1] = w })("in=sts[1]"),
		forgelib.Output(func(w uint32) { br.rdy = w })("in=rdy"),
		forgelib.Output(func(w uint32) { br.code = w })("in=code"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "bridge bench")
	}
	br.bench = b
	return br, nil
}

// RunOnce runs a single bridge cycle: poll the control block (and the
// loader input when configured), tick the bench once, write the status
// block. On a poll error the bench is not ticked and nothing is written;
// the cycle is simply lost, like a dropped bus transaction.
func (br *Bridge) RunOnce() error {
	regs, err := br.client.ReadHoldingRegisters(br.geo.ControlAddr, ControlRegs)
	if err != nil {
		return errors.Wrap(err, "read control")
	}
	if len(regs) < ControlRegs {
		return errors.Errorf("short control read: %d registers", len(regs))
	}
	br.control = joinWord(regs[0], regs[1])

	if br.geo.LoaderAddr != nil {
		bits, err := br.client.ReadDiscreteInputs(*br.geo.LoaderAddr, 1)
		if err != nil {
			return errors.Wrap(err, "read loader")
		}
		br.loader = len(bits) > 0 && bits[0]
	}

	br.bench.Tick()

	out := make([]uint16, 0, StatusRegs)
	for _, w := range br.status {
		hi, lo := splitWord(w)
		out = append(out, hi, lo)
	}
	if err := br.client.WriteMultipleRegisters(br.geo.StatusAddr, out); err != nil {
		return errors.Wrap(err, "write status")
	}
	return nil
}

// Run cycles at the given interval until ctx is done and returns ctx.Err().
// Cycle errors do not stop the loop; they are handed to report, which may
// be nil.
func (br *Bridge) Run(ctx context.Context, interval time.Duration, report func(error)) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := br.RunOnce(); err != nil && report != nil {
				report(err)
			}
		}
	}
}

// Count returns Status0 as of the last cycle.
func (br *Bridge) Count() uint32 { return br.status[0] }

// Overflow reports whether the overflow pulse was up on the last cycle.
func (br *Bridge) Overflow() bool { return br.status[1]&forge.StsOverflow != 0 }

// Ready reports whether the counter accepted configuration on the last
// cycle.
func (br *Bridge) Ready() bool { return br.rdy&1 != 0 }

// Code returns the scaled code as of the last cycle.
func (br *Bridge) Code() forge.ScaledCode { return forge.ScaledCode(int32(br.code)) }

// Ticks returns the number of bench ticks run so far.
func (br *Bridge) Ticks() uint64 { return br.bench.Ticks() }

func splitWord(w uint32) (hi, lo uint16) {
	return uint16(w >> 16), uint16(w)
}

func joinWord(hi, lo uint16) uint32 {
	return uint32(hi)<<16 | uint32(lo)
}
