// Copyright 2025 The forgehdl Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package forgelib

import "github.com/forgehdl/forge"

var newController = mustController()

func mustController() forge.NewBlockFn {
	fn, err := forge.Compose("Controller", "ctl, ldr", "sts[2], rdy, code",
		Counter("ctl=ctl, ldr=ldr, sts[0..1]=sts[0..1], obs=obs, rdy=rdy"),
		Observer("obs=obs, code=code"),
	)
	if err != nil {
		panic(err)
	}
	return fn
}

// Controller returns the standard counter assembly: a Counter with an
// Observer attached to its observation word. The obs word stays internal to
// the composite.
//
//	Controls: ctl, ldr
//	Statuses: sts[0] (counter value), sts[1] (overflow pulse in bit 0),
//	          rdy (ready_for_updates in bit 0),
//	          code (scaled code, sign extended to 32 bits)
//
// code runs one tick behind the other statuses; the Observer stage adds a
// clock edge of its own.
//
func Controller(c string) forge.Block { return newController(c) }
