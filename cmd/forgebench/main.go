// Copyright 2025 The forgehdl Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Command forgebench runs the standard counter bench and prints a trace of
// its status words. The control word comes from a YAML file, from the -c
// flag, or from the keyboard in watch mode.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/forgehdl/forge"
	"github.com/forgehdl/forge/forgelib"
	"github.com/forgehdl/forge/internal/config"
)

// rig is the demo bench: control and loader sources feeding the Controller
// assembly, and probes on every status.
type rig struct {
	b *forge.Bench

	ctl uint32 // Control0 value driven on the next tick
	ldr uint32 // loader_done line driven on the next tick

	cnt, flg, rdy, code uint32 // last committed statuses
}

func newRig(ctl uint32, loaderDone bool) (*rig, error) {
	r := &rig{ctl: ctl}
	if loaderDone {
		r.ldr = 1
	}
	b, err := forge.NewBench(
		forgelib.Input(func() uint32 { return r.ctl })("out=ctl"),
		forgelib.Input(func() uint32 { return r.ldr })("out=ldr"),
		forgelib.Controller("ctl=ctl, ldr=ldr, sts[0..1]=sts[0..1], rdy=rdy, code=code"),
		forgelib.Output(func(v uint32) { r.cnt = v })("in=sts[0]"),
		forgelib.Output(func(v uint32) { r.flg = v })("in=sts[1]"),
		forgelib.Output(func(v uint32) { r.rdy = v })("in=rdy"),
		forgelib.Output(func(v uint32) { r.code = v })("in=code"),
	)
	if err != nil {
		return nil, err
	}
	r.b = b
	return r, nil
}

func (r *rig) tick() {
	r.b.Tick()
}

func (r *rig) reset() {
	r.b.Reset()
	r.cnt, r.flg, r.rdy, r.code = 0, 0, 0, 0
}

func (r *rig) line() string {
	return fmt.Sprintf("tick %4d  ctl %08x  ldr %d  count %5d  pulse %d  ready %d  code %6d",
		r.b.Ticks(), r.ctl, r.ldr, r.cnt, r.flg, r.rdy, int32(r.code))
}

func main() {
	control := flag.String("c", "0", "Control0 register value (0x.. accepted)")
	loader := flag.Bool("l", true, "drive the loader_done line high")
	ticks := flag.Int("t", 0, "clock ticks to run")
	every := flag.Int("every", 0, "print one trace line every N ticks")
	watchMode := flag.Bool("w", false, "interactive mode: toggle control bits from the keyboard")
	interval := flag.Duration("i", 250*time.Millisecond, "tick interval in watch mode")
	flag.Parse()

	cfg := &config.Config{}
	if flag.NArg() > 0 {
		var err error
		cfg, err = config.Load(flag.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, "config load error:", err)
			os.Exit(1)
		}
		if err = config.Validate(cfg); err != nil {
			fmt.Fprintln(os.Stderr, "config error:", err)
			os.Exit(1)
		}
	} else {
		// without a config file the loader line idles high
		cfg.Bench.LoaderDone = true
	}
	config.Normalize(cfg)

	// flags that were given on the command line win over the file
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["c"] {
		w, err := strconv.ParseUint(*control, 0, 32)
		if err != nil {
			fmt.Fprintln(os.Stderr, "bad control word:", err)
			os.Exit(2)
		}
		cfg.Bench.Control = uint32(w)
	}
	if set["l"] {
		cfg.Bench.LoaderDone = *loader
	}
	if set["t"] {
		cfg.Bench.Ticks = *ticks
	}
	if set["every"] {
		cfg.Bench.TraceEvery = *every
	}

	r, err := newRig(cfg.Bench.Control, cfg.Bench.LoaderDone)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bench build error:", err)
		os.Exit(1)
	}

	if *watchMode {
		if err := watch(r, *interval); err != nil {
			fmt.Fprintln(os.Stderr, "watch error:", err)
			os.Exit(1)
		}
		return
	}

	for i := 0; i < cfg.Bench.Ticks; i++ {
		r.tick()
		if cfg.Bench.TraceEvery > 0 && (i+1)%cfg.Bench.TraceEvery == 0 {
			fmt.Println(r.line())
		}
	}
}
