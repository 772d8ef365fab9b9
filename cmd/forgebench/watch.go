// Copyright 2025 The forgehdl Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/forgehdl/forge"
)

func (r *rig) max() uint16 {
	return forge.DecodeControl(forge.ControlWord(r.ctl)).CounterMax
}

func (r *rig) setMax(m uint16) {
	f := forge.DecodeControl(forge.ControlWord(r.ctl))
	f.CounterMax = m
	r.ctl = uint32(f.Encode())
}

// watch runs the bench on a wall-clock ticker with the terminal in raw mode,
// flipping control bits as keys come in. The terminal state is restored on
// return.
func watch(r *rig, interval time.Duration) error {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, old)

	keys := make(chan byte)
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				close(keys)
				return
			}
			if n > 0 {
				keys <- buf[0]
			}
		}
	}()

	fmt.Print("keys: f/u/c enables, l loader, +/- counter_max, r reset, q quit\r\n")

	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		select {
		case k, ok := <-keys:
			if !ok {
				return nil
			}
			switch k {
			case 'f':
				r.ctl ^= uint32(forge.CtlForgeReady)
			case 'u':
				r.ctl ^= uint32(forge.CtlUserEnable)
			case 'c':
				r.ctl ^= uint32(forge.CtlClkEnable)
			case 'l':
				r.ldr ^= 1
			case '+':
				r.setMax(r.max() + 1)
			case '-':
				r.setMax(r.max() - 1)
			case 'r':
				r.reset()
			case 'q', 3: // ^C
				fmt.Print("\r\n")
				return nil
			}
		case <-tick.C:
			r.tick()
			fmt.Printf("\r\x1b[K%s", r.line())
		}
	}
}
