// Copyright 2025 The forgehdl Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package forge

import "github.com/pkg/errors"

// A Bench is a mounted set of blocks together with their wiring: every wire
// has exactly one driving status word, word slots are allocated and the
// blocks' steppers are ready to run.
//
// A bench keeps two frames of wire values. During a Tick every stepper reads
// the current frame and writes the next one, then the frames swap. All
// values read during one tick therefore come from the same coherent
// snapshot, and writes only become visible on the following tick, exactly
// like registers behind a common clock edge. Steppers run sequentially on
// the calling goroutine, so ticks are deterministic and the mount order of
// blocks does not matter.
type Bench struct {
	s0, s1 []uint32 // wire frames: current (read) and next (write)
	steps  []Stepper
	count  int // allocated word slots
	ticks  uint64
}

// NewBench mounts the given blocks and wires them together. It returns an
// error if a wire is driven by more than one status word, if a status word
// drives the zero wire, or if a control word references a wire that no
// status drives. An unconnected control word reads the zero wire; an
// unconnected status word gets a private slot and its values go nowhere.
func NewBench(blocks ...Block) (*Bench, error) {
	if len(blocks) == 0 {
		return nil, errors.New("empty bench")
	}
	b := &Bench{count: 1} // slot 0 is the zero wire
	slots := map[string]int{ZeroWire: zeroSlot}
	writers := make(map[string]string) // wire name -> driving block.word
	readers := make(map[string]string) // wire name -> one reading block.word

	wireSlot := func(wire string) int {
		n, ok := slots[wire]
		if !ok {
			n = b.allocWire()
			slots[wire] = n
		}
		return n
	}

	for _, blk := range blocks {
		if blk.BlockSpec == nil {
			return nil, errors.New("uninitialized block")
		}
		cm := make(map[string]string, len(blk.conns))
		for _, cn := range blk.conns {
			if w, ok := cm[cn.block]; ok {
				return nil, errors.Errorf("%s.%s connected to both %s and %s", blk.Name, cn.block, w, cn.wire)
			}
			cm[cn.block] = cn.wire
		}
		sock := newSocket(b)
		for _, w := range blk.Controls {
			wire, ok := cm[w]
			if !ok {
				sock.m[w] = zeroSlot
				continue
			}
			sock.m[w] = wireSlot(wire)
			readers[wire] = blk.Name + "." + w
		}
		for _, w := range blk.Statuses {
			wire, ok := cm[w]
			if !ok {
				sock.m[w] = b.allocWire()
				continue
			}
			if wire == ZeroWire {
				return nil, errors.Errorf("%s.%s drives the zero wire", blk.Name, w)
			}
			if prev, taken := writers[wire]; taken {
				return nil, errors.Errorf("wire %s driven by both %s and %s.%s", wire, prev, blk.Name, w)
			}
			writers[wire] = blk.Name + "." + w
			sock.m[w] = wireSlot(wire)
		}
		b.steps = append(b.steps, blk.Mount(sock)...)
	}

	for wire, r := range readers {
		if wire == ZeroWire {
			continue
		}
		if _, ok := writers[wire]; !ok {
			return nil, errors.Errorf("wire %s read by %s is not driven by any status word", wire, r)
		}
	}

	b.s0 = make([]uint32, b.count)
	b.s1 = make([]uint32, b.count)
	return b, nil
}

func (b *Bench) allocWire() int {
	n := b.count
	b.count++
	return n
}

// Get returns the value of word slot n in the current frame.
func (b *Bench) Get(n int) uint32 {
	return b.s0[n]
}

// Set writes v to word slot n in the next frame. The write becomes visible
// once the running Tick completes.
func (b *Bench) Set(n int, v uint32) {
	b.s1[n] = v
}

// Tick runs one clock cycle: every stepper once, then the frame swap.
func (b *Bench) Tick() {
	for _, s := range b.steps {
		s.Step(b)
	}
	if b.s1[zeroSlot] != 0 {
		panic("zero wire overwritten")
	}
	b.s0, b.s1 = b.s1, b.s0
	b.ticks++
}

// Run runs n clock cycles.
func (b *Bench) Run(n int) {
	for i := 0; i < n; i++ {
		b.Tick()
	}
}

// Reset returns the bench to its power-on state: all wires zero, all
// steppers reset, the tick count cleared. Reset is synchronous from the
// caller's point of view, it completes before the next Tick regardless of
// what the bench was doing.
func (b *Bench) Reset() {
	for i := range b.s0 {
		b.s0[i] = 0
	}
	for i := range b.s1 {
		b.s1[i] = 0
	}
	for _, s := range b.steps {
		s.Reset()
	}
	b.ticks = 0
}

// Ticks returns the number of clock cycles run since creation or the last
// Reset.
func (b *Bench) Ticks() uint64 {
	return b.ticks
}

// Size returns the number of mounted steppers.
func (b *Bench) Size() int {
	return len(b.steps)
}
