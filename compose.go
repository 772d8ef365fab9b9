package forge

import "github.com/pkg/errors"

// composite packages inner blocks behind a single block specification. At
// mount time the declared control and status words resolve to the outer
// bench while every other wire named by the inner connections gets a slot of
// its own, invisible from outside.
type composite struct {
	BlockSpec
	inner []Block
	ext   map[string]bool // declared words, resolved in the outer bench
}

func (c *composite) mount(s *Socket) []Stepper {
	priv := make(map[string]int)
	slot := func(wire string) int {
		if wire == ZeroWire {
			return zeroSlot
		}
		if c.ext[wire] {
			return s.Slot(wire)
		}
		n, ok := priv[wire]
		if !ok {
			n = s.b.allocWire()
			priv[wire] = n
		}
		return n
	}

	var steps []Stepper
	for _, blk := range c.inner {
		cm := make(map[string]string, len(blk.conns))
		for _, cn := range blk.conns {
			cm[cn.block] = cn.wire
		}
		sub := newSocket(s.b)
		for _, w := range blk.Controls {
			if wire, ok := cm[w]; ok {
				sub.m[w] = slot(wire)
			} else {
				sub.m[w] = zeroSlot
			}
		}
		for _, w := range blk.Statuses {
			if wire, ok := cm[w]; ok {
				sub.m[w] = slot(wire)
			} else {
				sub.m[w] = s.b.allocWire()
			}
		}
		steps = append(steps, blk.Mount(sub)...)
	}
	return steps
}

// Compose packages existing blocks into a new block. The control and status
// declarations follow the BlockSpec word syntax. Wires named by the inner
// connections that do not appear in the declarations stay private to the
// composite; a declared control word can be read by any number of inner
// blocks and a declared status word must be driven by exactly one inner
// status.
//
// A block pairing a Counter with an Observer while hiding the observation
// word between them could be created like this:
//
//	ctr, err := forge.Compose("Ctr", "ctl, ldr", "sts[2], code",
//		forgelib.Counter("ctl=ctl, ldr=ldr, sts[0..1]=sts[0..1], obs=obs"),
//		forgelib.Observer("obs=obs, code=code"),
//	)
//
// The returned value can be handed to NewBench like any other block
// function, or to Compose again to build deeper assemblies. Each inner block
// still takes one tick per stage: a word crossing n blocks inside a
// composite arrives n ticks later.
func Compose(name, controls, statuses string, blocks ...Block) (NewBlockFn, error) {
	ctl, err := words(controls)
	if err != nil {
		return nil, err
	}
	sts, err := words(statuses)
	if err != nil {
		return nil, err
	}

	ext := make(map[string]bool, len(ctl)+len(sts))
	isCtl := make(map[string]bool, len(ctl))
	for _, w := range ctl {
		if ext[w] {
			return nil, errors.Errorf("duplicate word %s in composite %s", w, name)
		}
		ext[w] = true
		isCtl[w] = true
	}
	for _, w := range sts {
		if ext[w] {
			return nil, errors.Errorf("duplicate word %s in composite %s", w, name)
		}
		ext[w] = true
	}

	writers := make(map[string]string) // wire name -> driving block.word
	readers := make(map[string]string) // wire name -> one reading block.word
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
		for _, w := range blk.Controls {
			if wire, ok := cm[w]; ok {
				readers[wire] = blk.Name + "." + w
			}
		}
		for _, w := range blk.Statuses {
			wire, ok := cm[w]
			if !ok {
				continue
			}
			if wire == ZeroWire {
				return nil, errors.Errorf("%s.%s drives the zero wire", blk.Name, w)
			}
			if isCtl[wire] {
				return nil, errors.Errorf("%s.%s drives control word %s", blk.Name, w, wire)
			}
			if prev, taken := writers[wire]; taken {
				return nil, errors.Errorf("wire %s driven by both %s and %s.%s", wire, prev, blk.Name, w)
			}
			writers[wire] = blk.Name + "." + w
		}
	}
	for _, w := range sts {
		if _, ok := writers[w]; !ok {
			return nil, errors.Errorf("status word %s of composite %s is not driven", w, name)
		}
	}
	for wire, r := range readers {
		if wire == ZeroWire || isCtl[wire] {
			continue
		}
		if _, ok := writers[wire]; !ok {
			return nil, errors.Errorf("wire %s read by %s is not driven by any status word", wire, r)
		}
	}

	c := &composite{
		BlockSpec: BlockSpec{
			Name:     name,
			Controls: ctl,
			Statuses: sts,
		},
		inner: blocks,
		ext:   ext,
	}
	c.BlockSpec.Mount = c.mount
	return c.BlockSpec.NewBlock, nil
}
