package forge_test

import (
	"fmt"

	"github.com/forgehdl/forge"
	"github.com/forgehdl/forge/forgelib"
)

// selector is a custom word multiplexer.
type selector struct {
	A   int `forge:"ctl"`     // word "a"
	B   int `forge:"ctl"`     // word "b"
	S   int `forge:"ctl,sel"` // the second tag value forces the word name to "sel"
	Out int `forge:"sts"`     // word "out"
}

// Update implements Updater.
func (m *selector) Update(b *forge.Bench) {
	if b.Get(m.S) == 0 {
		b.Set(m.Out, b.Get(m.A))
	} else {
		b.Set(m.Out, b.Get(m.B))
	}
}

// no need to import reflect, just cast a nil pointer to selector
var selSpec = forge.MakeBlock((*selector)(nil))

// selSpec is the *BlockSpec for our selector. To use it like the ready-made
// blocks in forgelib, take its NewBlock method as a variable, or make it a
// function:
func Selector(c string) forge.Block { return selSpec.NewBlock(c) }

// MakeBlock example with a custom selector block.
func ExampleMakeBlock() {
	var a, b, sel, out uint32
	bn, err := forge.NewBench(
		// words to test the block with
		forgelib.Input(func() uint32 { return a })("out=in_a"),
		forgelib.Input(func() uint32 { return b })("out=in_b"),
		forgelib.Input(func() uint32 { return sel })("out=in_sel"),
		// our custom selector
		Selector("a=in_a, b=in_b, sel=in_sel, out=sel_out"),
		forgelib.Output(func(v uint32) { out = v })("in=sel_out"),
	)
	if err != nil {
		panic(err)
	}

	// three ticks flush the input -> selector -> output pipeline
	a, b, sel = 1, 15, 0
	bn.Run(3)
	fmt.Printf("a=%d, b=%d, sel=%d => out=%d\n", a, b, sel, out)
	sel = 1
	bn.Run(3)
	fmt.Printf("a=%d, b=%d, sel=%d => out=%d\n", a, b, sel, out)

	// Output:
	// a=1, b=15, sel=0 => out=1
	// a=1, b=15, sel=1 => out=15
}
