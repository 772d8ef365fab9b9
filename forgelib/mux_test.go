package forgelib_test

import (
	"math/rand"
	"testing"

	"github.com/forgehdl/forge"
	"github.com/forgehdl/forge/forgelib"
)

func TestMux(t *testing.T) {
	var a, b, sel, out uint32
	bn, err := forge.NewBench(
		forgelib.Input(func() uint32 { return a })("out=a"),
		forgelib.Input(func() uint32 { return b })("out=b"),
		forgelib.Input(func() uint32 { return sel })("out=sel"),
		forgelib.Mux("a=a, b=b, sel=sel, out=out"),
		forgelib.Output(func(w uint32) { out = w })("in=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	a, b = 0x1111, 0x2222
	td := []struct {
		sel  uint32
		want uint32
	}{
		{0, 0x1111},
		{1, 0x2222},
		{0xffffffff, 0x2222}, // any non-zero selector picks b
	}
	for _, d := range td {
		sel = d.sel
		bn.Run(3)
		if out != d.want {
			t.Fatalf("sel=%#x: out = %#x, expected %#x", d.sel, out, d.want)
		}
	}
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		a, b, sel = rng.Uint32(), rng.Uint32(), rng.Uint32()&1
		want := a
		if sel != 0 {
			want = b
		}
		bn.Run(3)
		if out != want {
			t.Fatalf("mux(%#x, %#x, %d) = %#x, expected %#x", a, b, sel, out, want)
		}
	}
}

func TestDMux(t *testing.T) {
	var in, sel, outA, outB uint32
	bn, err := forge.NewBench(
		forgelib.Input(func() uint32 { return in })("out=in"),
		forgelib.Input(func() uint32 { return sel })("out=sel"),
		forgelib.DMux("in=in, sel=sel, a=a, b=b"),
		forgelib.Output(func(w uint32) { outA = w })("in=a"),
		forgelib.Output(func(w uint32) { outB = w })("in=b"),
	)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		in, sel = rng.Uint32(), rng.Uint32()&1
		wantA, wantB := in, uint32(0)
		if sel != 0 {
			wantA, wantB = 0, in
		}
		bn.Run(3)
		if outA != wantA || outB != wantB {
			t.Fatalf("dmux(%#x, %d) = %#x, %#x, expected %#x, %#x", in, sel, outA, outB, wantA, wantB)
		}
	}
}
