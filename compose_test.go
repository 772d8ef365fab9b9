package forge_test

import (
	"reflect"
	"testing"

	"github.com/forgehdl/forge"
)

func TestCompose_errors(t *testing.T) {
	inc := incSpec.NewBlock
	data := []struct {
		name     string
		controls string
		statuses string
		blocks   []forge.Block
		err      string
	}{
		{"ok", "in", "out", []forge.Block{
			inc("in=in, out=out"),
		}, ""},
		{"ok_private", "in", "out", []forge.Block{
			inc("in=in, out=mid"),
			inc("in=mid, out=out"),
		}, ""},
		{"duplicate_word", "w", "w", []forge.Block{
			inc(""),
		}, "duplicate word w in composite duplicate_word"},
		{"undriven_status", "in", "out", []forge.Block{
			inc("in=in"),
		}, "status word out of composite undriven_status is not driven"},
		{"drives_control", "in", "out", []forge.Block{
			inc("in=in, out=in"),
		}, "inc.out drives control word in"},
		{"drives_zero", "in", "out", []forge.Block{
			inc("out=zero"),
		}, "inc.out drives the zero wire"},
		{"double_drive", "in", "out", []forge.Block{
			inc("out=out"),
			inc("out=out"),
		}, "wire out driven by both inc.out and inc.out"},
		{"undriven_private", "in", "out", []forge.Block{
			inc("in=mid, out=out"),
		}, "wire mid read by inc.in is not driven by any status word"},
		{"duplicate_conn", "in", "out", []forge.Block{
			inc("in=in, in=out"),
		}, "inc.in connected to both in and out"},
		{"uninitialized", "in", "out", []forge.Block{
			{},
		}, "uninitialized block"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := forge.Compose(d.name, d.controls, d.statuses, d.blocks...)
			if err == nil && d.err != "" || err != nil && err.Error() != d.err {
				t.Errorf("Got error %q, expected %q", err, d.err)
			}
		})
	}
}

// Composing does not collapse stages: a word still crosses one block per
// tick inside a composite.
func TestCompose_pipeline(t *testing.T) {
	inc2, err := forge.Compose("inc2", "in", "out",
		incSpec.NewBlock("in=in, out=mid"),
		incSpec.NewBlock("in=mid, out=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	var src, p uint32
	b, err := forge.NewBench(
		source(func() uint32 { return src })("out=w"),
		inc2("in=w, out=w2"),
		probe(&p)("in=w2"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if b.Size() != 4 {
		t.Errorf("Size() = %d, expected 4", b.Size())
	}
	src = 5
	want := []uint32{0, 1, 2, 7, 7}
	for i, w := range want {
		b.Tick()
		if p != w {
			t.Fatalf("tick %d: out = %d, expected %d", i+1, p, w)
		}
	}
}

func TestCompose_nested(t *testing.T) {
	inc2, err := forge.Compose("inc2", "in", "out",
		incSpec.NewBlock("in=in, out=mid"),
		incSpec.NewBlock("in=mid, out=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	inc3, err := forge.Compose("inc3", "in", "out",
		inc2("in=in, out=mid"),
		incSpec.NewBlock("in=mid, out=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	var src, p uint32
	b, err := forge.NewBench(
		source(func() uint32 { return src })("out=w"),
		inc3("in=w, out=w2"),
		probe(&p)("in=w2"),
	)
	if err != nil {
		t.Fatal(err)
	}
	src = 5
	want := []uint32{0, 1, 2, 3, 8, 8}
	for i, w := range want {
		b.Tick()
		if p != w {
			t.Fatalf("tick %d: out = %d, expected %d", i+1, p, w)
		}
	}
}

// Wires internal to a composite are invisible outside of it: an outer wire
// may reuse an inner name without clashing.
func TestCompose_private_words(t *testing.T) {
	inc2, err := forge.Compose("inc2", "in", "out",
		incSpec.NewBlock("in=in, out=mid"),
		incSpec.NewBlock("in=mid, out=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	var p uint32
	_, err = forge.NewBench(
		inc2("in=zero, out=w"),
		probe(&p)("in=mid"),
	)
	if err == nil || err.Error() != "wire mid read by probe.in is not driven by any status word" {
		t.Fatalf("got error %q, the inner wire leaked", err)
	}

	var pm uint32
	b, err := forge.NewBench(
		source(func() uint32 { return 9 })("out=mid"),
		inc2("in=mid, out=w"),
		probe(&p)("in=w"),
		probe(&pm)("in=mid"),
	)
	if err != nil {
		t.Fatal(err)
	}
	b.Run(4)
	if p != 11 || pm != 9 {
		t.Errorf("out = %d, mid = %d, expected 11 and 9", p, pm)
	}
}

// Reset reaches the steppers inside composites.
func TestCompose_reset(t *testing.T) {
	total, err := forge.Compose("total", "in", "out",
		accSpec.NewBlock("in=in, out=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	var p uint32
	b, err := forge.NewBench(
		source(func() uint32 { return 1 })("out=w"),
		total("in=w, out=sum"),
		probe(&p)("in=sum"),
	)
	if err != nil {
		t.Fatal(err)
	}
	trace := func(n int) []uint32 {
		out := make([]uint32, n)
		for i := range out {
			b.Tick()
			out[i] = p
		}
		return out
	}
	first := trace(5)
	if want := []uint32{0, 0, 1, 2, 3}; !reflect.DeepEqual(first, want) {
		t.Fatalf("fresh trace %v, expected %v", first, want)
	}
	b.Reset()
	if again := trace(5); !reflect.DeepEqual(again, first) {
		t.Errorf("trace after reset %v, expected %v", again, first)
	}
}
