package forgelib_test

import (
	"testing"

	"github.com/forgehdl/forge"
	"github.com/forgehdl/forge/forgelib"
)

// Drive the observation wire directly and read back scaled codes. Two ticks
// of latency: one for the input, one for the encoder.
func TestObserver(t *testing.T) {
	var obs, code uint32
	b, err := forge.NewBench(
		forgelib.Input(func() uint32 { return obs })("out=obs"),
		forgelib.Observer("obs=obs, code=code"),
		forgelib.Output(func(w uint32) { code = w })("in=code"),
	)
	if err != nil {
		t.Fatal(err)
	}

	data := []struct {
		name   string
		state  uint32
		status forge.StatusWord
		code   forge.ScaledCode
	}{
		{"zero", 0, 0x00, 0},
		{"running", 1, 0x40, 250},
		{"mixed", 2, 0x40, 450},
		{"fault", 2, 0xc0, -450},
		{"fault_small", 1, 0x85, -203},
		{"near_clamp", 163, 0x7f, 32699},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			obs = forge.EncodeObservation(false, d.state, d.status)
			b.Run(3)
			if got := forge.ScaledCode(int32(code)); got != d.code {
				t.Errorf("state %d, status %#02x: code %d, expected %d", d.state, d.status, got, d.code)
			}
		})
	}
}

func TestConst(t *testing.T) {
	var got uint32
	b, err := forge.NewBench(
		forgelib.Const(0xe000000a)("out=w"),
		forgelib.Output(func(w uint32) { got = w })("in=w"),
	)
	if err != nil {
		t.Fatal(err)
	}
	b.Run(2)
	if got != 0xe000000a {
		t.Errorf("const wire = %#08x, expected 0xe000000a", got)
	}
}
