package forge_test

import (
	"testing"

	"github.com/forgehdl/forge"
)

// Full truth table: the gate is a plain 4-input AND, true on exactly one of
// the 16 input combinations.
func TestGlobalEnable(t *testing.T) {
	for i := 0; i < 16; i++ {
		fr, ue := i&1 != 0, i&2 != 0
		ce, ld := i&4 != 0, i&8 != 0
		want := i == 15
		if got := forge.GlobalEnable(fr, ue, ce, ld); got != want {
			t.Errorf("GlobalEnable(%v, %v, %v, %v) = %v, expected %v", fr, ue, ce, ld, got, want)
		}
	}
}
