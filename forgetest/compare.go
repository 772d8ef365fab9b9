// Copyright 2025 The forgehdl Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package forgetest provides utility functions for testing blocks.
//
package forgetest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/forgehdl/forge"
	"github.com/forgehdl/forge/forgelib"
)

// connString maps every word in the given lists to a wire of the same name,
// prefixing status wire names so that two instances can coexist on one
// bench.
func connString(controls, statuses []string, prefix string) string {
	var b strings.Builder
	for _, n := range controls {
		if b.Len() > 0 {
			b.WriteRune(',')
		}
		b.WriteString(n)
		b.WriteRune('=')
		b.WriteString(n)
	}
	for _, n := range statuses {
		if b.Len() > 0 {
			b.WriteRune(',')
		}
		b.WriteString(n)
		b.WriteRune('=')
		b.WriteString(prefix)
		b.WriteString(n)
	}
	return b.String()
}

// CompareBlocks drives two blocks from the same word sources and fails t as
// soon as any of their status words differ. Both blocks must declare the
// same control and status words, and both run on one bench, so they see
// identical wire values on every tick; stateful blocks are compared over
// their whole run, not just per vector.
//
// The first two vectors are all zeros and all ones, followed by the given
// number of random ticks.
//
func CompareBlocks(t *testing.T, ticks int, fn1, fn2 forge.NewBlockFn) {
	t.Helper()

	sa, sb := fn1(""), fn2("")
	if len(sa.Controls) != len(sb.Controls) {
		t.Fatal("len(sa.Controls) != len(sb.Controls)")
	}
	if len(sa.Statuses) != len(sb.Statuses) {
		t.Fatal("len(sa.Statuses) != len(sb.Statuses)")
	}
	for i := range sa.Controls {
		if sa.Controls[i] != sb.Controls[i] {
			t.Fatalf("sa.Controls[i] = %q != sb.Controls[i] = %q", sa.Controls[i], sb.Controls[i])
		}
	}
	for i := range sa.Statuses {
		if sa.Statuses[i] != sb.Statuses[i] {
			t.Fatalf("sa.Statuses[i] = %q != sb.Statuses[i] = %q", sa.Statuses[i], sb.Statuses[i])
		}
	}

	inputs := make([]uint32, len(sa.Controls))
	outputs := make([][2]uint32, len(sa.Statuses))

	blocks := make([]forge.Block, 0, len(inputs)+2*len(outputs)+2)
	for i, n := range sa.Controls {
		k := i
		blocks = append(blocks, forgelib.Input(func() uint32 { return inputs[k] })("out="+n))
	}
	blocks = append(blocks,
		fn1(connString(sa.Controls, sa.Statuses, "a_")),
		fn2(connString(sb.Controls, sb.Statuses, "b_")))
	for i, n := range sa.Statuses {
		k := i
		blocks = append(blocks,
			forgelib.Output(func(w uint32) { outputs[k][0] = w })("in=a_"+n),
			forgelib.Output(func(w uint32) { outputs[k][1] = w })("in=b_"+n))
	}
	b, err := forge.NewBench(blocks...)
	if err != nil {
		t.Fatal(err)
	}

	errString := func(tick int, name string, out [2]uint32) string {
		var sb strings.Builder
		for i, n := range sa.Controls {
			if sb.Len() > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s=%#08x", n, inputs[i])
		}
		return fmt.Sprintf("tick %d: %s\n%s: %#08x != %#08x", tick, sb.String(), name, out[0], out[1])
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	tick := 0
	step := func() {
		tick++
		b.Tick()
		for o, out := range outputs {
			if out[0] != out[1] {
				t.Fatal(errString(tick, sa.Statuses[o], out))
			}
		}
	}

	// all zeros, then all ones, a few ticks each so that state machines
	// move past their first transition
	for i := 0; i < 4; i++ {
		step()
	}
	for i := range inputs {
		inputs[i] = 0xffffffff
	}
	for i := 0; i < 4; i++ {
		step()
	}

	for i := 0; i < ticks; i++ {
		for k := range inputs {
			inputs[k] = rng.Uint32()
		}
		step()
	}

	t.Logf("%d steppers, %d ticks", b.Size(), b.Ticks())
}
