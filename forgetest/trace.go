// Copyright 2025 The forgehdl Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package forgetest

import (
	"testing"

	"github.com/forgehdl/forge"
	"github.com/forgehdl/forge/forgelib"
)

// Trace mounts a single block between input and probe stages, drives its
// control words from one vector per tick and returns the sampled status
// words, one row per tick.
//
// Rows align with the clock, not with causality: the statuses caused by
// control row i land in row i+2, one tick to cross the input stage plus one
// to cross the block.
//
func Trace(t *testing.T, fn forge.NewBlockFn, vectors [][]uint32) [][]uint32 {
	t.Helper()

	spec := fn("")
	inputs := make([]uint32, len(spec.Controls))
	sampled := make([]uint32, len(spec.Statuses))

	blocks := make([]forge.Block, 0, len(inputs)+len(sampled)+1)
	for i, n := range spec.Controls {
		k := i
		blocks = append(blocks, forgelib.Input(func() uint32 { return inputs[k] })("out="+n))
	}
	blocks = append(blocks, fn(connString(spec.Controls, spec.Statuses, "")))
	for i, n := range spec.Statuses {
		k := i
		blocks = append(blocks, forgelib.Output(func(w uint32) { sampled[k] = w })("in="+n))
	}
	b, err := forge.NewBench(blocks...)
	if err != nil {
		t.Fatal(err)
	}

	out := make([][]uint32, 0, len(vectors))
	for i, v := range vectors {
		if len(v) != len(inputs) {
			t.Fatalf("vector %d has %d words, the block has %d controls", i, len(v), len(inputs))
		}
		copy(inputs, v)
		b.Tick()
		out = append(out, append([]uint32(nil), sampled...))
	}
	return out
}
