package bridge

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
)

// ---- fake endpoint client ----

type readCall struct {
	addr uint16
	qty  uint16
}

type writeCall struct {
	addr uint16
	regs []uint16
}

type fakeClient struct {
	holding map[uint16]uint16 // holding register table served to the bridge
	inputs  map[uint16]bool   // discrete input table

	reads      []readCall
	inputReads []readCall
	writes     []writeCall

	failReads bool
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		holding: make(map[uint16]uint16),
		inputs:  make(map[uint16]bool),
	}
}

func (f *fakeClient) ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) {
	if f.failReads {
		return nil, errors.New("fake: read refused")
	}
	f.reads = append(f.reads, readCall{addr, qty})
	out := make([]uint16, qty)
	for i := range out {
		out[i] = f.holding[addr+uint16(i)]
	}
	return out, nil
}

func (f *fakeClient) ReadDiscreteInputs(addr, qty uint16) ([]bool, error) {
	f.inputReads = append(f.inputReads, readCall{addr, qty})
	out := make([]bool, qty)
	for i := range out {
		out[i] = f.inputs[addr+uint16(i)]
	}
	return out, nil
}

func (f *fakeClient) WriteMultipleRegisters(addr uint16, regs []uint16) error {
	f.writes = append(f.writes, writeCall{addr, append([]uint16(nil), regs...)})
	return nil
}

func (f *fakeClient) setControl(addr uint16, w uint32) {
	f.holding[addr] = uint16(w >> 16)
	f.holding[addr+1] = uint16(w)
}

func loaderAt(addr uint16) *uint16 { return &addr }

// ---- tests ----

func TestBridge_cycle(t *testing.T) {
	fake := newFakeClient()
	fake.setControl(100, 0xe0000002) // all enables, counter_max 2
	fake.inputs[300] = true

	br, err := New(fake, Geometry{ControlAddr: 100, StatusAddr: 200, LoaderAddr: loaderAt(300)})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 6; i++ {
		if err := br.RunOnce(); err != nil {
			t.Fatal(err)
		}
	}

	for _, r := range fake.reads {
		if r.addr != 100 || r.qty != ControlRegs {
			t.Fatalf("control read at %d qty %d", r.addr, r.qty)
		}
	}
	for _, r := range fake.inputReads {
		if r.addr != 300 || r.qty != 1 {
			t.Fatalf("loader read at %d qty %d", r.addr, r.qty)
		}
	}

	// one status write per cycle: Status0 hi, lo, Status1 hi, lo
	want := [][]uint16{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 0, 1}, // wrap: count zero and pulse in the same write
	}
	if len(fake.writes) != len(want) {
		t.Fatalf("%d writes, expected %d", len(fake.writes), len(want))
	}
	for i, w := range fake.writes {
		if w.addr != 200 || len(w.regs) != StatusRegs {
			t.Fatalf("write %d: addr %d, %d registers", i, w.addr, len(w.regs))
		}
		for k := range want[i] {
			if w.regs[k] != want[i][k] {
				t.Fatalf("write %d: %v, expected %v", i, w.regs, want[i])
			}
		}
	}

	if br.Count() != 0 || !br.Overflow() {
		t.Errorf("after wrap: count %d, overflow %v", br.Count(), br.Overflow())
	}
	if br.Ticks() != 6 {
		t.Errorf("Ticks() = %d, expected 6", br.Ticks())
	}
}

func TestBridge_no_loader(t *testing.T) {
	fake := newFakeClient()
	fake.setControl(0, 0xe0000002)

	br, err := New(fake, Geometry{ControlAddr: 0, StatusAddr: 10})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 6; i++ {
		if err := br.RunOnce(); err != nil {
			t.Fatal(err)
		}
	}
	if len(fake.inputReads) != 0 {
		t.Errorf("discrete inputs read without a loader address")
	}
	if !br.Overflow() {
		t.Error("counter did not run with the loader line defaulted")
	}
}

func TestBridge_loader_blocks(t *testing.T) {
	fake := newFakeClient()
	fake.setControl(0, 0xe0000002)
	// inputs[5] stays false

	br, err := New(fake, Geometry{ControlAddr: 0, StatusAddr: 10, LoaderAddr: loaderAt(5)})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 8; i++ {
		if err := br.RunOnce(); err != nil {
			t.Fatal(err)
		}
	}
	for i, w := range fake.writes {
		for _, r := range w.regs {
			if r != 0 {
				t.Fatalf("write %d: %v, expected all zero while loader not done", i, w.regs)
			}
		}
	}
	if !br.Ready() {
		t.Error("idle counter must report ready")
	}
}

// A failed poll loses the whole cycle: no tick, no write.
func TestBridge_read_error(t *testing.T) {
	fake := newFakeClient()
	fake.setControl(0, 0xe0000001)
	fake.failReads = true

	br, err := New(fake, Geometry{ControlAddr: 0, StatusAddr: 10})
	if err != nil {
		t.Fatal(err)
	}
	if err := br.RunOnce(); err == nil {
		t.Fatal("expected a cycle error")
	}
	if br.Ticks() != 0 || len(fake.writes) != 0 {
		t.Fatalf("failed cycle left traces: %d ticks, %d writes", br.Ticks(), len(fake.writes))
	}

	fake.failReads = false
	if err := br.RunOnce(); err != nil {
		t.Fatal(err)
	}
	if br.Ticks() != 1 || len(fake.writes) != 1 {
		t.Fatalf("recovery cycle: %d ticks, %d writes", br.Ticks(), len(fake.writes))
	}
}

// Control0 travels high half word first, and the scaled code follows the
// counter into the locked state.
func TestBridge_word_order(t *testing.T) {
	fake := newFakeClient()
	fake.holding[100] = 0xe000
	fake.holding[101] = 0x0007

	br, err := New(fake, Geometry{ControlAddr: 100, StatusAddr: 200})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if err := br.RunOnce(); err != nil {
			t.Fatal(err)
		}
	}
	last := fake.writes[len(fake.writes)-1]
	if last.regs[0] != 0 || last.regs[1] != 2 {
		t.Errorf("Status0 = %#04x %#04x, expected 0x0000 0x0002", last.regs[0], last.regs[1])
	}
	if br.Code() != 200 {
		t.Errorf("Code() = %d, expected 200", br.Code())
	}
}

func TestBridge_run(t *testing.T) {
	fake := newFakeClient()
	fake.failReads = true

	br, err := New(fake, Geometry{ControlAddr: 0, StatusAddr: 10})
	if err != nil {
		t.Fatal(err)
	}
	var reported int
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()
	err = br.Run(ctx, time.Millisecond, func(error) { reported++ })
	if err != context.Canceled {
		t.Fatalf("Run returned %v, expected context.Canceled", err)
	}
	if reported == 0 {
		t.Error("cycle errors were not reported")
	}
	if br.Ticks() != 0 {
		t.Errorf("failed cycles ticked the bench %d times", br.Ticks())
	}
}
