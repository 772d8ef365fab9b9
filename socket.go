package forge

// ZeroWire is the name of the constant zero wire. Every bench has it; any
// number of control words may connect to it, no status word may drive it.
// Unconnected control words read from it implicitly.
const ZeroWire = "zero"

// slot number of the zero wire in every bench
const zeroSlot = 0

// A Socket maps a block's word names to word slots in a bench.
type Socket struct {
	m map[string]int
	b *Bench
}

func newSocket(b *Bench) *Socket {
	return &Socket{
		m: make(map[string]int),
		b: b,
	}
}

// Slot returns the slot number assigned to the word with the given name.
// This function panics if the word does not exist.
func (s *Socket) Slot(name string) int {
	n, ok := s.m[name]
	if !ok {
		panic("word " + name + " does not exist")
	}
	return n
}

// Bus returns the slot numbers assigned to the given bus name, in index
// order starting at 0. It panics if the bus does not exist.
func (s *Socket) Bus(name string) []int {
	out := make([]int, 0)
	for i := 0; ; i++ {
		n, ok := s.m[busWordName(name, i)]
		if !ok {
			break
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		panic("bus " + name + " does not exist")
	}
	return out
}
