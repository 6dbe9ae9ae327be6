package vm

// Memory is a sparse, default-zero address space. IntCode programs routinely
// address memory far past the end of their loaded instructions (the
// relative-base quine test writes to address 100 against a 16-word
// program), so a dense slice would force an arbitrary cap. A map keyed by
// address keeps every access O(1) without guessing a ceiling up front.
type Memory struct {
	cells map[int64]int64
	// image is the original program, used by Reset to restore cell 0..len-1
	// without disturbing cells a slice-copy approach would have to zero.
	image []int64
}

// NewMemory builds a Memory preloaded with program as cells 0..len(program)-1.
// Every other address reads as zero until written.
func NewMemory(program []int64) *Memory {
	m := &Memory{
		cells: make(map[int64]int64, len(program)*2),
		image: append([]int64(nil), program...),
	}
	m.loadImage()
	return m
}

func (m *Memory) loadImage() {
	for addr, v := range m.image {
		m.cells[int64(addr)] = v
	}
}

// Get returns the value at addr, or 0 if addr was never written.
func (m *Memory) Get(addr int64) int64 {
	return m.cells[addr]
}

// Set writes value at addr, growing the address space as needed.
func (m *Memory) Set(addr, value int64) {
	m.cells[addr] = value
}

// Reset restores every cell touched since construction back to the state
// the original program image described: image cells take their original
// value, every other touched cell reverts to zero (deleted from the map).
func (m *Memory) Reset() {
	for addr := range m.cells {
		delete(m.cells, addr)
	}
	m.loadImage()
}

// Len reports the length of the original program image, used by callers
// that want to dump only the "in-program" portion of memory.
func (m *Memory) Len() int {
	return len(m.image)
}

// Snapshot returns a copy of the original program-length prefix of memory,
// handy for tests asserting on a specific cell after a run.
func (m *Memory) Snapshot() []int64 {
	out := make([]int64, len(m.image))
	for i := range out {
		out[i] = m.Get(int64(i))
	}
	return out
}
