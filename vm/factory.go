package vm

import (
	"strconv"
	"strings"
)

// Factory parses IntCode program text exactly once and then builds any
// number of independent VM instances over that shared image, per spec
// section 4.6. This matters for drivers like Amplifier's Feedback mode and
// the tractor-beam probe's one-machine-per-query scans, which need several
// fresh machines running
// the same program without re-parsing the source text each time.
type Factory struct {
	program []int64
}

// ParseProgram parses comma-separated IntCode program text into a Factory.
// Each field is trimmed of surrounding whitespace (including the newlines
// that wrap most puzzle-input files) and parsed as a signed base-10
// integer; an empty field or one that fails to parse returns a
// *ParseError.
func ParseProgram(text string) (*Factory, error) {
	fields := strings.Split(text, ",")
	program := make([]int64, 0, len(fields))
	for _, field := range fields {
		trimmed := strings.TrimSpace(field)
		if trimmed == "" {
			return nil, &ParseError{Field: field}
		}
		val, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return nil, &ParseError{Field: trimmed, Err: err}
		}
		program = append(program, val)
	}
	return &Factory{program: program}, nil
}

// Build returns a fresh VM running the Factory's program image, independent
// of any other VM the Factory has built: each gets its own Memory, its own
// input/output queues, and its own instruction pointer.
func (f *Factory) Build() *VM {
	return New(f.program)
}

// Program returns a copy of the parsed program image, for callers that want
// to inspect it or build a patched VM from it with New (e.g. with address 0
// set to 2). Changing the copy does not affect the VMs Build returns.
func (f *Factory) Program() []int64 {
	out := make([]int64, len(f.program))
	copy(out, f.program)
	return out
}
