// Package asciibrain drives an IntCode program that speaks the ASCII
// dialogue protocol: plain text lines in both directions, with a final
// numeric answer that is not newline-terminated. Grounded on spec section
// 4.8 and on the scaffold-navigating robot program in the retrieval pack's
// original_source/src/days/day17.
package asciibrain

import (
	"strings"

	"github.com/pkg/errors"

	"intcode/internal/gvmlog"
	"intcode/vm"
)

// Brain wraps a VM speaking the ASCII protocol.
type Brain struct {
	m   *vm.VM
	log *gvmlog.Logger
}

// New builds a Brain from factory. If freePlay is true, address 0 is poked
// to 2 before the VM's first instruction runs — the same "insert quarters"
// patch spec section 4.8 describes, which switches some Ascii-brain
// programs from a fixed demonstration run into an interactive one.
func New(factory *vm.Factory, freePlay bool, log *gvmlog.Logger) *Brain {
	if log == nil {
		log = gvmlog.Default
	}
	m := factory.Build()
	if freePlay {
		m.MemoryPoke(0, 2)
	}
	return &Brain{m: m, log: log}
}

// SendLine pushes a line of text followed by a newline, as the protocol's
// command-entry prompts expect.
func (b *Brain) SendLine(line string) {
	b.m.PushInputLine(line)
}

// SendBool pushes a single bool-as-int64 input, for protocols whose inner
// loop expects a bare 0/1 rather than a full text line.
func (b *Brain) SendBool(v bool) {
	b.m.PushInputBool(v)
}

// ReadFrame accumulates whole lines of camera output until the program
// halts, stops to wait for input, or emits a numeric answer instead of
// another line of text, matching the re-sync rule PullLineOrNumber
// implements at the VM layer. It returns the accumulated text frame, or the
// trailing numeric answer if one was produced, with isNumber set
// accordingly. Halting or waiting with no text accumulated, and any other
// VM error, is returned wrapped.
func (b *Brain) ReadFrame() (frame string, answer int64, isNumber bool, err error) {
	var sb strings.Builder
	for {
		line, num, numOK, perr := b.m.PullLineOrNumber()
		if perr != nil {
			if sb.Len() > 0 && (perr == vm.ErrPrematureEndOfOutput || perr == vm.ErrWaitingForInput) {
				return strings.TrimRight(sb.String(), "\n"), 0, false, nil
			}
			return "", 0, false, errors.Wrap(perr, "asciibrain: reading camera frame")
		}
		if numOK {
			return strings.TrimRight(sb.String(), "\n"), num, true, nil
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
}

// State reports the underlying VM's run state, for hosts driving an
// interactive session loop.
func (b *Brain) State() vm.RunState {
	return b.m.State()
}

// Halted reports whether the underlying program has finished.
func (b *Brain) Halted() bool {
	return b.m.State() == vm.Halted
}
