package vm

import (
	"strings"
)

// VM is a single IntCode machine instance: memory, instruction pointer,
// relative base, an input queue fed by the host, and an output queue
// drained by the host. Per spec section 5 a VM is single-threaded and
// cooperative — Step never blocks, spawns a goroutine, or touches a lock.
// Suspension on a starved Input instruction is a structural yield: Step
// rewinds the instruction pointer and returns control to the caller.
type VM struct {
	mem     *Memory
	ip      int64
	relBase int64
	state   RunState
	err     error

	input  []int64
	output []int64
}

// New builds a VM over a private copy of program. Most callers should go
// through a Factory instead so that repeated runs share parsed program
// text; New is exposed for callers building a program image some other way.
func New(program []int64) *VM {
	return &VM{
		mem:   NewMemory(program),
		state: Running,
	}
}

// State reports the machine's current run state.
func (v *VM) State() RunState { return v.state }

// Err reports the latched error once the machine is Errored, else nil.
func (v *VM) Err() error { return v.err }

// Reset restores memory to the original program image, zeroes the
// instruction pointer and relative base, returns to Running, and discards
// any queued input or output. Per spec this is how drivers get a fresh run
// without re-parsing program text (see Factory.Build for the alternative:
// a brand new VM sharing the same parsed image).
func (v *VM) Reset() {
	v.mem.Reset()
	v.ip = 0
	v.relBase = 0
	v.state = Running
	v.err = nil
	v.input = v.input[:0]
	v.output = v.output[:0]
}

// MemoryPeek reads a raw memory cell without affecting run state.
func (v *VM) MemoryPeek(addr int64) int64 {
	return v.mem.Get(addr)
}

// MemoryPoke writes a raw memory cell without affecting run state. Drivers
// use this for the Ascii-brain and arcade "quarters" patch: addr 0 to 2
// before the first run, per spec section 4.8.
func (v *VM) MemoryPoke(addr, value int64) {
	v.mem.Set(addr, value)
}

// PushInput appends a raw word to the input queue.
func (v *VM) PushInput(values ...int64) {
	v.input = append(v.input, values...)
}

// PushInputBool appends a bool encoded as 0/1.
func (v *VM) PushInputBool(b bool) {
	if b {
		v.PushInput(1)
	} else {
		v.PushInput(0)
	}
}

// PushInputChar appends a single ASCII character's code point.
func (v *VM) PushInputChar(c byte) {
	v.PushInput(int64(c))
}

// PushInputLine appends every character of line followed by a trailing
// newline (10), matching the line-oriented protocol Ascii-brain programs
// expect on stdin.
func (v *VM) PushInputLine(line string) {
	for i := 0; i < len(line); i++ {
		v.PushInputChar(line[i])
	}
	v.PushInputChar('\n')
}

// Pull returns the oldest queued output without blocking. If none is
// queued it drives the machine forward (via Step) until it produces one,
// halts, suspends for input, or errors. Suspension while pulling surfaces
// ErrWaitingForInput; halting with nothing left to pull surfaces
// ErrPrematureEndOfOutput.
func (v *VM) Pull() (int64, error) {
	for len(v.output) == 0 {
		res := v.Step()
		switch res.Kind {
		case StepOutput:
			// handled by the loop condition on the next iteration
		case StepHalted:
			return 0, ErrPrematureEndOfOutput
		case StepSuspended:
			return 0, ErrWaitingForInput
		case StepError:
			return 0, res.Err
		}
	}
	return v.popOutput(), nil
}

// PullBlocking behaves like Pull but never returns ErrWaitingForInput: if
// the machine suspends, PullBlocking feeds it the values yielded by next
// (called with no arguments) and resumes stepping. Hosts that want to
// satisfy input requests interactively pass a closure that reads from
// wherever their input comes from.
func (v *VM) PullBlocking(next func() int64) (int64, error) {
	for len(v.output) == 0 {
		res := v.Step()
		switch res.Kind {
		case StepHalted:
			return 0, ErrPrematureEndOfOutput
		case StepSuspended:
			v.PushInput(next())
		case StepError:
			return 0, res.Err
		}
	}
	return v.popOutput(), nil
}

// PullNextN pulls exactly n outputs in order, e.g. for the arcade
// controller's (x, y, tileID) triples.
func (v *VM) PullNextN(n int) ([]int64, error) {
	out := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		val, err := v.Pull()
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}
	return out, nil
}

// Unpull pushes a value back onto the front of the output queue, as if it
// had never been pulled. Used by PullLine to push back an out-of-range
// value seen before any character of a line has been accumulated.
func (v *VM) Unpull(value int64) {
	v.output = append([]int64{value}, v.output...)
}

// PullBool pulls one output and interprets 0/nonzero as false/true.
func (v *VM) PullBool() (bool, error) {
	val, err := v.Pull()
	if err != nil {
		return false, err
	}
	return val != 0, nil
}

// PullChar pulls one output and validates it is in the ASCII range.
func (v *VM) PullChar() (byte, error) {
	val, err := v.Pull()
	if err != nil {
		return 0, err
	}
	if val < 0 || val > 127 {
		return 0, &NotAValidCharError{Value: val}
	}
	return byte(val), nil
}

// PullLine pulls characters until a newline (10) or halt, returning the
// accumulated line without the trailing newline. A halt with characters
// already accumulated is not an error: the line is returned as-is.
//
// A value outside 0..=127 seen before any character has been accumulated
// is not a line at all (it belongs to some other protocol phase, e.g. a
// raw numeric answer); it is pushed back via Unpull and PullLine reports
// ok=false with a nil error so the caller can re-pull it through whatever
// channel does understand it. A non-ASCII value seen after the line has
// already begun has no such reinterpretation and is an error.
func (v *VM) PullLine() (line string, ok bool, err error) {
	var sb strings.Builder
	for {
		val, perr := v.Pull()
		if perr == ErrPrematureEndOfOutput {
			if sb.Len() > 0 {
				return sb.String(), true, nil
			}
			return "", false, perr
		}
		if perr != nil {
			return "", false, perr
		}
		if val == '\n' {
			return sb.String(), true, nil
		}
		if val < 0 || val > 127 {
			if sb.Len() == 0 {
				v.Unpull(val)
				return "", false, nil
			}
			return "", false, &NotAValidCharError{Value: val}
		}
		sb.WriteByte(byte(val))
	}
}

// PullLineOrNumber pulls characters until either a newline is seen (in
// which case the accumulated text is returned as a line) or a single raw
// output value outside 0..=127 is seen — this is the re-sync rule
// Ascii-brain and Spring-droid programs need because their final numeric
// answer (a hull-damage count or a dust-collection total) is emitted as
// one raw word larger than any legal ASCII character, not as a sequence of
// digit characters, per spec section 4.8.
func (v *VM) PullLineOrNumber() (line string, num int64, isNumber bool, err error) {
	var sb strings.Builder
	for {
		val, perr := v.Pull()
		if perr == ErrPrematureEndOfOutput {
			if sb.Len() > 0 {
				return sb.String(), 0, false, nil
			}
			return "", 0, false, perr
		}
		if perr != nil {
			return "", 0, false, perr
		}
		if val == '\n' {
			return sb.String(), 0, false, nil
		}
		if val < 0 || val > 127 {
			if sb.Len() == 0 {
				return "", val, true, nil
			}
			return "", 0, false, &NotAValidCharError{Value: val}
		}
		sb.WriteByte(byte(val))
	}
}

func (v *VM) popOutput() int64 {
	val := v.output[0]
	v.output = v.output[1:]
	return val
}
