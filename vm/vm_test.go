package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func compileAndCheckSource(t *testing.T, source string) *VM {
	t.Helper()
	factory, err := ParseProgram(source)
	require.NoError(t, err)
	return factory.Build()
}

func runToHalt(t *testing.T, v *VM) {
	t.Helper()
	for {
		res := v.Step()
		switch res.Kind {
		case StepHalted:
			return
		case StepError:
			t.Fatalf("unexpected error: %v", res.Err)
		}
	}
}

func pullAll(t *testing.T, v *VM) []int64 {
	t.Helper()
	var out []int64
	for {
		val, err := v.Pull()
		if err == ErrPrematureEndOfOutput {
			return out
		}
		require.NoError(t, err)
		out = append(out, val)
	}
}

func TestQuineIsIdentity(t *testing.T) {
	quine := []int64{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}
	v := New(quine)
	got := pullAll(t, v)
	require.Equal(t, quine, got)
}

func TestArithmeticProgram(t *testing.T) {
	v := compileAndCheckSource(t, "1,9,10,3,2,3,11,0,99,30,40,50")
	runToHalt(t, v)
	require.Equal(t, int64(3500), v.MemoryPeek(0))
}

func TestImmediateParameterMode(t *testing.T) {
	v := compileAndCheckSource(t, "1101,100,-1,4,0")
	runToHalt(t, v)
	require.Equal(t, int64(99), v.MemoryPeek(4))
}

func TestBranchingComparesAgainstEight(t *testing.T) {
	const source = `3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31,
1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104,
999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99`

	for input, want := range map[int64]int64{7: 999, 8: 1000, 9: 1001} {
		factory, err := ParseProgram(source)
		require.NoError(t, err)
		v := factory.Build()
		v.PushInput(input)
		out, err := v.Pull()
		require.NoError(t, err)
		require.Equal(t, want, out)
	}
}

func TestSuspensionRewindsAndResumes(t *testing.T) {
	v := compileAndCheckSource(t, "3,0,4,0,99")
	res := v.Step()
	require.Equal(t, StepSuspended, res.Kind)
	require.Equal(t, WaitingForInput, v.State())

	v.PushInput(42)
	val, err := v.Pull()
	require.NoError(t, err)
	require.Equal(t, int64(42), val)
}

func TestUnpull(t *testing.T) {
	v := compileAndCheckSource(t, "104,7,104,8,99")
	first, err := v.Pull()
	require.NoError(t, err)
	require.Equal(t, int64(7), first)
	v.Unpull(first)
	again, err := v.Pull()
	require.NoError(t, err)
	require.Equal(t, int64(7), again)
}

func TestMemoryDefaultsToZero(t *testing.T) {
	m := NewMemory([]int64{1, 2, 3})
	require.Equal(t, int64(0), m.Get(1000))
	m.Set(1000, 9)
	require.Equal(t, int64(9), m.Get(1000))
	m.Reset()
	require.Equal(t, int64(0), m.Get(1000))
	require.Equal(t, int64(1), m.Get(0))
}

func TestRelativeBaseAddressing(t *testing.T) {
	// Sets the relative base to 2000, then adds 7+8 into relative offset 0.
	v := compileAndCheckSource(t, "109,2000,21101,7,8,0,99")
	res := v.Step()
	require.Equal(t, StepContinue, res.Kind)
	runToHalt(t, v)
	require.Equal(t, int64(15), v.MemoryPeek(2000))
}

func TestHaltedIsIdempotent(t *testing.T) {
	v := compileAndCheckSource(t, "99")
	first := v.Step()
	require.Equal(t, StepHalted, first.Kind)
	second := v.Step()
	require.Equal(t, StepHalted, second.Kind)
}

func TestErrorIsSticky(t *testing.T) {
	v := compileAndCheckSource(t, "55,0,0,0")
	first := v.Step()
	require.Equal(t, StepError, first.Kind)
	require.Equal(t, Errored, v.State())

	second := v.Step()
	require.Equal(t, StepError, second.Kind)
	require.ErrorIs(t, second.Err, ErrStoppedAfterError)
}

func TestNegativeInstructionIsNotAnInstruction(t *testing.T) {
	v := compileAndCheckSource(t, "-1,0,0,0")
	res := v.Step()
	require.Equal(t, StepError, res.Kind)
	var target *NotAnInstructionError
	require.ErrorAs(t, res.Err, &target)
}

func TestIllegalOpcode(t *testing.T) {
	v := compileAndCheckSource(t, "5000,0,0,0")
	res := v.Step()
	require.Equal(t, StepError, res.Kind)
	var target *IllegalOperationError
	require.ErrorAs(t, res.Err, &target)
}

func TestReset(t *testing.T) {
	v := compileAndCheckSource(t, "1,0,0,0,99")
	runToHalt(t, v)
	require.Equal(t, int64(2), v.MemoryPeek(0))
	v.Reset()
	require.Equal(t, Running, v.State())
	require.Equal(t, int64(1), v.MemoryPeek(0))
}
