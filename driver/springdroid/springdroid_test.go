package springdroid

import (
	"testing"

	"github.com/stretchr/testify/require"
	"intcode/vm"
)

func TestSendRejectsOutOfRangeSensorForWalkMode(t *testing.T) {
	factory, err := vm.ParseProgram("99")
	require.NoError(t, err)
	d := New(factory, Walk, nil)

	err = d.Send(Instruction{Op: Not, Src: 'E', Dst: 'J'})
	require.Error(t, err)
}

func TestSendAllowsFullRangeForRunMode(t *testing.T) {
	factory, err := vm.ParseProgram("99")
	require.NoError(t, err)
	d := New(factory, Run, nil)

	err = d.Send(Instruction{Op: Not, Src: 'I', Dst: 'J'})
	require.NoError(t, err)
}

func TestInstructionString(t *testing.T) {
	i := Instruction{Op: And, Src: 'D', Dst: 'J'}
	require.Equal(t, "AND D J", i.String())
}

func TestStartReturnsNumericResultOnSuccess(t *testing.T) {
	// Reads and discards exactly 5 input characters (the "WALK\n" terminator
	// line Start() sends for an empty instruction list), then reports the
	// hull damage count as a single raw output value, per spec section 4.8's
	// one-word numeric answer.
	const source = `3,100,3,101,3,102,3,103,3,104,104,25398972,99`
	factory, err := vm.ParseProgram(source)
	require.NoError(t, err)

	d := New(factory, Walk, nil)
	report, result, succeeded, err := d.Start(nil)
	require.NoError(t, err)
	require.True(t, succeeded)
	require.Equal(t, int64(25398972), result)
	require.Empty(t, report)
}
