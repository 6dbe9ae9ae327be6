package asciibrain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"intcode/vm"
)

func TestReadFrameAccumulatesLinesThenNumber(t *testing.T) {
	// Emits two text lines, then the final answer as a single raw output
	// value larger than any legal ASCII character (no trailing newline),
	// matching the real protocol's one-word numeric result.
	const source = `104,72,104,105,104,10,104,98,104,121,104,101,104,10,104,25398972,99`
	factory, err := vm.ParseProgram(source)
	require.NoError(t, err)

	b := New(factory, false, nil)
	frame, num, isNumber, err := b.ReadFrame()
	require.NoError(t, err)
	require.True(t, isNumber)
	require.Equal(t, int64(25398972), num)
	require.Equal(t, "Hi\nbye", frame)
}

func TestFreePlayPatchesAddressZero(t *testing.T) {
	factory, err := vm.ParseProgram("1,0,0,0,99")
	require.NoError(t, err)
	b := New(factory, true, nil)
	require.Equal(t, int64(2), b.m.MemoryPeek(0))
}
