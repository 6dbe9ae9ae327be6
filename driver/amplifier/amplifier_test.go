package amplifier

import (
	"testing"

	"github.com/stretchr/testify/require"
	"intcode/vm"
)

func TestRunLinearExampleYields43210(t *testing.T) {
	factory, err := vm.ParseProgram("3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0")
	require.NoError(t, err)

	chain := New(factory, nil)
	out, err := chain.RunLinear([]int64{4, 3, 2, 1, 0})
	require.NoError(t, err)
	require.Equal(t, int64(43210), out)
}

func TestRunFeedbackExampleYields139629729(t *testing.T) {
	const source = `3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,
27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5`
	factory, err := vm.ParseProgram(source)
	require.NoError(t, err)

	chain := New(factory, nil)
	out, err := chain.RunFeedback([]int64{9, 8, 7, 6, 5})
	require.NoError(t, err)
	require.Equal(t, int64(139629729), out)
}
