package tractorbeam

import (
	"testing"

	"github.com/stretchr/testify/require"
	"intcode/vm"
)

func TestReadPointUsesFreshVMPerQuery(t *testing.T) {
	// Pulled iff x == y (a diagonal beam), to exercise per-query freshness.
	const source = `3,100,3,101,8,100,101,102,4,102,99`
	factory, err := vm.ParseProgram(source)
	require.NoError(t, err)
	p := New(factory, nil)

	pulled, err := p.ReadPoint(3, 3)
	require.NoError(t, err)
	require.True(t, pulled)

	pulled, err = p.ReadPoint(3, 4)
	require.NoError(t, err)
	require.False(t, pulled)
}
