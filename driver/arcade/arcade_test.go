package arcade

import (
	"testing"

	"github.com/stretchr/testify/require"
	"intcode/vm"
)

func TestPlayAppliesTilesAndScore(t *testing.T) {
	// Draws one block tile at (1,0), reports a score of 7, then halts.
	const source = `1101,1,0,100,1101,0,0,101,1101,2,0,102,1101,-1,0,103,1101,0,0,104,1101,7,0,105,
4,100,4,101,4,102,4,103,4,104,4,105,99`
	factory, err := vm.ParseProgram(source)
	require.NoError(t, err)

	g := New(factory, false, nil)
	require.NoError(t, g.Play())
	require.Equal(t, int64(7), g.Score())
	require.Equal(t, 1, g.BlockCount())
}
