package boggle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openwordgames/wordsolver/lexicon"
)

func testSolver(t *testing.T, words ...string) *Solver {
	t.Helper()
	lex, err := lexicon.Build(words)
	require.NoError(t, err)
	return NewSolver(lex)
}

func TestSolveFindsChains(t *testing.T) {
	s := testSolver(t, "CAT", "CATS", "ACTS", "DOG", "AT")
	grid := [][]byte{
		{'C', 'A'},
		{'T', 'S'},
	}
	words, paths, err := s.Solve(grid)
	require.NoError(t, err)

	// Longest first, ties alphabetical; AT is under the length floor
	// and DOG is not on the grid.
	assert.Equal(t, []string{"ACTS", "CATS", "CAT"}, words)
	assert.Equal(t, []Path{{{0, 0}, {0, 1}, {1, 0}, {1, 1}}}, paths["CATS"])
}

func TestSolveNeverRevisitsACell(t *testing.T) {
	// TAT needs two Ts; the grid has one.
	s := testSolver(t, "TAT")
	grid := [][]byte{
		{'T', 'A'},
	}
	words, _, err := s.Solve(grid)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestSolveReportsEveryPath(t *testing.T) {
	s := testSolver(t, "TOT")
	grid := [][]byte{
		{'T', 'O', 'T'},
	}
	words, paths, err := s.Solve(grid)
	require.NoError(t, err)
	require.Equal(t, []string{"TOT"}, words)
	// One path from each T.
	assert.Len(t, paths["TOT"], 2)
}

func TestSolveRejectsBadGrids(t *testing.T) {
	s := testSolver(t, "CAT")

	_, _, err := s.Solve([][]byte{{'A', 'B'}, {'C'}})
	var ge *GridError
	require.ErrorAs(t, err, &ge)

	_, _, err = s.Solve([][]byte{{'a'}})
	require.ErrorAs(t, err, &ge)

	words, _, err := s.Solve(nil)
	assert.NoError(t, err)
	assert.Empty(t, words)
}
