package wordsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openwordgames/wordsolver/lexicon"
)

func testGrid() [][]byte {
	return [][]byte{
		{'C', 'A', 'T'},
		{'O', 'O', 'O'},
		{'D', 'O', 'G'},
	}
}

func testSolver(t *testing.T, words ...string) *Solver {
	t.Helper()
	lex, err := lexicon.Build(words)
	require.NoError(t, err)
	return NewSolver(lex)
}

func TestSolveAllDirections(t *testing.T) {
	s := testSolver(t, "CAT", "DOG", "GOD", "COD", "EMU")

	finds, err := s.Solve(testGrid(), nil)
	require.NoError(t, err)
	expected := []Find{
		{Word: "CAT", Row: 0, Col: 0, Direction: East},
		{Word: "COD", Row: 0, Col: 0, Direction: South},
		{Word: "DOG", Row: 2, Col: 0, Direction: East},
		{Word: "GOD", Row: 2, Col: 2, Direction: West},
	}
	assert.Equal(t, expected, finds)
}

func TestSolveRestrictedDirections(t *testing.T) {
	s := testSolver(t, "CAT", "DOG", "GOD", "COD")

	finds, err := s.Solve(testGrid(), []Direction{East})
	require.NoError(t, err)
	words := make([]string, len(finds))
	for i, f := range finds {
		words[i] = f.Word
	}
	assert.Equal(t, []string{"CAT", "DOG"}, words)
}

func TestSolveDiagonals(t *testing.T) {
	s := testSolver(t, "COG", "GOC", "TOD", "DOT")
	finds, err := s.Solve(testGrid(), nil)
	require.NoError(t, err)

	expected := []Find{
		{Word: "COG", Row: 0, Col: 0, Direction: SouthEast},
		{Word: "DOT", Row: 2, Col: 0, Direction: NorthEast},
		{Word: "GOC", Row: 2, Col: 2, Direction: NorthWest},
		{Word: "TOD", Row: 0, Col: 2, Direction: SouthWest},
	}
	assert.Equal(t, expected, finds)
}

func TestSolveRejectsBadGrids(t *testing.T) {
	s := testSolver(t, "CAT")

	var ge *GridError
	_, err := s.Solve([][]byte{{'A', 'B'}, {'C'}}, nil)
	require.ErrorAs(t, err, &ge)
	_, err = s.Solve([][]byte{{'1'}}, nil)
	require.ErrorAs(t, err, &ge)

	finds, err := s.Solve(nil, nil)
	assert.NoError(t, err)
	assert.Empty(t, finds)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "N", North.String())
	assert.Equal(t, "SW", SouthWest.String())
}
