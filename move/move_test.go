package move

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openwordgames/wordsolver/tiles"
)

func placement(word string, row, col int, vertical bool, score int) *Placement {
	ts := make([]tiles.Tile, len(word))
	for i := 0; i < len(word); i++ {
		ts[i] = tiles.Tile(word[i])
	}
	return NewPlacement(ts, row, col, vertical, score, nil)
}

func TestPlacementAccessors(t *testing.T) {
	p := NewPlacement([]tiles.Tile{'C', 'a', 'T'}, 3, 4, true, 12,
		[][2]int{{3, 4}, {5, 4}})
	assert.Equal(t, "CAT", p.Word())
	assert.Equal(t, 2, p.TilesPlayed())
	row, col, vertical := p.CoordsAndVertical()
	assert.Equal(t, 3, row)
	assert.Equal(t, 4, col)
	assert.True(t, vertical)
	assert.Equal(t, 12, p.Score())
	assert.Equal(t, "<CAT (3,4) down score: 12>", p.String())
}

func TestNewPlacementCopiesInputs(t *testing.T) {
	word := []tiles.Tile{'A', 'T'}
	cells := [][2]int{{0, 0}}
	p := NewPlacement(word, 0, 0, false, 2, cells)
	word[0] = 'X'
	cells[0] = [2]int{9, 9}
	assert.Equal(t, "AT", p.Word())
	assert.Equal(t, [][2]int{{0, 0}}, p.NewCells())
}

func TestSortOrder(t *testing.T) {
	plays := []*Placement{
		placement("BEE", 0, 3, false, 10),
		placement("ACE", 7, 2, true, 10),
		placement("ACE", 7, 2, false, 10),
		placement("ACE", 2, 5, false, 10),
		placement("ZAP", 1, 1, false, 30),
		placement("ACE", 2, 4, false, 10),
	}
	Sort(plays)

	expected := []string{
		"<ZAP (1,1) across score: 30>",
		"<ACE (2,4) across score: 10>",
		"<ACE (2,5) across score: 10>",
		"<ACE (7,2) across score: 10>",
		"<ACE (7,2) down score: 10>",
		"<BEE (0,3) across score: 10>",
	}
	for i, p := range plays {
		if p.String() != expected[i] {
			t.Errorf("position %v: expected %v, got %v", i, expected[i], p)
		}
	}
}
