// Package crosses computes cross-check sets: for each vacant square,
// the set of letters that would form a lexicon-valid word with the
// contiguous run of tiles perpendicular to the direction of play.
package crosses

import (
	"github.com/rs/zerolog/log"

	"github.com/openwordgames/wordsolver/board"
	"github.com/openwordgames/wordsolver/lexicon"
	"github.com/openwordgames/wordsolver/tiles"
)

const (
	// TrivialCrossSet allows every possible letter. It is the state of
	// any square with no perpendicular neighbors.
	TrivialCrossSet CrossSet = (1 << 26) - 1
)

// A CrossSet is a bit mask of the letters allowed on a square. It is
// inherently directional: when generating moves along a row, the cross
// set of a square is determined by the tiles above and below it.
type CrossSet uint32

// Allowed returns whether the letter at the 0-25 index may be placed.
func (c CrossSet) Allowed(idx int) bool {
	return c&(1<<uint(idx)) != 0
}

// Set allows the letter at the 0-25 index.
func (c *CrossSet) Set(idx int) {
	*c = *c | (1 << uint(idx))
}

// Clear disallows every letter.
func (c *CrossSet) Clear() {
	*c = 0
}

// FromString builds a cross set from the given letters, for tests.
func FromString(letters string) CrossSet {
	c := CrossSet(0)
	for i := 0; i < len(letters); i++ {
		c.Set(int(letters[i] - 'A'))
	}
	return c
}

// BoardCrosses holds the cross sets of every square of one board
// orientation. It is computed once per search and never mutated
// mid-search.
type BoardCrosses struct {
	sets []CrossSet
	rows int
	cols int
}

// Allowed returns whether the letter at the 0-25 index may be placed on
// the square.
func (bc *BoardCrosses) Allowed(row, col, idx int) bool {
	return bc.sets[row*bc.cols+col].Allowed(idx)
}

// CrossSet returns the square's cross set.
func (bc *BoardCrosses) CrossSet(row, col int) CrossSet {
	return bc.sets[row*bc.cols+col]
}

// Generator computes BoardCrosses for a board against a lexicon.
type Generator struct {
	Lexicon *lexicon.Lexicon
}

// Generate computes the cross sets and scores for every square of the
// board in its current orientation. Runs perpendicular to a row are the
// board's columns, so generating for the vertical direction is done by
// handing in the transposed board.
func (g Generator) Generate(b *board.GameBoard) *BoardCrosses {
	rows, cols := b.Dims()
	bc := &BoardCrosses{
		sets: make([]CrossSet, rows*cols),
		rows: rows,
		cols: cols,
	}
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			g.genForSquare(b, bc, row, col)
		}
	}
	log.Debug().Int("rows", rows).Int("cols", cols).
		Bool("transposed", b.IsTransposed()).Msg("generated cross sets")
	return bc
}

func (g Generator) genForSquare(b *board.GameBoard, bc *BoardCrosses, row, col int) {
	pos := row*bc.cols + col
	if b.HasTile(row, col) {
		// An occupied square accepts nothing.
		bc.sets[pos] = 0
		return
	}
	above, below := perpendicularRun(b, row, col)
	if len(above) == 0 && len(below) == 0 {
		bc.sets[pos] = TrivialCrossSet
		return
	}
	cs := CrossSet(0)
	// Walk the run above through the trie once, then test each candidate
	// letter followed by the run below. The trie prunes a letter the
	// moment no word continues through it.
	node := g.Lexicon.Root()
	for _, t := range above {
		node = node.Child(t.Index())
		if node == nil {
			// The run above is not a prefix of any word; nothing fits.
			bc.sets[pos] = 0
			return
		}
	}
	for idx := 0; idx < 26; idx++ {
		child := node.Child(idx)
		if child == nil {
			continue
		}
		if wordDown(child, below) {
			cs.Set(idx)
		}
	}
	bc.sets[pos] = cs
}

// perpendicularRun collects the contiguous tiles directly above and
// below the square.
func perpendicularRun(b *board.GameBoard, row, col int) (above, below []tiles.Tile) {
	top := row - 1
	for b.HasTile(top, col) {
		top--
	}
	for r := top + 1; r < row; r++ {
		above = append(above, b.TileAt(r, col))
	}
	for r := row + 1; b.HasTile(r, col); r++ {
		below = append(below, b.TileAt(r, col))
	}
	return above, below
}

// wordDown reports whether following the run below from the given node
// lands on a terminal node.
func wordDown(node *lexicon.Node, below []tiles.Tile) bool {
	for _, t := range below {
		node = node.Child(t.Index())
		if node == nil {
			return false
		}
	}
	return node.Terminal()
}
