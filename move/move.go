// Package move contains the Placement type, the output of the move
// generator, and its canonical ordering.
package move

import (
	"fmt"
	"sort"

	"github.com/openwordgames/wordsolver/tiles"
)

// A Placement is a single candidate play: the full main word (including
// tiles that were already on the board; blanks in lower case), its
// origin square, its orientation, and its score. It is a computed,
// stateless output; applying it to a board is a separate, explicit
// operation.
type Placement struct {
	tiles       []tiles.Tile
	row         int
	col         int
	vertical    bool
	score       int
	tilesPlayed int
	newCells    [][2]int
}

// NewPlacement creates a Placement. word is the complete main word;
// newCells lists the (row, col) coordinates that receive a rack tile,
// in word order.
func NewPlacement(word []tiles.Tile, row, col int, vertical bool,
	score int, newCells [][2]int) *Placement {

	w := make([]tiles.Tile, len(word))
	copy(w, word)
	nc := make([][2]int, len(newCells))
	copy(nc, newCells)
	return &Placement{
		tiles:       w,
		row:         row,
		col:         col,
		vertical:    vertical,
		score:       score,
		tilesPlayed: len(newCells),
		newCells:    nc,
	}
}

// Word returns the main word in upper case.
func (p *Placement) Word() string {
	return tiles.TilesToWord(p.tiles)
}

// Tiles returns the main word's tiles; blanks are lower case.
func (p *Placement) Tiles() []tiles.Tile {
	return p.tiles
}

// CoordsAndVertical returns the origin row and column of the word and
// whether it runs vertically.
func (p *Placement) CoordsAndVertical() (int, int, bool) {
	return p.row, p.col, p.vertical
}

// NewCells returns the (row, col) coordinates covered by newly placed
// tiles, in word order.
func (p *Placement) NewCells() [][2]int {
	return p.newCells
}

// TilesPlayed returns the number of tiles placed from the rack.
func (p *Placement) TilesPlayed() int {
	return p.tilesPlayed
}

// Score returns the point value of the placement.
func (p *Placement) Score() int {
	return p.score
}

func (p *Placement) String() string {
	orient := "across"
	if p.vertical {
		orient = "down"
	}
	return fmt.Sprintf("<%s (%d,%d) %s score: %d>", p.Word(), p.row, p.col,
		orient, p.score)
}

// less is the canonical placement ordering: score descending, then word
// ascending, horizontal before vertical, then origin row and column.
func less(a, b *Placement) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	aw, bw := a.Word(), b.Word()
	if aw != bw {
		return aw < bw
	}
	if a.vertical != b.vertical {
		return !a.vertical
	}
	if a.row != b.row {
		return a.row < b.row
	}
	return a.col < b.col
}

// Sort orders placements canonically, in place.
func Sort(plays []*Placement) {
	sort.Slice(plays, func(i, j int) bool {
		return less(plays[i], plays[j])
	})
}
