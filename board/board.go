// Package board contains the board model: a rectangular grid of squares
// carrying tiles and premium markings, with anchor detection and an
// explicit commit operation that returns a new board.
package board

import (
	"fmt"
	"strings"

	"github.com/openwordgames/wordsolver/move"
	"github.com/openwordgames/wordsolver/tiles"
)

// WordDirection is the direction WordEdge walks in along a row.
type WordDirection int

const (
	LeftDirection  WordDirection = -1
	RightDirection WordDirection = 1
)

// A BonusSquare is a premium square marking.
type BonusSquare rune

const (
	// Bonus3WS is a triple word score.
	Bonus3WS BonusSquare = '='
	// Bonus2WS is a double word score.
	Bonus2WS BonusSquare = '-'
	// Bonus3LS is a triple letter score.
	Bonus3LS BonusSquare = '"'
	// Bonus2LS is a double letter score.
	Bonus2LS BonusSquare = '\''
	// NoBonus is a plain square.
	NoBonus BonusSquare = ' '
)

// LetterMultiplier returns the letter multiplier of this bonus (1 for
// word bonuses and plain squares).
func (b BonusSquare) LetterMultiplier() int {
	switch b {
	case Bonus2LS:
		return 2
	case Bonus3LS:
		return 3
	}
	return 1
}

// WordMultiplier returns the word multiplier of this bonus (1 for
// letter bonuses and plain squares).
func (b BonusSquare) WordMultiplier() int {
	switch b {
	case Bonus2WS:
		return 2
	case Bonus3WS:
		return 3
	}
	return 1
}

// A Square is a single square of the board: its tile (if any), its
// bonus, and whether the bonus has already been consumed by an earlier
// play. Consuming a multiplier is a one-time event.
type Square struct {
	tile      tiles.Tile
	bonus     BonusSquare
	bonusUsed bool
}

// Tile returns the tile on the square, or tiles.EmptyTile.
func (s Square) Tile() tiles.Tile {
	return s.tile
}

// Bonus returns the square's premium marking.
func (s Square) Bonus() BonusSquare {
	return s.bonus
}

// BonusUsed returns whether the square's multiplier was consumed by a
// previous placement.
func (s Square) BonusUsed() bool {
	return s.bonusUsed
}

// IsEmpty returns whether the square is vacant.
func (s Square) IsEmpty() bool {
	return s.tile == tiles.EmptyTile
}

// ValidationError reports malformed board input.
type ValidationError struct {
	Row    int
	Col    int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Row < 0 {
		return "invalid board: " + e.Reason
	}
	return fmt.Sprintf("invalid board at row %d, col %d: %s", e.Row, e.Col, e.Reason)
}

// BoundsError reports a coordinate outside the grid.
type BoundsError struct {
	Row int
	Col int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("coordinate (%d, %d) is not on the board", e.Row, e.Col)
}

// An Anchor is a coordinate a new placement may legally start from or
// pass through.
type Anchor struct {
	Row int
	Col int
}

// A GameBoard is the board: a rectangular grid of Squares. It is
// treated as an immutable snapshot for the duration of one search;
// ApplyPlacement returns a fresh board rather than mutating.
type GameBoard struct {
	squares    [][]Square
	rows       int
	cols       int
	tilesOn    int
	transposed bool
}

// FromLayout creates an empty board with the given premium layout.
func FromLayout(layout Layout) (*GameBoard, error) {
	if len(layout.Rows) == 0 {
		return nil, &ValidationError{Row: -1, Reason: "layout has no rows"}
	}
	cols := len([]rune(layout.Rows[0]))
	squares := make([][]Square, len(layout.Rows))
	for i, rowDesc := range layout.Rows {
		runes := []rune(rowDesc)
		if len(runes) != cols {
			return nil, &ValidationError{Row: i, Col: -1,
				Reason: "layout rows have unequal lengths"}
		}
		row := make([]Square, cols)
		for j, r := range runes {
			switch BonusSquare(r) {
			case Bonus3WS, Bonus2WS, Bonus3LS, Bonus2LS, NoBonus:
				row[j] = Square{bonus: BonusSquare(r)}
			default:
				return nil, &ValidationError{Row: i, Col: j,
					Reason: fmt.Sprintf("unknown bonus %q", string(r))}
			}
		}
		squares[i] = row
	}
	return &GameBoard{squares: squares, rows: len(squares), cols: cols}, nil
}

// FromMatrix creates a board from a row-major matrix of tile tokens laid
// over the given premium layout. Tokens are a single uppercase letter
// for a tile, a lowercase letter for a blank played as that letter, and
// "*" or the empty string for a vacant square. The matrix dimensions
// must match the layout exactly. Squares that already hold a tile have
// their multipliers marked consumed.
func FromMatrix(layout Layout, matrix [][]string) (*GameBoard, error) {
	g, err := FromLayout(layout)
	if err != nil {
		return nil, err
	}
	if len(matrix) != g.rows {
		return nil, &ValidationError{Row: -1, Reason: fmt.Sprintf(
			"expected %d rows, received %d", g.rows, len(matrix))}
	}
	for i, row := range matrix {
		if len(row) != g.cols {
			return nil, &ValidationError{Row: i, Col: -1, Reason: fmt.Sprintf(
				"expected %d columns, received %d", g.cols, len(row))}
		}
		for j, token := range row {
			t, err := tiles.ParseTile(token)
			if err != nil {
				return nil, &ValidationError{Row: i, Col: j, Reason: err.Error()}
			}
			if t != tiles.EmptyTile {
				g.squares[i][j].tile = t
				g.squares[i][j].bonusUsed = true
				g.tilesOn++
			}
		}
	}
	return g, nil
}

// Dims returns the number of rows and columns.
func (g *GameBoard) Dims() (int, int) {
	return g.rows, g.cols
}

// TilesOnBoard returns the number of occupied squares.
func (g *GameBoard) TilesOnBoard() int {
	return g.tilesOn
}

// IsBoardEmpty returns whether no tile has been placed yet.
func (g *GameBoard) IsBoardEmpty() bool {
	return g.tilesOn == 0
}

// PosExists returns whether the coordinate is on the board.
func (g *GameBoard) PosExists(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// GetSquare returns the square at the coordinate, or a BoundsError.
func (g *GameBoard) GetSquare(row, col int) (Square, error) {
	if !g.PosExists(row, col) {
		return Square{}, &BoundsError{Row: row, Col: col}
	}
	return g.squares[row][col], nil
}

// IsEmpty reports whether the square at the coordinate is vacant, or a
// BoundsError.
func (g *GameBoard) IsEmpty(row, col int) (bool, error) {
	if !g.PosExists(row, col) {
		return false, &BoundsError{Row: row, Col: col}
	}
	return g.squares[row][col].IsEmpty(), nil
}

// TileAt returns the tile at the coordinate without a bounds check;
// callers are expected to stay on the board. Off-board coordinates
// return the empty tile.
func (g *GameBoard) TileAt(row, col int) tiles.Tile {
	if !g.PosExists(row, col) {
		return tiles.EmptyTile
	}
	return g.squares[row][col].tile
}

// HasTile returns whether the coordinate exists and holds a tile.
func (g *GameBoard) HasTile(row, col int) bool {
	return g.PosExists(row, col) && !g.squares[row][col].IsEmpty()
}

// Center returns the coordinate of the center square, the sole anchor
// of an empty board.
func (g *GameBoard) Center() (int, int) {
	return g.rows / 2, g.cols / 2
}

// IsAnchor returns whether the square is an anchor: vacant and
// 4-adjacent to a tile, or the center square of a fully empty board.
func (g *GameBoard) IsAnchor(row, col int) bool {
	if !g.PosExists(row, col) || !g.squares[row][col].IsEmpty() {
		return false
	}
	if g.IsBoardEmpty() {
		cr, cc := g.Center()
		return row == cr && col == cc
	}
	return g.HasTile(row-1, col) || g.HasTile(row+1, col) ||
		g.HasTile(row, col-1) || g.HasTile(row, col+1)
}

// Anchors returns every anchor coordinate on the board.
func (g *GameBoard) Anchors() []Anchor {
	anchors := []Anchor{}
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			if g.IsAnchor(i, j) {
				anchors = append(anchors, Anchor{Row: i, Col: j})
			}
		}
	}
	return anchors
}

// WordEdge finds the edge of the contiguous word through (row, col) in
// the given direction, returning the column of its last occupied
// square.
func (g *GameBoard) WordEdge(row, col int, dir WordDirection) int {
	for g.PosExists(row, col) && !g.squares[row][col].IsEmpty() {
		col += int(dir)
	}
	return col - int(dir)
}

// Transpose returns a new board with rows and columns swapped. The
// move generator only writes horizontal logic and runs it on both
// transpositions.
func (g *GameBoard) Transpose() *GameBoard {
	squares := make([][]Square, g.cols)
	for i := 0; i < g.cols; i++ {
		squares[i] = make([]Square, g.rows)
		for j := 0; j < g.rows; j++ {
			squares[i][j] = g.squares[j][i]
		}
	}
	return &GameBoard{
		squares:    squares,
		rows:       g.cols,
		cols:       g.rows,
		tilesOn:    g.tilesOn,
		transposed: !g.transposed,
	}
}

// IsTransposed returns whether this board is a transposed view.
func (g *GameBoard) IsTransposed() bool {
	return g.transposed
}

// Copy returns a deep copy of the board.
func (g *GameBoard) Copy() *GameBoard {
	squares := make([][]Square, g.rows)
	for i := range g.squares {
		squares[i] = make([]Square, g.cols)
		copy(squares[i], g.squares[i])
	}
	return &GameBoard{
		squares:    squares,
		rows:       g.rows,
		cols:       g.cols,
		tilesOn:    g.tilesOn,
		transposed: g.transposed,
	}
}

// ApplyPlacement returns a new board with the placement's new tiles set
// and their squares' multipliers marked consumed. The receiver is not
// modified. Board squares the word passes through must agree with the
// word's tiles.
func (g *GameBoard) ApplyPlacement(p *move.Placement) (*GameBoard, error) {
	next := g.Copy()
	row, col, vertical := p.CoordsAndVertical()
	for idx, t := range p.Tiles() {
		r, c := row, col
		if vertical {
			r += idx
		} else {
			c += idx
		}
		if !next.PosExists(r, c) {
			return nil, &BoundsError{Row: r, Col: c}
		}
		sq := &next.squares[r][c]
		if sq.IsEmpty() {
			sq.tile = t
			sq.bonusUsed = true
			next.tilesOn++
		} else if sq.tile.Letter() != t.Letter() {
			return nil, &ValidationError{Row: r, Col: c, Reason: fmt.Sprintf(
				"placement letter %s conflicts with tile %s", t, sq.tile)}
		}
	}
	return next, nil
}

// String renders the grid's tiles compactly; it exists for logs and
// test failure output.
func (g *GameBoard) String() string {
	var sb strings.Builder
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			if g.squares[i][j].IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteString(g.squares[i][j].tile.String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
