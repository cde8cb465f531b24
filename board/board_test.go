package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openwordgames/wordsolver/move"
	"github.com/openwordgames/wordsolver/tiles"
)

func emptyMatrix(rows, cols int) [][]string {
	m := make([][]string, rows)
	for i := range m {
		m[i] = make([]string, cols)
	}
	return m
}

func TestFromLayout(t *testing.T) {
	b, err := FromLayout(CrosswordGameLayout)
	require.NoError(t, err)
	rows, cols := b.Dims()
	assert.Equal(t, 15, rows)
	assert.Equal(t, 15, cols)
	assert.True(t, b.IsBoardEmpty())

	sq, err := b.GetSquare(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Bonus3WS, sq.Bonus())
	sq, err = b.GetSquare(7, 7)
	require.NoError(t, err)
	assert.Equal(t, Bonus2WS, sq.Bonus())
	sq, err = b.GetSquare(7, 3)
	require.NoError(t, err)
	assert.Equal(t, Bonus2LS, sq.Bonus())
}

func TestFromLayoutRejectsRaggedRows(t *testing.T) {
	_, err := FromLayout(Layout{Name: "bad", Rows: []string{"   ", "  "}})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestFromMatrix(t *testing.T) {
	m := emptyMatrix(15, 15)
	m[7][7] = "H"
	m[7][8] = "i"
	b, err := FromMatrix(CrosswordGameLayout, m)
	require.NoError(t, err)
	assert.Equal(t, 2, b.TilesOnBoard())
	assert.Equal(t, tiles.Tile('H'), b.TileAt(7, 7))
	assert.Equal(t, tiles.Tile('i'), b.TileAt(7, 8))

	// A square occupied at load time has its multiplier consumed.
	sq, err := b.GetSquare(7, 7)
	require.NoError(t, err)
	assert.True(t, sq.BonusUsed())
	sq, err = b.GetSquare(7, 6)
	require.NoError(t, err)
	assert.False(t, sq.BonusUsed())
}

func TestFromMatrixValidation(t *testing.T) {
	var ve *ValidationError

	_, err := FromMatrix(CrosswordGameLayout, emptyMatrix(14, 15))
	require.ErrorAs(t, err, &ve)

	_, err = FromMatrix(CrosswordGameLayout, emptyMatrix(15, 14))
	require.ErrorAs(t, err, &ve)

	m := emptyMatrix(15, 15)
	m[3][3] = "??"
	_, err = FromMatrix(CrosswordGameLayout, m)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 3, ve.Row)
	assert.Equal(t, 3, ve.Col)
}

func TestBoundsChecks(t *testing.T) {
	b, err := FromLayout(CrosswordGameLayout)
	require.NoError(t, err)

	var be *BoundsError
	_, err = b.GetSquare(-1, 0)
	require.ErrorAs(t, err, &be)
	_, err = b.IsEmpty(0, 15)
	require.ErrorAs(t, err, &be)

	assert.False(t, b.HasTile(-1, -1))
	assert.Equal(t, tiles.EmptyTile, b.TileAt(99, 99))
}

func TestAnchorsEmptyBoard(t *testing.T) {
	b, err := FromLayout(CrosswordGameLayout)
	require.NoError(t, err)
	assert.Equal(t, []Anchor{{Row: 7, Col: 7}}, b.Anchors())
}

func TestAnchorsAroundTiles(t *testing.T) {
	m := emptyMatrix(15, 15)
	m[7][7] = "A"
	m[7][8] = "T"
	b, err := FromMatrix(CrosswordGameLayout, m)
	require.NoError(t, err)

	expected := []Anchor{
		{Row: 6, Col: 7}, {Row: 6, Col: 8},
		{Row: 7, Col: 6}, {Row: 7, Col: 9},
		{Row: 8, Col: 7}, {Row: 8, Col: 8},
	}
	assert.Equal(t, expected, b.Anchors())

	// Occupied squares are never anchors.
	assert.False(t, b.IsAnchor(7, 7))
}

func TestWordEdge(t *testing.T) {
	m := emptyMatrix(15, 15)
	for c, letter := range []string{"H", "O", "U", "S", "E"} {
		m[7][5+c] = letter
	}
	b, err := FromMatrix(CrosswordGameLayout, m)
	require.NoError(t, err)

	assert.Equal(t, 5, b.WordEdge(7, 9, LeftDirection))
	assert.Equal(t, 9, b.WordEdge(7, 5, RightDirection))
	assert.Equal(t, 5, b.WordEdge(7, 7, LeftDirection))
}

func TestTranspose(t *testing.T) {
	m := emptyMatrix(15, 15)
	m[3][11] = "Q"
	b, err := FromMatrix(CrosswordGameLayout, m)
	require.NoError(t, err)

	tr := b.Transpose()
	assert.True(t, tr.IsTransposed())
	assert.Equal(t, tiles.Tile('Q'), tr.TileAt(11, 3))
	assert.Equal(t, tiles.EmptyTile, tr.TileAt(3, 11))

	// Transposing is a copy; the original is untouched.
	back := tr.Transpose()
	assert.False(t, back.IsTransposed())
	assert.Equal(t, tiles.Tile('Q'), back.TileAt(3, 11))
}

func TestApplyPlacement(t *testing.T) {
	m := emptyMatrix(15, 15)
	m[7][7] = "A"
	b, err := FromMatrix(CrosswordGameLayout, m)
	require.NoError(t, err)

	p := move.NewPlacement([]tiles.Tile{'C', 'A', 'T'}, 6, 7, true, 0,
		[][2]int{{6, 7}, {8, 7}})
	next, err := b.ApplyPlacement(p)
	require.NoError(t, err)

	assert.Equal(t, 3, next.TilesOnBoard())
	assert.Equal(t, tiles.Tile('C'), next.TileAt(6, 7))
	assert.Equal(t, tiles.Tile('T'), next.TileAt(8, 7))

	// The receiver is an immutable snapshot.
	assert.Equal(t, 1, b.TilesOnBoard())
	assert.Equal(t, tiles.EmptyTile, b.TileAt(6, 7))

	// New squares have their multipliers consumed on the new board only.
	sq, err := next.GetSquare(6, 7)
	require.NoError(t, err)
	assert.True(t, sq.BonusUsed())
}

func TestApplyPlacementConflicts(t *testing.T) {
	m := emptyMatrix(15, 15)
	m[7][7] = "A"
	b, err := FromMatrix(CrosswordGameLayout, m)
	require.NoError(t, err)

	p := move.NewPlacement([]tiles.Tile{'C', 'O', 'T'}, 6, 7, true, 0,
		[][2]int{{6, 7}, {8, 7}})
	_, err = b.ApplyPlacement(p)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestRectangularLayout(t *testing.T) {
	layout := Layout{Name: "rect", Rows: []string{
		`'   -   '`,
		`  "   "  `,
		`    -    `,
		`  "   "  `,
		`'   -   '`,
	}}
	b, err := FromLayout(layout)
	require.NoError(t, err)
	rows, cols := b.Dims()
	assert.Equal(t, 5, rows)
	assert.Equal(t, 9, cols)

	row, col := b.Center()
	assert.Equal(t, 2, row)
	assert.Equal(t, 4, col)
	assert.Equal(t, []Anchor{{Row: 2, Col: 4}}, b.Anchors())

	assert.True(t, b.PosExists(4, 8))
	assert.False(t, b.PosExists(8, 4))

	tr := b.Transpose()
	trRows, trCols := tr.Dims()
	assert.Equal(t, 9, trRows)
	assert.Equal(t, 5, trCols)
	sq, err := tr.GetSquare(4, 2)
	require.NoError(t, err)
	assert.Equal(t, Bonus2WS, sq.Bonus())
}

func BenchmarkBoardTranspose(b *testing.B) {
	// Two transpositions per full-board generation, so this needs to
	// stay cheap relative to the search itself.
	board, err := FromLayout(CrosswordGameLayout)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Transpose()
	}
}
