// Package movegen contains the move generation functions. The algorithm
// is the classic left-part / extend-right search over a prefix trie:
// for every anchor it walks backward while vacant squares and matching
// trie prefixes remain, then extends forward letter by letter, accepting
// a rack tile on a vacant square only when the square's cross-check set
// already guarantees the perpendicular word. A branch is abandoned the
// instant the trie lacks the required child, so no full word is ever
// materialized before being checked.
package movegen

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/openwordgames/wordsolver/board"
	"github.com/openwordgames/wordsolver/crosses"
	"github.com/openwordgames/wordsolver/lexicon"
	"github.com/openwordgames/wordsolver/move"
	"github.com/openwordgames/wordsolver/scoring"
	"github.com/openwordgames/wordsolver/tiles"
)

// Generator generates placements for one board and rack at a time. It
// keeps search state between recursive calls, so a Generator must not
// be shared between goroutines; searches rooted at distinct rows or
// orientations are independent and each worker gets its own Generator.
type Generator struct {
	lex            *lexicon.Lexicon
	vals           *tiles.Values
	bingoBonus     int
	bingoTileCount int

	// Per-pass state. The board is an oriented view: vertical
	// generation runs the same horizontal logic on the transposed
	// board.
	board       *board.GameBoard
	crosses     *crosses.BoardCrosses
	rack        *tiles.Rack
	vertical    bool
	curRow      int
	curAnchor   int
	lastAnchor  int
	tilesPlayed int

	plays []*move.Placement
}

// NewGenerator creates a Generator for the given lexicon and ruleset.
func NewGenerator(lex *lexicon.Lexicon, vals *tiles.Values,
	bingoBonus, bingoTileCount int) *Generator {

	return &Generator{
		lex:            lex,
		vals:           vals,
		bingoBonus:     bingoBonus,
		bingoTileCount: bingoTileCount,
	}
}

// GenAll generates every legal placement for the board and rack, both
// orientations, sorted canonically. The board and rack are not
// modified.
func (gen *Generator) GenAll(ctx context.Context, b *board.GameBoard,
	rack *tiles.Rack) []*move.Placement {

	csGen := crosses.Generator{Lexicon: gen.lex}
	rows, _ := b.Dims()
	allRows := make([]int, rows)
	for i := range allRows {
		allRows[i] = i
	}
	plays := gen.Generate(ctx, b, csGen.Generate(b), rack, false, allRows)

	tr := b.Transpose()
	trRows, _ := tr.Dims()
	allRows = make([]int, trRows)
	for i := range allRows {
		allRows[i] = i
	}
	plays = append(plays, gen.Generate(ctx, tr, csGen.Generate(tr), rack, true, allRows)...)
	move.Sort(plays)
	return plays
}

// Generate enumerates the legal placements whose main word lies along
// the given rows of b. b must already be oriented: pass the transposed
// board with vertical=true for down words. Results are unsorted.
// A done context stops the search between anchors; whatever was found
// so far is returned.
func (gen *Generator) Generate(ctx context.Context, b *board.GameBoard,
	bc *crosses.BoardCrosses, rack *tiles.Rack, vertical bool,
	rows []int) []*move.Placement {

	if rack.Empty() {
		return nil
	}
	gen.board = b
	gen.crosses = bc
	gen.rack = rack.Copy()
	gen.vertical = vertical
	gen.tilesPlayed = 0
	gen.plays = nil

	_, cols := b.Dims()
	for _, row := range rows {
		gen.curRow = row
		gen.lastAnchor = -1
		for col := 0; col < cols; col++ {
			if !b.IsAnchor(row, col) {
				continue
			}
			if ctx.Err() != nil {
				log.Debug().Int("row", row).Int("col", col).
					Msg("search budget exhausted; returning partial plays")
				return gen.plays
			}
			gen.curAnchor = col
			gen.genForAnchor(row, col)
			gen.lastAnchor = col
		}
	}
	return gen.plays
}

// genForAnchor starts the search at one anchor. If tiles sit directly
// left of the anchor they are the word's left part; otherwise left
// parts are built from the rack, bounded by the gap to the previous
// anchor.
func (gen *Generator) genForAnchor(row, col int) {
	if gen.board.HasTile(row, col-1) {
		edge := gen.board.WordEdge(row, col-1, board.LeftDirection)
		node := gen.lex.Root()
		word := make([]tiles.Tile, 0, 16)
		for c := edge; c < col; c++ {
			t := gen.board.TileAt(row, c)
			node = node.Child(t.Index())
			if node == nil {
				// No word continues through the tiles on the board; this
				// happens when a phony stayed on the board.
				return
			}
			word = append(word, t)
		}
		gen.extendRight(node, col, edge, word)
		return
	}
	limit := 0
	for c := col - 1; c >= 0 && c > gen.lastAnchor && !gen.board.HasTile(row, c); c-- {
		limit++
	}
	gen.leftPart(gen.lex.Root(), nil, limit, col)
}

// leftPart extends the word backward from the anchor with rack tiles,
// then tries to complete it to the right. The squares it covers are
// non-anchor vacancies, so their cross-check sets are trivial.
func (gen *Generator) leftPart(node *lexicon.Node, word []tiles.Tile,
	limit, anchorCol int) {

	gen.extendRight(node, anchorCol, anchorCol-len(word), word)
	if limit == 0 {
		return
	}
	for idx := 0; idx < 26; idx++ {
		child := node.Child(idx)
		if child == nil {
			continue
		}
		// A blank stands in only for letters the rack has run out of.
		switch {
		case gen.rack.Has(idx):
			gen.placeAndRecurse(idx, tiles.Tile('A'+idx), func(t tiles.Tile) {
				gen.leftPart(child, append(word, t), limit-1, anchorCol)
			})
		case gen.rack.HasBlank():
			gen.placeAndRecurse(tiles.BlankIdx, tiles.Tile('a'+idx), func(t tiles.Tile) {
				gen.leftPart(child, append(word, t), limit-1, anchorCol)
			})
		}
	}
}

// extendRight advances the word over the square at col. Board tiles
// must agree with the trie path; vacant squares take a rack tile
// constrained by the square's cross-check set. A placement is recorded
// whenever the node is terminal, at least one tile was played, the word
// passes through the anchor, and the run ends at a vacancy or the edge.
func (gen *Generator) extendRight(node *lexicon.Node, col, wordStart int,
	word []tiles.Tile) {

	row := gen.curRow
	onBoard := gen.board.PosExists(row, col)
	if (!onBoard || !gen.board.HasTile(row, col)) &&
		node.Terminal() && gen.tilesPlayed > 0 && col > gen.curAnchor {
		gen.record(wordStart, word)
	}
	if !onBoard {
		return
	}
	if t := gen.board.TileAt(row, col); t != tiles.EmptyTile {
		if child := node.Child(t.Index()); child != nil {
			gen.extendRight(child, col+1, wordStart, append(word, t))
		}
		return
	}
	if gen.rack.Empty() {
		return
	}
	for idx := 0; idx < 26; idx++ {
		child := node.Child(idx)
		if child == nil || !gen.crosses.Allowed(row, col, idx) {
			continue
		}
		switch {
		case gen.rack.Has(idx):
			gen.placeAndRecurse(idx, tiles.Tile('A'+idx), func(t tiles.Tile) {
				gen.extendRight(child, col+1, wordStart, append(word, t))
			})
		case gen.rack.HasBlank():
			gen.placeAndRecurse(tiles.BlankIdx, tiles.Tile('a'+idx), func(t tiles.Tile) {
				gen.extendRight(child, col+1, wordStart, append(word, t))
			})
		}
	}
}

// placeAndRecurse takes a tile off the rack for the duration of one
// recursive branch. Recursion depth is therefore bounded by the rack
// size.
func (gen *Generator) placeAndRecurse(rackIdx int, t tiles.Tile, recurse func(tiles.Tile)) {
	gen.rack.Take(rackIdx)
	gen.tilesPlayed++
	recurse(t)
	gen.tilesPlayed--
	gen.rack.Put(rackIdx)
}

// record adds a placement for the current word, translating coordinates
// back to the untransposed board for vertical passes.
func (gen *Generator) record(wordStart int, word []tiles.Tile) {
	newCells := make([][2]int, 0, gen.tilesPlayed)
	for idx := range word {
		c := wordStart + idx
		if gen.board.HasTile(gen.curRow, c) {
			continue
		}
		if gen.vertical {
			newCells = append(newCells, [2]int{c, gen.curRow})
		} else {
			newCells = append(newCells, [2]int{gen.curRow, c})
		}
	}
	score := scoring.ScoreTiles(gen.board, gen.vals, word, gen.curRow,
		wordStart, false, gen.bingoBonus, gen.bingoTileCount)
	row, col := gen.curRow, wordStart
	if gen.vertical {
		row, col = wordStart, gen.curRow
	}
	gen.plays = append(gen.plays,
		move.NewPlacement(word, row, col, gen.vertical, score, newCells))
}
