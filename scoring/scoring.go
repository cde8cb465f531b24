// Package scoring computes the point value of a placement. Scoring is a
// pure function of the board snapshot and the placed tiles: it mutates
// nothing and may be called repeatedly, on or off the search path, with
// identical results.
package scoring

import (
	"fmt"

	"github.com/openwordgames/wordsolver/board"
	"github.com/openwordgames/wordsolver/tiles"
)

// ValidationError reports an externally supplied placement that cannot
// be played on the board with the given rack.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid placement: " + e.Reason
}

// ScoreTiles scores a resolved word placed at (row, col). The word must
// span the full contiguous run, and its tiles must agree with any
// squares already occupied; resolve with Resolve first for external
// input. Newly placed tiles score letter value times the square's
// letter multiplier, word multipliers of new squares apply once to each
// word containing them, and squares whose multiplier was consumed by an
// earlier play contribute base letter value only. Blanks always score
// zero. Placing bingoTileCount tiles adds bingoBonus.
func ScoreTiles(b *board.GameBoard, vals *tiles.Values, word []tiles.Tile,
	row, col int, vertical bool, bingoBonus, bingoTileCount int) int {

	dr, dc := 0, 1
	if vertical {
		dr, dc = 1, 0
	}
	mainScore, wordMult, crossTotal, tilesPlayed := 0, 1, 0, 0
	for idx, t := range word {
		r, c := row+idx*dr, col+idx*dc
		sq, err := b.GetSquare(r, c)
		if err != nil {
			// Resolve guards against this; an off-board tail scores zero.
			break
		}
		if !sq.IsEmpty() {
			mainScore += vals.Score(sq.Tile())
			continue
		}
		letterMult, crossWordMult := 1, 1
		if !sq.BonusUsed() {
			letterMult = sq.Bonus().LetterMultiplier()
			crossWordMult = sq.Bonus().WordMultiplier()
			wordMult *= crossWordMult
		}
		tileScore := vals.Score(t) * letterMult
		mainScore += tileScore
		tilesPlayed++
		// Each new tile that has perpendicular neighbors forms a crossing
		// word, scored separately with this square's word multiplier.
		runScore, hasRun := crossRunScore(b, vals, r, c, vertical)
		if hasRun {
			crossTotal += (runScore + tileScore) * crossWordMult
		}
	}
	total := mainScore*wordMult + crossTotal
	if tilesPlayed == bingoTileCount {
		total += bingoBonus
	}
	return total
}

// crossRunScore sums the tile values of the contiguous run perpendicular
// to the word's direction at (row, col), reporting whether a run exists.
func crossRunScore(b *board.GameBoard, vals *tiles.Values, row, col int,
	vertical bool) (int, bool) {

	dr, dc := 1, 0
	if vertical {
		dr, dc = 0, 1
	}
	score, found := 0, false
	for r, c := row-dr, col-dc; b.HasTile(r, c); r, c = r-dr, c-dc {
		score += vals.Score(b.TileAt(r, c))
		found = true
	}
	for r, c := row+dr, col+dc; b.HasTile(r, c); r, c = r+dr, c+dc {
		score += vals.Score(b.TileAt(r, c))
		found = true
	}
	return score, found
}

// Resolve turns an externally supplied attempt (word, origin,
// orientation) into the resolved tile word and the coordinates of its
// new cells. Tiles already on the board are reused; the rest must be
// covered by the rack, a blank standing in only for letters the rack
// has run out of. The word must be the complete contiguous run and must
// connect to the board (or cover the center square of an empty board).
func Resolve(b *board.GameBoard, rack *tiles.Rack, word string,
	row, col int, vertical bool) ([]tiles.Tile, [][2]int, error) {

	if word == "" {
		return nil, nil, &ValidationError{Reason: "empty word"}
	}
	dr, dc := 0, 1
	if vertical {
		dr, dc = 1, 0
	}
	endRow, endCol := row+(len(word)-1)*dr, col+(len(word)-1)*dc
	if !b.PosExists(row, col) || !b.PosExists(endRow, endCol) {
		return nil, nil, &board.BoundsError{Row: endRow, Col: endCol}
	}
	if b.HasTile(row-dr, col-dc) || b.HasTile(endRow+dr, endCol+dc) {
		return nil, nil, &ValidationError{
			Reason: "word does not cover its whole contiguous run"}
	}

	resolved := make([]tiles.Tile, len(word))
	needed := []byte{}
	newCells := [][2]int{}
	connected := false
	for idx := 0; idx < len(word); idx++ {
		letter := word[idx]
		if letter >= 'a' && letter <= 'z' {
			letter = letter - 'a' + 'A'
		}
		if letter < 'A' || letter > 'Z' {
			return nil, nil, &ValidationError{
				Reason: fmt.Sprintf("word has a non-letter %q", string(word[idx]))}
		}
		r, c := row+idx*dr, col+idx*dc
		if onBoard := b.TileAt(r, c); onBoard != tiles.EmptyTile {
			if onBoard.Letter() != letter {
				return nil, nil, &ValidationError{Reason: fmt.Sprintf(
					"letter %s conflicts with the %s tile at (%d, %d)",
					string(letter), onBoard, r, c)}
			}
			resolved[idx] = onBoard
			connected = true
			continue
		}
		needed = append(needed, letter)
		newCells = append(newCells, [2]int{r, c})
		if b.HasTile(r-dc, c-dr) || b.HasTile(r+dc, c+dr) {
			connected = true
		}
	}
	if len(newCells) == 0 {
		return nil, nil, &ValidationError{Reason: "placement adds no tiles"}
	}
	if b.IsBoardEmpty() {
		cr, cc := b.Center()
		for _, cell := range newCells {
			if cell[0] == cr && cell[1] == cc {
				connected = true
			}
		}
	}
	if !connected {
		return nil, nil, &ValidationError{
			Reason: "placement does not connect to the board"}
	}
	covered, ok := rack.Cover(needed)
	if !ok {
		return nil, nil, &ValidationError{Reason: fmt.Sprintf(
			"rack %s cannot cover the placement", rack)}
	}
	ci := 0
	for idx := range resolved {
		if resolved[idx] == tiles.EmptyTile {
			resolved[idx] = covered[ci]
			ci++
		}
	}
	return resolved, newCells, nil
}
