// Package tiles contains the tile, rack, and letter-value types shared
// by the board, move generator, and scorer.
package tiles

import "fmt"

const (
	// NumLetters is the number of distinct natural letters.
	NumLetters = 26
	// BlankToken is the rack token that represents a blank tile.
	BlankToken = '#'
	// BlankIdx is the position of the blank in a rack's count array.
	BlankIdx = NumLetters
)

// A Tile is a single tile, either on the board or resolved from a rack
// during generation. 'A'-'Z' is a natural tile, 'a'-'z' is a blank
// standing in for that letter, and the zero value marks a vacant square.
type Tile byte

// EmptyTile marks a vacant square.
const EmptyTile Tile = 0

// IsBlank returns whether this tile is a blank (it scores zero).
func (t Tile) IsBlank() bool {
	return t >= 'a' && t <= 'z'
}

// Letter returns the letter this tile represents, always in upper case.
func (t Tile) Letter() byte {
	if t.IsBlank() {
		return byte(t) - 'a' + 'A'
	}
	return byte(t)
}

// Index returns the 0-25 index of the letter this tile represents.
func (t Tile) Index() int {
	return int(t.Letter() - 'A')
}

func (t Tile) String() string {
	if t == EmptyTile {
		return " "
	}
	return string(byte(t))
}

// ParseTile turns a single board token into a Tile. Valid tokens are a
// single uppercase letter (natural tile), a single lowercase letter
// (blank played as that letter), and "*" or "" for a vacant square.
func ParseTile(token string) (Tile, error) {
	switch {
	case token == "" || token == "*":
		return EmptyTile, nil
	case len(token) == 1 && token[0] >= 'A' && token[0] <= 'Z':
		return Tile(token[0]), nil
	case len(token) == 1 && token[0] >= 'a' && token[0] <= 'z':
		return Tile(token[0]), nil
	}
	return EmptyTile, fmt.Errorf("cannot convert %q into a tile", token)
}

// TilesToWord returns the word spelled by a run of tiles, upper-cased.
func TilesToWord(ts []Tile) string {
	bts := make([]byte, len(ts))
	for i, t := range ts {
		bts[i] = t.Letter()
	}
	return string(bts)
}
