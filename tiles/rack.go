package tiles

import (
	"fmt"
	"sort"
	"strings"
)

// Rack is a machine-friendly representation of a rack: an array of
// letter counts with the blank count at the last position.
type Rack struct {
	counts   [NumLetters + 1]uint8
	numTiles uint8
}

// InvalidTokenError is returned when a rack token is not a single
// uppercase letter or the blank token.
type InvalidTokenError struct {
	Token string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid rack token %q; expected an uppercase letter or %q",
		e.Token, string(BlankToken))
}

// RackFromTokens builds a rack from rack tokens: an uppercase letter
// per tile, "#" for a blank. An empty token list is a valid, empty rack.
func RackFromTokens(tokens []string) (*Rack, error) {
	r := &Rack{}
	for _, tok := range tokens {
		if len(tok) != 1 {
			return nil, &InvalidTokenError{Token: tok}
		}
		switch {
		case tok[0] == BlankToken:
			r.counts[BlankIdx]++
		case tok[0] >= 'A' && tok[0] <= 'Z':
			r.counts[tok[0]-'A']++
		default:
			return nil, &InvalidTokenError{Token: tok}
		}
		r.numTiles++
	}
	return r, nil
}

// RackFromString builds a rack from a string such as "AEINR#T".
func RackFromString(letters string) (*Rack, error) {
	tokens := strings.Split(letters, "")
	return RackFromTokens(tokens)
}

// NumTiles returns the number of tiles on the rack.
func (r *Rack) NumTiles() int {
	return int(r.numTiles)
}

// Empty returns whether the rack has no tiles left.
func (r *Rack) Empty() bool {
	return r.numTiles == 0
}

// Has returns whether the rack holds at least one tile of the letter at
// the given 0-25 index.
func (r *Rack) Has(idx int) bool {
	return r.counts[idx] > 0
}

// HasBlank returns whether the rack holds at least one blank.
func (r *Rack) HasBlank() bool {
	return r.counts[BlankIdx] > 0
}

// Take removes one tile at the given index (BlankIdx for a blank).
func (r *Rack) Take(idx int) {
	r.counts[idx]--
	r.numTiles--
}

// Put returns one tile at the given index to the rack.
func (r *Rack) Put(idx int) {
	r.counts[idx]++
	r.numTiles++
}

// Copy returns an independent copy of the rack.
func (r *Rack) Copy() *Rack {
	c := &Rack{}
	*c = *r
	return c
}

// Cover removes the given tiles from a copy of the rack, preferring the
// natural letter and falling back to a blank only when the letter has
// run out (blanks are never wasted on letters the rack already holds).
// The returned tiles have blanks lowered; ok is false if the rack
// cannot cover the request.
func (r *Rack) Cover(letters []byte) (covered []Tile, ok bool) {
	c := r.Copy()
	covered = make([]Tile, 0, len(letters))
	for _, let := range letters {
		idx := int(let - 'A')
		switch {
		case c.Has(idx):
			c.Take(idx)
			covered = append(covered, Tile(let))
		case c.HasBlank():
			c.Take(BlankIdx)
			covered = append(covered, Tile(let-'A'+'a'))
		default:
			return nil, false
		}
	}
	return covered, true
}

// String returns the rack's tiles in alphabetical order, blanks last.
func (r *Rack) String() string {
	var sb strings.Builder
	letters := []byte{}
	for i := 0; i < NumLetters; i++ {
		for n := uint8(0); n < r.counts[i]; n++ {
			letters = append(letters, byte('A'+i))
		}
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	sb.Write(letters)
	for n := uint8(0); n < r.counts[BlankIdx]; n++ {
		sb.WriteByte(BlankToken)
	}
	return sb.String()
}
