package tiles

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Values holds the point value of each natural letter. Blanks always
// score zero regardless of the letter they represent.
type Values struct {
	scores [NumLetters]int
	name   string
}

// EnglishValues returns the standard English letter valuation.
func EnglishValues() *Values {
	v := &Values{name: "english"}
	for i, s := range [NumLetters]int{
		1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 5, 1, 3,
		1, 1, 3, 10, 1, 1, 1, 1, 4, 4, 8, 4, 10,
	} {
		v.scores[i] = s
	}
	return v
}

// ScanValues reads a letter valuation from a YAML mapping of letter to
// point value, e.g. "A: 1". Letters missing from the mapping score zero.
func ScanValues(name string, data io.Reader) (*Values, error) {
	raw, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}
	mapping := map[string]int{}
	if err = yaml.Unmarshal(raw, &mapping); err != nil {
		return nil, fmt.Errorf("malformed letter valuation: %w", err)
	}
	v := &Values{name: name}
	for letter, score := range mapping {
		if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
			return nil, fmt.Errorf("letter valuation has a bad key %q", letter)
		}
		v.scores[letter[0]-'A'] = score
	}
	return v, nil
}

// Name returns the name this valuation was registered under.
func (v *Values) Name() string {
	return v.name
}

// Score returns the point value of a tile. Blanks score zero.
func (v *Values) Score(t Tile) int {
	if t == EmptyTile || t.IsBlank() {
		return 0
	}
	return v.scores[t.Index()]
}

// LetterScore returns the point value of a natural letter by 0-25 index.
func (v *Values) LetterScore(idx int) int {
	return v.scores[idx]
}

// ValuesByName resolves a named letter valuation.
func ValuesByName(name string) (*Values, error) {
	switch name {
	case "", "english":
		return EnglishValues(), nil
	}
	return nil, fmt.Errorf("unknown letter valuation %q", name)
}
