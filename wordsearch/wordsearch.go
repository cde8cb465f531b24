// Package wordsearch locates lexicon words hidden in straight lines on
// a letter grid, in any of the eight compass directions.
package wordsearch

import (
	"sort"

	"github.com/openwordgames/wordsolver/lexicon"
)

// Direction is a compass direction a hidden word can run in.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = [...]string{
	"N", "NE", "E", "SE", "S", "SW", "W", "NW",
}

func (d Direction) String() string {
	return directionNames[d]
}

// deltas indexed by Direction: row step, column step.
var deltas = [...][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// AllDirections lists every compass direction, for callers that do not
// want to restrict the search.
var AllDirections = []Direction{
	North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest,
}

// A Find is one hidden word occurrence: the word, the row and column
// of its first letter, and the direction it runs in.
type Find struct {
	Word      string
	Row       int
	Col       int
	Direction Direction
}

// Solver scans letter grids for hidden lexicon words.
type Solver struct {
	lex *lexicon.Lexicon
}

// NewSolver creates a Solver backed by the given lexicon.
func NewSolver(lex *lexicon.Lexicon) *Solver {
	return &Solver{lex: lex}
}

// Solve returns every occurrence of a lexicon word readable in a
// straight line along any of the given directions (all eight when the
// slice is empty). Results are ordered by word, then row, column and
// direction. Grid cells hold single uppercase letters.
func (s *Solver) Solve(grid [][]byte, directions []Direction) ([]Find, error) {
	rows := len(grid)
	if rows == 0 {
		return nil, nil
	}
	cols := len(grid[0])
	for _, row := range grid {
		if len(row) != cols {
			return nil, &GridError{Reason: "ragged grid"}
		}
		for _, c := range row {
			if c < 'A' || c > 'Z' {
				return nil, &GridError{Reason: "grid cells must be uppercase letters"}
			}
		}
	}
	if len(directions) == 0 {
		directions = AllDirections
	}

	finds := []Find{}
	for _, dir := range directions {
		d := deltas[dir]
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				finds = append(finds, s.scanRay(grid, row, col, dir, d)...)
			}
		}
	}
	sort.Slice(finds, func(i, j int) bool {
		a, b := finds[i], finds[j]
		if a.Word != b.Word {
			return a.Word < b.Word
		}
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		if a.Col != b.Col {
			return a.Col < b.Col
		}
		return a.Direction < b.Direction
	})
	return finds, nil
}

// scanRay follows the trie along one ray. The walk stops at the grid
// edge or the first letter with no trie child, so rays cost far less
// than their full length on average.
func (s *Solver) scanRay(grid [][]byte, row, col int, dir Direction, d [2]int) []Find {
	var finds []Find
	node := s.lex.Root()
	word := []byte{}
	r, c := row, col
	for r >= 0 && r < len(grid) && c >= 0 && c < len(grid[0]) {
		node = node.Child(int(grid[r][c] - 'A'))
		if node == nil {
			break
		}
		word = append(word, grid[r][c])
		if node.Terminal() && len(word) > 1 {
			finds = append(finds, Find{
				Word:      string(word),
				Row:       row,
				Col:       col,
				Direction: dir,
			})
		}
		r, c = r+d[0], c+d[1]
	}
	return finds
}

// GridError reports a malformed letter grid.
type GridError struct {
	Reason string
}

func (e *GridError) Error() string {
	return "bad grid: " + e.Reason
}
