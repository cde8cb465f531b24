// Package boggle finds every lexicon word that can be traced on a
// letter grid by a chain of king moves that never revisits a cell.
package boggle

import (
	"sort"

	"github.com/openwordgames/wordsolver/lexicon"
	"github.com/openwordgames/wordsolver/tiles"
)

// MinWordLength is the shortest chain worth reporting. Two-letter
// finds are noise on any reasonable grid.
const MinWordLength = 3

// A Path is the cell chain spelling one found word, in order.
type Path [][2]int

// Solver traces lexicon words on letter grids. It is stateless between
// calls and safe for concurrent use.
type Solver struct {
	lex *lexicon.Lexicon
}

// NewSolver creates a Solver backed by the given lexicon.
func NewSolver(lex *lexicon.Lexicon) *Solver {
	return &Solver{lex: lex}
}

// frame is one suspended branch of the grid walk.
type frame struct {
	node *lexicon.Node
	path Path
}

// Solve returns every word of at least MinWordLength letters that can
// be traced on the grid, longest first, ties alphabetical. Each word
// is reported once with all paths that spell it. Grid cells hold
// single uppercase letters.
func (s *Solver) Solve(grid [][]byte) ([]string, map[string][]Path, error) {
	rows := len(grid)
	if rows == 0 {
		return nil, nil, nil
	}
	cols := len(grid[0])
	for _, row := range grid {
		if len(row) != cols {
			return nil, nil, &GridError{Reason: "ragged grid"}
		}
		for _, c := range row {
			if c < 'A' || c > 'Z' {
				return nil, nil, &GridError{Reason: "grid cells must be uppercase letters"}
			}
		}
	}

	paths := map[string][]Path{}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			s.walkFrom(grid, row, col, paths)
		}
	}

	words := make([]string, 0, len(paths))
	for w := range paths {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	return words, paths, nil
}

// walkFrom runs the chain search from one starting cell. The search is
// an explicit stack of (trie node, path) frames; a frame only spawns
// children that both extend a lexicon prefix and land on an unvisited
// cell, so the stack stays small even on dense grids.
func (s *Solver) walkFrom(grid [][]byte, row, col int, paths map[string][]Path) {
	first := s.lex.Root().Child(int(grid[row][col] - 'A'))
	if first == nil {
		return
	}
	stack := []frame{{node: first, path: Path{{row, col}}}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, adj := range adjacent(grid, cur.path) {
			node := cur.node.Child(int(grid[adj[0]][adj[1]] - 'A'))
			if node == nil {
				continue
			}
			path := make(Path, len(cur.path), len(cur.path)+1)
			copy(path, cur.path)
			path = append(path, adj)
			if node.Terminal() && len(path) >= MinWordLength {
				word := wordOf(grid, path)
				paths[word] = append(paths[word], path)
			}
			stack = append(stack, frame{node: node, path: path})
		}
	}
}

// adjacent lists the king-move neighbours of the path's last cell that
// the path has not already used.
func adjacent(grid [][]byte, path Path) [][2]int {
	last := path[len(path)-1]
	out := make([][2]int, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			r, c := last[0]+dr, last[1]+dc
			if (dr == 0 && dc == 0) || r < 0 || r >= len(grid) ||
				c < 0 || c >= len(grid[0]) {
				continue
			}
			if onPath(path, r, c) {
				continue
			}
			out = append(out, [2]int{r, c})
		}
	}
	return out
}

func onPath(path Path, row, col int) bool {
	for _, p := range path {
		if p[0] == row && p[1] == col {
			return true
		}
	}
	return false
}

func wordOf(grid [][]byte, path Path) string {
	ts := make([]tiles.Tile, len(path))
	for i, p := range path {
		ts[i] = tiles.Tile(grid[p[0]][p[1]])
	}
	return tiles.TilesToWord(ts)
}

// GridError reports a malformed letter grid.
type GridError struct {
	Reason string
}

func (e *GridError) Error() string {
	return "bad grid: " + e.Reason
}
