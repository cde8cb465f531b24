// Package solver is the public face of the placement engine. It accepts
// raw board and rack tokens, fans the search out over a worker pool,
// and returns placements sorted by score. It also scores externally
// supplied attempts independently of the generator.
package solver

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/openwordgames/wordsolver/board"
	"github.com/openwordgames/wordsolver/cache"
	"github.com/openwordgames/wordsolver/config"
	"github.com/openwordgames/wordsolver/crosses"
	"github.com/openwordgames/wordsolver/lexicon"
	"github.com/openwordgames/wordsolver/move"
	"github.com/openwordgames/wordsolver/movegen"
	"github.com/openwordgames/wordsolver/scoring"
	"github.com/openwordgames/wordsolver/tiles"
)

// A Solution is one legal placement: the full main word, the column (X)
// and row (Y) of its first letter, its orientation, and its score.
// Vertical is false for across words.
type Solution struct {
	Word     string
	X        int
	Y        int
	Vertical bool
	Score    int
}

// An Attempt identifies a placement to score: the word, the column (X)
// and row (Y) of its first letter, and its orientation.
type Attempt struct {
	Word     string
	X        int
	Y        int
	Vertical bool
}

// Solver answers "given this board and rack, what are all the legal
// placements and their scores". The lexicon is shared and read-only, so
// one Solver serves unlimited concurrent Solve calls.
type Solver struct {
	cfg    *config.Config
	lex    *lexicon.Lexicon
	vals   *tiles.Values
	layout board.Layout
}

// New creates a Solver from an already-built lexicon.
func New(cfg *config.Config, lex *lexicon.Lexicon) (*Solver, error) {
	layout, err := board.LayoutByName(cfg.Layout)
	if err != nil {
		return nil, err
	}
	vals, err := tiles.ValuesByName(cfg.LetterValues)
	if err != nil {
		return nil, err
	}
	return &Solver{cfg: cfg, lex: lex, vals: vals, layout: layout}, nil
}

// NewFromWords creates a Solver for a word collection, building the
// lexicon or reusing a cached one.
func NewFromWords(cfg *config.Config, words []string) (*Solver, error) {
	lex, err := cache.Lexicon(words)
	if err != nil {
		return nil, err
	}
	return New(cfg, lex)
}

// Lexicon returns the solver's lexicon.
func (s *Solver) Lexicon() *lexicon.Lexicon {
	return s.lex
}

// Solve enumerates every legal placement for the board and rack,
// sorted by descending score (ties by word, orientation, origin). An
// empty rack yields an empty result. Searches at distinct rows and
// orientations run on a worker pool; if the context's deadline expires
// mid-search the placements found so far are returned, still sorted.
func (s *Solver) Solve(ctx context.Context, boardTokens [][]string,
	rackTokens []string) ([]Solution, error) {

	b, err := board.FromMatrix(s.layout, boardTokens)
	if err != nil {
		return nil, err
	}
	rack, err := tiles.RackFromTokens(rackTokens)
	if err != nil {
		return nil, err
	}
	if rack.Empty() {
		return []Solution{}, nil
	}

	csGen := crosses.Generator{Lexicon: s.lex}
	type pass struct {
		board    *board.GameBoard
		crosses  *crosses.BoardCrosses
		vertical bool
	}
	tr := b.Transpose()
	passes := []pass{
		{board: b, crosses: csGen.Generate(b), vertical: false},
		{board: tr, crosses: csGen.Generate(tr), vertical: true},
	}

	workers := s.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	var mu sync.Mutex
	plays := []*move.Placement{}
	g := errgroup.Group{}
	g.SetLimit(workers)
	for _, p := range passes {
		p := p
		rows, _ := p.board.Dims()
		for _, chunk := range chunkRows(rows, workers) {
			chunk := chunk
			g.Go(func() error {
				gen := movegen.NewGenerator(s.lex, s.vals,
					s.cfg.BingoBonus, s.cfg.BingoTileCount)
				found := gen.Generate(ctx, p.board, p.crosses, rack,
					p.vertical, chunk)
				mu.Lock()
				plays = append(plays, found...)
				mu.Unlock()
				return nil
			})
		}
	}
	// Workers stop early on a spent deadline rather than failing.
	_ = g.Wait()

	move.Sort(plays)
	plays = lo.UniqBy(plays, func(p *move.Placement) string {
		row, col, vertical := p.CoordsAndVertical()
		return fmt.Sprintf("%s/%d/%d/%t", p.Word(), row, col, vertical)
	})
	log.Debug().Int("plays", len(plays)).Str("rack", rack.String()).
		Msg("solve complete")
	return lo.Map(plays, func(p *move.Placement, _ int) Solution {
		row, col, vertical := p.CoordsAndVertical()
		return Solution{
			Word:     p.Word(),
			X:        col,
			Y:        row,
			Vertical: vertical,
			Score:    p.Score(),
		}
	}), nil
}

// chunkRows splits row indices 0..rows-1 into at most workers chunks.
func chunkRows(rows, workers int) [][]int {
	if workers > rows {
		workers = rows
	}
	chunks := make([][]int, workers)
	for r := 0; r < rows; r++ {
		chunks[r%workers] = append(chunks[r%workers], r)
	}
	return chunks
}

// GetScore scores one externally supplied attempt against the board and
// rack, without running the generator. The attempt must fit the board,
// agree with the tiles already on it, be coverable by the rack, connect
// to the board (or cover the center of an empty one), and every
// crossing word it forms must be lexicon-valid.
func (s *Solver) GetScore(boardTokens [][]string, rackTokens []string,
	attempt Attempt) (int, error) {

	b, err := board.FromMatrix(s.layout, boardTokens)
	if err != nil {
		return 0, err
	}
	rack, err := tiles.RackFromTokens(rackTokens)
	if err != nil {
		return 0, err
	}
	row, col := attempt.Y, attempt.X
	resolved, _, err := scoring.Resolve(b, rack, attempt.Word, row, col,
		attempt.Vertical)
	if err != nil {
		return 0, err
	}
	if err := s.checkCrossWords(b, resolved, row, col, attempt.Vertical); err != nil {
		return 0, err
	}
	return scoring.ScoreTiles(b, s.vals, resolved, row, col,
		attempt.Vertical, s.cfg.BingoBonus, s.cfg.BingoTileCount), nil
}

// checkCrossWords verifies that every newly covered square accepts its
// letter under the square's cross-check set.
func (s *Solver) checkCrossWords(b *board.GameBoard, resolved []tiles.Tile,
	row, col int, vertical bool) error {

	oriented := b
	if vertical {
		oriented = b.Transpose()
	}
	bc := crosses.Generator{Lexicon: s.lex}.Generate(oriented)
	dr, dc := 0, 1
	if vertical {
		dr, dc = 1, 0
	}
	for idx, t := range resolved {
		r, c := row+idx*dr, col+idx*dc
		if b.HasTile(r, c) {
			continue
		}
		or, oc := r, c
		if vertical {
			or, oc = c, r
		}
		if !bc.Allowed(or, oc, t.Index()) {
			return &scoring.ValidationError{Reason: fmt.Sprintf(
				"%s at (%d, %d) forms an invalid crossing word", t, r, c)}
		}
	}
	return nil
}
