// Package filler implements backtracking search over crossword fill
// puzzles. It consumes a board.Grid and a word universe, prunes candidate
// domains through the csp package, and searches for a complete assignment
// using the minimum-remaining-values, degree, and least-constraining-value
// heuristics.
package filler

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/crossfill/board"
	"github.com/domino14/crossfill/csp"
)

// ErrNoSolution is returned when no complete consistent fill exists for a
// puzzle. It is an expected outcome, not a fault: an unsatisfiable grid
// and a word list with no fitting words both land here.
var ErrNoSolution = errors.New("no solution for this grid and word list")

// Assignment maps each slot to the word filling it. A solve's result is
// always complete (every variable present) and consistent.
type Assignment map[board.Variable]string

// Solver fills one puzzle. It owns its domain store for the duration of
// the solve; domain pruning is permanent across backtracking, only the
// assignment is wound back. A Solver is single-use and not safe for
// concurrent use.
type Solver struct {
	grid     *board.Grid
	domains  *csp.Domains
	enforcer *csp.Enforcer
	vars     []board.Variable
	trials   int
}

func NewSolver(g *board.Grid, universe []string) *Solver {
	vars := g.Variables()
	domains := csp.NewDomains(vars, universe)
	return &Solver{
		grid:     g,
		domains:  domains,
		enforcer: csp.NewEnforcer(g, domains),
		vars:     vars,
	}
}

// Solve enforces node consistency, propagates arc consistency, then
// backtracks to a complete assignment. It returns ErrNoSolution when the
// puzzle cannot be filled. ctx is consulted once per candidate trial; a
// nil ctx never interrupts the search.
func (s *Solver) Solve(ctx context.Context) (Assignment, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	s.enforcer.EnforceNodeConsistency()
	if !s.enforcer.Propagate(nil) {
		return nil, ErrNoSolution
	}
	asg, err := s.backtrack(ctx, Assignment{})
	if err != nil {
		return nil, err
	}
	log.Debug().
		Int("variables", len(s.vars)).
		Int("trials", s.trials).
		Dur("elapsed", time.Since(start)).
		Msg("fill complete")
	return asg, nil
}

func (s *Solver) backtrack(ctx context.Context, asg Assignment) (Assignment, error) {
	if len(asg) == len(s.vars) {
		return asg, nil
	}
	v := s.selectUnassigned(asg)
	for _, word := range s.orderValues(v, asg) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		s.trials++
		asg[v] = word
		if s.consistent(asg) {
			result, err := s.backtrack(ctx, asg)
			if err == nil {
				return result, nil
			}
			if !errors.Is(err, ErrNoSolution) {
				return nil, err
			}
		}
		delete(asg, v)
	}
	return nil, ErrNoSolution
}

// selectUnassigned picks the unassigned variable with the fewest remaining
// domain words (MRV), breaking ties by the largest neighbor set (degree).
// Variables still tied after both heuristics are interchangeable; one is
// picked at random.
func (s *Solver) selectUnassigned(asg Assignment) board.Variable {
	unassigned := lo.Filter(s.vars, func(v board.Variable, _ int) bool {
		_, done := asg[v]
		return !done
	})

	best := []board.Variable{unassigned[0]}
	for _, v := range unassigned[1:] {
		switch s.compare(v, best[0]) {
		case -1:
			best = []board.Variable{v}
		case 0:
			best = append(best, v)
		}
	}
	return best[frand.Intn(len(best))]
}

// compare orders variables by (domain size asc, degree desc).
func (s *Solver) compare(a, b board.Variable) int {
	if d := s.domains.Size(a) - s.domains.Size(b); d != 0 {
		return sign(d)
	}
	return sign(s.grid.Degree(b) - s.grid.Degree(a))
}

func sign(n int) int {
	if n < 0 {
		return -1
	} else if n > 0 {
		return 1
	}
	return 0
}

// orderValues sorts v's domain least-constraining first: by how many words
// each candidate would rule out across the domains of v's unassigned
// neighbors. This is a scoring pass only; no domain is mutated. Equal
// scores keep the domain's lexicographic order, so value ordering is
// reproducible.
func (s *Solver) orderValues(v board.Variable, asg Assignment) []string {
	words := s.domains.Words(v)
	scores := make(map[string]int, len(words))
	for _, w := range words {
		scores[w] = s.eliminationCount(v, w, asg)
	}
	sort.SliceStable(words, func(i, j int) bool {
		return scores[words[i]] < scores[words[j]]
	})
	return words
}

func (s *Solver) eliminationCount(v board.Variable, w string, asg Assignment) int {
	count := 0
	for _, n := range s.grid.Neighbors(v) {
		if _, done := asg[n]; done {
			continue
		}
		i, j, _ := s.grid.Overlap(v, n)
		for _, wn := range s.domains.Words(n) {
			if i >= len(w) || j >= len(wn) || w[i] != wn[j] {
				count++
			}
		}
	}
	return count
}

// consistent re-checks the whole assignment: words pairwise distinct, each
// word's length matching its slot, and every overlapping assigned pair
// agreeing on the shared letter. The full re-scan per trial is deliberate;
// puzzle-sized inputs keep it cheap.
func (s *Solver) consistent(asg Assignment) bool {
	used := make(map[string]board.Variable, len(asg))
	for v, w := range asg {
		if len(w) != v.Length {
			return false
		}
		if _, taken := used[w]; taken {
			return false
		}
		used[w] = v
	}
	for x, wx := range asg {
		for y, wy := range asg {
			if x == y {
				continue
			}
			if i, j, ok := s.grid.Overlap(x, y); ok && wx[i] != wy[j] {
				return false
			}
		}
	}
	return true
}
