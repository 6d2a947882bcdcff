package filler

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/domino14/crossfill/board"
)

// A Job pairs one grid with the word universe to fill it from.
type Job struct {
	Grid     *board.Grid
	Universe []string
}

// SolveAll fills independent puzzles concurrently, one goroutine per job.
// Each individual solve remains single-threaded and exclusively owns its
// own domain store. The first failing job cancels the rest; its error
// (wrapping ErrNoSolution when the puzzle is simply unfillable) is
// returned and the results discarded.
func SolveAll(ctx context.Context, jobs []Job) ([]Assignment, error) {
	results := make([]Assignment, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	for idx, job := range jobs {
		idx, job := idx, job
		g.Go(func() error {
			asg, err := NewSolver(job.Grid, job.Universe).Solve(ctx)
			if err != nil {
				return fmt.Errorf("job %d: %w", idx, err)
			}
			results[idx] = asg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
