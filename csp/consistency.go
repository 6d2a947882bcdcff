package csp

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/crossfill/board"
)

// An Arc is an ordered pair of variables whose consistency is pending:
// popping (X, Y) means re-establishing that every word left for X has some
// compatible word left for Y.
type Arc struct {
	X, Y board.Variable
}

// Enforcer prunes a domain store against a grid's constraints. It mutates
// the Domains destructively; there is no undo.
type Enforcer struct {
	grid    *board.Grid
	domains *Domains
}

func NewEnforcer(g *board.Grid, d *Domains) *Enforcer {
	return &Enforcer{grid: g, domains: d}
}

// EnforceNodeConsistency removes from every domain the words whose length
// does not match the variable's slot length. It runs once, before
// propagation, and is idempotent. An emptied domain is not an error here;
// propagation or search reports it as unsolvable later.
func (e *Enforcer) EnforceNodeConsistency() {
	removed := 0
	for _, v := range e.grid.Variables() {
		misfits := lo.Filter(e.domains.Words(v), func(w string, _ int) bool {
			return len(w) != v.Length
		})
		for _, w := range misfits {
			e.domains.Remove(v, w)
		}
		removed += len(misfits)
	}
	log.Debug().Int("removed", removed).Msg("node consistency enforced")
}

// Revise makes x arc-consistent with y: it removes from x's domain every
// word that has no supporting word in y's domain at the overlap offsets.
// Words too short to reach their offset never match; they are simply
// unsupported, not an error. Returns whether anything was removed. If the
// slots do not intersect there is nothing to revise.
func (e *Enforcer) Revise(x, y board.Variable) bool {
	i, j, ok := e.grid.Overlap(x, y)
	if !ok {
		return false
	}
	revised := false
	for _, wx := range e.domains.Words(x) {
		if !e.supported(wx, i, j, y) {
			e.domains.Remove(x, wx)
			revised = true
		}
	}
	return revised
}

func (e *Enforcer) supported(wx string, i, j int, y board.Variable) bool {
	if i >= len(wx) {
		return false
	}
	for wy := range e.domains.words[y] {
		if j < len(wy) && wx[i] == wy[j] {
			return true
		}
	}
	return false
}

// Propagate runs AC-3 over the given worklist of arcs, or over every
// ordered pair of distinct variables when arcs is nil. Each revision that
// shrinks a domain re-enqueues the arcs (z, x) for every neighbor z of x
// other than y, since z's support may have lived in the removed words. It
// returns false as soon as any domain empties; true once the worklist
// drains. Termination follows from domains being finite and only ever
// shrinking.
func (e *Enforcer) Propagate(arcs []Arc) bool {
	if arcs == nil {
		vars := e.grid.Variables()
		for _, x := range vars {
			for _, y := range vars {
				if x != y {
					arcs = append(arcs, Arc{x, y})
				}
			}
		}
	}
	revisions := 0
	for len(arcs) > 0 {
		arc := arcs[0]
		arcs = arcs[1:]
		if !e.Revise(arc.X, arc.Y) {
			continue
		}
		revisions++
		if e.domains.Empty(arc.X) {
			log.Debug().Stringer("variable", arc.X).Msg("domain emptied during propagation")
			return false
		}
		for _, z := range e.grid.Neighbors(arc.X) {
			if z != arc.Y {
				arcs = append(arcs, Arc{z, arc.X})
			}
		}
	}
	log.Debug().Int("revisions", revisions).Msg("arc consistency established")
	return true
}
