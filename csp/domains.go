// Package csp holds the constraint-satisfaction machinery for filling a
// grid: the per-variable candidate domains and the node/arc consistency
// engine that prunes them before search.
package csp

import (
	"sort"

	"github.com/domino14/crossfill/board"
)

// Domains maps each variable to the set of words still considered possible
// for it. Domains only ever shrink: once a word is removed it is never
// re-inserted, and the pruning done before search is not rolled back while
// the search backtracks. A Domains value is exclusively owned by one solve.
type Domains struct {
	words map[board.Variable]map[string]struct{}
}

// NewDomains initializes every variable's domain to the full word universe.
// Length filtering is the consistency engine's job, not initialization's.
func NewDomains(vars []board.Variable, universe []string) *Domains {
	d := &Domains{words: make(map[board.Variable]map[string]struct{}, len(vars))}
	for _, v := range vars {
		set := make(map[string]struct{}, len(universe))
		for _, w := range universe {
			set[w] = struct{}{}
		}
		d.words[v] = set
	}
	return d
}

// Words returns v's current domain, sorted. Sorting keeps downstream value
// ordering reproducible; correctness never depends on it.
func (d *Domains) Words(v board.Variable) []string {
	out := make([]string, 0, len(d.words[v]))
	for w := range d.words[v] {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func (d *Domains) Contains(v board.Variable, w string) bool {
	_, ok := d.words[v][w]
	return ok
}

func (d *Domains) Remove(v board.Variable, w string) {
	delete(d.words[v], w)
}

func (d *Domains) Size(v board.Variable) int {
	return len(d.words[v])
}

func (d *Domains) Empty(v board.Variable) bool {
	return len(d.words[v]) == 0
}
