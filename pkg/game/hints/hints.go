// Package hints explains why a location is out of reach: it searches the
// remaining item pool for the smallest item combinations that would open it.
package hints

import (
	"context"
	"errors"
	"runtime"
	"sort"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/sync/errgroup"

	"smz3/pkg/engine/item"
	"smz3/pkg/engine/progression"
	"smz3/pkg/game/world"
)

// MaxArity is the largest combination size searched.
const MaxArity = 3

// ErrBeyondSearchDepth is returned when no combination of up to MaxArity
// items reaches the location.
var ErrBeyondSearchDepth = errors.New("hints: location needs more than three missing items")

// Combination is a set of distinct item types, sorted by type.
type Combination []item.Type

// Mode selects how reachability is judged.
type Mode int

const (
	// Strict uses true gameplay access.
	Strict Mode = iota
	// Relevant uses relaxed rewards and the location's relevance formula, the
	// way a tracker hints at locations whose dungeon reward is still unknown.
	Relevant
)

func (m Mode) reachable(w *world.World, l *world.Location, p *progression.Progression) bool {
	if m == Relevant {
		return w.Snapshot(p, false).Relevant(l)
	}
	return w.Snapshot(p, true).Reachable(l)
}

// Missing returns every combination of one, two or three unowned item types
// that makes l reachable when added to p, smaller combinations first.
// Items that already form a smaller combination are left out of larger
// ones. The result is empty when l is already reachable. When no
// combination is found the error is ErrBeyondSearchDepth.
//
// p is only read. Candidate checks for one arity run in parallel and the
// result order is deterministic.
func Missing(ctx context.Context, w *world.World, l *world.Location, p *progression.Progression, mode Mode) ([]Combination, error) {
	if mode.reachable(w, l, p) {
		return nil, nil
	}

	candidates := Candidates(w, p)
	excluded := mapset.New[item.Type]()
	var found []Combination

	for k := 1; k <= MaxArity; k++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var pool []item.Type
		for _, t := range candidates {
			if !excluded.Has(t) {
				pool = append(pool, t)
			}
		}
		hits, err := search(ctx, pool, k, func(c Combination) bool {
			q := p.Clone()
			q.Add(c...)
			return mode.reachable(w, l, q)
		})
		if err != nil {
			return nil, err
		}
		for _, c := range hits {
			for _, t := range c {
				excluded.Put(t)
			}
		}
		found = append(found, hits...)
	}

	if len(found) == 0 {
		return nil, ErrBeyondSearchDepth
	}
	return found, nil
}

// Candidates lists the distinct item types of the progression, dungeon and
// keycard pools that p does not own, in type order.
func Candidates(w *world.World, p *progression.Progression) []item.Type {
	seen := mapset.New[item.Type]()
	var out []item.Type
	for _, group := range [][]item.Type{w.Pools.Progression, w.Pools.Dungeon, w.Pools.Keycards} {
		for _, t := range group {
			if p.Contains(t) || seen.Has(t) {
				continue
			}
			seen.Put(t)
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// search tests every k-subset of pool and returns those for which ok holds,
// in lexicographic order of their indices. Work is split by the first index
// of the subset.
func search(ctx context.Context, pool []item.Type, k int, ok func(Combination) bool) ([]Combination, error) {
	if k > len(pool) {
		return nil, nil
	}
	heads := len(pool) - k + 1
	results := make([][]Combination, heads)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for head := 0; head < heads; head++ {
		g.Go(func() error {
			idx := make([]int, k)
			idx[0] = head
			var hits []Combination
			var walk func(depth, from int) error
			walk = func(depth, from int) error {
				if depth == k {
					c := make(Combination, k)
					for i, j := range idx {
						c[i] = pool[j]
					}
					if ok(c) {
						hits = append(hits, c)
					}
					return nil
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				for j := from; j < len(pool); j++ {
					idx[depth] = j
					if err := walk(depth+1, j+1); err != nil {
						return err
					}
				}
				return nil
			}
			if err := walk(1, head+1); err != nil {
				return err
			}
			results[head] = hits
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Combination
	for _, hits := range results {
		out = append(out, hits...)
	}
	return out, nil
}
