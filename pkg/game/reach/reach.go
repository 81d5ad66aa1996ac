// Package reach answers reachability questions over a built world: single
// location checks, the collection sweep used by the filler and the spoiler,
// and the offline logic validation pass.
package reach

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"smz3/pkg/engine/progression"
	"smz3/pkg/game/world"
)

// IsReachable reports whether l's region can be entered and l's own formula
// holds for p.
func IsReachable(w *world.World, l *world.Location, p *progression.Progression, requireRewards bool) bool {
	return w.Snapshot(p, requireRewards).Reachable(l)
}

// IsRelevant is IsReachable with the location's relevance formula.
func IsRelevant(w *world.World, l *world.Location, p *progression.Progression, requireRewards bool) bool {
	return w.Snapshot(p, requireRewards).Relevant(l)
}

// Reachable lists the locations reachable for p, in build order.
func Reachable(w *world.World, p *progression.Progression, requireRewards bool) []*world.Location {
	s := w.Snapshot(p, requireRewards)
	var out []*world.Location
	for _, l := range w.Locations {
		if s.Reachable(l) {
			out = append(out, l)
		}
	}
	return out
}

// Collection is the result of sweeping placed items up to a fixpoint.
type Collection struct {
	// Items is the starting Progression plus everything collected.
	Items *progression.Progression
	// Spheres groups the collected locations by the sweep that reached them.
	Spheres [][]*world.Location
	// Collected holds every collected location.
	Collected mapset.Set[*world.Location]
}

// Count is the number of collected locations.
func (c *Collection) Count() int {
	return c.Collected.Size()
}

// Collect starts from a clone of base and repeatedly picks up every filled,
// strictly reachable location until nothing new becomes reachable. Items
// found in one sphere only count from the next sphere on.
func Collect(w *world.World, base *progression.Progression) *Collection {
	c := &Collection{
		Items:     base.Clone(),
		Collected: mapset.New[*world.Location](),
	}
	for {
		s := w.Snapshot(c.Items, true)
		var sphere []*world.Location
		for _, l := range w.Locations {
			if !l.Filled() || c.Collected.Has(l) {
				continue
			}
			if s.Reachable(l) {
				sphere = append(sphere, l)
			}
		}
		if len(sphere) == 0 {
			return c
		}
		for _, l := range sphere {
			c.Collected.Put(l)
			c.Items.Add(l.Item)
		}
		c.Spheres = append(c.Spheres, sphere)
	}
}

// FindCycles evaluates every region for p in both modes and returns the
// regions where the recursion guard cut an entrance chain, sorted by name.
func FindCycles(w *world.World, p *progression.Progression) []string {
	found := mapset.New[string]()
	for _, strict := range []bool{true, false} {
		s := w.Snapshot(p, strict)
		for _, r := range w.Regions {
			s.CanEnter(r.Name)
			for _, l := range r.Locations {
				s.Reachable(l)
			}
		}
		for _, name := range s.Cycles() {
			found.Put(name)
		}
	}
	var out []string
	found.Each(func(name string) {
		out = append(out, name)
	})
	sort.Strings(out)
	return out
}

// Everything returns a Progression holding every pooled item of w.
func Everything(w *world.World) *progression.Progression {
	return progression.Of(w.Config, w.Pools.All()...)
}
