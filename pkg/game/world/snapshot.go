package world

import (
	"github.com/zyedidia/generic/mapset"

	"smz3/pkg/engine/item"
	"smz3/pkg/engine/progression"
)

// Snapshot evaluates region entrances for one Progression and mode. It
// memoises results and guards against cyclic region references: re-entering
// a region already on the evaluation stack yields false and is recorded.
// A Snapshot must not outlive changes to its Progression.
type Snapshot struct {
	w              *World
	p              *progression.Progression
	requireRewards bool

	memo     map[*Region]bool
	visiting mapset.Set[*Region]
	// cut is set while an evaluation below the current frame hit a cycle;
	// such results depend on the stack and are not memoised.
	cut    bool
	cycles mapset.Set[string]
}

func newSnapshot(w *World, p *progression.Progression, requireRewards bool) *Snapshot {
	return &Snapshot{
		w:              w,
		p:              p,
		requireRewards: requireRewards,
		memo:           make(map[*Region]bool),
		visiting:       mapset.New[*Region](),
		cycles:         mapset.New[string](),
	}
}

// Items returns the evaluated Progression.
func (s *Snapshot) Items() *progression.Progression {
	return s.p
}

// RequireRewards reports whether the snapshot evaluates in strict mode.
func (s *Snapshot) RequireRewards() bool {
	return s.requireRewards
}

// World returns the world being evaluated.
func (s *Snapshot) World() *World {
	return s.w
}

// CanEnter reports whether the named region is enterable. Unknown regions
// are never enterable.
func (s *Snapshot) CanEnter(name string) bool {
	r := s.w.regions[name]
	if r == nil {
		return false
	}
	return s.enter(r)
}

func (s *Snapshot) enter(r *Region) bool {
	if v, ok := s.memo[r]; ok {
		return v
	}
	if s.visiting.Has(r) {
		s.cycles.Put(r.Name)
		s.cut = true
		return false
	}

	s.visiting.Put(r)
	outer := s.cut
	s.cut = false

	ok := s.medallion(r) && r.enter(s)

	s.visiting.Remove(r)
	if !s.cut {
		s.memo[r] = ok
	}
	s.cut = outer || s.cut
	return ok
}

func (s *Snapshot) medallion(r *Region) bool {
	if r.Medallion == nil {
		return true
	}
	if r.Medallion.Medallion == item.Nothing {
		if s.requireRewards {
			return false
		}
		for _, m := range item.Medallions {
			if s.p.Contains(m) {
				return true
			}
		}
		return false
	}
	return s.p.Contains(r.Medallion.Medallion)
}

// Defeated reports whether boss b is already recorded as defeated or its
// region is enterable and the fight is winnable.
func (s *Snapshot) Defeated(b item.Boss) bool {
	if s.p.Defeated(b) {
		return true
	}
	for _, r := range s.w.Regions {
		if r.Boss != nil && r.Boss.Boss == b && s.enter(r) && r.Boss.CanBeat(s) {
			return true
		}
	}
	return false
}

// Rewards counts obtainable rewards of the given kinds. In strict mode a
// reward counts only when it is assigned, its region is enterable and the
// dungeon can be completed. In relaxed mode unassigned rewards count as
// matching and completion is not required, which breaks the cycle between a
// reward gated region and the dungeon holding that reward.
func (s *Snapshot) Rewards(kinds ...item.Reward) int {
	n := 0
	for _, r := range s.w.Regions {
		if r.Reward == nil {
			continue
		}
		if s.requireRewards {
			if !matches(r.Reward.Reward, kinds) || !s.enter(r) || !r.Reward.CanComplete(s) {
				continue
			}
		} else {
			if r.Reward.Reward != item.NoReward && !matches(r.Reward.Reward, kinds) {
				continue
			}
			if !s.enter(r) {
				continue
			}
		}
		n++
	}
	return max(n, s.p.RewardCount(kinds...))
}

func matches(r item.Reward, kinds []item.Reward) bool {
	for _, k := range kinds {
		if r == k {
			return true
		}
	}
	return false
}

// Cycles returns the regions where evaluation was cut by the recursion guard.
func (s *Snapshot) Cycles() []string {
	var out []string
	s.cycles.Each(func(name string) {
		out = append(out, name)
	})
	return out
}

// Reachable reports whether l's region is enterable and l's own formula holds.
func (s *Snapshot) Reachable(l *Location) bool {
	return s.enter(l.Region) && l.access(s)
}

// Relevant is Reachable with the location's relevance formula.
func (s *Snapshot) Relevant(l *Location) bool {
	return s.enter(l.Region) && l.IsRelevant(s)
}
