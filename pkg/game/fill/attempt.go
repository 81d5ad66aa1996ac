package fill

import (
	"context"
	"math/rand"
	"sort"

	"smz3/pkg/engine/config"
	"smz3/pkg/engine/item"
	"smz3/pkg/engine/progression"
	"smz3/pkg/game/reach"
	"smz3/pkg/game/world"
)

// attempt owns one world and one random source for a single try.
type attempt struct {
	w   *world.World
	rng *rand.Rand
	n   int
	// junk is pending until the junk tier and counts against game capacity.
	junk []item.Type
}

func newAttempt(w *world.World, rng *rand.Rand, n int) *attempt {
	return &attempt{w: w, rng: rng, n: n}
}

// run places every pooled item and verifies the result. A nil Failure and a
// nil error mean the world is complete.
func (a *attempt) run(ctx context.Context) (*Failure, error) {
	pools := a.w.Pools
	progressive := a.shuffled(pools.Progression)
	dungeon := a.dungeonOrder(pools.Dungeon, pools.Keycards)
	junk := a.junkOrder(pools.Junk)
	a.junk = junk

	if a.w.Config.PlacementRule != config.PlaceAnywhere {
		sealed := a.sealing(concat(progressive, dungeon))
		gatingFirst(progressive, sealed)
		gatingFirst(dungeon[len(dungeon)-len(pools.Keycards):], sealed)
	}

	pending := make([]item.Type, 0, len(progressive)+len(dungeon))
	pending = append(pending, progressive...)
	pending = append(pending, dungeon...)

	for i, it := range pending {
		if i == 0 || i == len(progressive) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		tier := TierProgression
		if i >= len(progressive) {
			tier = TierDungeon
		}
		if !a.place(it, pending[i+1:]) {
			return a.failure(tier, it, DeadEnd, len(pending)-i+len(junk)), nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f := a.placeJunk(junk); f != nil {
		return f, nil
	}

	col := reach.Collect(a.w, a.w.NewProgression())
	if col.Count() != len(a.w.Locations) || !a.w.Goal(a.w.Snapshot(col.Items, true)) {
		f := a.failure(TierJunk, item.Nothing, VerificationFailed, 0)
		f.Collected = col.Count()
		return f, nil
	}
	return nil, nil
}

func (a *attempt) failure(tier Tier, it item.Type, reason Reason, pending int) *Failure {
	return &Failure{
		Attempt:  a.n,
		Tier:     tier,
		Item:     it,
		Reason:   reason,
		Pending:  pending,
		Unfilled: len(a.w.Unfilled()),
	}
}

// place puts it into a location that stays reachable once everything in
// rest has been found. rest is what is still to be placed after it.
func (a *attempt) place(it item.Type, rest []item.Type) bool {
	col := reach.Collect(a.w, progression.Of(a.w.Config, rest...))
	s := a.w.Snapshot(col.Items, true)

	var candidates []*world.Location
	for _, l := range a.w.Locations {
		if l.CanFill(it, col.Items) && s.Reachable(l) {
			candidates = append(candidates, l)
		}
	}

	free, owed := a.capacity(rest)
	for len(candidates) > 0 {
		i := a.pick(candidates)
		l := candidates[i]
		if a.leavesRoom(l, it, free, owed) && a.reserves(l, it, rest) {
			l.Place(it)
			return true
		}
		candidates = append(candidates[:i], candidates[i+1:]...)
	}
	return false
}

// reserves reports whether putting it into l still leaves room for the
// dungeon items of l's dungeon that are yet to be placed. It runs a greedy
// assumed fill of those items and undoes it afterwards. Only relevant while
// dungeon items are confined to their dungeon.
func (a *attempt) reserves(l *world.Location, it item.Type, rest []item.Type) bool {
	d := l.Region.Dungeon
	if d == item.NoDungeon || a.w.Config.Z3Keysanity() {
		return true
	}

	var need, others []item.Type
	for _, t := range rest {
		if t.Is(item.Dungeon) && t.Dungeon() == d {
			need = append(need, t)
		} else {
			others = append(others, t)
		}
	}
	if len(need) == 0 {
		return true
	}

	placed := []*world.Location{l}
	l.Place(it)
	defer func() {
		for _, p := range placed {
			p.Place(item.Nothing)
		}
	}()

	for j, t := range need {
		assumed := progression.Of(a.w.Config, others...)
		assumed.Add(need[j+1:]...)
		col := reach.Collect(a.w, assumed)
		s := a.w.Snapshot(col.Items, true)

		var spot *world.Location
		for _, c := range l.Region.Locations {
			if c.CanFill(t, col.Items) && s.Reachable(c) {
				spot = c
				break
			}
		}
		if spot == nil {
			return false
		}
		spot.Place(t)
		placed = append(placed, spot)
	}
	return true
}

// capacity counts the open locations of each game and the pending items a
// placement rule confines to each game. It counts slots, not reachability.
func (a *attempt) capacity(rest []item.Type) (free, owed map[item.Game]int) {
	free = make(map[item.Game]int)
	owed = make(map[item.Game]int)
	for _, l := range a.w.Locations {
		if !l.Filled() {
			free[l.Region.Game]++
		}
	}
	for _, group := range [][]item.Type{rest, a.junk} {
		for _, t := range group {
			if g, ok := world.Confined(a.w.Config, t); ok {
				owed[g]++
			}
		}
	}
	return free, owed
}

// leavesRoom reports whether it may take l without crowding out the items
// still confined to l's game.
func (a *attempt) leavesRoom(l *world.Location, it item.Type, free, owed map[item.Game]int) bool {
	g := l.Region.Game
	if own, ok := world.Confined(a.w.Config, it); ok && own == g {
		return true
	}
	return free[g]-1 >= owed[g]
}

// sealing counts, per item type, the locations that drop out of reach when
// one copy of it is missing from pending.
func (a *attempt) sealing(pending []item.Type) map[item.Type]int {
	cfg := a.w.Config
	full := len(reach.Reachable(a.w, progression.Of(cfg, pending...), true))
	out := make(map[item.Type]int)
	for i, t := range pending {
		if _, ok := out[t]; ok {
			continue
		}
		without := concat(pending[:i], pending[i+1:])
		out[t] = full - len(reach.Reachable(a.w, progression.Of(cfg, without...), true))
	}
	return out
}

// gatingFirst moves the items that seal the most locations to the front, so
// a game with few open slots places them while their slots are still free.
// Ties keep their shuffled order.
func gatingFirst(items []item.Type, sealed map[item.Type]int) {
	sort.SliceStable(items, func(i, j int) bool {
		return sealed[items[i]] > sealed[items[j]]
	})
}

func concat(groups ...[]item.Type) []item.Type {
	var out []item.Type
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// tickets biases the pick towards regions with a higher weight. Every
// eligible location keeps at least one ticket.
func tickets(l *world.Location) int {
	return max(1, 4+l.Region.Weight)
}

func (a *attempt) pick(candidates []*world.Location) int {
	total := 0
	for _, l := range candidates {
		total += tickets(l)
	}
	n := a.rng.Intn(total)
	for i, l := range candidates {
		n -= tickets(l)
		if n < 0 {
			return i
		}
	}
	return len(candidates) - 1
}

// placeJunk fills the remaining locations. Everything is placed by now
// except filler, so reachability is computed once up front.
func (a *attempt) placeJunk(junk []item.Type) *Failure {
	col := reach.Collect(a.w, a.w.NewProgression())
	s := a.w.Snapshot(col.Items, true)

	var open []*world.Location
	for _, l := range a.w.Locations {
		if !l.Filled() && s.Reachable(l) {
			open = append(open, l)
		}
	}

	for i, it := range junk {
		var candidates []int
		for j, l := range open {
			if l.CanFill(it, col.Items) {
				candidates = append(candidates, j)
			}
		}
		if len(candidates) == 0 {
			return a.failure(TierJunk, it, DeadEnd, len(junk)-i)
		}
		j := candidates[a.rng.Intn(len(candidates))]
		open[j].Place(it)
		open = append(open[:j], open[j+1:]...)
	}
	return nil
}

func (a *attempt) shuffled(types []item.Type) []item.Type {
	out := append([]item.Type(nil), types...)
	a.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// dungeonOrder places big keys first, then small keys, then maps and
// compasses, then keycards. Each group is shuffled on its own.
func (a *attempt) dungeonOrder(dungeon, keycards []item.Type) []item.Type {
	var big, small, rest []item.Type
	for _, t := range dungeon {
		switch {
		case t.IsBigKey():
			big = append(big, t)
		case t.IsSmallKey():
			small = append(small, t)
		default:
			rest = append(rest, t)
		}
	}
	var out []item.Type
	for _, group := range [][]item.Type{big, small, rest, keycards} {
		out = append(out, a.shuffled(group)...)
	}
	return out
}

// junkOrder puts progression flagged filler first: a placement rule may
// confine it to one game, so it gets first pick of the open slots.
func (a *attempt) junkOrder(junk []item.Type) []item.Type {
	var restricted, free []item.Type
	for _, t := range a.shuffled(junk) {
		if t.Is(item.Progression) {
			restricted = append(restricted, t)
		} else {
			free = append(free, t)
		}
	}
	return append(restricted, free...)
}
