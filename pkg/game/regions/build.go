// Package regions builds the combined Super Metroid and A Link to the Past
// world: every region, location, portal, boss and reward, plus the item pools.
package regions

import (
	"fmt"
	"math/rand"

	"smz3/pkg/engine/config"
	"smz3/pkg/engine/item"
	"smz3/pkg/engine/progression"
	"smz3/pkg/game/logic"
	"smz3/pkg/game/world"
)

// Build constructs a fresh world for one player. rng decides the reward and
// medallion assignment; the same rng state always yields the same world.
func Build(cfg *config.Config, id int, player string, rng *rand.Rand) (*world.World, error) {
	w := world.New(cfg, id, player)

	buildCrateria(w)
	buildBrinstar(w)
	buildNorfair(w)
	buildWreckedShip(w)
	buildMaridia(w)
	buildTourian(w)

	buildLightWorld(w)
	buildDeathMountain(w)
	buildDarkWorld(w)
	buildCastle(w)
	buildLightDungeons(w)
	buildDarkDungeons(w)

	w.Goal = goal(cfg)
	w.Pools = pools(w)

	assignRewards(w, rng)
	assignMedallions(w, rng)

	if err := w.CheckStructure(); err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	return w, nil
}

// rewardPool is the set of rewards handed out by the reward dungeons.
var rewardPool = []item.Reward{
	item.PendantGreen, item.PendantNonGreen, item.PendantNonGreen,
	item.Crystal, item.Crystal, item.CrystalRed, item.CrystalRed,
}

func assignRewards(w *world.World, rng *rand.Rand) {
	rewards := append([]item.Reward(nil), rewardPool...)
	rng.Shuffle(len(rewards), func(i, j int) { rewards[i], rewards[j] = rewards[j], rewards[i] })
	for i, r := range w.RewardRegions() {
		r.Reward.Reward = rewards[i%len(rewards)]
	}
}

func assignMedallions(w *world.World, rng *rand.Rand) {
	for _, r := range w.MedallionRegions() {
		r.Medallion.Medallion = item.Medallions[rng.Intn(len(item.Medallions))]
	}
}

// Shorthands for the formula tables below.

type prog = progression.Progression

func one(r logic.Requirement) logic.Variants {
	return logic.Variants{config.Normal: r}
}

func open() logic.Variants {
	return one(logic.Always)
}

// req wraps a pure item formula.
func req(fn func(p *prog) bool) logic.Variants {
	return one(logic.Items(fn))
}

// reqs wraps a normal and a hard item formula.
func reqs(normal, hard func(p *prog) bool) logic.Variants {
	return logic.ByLevel(logic.Items(normal), logic.Items(hard))
}

// state wraps a formula that also looks at other regions or bosses.
func state(fn func(s logic.State, p *prog) bool) logic.Variants {
	return one(func(s logic.State) bool { return fn(s, s.Items()) })
}

func states(normal, hard func(s logic.State, p *prog) bool) logic.Variants {
	return logic.ByLevel(
		func(s logic.State) bool { return normal(s, s.Items()) },
		func(s logic.State) bool { return hard(s, s.Items()) },
	)
}

func has(p *prog, types ...item.Type) bool {
	for _, t := range types {
		if !p.Contains(t) {
			return false
		}
	}
	return true
}

func keys(p *prog, t item.Type, n int) bool {
	return p.Count(t) >= n
}

// notOwnKey keeps a dungeon's small keys out of the location.
func notOwnKey(key item.Type) world.FillRule {
	return func(t item.Type, _ *prog) bool {
		return t != key
	}
}
