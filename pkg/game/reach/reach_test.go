package reach

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smz3/pkg/engine/config"
	"smz3/pkg/engine/item"
	"smz3/pkg/engine/progression"
	"smz3/pkg/game/logic"
	"smz3/pkg/game/regions"
	"smz3/pkg/game/world"
)

func only(r logic.Requirement) logic.Variants {
	return logic.Variants{config.Normal: r}
}

func buildWorld(t *testing.T, cfg config.Config) *world.World {
	t.Helper()
	w, err := regions.Build(&cfg, 0, "Player", rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	return w
}

func TestValidateShippedLogic(t *testing.T) {
	cases := map[string]func(*config.Config){
		"default": func(*config.Config) {},
		"hard": func(c *config.Config) {
			c.SMLogic = config.Hard
			c.Z3Logic = config.Hard
		},
		"keysanity": func(c *config.Config) { c.Keysanity = config.KeysanityBoth },
		"strict toggles": func(c *config.Config) {
			c.Logic.PreventScrewAttackSoftLock = true
			c.Logic.PreventFivePowerBombSeed = true
			c.Logic.LeftSandPitRequiresSpringBall = true
			c.Logic.LaunchPadRequiresIceBeam = true
			c.Logic.WaterwayNeedsGravitySuit = true
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			w := buildWorld(t, cfg)
			assert.NoError(t, Validate(w))
		})
	}
}

func TestValidateReportsSealedLocation(t *testing.T) {
	w := buildWorld(t, config.Default())
	w.NewRegion("Sealed Vault", world.LightWorld, item.NoDungeon, 0, only(logic.Never)).
		Add(9999, "Sealed Chest", item.TwentyRupees, only(logic.Always))

	err := Validate(w)
	require.Error(t, err)
	assert.True(t, IsLogicInconsistency(err))

	var li *LogicInconsistency
	require.ErrorAs(t, err, &li)
	assert.Equal(t, []string{"Sealed Chest"}, li.Unreachable)
	assert.False(t, li.Goal)
}

func TestFindCyclesOnShippedLogic(t *testing.T) {
	w := buildWorld(t, config.Default())
	assert.Empty(t, FindCycles(w, Everything(w)))
	assert.Empty(t, FindCycles(w, w.NewProgression()))
}

func TestFindCyclesDetectsMutualEntrances(t *testing.T) {
	cfg := config.Default()
	w := world.New(&cfg, 0, "test")
	w.NewRegion("Left", world.Crateria, item.NoDungeon, 0, only(logic.Enter("Right")))
	w.NewRegion("Right", world.Crateria, item.NoDungeon, 0, only(logic.Enter("Left")))

	assert.Equal(t, []string{"Left", "Right"}, FindCycles(w, w.NewProgression()))
}

func TestCollectBuildsSpheres(t *testing.T) {
	cfg := config.Default()
	w := world.New(&cfg, 0, "test")
	start := w.NewRegion("Start", world.LightWorld, item.NoDungeon, 0, only(logic.Always))
	start.Add(1, "First", item.Nothing, only(logic.Always)).Place(item.Lamp)
	start.Add(2, "Second", item.Nothing, only(logic.Has(item.Lamp))).Place(item.Hammer)
	start.Add(3, "Third", item.Nothing, only(logic.Has(item.Hammer))).Place(item.Bow)
	start.Add(4, "Locked", item.Nothing, only(logic.Has(item.Hookshot))).Place(item.Book)
	start.Add(5, "Empty", item.Nothing, only(logic.Always))

	c := Collect(w, w.NewProgression())

	require.Len(t, c.Spheres, 3)
	assert.Equal(t, "First", c.Spheres[0][0].Name)
	assert.Equal(t, "Second", c.Spheres[1][0].Name)
	assert.Equal(t, "Third", c.Spheres[2][0].Name)
	assert.Equal(t, 3, c.Count())
	assert.True(t, c.Items.Contains(item.Bow))
	assert.False(t, c.Items.Contains(item.Book))
}

func TestReachabilityIsMonotone(t *testing.T) {
	cfg := config.Default()
	w := buildWorld(t, cfg)
	pool := w.Pools.All()
	rng := rand.New(rand.NewSource(99))

	for round := 0; round < 40; round++ {
		small := progression.New(w.Config)
		large := progression.New(w.Config)
		for _, it := range pool {
			switch r := rng.Intn(3); {
			case r == 0:
				small.Add(it)
				large.Add(it)
			case r == 1:
				large.Add(it)
			}
		}
		for _, strict := range []bool{true, false} {
			a := w.Snapshot(small, strict)
			b := w.Snapshot(large, strict)
			for _, l := range w.Locations {
				if a.Reachable(l) {
					assert.True(t, b.Reachable(l), "round %d strict=%v: %s lost with more items", round, strict, l.Name)
				}
			}
		}
	}
}

func TestIsReachableMatchesSnapshot(t *testing.T) {
	cfg := config.Default()
	w := buildWorld(t, cfg)
	p := progression.Of(w.Config, item.Morph, item.Bombs)

	for _, l := range Reachable(w, p, true) {
		assert.True(t, IsReachable(w, l, p, true), l.Name)
	}
	l := w.LocationByName("Missile (Crateria bottom)")
	assert.True(t, IsReachable(w, l, p, true))
	assert.False(t, IsReachable(w, l, w.NewProgression(), true))
}
