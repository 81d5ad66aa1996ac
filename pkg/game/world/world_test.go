package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smz3/pkg/engine/config"
	"smz3/pkg/engine/item"
	"smz3/pkg/engine/progression"
	"smz3/pkg/game/logic"
)

func only(r logic.Requirement) logic.Variants {
	return logic.Variants{config.Normal: r}
}

// newTestWorld builds a tiny two-dungeon world:
// Outside -> Palace (needs Lamp, reward) and Tower (needs one crystal).
func newTestWorld(t *testing.T, cfg *config.Config) *World {
	t.Helper()
	w := New(cfg, 0, "test")
	out := w.NewRegion("Outside", LightWorld, item.NoDungeon, 0, only(logic.Always))
	out.Add(1, "Outside Chest", item.Bow, only(logic.Always))

	palace := w.NewRegion("Palace", LightDungeons, item.EasternPalace, 0, only(logic.Has(item.Lamp))).
		WithReward(only(logic.Has(item.Bow))).
		WithBoss(item.Armos, only(logic.Has(item.Bow)))
	palace.Add(2, "Palace Chest", item.BigKeyEP, only(logic.Always))
	palace.Add(3, "Palace Boss", item.HeartContainer, only(logic.Beat(item.Armos)))

	tower := w.NewRegion("Tower", DarkDungeons, item.GanonsTower, -2, only(logic.RewardsAtLeast(1, item.Crystals...)))
	tower.Add(4, "Tower Chest", item.KeyGT, only(logic.Always))

	w.Pools = Pools{
		Progression: []item.Type{item.Bow},
		Dungeon:     []item.Type{item.BigKeyEP, item.KeyGT},
		Junk:        []item.Type{item.HeartContainer},
	}
	return w
}

func TestSnapshotStrictAndRelaxed(t *testing.T) {
	cfg := config.Default()
	w := newTestWorld(t, &cfg)
	p := progression.Of(&cfg, item.Lamp, item.Bow)

	assert.True(t, w.Region("Palace").CanEnter(p, true))
	assert.False(t, w.Region("Tower").CanEnter(p, true), "reward not assigned yet")
	assert.True(t, w.Region("Tower").CanEnter(p, false), "relaxed mode counts unassigned rewards")

	w.Region("Palace").Reward.Reward = item.Crystal
	assert.True(t, w.Region("Tower").CanEnter(p, true))

	w.Region("Palace").Reward.Reward = item.PendantGreen
	assert.False(t, w.Region("Tower").CanEnter(p, true))
	assert.False(t, w.Region("Tower").CanEnter(p, false), "assigned pendant is not a crystal")
}

func TestSnapshotBossAndTracker(t *testing.T) {
	cfg := config.Default()
	w := newTestWorld(t, &cfg)
	boss := w.LocationByName("Palace Boss")

	p := progression.Of(&cfg, item.Lamp)
	assert.False(t, w.Snapshot(p, true).Reachable(boss))
	p.Add(item.Bow)
	assert.True(t, w.Snapshot(p, true).Reachable(boss))

	tracked := progression.Of(&cfg, item.Lamp)
	tracked.AddBoss(item.Armos)
	assert.True(t, w.Snapshot(tracked, true).Reachable(boss), "a tracked kill counts without the weapon")

	tracked = progression.New(&cfg)
	tracked.AddReward(item.Crystal)
	assert.True(t, w.Region("Tower").CanEnter(tracked, true), "tracked rewards count")
}

func TestSnapshotCycleGuard(t *testing.T) {
	cfg := config.Default()
	w := New(&cfg, 0, "cycle")
	w.NewRegion("A", LightWorld, item.NoDungeon, 0, only(logic.Enter("B")))
	w.NewRegion("B", LightWorld, item.NoDungeon, 0, only(logic.Any(logic.Has(item.Hookshot), logic.Enter("A"))))

	s := w.Snapshot(progression.New(&cfg), true)
	assert.False(t, s.CanEnter("A"))
	assert.NotEmpty(t, s.Cycles())

	s = w.Snapshot(progression.Of(&cfg, item.Hookshot), true)
	assert.True(t, s.CanEnter("A"))
	assert.True(t, s.CanEnter("B"))
	assert.False(t, s.CanEnter("Nowhere"))
}

func TestMedallionSeal(t *testing.T) {
	cfg := config.Default()
	w := New(&cfg, 0, "seal")
	mire := w.NewRegion("Mire", DarkDungeons, item.MiseryMire, 0, only(logic.Always)).WithMedallion()

	p := progression.Of(&cfg, item.Ether)
	assert.False(t, mire.CanEnter(p, true), "unassigned medallion is closed in strict mode")
	assert.True(t, mire.CanEnter(p, false))

	mire.Medallion.Medallion = item.Quake
	assert.False(t, mire.CanEnter(p, false))
	p.Add(item.Quake)
	assert.True(t, mire.CanEnter(p, true))
}

func TestCanFill(t *testing.T) {
	cfg := config.Default()
	w := newTestWorld(t, &cfg)
	p := progression.New(&cfg)
	palaceChest := w.LocationByName("Palace Chest")
	outside := w.LocationByName("Outside Chest")

	assert.True(t, palaceChest.CanFill(item.BigKeyEP, p))
	assert.False(t, outside.CanFill(item.BigKeyEP, p), "dungeon items stay home")
	assert.False(t, palaceChest.CanFill(item.KeyGT, p))

	cfg.Keysanity = config.KeysanityZelda
	assert.True(t, outside.CanFill(item.BigKeyEP, p))

	cfg.PlacementRule = config.PlaceSameGame
	assert.False(t, outside.CanFill(item.Morph, p))
	assert.True(t, outside.CanFill(item.Hookshot, p))
	assert.True(t, outside.CanFill(item.TenArrows, p), "junk ignores the placement rule")

	cfg.PlacementRule = config.PlaceOppositeGame
	assert.True(t, outside.CanFill(item.Morph, p))
	assert.False(t, outside.CanFill(item.Hookshot, p))

	outside.Place(item.Bow)
	assert.False(t, outside.CanFill(item.Morph, p), "filled locations accept nothing")
}

func TestConfined(t *testing.T) {
	cfg := config.Default()
	_, ok := Confined(&cfg, item.Morph)
	assert.False(t, ok, "anywhere confines nothing")

	cfg.PlacementRule = config.PlaceSameGame
	g, ok := Confined(&cfg, item.Missile)
	assert.True(t, ok)
	assert.Equal(t, item.SuperMetroid, g)
	g, _ = Confined(&cfg, item.CardBrinstarL1)
	assert.Equal(t, item.SuperMetroid, g)
	_, ok = Confined(&cfg, item.MapEP)
	assert.False(t, ok, "maps and compasses are not progression")

	cfg.PlacementRule = config.PlaceOppositeGame
	g, _ = Confined(&cfg, item.Hookshot)
	assert.Equal(t, item.SuperMetroid, g)
}

func TestCheckStructure(t *testing.T) {
	cfg := config.Default()
	w := newTestWorld(t, &cfg)
	require.NoError(t, w.CheckStructure())

	w.Pools.Junk = append(w.Pools.Junk, item.TenArrows)
	assert.Error(t, w.CheckStructure())

	w = newTestWorld(t, &cfg)
	w.Region("Outside").Add(1, "Clone", item.Nothing, only(logic.Always))
	w.Pools.Junk = append(w.Pools.Junk, item.TenArrows)
	assert.ErrorContains(t, w.CheckStructure(), "duplicate location ids [1]")
}

func TestAreas(t *testing.T) {
	for _, a := range Areas() {
		assert.NotEmpty(t, a.Key())
	}
	assert.Equal(t, item.SuperMetroid, Tourian.Game())
	assert.Equal(t, item.Zelda, LightWorld.Game())
}
