package hints

import (
	"context"
	"math/rand"
	"testing"

	"github.com/leonelquinteros/gotext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smz3/pkg/engine/config"
	"smz3/pkg/engine/item"
	"smz3/pkg/engine/progression"
	"smz3/pkg/game/logic"
	"smz3/pkg/game/regions"
	"smz3/pkg/game/world"
)

func buildWorld(t *testing.T, cfg config.Config) *world.World {
	t.Helper()
	w, err := regions.Build(&cfg, 0, "Player", rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return w
}

func TestScrewAttackSoftLockDiagnostics(t *testing.T) {
	cfg := config.Default()
	w := buildWorld(t, cfg)
	target := w.LocationByName("Missile (Crateria bottom)")
	p := progression.Of(w.Config, item.ScrewAttack)

	combos, err := Missing(context.Background(), w, target, p, Strict)
	require.NoError(t, err)
	assert.Empty(t, combos)

	cfg.Logic.PreventScrewAttackSoftLock = true
	w = buildWorld(t, cfg)
	target = w.LocationByName("Missile (Crateria bottom)")
	p = progression.Of(w.Config, item.ScrewAttack)

	combos, err = Missing(context.Background(), w, target, p, Strict)
	require.NoError(t, err)
	assert.Equal(t, []Combination{{item.Morph}}, combos)
}

func TestCrateriaSurfaceDiagnostics(t *testing.T) {
	cfg := config.Default()
	cfg.SMLogic = config.Hard
	require.NoError(t, cfg.Validate())
	w := buildWorld(t, cfg)
	target := w.LocationByName("Power Bomb (Crateria surface)")
	p := progression.Of(w.Config, item.Morph, item.PowerBomb, item.Bombs)

	combos, err := Missing(context.Background(), w, target, p, Strict)
	require.NoError(t, err)
	assert.ElementsMatch(t, []Combination{{item.SpaceJump}, {item.SpeedBooster}}, combos)

	cfg.Logic.InfiniteBombJump = true
	require.NoError(t, cfg.Validate())
	w = buildWorld(t, cfg)
	target = w.LocationByName("Power Bomb (Crateria surface)")
	p = progression.Of(w.Config, item.Morph, item.PowerBomb, item.Bombs)

	combos, err = Missing(context.Background(), w, target, p, Strict)
	require.NoError(t, err)
	assert.Empty(t, combos)
}

func TestDiagnosticsAreSound(t *testing.T) {
	cfg := config.Default()
	w := buildWorld(t, cfg)
	rng := rand.New(rand.NewSource(5))
	pool := w.Pools.Progression

	for round := 0; round < 6; round++ {
		p := w.NewProgression()
		for _, it := range pool {
			if rng.Intn(2) == 0 {
				p.Add(it)
			}
		}
		l := w.Locations[rng.Intn(len(w.Locations))]
		reachable := w.Snapshot(p, true).Reachable(l)

		combos, err := Missing(context.Background(), w, l, p, Strict)
		if reachable {
			require.NoError(t, err)
			assert.Empty(t, combos, l.Name)
			continue
		}
		if err != nil {
			assert.ErrorIs(t, err, ErrBeyondSearchDepth)
			continue
		}
		require.NotEmpty(t, combos, l.Name)
		for _, c := range combos {
			q := p.Clone()
			for _, it := range c {
				assert.False(t, p.Contains(it), "%s already owned", it)
				q.Add(it)
			}
			assert.True(t, w.Snapshot(q, true).Reachable(l), "%v does not open %s", c, l.Name)
		}
	}
}

func only(r logic.Requirement) logic.Variants {
	return logic.Variants{config.Normal: r}
}

// vault needs Hammer and Hookshot, or Lamp alone, inside a region that needs
// Flippers.
func vault(t *testing.T) (*world.World, *world.Location) {
	t.Helper()
	cfg := config.Default()
	w := world.New(&cfg, 0, "test")
	r := w.NewRegion("Lake", world.LightWorld, item.NoDungeon, 0, only(logic.Has(item.Flippers)))
	l := r.Add(1, "Vault", item.Bow, only(logic.Any(logic.Has(item.Hammer, item.Hookshot), logic.Has(item.Lamp))))
	w.Pools = world.Pools{Progression: []item.Type{
		item.Flippers, item.Hammer, item.Hookshot, item.Lamp, item.Book, item.Cape, item.Mirror,
	}}
	return w, l
}

func TestLargerCombinationsSkipSmallerAnswers(t *testing.T) {
	w, l := vault(t)

	combos, err := Missing(context.Background(), w, l, progression.Of(w.Config, item.Flippers), Strict)
	require.NoError(t, err)
	assert.Equal(t, []Combination{{item.Lamp}, {item.Hookshot, item.Hammer}}, combos)

	// Flippers is part of a pair, so the Flippers, Hammer and Hookshot triple
	// is never tried.
	combos, err = Missing(context.Background(), w, l, w.NewProgression(), Strict)
	require.NoError(t, err)
	assert.Equal(t, []Combination{{item.Lamp, item.Flippers}}, combos)
}

func TestBeyondSearchDepth(t *testing.T) {
	cfg := config.Default()
	w := world.New(&cfg, 0, "test")
	l := w.NewRegion("Far", world.LightWorld, item.NoDungeon, 0, only(logic.Always)).
		Add(1, "Far Chest", item.Bow, only(logic.Has(item.Hammer, item.Hookshot, item.Lamp, item.Book)))
	w.Pools = world.Pools{Progression: []item.Type{item.Hammer, item.Hookshot, item.Lamp, item.Book}}

	_, err := Missing(context.Background(), w, l, w.NewProgression(), Strict)
	assert.ErrorIs(t, err, ErrBeyondSearchDepth)

	combos, err := Missing(context.Background(), w, l, progression.Of(w.Config, item.Book), Strict)
	require.NoError(t, err)
	assert.Equal(t, []Combination{{item.Hookshot, item.Lamp, item.Hammer}}, combos)
}

func TestMissingHonoursCancellation(t *testing.T) {
	w, l := vault(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Missing(ctx, w, l, w.NewProgression(), Strict)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRelevantModeUsesRelevanceFormula(t *testing.T) {
	cfg := config.Default()
	w := buildWorld(t, cfg)
	pedestal := w.LocationByName("Master Sword Pedestal")
	require.NotNil(t, pedestal)

	p := progression.Of(w.Config, item.Book)
	combos, err := Missing(context.Background(), w, pedestal, p, Relevant)
	require.NoError(t, err)
	assert.Empty(t, combos, "the pedestal is relevant once the book can read it")
}

func TestExplain(t *testing.T) {
	gotext.Configure("../../../locales", "en_GB", "default")
	w, l := vault(t)

	text, err := Explain(context.Background(), w, l, progression.Of(w.Config, item.Flippers), Strict)
	require.NoError(t, err)
	assert.Contains(t, text, "Vault")
	assert.Contains(t, text, item.Lamp.DisplayName())

	text, err = Explain(context.Background(), w, l, progression.Of(w.Config, item.Flippers, item.Lamp), Strict)
	require.NoError(t, err)
	assert.Contains(t, text, "Vault")
}
