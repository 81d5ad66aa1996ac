package seed

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"smz3/pkg/engine/config"
	"smz3/pkg/engine/item"
	"smz3/pkg/engine/progression"
	"smz3/pkg/game/logic"
	"smz3/pkg/game/world"
)

var update = flag.Bool("update", false, "rewrite testdata/regression.hash")

func only(r logic.Requirement) logic.Variants {
	return logic.Variants{config.Normal: r}
}

func tiny() *world.World {
	cfg := config.Default()
	w := world.New(&cfg, 0, "test")
	outside := w.NewRegion("Outside", world.LightWorld, item.NoDungeon, 0, only(logic.Always))
	outside.Add(1, "Outside Chest", item.Lamp, only(logic.Always)).Place(item.Lamp)

	palace := w.NewRegion("Palace", world.LightDungeons, item.EasternPalace, 0, only(logic.Always)).
		WithReward(only(logic.Always))
	palace.Reward.Reward = item.PendantGreen
	palace.Add(2, "Palace Chest", item.Bow, only(logic.Always)).Place(item.Bow)

	mire := w.NewRegion("Mire", world.DarkWorld, item.NoDungeon, 0, only(logic.Always)).WithMedallion()
	mire.Medallion.Medallion = item.Ether
	return w
}

func TestHashIsFNV1aOverSortedLines(t *testing.T) {
	w := tiny()
	// FNV-1a 64 of "1=Lamp\n2=Bow\nPalace=PendantGreen\nMire=Ether\n".
	assert.Equal(t, "0dc452319e9285de", Hash(w))

	w.Region("Palace").Reward.Reward = item.Crystal
	assert.Equal(t, "fd1c47fff29a6c47", Hash(w))
}

func generate(t *testing.T, cfg config.Config, opts ...Option) *SeedData {
	t.Helper()
	data, err := New(opts...).Generate(context.Background(), cfg)
	require.NoError(t, err)
	return data
}

func TestGenerateIsDeterministic(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = "test"

	a := generate(t, cfg)
	b := generate(t, cfg)

	assert.Equal(t, a.Seed, b.Seed)
	assert.Equal(t, "test", a.SeedText)
	assert.Equal(t, a.Hash, b.Hash)
	require.Len(t, a.Worlds, 1)
	assert.Equal(t, a.Worlds[0].Placements, b.Worlds[0].Placements)
	assert.Equal(t, a.Worlds[0].Rewards, b.Worlds[0].Rewards)
	assert.Equal(t, a.Worlds[0].Medallions, b.Worlds[0].Medallions)
	assert.NotEqual(t, a.GUID, b.GUID)

	cfg.Seed = "other"
	c := generate(t, cfg)
	assert.NotEqual(t, a.Hash, c.Hash)
}

func TestGenerateDescribesTheWorld(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = "42"
	data := generate(t, cfg)
	require.Len(t, data.Worlds, 1)
	wd := data.Worlds[0]
	w := wd.World()
	require.NotNil(t, w)

	assert.Equal(t, int64(42), data.Seed)
	assert.Equal(t, "Player", wd.Player)
	assert.Len(t, wd.Placements, len(w.Locations))
	for i := 1; i < len(wd.Placements); i++ {
		assert.Less(t, wd.Placements[i-1].ID, wd.Placements[i].ID)
	}
	assert.Len(t, wd.Rewards, len(w.RewardRegions()))
	assert.Len(t, wd.Medallions, 2)
	assert.NotEmpty(t, wd.Bosses)
	assert.Equal(t, Hash(w), wd.Hash)
	assert.GreaterOrEqual(t, wd.Attempts, 1)

	seen := 0
	for _, sphere := range wd.Playthrough {
		seen += len(sphere)
	}
	assert.Equal(t, len(w.Locations), seen, "the playthrough collects everything")
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.MaxAttempts = 0

	data, err := New().Generate(context.Background(), cfg)
	assert.Nil(t, data)
	assert.True(t, config.IsConfigurationError(err))
}

func TestGenerateMultiworld(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = "multi"
	cfg.Multiworld = true
	cfg.Players = []string{"Alice", "Bob"}

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	data := generate(t, cfg, WithMetrics(m))

	require.Len(t, data.Worlds, 2)
	assert.Equal(t, 0, data.Worlds[0].ID)
	assert.Equal(t, "Alice", data.Worlds[0].Player)
	assert.Equal(t, 1, data.Worlds[1].ID)
	assert.Equal(t, "Bob", data.Worlds[1].Player)
	assert.NotEqual(t, data.Worlds[0].Hash, data.Worlds[1].Hash)
	assert.Equal(t, CombinedHash(data.Worlds), data.Hash)

	again := generate(t, cfg)
	assert.Equal(t, data.Hash, again.Hash)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Seeds.WithLabelValues("ok")))
	attempts := data.Worlds[0].Attempts + data.Worlds[1].Attempts
	assert.Equal(t, float64(attempts), testutil.ToFloat64(m.Attempts))
}

func TestGenerateTracesEveryWorld(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	cfg := config.Default()
	cfg.Seed = "traced"
	cfg.Multiworld = true
	cfg.Players = []string{"A", "B"}
	data := generate(t, cfg, WithTracer(tp.Tracer("test")))

	names := map[string]int{}
	for _, span := range sr.Ended() {
		names[span.Name()]++
	}
	assert.Equal(t, map[string]int{
		"seed.Generate": 1,
		"seed.world":    2,
		"fill.attempt":  data.Worlds[0].Attempts + data.Worlds[1].Attempts,
	}, names)
}

func TestGenerateStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Generate(ctx, config.Default())
	assert.ErrorIs(t, err, context.Canceled)
}

// The regression hash pins the whole pipeline for one seed. Regenerate it
// with -update after an intentional change to the logic or the fill.
func TestRegressionHash(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = "regression"
	data := generate(t, cfg)

	path := filepath.Join("testdata", "regression.hash")
	if *update {
		require.NoError(t, os.MkdirAll("testdata", 0o755))
		require.NoError(t, os.WriteFile(path, []byte(data.Hash+"\n"), 0o644))
	}
	want, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		t.Skip("no regression hash recorded; run with -update")
	}
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(string(want)), data.Hash)
}

func TestWriteAndRead(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = "7"
	data := generate(t, cfg)

	for _, format := range []Format{FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, data, format))

			back, err := Read(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, data.Hash, back.Hash)
			assert.Equal(t, data.Worlds[0].Placements, back.Worlds[0].Placements)
			assert.Nil(t, back.Worlds[0].World())
		})
	}

	assert.Error(t, Write(io.Discard, data, "toml"))
}

type recorder struct {
	worlds []int
	fail   int
}

func (r *recorder) Patch(_ context.Context, w WorldData) error {
	if w.ID == r.fail {
		return errors.New("disk full")
	}
	r.worlds = append(r.worlds, w.ID)
	return nil
}

func TestEmit(t *testing.T) {
	data := &SeedData{Worlds: []WorldData{{ID: 0}, {ID: 1}, {ID: 2}}}

	r := &recorder{fail: -1}
	require.NoError(t, Emit(context.Background(), data, r))
	assert.Equal(t, []int{0, 1, 2}, r.worlds)

	r = &recorder{fail: 1}
	err := Emit(context.Background(), data, r)
	assert.ErrorContains(t, err, "patch world 1")
	assert.Equal(t, []int{0}, r.worlds)
}

func TestApplyDelta(t *testing.T) {
	w := tiny()
	p := w.NewProgression()

	checked, err := ApplyDelta(w, p, Delta{World: 0, Checked: []int{2}, Received: []item.Type{item.Hookshot}})
	require.NoError(t, err)
	require.Len(t, checked, 1)
	assert.Equal(t, "Palace Chest", checked[0].Name)
	assert.True(t, checked[0].Cleared)
	assert.False(t, w.Location(1).Cleared)
	assert.True(t, p.Contains(item.Hookshot))

	_, err = ApplyDelta(w, p, Delta{World: 3})
	assert.ErrorIs(t, err, ErrWrongWorld)

	_, err = ApplyDelta(w, p, Delta{Checked: []int{1, 99}, Received: []item.Type{item.Hammer}})
	assert.Error(t, err)
	assert.False(t, p.Contains(item.Hammer), "nothing applies from a bad delta")
	assert.False(t, w.Location(1).Cleared)

	_, err = ApplyDelta(w, p, Delta{Defeated: []item.Boss{item.Boss(99)}})
	assert.Error(t, err)
}

func TestApplyDeltaAwardsBossRewards(t *testing.T) {
	w := tiny()
	w.Region("Palace").WithBoss(item.Armos, only(logic.Always))
	p := w.NewProgression()

	_, err := ApplyDelta(w, p, Delta{Defeated: []item.Boss{item.Armos, item.Kraid}})
	require.NoError(t, err)
	assert.True(t, p.Defeated(item.Armos))
	assert.True(t, p.Defeated(item.Kraid))
	assert.Equal(t, 1, p.RewardCount(item.PendantGreen))

	_, err = ApplyDelta(w, p, Delta{Defeated: []item.Boss{item.Armos}})
	require.NoError(t, err)
	assert.Equal(t, 1, p.RewardCount(item.PendantGreen), "a boss pays out once")
}

type queue struct {
	deltas []Delta
}

func (q *queue) Send(_ context.Context, d Delta) error {
	q.deltas = append(q.deltas, d)
	return nil
}

func (q *queue) Receive(_ context.Context) (Delta, error) {
	if len(q.deltas) == 0 {
		return Delta{}, io.EOF
	}
	d := q.deltas[0]
	q.deltas = q.deltas[1:]
	return d, nil
}

type tracker struct {
	updates int
	checked []string
}

func (tr *tracker) Update(_ *world.World, _ *progression.Progression, checked []*world.Location) {
	tr.updates++
	for _, l := range checked {
		tr.checked = append(tr.checked, l.Name)
	}
}

func TestFollow(t *testing.T) {
	w := tiny()
	p := w.NewProgression()
	q := &queue{}
	ctx := context.Background()
	require.NoError(t, q.Send(ctx, Delta{Checked: []int{1}, Received: []item.Type{item.Flippers}}))
	require.NoError(t, q.Send(ctx, Delta{Checked: []int{2}}))

	tr := &tracker{}
	require.NoError(t, Follow(ctx, w, p, q, tr))
	assert.Equal(t, 2, tr.updates)
	assert.Equal(t, []string{"Outside Chest", "Palace Chest"}, tr.checked)
	assert.True(t, p.Contains(item.Flippers))
}
