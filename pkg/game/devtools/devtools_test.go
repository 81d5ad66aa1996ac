package devtools

import (
	"bytes"
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smz3/pkg/engine/config"
	"smz3/pkg/game/regions"
	"smz3/pkg/game/seed"
)

func sample() *seed.SeedData {
	return &seed.SeedData{
		GUID:     "guid",
		Seed:     7,
		SeedText: "7",
		Config:   config.Default(),
		Hash:     "00000000000000ff",
		Worlds: []seed.WorldData{{
			ID:     0,
			Player: "Player",
			Placements: []seed.Placement{
				{ID: 1, Location: "Morphing Ball", Region: "Brinstar Blue", Item: "Morph"},
				{ID: 256, Location: "Link's House", Region: "Light World North West", Item: "Lamp"},
			},
			Rewards:    map[string]string{"Eastern Palace": "PendantGreen"},
			Medallions: map[string]string{"Turtle Rock": "Quake", "Misery Mire": "Ether"},
			Playthrough: [][]seed.Placement{
				{{ID: 1, Location: "Morphing Ball", Item: "Morph"}},
				{{ID: 256, Location: "Link's House", Item: "TwentyRupees"}},
			},
		}},
	}
}

func TestWriteSpoiler(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSpoiler(&buf, sample()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "=== SPOILER LOG ===\n"))
	assert.True(t, strings.HasSuffix(out, "=== END SPOILER LOG ===\n"))
	assert.Contains(t, out, `seed: "7"`)
	assert.Contains(t, out, "--- World 0 (Player) ---")
	assert.Contains(t, out, `region: "Eastern Palace" value: PendantGreen`)
	assert.Contains(t, out, `id: 1 location: "Morphing Ball" item: Morph`)
	assert.Contains(t, out, "sphere: 2 size: 1")
	assert.Contains(t, out, "Bosses:\n  (none)")
	assert.Less(t, strings.Index(out, `"Misery Mire"`), strings.Index(out, `"Turtle Rock"`))
}

func TestDumpSpoilerToFile(t *testing.T) {
	dir := t.TempDir()
	path, err := DumpSpoilerToFile(sample(), dir)
	require.NoError(t, err)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "hash: 00000000000000ff")
}

func TestRenderSpoilerHTML(t *testing.T) {
	page := RenderSpoilerHTML(sample())

	assert.Contains(t, page, "Sphere 2")
	assert.Contains(t, page, `Link&#39;s House`)
	assert.Contains(t, page, `<span class="progression">Morph</span>`)
	assert.Contains(t, page, `<span class="junk">TwentyRupees</span>`)

	path, err := SaveSpoilerHTML(sample(), t.TempDir())
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestFindLocations(t *testing.T) {
	cfg := config.Default()
	w, err := regions.Build(&cfg, 0, "Player", rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	found := FindLocations(w, "missile (crateria bottom)")
	require.Len(t, found, 1)
	assert.Equal(t, "Missile (Crateria bottom)", found[0].Name)

	found = FindLocations(w, "Crateria")
	assert.Greater(t, len(found), 1)
	for i := 1; i < len(found); i++ {
		assert.Less(t, found[i-1].ID, found[i].ID)
	}

	byID := FindLocations(w, "256")
	require.Len(t, byID, 1)
	assert.Equal(t, 256, byID[0].ID)

	assert.Empty(t, FindLocations(w, "9999"))
	assert.Empty(t, FindLocations(w, "  "))
}
