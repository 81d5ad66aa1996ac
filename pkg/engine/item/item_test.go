package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCoversEveryType(t *testing.T) {
	seen := make(map[string]Type)
	for tp := Nothing; tp < NumTypes; tp++ {
		name := catalog[tp].name
		require.NotEmpty(t, name, "Type(%d) has no catalogue entry", int(tp))
		if prev, dup := seen[name]; dup {
			t.Fatalf("catalogue name %q used by %d and %d", name, int(prev), int(tp))
		}
		seen[name] = tp
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, tp := range All() {
		got, err := Parse(tp.String())
		require.NoError(t, err)
		assert.Equal(t, tp, got)
	}

	got, err := Parse("  screwattack ")
	require.NoError(t, err)
	assert.Equal(t, ScrewAttack, got)

	_, err = Parse("Triforce")
	assert.Error(t, err)
}

func TestDungeonItemsAreBound(t *testing.T) {
	for _, tp := range All() {
		if tp.Is(Dungeon) {
			assert.NotEqual(t, NoDungeon, tp.Dungeon(), "%s is a dungeon item without a dungeon", tp)
			assert.Equal(t, Zelda, tp.Game(), tp.String())
		} else {
			assert.Equal(t, NoDungeon, tp.Dungeon(), tp.String())
		}
		if tp.IsBigKey() || tp.IsSmallKey() {
			assert.True(t, tp.Is(Dungeon|Progression), "%s keys gate progress", tp)
		}
	}
}

func TestKeycardsAreSuperMetroidProgression(t *testing.T) {
	for _, tp := range All() {
		if tp.Is(Keycard) {
			assert.Equal(t, SuperMetroid, tp.Game())
			assert.True(t, tp.Is(Progression))
		}
	}
}

func TestStringOutOfRange(t *testing.T) {
	assert.Equal(t, "Type(-1)", Type(-1).String())
	assert.False(t, NumTypes.Valid())
	assert.False(t, Nothing.Valid())
	assert.Equal(t, "Boss(99)", Boss(99).String())
	assert.Equal(t, "Kholdstare", Kholdstare.String())
	assert.True(t, CrystalRed.IsCrystal())
	assert.False(t, CrystalRed.IsPendant())
}
