package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"smz3/pkg/engine/config"
	"smz3/pkg/engine/item"
	"smz3/pkg/engine/progression"
)

type fakeState struct {
	p       *progression.Progression
	regions map[string]bool
	bosses  map[item.Boss]bool
	rewards int
}

func (f fakeState) Items() *progression.Progression  { return f.p }
func (f fakeState) CanEnter(region string) bool      { return f.regions[region] }
func (f fakeState) Defeated(b item.Boss) bool        { return f.bosses[b] }
func (f fakeState) Rewards(kinds ...item.Reward) int { return f.rewards }

func TestCombinators(t *testing.T) {
	s := fakeState{
		p:       progression.Of(nil, item.Morph, item.Bombs),
		regions: map[string]bool{"Crateria": true},
		bosses:  map[item.Boss]bool{item.Kraid: true},
		rewards: 2,
	}

	assert.True(t, Always(s))
	assert.False(t, Never(s))
	assert.True(t, Has(item.Morph, item.Bombs)(s))
	assert.False(t, Has(item.Morph, item.SpaceJump)(s))
	assert.True(t, All(Has(item.Morph), Enter("Crateria"))(s))
	assert.False(t, All(Has(item.Morph), Enter("Tourian"))(s))
	assert.True(t, Any(Never, Beat(item.Kraid))(s))
	assert.False(t, Any(Beat(item.Ridley), Never)(s))
	assert.True(t, Items((*progression.Progression).CanIbj)(s))
	assert.True(t, RewardsAtLeast(2, item.Crystals...)(s))
	assert.False(t, RewardsAtLeast(3, item.Crystals...)(s))
	assert.True(t, RewardsAtLeast(0)(s))
	assert.True(t, All()(s), "empty All is vacuously true")
	assert.False(t, Any()(s), "empty Any is false")
}

func TestVariantsResolve(t *testing.T) {
	v := ByLevel(Never, Always)
	assert.False(t, v.Resolve(config.Normal)(fakeState{}))
	assert.True(t, v.Resolve(config.Hard)(fakeState{}))

	normalOnly := Variants{config.Normal: Always}
	assert.True(t, normalOnly.Resolve(config.Hard)(fakeState{}), "missing level falls back to normal")

	assert.Panics(t, func() { Variants{}.Resolve(config.Normal) })
}
