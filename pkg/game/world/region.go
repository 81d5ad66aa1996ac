// Package world holds the world graph: regions with their optional
// capabilities, the flattened location list, the item pools, and the
// reachability snapshot that evaluates requirements against a Progression.
package world

import (
	"fmt"

	"smz3/pkg/engine/config"
	"smz3/pkg/engine/item"
	"smz3/pkg/engine/progression"
	"smz3/pkg/game/logic"
)

// RewardCapability marks a region that hands out a dungeon reward once its
// boss is beaten.
type RewardCapability struct {
	Reward      item.Reward
	CanComplete logic.Requirement
}

// BossCapability marks a region holding a boss other formulas may depend on.
type BossCapability struct {
	Boss    item.Boss
	CanBeat logic.Requirement
}

// MedallionCapability marks a region sealed by a medallion.
type MedallionCapability struct {
	Medallion item.Type
}

// Region groups locations behind one entrance formula. Capabilities are
// optional and independent of each other.
type Region struct {
	Name    string
	Area    Area
	Game    item.Game
	Dungeon item.DungeonID
	// Weight biases item placement; it never gates access.
	Weight int

	World     *World
	Locations []*Location

	Reward    *RewardCapability
	Boss      *BossCapability
	Medallion *MedallionCapability

	enter logic.Requirement
}

func (r *Region) level() config.LogicLevel {
	if r.Game == item.SuperMetroid {
		return r.World.Config.SMLogic
	}
	return r.World.Config.Z3Logic
}

// Resolve selects the formula for this region's game and logic level.
func (r *Region) Resolve(v logic.Variants) logic.Requirement {
	return v.Resolve(r.level())
}

// Add creates a location in the region with its access formula resolved once.
func (r *Region) Add(id int, name string, vanilla item.Type, access logic.Variants) *Location {
	l := &Location{
		ID:      id,
		Name:    name,
		Region:  r,
		Vanilla: vanilla,
		access:  access.Resolve(r.level()),
	}
	r.Locations = append(r.Locations, l)
	r.World.addLocation(l)
	return l
}

// WithReward attaches a reward capability.
func (r *Region) WithReward(canComplete logic.Variants) *Region {
	r.Reward = &RewardCapability{CanComplete: r.Resolve(canComplete)}
	return r
}

// WithBoss attaches a boss capability.
func (r *Region) WithBoss(b item.Boss, canBeat logic.Variants) *Region {
	r.Boss = &BossCapability{Boss: b, CanBeat: r.Resolve(canBeat)}
	return r
}

// WithMedallion marks the region as medallion sealed. The medallion itself
// is assigned when the world is built.
func (r *Region) WithMedallion() *Region {
	r.Medallion = &MedallionCapability{}
	return r
}

// Enter evaluates the entrance formula only, without medallion or memoisation.
// Callers normally go through CanEnter or a Snapshot.
func (r *Region) Enter(s logic.State) bool {
	return r.enter(s)
}

// CanEnter evaluates entrance in a fresh snapshot.
func (r *Region) CanEnter(p *progression.Progression, requireRewards bool) bool {
	return r.World.Snapshot(p, requireRewards).CanEnter(r.Name)
}

// CanFill reports whether t may be placed in this region: dungeon items stay
// in their own dungeon unless Zelda keysanity is on, and progression items
// follow the configured placement rule.
func (r *Region) CanFill(t item.Type, p *progression.Progression) bool {
	cfg := r.World.Config
	if t.Is(item.Dungeon) && !cfg.Z3Keysanity() {
		return r.Dungeon == t.Dungeon()
	}
	if g, ok := Confined(cfg, t); ok && g != r.Game {
		return false
	}
	if t.Is(item.Progression) && cfg.Multiworld && r.Dungeon == item.GanonsTower {
		return false
	}
	return true
}

// Confined reports the game the placement rule restricts t to. Only
// progression items are restricted, and never under PlaceAnywhere.
func Confined(cfg *config.Config, t item.Type) (item.Game, bool) {
	if !t.Is(item.Progression) {
		return 0, false
	}
	switch cfg.PlacementRule {
	case config.PlaceSameGame:
		return t.Game(), true
	case config.PlaceOppositeGame:
		return t.Game().Other(), true
	}
	return 0, false
}

func (r *Region) String() string {
	return fmt.Sprintf("%s (%s)", r.Name, r.Game)
}
