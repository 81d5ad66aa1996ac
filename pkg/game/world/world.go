package world

import (
	"fmt"
	"sort"

	"smz3/pkg/engine/config"
	"smz3/pkg/engine/item"
	"smz3/pkg/engine/progression"
	"smz3/pkg/game/logic"
)

// Pools partitions the items that must be placed into the world.
type Pools struct {
	Progression []item.Type
	Dungeon     []item.Type
	Keycards    []item.Type
	Junk        []item.Type
}

// Size is the total number of pooled items.
func (p Pools) Size() int {
	return len(p.Progression) + len(p.Dungeon) + len(p.Keycards) + len(p.Junk)
}

// All returns every pooled item, progression first.
func (p Pools) All() []item.Type {
	out := make([]item.Type, 0, p.Size())
	out = append(out, p.Progression...)
	out = append(out, p.Dungeon...)
	out = append(out, p.Keycards...)
	out = append(out, p.Junk...)
	return out
}

// World owns every region and location of one player's game, the item pools
// to place, and the Config it was built for.
type World struct {
	ID     int
	Player string
	Config *config.Config

	Regions   []*Region
	Locations []*Location
	Pools     Pools

	// Goal is the win condition checked by the verification walkthrough.
	Goal logic.Requirement

	regions   map[string]*Region
	locations map[int]*Location
	byName    map[string]*Location
	dupes     []int
}

// New creates an empty world. Config must not change afterwards.
func New(cfg *config.Config, id int, player string) *World {
	return &World{
		ID:        id,
		Player:    player,
		Config:    cfg,
		Goal:      logic.Never,
		regions:   make(map[string]*Region),
		locations: make(map[int]*Location),
		byName:    make(map[string]*Location),
	}
}

// NewRegion adds a region whose entrance formula is resolved for its game.
func (w *World) NewRegion(name string, area Area, dungeon item.DungeonID, weight int, enter logic.Variants) *Region {
	r := &Region{
		Name:    name,
		Area:    area,
		Game:    area.Game(),
		Dungeon: dungeon,
		Weight:  weight,
		World:   w,
	}
	r.enter = r.Resolve(enter)
	w.Regions = append(w.Regions, r)
	w.regions[name] = r
	return r
}

func (w *World) addLocation(l *Location) {
	if _, dup := w.locations[l.ID]; dup {
		w.dupes = append(w.dupes, l.ID)
	}
	w.Locations = append(w.Locations, l)
	w.locations[l.ID] = l
	w.byName[l.Name] = l
}

// Region returns the region by name, or nil.
func (w *World) Region(name string) *Region {
	return w.regions[name]
}

// Location returns the location with the given id, or nil.
func (w *World) Location(id int) *Location {
	return w.locations[id]
}

// LocationByName returns the location with the given name, or nil.
func (w *World) LocationByName(name string) *Location {
	return w.byName[name]
}

// Snapshot starts a reachability evaluation for p.
func (w *World) Snapshot(p *progression.Progression, requireRewards bool) *Snapshot {
	return newSnapshot(w, p, requireRewards)
}

// NewProgression returns an empty Progression bound to the world's Config.
func (w *World) NewProgression() *progression.Progression {
	return progression.New(w.Config)
}

// CheckStructure verifies the construction invariants: every location id is
// used once and the pools hold exactly one item per location.
func (w *World) CheckStructure() error {
	if len(w.dupes) > 0 {
		sort.Ints(w.dupes)
		return fmt.Errorf("world %d: duplicate location ids %v", w.ID, w.dupes)
	}
	if n := w.Pools.Size(); n != len(w.Locations) {
		return fmt.Errorf("world %d: %d pooled items for %d locations", w.ID, n, len(w.Locations))
	}
	for _, r := range w.Regions {
		if r.Medallion != nil && r.Medallion.Medallion == item.Nothing {
			return fmt.Errorf("world %d: region %s has no medallion assigned", w.ID, r.Name)
		}
	}
	return nil
}

// RewardRegions returns regions carrying a reward capability in build order.
func (w *World) RewardRegions() []*Region {
	var out []*Region
	for _, r := range w.Regions {
		if r.Reward != nil {
			out = append(out, r)
		}
	}
	return out
}

// BossRegions returns regions carrying a boss capability in build order.
func (w *World) BossRegions() []*Region {
	var out []*Region
	for _, r := range w.Regions {
		if r.Boss != nil {
			out = append(out, r)
		}
	}
	return out
}

// MedallionRegions returns medallion-sealed regions in build order.
func (w *World) MedallionRegions() []*Region {
	var out []*Region
	for _, r := range w.Regions {
		if r.Medallion != nil {
			out = append(out, r)
		}
	}
	return out
}

// Placements returns every location sorted by id.
func (w *World) Placements() []*Location {
	out := append([]*Location(nil), w.Locations...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Unfilled returns the locations that still have no item, in build order.
func (w *World) Unfilled() []*Location {
	var out []*Location
	for _, l := range w.Locations {
		if !l.Filled() {
			out = append(out, l)
		}
	}
	return out
}
