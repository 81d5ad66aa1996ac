package regions

import (
	"smz3/pkg/engine/item"
	"smz3/pkg/game/logic"
	"smz3/pkg/game/world"
)

const (
	HyruleCastle     = "Hyrule Castle"
	CastleTower      = "Castle Tower"
	EasternPalace    = "Eastern Palace"
	DesertPalace     = "Desert Palace"
	TowerOfHera      = "Tower of Hera"
	PalaceOfDarkness = "Palace of Darkness"
	IcePalace        = "Ice Palace"
	MiseryMire       = "Misery Mire"
	TurtleRock       = "Turtle Rock"
	GanonsTower      = "Ganon's Tower"
)

// ganonsTowerWeight makes Ganon's Tower a poor place for items picked early.
const ganonsTowerWeight = -4

func buildCastle(w *world.World) {
	hc := w.NewRegion(HyruleCastle, world.CastleArea, item.HyruleCastle, 0, open())
	hc.Add(400, "Sanctuary", item.HeartContainer, open())
	hc.Add(401, "Link's Uncle", item.ProgressiveSword, open())
	hc.Add(402, "Secret Passage", item.ProgressiveShield, open())
	hc.Add(403, "Hyrule Castle - Map Chest", item.MapHC, open())
	hc.Add(404, "Hyrule Castle - Boomerang Chest", item.TwentyRupees, open())
	hc.Add(405, "Hyrule Castle - Zelda's Cell", item.TwentyRupees, open())
	hc.Add(406, "Sewers - Dark Cross", item.KeyHC, req((*prog).CanNavigateDarkRooms))
	secret := req(func(p *prog) bool {
		return p.CanLiftLight() || p.CanNavigateDarkRooms() && keys(p, item.KeyHC, 1)
	})
	hc.Add(407, "Sewers - Secret Room - Left", item.ThreeBombs, secret)
	hc.Add(408, "Sewers - Secret Room - Middle", item.ThreeBombs, secret)
	hc.Add(409, "Sewers - Secret Room - Right", item.ThreeBombs, secret)

	ct := w.NewRegion(CastleTower, world.CastleArea, item.CastleTower, 0, req(func(p *prog) bool {
		return p.Contains(item.Cape) || p.Sword(2)
	})).WithBoss(item.Agahnim, req(func(p *prog) bool {
		return keys(p, item.KeyCT, 2) && p.CanNavigateDarkRooms() &&
			(p.Sword(1) || p.Contains(item.Hammer) || p.Contains(item.Bugnet))
	}))
	ct.Add(410, "Castle Tower - Foyer", item.KeyCT, open())
	ct.Add(411, "Castle Tower - Dark Maze", item.KeyCT, req(func(p *prog) bool {
		return p.CanNavigateDarkRooms() && keys(p, item.KeyCT, 1)
	}))
}

// completes is the reward formula shared by every dungeon: the boss falls.
func completes(b item.Boss) logic.Variants {
	return one(logic.Beat(b))
}

func buildLightDungeons(w *world.World) {
	armos := func(p *prog) bool {
		return p.Contains(item.BigKeyEP) && p.Contains(item.Bow) && p.CanNavigateDarkRooms()
	}
	ep := w.NewRegion(EasternPalace, world.LightDungeons, item.EasternPalace, 0, open()).
		WithBoss(item.Armos, req(armos)).
		WithReward(completes(item.Armos))
	ep.Add(420, "Eastern Palace - Cannonball Chest", item.BigKeyEP, open())
	ep.Add(421, "Eastern Palace - Map Chest", item.MapEP, open())
	ep.Add(422, "Eastern Palace - Compass Chest", item.CompassEP, open())
	ep.Add(423, "Eastern Palace - Big Chest", item.Bow, req(func(p *prog) bool { return p.Contains(item.BigKeyEP) }))
	ep.Add(424, "Eastern Palace - Big Key Chest", item.HeartPiece, req((*prog).CanNavigateDarkRooms))
	ep.Add(425, "Eastern Palace - Armos Knights", item.HeartContainer, completes(item.Armos)).Relevant(open())

	lanmolas := func(p *prog) bool {
		return p.CanLightTorches() && p.Contains(item.BigKeyDP) && keys(p, item.KeyDP, 1) &&
			(p.Sword(1) || p.Contains(item.Hammer) || p.Contains(item.Bow) || p.Contains(item.Firerod) ||
				p.Contains(item.Icerod) || p.Contains(item.Byrna) || p.Contains(item.Somaria))
	}
	dp := w.NewRegion(DesertPalace, world.LightDungeons, item.DesertPalace, 0, req(func(p *prog) bool {
		return p.Contains(item.Book) || p.Contains(item.Mirror) && p.CanLiftHeavy() && p.Contains(item.Flute)
	})).WithBoss(item.Lanmolas, req(lanmolas)).WithReward(completes(item.Lanmolas))
	dp.Add(430, "Desert Palace - Big Chest", item.Somaria, req(func(p *prog) bool { return p.Contains(item.BigKeyDP) }))
	dp.Add(431, "Desert Palace - Torch", item.KeyDP, req(func(p *prog) bool { return p.Contains(item.Boots) }))
	dp.Add(432, "Desert Palace - Map Chest", item.MapDP, open())
	dp.Add(433, "Desert Palace - Big Key Chest", item.BigKeyDP, req(func(p *prog) bool { return keys(p, item.KeyDP, 1) }))
	dp.Add(434, "Desert Palace - Compass Chest", item.CompassDP, req(func(p *prog) bool { return keys(p, item.KeyDP, 1) }))
	dp.Add(435, "Desert Palace - Lanmolas", item.HeartContainer, completes(item.Lanmolas)).
		Relevant(open()).
		Allow(notOwnKey(item.KeyDP))

	moldorm := func(p *prog) bool {
		return p.Contains(item.BigKeyTH) && (p.Sword(1) || p.Contains(item.Hammer))
	}
	th := w.NewRegion(TowerOfHera, world.LightDungeons, item.TowerOfHera, 0, state(func(s logic.State, p *prog) bool {
		return s.CanEnter(DeathMountainWest) &&
			(p.Contains(item.Mirror) || p.Contains(item.Hookshot) && p.Contains(item.Hammer))
	})).WithBoss(item.Moldorm, req(moldorm)).WithReward(completes(item.Moldorm))
	th.Add(440, "Tower of Hera - Basement Cage", item.KeyTH, open())
	th.Add(441, "Tower of Hera - Map Chest", item.MapTH, open())
	th.Add(442, "Tower of Hera - Big Key Chest", item.BigKeyTH, req(func(p *prog) bool {
		return keys(p, item.KeyTH, 1) && p.CanLightTorches()
	}))
	th.Add(443, "Tower of Hera - Compass Chest", item.CompassTH, req(func(p *prog) bool { return p.Contains(item.BigKeyTH) }))
	th.Add(444, "Tower of Hera - Big Chest", item.MoonPearl, req(func(p *prog) bool { return p.Contains(item.BigKeyTH) }))
	th.Add(445, "Tower of Hera - Moldorm", item.HeartContainer, completes(item.Moldorm)).
		Relevant(open()).
		Allow(notOwnKey(item.KeyTH))
}
