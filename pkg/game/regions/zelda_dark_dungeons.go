package regions

import (
	"smz3/pkg/engine/item"
	"smz3/pkg/game/logic"
	"smz3/pkg/game/world"
)

func buildDarkDungeons(w *world.World) {
	buildPalaceOfDarkness(w)
	buildIcePalace(w)
	buildMiseryMire(w)
	buildTurtleRock(w)
	buildGanonsTower(w)
}

func buildPalaceOfDarkness(w *world.World) {
	helmasaur := func(p *prog) bool {
		return p.Contains(item.Hammer) && p.Contains(item.Bow) && p.CanNavigateDarkRooms() &&
			p.Contains(item.BigKeyPD) && keys(p, item.KeyPD, 4)
	}
	pd := w.NewRegion(PalaceOfDarkness, world.DarkDungeons, item.PalaceOfDarkness, 0, state(func(s logic.State, p *prog) bool {
		return p.Contains(item.MoonPearl) && s.CanEnter(DarkWorldNorthEast)
	})).WithBoss(item.Helmasaur, req(helmasaur)).WithReward(completes(item.Helmasaur))

	key := func(n int) logic.Variants {
		return req(func(p *prog) bool { return keys(p, item.KeyPD, n) })
	}
	dark := func(n int) logic.Variants {
		return req(func(p *prog) bool { return p.CanNavigateDarkRooms() && keys(p, item.KeyPD, n) })
	}
	pd.Add(450, "Palace of Darkness - Shooter Room", item.KeyPD, open())
	pd.Add(451, "Palace of Darkness - Big Key Chest", item.BigKeyPD, key(1))
	pd.Add(452, "Palace of Darkness - Stalfos Basement", item.ThreeBombs, req(func(p *prog) bool {
		return keys(p, item.KeyPD, 1) || p.Contains(item.Bow) && p.Contains(item.Hammer)
	}))
	pd.Add(453, "Palace of Darkness - The Arena - Bridge", item.KeyPD, key(1))
	pd.Add(454, "Palace of Darkness - The Arena - Ledge", item.TenArrows, req(func(p *prog) bool { return p.Contains(item.Bow) }))
	pd.Add(455, "Palace of Darkness - Map Chest", item.MapPD, req(func(p *prog) bool { return p.Contains(item.Bow) }))
	pd.Add(456, "Palace of Darkness - Compass Chest", item.CompassPD, key(2))
	pd.Add(457, "Palace of Darkness - Harmless Hellway", item.FiftyRupees, key(3))
	pd.Add(458, "Palace of Darkness - Dark Basement - Left", item.TenArrows, dark(2))
	pd.Add(459, "Palace of Darkness - Dark Basement - Right", item.KeyPD, dark(2))
	pd.Add(460, "Palace of Darkness - Dark Maze - Top", item.ThreeBombs, dark(3))
	pd.Add(461, "Palace of Darkness - Dark Maze - Bottom", item.KeyPD, dark(3))
	pd.Add(462, "Palace of Darkness - Big Chest", item.Hammer, req(func(p *prog) bool {
		return p.Contains(item.BigKeyPD) && p.CanNavigateDarkRooms() && keys(p, item.KeyPD, 3)
	}))
	pd.Add(463, "Palace of Darkness - Helmasaur King", item.HeartContainer, completes(item.Helmasaur)).
		Relevant(open()).
		Allow(notOwnKey(item.KeyPD))
}

func buildIcePalace(w *world.World) {
	kholdstare := func(p *prog) bool {
		return p.Contains(item.BigKeyIP) && p.Contains(item.Hammer) && p.CanLiftLight() &&
			keys(p, item.KeyIP, 2) && p.CanMeltFreezors()
	}
	ip := w.NewRegion(IcePalace, world.DarkDungeons, item.IcePalace, 0, req(func(p *prog) bool {
		return p.Contains(item.MoonPearl) && p.Contains(item.Flippers) && p.CanLiftHeavy() && p.CanMeltFreezors()
	})).WithBoss(item.Kholdstare, req(kholdstare)).WithReward(completes(item.Kholdstare))

	ip.Add(470, "Ice Palace - Compass Chest", item.CompassIP, open())
	ip.Add(471, "Ice Palace - Spike Room", item.KeyIP, req(func(p *prog) bool { return keys(p, item.KeyIP, 1) }))
	hammerRoom := req(func(p *prog) bool {
		return p.Contains(item.Hammer) && p.CanLiftLight() && keys(p, item.KeyIP, 1)
	})
	ip.Add(472, "Ice Palace - Map Chest", item.MapIP, hammerRoom)
	ip.Add(473, "Ice Palace - Big Key Chest", item.BigKeyIP, hammerRoom)
	ip.Add(474, "Ice Palace - Iced T Room", item.KeyIP, req(func(p *prog) bool { return keys(p, item.KeyIP, 1) }))
	ip.Add(475, "Ice Palace - Freezor Chest", item.ThreeBombs, req((*prog).CanMeltFreezors))
	ip.Add(476, "Ice Palace - Big Chest", item.ProgressiveTunic, req(func(p *prog) bool { return p.Contains(item.BigKeyIP) }))
	ip.Add(477, "Ice Palace - Kholdstare", item.HeartContainer, completes(item.Kholdstare)).
		Relevant(open()).
		Allow(notOwnKey(item.KeyIP))
}

func buildMiseryMire(w *world.World) {
	vitreous := func(p *prog) bool {
		return p.Contains(item.BigKeyMM) && p.Contains(item.Somaria) && p.CanNavigateDarkRooms() &&
			keys(p, item.KeyMM, 3) && (p.Sword(1) || p.Contains(item.Bow))
	}
	mm := w.NewRegion(MiseryMire, world.DarkDungeons, item.MiseryMire, 0, state(func(s logic.State, p *prog) bool {
		return s.CanEnter(DarkWorldMire) && p.Contains(item.MoonPearl) && p.Sword(1) &&
			(p.Contains(item.Boots) || p.Contains(item.Hookshot))
	})).WithMedallion().WithBoss(item.Vitreous, req(vitreous)).WithReward(completes(item.Vitreous))

	mm.Add(480, "Misery Mire - Main Lobby", item.KeyMM, open())
	mm.Add(481, "Misery Mire - Map Chest", item.MapMM, req(func(p *prog) bool { return keys(p, item.KeyMM, 1) }))
	mm.Add(482, "Misery Mire - Bridge Chest", item.KeyMM, open())
	mm.Add(483, "Misery Mire - Spike Chest", item.KeyMM, open())
	torches := req(func(p *prog) bool { return p.CanLightTorches() && keys(p, item.KeyMM, 2) })
	mm.Add(484, "Misery Mire - Compass Chest", item.CompassMM, torches)
	mm.Add(485, "Misery Mire - Big Key Chest", item.BigKeyMM, torches)
	mm.Add(486, "Misery Mire - Big Chest", item.Somaria, req(func(p *prog) bool { return p.Contains(item.BigKeyMM) }))
	mm.Add(487, "Misery Mire - Vitreous", item.HeartContainer, completes(item.Vitreous)).
		Relevant(open()).
		Allow(notOwnKey(item.KeyMM))
}

func buildTurtleRock(w *world.World) {
	trinexx := func(p *prog) bool {
		return p.Contains(item.BigKeyTR) && keys(p, item.KeyTR, 4) && p.Contains(item.Firerod) &&
			p.Contains(item.Icerod) && p.CanNavigateDarkRooms() && (p.Sword(2) || p.Contains(item.Hammer))
	}
	tr := w.NewRegion(TurtleRock, world.DarkDungeons, item.TurtleRock, 0, state(func(s logic.State, p *prog) bool {
		return s.CanEnter(DarkWorldDeathMountain) && p.Contains(item.MoonPearl) && p.Contains(item.Hammer) &&
			p.Contains(item.Somaria) && p.Sword(1)
	})).WithMedallion().WithBoss(item.Trinexx, req(trinexx)).WithReward(completes(item.Trinexx))

	tr.Add(490, "Turtle Rock - Compass Chest", item.CompassTR, open())
	tr.Add(491, "Turtle Rock - Roller Room - Left", item.MapTR, req(func(p *prog) bool { return p.Contains(item.Firerod) }))
	tr.Add(492, "Turtle Rock - Roller Room - Right", item.KeyTR, req(func(p *prog) bool { return p.Contains(item.Firerod) }))
	tr.Add(493, "Turtle Rock - Chain Chomps", item.KeyTR, req(func(p *prog) bool { return keys(p, item.KeyTR, 1) }))
	tr.Add(494, "Turtle Rock - Big Key Chest", item.BigKeyTR, req(func(p *prog) bool { return keys(p, item.KeyTR, 2) }))
	tr.Add(495, "Turtle Rock - Big Chest", item.KeyTR, req(func(p *prog) bool {
		return p.Contains(item.BigKeyTR) && keys(p, item.KeyTR, 2)
	}))
	tr.Add(496, "Turtle Rock - Crystaroller Room", item.KeyTR, req(func(p *prog) bool {
		return p.Contains(item.BigKeyTR) && keys(p, item.KeyTR, 2)
	}))
	bridge := reqs(
		func(p *prog) bool {
			return p.Contains(item.BigKeyTR) && keys(p, item.KeyTR, 3) && p.CanNavigateDarkRooms() &&
				(p.Contains(item.Cape) || p.Contains(item.Byrna))
		},
		func(p *prog) bool {
			return p.Contains(item.BigKeyTR) && keys(p, item.KeyTR, 3) && p.CanNavigateDarkRooms()
		},
	)
	for i, name := range []string{"Top Left", "Top Right", "Bottom Left", "Bottom Right"} {
		tr.Add(497+i, "Turtle Rock - Eye Bridge - "+name, item.TwentyRupees, bridge)
	}
	tr.Add(501, "Turtle Rock - Trinexx", item.HeartContainer, completes(item.Trinexx)).
		Relevant(open()).
		Allow(notOwnKey(item.KeyTR))
}

func buildGanonsTower(w *world.World) {
	cfg := w.Config
	gt := w.NewRegion(GanonsTower, world.DarkDungeons, item.GanonsTower, ganonsTowerWeight, state(func(s logic.State, p *prog) bool {
		return s.CanEnter(DarkWorldDeathMountain) && p.Contains(item.MoonPearl) &&
			s.Rewards(item.Crystals...) >= cfg.GanonCrystals
	})).WithBoss(item.Agahnim2, req(func(p *prog) bool {
		return p.Contains(item.BigKeyGT) && keys(p, item.KeyGT, 4) && p.Contains(item.Bow) &&
			p.CanLightTorches() && p.Contains(item.Hookshot) && p.Sword(1)
	}))

	upper := func(n int) func(p *prog) bool {
		return func(p *prog) bool {
			return p.Contains(item.BigKeyGT) && keys(p, item.KeyGT, n) && p.Contains(item.Bow) && p.CanLightTorches()
		}
	}
	left := func(n int) logic.Variants {
		return req(func(p *prog) bool { return p.Contains(item.Hammer) && p.Contains(item.Hookshot) && keys(p, item.KeyGT, n) })
	}
	right := func(n int) logic.Variants {
		return req(func(p *prog) bool { return p.Contains(item.Firerod) && p.Contains(item.Somaria) && keys(p, item.KeyGT, n) })
	}

	gt.Add(510, "Ganon's Tower - Bob's Torch", item.KeyGT, req(func(p *prog) bool { return p.Contains(item.Boots) }))
	for i, name := range []string{"Top Left", "Top Right", "Bottom Left", "Bottom Right"} {
		gt.Add(511+i, "Ganon's Tower - DMs Room - "+name, item.TenArrows, left(0))
	}
	gt.Add(515, "Ganon's Tower - Map Chest", item.MapGT, req(func(p *prog) bool {
		return p.Contains(item.Hammer) && (p.Contains(item.Hookshot) || p.Contains(item.Boots)) && keys(p, item.KeyGT, 1)
	}))
	gt.Add(516, "Ganon's Tower - Firesnake Room", item.KeyGT, left(1))
	for i, name := range []string{"Top Left", "Top Right", "Bottom Left", "Bottom Right"} {
		gt.Add(517+i, "Ganon's Tower - Randomizer Room - "+name, item.TwentyRupees, left(2))
	}
	gt.Add(521, "Ganon's Tower - Hope Room - Left", item.TenArrows, open())
	gt.Add(522, "Ganon's Tower - Hope Room - Right", item.TenArrows, open())
	gt.Add(523, "Ganon's Tower - Tile Room", item.KeyGT, req(func(p *prog) bool { return p.Contains(item.Somaria) }))
	for i, name := range []string{"Top Left", "Top Right", "Bottom Left", "Bottom Right"} {
		gt.Add(524+i, "Ganon's Tower - Compass Room - "+name, item.TwentyRupees, right(2))
	}
	either := req(func(p *prog) bool {
		return keys(p, item.KeyGT, 2) &&
			(p.Contains(item.Hammer) && p.Contains(item.Hookshot) || p.Contains(item.Firerod) && p.Contains(item.Somaria))
	})
	gt.Add(528, "Ganon's Tower - Bob's Chest", item.TenArrows, either)
	gt.Add(529, "Ganon's Tower - Big Chest", item.ProgressiveTunic, req(func(p *prog) bool {
		return p.Contains(item.BigKeyGT) && keys(p, item.KeyGT, 2) &&
			(p.Contains(item.Hammer) && p.Contains(item.Hookshot) || p.Contains(item.Firerod) && p.Contains(item.Somaria))
	}))
	gt.Add(530, "Ganon's Tower - Big Key Chest", item.BigKeyGT, either)
	gt.Add(531, "Ganon's Tower - Big Key Room - Left", item.ThreeBombs, either)
	gt.Add(532, "Ganon's Tower - Big Key Room - Right", item.ThreeBombs, either)
	gt.Add(533, "Ganon's Tower - Mini Helmasaur Room - Left", item.ThreeBombs, req(upper(3)))
	gt.Add(534, "Ganon's Tower - Mini Helmasaur Room - Right", item.ThreeBombs, req(upper(3)))
	gt.Add(535, "Ganon's Tower - Pre-Moldorm Chest", item.KeyGT, req(upper(3)))
	gt.Add(536, "Ganon's Tower - Moldorm Chest", item.TwentyRupees, req(func(p *prog) bool {
		return upper(4)(p) && p.Contains(item.Hookshot) && p.Sword(1)
	})).Allow(notOwnKey(item.KeyGT))
}
