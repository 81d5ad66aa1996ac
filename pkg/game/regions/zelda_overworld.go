package regions

import (
	"smz3/pkg/engine/item"
	"smz3/pkg/game/logic"
	"smz3/pkg/game/world"
)

const (
	LightWorldNorthWest    = "Light World North West"
	LightWorldNorthEast    = "Light World North East"
	LightWorldSouth        = "Light World South"
	DeathMountainWest      = "Light World Death Mountain West"
	DeathMountainEast      = "Light World Death Mountain East"
	DarkWorldNorthWest     = "Dark World North West"
	DarkWorldNorthEast     = "Dark World North East"
	DarkWorldSouth         = "Dark World South"
	DarkWorldMire          = "Dark World Mire"
	DarkWorldDeathMountain = "Dark World Death Mountain"
)

func buildLightWorld(w *world.World) {
	nw := w.NewRegion(LightWorldNorthWest, world.LightWorld, item.NoDungeon, 0, open())
	nw.Add(256, "Master Sword Pedestal", item.ProgressiveSword, one(logic.RewardsAtLeast(3, item.Pendants...))).
		Relevant(req(func(p *prog) bool { return p.Contains(item.Book) }))
	nw.Add(257, "Mushroom", item.Mushroom, open())
	nw.Add(258, "Lost Woods Hideout", item.HeartPiece, open())
	nw.Add(259, "Lumberjack Tree", item.HeartPiece, state(func(s logic.State, p *prog) bool {
		return s.Defeated(item.Agahnim) && p.Contains(item.Boots)
	})).Relevant(req(func(p *prog) bool { return p.Contains(item.Boots) }))
	nw.Add(260, "Pegasus Rocks", item.HeartPiece, req(func(p *prog) bool { return p.Contains(item.Boots) }))
	nw.Add(261, "Graveyard Ledge", item.HeartPiece, state(func(s logic.State, p *prog) bool {
		return p.Contains(item.Mirror) && p.Contains(item.MoonPearl) && s.CanEnter(DarkWorldNorthWest)
	}))
	nw.Add(262, "King's Tomb", item.Cape, state(func(s logic.State, p *prog) bool {
		return p.Contains(item.Boots) && (p.CanLiftHeavy() ||
			p.Contains(item.Mirror) && p.Contains(item.MoonPearl) && s.CanEnter(DarkWorldNorthWest))
	}))
	for i, name := range []string{"Top", "Left", "Middle", "Right", "Bottom"} {
		nw.Add(263+i, "Kakariko Well - "+name, item.TwentyRupees, open())
	}
	for i, name := range []string{"Top", "Left", "Right", "Far Left", "Far Right"} {
		nw.Add(268+i, "Blind's Hideout - "+name, item.TwentyRupees, open())
	}
	nw.Add(273, "Bottle Merchant", item.Bottle, open())
	nw.Add(274, "Chicken House", item.TenArrows, open())
	nw.Add(275, "Sick Kid", item.Bugnet, req(func(p *prog) bool { return p.Contains(item.Bottle) }))
	nw.Add(276, "Kakariko Tavern", item.Bottle, open())
	nw.Add(277, "Magic Bat", item.HalfMagic, req(func(p *prog) bool {
		return p.Contains(item.Powder) &&
			(p.Contains(item.Hammer) || p.Contains(item.MoonPearl) && p.Contains(item.Mirror) && p.CanLiftHeavy())
	}))

	ne := w.NewRegion(LightWorldNorthEast, world.LightWorld, item.NoDungeon, 0, open())
	ne.Add(278, "King Zora", item.Flippers, req(func(p *prog) bool {
		return p.CanLiftLight() || p.Contains(item.Flippers)
	}))
	ne.Add(279, "Zora's Ledge", item.HeartPiece, req(func(p *prog) bool { return p.Contains(item.Flippers) }))
	ne.Add(280, "Waterfall Fairy - Left", item.ProgressiveShield, req(func(p *prog) bool { return p.Contains(item.Flippers) }))
	ne.Add(281, "Waterfall Fairy - Right", item.ProgressiveShield, req(func(p *prog) bool { return p.Contains(item.Flippers) }))
	ne.Add(282, "Potion Shop", item.Powder, req(func(p *prog) bool { return p.Contains(item.Mushroom) }))
	for i, name := range []string{"Left", "Middle", "Right"} {
		ne.Add(283+i, "Sahasrahla's Hut - "+name, item.FiftyRupees, open())
	}
	ne.Add(286, "Sahasrahla", item.Boots, one(logic.RewardsAtLeast(1, item.PendantGreen)))

	south := w.NewRegion(LightWorldSouth, world.LightWorld, item.NoDungeon, 0, open())
	south.Add(287, "Maze Race", item.HeartPiece, open())
	south.Add(288, "Library", item.Book, req(func(p *prog) bool { return p.Contains(item.Boots) }))
	south.Add(289, "Flute Spot", item.Flute, req(func(p *prog) bool { return p.Contains(item.Shovel) }))
	south.Add(290, "South of Grove", item.HeartPiece, state(func(s logic.State, p *prog) bool {
		return p.Contains(item.Mirror) && s.CanEnter(DarkWorldSouth)
	}))
	south.Add(291, "Link's House", item.Lamp, open())
	south.Add(292, "Aginah's Cave", item.HeartPiece, open())
	for i, name := range []string{"Far Left", "Left", "NPC", "Right", "Far Right"} {
		south.Add(293+i, "Mini Moldorm Cave - "+name, item.FiftyRupees, open())
	}
	south.Add(298, "Ice Rod Cave", item.Icerod, open())
	south.Add(299, "Hobo", item.Bottle, req(func(p *prog) bool { return p.Contains(item.Flippers) }))
	south.Add(300, "Bombos Tablet", item.Bombos, state(func(s logic.State, p *prog) bool {
		return p.Contains(item.Book) && p.Contains(item.Mirror) && p.Sword(2) && s.CanEnter(DarkWorldSouth)
	}))
	south.Add(301, "Cave 45", item.HeartPiece, state(func(s logic.State, p *prog) bool {
		return p.Contains(item.Mirror) && s.CanEnter(DarkWorldSouth)
	}))
	south.Add(302, "Checkerboard Cave", item.HeartPiece, req(func(p *prog) bool {
		return p.Contains(item.Mirror) && p.Contains(item.Flute) && p.CanLiftHeavy()
	}))
	south.Add(303, "Lake Hylia Island", item.HeartPiece, state(func(s logic.State, p *prog) bool {
		return p.Contains(item.Flippers) && p.Contains(item.MoonPearl) && p.Contains(item.Mirror) && s.CanEnter(DarkWorldSouth)
	}))
	south.Add(304, "Sunken Treasure", item.HeartPiece, open())
	south.Add(305, "Floodgate Chest", item.ThreeBombs, open())
	south.Add(306, "Desert Ledge", item.HeartPiece, state(func(s logic.State, p *prog) bool {
		return s.CanEnter(DesertPalace)
	}))
}

func buildDeathMountain(w *world.World) {
	west := w.NewRegion(DeathMountainWest, world.DeathMountain, item.NoDungeon, 0, req(func(p *prog) bool {
		return p.Contains(item.Flute) || p.CanLiftLight() && p.Contains(item.Lamp) || p.CanAccessDeathMountainPortal()
	}))
	west.Add(307, "Ether Tablet", item.Ether, req(func(p *prog) bool {
		return p.Contains(item.Book) && p.Sword(2) &&
			(p.Contains(item.Mirror) || p.Contains(item.Hammer) && p.Contains(item.Hookshot))
	}))
	west.Add(308, "Spectacle Rock", item.HeartPiece, req(func(p *prog) bool { return p.Contains(item.Mirror) }))
	west.Add(309, "Spectacle Rock Cave", item.HeartPiece, open())
	west.Add(310, "Old Man", item.Mirror, req((*prog).CanNavigateDarkRooms))

	east := w.NewRegion(DeathMountainEast, world.DeathMountain, item.NoDungeon, 0, state(func(s logic.State, p *prog) bool {
		return s.CanEnter(DeathMountainWest) &&
			(p.Contains(item.Hookshot) || p.Contains(item.Mirror) && p.Contains(item.Hammer))
	}))
	east.Add(311, "Floating Island", item.HeartPiece, req(func(p *prog) bool {
		return p.Contains(item.Mirror) && p.Contains(item.MoonPearl) && p.CanLiftHeavy()
	}))
	east.Add(312, "Spiral Cave", item.TwentyRupees, open())
	east.Add(313, "Paradox Cave Upper - Left", item.ThreeBombs, open())
	east.Add(314, "Paradox Cave Upper - Right", item.TenArrows, open())
	for i, name := range []string{"Far Left", "Left", "Middle", "Right", "Far Right"} {
		east.Add(315+i, "Paradox Cave Lower - "+name, item.TwentyRupees, open())
	}
}

func buildDarkWorld(w *world.World) {
	ne := w.NewRegion(DarkWorldNorthEast, world.DarkWorld, item.NoDungeon, 0, states(
		func(s logic.State, p *prog) bool {
			return s.Defeated(item.Agahnim) ||
				p.Contains(item.MoonPearl) && (p.Contains(item.Hammer) && p.CanLiftLight() || p.CanLiftHeavy()) ||
				p.CanAccessDarkWorldPortal(false) && p.Contains(item.Flippers)
		},
		func(s logic.State, p *prog) bool {
			return s.Defeated(item.Agahnim) ||
				p.Contains(item.MoonPearl) && (p.Contains(item.Hammer) && p.CanLiftLight() || p.CanLiftHeavy()) ||
				p.CanAccessDarkWorldPortal(true)
		},
	))
	ne.Add(320, "Catfish", item.Quake, req(func(p *prog) bool {
		return p.Contains(item.MoonPearl) && p.CanLiftLight()
	}))
	ne.Add(321, "Pyramid", item.HeartPiece, open())
	fairy := state(func(s logic.State, p *prog) bool {
		return s.Rewards(item.CrystalRed) >= 2 && p.Contains(item.MoonPearl) && s.CanEnter(DarkWorldSouth) &&
			(p.Contains(item.Hammer) || p.Contains(item.Mirror) && s.Defeated(item.Agahnim))
	})
	ne.Add(322, "Pyramid Fairy - Left", item.ProgressiveSword, fairy)
	ne.Add(323, "Pyramid Fairy - Right", item.SilverArrows, fairy)

	nw := w.NewRegion(DarkWorldNorthWest, world.DarkWorld, item.NoDungeon, 0, state(func(s logic.State, p *prog) bool {
		return p.Contains(item.MoonPearl) && (s.CanEnter(DarkWorldNorthEast) && p.Contains(item.Hookshot) &&
			(p.Contains(item.Flippers) || p.CanLiftLight() || p.Contains(item.Hammer)) ||
			p.Contains(item.Hammer) && p.CanLiftLight() || p.CanLiftHeavy())
	}))
	nw.Add(324, "Brewery", item.ThreeBombs, open())
	nw.Add(325, "C-Shaped House", item.ThreeHundredRupees, open())
	nw.Add(326, "Chest Game", item.HeartPiece, open())
	nw.Add(327, "Hammer Pegs", item.HeartPiece, req(func(p *prog) bool {
		return p.CanLiftHeavy() && p.Contains(item.Hammer)
	}))
	nw.Add(328, "Bumper Cave", item.HeartPiece, req(func(p *prog) bool {
		return p.CanLiftLight() && p.Contains(item.Cape)
	}))
	nw.Add(329, "Blacksmith", item.ProgressiveSword, req((*prog).CanLiftHeavy))
	nw.Add(330, "Purple Chest", item.ThreeBombs, req((*prog).CanLiftHeavy))

	south := w.NewRegion(DarkWorldSouth, world.DarkWorld, item.NoDungeon, 0, state(func(s logic.State, p *prog) bool {
		return p.Contains(item.MoonPearl) && (s.CanEnter(DarkWorldNorthWest) ||
			s.CanEnter(DarkWorldNorthEast) && p.Contains(item.Hammer))
	}))
	for i, name := range []string{"Top", "Middle Right", "Middle Left", "Bottom", "NPC"} {
		south.Add(331+i, "Hype Cave - "+name, item.TwentyRupees, open())
	}
	south.Add(336, "Stumpy", item.Shovel, open())
	south.Add(337, "Digging Game", item.HeartPiece, open())

	mire := w.NewRegion(DarkWorldMire, world.DarkWorld, item.NoDungeon, 0, reqs(
		func(p *prog) bool {
			return p.Contains(item.Flute) && p.CanLiftHeavy() || p.CanAccessMiseryMirePortal(false)
		},
		func(p *prog) bool {
			return p.Contains(item.Flute) && p.CanLiftHeavy() || p.CanAccessMiseryMirePortal(true)
		},
	))
	mire.Add(338, "Mire Shed - Left", item.HeartPiece, req(func(p *prog) bool { return p.Contains(item.MoonPearl) }))
	mire.Add(339, "Mire Shed - Right", item.TwentyRupees, req(func(p *prog) bool { return p.Contains(item.MoonPearl) }))

	dm := w.NewRegion(DarkWorldDeathMountain, world.DarkWorld, item.NoDungeon, 0, state(func(s logic.State, p *prog) bool {
		return s.CanEnter(DeathMountainEast) && p.CanLiftHeavy()
	}))
	dm.Add(340, "Superbunny Cave - Top", item.TenArrows, req(func(p *prog) bool { return p.Contains(item.MoonPearl) }))
	dm.Add(341, "Superbunny Cave - Bottom", item.ThreeBombs, req(func(p *prog) bool { return p.Contains(item.MoonPearl) }))
	for i, name := range []string{"Top Right", "Top Left", "Bottom Left", "Bottom Right"} {
		dm.Add(342+i, "Hookshot Cave - "+name, item.FiftyRupees, req(func(p *prog) bool {
			return p.Contains(item.MoonPearl) && p.Contains(item.Hookshot)
		}))
	}
	dm.Add(346, "Spike Cave", item.Byrna, req(func(p *prog) bool {
		return p.Contains(item.MoonPearl) && p.Contains(item.Hammer) && p.CanLiftLight() &&
			p.CanExtendMagic(2) && (p.Contains(item.Cape) || p.Contains(item.Byrna))
	}))
}
