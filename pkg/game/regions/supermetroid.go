package regions

import (
	"smz3/pkg/engine/item"
	"smz3/pkg/game/logic"
	"smz3/pkg/game/world"
)

// Region names referenced across files.
const (
	CrateriaCentral   = "Crateria Central"
	CrateriaWest      = "Crateria West"
	CrateriaEast      = "Crateria East"
	BrinstarGreen     = "Brinstar Green"
	BrinstarPink      = "Brinstar Pink"
	BrinstarBlue      = "Brinstar Blue"
	BrinstarRed       = "Brinstar Red"
	BrinstarKraid     = "Brinstar Kraid"
	NorfairUpperWest  = "Norfair Upper West"
	NorfairUpperEast  = "Norfair Upper East"
	NorfairLowerWest  = "Norfair Lower West"
	NorfairLowerEast  = "Norfair Lower East"
	WreckedShipRegion = "Wrecked Ship"
	MaridiaOuter      = "Maridia Outer"
	MaridiaInner      = "Maridia Inner"
	TourianRegion     = "Tourian"
)

func buildCrateria(w *world.World) {
	central := w.NewRegion(CrateriaCentral, world.Crateria, item.NoDungeon, 0, open())
	central.Add(0, "Power Bomb (Crateria surface)", item.PowerBomb, req(func(p *prog) bool {
		opened := p.CanUsePowerBombs()
		if p.Config().SMKeysanity() {
			opened = p.Contains(item.CardCrateriaL1)
		}
		return opened && (p.Contains(item.SpeedBooster) || p.CanFly())
	}))
	central.Add(6, "Missile (Crateria bottom)", item.Missile, req((*prog).CanDestroyBombWalls))
	central.Add(7, "Bombs", item.Bombs, req(func(p *prog) bool {
		return p.Card(item.CardCrateriaBoss) && p.Contains(item.Morph) && p.CanOpenRedDoors()
	}))
	central.Add(11, "Super Missile (Crateria)", item.Super, req(func(p *prog) bool {
		return p.CanUsePowerBombs() && p.HasEnergyReserves(2) && p.Contains(item.SpeedBooster)
	}))
	central.Add(12, "Missile (Crateria middle)", item.Missile, req((*prog).CanPassBombPassages))

	west := w.NewRegion(CrateriaWest, world.Crateria, item.NoDungeon, 0, open())
	west.Add(8, "Energy Tank, Terminator", item.ETank, req(func(p *prog) bool {
		return p.CanDestroyBombWalls() || p.Config().Logic.ParlorSpeedBooster && p.Contains(item.SpeedBooster)
	}))
	gauntlet := func(p *prog) bool {
		return p.Card(item.CardCrateriaL1) && p.Contains(item.Morph) &&
			(p.CanFly() || p.Contains(item.SpeedBooster)) &&
			(p.CanIbj() || p.Count(item.PowerBomb) >= 2 || p.Contains(item.ScrewAttack))
	}
	gauntletHard := func(p *prog) bool {
		return p.Card(item.CardCrateriaL1) && p.Contains(item.Morph) &&
			(p.Contains(item.Bombs) || p.Count(item.PowerBomb) >= 2 || p.Contains(item.ScrewAttack))
	}
	west.Add(5, "Energy Tank, Gauntlet", item.ETank, reqs(gauntlet, gauntletHard))
	west.Add(9, "Missile (Crateria gauntlet right)", item.Missile, reqs(
		func(p *prog) bool { return gauntlet(p) && p.CanPassBombPassages() },
		func(p *prog) bool { return gauntletHard(p) && p.CanPassBombPassages() },
	))
	west.Add(10, "Missile (Crateria gauntlet left)", item.Missile, reqs(
		func(p *prog) bool { return gauntlet(p) && p.CanPassBombPassages() },
		func(p *prog) bool { return gauntletHard(p) && p.CanPassBombPassages() },
	))

	east := w.NewRegion(CrateriaEast, world.Crateria, item.NoDungeon, 0, req(func(p *prog) bool {
		return p.Card(item.CardCrateriaL2) && p.CanUsePowerBombs() && p.Contains(item.Super)
	}))
	east.Add(1, "Missile (outside Wrecked Ship bottom)", item.Missile, req(func(p *prog) bool {
		return p.Contains(item.Morph)
	}))
	east.Add(2, "Missile (outside Wrecked Ship top)", item.Missile, state(func(s logic.State, p *prog) bool {
		return s.CanEnter(WreckedShipRegion) && s.Defeated(item.Phantoon)
	}))
	east.Add(3, "Missile (outside Wrecked Ship middle)", item.Missile, state(func(s logic.State, p *prog) bool {
		return s.CanEnter(WreckedShipRegion) && s.Defeated(item.Phantoon) &&
			(!p.Config().Logic.EasyEastCrateriaSkyItem || p.Contains(item.Gravity) || p.Contains(item.SpaceJump))
	}))
	east.Add(4, "Missile (Crateria moat)", item.Missile, open())
}

func buildBrinstar(w *world.World) {
	green := w.NewRegion(BrinstarGreen, world.Brinstar, item.NoDungeon, 0, req(func(p *prog) bool {
		return p.CanDestroyBombWalls() || p.Contains(item.SpeedBooster)
	}))
	green.Add(13, "Power Bomb (green Brinstar bottom)", item.PowerBomb, req(func(p *prog) bool {
		return p.Card(item.CardBrinstarL2) && p.CanUsePowerBombs()
	}))
	green.Add(14, "Missile (green Brinstar below super missile)", item.Missile, req(func(p *prog) bool {
		return p.CanPassBombPassages() && p.CanOpenRedDoors()
	}))
	green.Add(15, "Super Missile (green Brinstar top)", item.Super, req(func(p *prog) bool {
		return p.CanOpenRedDoors() && p.Contains(item.SpeedBooster)
	}))
	green.Add(16, "Reserve Tank, Brinstar", item.ReserveTank, req(func(p *prog) bool {
		return p.CanOpenRedDoors() && p.Contains(item.SpeedBooster)
	}))
	green.Add(17, "Missile (green Brinstar behind missile)", item.Missile, req(func(p *prog) bool {
		return p.Contains(item.SpeedBooster) && p.CanPassBombPassages() && p.CanOpenRedDoors()
	}))
	green.Add(18, "Missile (green Brinstar behind reserve tank)", item.Missile, req(func(p *prog) bool {
		return p.Contains(item.SpeedBooster) && p.CanOpenRedDoors() && p.Contains(item.Morph)
	}))
	green.Add(19, "Energy Tank, Etecoons", item.ETank, req(func(p *prog) bool {
		return p.Card(item.CardBrinstarL2) && p.CanUsePowerBombs()
	}))
	green.Add(20, "Super Missile (green Brinstar bottom)", item.Super, req(func(p *prog) bool {
		return p.Card(item.CardBrinstarL2) && p.CanUsePowerBombs() && p.Contains(item.Super)
	}))

	pink := w.NewRegion(BrinstarPink, world.Brinstar, item.NoDungeon, 0, state(func(s logic.State, p *prog) bool {
		return s.CanEnter(BrinstarGreen) && (p.CanUsePowerBombs() || p.Contains(item.Super))
	}))
	pink.Add(21, "Super Missile (pink Brinstar)", item.Super, req(func(p *prog) bool {
		return p.CanPassBombPassages() && p.Contains(item.Super)
	}))
	pink.Add(22, "Missile (pink Brinstar top)", item.Missile, open())
	pink.Add(23, "Missile (pink Brinstar bottom)", item.Missile, open())
	pink.Add(24, "Charge Beam", item.Charge, req((*prog).CanPassBombPassages))
	pink.Add(25, "Power Bomb (pink Brinstar)", item.PowerBomb, req(func(p *prog) bool {
		return p.CanUsePowerBombs() && p.Contains(item.Super)
	}))
	pink.Add(26, "Missile (green Brinstar pipe)", item.Missile, req(func(p *prog) bool {
		return p.Contains(item.Morph) && (p.Contains(item.PowerBomb) || p.Contains(item.Super))
	}))
	pink.Add(27, "Energy Tank, Waterway", item.ETank, req(func(p *prog) bool {
		return p.CanUsePowerBombs() && p.CanOpenRedDoors() && p.Contains(item.SpeedBooster) &&
			(!p.Config().Logic.WaterwayNeedsGravitySuit || p.Contains(item.Gravity))
	}))
	pink.Add(28, "Energy Tank, Brinstar Gate", item.ETank, reqs(
		func(p *prog) bool {
			return p.Card(item.CardBrinstarL2) && p.CanUsePowerBombs() && p.Contains(item.Wave)
		},
		func(p *prog) bool {
			return p.Card(item.CardBrinstarL2) && p.CanUsePowerBombs() && (p.Contains(item.Wave) || p.Contains(item.Super))
		},
	))

	blue := w.NewRegion(BrinstarBlue, world.Brinstar, item.NoDungeon, 0, open())
	blue.Add(29, "Morphing Ball", item.Morph, open())
	blue.Add(30, "Power Bomb (blue Brinstar)", item.PowerBomb, req((*prog).CanUsePowerBombs))
	blue.Add(31, "Missile (blue Brinstar middle)", item.Missile, req(func(p *prog) bool {
		return p.Card(item.CardBrinstarL1) && p.Contains(item.Morph)
	}))
	blue.Add(32, "Energy Tank, Brinstar Ceiling", item.ETank, req(func(p *prog) bool {
		return p.Card(item.CardBrinstarL1) &&
			(p.CanFly() || p.Contains(item.HiJump) || p.Contains(item.SpeedBooster) || p.Contains(item.Ice))
	}))
	blue.Add(33, "Missile (blue Brinstar bottom)", item.Missile, req(func(p *prog) bool {
		return p.Contains(item.Morph)
	}))
	blue.Add(34, "Missile (blue Brinstar top)", item.Missile, req(func(p *prog) bool {
		return p.Card(item.CardBrinstarL1) && p.CanUsePowerBombs()
	}))
	blue.Add(35, "Missile (blue Brinstar behind missile)", item.Missile, req(func(p *prog) bool {
		return p.Card(item.CardBrinstarL1) && p.CanUsePowerBombs()
	}))

	red := w.NewRegion(BrinstarRed, world.Brinstar, item.NoDungeon, 0, state(func(s logic.State, p *prog) bool {
		return s.CanEnter(BrinstarGreen) && p.Contains(item.Super) && p.Contains(item.Morph) ||
			s.CanEnter(NorfairUpperWest) && p.CanUsePowerBombs() &&
				(p.Contains(item.Ice) || p.Contains(item.HiJump) || p.CanFly())
	}))
	red.Add(36, "X-Ray Scope", item.XRay, reqs(
		func(p *prog) bool {
			return p.CanUsePowerBombs() && p.CanOpenRedDoors() && (p.Contains(item.Grapple) || p.Contains(item.SpaceJump))
		},
		func(p *prog) bool {
			return p.CanUsePowerBombs() && p.CanOpenRedDoors() &&
				(p.Contains(item.Grapple) || p.Contains(item.SpaceJump) || p.HasEnergyReserves(3) && p.Contains(item.Varia))
		},
	))
	red.Add(37, "Power Bomb (red Brinstar sidehopper room)", item.PowerBomb, req(func(p *prog) bool {
		return p.CanUsePowerBombs() && p.Contains(item.Super)
	}))
	red.Add(38, "Power Bomb (red Brinstar spike room)", item.PowerBomb, req(func(p *prog) bool {
		return p.Contains(item.Super)
	}))
	red.Add(39, "Missile (red Brinstar spike room)", item.Missile, req(func(p *prog) bool {
		return p.CanUsePowerBombs() && p.Contains(item.Super)
	}))
	red.Add(40, "Spazer", item.Spazer, req(func(p *prog) bool {
		return p.CanPassBombPassages() && p.Contains(item.Super)
	}))

	kraid := w.NewRegion(BrinstarKraid, world.Brinstar, item.NoDungeon, 0, state(func(s logic.State, p *prog) bool {
		return s.CanEnter(BrinstarRed) && p.CanPassBombPassages() && p.Contains(item.Super)
	})).WithBoss(item.Kraid, req(func(p *prog) bool {
		return p.Card(item.CardBrinstarBoss) && p.CanOpenRedDoors()
	}))
	kraid.Add(41, "Energy Tank, Kraid", item.ETank, state(func(s logic.State, p *prog) bool {
		return s.Defeated(item.Kraid)
	})).Relevant(open())
	kraid.Add(42, "Varia Suit", item.Varia, state(func(s logic.State, p *prog) bool {
		return s.Defeated(item.Kraid)
	})).Relevant(open())
	kraid.Add(43, "Missile (Kraid)", item.Missile, req((*prog).CanUsePowerBombs))
}

func buildNorfair(w *world.World) {
	upperWest := w.NewRegion(NorfairUpperWest, world.Norfair, item.NoDungeon, 0, req(func(p *prog) bool {
		return (p.CanDestroyBombWalls() || p.Contains(item.SpeedBooster)) && p.Contains(item.Super) && p.Contains(item.Morph) ||
			p.CanAccessNorfairUpperPortal()
	}))
	upperWest.Add(44, "Ice Beam", item.Ice, reqs(
		func(p *prog) bool {
			return p.Card(item.CardNorfairL1) && p.Contains(item.Super) && p.CanPassBombPassages() &&
				p.Contains(item.SpeedBooster) && (p.Contains(item.Varia) || p.HasEnergyReserves(3))
		},
		func(p *prog) bool {
			return p.Card(item.CardNorfairL1) && p.Contains(item.Super) && p.CanPassBombPassages() &&
				(p.Contains(item.Varia) || p.HasEnergyReserves(2))
		},
	))
	upperWest.Add(45, "Missile (below Ice Beam)", item.Missile, req(func(p *prog) bool {
		return p.Card(item.CardNorfairL1) && p.CanUsePowerBombs() && (p.Contains(item.Varia) || p.HasEnergyReserves(3))
	}))
	upperWest.Add(46, "Hi-Jump Boots", item.HiJump, req(func(p *prog) bool {
		return p.CanOpenRedDoors() && p.CanPassBombPassages()
	}))
	upperWest.Add(47, "Missile (Hi-Jump Boots)", item.Missile, req(func(p *prog) bool {
		return p.CanOpenRedDoors() && p.CanPassBombPassages()
	}))
	upperWest.Add(48, "Energy Tank (Hi-Jump Boots)", item.ETank, req((*prog).CanOpenRedDoors))
	upperWest.Add(49, "Missile (lava room)", item.Missile, req(func(p *prog) bool {
		return p.Contains(item.Varia) && p.CanOpenRedDoors() &&
			(p.CanFly() || p.Contains(item.HiJump) || p.Contains(item.SpeedBooster))
	}))

	upperEast := w.NewRegion(NorfairUpperEast, world.Norfair, item.NoDungeon, 0, states(
		func(s logic.State, p *prog) bool {
			return s.CanEnter(NorfairUpperWest) && p.Contains(item.Varia) && p.Card(item.CardNorfairL2) &&
				p.Contains(item.Super) && (p.CanFly() || p.Contains(item.HiJump) || p.Contains(item.SpeedBooster))
		},
		func(s logic.State, p *prog) bool {
			return s.CanEnter(NorfairUpperWest) && p.CanHellRun() && p.Card(item.CardNorfairL2) &&
				p.Contains(item.Super) && (p.CanFly() || p.Contains(item.HiJump) || p.Contains(item.SpeedBooster) || p.Contains(item.Ice))
		},
	))
	bubble := func(p *prog) bool {
		return p.Contains(item.Morph) &&
			(p.CanFly() || p.Contains(item.Grapple) || p.Contains(item.HiJump) || p.Contains(item.Ice))
	}
	upperEast.Add(50, "Missile (bubble Norfair)", item.Missile, open())
	upperEast.Add(51, "Missile (Speed Booster)", item.Missile, req((*prog).CanOpenRedDoors))
	upperEast.Add(52, "Speed Booster", item.SpeedBooster, req((*prog).CanOpenRedDoors))
	upperEast.Add(53, "Missile (Wave Beam)", item.Missile, req((*prog).CanOpenRedDoors))
	upperEast.Add(54, "Wave Beam", item.Wave, req(func(p *prog) bool {
		return p.CanOpenRedDoors() &&
			(p.Contains(item.Morph) || p.Contains(item.Grapple) || p.Contains(item.SpaceJump))
	}))
	upperEast.Add(55, "Reserve Tank, Norfair", item.ReserveTank, req(bubble))
	upperEast.Add(56, "Missile (Norfair Reserve Tank)", item.Missile, req(bubble))
	upperEast.Add(57, "Missile (bubble Norfair green door)", item.Missile, req(bubble))
	upperEast.Add(58, "Energy Tank, Crocomire", item.ETank, req(func(p *prog) bool {
		return p.Card(item.CardNorfairBoss) &&
			(p.HasEnergyReserves(1) || p.Contains(item.SpaceJump) || p.Contains(item.Grapple))
	}))
	upperEast.Add(59, "Missile (above Crocomire)", item.Missile, req(func(p *prog) bool {
		return p.CanFly() || p.Contains(item.Grapple) || p.Contains(item.HiJump) && p.Contains(item.SpeedBooster)
	}))
	upperEast.Add(60, "Power Bomb (Crocomire)", item.PowerBomb, req(func(p *prog) bool {
		return p.CanFly() || p.Contains(item.HiJump) || p.Contains(item.Grapple)
	}))
	upperEast.Add(61, "Missile (below Crocomire)", item.Missile, req(func(p *prog) bool {
		return p.Contains(item.Morph)
	}))
	upperEast.Add(62, "Missile (Grappling Beam)", item.Missile, req(func(p *prog) bool {
		return p.Contains(item.Morph) && (p.CanFly() || p.Contains(item.SpeedBooster) && p.Contains(item.HiJump))
	}))
	upperEast.Add(63, "Grappling Beam", item.Grapple, req(func(p *prog) bool {
		return p.Contains(item.Morph) && (p.CanFly() || p.Contains(item.SpeedBooster) && p.Contains(item.HiJump))
	}))

	lowerWest := w.NewRegion(NorfairLowerWest, world.Norfair, item.NoDungeon, 0, states(
		func(s logic.State, p *prog) bool {
			return p.Contains(item.Varia) && (s.CanEnter(NorfairUpperEast) && p.CanUsePowerBombs() &&
				p.Contains(item.SpaceJump) && p.Contains(item.Gravity) ||
				p.CanAccessNorfairLowerPortal() && p.CanDestroyBombWalls() && p.Contains(item.Super) &&
					(p.CanFly() || p.CanSpringBallJump() || p.Contains(item.SpeedBooster)))
		},
		func(s logic.State, p *prog) bool {
			return p.Contains(item.Varia) && (s.CanEnter(NorfairUpperEast) && p.CanUsePowerBombs() &&
				(p.Contains(item.HiJump) || p.Contains(item.Gravity)) ||
				p.CanAccessNorfairLowerPortal() && p.CanDestroyBombWalls())
		},
	))
	lowerWest.Add(64, "Missile (Gold Torizo)", item.Missile, req(func(p *prog) bool {
		return p.CanUsePowerBombs() && p.Contains(item.SpaceJump) && p.Contains(item.Super)
	}))
	lowerWest.Add(65, "Super Missile (Gold Torizo)", item.Super, req(func(p *prog) bool {
		return p.CanDestroyBombWalls() && (p.Contains(item.Varia) || p.HasEnergyReserves(3))
	}))
	lowerWest.Add(66, "Screw Attack", item.ScrewAttack, req((*prog).CanPassBombPassages))
	lowerWest.Add(67, "Missile (Mickey Mouse room)", item.Missile, req(func(p *prog) bool {
		return p.CanFly() && p.Contains(item.Morph) && p.Contains(item.Super) && p.Card(item.CardLowerNorfairL1)
	}))

	lowerEast := w.NewRegion(NorfairLowerEast, world.Norfair, item.NoDungeon, 0, state(func(s logic.State, p *prog) bool {
		return s.CanEnter(NorfairLowerWest) && p.Card(item.CardLowerNorfairL1) && p.CanUsePowerBombs() &&
			(p.CanFly() || p.Contains(item.HiJump) || p.Contains(item.SpeedBooster))
	})).WithBoss(item.Ridley, reqs(
		func(p *prog) bool {
			return p.Card(item.CardLowerNorfairBoss) && p.HasEnergyReserves(3) &&
				(p.Contains(item.Charge) || p.Contains(item.Plasma))
		},
		func(p *prog) bool {
			return p.Card(item.CardLowerNorfairBoss) && p.HasEnergyReserves(2) &&
				(p.Contains(item.Charge) || p.Contains(item.Super))
		},
	))
	lowerEast.Add(68, "Missile (lower Norfair above fire flea room)", item.Missile, open())
	lowerEast.Add(69, "Power Bomb (lower Norfair above fire flea room)", item.PowerBomb, open())
	lowerEast.Add(70, "Power Bomb (Power Bombs of shame)", item.PowerBomb, req((*prog).CanUsePowerBombs))
	lowerEast.Add(71, "Missile (lower Norfair near Wave Beam)", item.Missile, req(func(p *prog) bool {
		return p.Contains(item.Morph)
	}))
	lowerEast.Add(72, "Energy Tank, Ridley", item.ETank, state(func(s logic.State, p *prog) bool {
		return s.Defeated(item.Ridley)
	})).Relevant(open())
	lowerEast.Add(73, "Energy Tank, Firefleas", item.ETank, open())
}

func buildWreckedShip(w *world.World) {
	ship := w.NewRegion(WreckedShipRegion, world.WreckedShip, item.NoDungeon, 0, state(func(s logic.State, p *prog) bool {
		cfg := p.Config()
		moat := p.Contains(item.Grapple) || p.Contains(item.SpaceJump) ||
			p.Contains(item.Gravity) && p.Contains(item.SpeedBooster) ||
			cfg.Logic.MoatSpecialBeam && p.Contains(item.SpeedBooster)
		return s.CanEnter(CrateriaEast) && p.Contains(item.Super) && moat
	})).WithBoss(item.Phantoon, req(func(p *prog) bool {
		return p.Card(item.CardWreckedShipBoss) && p.CanPassBombPassages()
	}))
	phantoon := func(s logic.State, p *prog) bool { return s.Defeated(item.Phantoon) }

	ship.Add(74, "Missile (Wrecked Ship middle)", item.Missile, req((*prog).CanPassBombPassages))
	ship.Add(75, "Reserve Tank, Wrecked Ship", item.ReserveTank, state(func(s logic.State, p *prog) bool {
		return phantoon(s, p) && p.Contains(item.SpeedBooster) && p.CanUsePowerBombs() &&
			(p.Contains(item.Grapple) || p.Contains(item.SpaceJump) ||
				p.Contains(item.Varia) && p.HasEnergyReserves(2) || p.HasEnergyReserves(3))
	})).Relevant(open())
	ship.Add(76, "Missile (Gravity Suit)", item.Missile, state(func(s logic.State, p *prog) bool {
		return phantoon(s, p) && (p.Contains(item.Varia) || p.HasEnergyReserves(1))
	})).Relevant(open())
	ship.Add(77, "Missile (Wrecked Ship top)", item.Missile, state(phantoon)).Relevant(open())
	ship.Add(78, "Energy Tank, Wrecked Ship", item.ETank, state(func(s logic.State, p *prog) bool {
		return phantoon(s, p) &&
			(p.Contains(item.HiJump) || p.Contains(item.SpaceJump) || p.Contains(item.SpeedBooster) || p.Contains(item.Gravity))
	})).Relevant(open())
	ship.Add(79, "Super Missile (Wrecked Ship left)", item.Super, state(phantoon)).Relevant(open())
	ship.Add(80, "Right Super, Wrecked Ship", item.Super, state(phantoon)).Relevant(open())
	ship.Add(81, "Gravity Suit", item.Gravity, state(func(s logic.State, p *prog) bool {
		return phantoon(s, p) && (p.Contains(item.Varia) || p.HasEnergyReserves(1))
	})).Relevant(open())
}

func buildMaridia(w *world.World) {
	outer := w.NewRegion(MaridiaOuter, world.Maridia, item.NoDungeon, 0, states(
		func(s logic.State, p *prog) bool {
			return p.Contains(item.Gravity) && (s.CanEnter(BrinstarRed) && p.CanUsePowerBombs() && p.Card(item.CardMaridiaL1) ||
				p.CanAccessMaridiaPortal(false, s.Defeated(item.Agahnim)))
		},
		func(s logic.State, p *prog) bool {
			swim := p.Contains(item.Gravity) || p.Contains(item.HiJump) && (p.Contains(item.Ice) || p.CanSpringBallJump())
			return swim && (s.CanEnter(BrinstarRed) && p.CanUsePowerBombs() && p.Card(item.CardMaridiaL1) ||
				p.CanAccessMaridiaPortal(true, s.Defeated(item.Agahnim)))
		},
	))
	outer.Add(82, "Missile (green Maridia shinespark)", item.Missile, req(func(p *prog) bool {
		return p.Contains(item.SpeedBooster) && (!p.Config().Logic.LaunchPadRequiresIceBeam || p.Contains(item.Ice))
	}))
	outer.Add(83, "Super Missile (green Maridia)", item.Super, open())
	outer.Add(84, "Energy Tank, Mama turtle", item.ETank, req(func(p *prog) bool {
		return p.CanOpenRedDoors() && (p.CanFly() || p.Contains(item.SpeedBooster) || p.Contains(item.Grapple))
	}))
	outer.Add(85, "Missile (green Maridia tatori)", item.Missile, req((*prog).CanOpenRedDoors))

	inner := w.NewRegion(MaridiaInner, world.Maridia, item.NoDungeon, 0, state(func(s logic.State, p *prog) bool {
		return s.CanEnter(MaridiaOuter) && p.Card(item.CardMaridiaL2) && p.Contains(item.Super) &&
			(p.CanFly() || p.Contains(item.SpeedBooster) || p.Contains(item.Grapple))
	})).WithBoss(item.Draygon, reqs(
		func(p *prog) bool {
			return p.Card(item.CardMaridiaBoss) && p.Contains(item.Gravity) &&
				(p.Contains(item.SpeedBooster) && p.Contains(item.HiJump) || p.CanFly())
		},
		func(p *prog) bool {
			return p.Card(item.CardMaridiaBoss) &&
				(p.Contains(item.Gravity) || p.Contains(item.Grapple) || p.CanSpringBallJump())
		},
	))
	sandPit := func(p *prog) bool {
		return p.CanPassBombPassages() && (p.Contains(item.HiJump) || p.Contains(item.SpaceJump)) &&
			(!p.Config().Logic.LeftSandPitRequiresSpringBall || p.CanSpringBallJump())
	}
	draygon := func(s logic.State, p *prog) bool { return s.Defeated(item.Draygon) }

	inner.Add(86, "Super Missile (yellow Maridia)", item.Super, req((*prog).CanPassBombPassages))
	inner.Add(87, "Missile (yellow Maridia super missile)", item.Missile, req((*prog).CanPassBombPassages))
	inner.Add(88, "Missile (yellow Maridia false wall)", item.Missile, req((*prog).CanPassBombPassages))
	inner.Add(89, "Plasma Beam", item.Plasma, state(func(s logic.State, p *prog) bool {
		return draygon(s, p) && (p.Contains(item.ScrewAttack) || p.Contains(item.Charge)) &&
			(p.Contains(item.HiJump) || p.CanFly() || p.Contains(item.SpeedBooster))
	})).Relevant(open())
	inner.Add(90, "Missile (left Maridia sand pit room)", item.Missile, req(sandPit))
	inner.Add(91, "Reserve Tank, Maridia", item.ReserveTank, req(sandPit))
	inner.Add(92, "Missile (right Maridia sand pit room)", item.Missile, open())
	inner.Add(93, "Power Bomb (right Maridia sand pit room)", item.PowerBomb, open())
	inner.Add(94, "Missile (pink Maridia)", item.Missile, req(func(p *prog) bool {
		return p.Contains(item.SpeedBooster)
	}))
	inner.Add(95, "Super Missile (pink Maridia)", item.Super, req(func(p *prog) bool {
		return p.Contains(item.SpeedBooster)
	}))
	inner.Add(96, "Spring Ball", item.SpringBall, req(func(p *prog) bool {
		return p.Contains(item.Super) && p.Contains(item.Grapple) && p.CanUsePowerBombs() &&
			(p.Contains(item.SpaceJump) || p.Contains(item.HiJump))
	}))
	inner.Add(97, "Missile (Draygon)", item.Missile, req((*prog).CanOpenRedDoors))
	inner.Add(98, "Energy Tank, Botwoon", item.ETank, req(func(p *prog) bool {
		return p.Contains(item.Ice) || p.Contains(item.SpeedBooster) && p.Contains(item.Gravity)
	}))
	inner.Add(99, "Space Jump", item.SpaceJump, state(draygon)).Relevant(open())
}

// buildTourian adds the final area. It holds no items; the goal checks it.
func buildTourian(w *world.World) {
	cfg := w.Config
	w.NewRegion(TourianRegion, world.Tourian, item.NoDungeon, 0, state(func(s logic.State, p *prog) bool {
		beaten := 0
		for _, b := range item.GoldenFour {
			if s.Defeated(b) {
				beaten++
			}
		}
		return beaten >= cfg.TourianBosses && p.CanUsePowerBombs() && p.Contains(item.Super)
	}))
}
