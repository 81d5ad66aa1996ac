package regions

import (
	"smz3/pkg/engine/config"
	"smz3/pkg/engine/item"
	"smz3/pkg/game/logic"
	"smz3/pkg/game/world"
)

// goal is beating both final bosses: Ganon behind the crystals and
// Agahnim's second form, and Mother Brain at the end of Tourian.
func goal(cfg *config.Config) logic.Requirement {
	ganon := logic.All(
		logic.RewardsAtLeast(cfg.GanonCrystals, item.Crystals...),
		logic.Beat(item.Agahnim2),
		logic.Items(func(p *prog) bool {
			return has(p, item.MoonPearl, item.Bow, item.SilverArrows) &&
				(p.Contains(item.Lamp) || p.Contains(item.Firerod)) && p.Sword(2)
		}),
	)
	motherBrain := logic.All(
		logic.Enter(TourianRegion),
		logic.Items(func(p *prog) bool {
			return p.HasEnergyReserves(3) &&
				(p.Contains(item.Charge) || p.Contains(item.Plasma)) &&
				(p.Contains(item.Ice) || p.Contains(item.Varia))
		}),
	)
	return logic.All(ganon, motherBrain)
}

func repeat(t item.Type, n int) []item.Type {
	out := make([]item.Type, n)
	for i := range out {
		out[i] = t
	}
	return out
}

func concat(groups ...[]item.Type) []item.Type {
	var out []item.Type
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var smMajors = []item.Type{
	item.Morph, item.Bombs, item.Charge, item.Ice, item.HiJump, item.SpeedBooster,
	item.Wave, item.Spazer, item.SpringBall, item.Varia, item.Plasma, item.Grapple,
	item.Gravity, item.XRay, item.SpaceJump, item.ScrewAttack,
}

var z3Majors = []item.Type{
	item.Bow, item.SilverArrows, item.Hookshot, item.Mushroom, item.Powder,
	item.Firerod, item.Icerod, item.Bombos, item.Ether, item.Quake, item.Lamp,
	item.Hammer, item.Shovel, item.Flute, item.Bugnet, item.Book, item.Somaria,
	item.Byrna, item.Cape, item.Mirror, item.Boots, item.Flippers, item.MoonPearl,
	item.HalfMagic,
}

var keycards = []item.Type{
	item.CardCrateriaL1, item.CardCrateriaL2, item.CardCrateriaBoss,
	item.CardBrinstarL1, item.CardBrinstarL2, item.CardBrinstarBoss,
	item.CardNorfairL1, item.CardNorfairL2, item.CardNorfairBoss,
	item.CardMaridiaL1, item.CardMaridiaL2, item.CardMaridiaBoss,
	item.CardWreckedShipL1, item.CardWreckedShipBoss,
	item.CardLowerNorfairL1, item.CardLowerNorfairBoss,
}

// dungeonItems lists every dungeon's own items: big key, small keys, map
// and compass.
var dungeonItems = concat(
	[]item.Type{item.KeyHC, item.MapHC},
	repeat(item.KeyCT, 2),
	[]item.Type{item.BigKeyEP, item.MapEP, item.CompassEP},
	[]item.Type{item.KeyDP, item.BigKeyDP, item.MapDP, item.CompassDP},
	[]item.Type{item.KeyTH, item.BigKeyTH, item.MapTH, item.CompassTH},
	repeat(item.KeyPD, 4), []item.Type{item.BigKeyPD, item.MapPD, item.CompassPD},
	repeat(item.KeyIP, 2), []item.Type{item.BigKeyIP, item.MapIP, item.CompassIP},
	repeat(item.KeyMM, 3), []item.Type{item.BigKeyMM, item.MapMM, item.CompassMM},
	repeat(item.KeyTR, 4), []item.Type{item.BigKeyTR, item.MapTR, item.CompassTR},
	repeat(item.KeyGT, 4), []item.Type{item.BigKeyGT, item.MapGT, item.CompassGT},
)

// junkBase is the filler handed out before padding starts.
var junkBase = concat(
	repeat(item.ETank, 8),
	repeat(item.Missile, 30),
	repeat(item.Super, 7),
	repeat(item.PowerBomb, 5),
	repeat(item.HeartPiece, 24),
	repeat(item.HeartContainer, 10),
	repeat(item.ProgressiveShield, 3),
	repeat(item.ProgressiveTunic, 2),
	repeat(item.ThreeHundredRupees, 5),
	repeat(item.OneHundredRupees, 1),
	repeat(item.FiftyRupees, 7),
	repeat(item.ThreeBombs, 10),
	repeat(item.TenArrows, 12),
)

// junkPadding is Zelda filler only; Super Metroid ammo is progression flagged
// and would crowd the slots a placement rule leaves open to it.
var junkPadding = []item.Type{item.TwentyRupees, item.TenArrows, item.ThreeBombs}

// pools partitions the items of w so that there is exactly one item per
// location. Keycards are only placed with Super Metroid keysanity; otherwise
// their doors are open and the slots go to filler.
func pools(w *world.World) world.Pools {
	p := world.Pools{
		Progression: concat(
			smMajors,
			repeat(item.ETank, 6),
			repeat(item.ReserveTank, 2),
			repeat(item.Missile, 3),
			repeat(item.Super, 3),
			repeat(item.PowerBomb, 3),
			repeat(item.ProgressiveSword, 4),
			repeat(item.ProgressiveGlove, 2),
			z3Majors,
			repeat(item.Bottle, 2),
		),
		Dungeon: append([]item.Type(nil), dungeonItems...),
	}
	if w.Config.SMKeysanity() {
		p.Keycards = append([]item.Type(nil), keycards...)
	}

	room := len(w.Locations) - p.Size()
	if room < len(junkBase) {
		p.Junk = append([]item.Type(nil), junkBase[:max(room, 0)]...)
		return p
	}
	p.Junk = append([]item.Type(nil), junkBase...)
	for i := 0; len(p.Junk) < room; i++ {
		p.Junk = append(p.Junk, junkPadding[i%len(junkPadding)])
	}
	return p
}
