package progression

import "smz3/pkg/engine/item"

// Sword reports owning at least the given sword level.
func (p *Progression) Sword(level int) bool {
	return p.Count(item.ProgressiveSword) >= level
}

func (p *Progression) CanLiftLight() bool {
	return p.Count(item.ProgressiveGlove) >= 1
}

func (p *Progression) CanLiftHeavy() bool {
	return p.Count(item.ProgressiveGlove) >= 2
}

func (p *Progression) CanLightTorches() bool {
	return p.Contains(item.Firerod) || p.Contains(item.Lamp)
}

func (p *Progression) CanMeltFreezors() bool {
	return p.Contains(item.Firerod) || p.Contains(item.Bombos) && p.Sword(1)
}

// CanExtendMagic reports whether the magic meter stretches to the given
// number of bars.
func (p *Progression) CanExtendMagic(bars int) bool {
	n := 1
	if p.Contains(item.HalfMagic) {
		n = 2
	}
	if p.Contains(item.Bottle) {
		n *= 2
	}
	return n >= bars
}

func (p *Progression) CanKillManyEnemies() bool {
	return p.Sword(1) || p.Contains(item.Hammer) || p.Contains(item.Bow) ||
		p.Contains(item.Firerod) || p.Contains(item.Somaria) ||
		p.Contains(item.Byrna) && p.CanExtendMagic(2)
}

// CanNavigateDarkRooms reports whether unlit rooms are in logic.
func (p *Progression) CanNavigateDarkRooms() bool {
	return p.Contains(item.Lamp) || p.cfg.Logic.FireRodDarkRooms && p.Contains(item.Firerod)
}

// CanAccessNorfairUpperPortal covers the Light World to upper Norfair link.
func (p *Progression) CanAccessNorfairUpperPortal() bool {
	return p.Contains(item.Flute) || p.CanLiftLight() && p.Contains(item.Lamp)
}

// CanAccessNorfairLowerPortal covers the Dark World to lower Norfair link.
func (p *Progression) CanAccessNorfairLowerPortal() bool {
	return p.Contains(item.Flute) && p.CanLiftHeavy()
}

// CanAccessMaridiaPortal covers the Dark World to Maridia link. agahnim
// reports whether the Dark World can be reached through the castle.
func (p *Progression) CanAccessMaridiaPortal(hard, agahnim bool) bool {
	reachDarkWorld := agahnim || p.Contains(item.Hammer) && p.CanLiftLight() || p.CanLiftHeavy()
	if !hard {
		return p.Contains(item.MoonPearl) && p.Contains(item.Flippers) &&
			p.Contains(item.Gravity) && p.Contains(item.Morph) && reachDarkWorld
	}
	return p.Contains(item.MoonPearl) && p.Contains(item.Flippers) &&
		(p.CanSpringBallJump() || p.Contains(item.HiJump) || p.Contains(item.Gravity)) &&
		p.Contains(item.Morph) && reachDarkWorld
}
