package progression

import "smz3/pkg/engine/item"

// Derived Super Metroid capabilities. Each one is a pure function of the
// owned counts and the logic toggles of the bound Config.

// CanIbj reports whether an infinite bomb jump is physically possible.
func (p *Progression) CanIbj() bool {
	return p.Contains(item.Morph) && p.Contains(item.Bombs)
}

// CanFly reports vertical freedom. Bomb jumping only counts when the trick
// is enabled.
func (p *Progression) CanFly() bool {
	if p.Contains(item.SpaceJump) {
		return true
	}
	return p.cfg.Logic.InfiniteBombJump && p.CanIbj()
}

// CanUsePowerBombs requires morph and enough packs to avoid a five-bomb seed.
func (p *Progression) CanUsePowerBombs() bool {
	need := 1
	if p.cfg.Logic.PreventFivePowerBombSeed {
		need = 2
	}
	return p.Contains(item.Morph) && p.Count(item.PowerBomb) >= need
}

// CanPassBombPassages reports whether morph ball tunnels blocked by bomb
// blocks can be opened.
func (p *Progression) CanPassBombPassages() bool {
	return p.Contains(item.Morph) && (p.Contains(item.Bombs) || p.CanUsePowerBombs())
}

// CanSafelyUseScrewAttack guards against the soft lock where screw attack
// breaks a wall into a morph-only room.
func (p *Progression) CanSafelyUseScrewAttack() bool {
	if !p.Contains(item.ScrewAttack) {
		return false
	}
	return !p.cfg.Logic.PreventScrewAttackSoftLock || p.Contains(item.Morph)
}

// CanDestroyBombWalls reports whether bombable walls can be cleared.
func (p *Progression) CanDestroyBombWalls() bool {
	return p.CanPassBombPassages() || p.CanSafelyUseScrewAttack()
}

func (p *Progression) CanSpringBallJump() bool {
	return p.Contains(item.Morph) && p.Contains(item.SpringBall)
}

// HasEnergyReserves counts energy and reserve tanks together.
func (p *Progression) HasEnergyReserves(n int) bool {
	return p.Count(item.ETank)+p.Count(item.ReserveTank) >= n
}

func (p *Progression) CanHellRun() bool {
	return p.Contains(item.Varia) || p.HasEnergyReserves(5)
}

func (p *Progression) CanOpenRedDoors() bool {
	return p.Contains(item.Missile) || p.Contains(item.Super)
}

// CanAccessDeathMountainPortal covers the Crateria to Death Mountain link.
func (p *Progression) CanAccessDeathMountainPortal() bool {
	return (p.CanDestroyBombWalls() || p.Contains(item.SpeedBooster)) &&
		p.Contains(item.Super) && p.Contains(item.Morph)
}

// CanAccessDarkWorldPortal covers the Maridia to Dark World link.
func (p *Progression) CanAccessDarkWorldPortal(hard bool) bool {
	base := p.Card(item.CardMaridiaL1) && p.Card(item.CardMaridiaL2) &&
		p.CanUsePowerBombs() && p.Contains(item.Super)
	if !hard {
		return base && p.Contains(item.Gravity) && p.Contains(item.SpeedBooster)
	}
	return base &&
		(p.Contains(item.Charge) || p.Contains(item.Missile)) &&
		(p.Contains(item.Gravity) || p.Contains(item.HiJump) && p.Contains(item.Ice) && p.Contains(item.Grapple)) &&
		(p.Contains(item.Ice) || p.Contains(item.Gravity) && p.Contains(item.SpeedBooster))
}

// CanAccessMiseryMirePortal covers the Lower Norfair to Misery Mire link.
func (p *Progression) CanAccessMiseryMirePortal(hard bool) bool {
	base := p.Card(item.CardNorfairL2) && p.Card(item.CardLowerNorfairL1) &&
		p.Contains(item.Super) && p.CanUsePowerBombs()
	if !hard {
		return base && p.Contains(item.Varia) && p.Contains(item.Gravity) && p.Contains(item.SpaceJump)
	}
	return base && (p.Contains(item.Varia) || p.HasEnergyReserves(6)) &&
		(p.CanFly() || p.Contains(item.HiJump) || p.Contains(item.SpeedBooster)) &&
		(p.Contains(item.Gravity) || p.Contains(item.HiJump))
}
