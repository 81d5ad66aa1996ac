package world

import (
	"github.com/leonelquinteros/gotext"

	"smz3/pkg/engine/item"
)

// Area is the coarse map grouping a region belongs to.
type Area int

const (
	Crateria Area = iota
	Brinstar
	Norfair
	WreckedShip
	Maridia
	Tourian
	LightWorld
	DeathMountain
	DarkWorld
	CastleArea
	LightDungeons
	DarkDungeons
)

// areaCount is the number of areas.
const areaCount = 12

// Game returns the game the area belongs to.
func (a Area) Game() item.Game {
	if a <= Tourian {
		return item.SuperMetroid
	}
	return item.Zelda
}

// Key returns the gettext message key for the area name.
func (a Area) Key() string {
	switch a {
	case Crateria:
		return "AREA_CRATERIA"
	case Brinstar:
		return "AREA_BRINSTAR"
	case Norfair:
		return "AREA_NORFAIR"
	case WreckedShip:
		return "AREA_WRECKED_SHIP"
	case Maridia:
		return "AREA_MARIDIA"
	case Tourian:
		return "AREA_TOURIAN"
	case LightWorld:
		return "AREA_LIGHT_WORLD"
	case DeathMountain:
		return "AREA_DEATH_MOUNTAIN"
	case DarkWorld:
		return "AREA_DARK_WORLD"
	case CastleArea:
		return "AREA_CASTLE"
	case LightDungeons:
		return "AREA_LIGHT_DUNGEONS"
	default:
		return "AREA_DARK_DUNGEONS"
	}
}

// String returns the translated area name. Uses gotext.Get with constant keys
// so vet can check them.
func (a Area) String() string {
	switch a {
	case Crateria:
		return gotext.Get("AREA_CRATERIA")
	case Brinstar:
		return gotext.Get("AREA_BRINSTAR")
	case Norfair:
		return gotext.Get("AREA_NORFAIR")
	case WreckedShip:
		return gotext.Get("AREA_WRECKED_SHIP")
	case Maridia:
		return gotext.Get("AREA_MARIDIA")
	case Tourian:
		return gotext.Get("AREA_TOURIAN")
	case LightWorld:
		return gotext.Get("AREA_LIGHT_WORLD")
	case DeathMountain:
		return gotext.Get("AREA_DEATH_MOUNTAIN")
	case DarkWorld:
		return gotext.Get("AREA_DARK_WORLD")
	case CastleArea:
		return gotext.Get("AREA_CASTLE")
	case LightDungeons:
		return gotext.Get("AREA_LIGHT_DUNGEONS")
	default:
		return gotext.Get("AREA_DARK_DUNGEONS")
	}
}

// Areas lists every area in declaration order.
func Areas() []Area {
	out := make([]Area, areaCount)
	for i := range out {
		out[i] = Area(i)
	}
	return out
}
