// Package item defines the shared item catalogue for both games: item types,
// their category flags, and the dungeon rewards, bosses and medallions that
// progression logic refers to.
package item

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// Game identifies which half of the combined world an item or region belongs to.
type Game int

const (
	SuperMetroid Game = iota
	Zelda
)

// Other returns the other half of the combined world.
func (g Game) Other() Game {
	if g == SuperMetroid {
		return Zelda
	}
	return SuperMetroid
}

// String returns the short name of the game.
func (g Game) String() string {
	switch g {
	case SuperMetroid:
		return "SM"
	case Zelda:
		return "Z3"
	default:
		return fmt.Sprintf("Game(%d)", int(g))
	}
}

// Category is a bit set of item category flags.
type Category uint16

const (
	// Progression items unlock other locations.
	Progression Category = 1 << iota
	// Dungeon items are maps, compasses and keys bound to one dungeon.
	Dungeon
	// Keycard items open Super Metroid doors when keysanity is enabled.
	Keycard
	// Stackable items are counted rather than owned once.
	Stackable
	// MedallionItem marks items that double as dungeon entry requirements.
	MedallionItem
	// Junk items carry no logic weight.
	Junk
)

// Type is an enumerated item type.
type Type int

const (
	Nothing Type = iota

	// Super Metroid
	Missile
	Super
	PowerBomb
	ETank
	ReserveTank
	Morph
	Bombs
	Charge
	Ice
	HiJump
	SpeedBooster
	Wave
	Spazer
	SpringBall
	Varia
	Plasma
	Grapple
	Gravity
	XRay
	SpaceJump
	ScrewAttack

	// Super Metroid keycards
	CardCrateriaL1
	CardCrateriaL2
	CardCrateriaBoss
	CardBrinstarL1
	CardBrinstarL2
	CardBrinstarBoss
	CardNorfairL1
	CardNorfairL2
	CardNorfairBoss
	CardMaridiaL1
	CardMaridiaL2
	CardMaridiaBoss
	CardWreckedShipL1
	CardWreckedShipBoss
	CardLowerNorfairL1
	CardLowerNorfairBoss

	// A Link to the Past
	ProgressiveSword
	ProgressiveShield
	ProgressiveTunic
	ProgressiveGlove
	Bow
	SilverArrows
	Hookshot
	Mushroom
	Powder
	Firerod
	Icerod
	Bombos
	Ether
	Quake
	Lamp
	Hammer
	Shovel
	Flute
	Bugnet
	Book
	Bottle
	Somaria
	Byrna
	Cape
	Mirror
	Boots
	Flippers
	MoonPearl
	HalfMagic
	HeartPiece
	HeartContainer
	ThreeBombs
	TenArrows
	TwentyRupees
	FiftyRupees
	OneHundredRupees
	ThreeHundredRupees

	// A Link to the Past dungeon items
	KeyHC
	MapHC
	KeyCT
	BigKeyEP
	MapEP
	CompassEP
	KeyDP
	BigKeyDP
	MapDP
	CompassDP
	KeyTH
	BigKeyTH
	MapTH
	CompassTH
	KeyPD
	BigKeyPD
	MapPD
	CompassPD
	KeyIP
	BigKeyIP
	MapIP
	CompassIP
	KeyMM
	BigKeyMM
	MapMM
	CompassMM
	KeyTR
	BigKeyTR
	MapTR
	CompassTR
	KeyGT
	BigKeyGT
	MapGT
	CompassGT

	// NumTypes is the number of item types, Nothing included.
	NumTypes
)

// Is reports whether the item carries every flag in c.
func (t Type) Is(c Category) bool {
	return catalog[t].category&c == c
}

// Category returns the full flag set of the item.
func (t Type) Category() Category {
	return catalog[t].category
}

// Game returns the game the item belongs to.
func (t Type) Game() Game {
	return catalog[t].game
}

// Dungeon returns the dungeon an item is bound to, or NoDungeon.
func (t Type) Dungeon() DungeonID {
	return catalog[t].dungeon
}

// IsBigKey reports whether the item is a big key.
func (t Type) IsBigKey() bool {
	return catalog[t].bigKey
}

// IsSmallKey reports whether the item is a small dungeon key.
func (t Type) IsSmallKey() bool {
	return catalog[t].smallKey
}

// Valid reports whether t names a real item.
func (t Type) Valid() bool {
	return t > Nothing && t < NumTypes
}

// String returns the stable identifier used in configs, spoilers and hashes.
func (t Type) String() string {
	if t < Nothing || t >= NumTypes {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return catalog[t].name
}

// translate is indirected so vet does not treat catalogue keys as format strings.
var translate = gotext.Get

// DisplayName returns the translated, human readable name of the item.
func (t Type) DisplayName() string {
	if !t.Valid() {
		return t.String()
	}
	return translate("ITEM_" + strings.ToUpper(catalog[t].name))
}

// Parse resolves an item identifier (case-insensitive) to its Type.
func Parse(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if t, ok := byName[key]; ok {
		return t, nil
	}
	return Nothing, fmt.Errorf("unknown item %q", name)
}

// All returns every real item type in declaration order.
func All() []Type {
	types := make([]Type, 0, NumTypes-1)
	for t := Nothing + 1; t < NumTypes; t++ {
		types = append(types, t)
	}
	return types
}

// Medallions are the items that open medallion-sealed regions.
var Medallions = []Type{Bombos, Ether, Quake}
