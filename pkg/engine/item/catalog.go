package item

import "strings"

// DungeonID names a Zelda dungeon that owns dungeon-specific items.
type DungeonID int

const (
	NoDungeon DungeonID = iota
	HyruleCastle
	CastleTower
	EasternPalace
	DesertPalace
	TowerOfHera
	PalaceOfDarkness
	IcePalace
	MiseryMire
	TurtleRock
	GanonsTower
)

var dungeonNames = map[DungeonID]string{
	NoDungeon:        "None",
	HyruleCastle:     "HyruleCastle",
	CastleTower:      "CastleTower",
	EasternPalace:    "EasternPalace",
	DesertPalace:     "DesertPalace",
	TowerOfHera:      "TowerOfHera",
	PalaceOfDarkness: "PalaceOfDarkness",
	IcePalace:        "IcePalace",
	MiseryMire:       "MiseryMire",
	TurtleRock:       "TurtleRock",
	GanonsTower:      "GanonsTower",
}

func (d DungeonID) String() string {
	return dungeonNames[d]
}

type info struct {
	name     string
	game     Game
	category Category
	dungeon  DungeonID
	bigKey   bool
	smallKey bool
}

const (
	prog  = Progression
	stack = Stackable
	junk  = Junk
)

func sm(name string, c Category) info { return info{name: name, game: SuperMetroid, category: c} }
func z3(name string, c Category) info { return info{name: name, game: Zelda, category: c} }

func card(name string) info {
	return info{name: name, game: SuperMetroid, category: Keycard | Progression}
}

func key(name string, d DungeonID) info {
	return info{name: name, game: Zelda, category: Dungeon | Progression | Stackable, dungeon: d, smallKey: true}
}

func bigKey(name string, d DungeonID) info {
	return info{name: name, game: Zelda, category: Dungeon | Progression, dungeon: d, bigKey: true}
}

func dungeonJunk(name string, d DungeonID) info {
	return info{name: name, game: Zelda, category: Dungeon, dungeon: d}
}

var catalog = [NumTypes]info{
	Nothing: {name: "Nothing", category: Junk},

	Missile:      sm("Missile", prog|stack),
	Super:        sm("Super", prog|stack),
	PowerBomb:    sm("PowerBomb", prog|stack),
	ETank:        sm("ETank", prog|stack),
	ReserveTank:  sm("ReserveTank", prog|stack),
	Morph:        sm("Morph", prog),
	Bombs:        sm("Bombs", prog),
	Charge:       sm("Charge", prog),
	Ice:          sm("Ice", prog),
	HiJump:       sm("HiJump", prog),
	SpeedBooster: sm("SpeedBooster", prog),
	Wave:         sm("Wave", prog),
	Spazer:       sm("Spazer", prog),
	SpringBall:   sm("SpringBall", prog),
	Varia:        sm("Varia", prog),
	Plasma:       sm("Plasma", prog),
	Grapple:      sm("Grapple", prog),
	Gravity:      sm("Gravity", prog),
	XRay:         sm("XRay", prog),
	SpaceJump:    sm("SpaceJump", prog),
	ScrewAttack:  sm("ScrewAttack", prog),

	CardCrateriaL1:       card("CardCrateriaL1"),
	CardCrateriaL2:       card("CardCrateriaL2"),
	CardCrateriaBoss:     card("CardCrateriaBoss"),
	CardBrinstarL1:       card("CardBrinstarL1"),
	CardBrinstarL2:       card("CardBrinstarL2"),
	CardBrinstarBoss:     card("CardBrinstarBoss"),
	CardNorfairL1:        card("CardNorfairL1"),
	CardNorfairL2:        card("CardNorfairL2"),
	CardNorfairBoss:      card("CardNorfairBoss"),
	CardMaridiaL1:        card("CardMaridiaL1"),
	CardMaridiaL2:        card("CardMaridiaL2"),
	CardMaridiaBoss:      card("CardMaridiaBoss"),
	CardWreckedShipL1:    card("CardWreckedShipL1"),
	CardWreckedShipBoss:  card("CardWreckedShipBoss"),
	CardLowerNorfairL1:   card("CardLowerNorfairL1"),
	CardLowerNorfairBoss: card("CardLowerNorfairBoss"),

	ProgressiveSword:   z3("ProgressiveSword", prog|stack),
	ProgressiveShield:  z3("ProgressiveShield", junk|stack),
	ProgressiveTunic:   z3("ProgressiveTunic", junk|stack),
	ProgressiveGlove:   z3("ProgressiveGlove", prog|stack),
	Bow:                z3("Bow", prog),
	SilverArrows:       z3("SilverArrows", prog),
	Hookshot:           z3("Hookshot", prog),
	Mushroom:           z3("Mushroom", prog),
	Powder:             z3("Powder", prog),
	Firerod:            z3("Firerod", prog),
	Icerod:             z3("Icerod", prog),
	Bombos:             z3("Bombos", prog|MedallionItem),
	Ether:              z3("Ether", prog|MedallionItem),
	Quake:              z3("Quake", prog|MedallionItem),
	Lamp:               z3("Lamp", prog),
	Hammer:             z3("Hammer", prog),
	Shovel:             z3("Shovel", prog),
	Flute:              z3("Flute", prog),
	Bugnet:             z3("Bugnet", prog),
	Book:               z3("Book", prog),
	Bottle:             z3("Bottle", prog|stack),
	Somaria:            z3("Somaria", prog),
	Byrna:              z3("Byrna", prog),
	Cape:               z3("Cape", prog),
	Mirror:             z3("Mirror", prog),
	Boots:              z3("Boots", prog),
	Flippers:           z3("Flippers", prog),
	MoonPearl:          z3("MoonPearl", prog),
	HalfMagic:          z3("HalfMagic", prog),
	HeartPiece:         z3("HeartPiece", junk|stack),
	HeartContainer:     z3("HeartContainer", junk|stack),
	ThreeBombs:         z3("ThreeBombs", junk|stack),
	TenArrows:          z3("TenArrows", junk|stack),
	TwentyRupees:       z3("TwentyRupees", junk|stack),
	FiftyRupees:        z3("FiftyRupees", junk|stack),
	OneHundredRupees:   z3("OneHundredRupees", junk|stack),
	ThreeHundredRupees: z3("ThreeHundredRupees", junk|stack),

	KeyHC:     key("KeyHC", HyruleCastle),
	MapHC:     dungeonJunk("MapHC", HyruleCastle),
	KeyCT:     key("KeyCT", CastleTower),
	BigKeyEP:  bigKey("BigKeyEP", EasternPalace),
	MapEP:     dungeonJunk("MapEP", EasternPalace),
	CompassEP: dungeonJunk("CompassEP", EasternPalace),
	KeyDP:     key("KeyDP", DesertPalace),
	BigKeyDP:  bigKey("BigKeyDP", DesertPalace),
	MapDP:     dungeonJunk("MapDP", DesertPalace),
	CompassDP: dungeonJunk("CompassDP", DesertPalace),
	KeyTH:     key("KeyTH", TowerOfHera),
	BigKeyTH:  bigKey("BigKeyTH", TowerOfHera),
	MapTH:     dungeonJunk("MapTH", TowerOfHera),
	CompassTH: dungeonJunk("CompassTH", TowerOfHera),
	KeyPD:     key("KeyPD", PalaceOfDarkness),
	BigKeyPD:  bigKey("BigKeyPD", PalaceOfDarkness),
	MapPD:     dungeonJunk("MapPD", PalaceOfDarkness),
	CompassPD: dungeonJunk("CompassPD", PalaceOfDarkness),
	KeyIP:     key("KeyIP", IcePalace),
	BigKeyIP:  bigKey("BigKeyIP", IcePalace),
	MapIP:     dungeonJunk("MapIP", IcePalace),
	CompassIP: dungeonJunk("CompassIP", IcePalace),
	KeyMM:     key("KeyMM", MiseryMire),
	BigKeyMM:  bigKey("BigKeyMM", MiseryMire),
	MapMM:     dungeonJunk("MapMM", MiseryMire),
	CompassMM: dungeonJunk("CompassMM", MiseryMire),
	KeyTR:     key("KeyTR", TurtleRock),
	BigKeyTR:  bigKey("BigKeyTR", TurtleRock),
	MapTR:     dungeonJunk("MapTR", TurtleRock),
	CompassTR: dungeonJunk("CompassTR", TurtleRock),
	KeyGT:     key("KeyGT", GanonsTower),
	BigKeyGT:  bigKey("BigKeyGT", GanonsTower),
	MapGT:     dungeonJunk("MapGT", GanonsTower),
	CompassGT: dungeonJunk("CompassGT", GanonsTower),
}

var byName = func() map[string]Type {
	m := make(map[string]Type, NumTypes)
	for t := Nothing; t < NumTypes; t++ {
		m[strings.ToLower(catalog[t].name)] = t
	}
	return m
}()
