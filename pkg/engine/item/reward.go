package item

import "fmt"

// Reward is the prize handed out for completing a Zelda dungeon.
type Reward int

const (
	NoReward Reward = iota
	PendantGreen
	PendantNonGreen
	Crystal
	CrystalRed
)

// NumRewards is the number of reward kinds, NoReward included.
const NumRewards = 5

var rewardNames = [NumRewards]string{"None", "PendantGreen", "PendantNonGreen", "Crystal", "CrystalRed"}

func (r Reward) String() string {
	if r < 0 || int(r) >= NumRewards {
		return fmt.Sprintf("Reward(%d)", int(r))
	}
	return rewardNames[r]
}

// IsPendant reports whether the reward counts towards the three pendants.
func (r Reward) IsPendant() bool {
	return r == PendantGreen || r == PendantNonGreen
}

// IsCrystal reports whether the reward counts towards the seven crystals.
func (r Reward) IsCrystal() bool {
	return r == Crystal || r == CrystalRed
}

// Pendants and Crystals list the reward kinds a count query may ask for.
var (
	Pendants = []Reward{PendantGreen, PendantNonGreen}
	Crystals = []Reward{Crystal, CrystalRed}
)

// Boss is a defeatable boss that may gate items or the goal.
type Boss int

const (
	NoBoss Boss = iota
	Kraid
	Phantoon
	Draygon
	Ridley
	Agahnim
	Agahnim2
	Armos
	Lanmolas
	Moldorm
	Helmasaur
	Kholdstare
	Vitreous
	Trinexx
)

// NumBosses is the number of boss kinds, NoBoss included.
const NumBosses = 14

var bossNames = [NumBosses]string{
	"None", "Kraid", "Phantoon", "Draygon", "Ridley", "Agahnim", "Agahnim2",
	"Armos", "Lanmolas", "Moldorm", "Helmasaur", "Kholdstare", "Vitreous", "Trinexx",
}

func (b Boss) String() string {
	if b < 0 || int(b) >= NumBosses {
		return fmt.Sprintf("Boss(%d)", int(b))
	}
	return bossNames[b]
}

// Valid reports whether b names a real boss.
func (b Boss) Valid() bool {
	return b > NoBoss && int(b) < NumBosses
}

// GoldenFour are the Super Metroid bosses that guard the way into Tourian.
var GoldenFour = []Boss{Kraid, Phantoon, Draygon, Ridley}
