package fill

import (
	"errors"
	"fmt"

	"smz3/pkg/engine/item"
)

// Tier orders the pools; each tier is fully placed before the next starts.
type Tier int

const (
	TierProgression Tier = iota + 1
	TierDungeon
	TierJunk
)

func (t Tier) String() string {
	switch t {
	case TierProgression:
		return "progression"
	case TierDungeon:
		return "dungeon"
	case TierJunk:
		return "junk"
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// Reason tells why an attempt was discarded.
type Reason string

const (
	DeadEnd            Reason = "no eligible location"
	VerificationFailed Reason = "walkthrough did not complete"
)

// Failure is the retryable outcome of one attempt. It is a plain value the
// retry loop inspects; it never reaches callers except inside a
// FatalGenerationFailure.
type Failure struct {
	Attempt int
	Tier    Tier
	Item    item.Type
	Reason  Reason
	// Pending counts the items of every tier that were still unplaced.
	Pending int
	// Unfilled counts the locations that were still empty.
	Unfilled int
	// Collected is the number of locations the verification walkthrough
	// reached, when the failure is a verification failure.
	Collected int
}

func (f Failure) String() string {
	if f.Reason == VerificationFailed {
		return fmt.Sprintf("attempt %d: %s (collected %d)", f.Attempt, f.Reason, f.Collected)
	}
	return fmt.Sprintf("attempt %d: %s tier: %s for %s (%d items pending, %d locations unfilled)",
		f.Attempt, f.Tier, f.Reason, f.Item, f.Pending, f.Unfilled)
}

// FatalGenerationFailure is returned when every attempt failed. Callers
// should change settings or the seed; it does not indicate a bug.
type FatalGenerationFailure struct {
	Seed     int64
	World    int
	Attempts int
	Last     Failure
}

func (e *FatalGenerationFailure) Error() string {
	return fmt.Sprintf("world %d: no valid placement for seed %d after %d attempts; last %s",
		e.World, e.Seed, e.Attempts, e.Last)
}

// IsFatal reports whether err is or wraps a *FatalGenerationFailure.
func IsFatal(err error) bool {
	var target *FatalGenerationFailure
	return errors.As(err, &target)
}
