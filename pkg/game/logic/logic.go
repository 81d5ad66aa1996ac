// Package logic provides the requirement predicates attached to regions and
// locations, and the per-difficulty selection of those predicates.
package logic

import (
	"fmt"

	"smz3/pkg/engine/config"
	"smz3/pkg/engine/item"
	"smz3/pkg/engine/progression"
)

// State is what a requirement may observe: the owned items and the
// reachability of other parts of the same world.
type State interface {
	Items() *progression.Progression
	CanEnter(region string) bool
	Defeated(b item.Boss) bool
	Rewards(kinds ...item.Reward) int
}

// Requirement is a pure predicate over State.
type Requirement func(State) bool

// Always is satisfied by any state.
func Always(State) bool { return true }

// Never is satisfied by no state.
func Never(State) bool { return false }

// All is satisfied when every requirement is.
func All(reqs ...Requirement) Requirement {
	return func(s State) bool {
		for _, r := range reqs {
			if !r(s) {
				return false
			}
		}
		return true
	}
}

// Any is satisfied when at least one requirement is.
func Any(reqs ...Requirement) Requirement {
	return func(s State) bool {
		for _, r := range reqs {
			if r(s) {
				return true
			}
		}
		return false
	}
}

// Items lifts a Progression query into a Requirement.
func Items(fn func(p *progression.Progression) bool) Requirement {
	return func(s State) bool {
		return fn(s.Items())
	}
}

// Has requires every listed item.
func Has(types ...item.Type) Requirement {
	return func(s State) bool {
		p := s.Items()
		for _, t := range types {
			if !p.Contains(t) {
				return false
			}
		}
		return true
	}
}

// Enter requires that the named region can be entered.
func Enter(region string) Requirement {
	return func(s State) bool {
		return s.CanEnter(region)
	}
}

// Beat requires that the boss is defeated or defeatable.
func Beat(b item.Boss) Requirement {
	return func(s State) bool {
		return s.Defeated(b)
	}
}

// RewardsAtLeast requires n obtainable rewards of the given kinds.
func RewardsAtLeast(n int, kinds ...item.Reward) Requirement {
	return func(s State) bool {
		return n <= 0 || s.Rewards(kinds...) >= n
	}
}

// Variants maps a logic level to the formula that applies at that level.
type Variants map[config.LogicLevel]Requirement

// ByLevel is shorthand for the common normal/hard pair.
func ByLevel(normal, hard Requirement) Variants {
	return Variants{config.Normal: normal, config.Hard: hard}
}

// Resolve picks the formula for level, falling back to the normal formula.
// A Variants without a normal formula is a construction bug.
func (v Variants) Resolve(level config.LogicLevel) Requirement {
	if r, ok := v[level]; ok && r != nil {
		return r
	}
	if r, ok := v[config.Normal]; ok && r != nil {
		return r
	}
	panic(fmt.Sprintf("logic: no formula for %q and no normal fallback", level))
}
