package world

import (
	"smz3/pkg/engine/item"
	"smz3/pkg/engine/progression"
	"smz3/pkg/game/logic"
)

// FillRule decides whether an item may be placed somewhere.
type FillRule func(t item.Type, p *progression.Progression) bool

// Location is one item slot. ID is unique across the whole world.
type Location struct {
	ID      int
	Name    string
	Region  *Region
	Vanilla item.Type

	access    logic.Requirement
	relevance logic.Requirement
	allow     FillRule

	// Item is item.Nothing until the location has been filled.
	Item    item.Type
	Cleared bool
}

// Relevant sets the weaker predicate used by hints to break boss-reward
// circularity. Without one, relevance equals access.
func (l *Location) Relevant(v logic.Variants) *Location {
	l.relevance = v.Resolve(l.Region.level())
	return l
}

// Allow restricts which items the location accepts on top of its region's rule.
func (l *Location) Allow(rule FillRule) *Location {
	l.allow = rule
	return l
}

// Access evaluates the location's own formula, not the region entrance.
func (l *Location) Access(s logic.State) bool {
	return l.access(s)
}

// IsRelevant evaluates the relevance formula.
func (l *Location) IsRelevant(s logic.State) bool {
	if l.relevance != nil {
		return l.relevance(s)
	}
	return l.access(s)
}

// Filled reports whether an item has been assigned.
func (l *Location) Filled() bool {
	return l.Item != item.Nothing
}

// CanFill reports whether t may be placed here given the current progression.
func (l *Location) CanFill(t item.Type, p *progression.Progression) bool {
	if l.Filled() {
		return false
	}
	if l.allow != nil && !l.allow(t, p) {
		return false
	}
	return l.Region.CanFill(t, p)
}

// Place assigns t to the location.
func (l *Location) Place(t item.Type) {
	l.Item = t
}

func (l *Location) String() string {
	return l.Name
}
