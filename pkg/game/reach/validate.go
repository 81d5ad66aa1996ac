package reach

import (
	"errors"
	"fmt"
	"strings"

	"smz3/pkg/game/world"
)

// LogicInconsistency reports locations that no Progression can reach under
// the world's Config, an unreachable goal, or strict-mode entrance cycles.
type LogicInconsistency struct {
	World       int
	Unreachable []string
	Cycles      []string
	Goal        bool
}

func (e *LogicInconsistency) Error() string {
	var parts []string
	if len(e.Unreachable) > 0 {
		parts = append(parts, fmt.Sprintf("%d unreachable locations: %s", len(e.Unreachable), strings.Join(e.Unreachable, ", ")))
	}
	if len(e.Cycles) > 0 {
		parts = append(parts, fmt.Sprintf("cyclic regions: %s", strings.Join(e.Cycles, ", ")))
	}
	if e.Goal {
		parts = append(parts, "goal cannot be met")
	}
	return fmt.Sprintf("world %d: logic inconsistency: %s", e.World, strings.Join(parts, "; "))
}

// IsLogicInconsistency reports whether err is or wraps a *LogicInconsistency.
func IsLogicInconsistency(err error) bool {
	var target *LogicInconsistency
	return errors.As(err, &target)
}

// Validate checks that with every pooled item owned each location is
// strictly reachable, the goal holds and no entrance chain is cyclic. It runs
// on a built world before any fill and returns nil or a *LogicInconsistency.
func Validate(w *world.World) error {
	all := Everything(w)
	s := w.Snapshot(all, true)

	e := &LogicInconsistency{World: w.ID}
	for _, l := range w.Placements() {
		if !s.Reachable(l) {
			e.Unreachable = append(e.Unreachable, l.Name)
		}
	}
	e.Goal = !w.Goal(s)
	e.Cycles = FindCycles(w, all)

	if len(e.Unreachable) == 0 && len(e.Cycles) == 0 && !e.Goal {
		return nil
	}
	return e
}
