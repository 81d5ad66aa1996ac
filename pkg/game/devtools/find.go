package devtools

import (
	"strconv"
	"strings"

	"smz3/pkg/game/world"
)

// ContainsSubstring checks if s contains substr (case-insensitive)
func ContainsSubstring(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// FindLocations resolves a location query typed on the command line. A
// numeric query is a location id, an exact (case-insensitive) name wins
// over partial matches, and partial matches come back in id order.
func FindLocations(w *world.World, query string) []*world.Location {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	if id, err := strconv.Atoi(query); err == nil {
		if l := w.Location(id); l != nil {
			return []*world.Location{l}
		}
		return nil
	}

	var partial []*world.Location
	for _, l := range w.Placements() {
		if strings.EqualFold(l.Name, query) {
			return []*world.Location{l}
		}
		if ContainsSubstring(l.Name, query) {
			partial = append(partial, l)
		}
	}
	return partial
}
