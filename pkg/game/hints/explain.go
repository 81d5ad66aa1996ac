package hints

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	"smz3/pkg/engine/progression"
	"smz3/pkg/game/world"
)

// Explain renders a one line, translated answer to "why can't I get l?".
func Explain(ctx context.Context, w *world.World, l *world.Location, p *progression.Progression, mode Mode) (string, error) {
	combos, err := Missing(ctx, w, l, p, mode)
	switch {
	case errors.Is(err, ErrBeyondSearchDepth):
		return fmt.Sprintf(gotext.Get("HINT_BEYOND_SEARCH"), l.Name), nil
	case err != nil:
		return "", err
	case len(combos) == 0:
		return fmt.Sprintf(gotext.Get("HINT_REACHABLE"), l.Name), nil
	}

	options := make([]string, len(combos))
	for i, c := range combos {
		options[i] = c.String()
	}
	return fmt.Sprintf(gotext.Get("HINT_NEEDS"), l.Name, strings.Join(options, gotext.Get("HINT_OR"))), nil
}

// String joins the display names of the combination's items.
func (c Combination) String() string {
	names := make([]string, len(c))
	for i, t := range c {
		names[i] = t.DisplayName()
	}
	return strings.Join(names, " + ")
}
