package seed

import (
	"context"
	"errors"
	"fmt"
	"io"

	"smz3/pkg/engine/item"
	"smz3/pkg/engine/progression"
	"smz3/pkg/game/world"
)

// Patcher writes one world's assignment into a game image.
type Patcher interface {
	Patch(ctx context.Context, w WorldData) error
}

// Tracker observes a world and the items its player holds. It must treat
// both as read-only.
type Tracker interface {
	Update(w *world.World, p *progression.Progression, checked []*world.Location)
}

// Transport exchanges deltas with the other players of a multiworld game.
// Receive returns io.EOF once the session is over.
type Transport interface {
	Send(ctx context.Context, d Delta) error
	Receive(ctx context.Context) (Delta, error)
}

// Delta reports locations checked, items received and bosses defeated since
// the last delta, keyed by location id, item type and boss.
type Delta struct {
	World    int         `json:"world" yaml:"world"`
	Checked  []int       `json:"checked,omitempty" yaml:"checked,omitempty"`
	Received []item.Type `json:"received,omitempty" yaml:"received,omitempty"`
	Defeated []item.Boss `json:"defeated,omitempty" yaml:"defeated,omitempty"`
}

// ErrWrongWorld is returned for a delta addressed to another world.
var ErrWrongWorld = errors.New("seed: delta belongs to another world")

// Emit hands every world to p in world order.
func Emit(ctx context.Context, data *SeedData, p Patcher) error {
	for _, w := range data.Worlds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.Patch(ctx, w); err != nil {
			return fmt.Errorf("patch world %d: %w", w.ID, err)
		}
	}
	return nil
}

// ApplyDelta marks the checked locations cleared, adds the received items
// to p and records the defeated bosses. Beating a boss for the first time
// also awards the reward of every region it guards. Nothing is applied when
// the delta names an unknown location, item or boss.
func ApplyDelta(w *world.World, p *progression.Progression, d Delta) ([]*world.Location, error) {
	if d.World != w.ID {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrWrongWorld, d.World, w.ID)
	}
	checked := make([]*world.Location, 0, len(d.Checked))
	for _, id := range d.Checked {
		l := w.Location(id)
		if l == nil {
			return nil, fmt.Errorf("seed: unknown location %d", id)
		}
		checked = append(checked, l)
	}
	for _, t := range d.Received {
		if !t.Valid() {
			return nil, fmt.Errorf("seed: unknown item %d", int(t))
		}
	}
	for _, b := range d.Defeated {
		if !b.Valid() {
			return nil, fmt.Errorf("seed: unknown boss %d", int(b))
		}
	}

	staged := progression.New(p.Config())
	staged.Add(d.Received...)
	for _, b := range d.Defeated {
		if p.Defeated(b) || staged.Defeated(b) {
			continue
		}
		staged.AddBoss(b)
		for _, r := range w.BossRegions() {
			if r.Boss.Boss == b && r.Reward != nil {
				staged.AddReward(r.Reward.Reward)
			}
		}
	}
	p.Merge(staged)
	for _, l := range checked {
		l.Cleared = true
	}
	return checked, nil
}

// Follow applies deltas from t to p until the transport is drained or ctx
// ends, telling tr about every applied delta.
func Follow(ctx context.Context, w *world.World, p *progression.Progression, t Transport, tr Tracker) error {
	for {
		d, err := t.Receive(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		checked, err := ApplyDelta(w, p, d)
		if err != nil {
			return err
		}
		if tr != nil {
			tr.Update(w, p, checked)
		}
	}
}
