// Package progression implements the accumulator of owned items, rewards and
// defeated bosses that every access formula is evaluated against.
package progression

import (
	"github.com/zyedidia/generic/mapset"

	"smz3/pkg/engine/config"
	"smz3/pkg/engine/item"
)

// Progression is a multiset of owned items plus reward and boss state.
// It only grows; speculative probes work on a Clone.
type Progression struct {
	counts  [item.NumTypes]int
	rewards [item.NumRewards]int
	bosses  mapset.Set[item.Boss]
	cfg     *config.Config
}

// New creates an empty Progression bound to cfg. A nil cfg means defaults.
func New(cfg *config.Config) *Progression {
	if cfg == nil {
		d := config.Default()
		cfg = &d
	}
	return &Progression{
		bosses: mapset.New[item.Boss](),
		cfg:    cfg,
	}
}

// Of creates a Progression holding the given items.
func Of(cfg *config.Config, types ...item.Type) *Progression {
	p := New(cfg)
	p.Add(types...)
	return p
}

// Config returns the settings the Progression was created with.
func (p *Progression) Config() *config.Config {
	return p.cfg
}

// Add records items. Non-stackable items saturate at one.
func (p *Progression) Add(types ...item.Type) {
	for _, t := range types {
		if !t.Valid() {
			continue
		}
		if t.Is(item.Stackable) || p.counts[t] == 0 {
			p.counts[t]++
		}
	}
}

// Contains reports whether at least one of t is owned.
func (p *Progression) Contains(t item.Type) bool {
	return p.counts[t] > 0
}

// Count returns how many of t are owned.
func (p *Progression) Count(t item.Type) int {
	return p.counts[t]
}

// AddReward records an obtained dungeon reward.
func (p *Progression) AddReward(r item.Reward) {
	if r != item.NoReward {
		p.rewards[r]++
	}
}

// RewardCount returns the number of obtained rewards of the given kinds.
func (p *Progression) RewardCount(kinds ...item.Reward) int {
	n := 0
	for _, k := range kinds {
		n += p.rewards[k]
	}
	return n
}

// AddBoss records a defeated boss.
func (p *Progression) AddBoss(b item.Boss) {
	p.bosses.Put(b)
}

// Defeated reports whether the boss has been recorded as defeated.
func (p *Progression) Defeated(b item.Boss) bool {
	return p.bosses.Has(b)
}

// Clone returns an independent copy sharing only the immutable Config.
func (p *Progression) Clone() *Progression {
	c := &Progression{
		counts:  p.counts,
		rewards: p.rewards,
		bosses:  mapset.New[item.Boss](),
		cfg:     p.cfg,
	}
	p.bosses.Each(func(b item.Boss) {
		c.bosses.Put(b)
	})
	return c
}

// Merge adds everything owned by o.
func (p *Progression) Merge(o *Progression) {
	for t := range o.counts {
		for i := 0; i < o.counts[t]; i++ {
			p.Add(item.Type(t))
		}
	}
	for r := range o.rewards {
		p.rewards[r] += o.rewards[r]
	}
	o.bosses.Each(func(b item.Boss) {
		p.bosses.Put(b)
	})
}

// Items lists owned items in catalogue order, repeated per count.
func (p *Progression) Items() []item.Type {
	var out []item.Type
	for t := range p.counts {
		for i := 0; i < p.counts[t]; i++ {
			out = append(out, item.Type(t))
		}
	}
	return out
}

// Size is the total number of owned items.
func (p *Progression) Size() int {
	n := 0
	for _, c := range p.counts {
		n += c
	}
	return n
}

// Card reports whether a keycard door can be opened. Without Super Metroid
// keysanity the doors are open and every card query is true.
func (p *Progression) Card(t item.Type) bool {
	if !p.cfg.SMKeysanity() {
		return true
	}
	return p.Contains(t)
}
