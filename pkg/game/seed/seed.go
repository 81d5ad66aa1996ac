// Package seed turns a Config into SeedData: one filled and verified world
// per player, the reward and medallion rolls, the playthrough and a content
// hash that lets two machines confirm they generated the same thing.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"smz3/pkg/engine/config"
	"smz3/pkg/game/fill"
	"smz3/pkg/game/reach"
	"smz3/pkg/game/regions"
	"smz3/pkg/game/world"
)

// SeedData is everything a consumer needs from one generation request.
type SeedData struct {
	GUID     string        `yaml:"guid" json:"guid"`
	Seed     int64         `yaml:"seed" json:"seed"`
	SeedText string        `yaml:"seedText" json:"seedText"`
	Config   config.Config `yaml:"config" json:"config"`
	Worlds   []WorldData   `yaml:"worlds" json:"worlds"`
	// Hash combines the hashes of every world in id order.
	Hash string `yaml:"hash" json:"hash"`
}

// WorldData is the read-only result for one player.
type WorldData struct {
	ID         int               `yaml:"id" json:"id"`
	Player     string            `yaml:"player" json:"player"`
	Placements []Placement       `yaml:"placements" json:"placements"`
	Rewards    map[string]string `yaml:"rewards" json:"rewards"`
	Bosses     map[string]string `yaml:"bosses" json:"bosses"`
	Medallions map[string]string `yaml:"medallions" json:"medallions"`
	// Playthrough lists the spheres of a walkthrough from nothing.
	Playthrough [][]Placement `yaml:"playthrough" json:"playthrough"`
	Attempts    int           `yaml:"attempts" json:"attempts"`
	Hash        string        `yaml:"hash" json:"hash"`

	world *world.World
}

// World returns the filled world graph. It is nil for decoded SeedData.
func (d *WorldData) World() *world.World {
	return d.world
}

// Placement is one location and the item placed there.
type Placement struct {
	ID       int    `yaml:"id" json:"id"`
	Location string `yaml:"location" json:"location"`
	Region   string `yaml:"region" json:"region"`
	Item     string `yaml:"item" json:"item"`
}

func placementOf(l *world.Location) Placement {
	return Placement{ID: l.ID, Location: l.Name, Region: l.Region.Name, Item: l.Item.String()}
}

// Generator runs generation requests.
type Generator struct {
	log     *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger handed down to every Filler.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// WithMetrics records attempts, failures and durations on m.
func WithMetrics(m *Metrics) Option {
	return func(g *Generator) {
		g.metrics = m
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(g *Generator) {
		if t != nil {
			g.tracer = t
		}
	}
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: otel.Tracer("smz3/seed"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate validates cfg and fills one world per player. Worlds are filled
// concurrently, each with a seed drawn in player order from the request
// seed, so the result does not depend on scheduling.
//
// A *config.ConfigurationError is returned before any work starts. When any
// world runs out of attempts the error is that world's
// *fill.FatalGenerationFailure and no SeedData is returned.
func (g *Generator) Generate(ctx context.Context, cfg config.Config) (*SeedData, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	value, text, err := cfg.SeedValue()
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	ctx, span := g.tracer.Start(ctx, "seed.Generate", trace.WithAttributes(
		attribute.String("seed", text),
		attribute.Bool("multiworld", cfg.Multiworld),
	))
	defer span.End()
	started := time.Now()

	players := cfg.PlayerNames()
	master := rand.New(rand.NewSource(value))
	seeds := make([]int64, len(players))
	for i := range seeds {
		seeds[i] = master.Int63()
	}

	worlds := make([]WorldData, len(players))
	group, gctx := errgroup.WithContext(ctx)
	for i, player := range players {
		group.Go(func() error {
			data, err := g.world(gctx, cfg, i, player, seeds[i])
			if err != nil {
				return err
			}
			worlds[i] = data
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		outcome := "error"
		if fill.IsFatal(err) {
			outcome = "fatal"
		}
		g.metrics.observeOutcome(outcome, time.Since(started).Seconds())
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		return nil, err
	}

	data := &SeedData{
		GUID:     uuid.NewString(),
		Seed:     value,
		SeedText: text,
		Config:   cfg,
		Worlds:   worlds,
	}
	data.Hash = CombinedHash(worlds)
	g.metrics.observeOutcome("ok", time.Since(started).Seconds())
	span.SetAttributes(attribute.String("hash", data.Hash))
	g.log.Info("seed generated",
		slog.String("seed", text),
		slog.Int("worlds", len(worlds)),
		slog.String("hash", data.Hash),
		slog.Duration("elapsed", time.Since(started)))
	return data, nil
}

func (g *Generator) world(ctx context.Context, cfg config.Config, id int, player string, seed int64) (WorldData, error) {
	ctx, span := g.tracer.Start(ctx, "seed.world", trace.WithAttributes(
		attribute.Int("world", id),
		attribute.String("player", player),
	))
	defer span.End()

	// Every attempt builds from its own copy so no two worlds share a Config.
	build := func(rng *rand.Rand) (*world.World, error) {
		own := cfg
		own.Players = append([]string(nil), cfg.Players...)
		return regions.Build(&own, id, player, rng)
	}
	filler := fill.New(build,
		fill.WithLogger(g.log),
		fill.WithMaxAttempts(cfg.MaxAttempts),
		fill.WithWorldID(id),
		fill.WithTracer(g.tracer))

	w, stats, err := filler.Fill(ctx, seed)
	g.metrics.observeFill(stats)
	span.SetAttributes(attribute.Int("attempts", stats.Attempts))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fill failed")
		var fatal *fill.FatalGenerationFailure
		if errors.As(err, &fatal) {
			return WorldData{}, err
		}
		return WorldData{}, fmt.Errorf("world %d (%s): %w", id, player, err)
	}

	data := Describe(w)
	data.Attempts = stats.Attempts
	return data, nil
}

// Describe extracts the read-only view of a filled world.
func Describe(w *world.World) WorldData {
	data := WorldData{
		ID:         w.ID,
		Player:     w.Player,
		Rewards:    map[string]string{},
		Bosses:     map[string]string{},
		Medallions: map[string]string{},
		world:      w,
	}
	for _, l := range w.Placements() {
		data.Placements = append(data.Placements, placementOf(l))
	}
	for _, r := range w.RewardRegions() {
		data.Rewards[r.Name] = r.Reward.Reward.String()
	}
	for _, r := range w.BossRegions() {
		data.Bosses[r.Name] = r.Boss.Boss.String()
	}
	for _, r := range w.MedallionRegions() {
		data.Medallions[r.Name] = r.Medallion.Medallion.String()
	}
	for _, sphere := range reach.Collect(w, w.NewProgression()).Spheres {
		out := make([]Placement, len(sphere))
		for i, l := range sphere {
			out[i] = placementOf(l)
		}
		data.Playthrough = append(data.Playthrough, out)
	}
	data.Hash = Hash(w)
	return data
}
