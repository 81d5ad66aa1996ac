// Package fill implements assumed fill: items are placed tier by tier while
// assuming every not yet placed progression item is already owned, then the
// result is verified by a walkthrough from nothing. Failed attempts are
// discarded and retried on a fresh world.
package fill

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"smz3/pkg/game/world"
)

// Builder constructs a fresh, unfilled world. It is called once per attempt
// with that attempt's random source.
type Builder func(rng *rand.Rand) (*world.World, error)

// Stats summarises the attempts behind one Fill call.
type Stats struct {
	Attempts           int
	DeadEnds           int
	VerificationFailed int
}

// Filler runs attempts until one verifies or the attempt budget is spent.
type Filler struct {
	build       Builder
	log         *slog.Logger
	maxAttempts int
	world       int
	tracer      trace.Tracer
}

// Option configures a Filler.
type Option func(*Filler)

// WithLogger sets the logger. Retries are logged at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(f *Filler) {
		if l != nil {
			f.log = l
		}
	}
}

// WithMaxAttempts bounds the number of attempts. Values below one mean one.
func WithMaxAttempts(n int) Option {
	return func(f *Filler) {
		f.maxAttempts = max(n, 1)
	}
}

// WithWorldID tags logs and failures with the world being generated.
func WithWorldID(id int) Option {
	return func(f *Filler) {
		f.world = id
	}
}

// WithTracer records one span per attempt on t.
func WithTracer(t trace.Tracer) Option {
	return func(f *Filler) {
		if t != nil {
			f.tracer = t
		}
	}
}

// New creates a Filler around build.
func New(build Builder, opts ...Option) *Filler {
	f := &Filler{
		build:       build,
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxAttempts: 3,
		tracer:      otel.Tracer("smz3/fill"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fill returns a completely filled and verified world. Each attempt gets a
// sub-seed drawn from a source seeded with seed, so the same seed always
// yields the same sequence of attempts and the same result.
//
// Exhausting the attempts returns a *FatalGenerationFailure. A cancelled
// context or a Builder error is returned as is; nothing partial is returned.
func (f *Filler) Fill(ctx context.Context, seed int64) (*world.World, Stats, error) {
	var stats Stats
	master := rand.New(rand.NewSource(seed))
	var last Failure

	for n := 1; n <= f.maxAttempts; n++ {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		stats.Attempts = n
		rng := rand.New(rand.NewSource(master.Int63()))

		w, failure, err := f.try(ctx, rng, n)
		if err != nil {
			return nil, stats, err
		}
		if failure == nil {
			f.log.Info("world filled",
				slog.Int("world", f.world),
				slog.Int("attempt", n),
				slog.Int("locations", len(w.Locations)))
			return w, stats, nil
		}

		last = *failure
		switch failure.Reason {
		case DeadEnd:
			stats.DeadEnds++
		case VerificationFailed:
			stats.VerificationFailed++
		}
		f.log.Warn("fill attempt failed",
			slog.Int("world", f.world),
			slog.Int("attempt", n),
			slog.String("tier", failure.Tier.String()),
			slog.String("item", failure.Item.String()),
			slog.String("reason", string(failure.Reason)),
			slog.Int("pending", failure.Pending))
	}

	return nil, stats, &FatalGenerationFailure{
		Seed:     seed,
		World:    f.world,
		Attempts: f.maxAttempts,
		Last:     last,
	}
}

func (f *Filler) try(ctx context.Context, rng *rand.Rand, n int) (*world.World, *Failure, error) {
	ctx, span := f.tracer.Start(ctx, "fill.attempt", trace.WithAttributes(
		attribute.Int("world", f.world),
		attribute.Int("attempt", n),
	))
	defer span.End()

	w, err := f.build(rng)
	if err != nil {
		return nil, nil, fmt.Errorf("build world for attempt %d: %w", n, err)
	}
	failure, err := newAttempt(w, rng, n).run(ctx)
	if err != nil {
		return nil, nil, err
	}
	if failure != nil {
		span.SetAttributes(
			attribute.String("reason", string(failure.Reason)),
			attribute.String("tier", failure.Tier.String()))
	}
	return w, failure, nil
}
