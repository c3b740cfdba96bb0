package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/sounding-etl/internal/domain"
	"github.com/couchcryptid/sounding-etl/internal/observability"
)

// Extractor reads the raw inputs of one sounding.
type Extractor interface {
	Extract(ctx context.Context) (domain.Sounding, error)
}

// Transformer computes a profile from a raw sounding.
type Transformer interface {
	Transform(ctx context.Context, s domain.Sounding) (domain.Profile, error)
}

// Loader delivers a computed profile to a destination.
type Loader interface {
	Name() string
	Load(ctx context.Context, p domain.Profile) error
}

// Pipeline orchestrates one extract-compute-load cycle.
type Pipeline struct {
	extractor   Extractor
	transformer Transformer
	loaders     []Loader
	logger      *slog.Logger
	metrics     *observability.Metrics
	clock       clockwork.Clock
}

// New creates a Pipeline with the given stages and observability.
func New(e Extractor, t Transformer, loaders []Loader, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loaders:     loaders,
		logger:      logger,
		metrics:     metrics,
		clock:       clockwork.NewRealClock(),
	}
}

// WithClock replaces the clock used to time cycles.
func (p *Pipeline) WithClock(c clockwork.Clock) *Pipeline {
	p.clock = c
	return p
}

// Run executes a single cycle. Every loader runs even when an earlier one
// fails; their errors are returned joined. The computed profile is returned
// whenever the transform succeeded.
func (p *Pipeline) Run(ctx context.Context) (domain.Profile, error) {
	start := p.clock.Now()

	raw, err := p.extractor.Extract(ctx)
	if err != nil {
		p.logger.Error("extract sounding failed", "error", err)
		p.metrics.Cycles.WithLabelValues("extract_error").Inc()
		return domain.Profile{}, fmt.Errorf("extract sounding: %w", err)
	}
	p.metrics.FixesLoaded.Add(float64(len(raw.Fixes)))
	p.metrics.ReadingsLoaded.Add(float64(len(raw.Readings)))
	p.logger.Debug("sounding extracted",
		"source", raw.Source,
		"fixes", len(raw.Fixes),
		"readings", len(raw.Readings),
		"surface_seed", raw.Surface != nil,
	)

	profile, err := p.transformer.Transform(ctx, raw)
	if err != nil {
		p.logger.Error("compute profile failed", "error", err, "source", raw.Source)
		p.metrics.Cycles.WithLabelValues("transform_error").Inc()
		return domain.Profile{}, fmt.Errorf("compute profile: %w", err)
	}
	p.metrics.UnbracketedLevels.Set(float64(profile.Unbracketed))
	p.metrics.TempZonesFilled.Set(float64(filledZones(profile)))
	if profile.Unbracketed > 0 {
		p.logger.Warn("levels outside observed wind zones",
			"source", profile.Source,
			"unbracketed", profile.Unbracketed,
		)
	}

	if err := p.load(ctx, profile); err != nil {
		p.metrics.Cycles.WithLabelValues("load_error").Inc()
		p.metrics.CycleDuration.Observe(p.clock.Since(start).Seconds())
		return profile, err
	}

	p.metrics.Cycles.WithLabelValues("success").Inc()
	p.metrics.CycleDuration.Observe(p.clock.Since(start).Seconds())
	p.logger.Info("sounding processed",
		"source", profile.Source,
		"positions", len(profile.Positions),
		"readings", len(profile.Readings),
		"loaders", len(p.loaders),
	)
	return profile, nil
}

func (p *Pipeline) load(ctx context.Context, profile domain.Profile) error {
	var errs []error
	for _, l := range p.loaders {
		if err := l.Load(ctx, profile); err != nil {
			p.logger.Error("load profile failed", "loader", l.Name(), "error", err)
			p.metrics.Loads.WithLabelValues(l.Name(), "error").Inc()
			errs = append(errs, fmt.Errorf("%s: %w", l.Name(), err))
			continue
		}
		p.metrics.Loads.WithLabelValues(l.Name(), "success").Inc()
	}
	return errors.Join(errs...)
}

// filledZones counts temperature zones that received at least one reading.
func filledZones(profile domain.Profile) int {
	seen := make(map[int]struct{})
	for _, r := range profile.Readings {
		if r.Group >= 1 && r.Group <= len(profile.TempZones) {
			seen[r.Group] = struct{}{}
		}
	}
	return len(seen)
}
