package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/sounding-etl/internal/domain"
)

// SoundingTransformer implements Transformer by running the full domain
// computation with fixed calibration constants and the session's level templates.
type SoundingTransformer struct {
	session   *Session
	constants domain.UserConstants
	logger    *slog.Logger
}

// NewTransformer creates a SoundingTransformer. A nil session uses a fresh
// one with the standard report heights.
func NewTransformer(session *Session, constants domain.UserConstants, logger *slog.Logger) *SoundingTransformer {
	if session == nil {
		session = NewSession()
	}
	return &SoundingTransformer{
		session:   session,
		constants: constants,
		logger:    logger,
	}
}

func (t *SoundingTransformer) Transform(ctx context.Context, s domain.Sounding) (domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return domain.Profile{}, err
	}

	actual, mean := t.session.Levels()
	profile := domain.Compute(s, t.constants, actual, mean)

	t.logger.Debug("profile computed",
		"source", profile.Source,
		"wind_zones", len(profile.WindZones),
		"temp_zones", len(profile.TempZones),
		"unbracketed", profile.Unbracketed,
	)
	return profile, nil
}
