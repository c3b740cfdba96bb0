package pipeline

import (
	"slices"

	"github.com/couchcryptid/sounding-etl/internal/domain"
)

// Session owns the report level templates shared by successive cycles.
// Each cycle receives its own copies, so one sounding never leaks state
// into the next.
type Session struct {
	actual []domain.ActualLevel
	mean   []domain.MeanLayerLevel
}

// NewSession returns a session seeded with the standard report heights.
func NewSession() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// Reset re-seeds the templates with the standard report heights.
func (s *Session) Reset() {
	s.actual = domain.ActualLevels()
	s.mean = domain.MeanLayerLevels()
}

// Levels returns fresh copies of both level families.
func (s *Session) Levels() ([]domain.ActualLevel, []domain.MeanLayerLevel) {
	return slices.Clone(s.actual), slices.Clone(s.mean)
}
