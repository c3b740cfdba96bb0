package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/sounding-etl/internal/domain"
)

func TestSession_LevelsAreCopies(t *testing.T) {
	s := NewSession()

	actual, mean := s.Levels()
	require.NotEmpty(t, actual)
	require.NotEmpty(t, mean)
	actual[1].V = 42
	mean[1].W = 42

	again, againMean := s.Levels()
	assert.Zero(t, again[1].V)
	assert.Zero(t, againMean[1].W)
}

func TestSession_Reset(t *testing.T) {
	s := NewSession()
	s.actual[0].H = 999
	s.mean = s.mean[:1]

	s.Reset()

	actual, mean := s.Levels()
	assert.Equal(t, domain.ActualLevels(), actual)
	assert.Equal(t, domain.MeanLayerLevels(), mean)
}
