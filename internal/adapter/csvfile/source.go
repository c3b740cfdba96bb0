package csvfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/couchcryptid/sounding-etl/internal/domain"
)

// Source reads a sounding from a wind file and a temperature file.
// It implements pipeline.Extractor.
type Source struct {
	windPath string
	tempPath string
	logger   *slog.Logger
}

// NewSource creates a Source for the given file paths.
func NewSource(windPath, tempPath string, logger *slog.Logger) *Source {
	return &Source{windPath: windPath, tempPath: tempPath, logger: logger}
}

// Extract parses both files. Any failure aborts the read; no partial
// sounding is returned.
func (s *Source) Extract(ctx context.Context) (domain.Sounding, error) {
	if err := ctx.Err(); err != nil {
		return domain.Sounding{}, err
	}

	wf, err := os.Open(s.windPath)
	if err != nil {
		return domain.Sounding{}, fmt.Errorf("open wind file: %w", err)
	}
	defer wf.Close()

	fixes, surface, err := ParseWind(wf)
	if err != nil {
		return domain.Sounding{}, fmt.Errorf("%s: %w", s.windPath, err)
	}

	if err := ctx.Err(); err != nil {
		return domain.Sounding{}, err
	}

	tf, err := os.Open(s.tempPath)
	if err != nil {
		return domain.Sounding{}, fmt.Errorf("open temperature file: %w", err)
	}
	defer tf.Close()

	readings, err := ParseTemperature(tf)
	if err != nil {
		return domain.Sounding{}, fmt.Errorf("%s: %w", s.tempPath, err)
	}

	s.logger.Debug("input files read",
		"wind_file", s.windPath,
		"temp_file", s.tempPath,
		"fixes", len(fixes),
		"readings", len(readings),
	)

	return domain.Sounding{
		Source:   filepath.Base(s.windPath) + "+" + filepath.Base(s.tempPath),
		Fixes:    fixes,
		Surface:  surface,
		Readings: readings,
	}, nil
}
