// Package csvfile reads the comma-delimited wind and temperature inputs of a
// sounding from disk.
package csvfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/couchcryptid/sounding-etl/internal/domain"
)

// Minimum field counts per line.
const (
	fixFields     = 4
	surfaceFields = 6
	readingFields = 3
)

// ParseWind reads radar tracking fixes, one "distance,azimuth,elevation,time"
// line each. When the first data line carries six fields, the extra two are
// the surface wind direction and speed and the line becomes the surface
// seed instead of a fix. Short lines are skipped.
func ParseWind(r io.Reader) ([]domain.RawFix, *domain.SurfaceObservation, error) {
	var (
		fixes   []domain.RawFix
		surface *domain.SurfaceObservation
		first   = true
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := splitLine(sc.Text())
		if fields == nil {
			continue
		}
		isFirst := first
		first = false

		if len(fields) < fixFields {
			continue
		}
		fix := domain.RawFix{
			Distance:  parseFloatOrZero(fields[0]),
			Azimuth:   parseFloatOrZero(fields[1]),
			Elevation: parseFloatOrZero(fields[2]),
			Elapsed:   parseFloatOrZero(fields[3]),
		}
		if isFirst && len(fields) >= surfaceFields {
			surface = &domain.SurfaceObservation{
				Fix:       fix,
				Direction: parseFloatOrZero(fields[4]),
				Speed:     parseFloatOrZero(fields[5]),
			}
			continue
		}
		fixes = append(fixes, fix)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("read wind data: %w", err)
	}
	return fixes, surface, nil
}

// ParseTemperature reads "QO,QT,dtp" readings. Blank lines separate groups:
// each run of blank lines that follows data starts the next group, so
// readings of the n-th block land in temperature zone n.
func ParseTemperature(r io.Reader) ([]domain.TempReading, error) {
	var (
		readings []domain.TempReading
		group    = 1
		seenData bool
		inGap    bool
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := splitLine(sc.Text())
		if fields == nil {
			if seenData && !inGap {
				group++
				inGap = true
			}
			continue
		}
		seenData = true
		inGap = false

		if len(fields) < readingFields {
			continue
		}
		readings = append(readings, domain.TempReading{
			Group: group,
			QO:    parseFloatOrZero(fields[0]),
			QT:    parseFloatOrZero(fields[1]),
			DTP:   parseFloatOrZero(fields[2]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read temperature data: %w", err)
	}
	return readings, nil
}

// splitLine trims a line and splits it on commas. Blank lines yield nil.
func splitLine(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

func parseFloatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
