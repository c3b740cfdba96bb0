// Command genmock writes a synthetic balloon flight as wind and temperature
// input files, and optionally the profile computed from them as a JSON
// fixture. The flight ascends at a constant rate through a westerly wind that
// strengthens with height, over a standard-atmosphere temperature lapse.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -wind-out data/mock/wind.csv \
//	  -temp-out data/mock/temp.csv \
//	  -profile-out data/mock/profile.json
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/sounding-etl/internal/domain"
)

const (
	unitsPerRadian = 3000 / math.Pi
	kelvin         = 273.15
)

var calibration = domain.UserConstants{
	A: 1, B: 4000, C: 100, R1: 32, R2: 32,
	T0: 15, U0: 51, P0: 1013.25,
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	windOut := flag.String("wind-out", "", "output path for the radar tracking file")
	tempOut := flag.String("temp-out", "", "output path for the temperature channel file")
	profileOut := flag.String("profile-out", "", "optional output path for the computed profile fixture")
	ceiling := flag.Float64("ceiling", 12000, "burst height in metres")
	ascent := flag.Float64("ascent", 5, "ascent rate in metres per second")
	interval := flag.Float64("interval", 30, "seconds between radar fixes")
	flag.Parse()

	if *windOut == "" || *tempOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -wind-out, -temp-out")
	}
	if *ascent <= 0 || *interval <= 0 || *ceiling <= 0 {
		return fmt.Errorf("ceiling, ascent and interval must be positive")
	}

	fixes := simulateFlight(*ceiling, *ascent, *interval)
	surface := domain.SurfaceObservation{Fix: domain.RawFix{}, Direction: 45, Speed: 4}
	if err := writeWind(*windOut, surface, fixes); err != nil {
		return fmt.Errorf("writing wind file: %w", err)
	}
	log.Printf("wrote %d fixes: %s", len(fixes), *windOut)

	readings := simulateReadings(*ceiling)
	if err := writeTemperature(*tempOut, readings); err != nil {
		return fmt.Errorf("writing temperature file: %w", err)
	}
	log.Printf("wrote %d readings: %s", len(readings), *tempOut)

	if *profileOut == "" {
		return nil
	}

	// Fixed clock for a reproducible ComputedAt.
	domain.SetClock(clockwork.NewFakeClockAt(time.Date(2024, time.May, 9, 6, 0, 0, 0, time.UTC)))
	defer domain.SetClock(nil)

	profile := domain.Compute(domain.Sounding{
		Source:   "genmock",
		Fixes:    fixes,
		Surface:  &surface,
		Readings: readings,
	}, calibration, domain.ActualLevels(), domain.MeanLayerLevels())

	if err := writeJSON(*profileOut, profile); err != nil {
		return fmt.Errorf("writing profile fixture: %w", err)
	}
	log.Printf("wrote profile fixture: %s (%d unbracketed levels)", *profileOut, profile.Unbracketed)
	for _, line := range profile.Bulletin.Actual {
		log.Printf("  %6.0f  %s", line.Height, line.Code)
	}
	return nil
}

// windAt is the synthetic wind speed in m/s at height h.
func windAt(h float64) float64 {
	return 5 + 2*h/1000
}

// simulateFlight drifts the balloon east with the wind and converts each
// position into a radar fix. Earth curvature is ignored.
func simulateFlight(ceiling, ascent, interval float64) []domain.RawFix {
	var (
		fixes []domain.RawFix
		x, z  float64
	)
	for s := 0.0; ; s += interval {
		h := ascent * s
		if h > ceiling {
			break
		}
		horizontal := math.Hypot(x, z)
		azimuth := math.Atan2(z, x) * unitsPerRadian
		if azimuth < 0 {
			azimuth += 6000
		}
		fixes = append(fixes, domain.RawFix{
			Distance:  math.Hypot(horizontal, h),
			Azimuth:   azimuth,
			Elevation: math.Atan2(h, horizontal) * unitsPerRadian,
			Elapsed:   s,
		})
		x += windAt(h) * interval
		z += 0.1 * windAt(h) * interval
	}
	return fixes
}

// simulateReadings produces three readings per temperature zone up to the
// ceiling whose voltage ratio inverts to the standard temperature at the
// zone midpoint.
func simulateReadings(ceiling float64) []domain.TempReading {
	heights := domain.TempZoneHeights()
	var readings []domain.TempReading
	for i := 0; i < len(heights) && heights[i] <= ceiling; i++ {
		var mid float64
		if i > 0 {
			mid = (heights[i-1] + heights[i]) / 2
		}
		qo := voltageRatio(domain.StandardTemperature(mid))
		for range 3 {
			readings = append(readings, domain.TempReading{Group: i + 1, QO: qo, QT: 1})
		}
	}
	return readings
}

// voltageRatio inverts the thermistor law for the default calibration.
func voltageRatio(celsius float64) float64 {
	k := celsius + calibration.C + kelvin
	rt := calibration.A * math.Exp(calibration.B/k-math.Log(1000))
	return calibration.R1 / (rt + calibration.R2)
}

func writeWind(path string, surface domain.SurfaceObservation, fixes []domain.RawFix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	sf := surface.Fix
	fmt.Fprintf(w, "%.1f,%.1f,%.1f,%.1f,%.0f,%.1f\n",
		sf.Distance, sf.Azimuth, sf.Elevation, sf.Elapsed, surface.Direction, surface.Speed)
	for _, fix := range fixes {
		fmt.Fprintf(w, "%.1f,%.2f,%.2f,%.0f\n", fix.Distance, fix.Azimuth, fix.Elevation, fix.Elapsed)
	}
	return w.Flush()
}

// writeTemperature separates consecutive groups with a blank line.
func writeTemperature(path string, readings []domain.TempReading) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	group := 1
	for _, r := range readings {
		if r.Group != group {
			fmt.Fprintln(w)
			group = r.Group
		}
		fmt.Fprintf(w, "%.6f,%.6f,%.2f\n", r.QO, r.QT, r.DTP)
	}
	return w.Flush()
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o600)
}
