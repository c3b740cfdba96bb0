// Package textdump renders a computed profile as aligned plain-text tables.
package textdump

import (
	"context"
	"fmt"
	"io"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/couchcryptid/sounding-etl/internal/domain"
)

// Writer prints every collection of a profile followed by both bulletins.
// It implements pipeline.Loader.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter creates a Writer printing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (d *Writer) Name() string { return "textdump" }

func (d *Writer) Load(ctx context.Context, p domain.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	ew := &errWriter{w: d.w}
	tw := tabwriter.NewWriter(ew, 0, 0, 2, ' ', tabwriter.AlignRight)
	sections := []func(io.Writer, domain.Profile){
		writeHeader,
		writePositions,
		writeWindZones,
		writeTempZones,
		writeActual,
		writeMeanLayer,
		writeBulletins,
	}
	for _, section := range sections {
		section(tw, p)
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write profile dump: %w", err)
	}
	if ew.err != nil {
		return fmt.Errorf("write profile dump: %w", ew.err)
	}
	return nil
}

// errWriter remembers the first write error. The tabwriter flushes whole
// blocks from inside Write, where fmt.Fprintf drops the error.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

func writeHeader(w io.Writer, p domain.Profile) {
	fmt.Fprintf(w, "SOUNDING %s\tcomputed %s\t\n", p.Source, p.ComputedAt.UTC().Format(time.RFC3339))
	if p.Unbracketed > 0 {
		fmt.Fprintf(w, "levels without wind\t%d\t\n", p.Unbracketed)
	}
}

func writePositions(w io.Writer, p domain.Profile) {
	fmt.Fprintln(w, "POSITIONS")
	fmt.Fprintln(w, "#\tx\tz\th\ts\t")
	for i, pos := range p.Positions {
		fmt.Fprintf(w, "%d\t%.1f\t%.1f\t%.1f\t%.1f\t\n", i, pos.X, pos.Z, pos.H, pos.S)
	}
}

func writeWindZones(w io.Writer, p domain.Profile) {
	fmt.Fprintln(w, "WIND ZONES")
	fmt.Fprintln(w, "height\tx\tz\ts\tvx\tvz\tdh\ty\t")
	for _, z := range p.WindZones {
		fmt.Fprintf(w, "%.0f\t%.1f\t%.1f\t%.1f\t%.2f\t%.2f\t%.0f\t%.0f\t\n",
			z.Height, z.X, z.Z, z.S, z.VX, z.VZ, z.DH, z.Y)
	}
}

func writeTempZones(w io.Writer, p domain.Profile) {
	fmt.Fprintln(w, "TEMPERATURE ZONES")
	fmt.Fprintln(w, "height\thi\ttn\tdtvir\ttvrn\tttab\ttti\tttcpm\tpn\tpi\tppi\tppcpm\t")
	for _, z := range p.TempZones {
		fmt.Fprintf(w, "%.0f\t%.0f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.4f\t%.2f\t%.2f\t\n",
			z.Height, z.Hi, z.Tn, z.DTvir, z.Tvrn, z.Ttab, z.TTi, z.TTcpm, z.Pn, z.Pi, z.PPi, z.PPcpm)
	}
}

func writeActual(w io.Writer, p domain.Profile) {
	fmt.Fprintln(w, "ACTUAL LEVELS")
	fmt.Fprintln(w, "h\tvx\tvz\tv\tav\ttti\tttcpm\t")
	for _, l := range p.Actual {
		fmt.Fprintf(w, "%.0f\t%.2f\t%.2f\t%.1f\t%.0f\t%.2f\t%.2f\t\n",
			l.H, l.VX, l.VZ, l.V, l.AV, l.TTi, l.TTcpm)
	}
}

func writeMeanLayer(w io.Writer, p domain.Profile) {
	fmt.Fprintln(w, "MEAN LAYER LEVELS")
	fmt.Fprintln(w, "h\tvx\tvz\twx\twz\tw\taw\ttti\tttcpm\t")
	for _, l := range p.MeanLayer {
		fmt.Fprintf(w, "%.0f\t%.2f\t%.2f\t%.2f\t%.2f\t%.1f\t%.0f\t%.2f\t%.2f\t\n",
			l.H, l.VX, l.VZ, l.WX, l.WZ, l.W, l.AW, l.TTi, l.TTcpm)
	}
}

func writeBulletins(w io.Writer, p domain.Profile) {
	fmt.Fprintln(w, "BULLETIN ACTUAL")
	for _, line := range p.Bulletin.Actual {
		fmt.Fprintf(w, "%.0f\t%s\t\n", line.Height, line.Code)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "BULLETIN MEAN LAYER")
	for _, line := range p.Bulletin.MeanLayer {
		fmt.Fprintf(w, "%.0f\t%s\t\n", line.Height, line.Code)
	}
}
