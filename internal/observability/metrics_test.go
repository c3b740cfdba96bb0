package observability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsForTesting(t *testing.T) {
	m := NewMetricsForTesting()

	m.Cycles.WithLabelValues("success").Inc()
	m.FixesLoaded.Add(3)
	m.Loads.WithLabelValues("textdump", "success").Inc()

	assert.InDelta(t, 1.0, testutil.ToFloat64(m.Cycles.WithLabelValues("success")), 0)
	assert.InDelta(t, 3.0, testutil.ToFloat64(m.FixesLoaded), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.Loads.WithLabelValues("textdump", "success")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.Cycles))
}

func TestWriteTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sounding.prom")

	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "go_goroutines")
}
