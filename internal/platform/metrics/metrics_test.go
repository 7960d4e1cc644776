package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextfile(t *testing.T) {
	reg := NewRegistry()
	counter := promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: "climbreg_test_total",
		Help: "test counter",
	})
	counter.Add(3)

	path := filepath.Join(t.TempDir(), "climbreg.prom")
	require.NoError(t, WriteTextfile(path, reg))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "climbreg_test_total 3")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestWriteTextfileReportsPath(t *testing.T) {
	err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"), NewRegistry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x.prom")
}
