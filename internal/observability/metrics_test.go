package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/api/trainings", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/api/trainings", "GET", 200, 30*time.Millisecond)
	m.RecordRequest("/api/trainings", "GET", 403, 5*time.Millisecond)
	m.RecordError("/api/trainings", "GET", "FORBIDDEN")
	m.RecordRequest("/api/classes", "GET", 200, 2*time.Millisecond)

	snap := m.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "GET /api/classes", snap[0].Route, "snapshot is sorted by route")

	trainings := snap[1]
	assert.Equal(t, int64(3), trainings.Requests)
	assert.Equal(t, int64(1), trainings.Failures)
	assert.Equal(t, int64(15), trainings.AvgMillis)
	assert.Equal(t, int64(30), trainings.MaxMillis)
	assert.Equal(t, int64(1), trainings.Errors["FORBIDDEN"])
}

func TestMetricsNilReceiver(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/x", "GET", 200, time.Millisecond)
	m.RecordError("/x", "GET", "INTERNAL_ERROR")
	assert.Nil(t, m.Snapshot())
}
