package replay

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/meshsos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallTraceTriggersDetector(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sensor := New(FallTrace(), WithStart(start))

	cfg := domain.DefaultFallDetectionConfig()
	var state domain.FallDetectorState
	var events []domain.FallEvent
	_, err := sensor.Subscribe(func(sample domain.MotionSample) {
		var ev *domain.FallEvent
		state, ev = domain.IngestMotion(cfg, state, sample)
		if ev != nil {
			events = append(events, *ev)
		}
	})
	require.NoError(t, err)

	n, err := sensor.Replay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(FallTrace().Samples), n)

	require.Len(t, events, 1)
	assert.Equal(t, domain.SeveritySevere, events[0].Severity)
	assert.Equal(t, start.Add(900*time.Millisecond), events[0].DetectedAt)
}

func TestParseTraceRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: "name: x\nsamples: []\n"},
		{name: "unordered", raw: "samples:\n  - {t_ms: 10, x: 0, y: 0, z: 0}\n  - {t_ms: 5, x: 0, y: 0, z: 0}\n"},
		{name: "negative", raw: "samples:\n  - {t_ms: -1, x: 0, y: 0, z: 0}\n"},
		{name: "not yaml", raw: "samples: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTrace([]byte(tt.raw))
			require.Error(t, err)
		})
	}
}

func TestLoadTraceReadsFile(t *testing.T) {
	path := t.TempDir() + "/trace.yaml"
	require.NoError(t, writeFile(path, "name: walk\nsamples:\n  - {t_ms: 0, x: 1, y: 2, z: 3}\n"))

	trace, err := LoadTrace(path)
	require.NoError(t, err)
	assert.Equal(t, "walk", trace.Name)
	assert.Equal(t, TracePoint{X: 1, Y: 2, Z: 3}, trace.Samples[0])
}

func TestPermissionAndAvailabilityOptions(t *testing.T) {
	denied := New(FallTrace(), WithPermissionDenied())
	require.ErrorIs(t, denied.RequestPermission(context.Background()), domain.ErrPermissionDenied)

	missing := New(FallTrace(), WithUnavailable())
	_, err := missing.Subscribe(func(domain.MotionSample) {})
	require.ErrorIs(t, err, domain.ErrSensorUnavailable)
}

func TestReplayWithoutSubscribersDropsSamples(t *testing.T) {
	sensor := New(FallTrace())
	unsubscribe, err := sensor.Subscribe(func(domain.MotionSample) {})
	require.NoError(t, err)
	unsubscribe()

	n, err := sensor.Replay(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, sensor.Subscribers())
}

func TestPacedReplayHonoursCancellation(t *testing.T) {
	sensor := New(FallTrace(), WithPacing(true))
	_, err := sensor.Subscribe(func(domain.MotionSample) {})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	n, err := sensor.Replay(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, n, len(FallTrace().Samples))
}
