package observability

import (
	"testing"

	"github.com/bnema/meshsos/internal/domain"
	"github.com/bnema/meshsos/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPromMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPromMetrics(reg)

	m.FallDetected(domain.SeveritySevere)
	m.FallDetected(domain.SeveritySevere)
	if got := testutil.ToFloat64(m.falls.WithLabelValues("severe")); got != 2 {
		t.Fatalf("expected severe falls 2, got %f", got)
	}

	m.FallConfirmed(ports.ConfirmationSent)
	m.FallConfirmed(ports.ConfirmationCancelled)
	m.FallConfirmed(ports.ConfirmationSendFailed)
	if got := testutil.ToFloat64(m.confirmed.WithLabelValues("cancelled")); got != 1 {
		t.Fatalf("expected cancelled confirmations 1, got %f", got)
	}
	if got := testutil.ToFloat64(m.confirmed.WithLabelValues("send_failed")); got != 1 {
		t.Fatalf("expected failed sends 1, got %f", got)
	}
	if got := testutil.CollectAndCount(m.confirmed); got != 3 {
		t.Fatalf("expected 3 confirmation series, got %d", got)
	}

	m.HandshakeTransition(domain.StateIdle, domain.StateGenerating)
	if got := testutil.ToFloat64(m.state.WithLabelValues("GENERATING")); got != 1 {
		t.Fatalf("expected GENERATING gauge 1, got %f", got)
	}
	if got := testutil.ToFloat64(m.state.WithLabelValues("IDLE")); got != 0 {
		t.Fatalf("expected IDLE gauge 0, got %f", got)
	}
	if got := testutil.ToFloat64(m.transitions.WithLabelValues("IDLE", "GENERATING")); got != 1 {
		t.Fatalf("expected one IDLE->GENERATING transition, got %f", got)
	}

	m.HandshakeRejected("Invalid QR code format")
	if got := testutil.ToFloat64(m.rejections.WithLabelValues("Invalid QR code format")); got != 1 {
		t.Fatalf("expected one rejection, got %f", got)
	}

	m.SOSRecorded(false, true)
	m.SOSRecorded(true, false)
	m.SOSRecorded(false, false)
	if got := testutil.CollectAndCount(m.sos); got != 3 {
		t.Fatalf("expected 3 sos series, got %d", got)
	}
}

func TestNewPromMetricsUsesDefaultRegisterer(t *testing.T) {
	origReg := prometheus.DefaultRegisterer
	t.Cleanup(func() { prometheus.DefaultRegisterer = origReg })

	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg

	NewPromMetrics(nil)

	if got, err := testutil.GatherAndCount(reg, "meshsos_handshake_state"); err != nil || got != 1 {
		t.Fatalf("expected idle state series on default registry, got %d (%v)", got, err)
	}
}
