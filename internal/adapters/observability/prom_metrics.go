package observability

import (
	"github.com/bnema/meshsos/internal/domain"
	"github.com/bnema/meshsos/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
)

type PromMetrics struct {
	falls       *prometheus.CounterVec
	confirmed   *prometheus.CounterVec
	transitions *prometheus.CounterVec
	rejections  *prometheus.CounterVec
	sos         *prometheus.CounterVec
	state       *prometheus.GaugeVec
}

var _ ports.Metrics = (*PromMetrics)(nil)

// NewPromMetrics registers the collectors on reg. A nil reg uses the
// default registerer.
func NewPromMetrics(reg prometheus.Registerer) *PromMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	p := &PromMetrics{
		falls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "meshsos_falls_detected_total",
			Help: "Falls reported by the detector, by severity.",
		}, []string{"severity"}),
		confirmed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "meshsos_fall_confirmations_total",
			Help: "Fall countdowns that finished, by outcome.",
		}, []string{"outcome"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "meshsos_handshake_transitions_total",
			Help: "Handshake state changes.",
		}, []string{"from", "to"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "meshsos_handshake_rejections_total",
			Help: "Handshake inputs refused, by reason.",
		}, []string{"reason"}),
		sos: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "meshsos_sos_recorded_total",
			Help: "SOS messages written to the outbox.",
		}, []string{"kind"}),
		state: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "meshsos_handshake_state",
			Help: "1 for the current handshake state, 0 otherwise.",
		}, []string{"state"}),
	}

	reg.MustRegister(p.falls, p.confirmed, p.transitions, p.rejections, p.sos, p.state)
	p.state.WithLabelValues(string(domain.StateIdle)).Set(1)

	return p
}

func (p *PromMetrics) FallDetected(severity domain.Severity) {
	p.falls.WithLabelValues(string(severity)).Inc()
}

func (p *PromMetrics) FallConfirmed(outcome ports.ConfirmationOutcome) {
	p.confirmed.WithLabelValues(string(outcome)).Inc()
}

func (p *PromMetrics) HandshakeTransition(from, to domain.HandshakeState) {
	p.transitions.WithLabelValues(string(from), string(to)).Inc()
	p.state.WithLabelValues(string(from)).Set(0)
	p.state.WithLabelValues(string(to)).Set(1)
}

func (p *PromMetrics) HandshakeRejected(reason string) {
	p.rejections.WithLabelValues(reason).Inc()
}

func (p *PromMetrics) SOSRecorded(auto, panicButton bool) {
	kind := "manual"
	switch {
	case panicButton:
		kind = "panic"
	case auto:
		kind = "fall"
	}
	p.sos.WithLabelValues(kind).Inc()
}
