package ports

import "github.com/bnema/meshsos/internal/domain"

type FeedbackSink interface {
	Haptic()
	Sound()
}

// ConfirmationOutcome is how a fall countdown ended.
type ConfirmationOutcome string

const (
	ConfirmationSent       ConfirmationOutcome = "sent"
	ConfirmationCancelled  ConfirmationOutcome = "cancelled"
	ConfirmationSendFailed ConfirmationOutcome = "send_failed"
)

type Metrics interface {
	FallDetected(severity domain.Severity)
	FallConfirmed(outcome ConfirmationOutcome)
	HandshakeTransition(from, to domain.HandshakeState)
	HandshakeRejected(reason string)
	SOSRecorded(auto, panicButton bool)
}

type NopMetrics struct{}

func (NopMetrics) FallDetected(domain.Severity)                                     {}
func (NopMetrics) FallConfirmed(ConfirmationOutcome)                                {}
func (NopMetrics) HandshakeTransition(domain.HandshakeState, domain.HandshakeState) {}
func (NopMetrics) HandshakeRejected(string)                                         {}
func (NopMetrics) SOSRecorded(bool, bool)                                           {}
