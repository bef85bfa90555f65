package domain

import (
	"fmt"
	"strings"
	"time"
)

type HandshakeState string

const (
	StateIdle           HandshakeState = "IDLE"
	StateGenerating     HandshakeState = "GENERATING"
	StateShowingOffer   HandshakeState = "SHOWING_OFFER"
	StateScanningAnswer HandshakeState = "SCANNING_ANSWER"
	StateProcessingScan HandshakeState = "PROCESSING_SCAN"
	StateShowingAnswer  HandshakeState = "SHOWING_ANSWER"
	StateConnecting     HandshakeState = "CONNECTING"
)

func (s HandshakeState) Valid() bool {
	switch s {
	case StateIdle, StateGenerating, StateShowingOffer, StateScanningAnswer,
		StateProcessingScan, StateShowingAnswer, StateConnecting:
		return true
	default:
		return false
	}
}

type HandshakeRole string

const (
	RoleNone      HandshakeRole = ""
	RoleInitiator HandshakeRole = "initiator"
	RoleResponder HandshakeRole = "responder"
)

type DeadlineKind string

const (
	DeadlineConnect DeadlineKind = "connect"
	DeadlineSettle  DeadlineKind = "settle"
)

type HandshakeTimings struct {
	ConnectTimeout time.Duration
	SuccessReset   time.Duration
}

func DefaultHandshakeTimings() HandshakeTimings {
	return HandshakeTimings{
		ConnectTimeout: 30 * time.Second,
		SuccessReset:   3 * time.Second,
	}
}

func (t HandshakeTimings) Validate() error {
	if t.ConnectTimeout <= 0 {
		return fmt.Errorf("connect timeout must be positive")
	}
	if t.SuccessReset < 0 {
		return fmt.Errorf("success reset delay must not be negative")
	}

	return nil
}

// HandshakeSession is the single in-flight handshake slot. Generation
// changes every time the slot is reset so deadlines armed for an earlier
// session can be recognised and dropped.
type HandshakeSession struct {
	State        HandshakeState
	Role         HandshakeRole
	ActiveSignal string
	Status       string
	Deadline     time.Time
	Generation   uint64
	Connected    bool
}

func NewHandshakeSession() HandshakeSession {
	return HandshakeSession{State: StateIdle}
}

type HandshakeEvent interface {
	handshakeEvent()
}

type (
	InitiateEvent      struct{}
	AdvanceEvent       struct{}
	SignalDecodedEvent struct{ Signal Signal }
	DecodeFailedEvent  struct{ Err error }
	MeshSignalEvent    struct {
		Signal  Signal
		Encoded string
	}
	PeerCountChangedEvent struct{ Previous, Current int }
	DeadlineElapsedEvent  struct {
		Kind       DeadlineKind
		Generation uint64
	}
	MeshFailureEvent struct{ Err error }
	PeerErrorEvent   struct{ Message string }
	ResetEvent       struct{ Reason string }
)

func (InitiateEvent) handshakeEvent()         {}
func (AdvanceEvent) handshakeEvent()          {}
func (SignalDecodedEvent) handshakeEvent()    {}
func (DecodeFailedEvent) handshakeEvent()     {}
func (MeshSignalEvent) handshakeEvent()       {}
func (PeerCountChangedEvent) handshakeEvent() {}
func (DeadlineElapsedEvent) handshakeEvent()  {}
func (MeshFailureEvent) handshakeEvent()      {}
func (PeerErrorEvent) handshakeEvent()        {}
func (ResetEvent) handshakeEvent()            {}

// HandshakeEffect is work the driver must perform after a transition.
type HandshakeEffect interface {
	handshakeEffect()
}

type (
	InitiateConnectionEffect struct{}
	ReceiveConnectionEffect  struct{ Signal Signal }
	CompleteHandshakeEffect  struct{ Signal Signal }
	ArmDeadlineEffect        struct {
		Kind       DeadlineKind
		After      time.Duration
		Generation uint64
	}
	CancelDeadlineEffect struct{}
	StopScanningEffect   struct{}
)

func (InitiateConnectionEffect) handshakeEffect() {}
func (ReceiveConnectionEffect) handshakeEffect()  {}
func (CompleteHandshakeEffect) handshakeEffect()  {}
func (ArmDeadlineEffect) handshakeEffect()        {}
func (CancelDeadlineEffect) handshakeEffect()     {}
func (StopScanningEffect) handshakeEffect()       {}

type HandshakeTransition struct {
	Session HandshakeSession
	Effects []HandshakeEffect
	Err     error
	Logs    []string
}

func (t *HandshakeTransition) log(format string, args ...any) {
	t.Logs = append(t.Logs, fmt.Sprintf(format, args...))
}

func (t *HandshakeTransition) emit(effects ...HandshakeEffect) {
	t.Effects = append(t.Effects, effects...)
}

// Apply computes the next session for ev. It performs no I/O: every call
// into the mesh and every timer is returned as an effect.
func (s HandshakeSession) Apply(now time.Time, timings HandshakeTimings, ev HandshakeEvent) HandshakeTransition {
	t := HandshakeTransition{Session: s}

	switch ev := ev.(type) {
	case InitiateEvent:
		t.reset("new initiation")
		t.Session.State = StateGenerating
		t.Session.Role = RoleInitiator
		t.Session.Status = "Gathering paths..."
		t.emit(InitiateConnectionEffect{})
		t.log("Searching for local paths")

	case AdvanceEvent:
		switch s.State {
		case StateShowingOffer:
			t.Session.State = StateScanningAnswer
			t.Session.Status = "Scan the answer from your peer"
			t.log("Waiting for peer answer")
		case StateScanningAnswer:
		default:
			t.Err = newHandshakeError(ErrProtocolState, "Generate and show your offer first")
		}

	case SignalDecodedEvent:
		t.log("Received %s in %s", strings.ToUpper(string(ev.Signal.Type)), s.State)
		switch ev.Signal.Type {
		case SignalOffer:
			s.applyOffer(&t, ev.Signal)
		case SignalAnswer:
			s.applyAnswer(&t, now, timings, ev.Signal)
		default:
			t.Err = newHandshakeError(ErrSignalDecode, "Invalid QR code format")
		}

	case DecodeFailedEvent:
		t.log("Signal expansion failed (corrupt?)")
		t.Err = newHandshakeError(ErrSignalDecode, "Invalid QR code format")

	case MeshSignalEvent:
		switch {
		case ev.Signal.Type == SignalOffer && s.State == StateGenerating:
			t.Session.State = StateShowingOffer
			t.Session.ActiveSignal = ev.Encoded
			t.Session.Status = "Scan this QR with peer device"
			t.log("Offer QR ready")
		case ev.Signal.Type == SignalAnswer && s.State == StateProcessingScan:
			t.Session.State = StateShowingAnswer
			t.Session.ActiveSignal = ev.Encoded
			t.Session.Status = "Show this QR to initiator"
			t.log("Answer QR ready")
		default:
			t.log("Ignored %s signal in %s", ev.Signal.Type, s.State)
		}

	case PeerCountChangedEvent:
		if ev.Current <= ev.Previous {
			t.log("Peer count %d -> %d", ev.Previous, ev.Current)
			break
		}
		t.Session.Connected = true
		t.Session.Status = "Connected!"
		t.Session.Deadline = now.Add(timings.SuccessReset)
		t.emit(
			CancelDeadlineEffect{},
			ArmDeadlineEffect{Kind: DeadlineSettle, After: timings.SuccessReset, Generation: s.Generation},
		)
		t.log("Pairing successful")

	case DeadlineElapsedEvent:
		if ev.Generation != s.Generation {
			t.log("Dropped stale %s deadline", ev.Kind)
			break
		}
		switch ev.Kind {
		case DeadlineConnect:
			if s.State != StateConnecting || s.Connected {
				break
			}
			t.log("Handshake timed out after %s", timings.ConnectTimeout)
			t.reset("timeout")
			t.Err = newHandshakeError(ErrHandshakeTimeout, "Connection timeout")
		case DeadlineSettle:
			t.reset("connected")
		}

	case MeshFailureEvent:
		message := "Connection failed"
		if ev.Err != nil {
			message = ev.Err.Error()
		}
		t.log("Mesh failure: %s", message)
		t.reset("mesh failure")
		t.Err = newHandshakeError(ErrMeshConnection, message)

	case PeerErrorEvent:
		t.log("Error: %s", ev.Message)
		t.reset("peer error")
		t.Err = newHandshakeError(ErrMeshConnection, ev.Message)

	case ResetEvent:
		t.reset(ev.Reason)
	}

	return t
}

func (s HandshakeSession) applyOffer(t *HandshakeTransition, signal Signal) {
	switch s.State {
	case StateProcessingScan, StateShowingAnswer:
		t.log("Continuing with existing response")
	case StateIdle:
		t.Session.State = StateProcessingScan
		t.Session.Role = RoleResponder
		t.Session.Connected = false
		t.Session.Status = "Generating response..."
		t.emit(StopScanningEffect{}, ReceiveConnectionEffect{Signal: signal})
		t.log("Offer valid, generating answer")
	default:
		t.log("Initiator ignored secondary offer")
		t.Err = newHandshakeError(ErrProtocolState, "Peer must scan your offer first")
	}
}

func (s HandshakeSession) applyAnswer(t *HandshakeTransition, now time.Time, timings HandshakeTimings, signal Signal) {
	switch s.State {
	case StateScanningAnswer, StateShowingOffer, StateIdle:
		t.Session.State = StateConnecting
		if t.Session.Role == RoleNone {
			t.Session.Role = RoleInitiator
		}
		t.Session.Connected = false
		t.Session.Status = "Establishing tunnel..."
		t.Session.Deadline = now.Add(timings.ConnectTimeout)
		t.emit(
			StopScanningEffect{},
			CompleteHandshakeEffect{Signal: signal},
			ArmDeadlineEffect{Kind: DeadlineConnect, After: timings.ConnectTimeout, Generation: s.Generation},
		)
		t.log("Answer valid, finalizing tunnel")
	default:
		t.log("Ignoring peer answer (expected offer)")
		t.Err = newHandshakeError(ErrProtocolState, "Please scan the initiator code first")
	}
}

func (t *HandshakeTransition) reset(reason string) {
	t.Session = HandshakeSession{
		State:      StateIdle,
		Generation: t.Session.Generation + 1,
	}
	t.emit(CancelDeadlineEffect{})
	if reason == "" {
		t.log("Handshake reset")
		return
	}
	t.log("Handshake reset (%s)", reason)
}
