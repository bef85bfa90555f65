package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	offerSignal  = Signal{Type: SignalOffer, Payload: "offer-sdp"}
	answerSignal = Signal{Type: SignalAnswer, Payload: "answer-sdp"}
	timings      = DefaultHandshakeTimings()
)

func apply(s HandshakeSession, ev HandshakeEvent) HandshakeTransition {
	return s.Apply(t0, timings, ev)
}

func TestHandshakeInitiateResetsAndRequestsOffer(t *testing.T) {
	t.Parallel()

	prior := HandshakeSession{State: StateConnecting, Role: RoleInitiator, Generation: 4, ActiveSignal: "old"}
	tr := apply(prior, InitiateEvent{})

	require.NoError(t, tr.Err)
	assert.Equal(t, StateGenerating, tr.Session.State)
	assert.Equal(t, RoleInitiator, tr.Session.Role)
	assert.Equal(t, uint64(5), tr.Session.Generation)
	assert.Empty(t, tr.Session.ActiveSignal)
	assert.Equal(t, []HandshakeEffect{CancelDeadlineEffect{}, InitiateConnectionEffect{}}, tr.Effects)
}

func TestHandshakeMeshOfferShownOnlyWhileGenerating(t *testing.T) {
	t.Parallel()

	generating := HandshakeSession{State: StateGenerating, Role: RoleInitiator}
	tr := apply(generating, MeshSignalEvent{Signal: offerSignal, Encoded: "S1"})
	assert.Equal(t, StateShowingOffer, tr.Session.State)
	assert.Equal(t, "S1", tr.Session.ActiveSignal)
	assert.Empty(t, tr.Effects)

	idle := NewHandshakeSession()
	tr = apply(idle, MeshSignalEvent{Signal: offerSignal, Encoded: "S1"})
	assert.Equal(t, idle, tr.Session)
}

func TestHandshakeAdvance(t *testing.T) {
	t.Parallel()

	tr := apply(HandshakeSession{State: StateShowingOffer}, AdvanceEvent{})
	require.NoError(t, tr.Err)
	assert.Equal(t, StateScanningAnswer, tr.Session.State)

	tr = apply(NewHandshakeSession(), AdvanceEvent{})
	assert.ErrorIs(t, tr.Err, ErrProtocolState)
	assert.Equal(t, StateIdle, tr.Session.State)
}

func TestHandshakeOfferFromIdleStartsResponder(t *testing.T) {
	t.Parallel()

	tr := apply(NewHandshakeSession(), SignalDecodedEvent{Signal: offerSignal})

	require.NoError(t, tr.Err)
	assert.Equal(t, StateProcessingScan, tr.Session.State)
	assert.Equal(t, RoleResponder, tr.Session.Role)
	assert.Equal(t, []HandshakeEffect{StopScanningEffect{}, ReceiveConnectionEffect{Signal: offerSignal}}, tr.Effects)

	tr = apply(tr.Session, MeshSignalEvent{Signal: answerSignal, Encoded: "S2"})
	assert.Equal(t, StateShowingAnswer, tr.Session.State)
	assert.Equal(t, "S2", tr.Session.ActiveSignal)
}

func TestHandshakeDuplicateOfferIsIgnored(t *testing.T) {
	t.Parallel()

	for _, state := range []HandshakeState{StateProcessingScan, StateShowingAnswer} {
		session := HandshakeSession{State: state, Role: RoleResponder, ActiveSignal: "S2", Generation: 2}
		tr := apply(session, SignalDecodedEvent{Signal: offerSignal})

		assert.NoError(t, tr.Err, state)
		assert.Equal(t, session, tr.Session, state)
		assert.Empty(t, tr.Effects, state)
	}
}

func TestHandshakeOfferRejectedOutsideAcceptingStates(t *testing.T) {
	t.Parallel()

	for _, state := range []HandshakeState{StateGenerating, StateShowingOffer, StateScanningAnswer, StateConnecting} {
		session := HandshakeSession{State: state, Role: RoleInitiator}
		tr := apply(session, SignalDecodedEvent{Signal: offerSignal})

		var hsErr *HandshakeError
		require.True(t, errors.As(tr.Err, &hsErr), state)
		assert.ErrorIs(t, tr.Err, ErrProtocolState)
		assert.Equal(t, "Peer must scan your offer first", hsErr.Message)
		assert.Equal(t, session, tr.Session)
		assert.Empty(t, tr.Effects)
	}
}

func TestHandshakeAnswerAcceptedArmsConnectDeadline(t *testing.T) {
	t.Parallel()

	for _, state := range []HandshakeState{StateScanningAnswer, StateShowingOffer, StateIdle} {
		session := HandshakeSession{State: state, Generation: 7}
		tr := apply(session, SignalDecodedEvent{Signal: answerSignal})

		require.NoError(t, tr.Err, state)
		assert.Equal(t, StateConnecting, tr.Session.State)
		assert.Equal(t, t0.Add(30*time.Second), tr.Session.Deadline)
		assert.Equal(t, []HandshakeEffect{
			StopScanningEffect{},
			CompleteHandshakeEffect{Signal: answerSignal},
			ArmDeadlineEffect{Kind: DeadlineConnect, After: 30 * time.Second, Generation: 7},
		}, tr.Effects)
	}
}

func TestHandshakeAnswerRejectedOutsideAcceptingStates(t *testing.T) {
	t.Parallel()

	for _, state := range []HandshakeState{StateGenerating, StateProcessingScan, StateShowingAnswer, StateConnecting} {
		session := HandshakeSession{State: state}
		tr := apply(session, SignalDecodedEvent{Signal: answerSignal})

		assert.ErrorIs(t, tr.Err, ErrProtocolState)
		assert.ErrorContains(t, tr.Err, "scan the initiator code first")
		assert.Equal(t, session, tr.Session)
	}
}

func TestHandshakeDecodeFailureLeavesSessionUntouched(t *testing.T) {
	t.Parallel()

	session := HandshakeSession{State: StateScanningAnswer, Role: RoleInitiator, ActiveSignal: "S1"}
	tr := apply(session, DecodeFailedEvent{Err: errors.New("bad checksum")})

	assert.ErrorIs(t, tr.Err, ErrSignalDecode)
	assert.Equal(t, session, tr.Session)
	assert.Empty(t, tr.Effects)
}

func TestHandshakeConnectDeadlineTimesOut(t *testing.T) {
	t.Parallel()

	session := HandshakeSession{State: StateConnecting, Generation: 3}
	tr := apply(session, DeadlineElapsedEvent{Kind: DeadlineConnect, Generation: 3})

	assert.ErrorIs(t, tr.Err, ErrHandshakeTimeout)
	assert.Equal(t, StateIdle, tr.Session.State)
	assert.Equal(t, uint64(4), tr.Session.Generation)
}

func TestHandshakeStaleDeadlineIsDropped(t *testing.T) {
	t.Parallel()

	session := HandshakeSession{State: StateConnecting, Generation: 3}
	tr := apply(session, DeadlineElapsedEvent{Kind: DeadlineConnect, Generation: 2})

	assert.NoError(t, tr.Err)
	assert.Equal(t, session, tr.Session)
}

func TestHandshakePeerIncreaseSettlesToIdle(t *testing.T) {
	t.Parallel()

	session := HandshakeSession{State: StateConnecting, Generation: 3}
	tr := apply(session, PeerCountChangedEvent{Previous: 0, Current: 1})

	assert.True(t, tr.Session.Connected)
	assert.Equal(t, "Connected!", tr.Session.Status)
	assert.Equal(t, []HandshakeEffect{
		CancelDeadlineEffect{},
		ArmDeadlineEffect{Kind: DeadlineSettle, After: 3 * time.Second, Generation: 3},
	}, tr.Effects)

	late := apply(tr.Session, DeadlineElapsedEvent{Kind: DeadlineConnect, Generation: 3})
	assert.NoError(t, late.Err)
	assert.Equal(t, StateConnecting, late.Session.State)

	settled := apply(tr.Session, DeadlineElapsedEvent{Kind: DeadlineSettle, Generation: 3})
	assert.NoError(t, settled.Err)
	assert.Equal(t, StateIdle, settled.Session.State)
	assert.Empty(t, settled.Session.Status)
}

func TestHandshakePeerDecreaseIsIgnored(t *testing.T) {
	t.Parallel()

	session := HandshakeSession{State: StateConnecting}
	tr := apply(session, PeerCountChangedEvent{Previous: 2, Current: 1})

	assert.Equal(t, session, tr.Session)
	assert.Empty(t, tr.Effects)
}

func TestHandshakeMeshErrorsResetSession(t *testing.T) {
	t.Parallel()

	session := HandshakeSession{State: StateProcessingScan, Generation: 1}

	tr := apply(session, PeerErrorEvent{Message: "ICE failed"})
	assert.ErrorIs(t, tr.Err, ErrMeshConnection)
	assert.EqualError(t, tr.Err, "ICE failed")
	assert.Equal(t, StateIdle, tr.Session.State)

	tr = apply(session, MeshFailureEvent{Err: errors.New("no route")})
	assert.ErrorIs(t, tr.Err, ErrMeshConnection)
	assert.EqualError(t, tr.Err, "no route")
}

func TestHandshakeStatesAreAlwaysValid(t *testing.T) {
	t.Parallel()

	events := []HandshakeEvent{
		InitiateEvent{},
		MeshSignalEvent{Signal: offerSignal, Encoded: "S1"},
		AdvanceEvent{},
		SignalDecodedEvent{Signal: offerSignal},
		SignalDecodedEvent{Signal: answerSignal},
		PeerCountChangedEvent{Previous: 0, Current: 1},
		DeadlineElapsedEvent{Kind: DeadlineSettle},
		DecodeFailedEvent{},
		ResetEvent{},
	}

	session := NewHandshakeSession()
	for i := 0; i < 3; i++ {
		for _, ev := range events {
			session = apply(session, ev).Session
			assert.True(t, session.State.Valid(), "state %q after %T", session.State, ev)
		}
	}
}
