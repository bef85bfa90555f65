package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bnema/meshsos/internal/adapters/clock"
	"github.com/bnema/meshsos/internal/adapters/mesh/loopback"
	"github.com/bnema/meshsos/internal/domain"
	"github.com/bnema/meshsos/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pairFixture struct {
	clock     *clock.Virtual
	hub       *loopback.Hub
	initiator *HandshakeCoordinator
	responder *HandshakeCoordinator
}

func newPairFixture(t *testing.T) *pairFixture {
	t.Helper()

	vc := clock.NewVirtual(testEpoch)
	hub := loopback.NewHub()
	timings := domain.DefaultHandshakeTimings()

	initiator := NewHandshakeCoordinator(hub.NewNode("alice"), vc, vc, timings)
	responder := NewHandshakeCoordinator(hub.NewNode("bob"), vc, vc, timings)
	initiator.Start(context.Background())
	responder.Start(context.Background())
	t.Cleanup(func() {
		initiator.Close()
		responder.Close()
	})

	return &pairFixture{clock: vc, hub: hub, initiator: initiator, responder: responder}
}

func (f *pairFixture) exchange(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, f.initiator.Initiate(ctx))
	offer := f.initiator.Snapshot()
	require.Equal(t, domain.StateShowingOffer, offer.State)
	require.NotEmpty(t, offer.Signal)

	require.NoError(t, f.initiator.Advance(ctx))
	require.Equal(t, domain.StateScanningAnswer, f.initiator.State())

	require.NoError(t, f.responder.Scan(ctx, offer.Signal))
	answer := f.responder.Snapshot()
	require.Equal(t, domain.StateShowingAnswer, answer.State)
	require.Equal(t, domain.RoleResponder, answer.Role)

	require.NoError(t, f.initiator.Scan(ctx, answer.Signal))
}

func TestHandshakePairsTwoDevices(t *testing.T) {
	t.Parallel()

	f := newPairFixture(t)

	f.exchange(t)

	a := f.initiator.Snapshot()
	assert.Equal(t, domain.StateConnecting, a.State)
	assert.True(t, a.Connected)
	assert.Equal(t, "Connected!", a.Status)
	assert.Equal(t, []string{"bob"}, a.PeerIDs)

	b := f.responder.Snapshot()
	assert.True(t, b.Connected)
	assert.Equal(t, 1, b.PeerCount)

	f.clock.Advance(3 * time.Second)

	assert.Equal(t, domain.StateIdle, f.initiator.State())
	assert.Equal(t, domain.StateIdle, f.responder.State())
	assert.NoError(t, f.initiator.Snapshot().Err)
	assert.Equal(t, 1, f.initiator.Snapshot().PeerCount)
	assert.Zero(t, f.clock.Pending())
}

func TestHandshakeTimesOutWhenPeerUnreachable(t *testing.T) {
	t.Parallel()

	f := newPairFixture(t)
	f.hub.SetUnreachable(true)

	f.exchange(t)
	require.Equal(t, domain.StateConnecting, f.initiator.State())

	f.clock.Advance(29 * time.Second)
	require.Equal(t, domain.StateConnecting, f.initiator.State())

	f.clock.Advance(time.Second)

	snap := f.initiator.Snapshot()
	assert.Equal(t, domain.StateIdle, snap.State)
	require.ErrorIs(t, snap.Err, domain.ErrHandshakeTimeout)
	assert.Equal(t, "Connection timeout", snap.ErrorMessage())
	assert.Zero(t, snap.PeerCount)
}

func TestHandshakeScanIgnoredWhileShowingAnswer(t *testing.T) {
	t.Parallel()

	f := newPairFixture(t)
	ctx := context.Background()

	require.NoError(t, f.initiator.Initiate(ctx))
	offer := f.initiator.Snapshot().Signal
	require.NoError(t, f.responder.Scan(ctx, offer))
	before := f.responder.Snapshot()

	require.NoError(t, f.responder.Scan(ctx, offer))
	require.NoError(t, f.responder.Scan(ctx, "garbage"))

	after := f.responder.Snapshot()
	assert.Equal(t, before.State, after.State)
	assert.Equal(t, before.Signal, after.Signal)
}

func TestHandshakePasteRejectsGarbage(t *testing.T) {
	t.Parallel()

	f := newPairFixture(t)
	ctx := context.Background()

	require.NoError(t, f.responder.Paste(ctx, "   "))

	err := f.responder.Paste(ctx, "not a signal")
	require.ErrorIs(t, err, domain.ErrSignalDecode)
	assert.Equal(t, "Invalid QR code format", err.Error())
	assert.Equal(t, domain.StateIdle, f.responder.State())
	assert.Equal(t, "Invalid QR code format", f.responder.Snapshot().ErrorMessage())
}

func TestHandshakeInitiatorRejectsSecondaryOffer(t *testing.T) {
	t.Parallel()

	f := newPairFixture(t)
	ctx := context.Background()

	require.NoError(t, f.responder.Initiate(ctx))
	require.NoError(t, f.initiator.Initiate(ctx))

	err := f.initiator.Scan(ctx, f.responder.Snapshot().Signal)

	require.ErrorIs(t, err, domain.ErrProtocolState)
	assert.Equal(t, "Peer must scan your offer first", err.Error())
	assert.Equal(t, domain.StateShowingOffer, f.initiator.State())
}

func TestHandshakeAdvanceRequiresOffer(t *testing.T) {
	t.Parallel()

	f := newPairFixture(t)

	err := f.initiator.Advance(context.Background())

	require.ErrorIs(t, err, domain.ErrProtocolState)
	assert.Equal(t, domain.StateIdle, f.initiator.State())
}

func TestHandshakePeerErrorResets(t *testing.T) {
	t.Parallel()

	vc := clock.NewVirtual(testEpoch)
	node := loopback.NewHub().NewNode("alice")
	c := NewHandshakeCoordinator(node, vc, vc, domain.DefaultHandshakeTimings())
	c.Start(context.Background())
	defer c.Close()

	require.NoError(t, c.Initiate(context.Background()))
	node.ReportError("ICE gathering failed")

	snap := c.Snapshot()
	assert.Equal(t, domain.StateIdle, snap.State)
	require.ErrorIs(t, snap.Err, domain.ErrMeshConnection)
	assert.Equal(t, "ICE gathering failed", snap.ErrorMessage())
}

func TestHandshakeLogKeepsNewestTwelve(t *testing.T) {
	t.Parallel()

	f := newPairFixture(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		_ = f.initiator.Advance(ctx)
		_ = f.initiator.Paste(ctx, fmt.Sprintf("junk-%d", i))
	}
	require.NoError(t, f.initiator.Reset(ctx))

	logs := f.initiator.Snapshot().Logs
	require.Len(t, logs, 12)
	assert.Equal(t, "Handshake reset (user reset)", logs[0].Message)
}

func TestHandshakeRejectedInputHasNoSideEffects(t *testing.T) {
	t.Parallel()

	mesh := mocks.NewMockMeshNetwork(t)
	deadlines := clock.NewVirtual(testEpoch)

	c := NewHandshakeCoordinator(mesh, deadlines, deadlines, domain.DefaultHandshakeTimings())
	mesh.EXPECT().InitiateConnection(mockAnyContext()).Return(nil).Once()
	require.NoError(t, c.Initiate(context.Background()))
	require.Equal(t, domain.StateGenerating, c.State())

	mesh.EXPECT().ExpandSignal("offer-text").Return(domain.Signal{Type: domain.SignalOffer, Payload: "v=0"}, nil)
	err := c.ProcessSignal(context.Background(), "offer-text")

	require.ErrorIs(t, err, domain.ErrProtocolState)
	assert.Equal(t, domain.StateGenerating, c.State())
	assert.Zero(t, deadlines.Pending())
	mesh.AssertNotCalled(t, "ReceiveConnection", mock.Anything, mock.Anything)
	mesh.AssertNotCalled(t, "CompleteHandshake", mock.Anything, mock.Anything)
}

func TestHandshakeMeshCallFailureResets(t *testing.T) {
	t.Parallel()

	mesh := mocks.NewMockMeshNetwork(t)
	deadlines := clock.NewVirtual(testEpoch)
	mesh.EXPECT().InitiateConnection(mockAnyContext()).Return(fmt.Errorf("no interfaces"))
	mesh.EXPECT().PeerCount().Return(0).Maybe()
	mesh.EXPECT().ConnectedPeerIDs().Return(nil).Maybe()

	c := NewHandshakeCoordinator(mesh, deadlines, deadlines, domain.DefaultHandshakeTimings())
	err := c.Initiate(context.Background())
	require.ErrorIs(t, err, domain.ErrMeshConnection)
	assert.Equal(t, "no interfaces", err.Error())

	assert.Equal(t, domain.StateIdle, c.State())
	snapshot := c.Snapshot()
	require.ErrorIs(t, snapshot.Err, domain.ErrMeshConnection)
	assert.Equal(t, "no interfaces", snapshot.ErrorMessage())
}

func TestHandshakeReceiveFailureSurfacesFromScan(t *testing.T) {
	t.Parallel()

	mesh := mocks.NewMockMeshNetwork(t)
	deadlines := clock.NewVirtual(testEpoch)
	offer := domain.Signal{Type: domain.SignalOffer, Payload: "v=0"}
	mesh.EXPECT().ExpandSignal("offer-text").Return(offer, nil)
	mesh.EXPECT().ReceiveConnection(mockAnyContext(), offer).Return(fmt.Errorf("session expired"))
	mesh.EXPECT().PeerCount().Return(0).Maybe()
	mesh.EXPECT().ConnectedPeerIDs().Return(nil).Maybe()

	c := NewHandshakeCoordinator(mesh, deadlines, deadlines, domain.DefaultHandshakeTimings())
	err := c.Scan(context.Background(), "offer-text")
	require.ErrorIs(t, err, domain.ErrMeshConnection)
	assert.Equal(t, "session expired", err.Error())
	assert.Equal(t, domain.StateIdle, c.State())
	assert.Equal(t, domain.RoleNone, c.Snapshot().Role)
}

type recordingScanner struct{ stops int }

func (s *recordingScanner) Stop(context.Context) error {
	s.stops++
	return nil
}

func TestHandshakeStopsScannerOnValidSignal(t *testing.T) {
	t.Parallel()

	vc := clock.NewVirtual(testEpoch)
	hub := loopback.NewHub()
	scanner := &recordingScanner{}

	initiator := NewHandshakeCoordinator(hub.NewNode("alice"), vc, vc, domain.DefaultHandshakeTimings())
	responder := NewHandshakeCoordinator(hub.NewNode("bob"), vc, vc, domain.DefaultHandshakeTimings(), WithScanner(scanner))
	initiator.Start(context.Background())
	responder.Start(context.Background())

	require.NoError(t, initiator.Initiate(context.Background()))
	require.NoError(t, responder.Scan(context.Background(), initiator.Snapshot().Signal))

	assert.Equal(t, 1, scanner.stops)
}
