package loopback

import (
	"context"
	"sync"
	"testing"

	"github.com/bnema/meshsos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu         sync.Mutex
	signals    []string
	peerEvents int
	errors     []string
}

func (r *recorder) HandleSignal(encoded string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.signals = append(r.signals, encoded)
}

func (r *recorder) HandlePeerCountChanged() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.peerEvents++
}

func (r *recorder) HandlePeerError(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, message)
}

func (r *recorder) last(t *testing.T, node *Node) domain.Signal {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.signals)
	signal, err := node.ExpandSignal(r.signals[len(r.signals)-1])
	require.NoError(t, err)
	return signal
}

func pairNodes(t *testing.T, hub *Hub) (*Node, *recorder, *Node, *recorder) {
	t.Helper()
	ctx := context.Background()

	alice, bob := hub.NewNode("alice"), hub.NewNode("bob")
	aliceRec, bobRec := &recorder{}, &recorder{}
	alice.Subscribe(aliceRec)
	bob.Subscribe(bobRec)

	require.NoError(t, alice.InitiateConnection(ctx))
	offer := aliceRec.last(t, alice)
	assert.Equal(t, domain.SignalOffer, offer.Type)

	require.NoError(t, bob.ReceiveConnection(ctx, offer))
	answer := bobRec.last(t, bob)
	assert.Equal(t, domain.SignalAnswer, answer.Type)

	require.NoError(t, alice.CompleteHandshake(ctx, answer))
	return alice, aliceRec, bob, bobRec
}

func TestHandshakeLinksBothNodes(t *testing.T) {
	alice, aliceRec, bob, bobRec := pairNodes(t, NewHub())

	assert.Equal(t, 1, alice.PeerCount())
	assert.Equal(t, 1, bob.PeerCount())
	assert.Equal(t, []string{"bob"}, alice.ConnectedPeerIDs())
	assert.Equal(t, []string{"alice"}, bob.ConnectedPeerIDs())
	assert.Equal(t, 1, aliceRec.peerEvents)
	assert.Equal(t, 1, bobRec.peerEvents)
	assert.Equal(t, []domain.PeerRecord{{ID: "bob", Status: domain.PeerOnline}}, alice.Peers())
}

func TestUnreachableHubNeverLinks(t *testing.T) {
	hub := NewHub()
	hub.SetUnreachable(true)

	alice, aliceRec, bob, _ := pairNodes(t, hub)

	assert.Zero(t, alice.PeerCount())
	assert.Zero(t, bob.PeerCount())
	assert.Zero(t, aliceRec.peerEvents)
}

func TestReceiveConnectionRejectsUnknownSession(t *testing.T) {
	hub := NewHub()
	bob := hub.NewNode("bob")

	stray := description{SessionID: "missing", NodeID: "mallory", Role: domain.SignalOffer}
	err := bob.ReceiveConnection(context.Background(), domain.Signal{Type: domain.SignalOffer, Payload: stray.String()})

	require.ErrorIs(t, err, ErrUnknownSession)
}

func TestCompleteHandshakeRequiresOwnOffer(t *testing.T) {
	hub := NewHub()
	ctx := context.Background()
	alice, bob, carol := hub.NewNode("alice"), hub.NewNode("bob"), hub.NewNode("carol")
	aliceRec, bobRec := &recorder{}, &recorder{}
	alice.Subscribe(aliceRec)
	bob.Subscribe(bobRec)

	require.NoError(t, alice.InitiateConnection(ctx))
	require.NoError(t, bob.ReceiveConnection(ctx, aliceRec.last(t, alice)))

	err := carol.CompleteHandshake(ctx, bobRec.last(t, bob))

	require.ErrorIs(t, err, ErrUnknownSession)
	assert.Zero(t, carol.PeerCount())
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	hub := NewHub()
	node := hub.NewNode("")
	rec := &recorder{}
	unsubscribe := node.Subscribe(rec)
	unsubscribe()

	require.NoError(t, node.InitiateConnection(context.Background()))
	node.ReportError("boom")

	assert.Empty(t, rec.signals)
	assert.Empty(t, rec.errors)
	assert.NotEmpty(t, node.ID())
}

func TestReportErrorReachesListeners(t *testing.T) {
	node := NewHub().NewNode("n1")
	rec := &recorder{}
	node.Subscribe(rec)

	node.ReportError("ICE failed")

	assert.Equal(t, []string{"ICE failed"}, rec.errors)
}

func TestParseDescriptionRequiresOrigin(t *testing.T) {
	_, err := parseDescription(domain.Signal{Type: domain.SignalOffer, Payload: "v=0\r\ns=x"})
	require.Error(t, err)
}
