// Package loopback is an in-process mesh: nodes created from the same Hub
// can pair with each other through real encoded offer/answer signals, which
// lets the handshake run end to end without a network.
package loopback

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/meshsos/internal/adapters/signalcodec"
	"github.com/bnema/meshsos/internal/domain"
	"github.com/bnema/meshsos/internal/ports"
	"github.com/google/uuid"
)

var ErrUnknownSession = errors.New("unknown session")

type Hub struct {
	mu          sync.Mutex
	offers      map[string]*Node
	answers     map[string]*Node
	unreachable bool
}

func NewHub() *Hub {
	return &Hub{offers: map[string]*Node{}, answers: map[string]*Node{}}
}

// SetUnreachable makes completed handshakes never produce a link, as when
// both devices are on networks that cannot reach each other.
func (h *Hub) SetUnreachable(unreachable bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.unreachable = unreachable
}

type Node struct {
	id  string
	hub *Hub

	mu        sync.Mutex
	peers     map[string]struct{}
	listeners map[int]ports.MeshListener
	nextSub   int
}

var _ ports.MeshNetwork = (*Node)(nil)

func (h *Hub) NewNode(id string) *Node {
	if id == "" {
		id = uuid.NewString()
	}
	return &Node{
		id:        id,
		hub:       h,
		peers:     map[string]struct{}{},
		listeners: map[int]ports.MeshListener{},
	}
}

func (n *Node) ID() string {
	return n.id
}

func (n *Node) InitiateConnection(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	desc := description{SessionID: uuid.NewString(), NodeID: n.id, Role: domain.SignalOffer}

	n.hub.mu.Lock()
	n.hub.offers[desc.SessionID] = n
	n.hub.mu.Unlock()

	return n.emitSignal(domain.Signal{Type: domain.SignalOffer, Payload: desc.String()})
}

func (n *Node) ReceiveConnection(ctx context.Context, offer domain.Signal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if offer.Type != domain.SignalOffer {
		return fmt.Errorf("receive connection: expected offer, got %s", offer.Type)
	}

	desc, err := parseDescription(offer)
	if err != nil {
		return fmt.Errorf("receive connection: %w", err)
	}

	n.hub.mu.Lock()
	initiator, ok := n.hub.offers[desc.SessionID]
	if ok {
		n.hub.answers[desc.SessionID] = n
	}
	n.hub.mu.Unlock()

	if !ok {
		return fmt.Errorf("receive connection: %w %s", ErrUnknownSession, desc.SessionID)
	}
	if initiator == n {
		return fmt.Errorf("receive connection: cannot answer own offer")
	}

	answer := description{SessionID: desc.SessionID, NodeID: n.id, Role: domain.SignalAnswer}
	return n.emitSignal(domain.Signal{Type: domain.SignalAnswer, Payload: answer.String()})
}

func (n *Node) CompleteHandshake(ctx context.Context, answer domain.Signal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if answer.Type != domain.SignalAnswer {
		return fmt.Errorf("complete handshake: expected answer, got %s", answer.Type)
	}

	desc, err := parseDescription(answer)
	if err != nil {
		return fmt.Errorf("complete handshake: %w", err)
	}

	n.hub.mu.Lock()
	initiator := n.hub.offers[desc.SessionID]
	responder := n.hub.answers[desc.SessionID]
	unreachable := n.hub.unreachable
	if initiator == n && responder != nil {
		delete(n.hub.offers, desc.SessionID)
		delete(n.hub.answers, desc.SessionID)
	}
	n.hub.mu.Unlock()

	if initiator != n || responder == nil {
		return fmt.Errorf("complete handshake: %w %s", ErrUnknownSession, desc.SessionID)
	}
	if unreachable {
		return nil
	}

	n.link(responder)
	responder.link(n)
	n.notifyPeerCount()
	responder.notifyPeerCount()

	return nil
}

func (n *Node) CompressSignal(signal domain.Signal) (string, error) {
	return signalcodec.Encode(signal)
}

func (n *Node) ExpandSignal(text string) (domain.Signal, error) {
	return signalcodec.Decode(text)
}

func (n *Node) PeerCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.peers)
}

func (n *Node) ConnectedPeerIDs() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	ids := make([]string, 0, len(n.peers))
	for id := range n.peers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

func (n *Node) Peers() []domain.PeerRecord {
	ids := n.ConnectedPeerIDs()
	records := make([]domain.PeerRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, domain.PeerRecord{ID: id, Status: domain.PeerOnline})
	}
	return records
}

func (n *Node) Subscribe(listener ports.MeshListener) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextSub++
	id := n.nextSub
	n.listeners[id] = listener

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

// ReportError forwards a transport error to listeners.
func (n *Node) ReportError(message string) {
	for _, l := range n.snapshotListeners() {
		l.HandlePeerError(message)
	}
}

func (n *Node) link(peer *Node) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.peers[peer.id] = struct{}{}
}

func (n *Node) emitSignal(signal domain.Signal) error {
	encoded, err := signalcodec.Encode(signal)
	if err != nil {
		return err
	}
	for _, l := range n.snapshotListeners() {
		l.HandleSignal(encoded)
	}
	return nil
}

func (n *Node) notifyPeerCount() {
	for _, l := range n.snapshotListeners() {
		l.HandlePeerCountChanged()
	}
}

func (n *Node) snapshotListeners() []ports.MeshListener {
	n.mu.Lock()
	defer n.mu.Unlock()

	ids := make([]int, 0, len(n.listeners))
	for id := range n.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]ports.MeshListener, 0, len(ids))
	for _, id := range ids {
		out = append(out, n.listeners[id])
	}
	return out
}
