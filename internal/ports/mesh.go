package ports

import (
	"context"

	"github.com/bnema/meshsos/internal/domain"
)

type MeshNetwork interface {
	InitiateConnection(ctx context.Context) error
	ReceiveConnection(ctx context.Context, signal domain.Signal) error
	CompleteHandshake(ctx context.Context, signal domain.Signal) error
	CompressSignal(signal domain.Signal) (string, error)
	ExpandSignal(text string) (domain.Signal, error)
	PeerCount() int
	ConnectedPeerIDs() []string
	Subscribe(listener MeshListener) (unsubscribe func())
}

// MeshListener receives mesh notifications. Implementations must not block.
type MeshListener interface {
	HandleSignal(encoded string)
	HandlePeerCountChanged()
	HandlePeerError(message string)
}

type Scanner interface {
	Stop(ctx context.Context) error
}
