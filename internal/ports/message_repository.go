package ports

import (
	"context"

	"github.com/bnema/meshsos/internal/domain"
)

type MessageRepository interface {
	Insert(ctx context.Context, message domain.SOSMessage) error
	GetByID(ctx context.Context, id domain.MessageID) (domain.SOSMessage, error)
	List(ctx context.Context) ([]domain.SOSMessage, error)
	UpdateStatus(ctx context.Context, id domain.MessageID, status domain.SOSStatus) error
	Clear(ctx context.Context) error
}

type AlertPrefsRepository interface {
	Get(ctx context.Context) (domain.AlertPrefs, error)
	Save(ctx context.Context, prefs domain.AlertPrefs) error
}

type IdentityStore interface {
	Get(ctx context.Context) (string, error)
	Put(ctx context.Context, nodeID string) error
}
