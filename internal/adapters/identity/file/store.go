package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/meshsos/internal/domain"
	"github.com/bnema/meshsos/internal/ports"
)

const (
	storeDirMode = 0o700
	nodeFileMode = 0o600
	nodeFileName = "node_id"
)

// Store keeps this device's mesh node ID in a single file under root.
type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.IdentityStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

func (s *Store) Put(ctx context.Context, nodeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	trimmed := strings.TrimSpace(nodeID)
	if trimmed == "" {
		return errors.New("node id is empty")
	}
	if strings.ContainsAny(trimmed, "\r\n") {
		return fmt.Errorf("invalid node id %q", nodeID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.root, storeDirMode); err != nil {
		return fmt.Errorf("create identity directory: %w", err)
	}

	if err := os.WriteFile(s.path(), []byte(trimmed+"\n"), nodeFileMode); err != nil {
		return fmt.Errorf("write node id: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", domain.ErrIdentityNotFound
		}
		return "", fmt.Errorf("read node id: %w", err)
	}

	nodeID := strings.TrimSpace(string(data))
	if nodeID == "" {
		return "", domain.ErrIdentityNotFound
	}

	return nodeID, nil
}

func (s *Store) path() string {
	return filepath.Join(s.root, nodeFileName)
}
