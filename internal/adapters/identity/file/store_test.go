package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/meshsos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRejectsInvalidNodeIDs(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		nodeID  string
		wantErr string
	}{
		{name: "empty", nodeID: "", wantErr: "node id is empty"},
		{name: "whitespace", nodeID: "   ", wantErr: "node id is empty"},
		{name: "multi line", nodeID: "a\nb", wantErr: "invalid node id"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.nodeID)
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "identity")
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), " 6f1c2a9e-node "))

	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "6f1c2a9e-node", got)

	info, err := os.Stat(filepath.Join(root, nodeFileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(nodeFileMode), info.Mode().Perm())
}

func TestStoreGetMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	_, err := NewStore(t.TempDir()).Get(context.Background())
	require.ErrorIs(t, err, domain.ErrIdentityNotFound)
}

func TestStoreCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, NewStore(t.TempDir()).Put(ctx, "node"), context.Canceled)
}
