package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/meshsos/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessageRepo(t *testing.T, path string) *MessageRepository {
	t.Helper()

	config := viper.New()
	config.Set("messages.path", path)
	repo, err := NewMessageRepository(config)
	require.NoError(t, err)
	return repo
}

func sampleMessage(id string, at time.Time) domain.SOSMessage {
	return domain.SOSMessage{
		ID:        domain.MessageID(id),
		Text:      "Need help at the trailhead",
		Timestamp: at,
		Status:    domain.SOSQueued,
		SenderID:  "node-1",
	}
}

func TestMessageRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newMessageRepo(t, filepath.Join(t.TempDir(), "messages.toml"))
	base := time.Date(2026, 3, 1, 9, 30, 0, 125_000_000, time.UTC)

	impact := 118.4
	fall := domain.SOSMessage{
		ID:              "msg-fall",
		Text:            domain.FallMessageText(domain.FallEvent{PeakImpact: impact, Severity: domain.SeveritySevere}),
		Location:        &domain.Location{Latitude: 45.1885, Longitude: 5.7245, Accuracy: 12},
		Timestamp:       base.Add(time.Minute),
		Status:          domain.SOSQueued,
		IsAutoTriggered: true,
		FallSeverity:    domain.SeveritySevere,
		FallImpact:      &impact,
		SenderID:        "node-1",
	}
	manual := sampleMessage("msg-manual", base)

	require.NoError(t, repo.Insert(context.Background(), manual))
	require.NoError(t, repo.Insert(context.Background(), fall))

	got, err := repo.GetByID(context.Background(), fall.ID)
	require.NoError(t, err)
	assert.Equal(t, fall, got)

	messages, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.SOSMessage{fall, manual}, messages)
}

func TestMessageRepositoryRejectsDuplicatesAndInvalidMessages(t *testing.T) {
	t.Parallel()

	repo := newMessageRepo(t, filepath.Join(t.TempDir(), "messages.toml"))
	msg := sampleMessage("msg-1", time.Now())

	require.NoError(t, repo.Insert(context.Background(), msg))
	require.ErrorIs(t, repo.Insert(context.Background(), msg), domain.ErrInvalidMessage)

	msg.ID = "msg-2"
	msg.Text = "  "
	require.ErrorIs(t, repo.Insert(context.Background(), msg), domain.ErrInvalidMessage)
}

func TestMessageRepositoryUpdateStatus(t *testing.T) {
	t.Parallel()

	repo := newMessageRepo(t, filepath.Join(t.TempDir(), "messages.toml"))
	msg := sampleMessage("msg-1", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Insert(context.Background(), msg))

	require.NoError(t, repo.UpdateStatus(context.Background(), msg.ID, domain.SOSRelayed))

	got, err := repo.GetByID(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SOSRelayed, got.Status)

	require.ErrorIs(t, repo.UpdateStatus(context.Background(), "missing", domain.SOSSent), domain.ErrMessageNotFound)
	require.ErrorIs(t, repo.UpdateStatus(context.Background(), msg.ID, "lost"), domain.ErrInvalidMessage)
}

func TestMessageRepositoryClear(t *testing.T) {
	t.Parallel()

	repo := newMessageRepo(t, filepath.Join(t.TempDir(), "messages.toml"))
	require.NoError(t, repo.Insert(context.Background(), sampleMessage("msg-1", time.Now())))

	require.NoError(t, repo.Clear(context.Background()))

	messages, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestMessageRepositoryInsertCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewMessageRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Insert(context.Background(), sampleMessage("msg-1", time.Now())))

	path := filepath.Join(homeDir, ".meshsos", "messages.toml")
	assert.Equal(t, path, repo.Path())
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestMessageRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newMessageRepo(t, filepath.Join(t.TempDir(), "missing", "messages.toml"))

	messages, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, messages)

	_, err = repo.GetByID(context.Background(), "msg-1")
	require.ErrorIs(t, err, domain.ErrMessageNotFound)
}

func TestMessageRepositoryListMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "messages.toml")
	require.NoError(t, os.WriteFile(path, []byte("messages = ["), 0o600))

	_, err := newMessageRepo(t, path).List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode messages file")
}

func TestMessageRepositoryBackwardCompatibleWhenOptionalFieldsMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "messages.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[[messages]]",
		"id = \"msg-1\"",
		"text = \"help\"",
		"timestamp = \"2026-03-01T09:00:00Z\"",
		"",
	}, "\n")), 0o600))

	msg, err := newMessageRepo(t, path).GetByID(context.Background(), "msg-1")
	require.NoError(t, err)
	assert.Equal(t, domain.SOSQueued, msg.Status)
	assert.Nil(t, msg.Location)
	assert.Nil(t, msg.FallImpact)
	assert.Zero(t, msg.Hops)
}

func TestMessageRepositoryInsertCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newMessageRepo(t, filepath.Join(t.TempDir(), "messages.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Insert(ctx, sampleMessage("msg-1", time.Now()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestMessageRepositoryConcurrentInsertsAcrossInstancesPreserveAllMessages(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "messages.toml")
	repoA := newMessageRepo(t, path)
	repoB := newMessageRepo(t, path)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(repo *MessageRepository, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repo.Insert(context.Background(), sampleMessage(prefix+strconv.Itoa(i), time.Now()))
		}
	}
	go write(repoA, "msg-a-")
	go write(repoB, "msg-b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	messages, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, messages, perRepoWrites*2)
}

func TestMessageRepositorySerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "messages.toml")
	require.NoError(t, newMessageRepo(t, path).Insert(context.Background(), sampleMessage("msg-1", time.Now())))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
}

func TestMessageRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "messages.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 999\n\nmessages = []\n"), 0o600))

	_, err := newMessageRepo(t, path).List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported messages schema version")
}
