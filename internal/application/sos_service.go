package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/meshsos/internal/domain"
	"github.com/bnema/meshsos/internal/ports"
	"github.com/google/uuid"
)

type SOSService struct {
	repo     ports.MessageRepository
	identity ports.IdentityStore
	clock    ports.Clock
	metrics  ports.Metrics
	logger   *slog.Logger
	newID    func() string
}

func NewSOSService(repo ports.MessageRepository, identity ports.IdentityStore, clock ports.Clock, metrics ports.Metrics, logger *slog.Logger) *SOSService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}

	return &SOSService{
		repo:     repo,
		identity: identity,
		clock:    clock,
		metrics:  metrics,
		logger:   loggerOrDiscard(logger),
		newID:    uuid.NewString,
	}
}

// NodeID returns this device's mesh identity, minting one on first use.
func (s *SOSService) NodeID(ctx context.Context) (string, error) {
	nodeID, err := s.identity.Get(ctx)
	if err == nil {
		return nodeID, nil
	}
	if !errors.Is(err, domain.ErrIdentityNotFound) {
		return "", fmt.Errorf("get node id: %w", err)
	}

	nodeID = s.newID()
	if err := s.identity.Put(ctx, nodeID); err != nil {
		return "", fmt.Errorf("store node id: %w", err)
	}
	s.logger.Info("minted node identity", "node_id", nodeID)

	return nodeID, nil
}

func (s *SOSService) Send(ctx context.Context, cmd SendSOSCommand) (domain.SOSMessage, error) {
	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		return domain.SOSMessage{}, fmt.Errorf("%w: text is required", domain.ErrInvalidMessage)
	}

	return s.record(ctx, domain.SOSMessage{Text: text, Location: cmd.Location})
}

func (s *SOSService) Panic(ctx context.Context, location *domain.Location) (domain.SOSMessage, error) {
	return s.record(ctx, domain.SOSMessage{
		Text:     domain.PanicMessageText,
		Location: location,
		IsPanic:  true,
	})
}

func (s *SOSService) SendFallAlert(ctx context.Context, event domain.FallEvent, location *domain.Location) (domain.SOSMessage, error) {
	impact := event.PeakImpact
	return s.record(ctx, domain.SOSMessage{
		Text:            domain.FallMessageText(event),
		Location:        location,
		IsAutoTriggered: true,
		FallSeverity:    event.Severity,
		FallImpact:      &impact,
	})
}

func (s *SOSService) List(ctx context.Context) ([]domain.SOSMessage, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

func (s *SOSService) MarkStatus(ctx context.Context, id domain.MessageID, status domain.SOSStatus) error {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update message %s: %w", id, err)
	}
	return nil
}

func (s *SOSService) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear messages: %w", err)
	}
	return nil
}

func (s *SOSService) record(ctx context.Context, message domain.SOSMessage) (domain.SOSMessage, error) {
	sender, err := s.NodeID(ctx)
	if err != nil {
		return domain.SOSMessage{}, err
	}

	message.ID = domain.MessageID(s.newID())
	message.Timestamp = s.clock.Now()
	message.Status = domain.SOSQueued
	message.SenderID = sender
	message.Hops = 0

	if err := message.Validate(); err != nil {
		return domain.SOSMessage{}, err
	}
	if err := s.repo.Insert(ctx, message); err != nil {
		return domain.SOSMessage{}, fmt.Errorf("insert message: %w", err)
	}

	s.metrics.SOSRecorded(message.IsAutoTriggered, message.IsPanic)
	s.logger.Info("sos queued", "id", message.ID, "panic", message.IsPanic, "auto", message.IsAutoTriggered)

	return message, nil
}
