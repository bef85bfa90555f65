package toml

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/meshsos/internal/domain"
	"github.com/bnema/meshsos/internal/ports"
	"github.com/spf13/viper"
)

const (
	messagesPathKey = "messages.path"
	messagesFile    = "messages.toml"
)

// MessageRepository is the local SOS outbox.
type MessageRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.MessageRepository = (*MessageRepository)(nil)

func NewMessageRepository(cfg *viper.Viper) (*MessageRepository, error) {
	path, err := resolvePath(cfg, messagesPathKey, messagesFile)
	if err != nil {
		return nil, err
	}

	return &MessageRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *MessageRepository) Path() string {
	return r.path
}

func (r *MessageRepository) Insert(ctx context.Context, message domain.SOSMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := message.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	for _, entry := range file.Messages {
		if entry.ID == string(message.ID) {
			return fmt.Errorf("%w: duplicate id %s", domain.ErrInvalidMessage, message.ID)
		}
	}
	file.Messages = append(file.Messages, toMessageSchema(message))

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeTOMLFile(r.path, file)
}

func (r *MessageRepository) GetByID(ctx context.Context, id domain.MessageID) (domain.SOSMessage, error) {
	if err := ctx.Err(); err != nil {
		return domain.SOSMessage{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.SOSMessage{}, err
	}

	for _, entry := range file.Messages {
		if entry.ID == string(id) {
			return fromMessageSchema(entry), nil
		}
	}

	return domain.SOSMessage{}, domain.ErrMessageNotFound
}

// List returns every stored message, newest first.
func (r *MessageRepository) List(ctx context.Context) ([]domain.SOSMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	messages := make([]domain.SOSMessage, 0, len(file.Messages))
	for _, entry := range file.Messages {
		messages = append(messages, fromMessageSchema(entry))
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.After(messages[j].Timestamp)
	})

	return messages, nil
}

func (r *MessageRepository) UpdateStatus(ctx context.Context, id domain.MessageID, status domain.SOSStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !status.Valid() {
		return fmt.Errorf("%w: unsupported status %q", domain.ErrInvalidMessage, status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	for i := range file.Messages {
		if file.Messages[i].ID == string(id) {
			file.Messages[i].Status = string(status)
			return writeTOMLFile(r.path, file)
		}
	}

	return domain.ErrMessageNotFound
}

func (r *MessageRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := messagesFileSchema{}
	file.applyDefaults()

	return writeTOMLFile(r.path, file)
}

func (r *MessageRepository) readSchema() (messagesFileSchema, error) {
	var file messagesFileSchema
	if err := readTOMLFile(r.path, "messages", &file); err != nil {
		return messagesFileSchema{}, err
	}
	if err := file.validateVersion(); err != nil {
		return messagesFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func toMessageSchema(message domain.SOSMessage) messageSchema {
	schema := messageSchema{
		ID:              string(message.ID),
		Text:            message.Text,
		Timestamp:       formatTime(message.Timestamp),
		Status:          string(message.Status),
		IsAutoTriggered: message.IsAutoTriggered,
		IsPanic:         message.IsPanic,
		FallSeverity:    string(message.FallSeverity),
		SenderID:        message.SenderID,
		Hops:            message.Hops,
	}
	if message.FallImpact != nil {
		impact := *message.FallImpact
		schema.FallImpact = &impact
	}
	if message.Location != nil {
		schema.Location = &locationSchema{
			Latitude:  message.Location.Latitude,
			Longitude: message.Location.Longitude,
			Accuracy:  message.Location.Accuracy,
		}
	}

	return schema
}

func fromMessageSchema(schema messageSchema) domain.SOSMessage {
	message := domain.SOSMessage{
		ID:              domain.MessageID(schema.ID),
		Text:            schema.Text,
		Timestamp:       parseTime(schema.Timestamp),
		Status:          domain.SOSStatus(schema.Status),
		IsAutoTriggered: schema.IsAutoTriggered,
		IsPanic:         schema.IsPanic,
		FallSeverity:    domain.Severity(schema.FallSeverity),
		SenderID:        schema.SenderID,
		Hops:            schema.Hops,
	}
	if message.Status == "" {
		message.Status = domain.SOSQueued
	}
	if schema.FallImpact != nil {
		impact := *schema.FallImpact
		message.FallImpact = &impact
	}
	if schema.Location != nil {
		message.Location = &domain.Location{
			Latitude:  schema.Location.Latitude,
			Longitude: schema.Location.Longitude,
			Accuracy:  schema.Location.Accuracy,
		}
	}

	return message
}
