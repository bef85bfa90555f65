package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/meshsos/internal/domain"
	"github.com/bnema/meshsos/internal/ports"
)

const DefaultConfirmationCountdown = 5 * time.Second

// FallConfirmation gives the user a countdown to dismiss a detected fall
// before an automatic SOS goes out.
type FallConfirmation struct {
	deadlines ports.Deadlines
	clock     ports.Clock
	alerts    *AlertService
	sos       *SOSService
	countdown time.Duration
	metrics   ports.Metrics
	logger    *slog.Logger

	mu         sync.Mutex
	pending    *PendingFall
	handle     ports.DeadlineHandle
	generation uint64
	onSent     func(domain.SOSMessage, error)
	location   *domain.Location
}

func NewFallConfirmation(deadlines ports.Deadlines, clock ports.Clock, alerts *AlertService, sos *SOSService, countdown time.Duration, metrics ports.Metrics, logger *slog.Logger) *FallConfirmation {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if countdown <= 0 {
		countdown = DefaultConfirmationCountdown
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}

	return &FallConfirmation{
		deadlines: deadlines,
		clock:     clock,
		alerts:    alerts,
		sos:       sos,
		countdown: countdown,
		metrics:   metrics,
		logger:    loggerOrDiscard(logger),
	}
}

// OnSent registers fn to run after every countdown that ends in a send
// attempt.
func (c *FallConfirmation) OnSent(fn func(domain.SOSMessage, error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onSent = fn
}

// SetLocation sets the position attached to automatic alerts. nil sends
// them without one.
func (c *FallConfirmation) SetLocation(location *domain.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.location = location
}

// HandleFall alerts the user and (re)starts the countdown for event.
func (c *FallConfirmation) HandleFall(ctx context.Context, event domain.FallEvent) {
	if c.alerts != nil {
		c.alerts.Trigger(ctx)
	}

	sendCtx := context.WithoutCancel(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != nil {
		c.deadlines.Cancel(c.handle)
		c.logger.Info("fall replaced pending countdown", "severity", event.Severity)
	}
	c.generation++
	generation := c.generation
	expires := c.clock.Now().Add(c.countdown)
	c.pending = &PendingFall{Event: event, ExpiresAt: expires}
	c.handle = c.deadlines.Arm(c.countdown, func() {
		c.expire(sendCtx, generation)
	})
}

// Cancel dismisses the pending fall. It reports whether one was pending.
func (c *FallConfirmation) Cancel() bool {
	c.mu.Lock()
	if c.pending == nil {
		c.mu.Unlock()
		return false
	}
	c.deadlines.Cancel(c.handle)
	c.pending = nil
	c.handle = 0
	c.generation++
	c.mu.Unlock()

	c.metrics.FallConfirmed(ports.ConfirmationCancelled)
	c.logger.Info("fall dismissed as false alarm")
	return true
}

func (c *FallConfirmation) Pending() (PendingFall, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil {
		return PendingFall{}, false
	}
	pending := *c.pending
	pending.Remaining = pending.ExpiresAt.Sub(c.clock.Now())
	if pending.Remaining < 0 {
		pending.Remaining = 0
	}
	return pending, true
}

func (c *FallConfirmation) expire(ctx context.Context, generation uint64) {
	c.mu.Lock()
	if c.pending == nil || c.generation != generation {
		c.mu.Unlock()
		return
	}
	event := c.pending.Event
	c.pending = nil
	c.handle = 0
	onSent := c.onSent
	location := c.location
	c.mu.Unlock()

	msg, err := c.sos.SendFallAlert(ctx, event, location)
	if err != nil {
		c.metrics.FallConfirmed(ports.ConfirmationSendFailed)
		c.logger.Error("send automatic sos", "err", err)
	} else {
		c.metrics.FallConfirmed(ports.ConfirmationSent)
	}
	if onSent != nil {
		onSent(msg, err)
	}
}
