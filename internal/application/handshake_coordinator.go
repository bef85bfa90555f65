package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/bnema/meshsos/internal/domain"
	"github.com/bnema/meshsos/internal/ports"
)

type HandshakeOption func(*HandshakeCoordinator)

func WithScanner(scanner ports.Scanner) HandshakeOption {
	return func(c *HandshakeCoordinator) { c.scanner = scanner }
}

func WithHandshakeMetrics(metrics ports.Metrics) HandshakeOption {
	return func(c *HandshakeCoordinator) { c.metrics = metrics }
}

func WithHandshakeLogger(logger *slog.Logger) HandshakeOption {
	return func(c *HandshakeCoordinator) { c.logger = logger }
}

// HandshakeCoordinator drives one QR offer/answer pairing at a time. Every
// input is turned into a domain event and applied under the lock; mesh calls
// requested by the transition run after the lock is released, so mesh
// callbacks may re-enter the coordinator.
type HandshakeCoordinator struct {
	mesh      ports.MeshNetwork
	deadlines ports.Deadlines
	clock     ports.Clock
	timings   domain.HandshakeTimings
	scanner   ports.Scanner
	metrics   ports.Metrics
	logger    *slog.Logger

	mu            sync.Mutex
	session       domain.HandshakeSession
	lastErr       error
	lastPeerCount int
	deadline      ports.DeadlineHandle
	log           handshakeLog
	baseCtx       context.Context
	unsubscribe   func()
}

var _ ports.MeshListener = (*HandshakeCoordinator)(nil)

func NewHandshakeCoordinator(mesh ports.MeshNetwork, deadlines ports.Deadlines, clock ports.Clock, timings domain.HandshakeTimings, opts ...HandshakeOption) *HandshakeCoordinator {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	c := &HandshakeCoordinator{
		mesh:      mesh,
		deadlines: deadlines,
		clock:     clock,
		timings:   timings,
		session:   domain.NewHandshakeSession(),
		baseCtx:   context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.metrics == nil {
		c.metrics = ports.NopMetrics{}
	}
	c.logger = loggerOrDiscard(c.logger)

	return c
}

// Start subscribes to mesh notifications. ctx is used for mesh calls that
// are triggered by notifications and timers rather than by a caller.
func (c *HandshakeCoordinator) Start(ctx context.Context) {
	c.mu.Lock()
	if c.unsubscribe != nil {
		c.mu.Unlock()
		return
	}
	c.baseCtx = context.WithoutCancel(ctx)
	c.lastPeerCount = c.mesh.PeerCount()
	c.mu.Unlock()

	unsubscribe := c.mesh.Subscribe(c)

	c.mu.Lock()
	c.unsubscribe = unsubscribe
	c.mu.Unlock()
}

func (c *HandshakeCoordinator) Close() {
	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.deadlines.Cancel(c.deadline)
	c.deadline = 0
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (c *HandshakeCoordinator) Initiate(ctx context.Context) error {
	return c.dispatch(ctx, domain.InitiateEvent{})
}

func (c *HandshakeCoordinator) Advance(ctx context.Context) error {
	return c.dispatch(ctx, domain.AdvanceEvent{})
}

func (c *HandshakeCoordinator) Reset(ctx context.Context) error {
	return c.dispatch(ctx, domain.ResetEvent{Reason: "user reset"})
}

// ProcessSignal applies scanned or pasted text to the handshake.
func (c *HandshakeCoordinator) ProcessSignal(ctx context.Context, text string) error {
	signal, err := c.mesh.ExpandSignal(text)
	if err == nil {
		err = signal.Validate()
	}
	if err != nil {
		c.logger.Debug("signal rejected", "err", err)
		return c.dispatch(ctx, domain.DecodeFailedEvent{Err: err})
	}

	return c.dispatch(ctx, domain.SignalDecodedEvent{Signal: signal})
}

// Scan handles a camera read. Reads arriving while a connection is being
// made or an answer is on screen are late frames of the same code.
func (c *HandshakeCoordinator) Scan(ctx context.Context, text string) error {
	switch c.State() {
	case domain.StateConnecting, domain.StateShowingAnswer:
		return nil
	}
	return c.ProcessSignal(ctx, text)
}

func (c *HandshakeCoordinator) Paste(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return c.ProcessSignal(ctx, text)
}

func (c *HandshakeCoordinator) State() domain.HandshakeState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.State
}

func (c *HandshakeCoordinator) Snapshot() HandshakeSnapshot {
	c.mu.Lock()
	snapshot := HandshakeSnapshot{
		State:     c.session.State,
		Role:      c.session.Role,
		Signal:    c.session.ActiveSignal,
		Status:    c.session.Status,
		Connected: c.session.Connected,
		Deadline:  c.session.Deadline,
		Err:       c.lastErr,
		Logs:      c.log.snapshot(),
	}
	c.mu.Unlock()

	snapshot.PeerCount = c.mesh.PeerCount()
	snapshot.PeerIDs = c.mesh.ConnectedPeerIDs()
	return snapshot
}

func (c *HandshakeCoordinator) HandleSignal(encoded string) {
	signal, err := c.mesh.ExpandSignal(encoded)
	if err != nil {
		c.logger.Warn("mesh emitted undecodable signal", "err", err)
		return
	}
	_ = c.dispatch(c.context(), domain.MeshSignalEvent{Signal: signal, Encoded: encoded})
}

func (c *HandshakeCoordinator) HandlePeerCountChanged() {
	current := c.mesh.PeerCount()

	c.mu.Lock()
	previous := c.lastPeerCount
	c.lastPeerCount = current
	c.mu.Unlock()

	_ = c.dispatch(c.context(), domain.PeerCountChangedEvent{Previous: previous, Current: current})
}

func (c *HandshakeCoordinator) HandlePeerError(message string) {
	_ = c.dispatch(c.context(), domain.PeerErrorEvent{Message: message})
}

func (c *HandshakeCoordinator) context() context.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.baseCtx
}

func (c *HandshakeCoordinator) dispatch(ctx context.Context, ev domain.HandshakeEvent) error {
	c.mu.Lock()
	now := c.clock.Now()
	from := c.session.State
	transition := c.session.Apply(now, c.timings, ev)
	c.session = transition.Session
	if transition.Err != nil {
		c.lastErr = transition.Err
	} else if transition.Session.State != from {
		c.lastErr = nil
	}
	for _, line := range transition.Logs {
		c.log.add(now, line)
	}

	var pending []domain.HandshakeEffect
	for _, effect := range transition.Effects {
		switch effect := effect.(type) {
		case domain.CancelDeadlineEffect:
			c.cancelDeadlineLocked()
		case domain.ArmDeadlineEffect:
			c.armDeadlineLocked(effect)
		default:
			pending = append(pending, effect)
		}
	}
	to := c.session.State
	c.mu.Unlock()

	if from != to {
		c.metrics.HandshakeTransition(from, to)
		c.logger.Debug("handshake transition", "from", from, "to", to)
	}
	if transition.Err != nil {
		var herr *domain.HandshakeError
		if errors.As(transition.Err, &herr) && !errors.Is(herr, domain.ErrMeshConnection) && !errors.Is(herr, domain.ErrHandshakeTimeout) {
			c.metrics.HandshakeRejected(herr.Message)
		}
		c.logger.Info("handshake", "state", to, "err", transition.Err)
	}

	if err := c.runEffects(ctx, pending); err != nil {
		return err
	}

	return transition.Err
}

// runEffects performs mesh work in order. The first failing call resets the
// session and its error is returned.
func (c *HandshakeCoordinator) runEffects(ctx context.Context, effects []domain.HandshakeEffect) error {
	for _, effect := range effects {
		var err error
		switch effect := effect.(type) {
		case domain.InitiateConnectionEffect:
			err = c.mesh.InitiateConnection(ctx)
		case domain.ReceiveConnectionEffect:
			err = c.mesh.ReceiveConnection(ctx, effect.Signal)
		case domain.CompleteHandshakeEffect:
			err = c.mesh.CompleteHandshake(ctx, effect.Signal)
		case domain.StopScanningEffect:
			if c.scanner != nil {
				if stopErr := c.scanner.Stop(ctx); stopErr != nil {
					c.logger.Debug("stop scanner", "err", stopErr)
				}
			}
		}
		if err != nil {
			return c.dispatch(ctx, domain.MeshFailureEvent{Err: err})
		}
	}
	return nil
}

func (c *HandshakeCoordinator) cancelDeadlineLocked() {
	if c.deadline == 0 {
		return
	}
	c.deadlines.Cancel(c.deadline)
	c.deadline = 0
}

func (c *HandshakeCoordinator) armDeadlineLocked(effect domain.ArmDeadlineEffect) {
	c.cancelDeadlineLocked()

	kind, generation := effect.Kind, effect.Generation
	c.deadline = c.deadlines.Arm(effect.After, func() {
		_ = c.dispatch(c.context(), domain.DeadlineElapsedEvent{Kind: kind, Generation: generation})
	})
}
