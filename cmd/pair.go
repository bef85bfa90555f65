package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/meshsos/internal/adapters/mesh/loopback"
	"github.com/bnema/meshsos/internal/adapters/render/feed"
	"github.com/bnema/meshsos/internal/adapters/signalcodec"
	"github.com/bnema/meshsos/internal/application"
	"github.com/bnema/meshsos/internal/domain"
	"github.com/spf13/cobra"
)

const pairPollInterval = 25 * time.Millisecond

func newPairCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pair",
		Short: "QR offer/answer pairing between mesh nodes",
	}

	cmd.AddCommand(newPairDemoCmd(app), newPairDecodeCmd())
	return cmd
}

func newPairDemoCmd(app *app) *cobra.Command {
	var unreachable bool
	var connectTimeout time.Duration
	var successReset time.Duration

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Pair two in-process nodes through the full QR handshake",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			timings := app.cfg.HandshakeTimings()
			if cmd.Flags().Changed("connect-timeout") {
				timings.ConnectTimeout = connectTimeout
			}
			if cmd.Flags().Changed("success-reset") {
				timings.SuccessReset = successReset
			}
			if err := timings.Validate(); err != nil {
				return fmt.Errorf("invalid handshake timings: %w", err)
			}

			return runPairDemo(cmd, app, timings, unreachable)
		},
	}

	defaults := domain.DefaultHandshakeTimings()
	cmd.Flags().BoolVar(&unreachable, "unreachable", false, "Drop the transport so the handshake times out")
	cmd.Flags().DurationVar(&connectTimeout, "connect-timeout", defaults.ConnectTimeout, "How long CONNECTING may wait for a peer")
	cmd.Flags().DurationVar(&successReset, "success-reset", defaults.SuccessReset, "How long a successful pairing stays on screen")
	return cmd
}

func runPairDemo(cmd *cobra.Command, app *app, timings domain.HandshakeTimings, unreachable bool) error {
	ctx := cmd.Context()

	hub := loopback.NewHub()
	hub.SetUnreachable(unreachable)
	initiatorNode := hub.NewNode("")
	responderNode := hub.NewNode("")

	newCoordinator := func(node *loopback.Node) *application.HandshakeCoordinator {
		c := application.NewHandshakeCoordinator(node, app.deadlines, app.deadlines, timings,
			application.WithHandshakeMetrics(app.metrics),
			application.WithHandshakeLogger(app.logger.With("node", node.ID())),
		)
		c.Start(ctx)
		return c
	}
	initiator := newCoordinator(initiatorNode)
	defer initiator.Close()
	responder := newCoordinator(responderNode)
	defer responder.Close()

	show := func(c *application.HandshakeCoordinator) error {
		rendered, err := app.pairingRenderer(c.Snapshot(), feed.RenderOptions{Now: app.now()})
		if err != nil {
			return fmt.Errorf("render pairing: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return err
	}

	if err := initiator.Initiate(ctx); err != nil {
		return fmt.Errorf("initiate pairing: %w", err)
	}
	if err := show(initiator); err != nil {
		return err
	}

	if err := responder.Scan(ctx, initiator.Snapshot().Signal); err != nil {
		return fmt.Errorf("scan offer: %w", err)
	}
	if err := show(responder); err != nil {
		return err
	}

	if err := initiator.Advance(ctx); err != nil {
		return fmt.Errorf("advance to answer scan: %w", err)
	}
	if err := initiator.Scan(ctx, responder.Snapshot().Signal); err != nil {
		return fmt.Errorf("scan answer: %w", err)
	}
	if err := show(initiator); err != nil {
		return err
	}

	if err := waitForIdle(ctx, initiator, timings.ConnectTimeout+timings.SuccessReset+time.Second); err != nil {
		return err
	}
	if err := show(initiator); err != nil {
		return err
	}

	if initiatorNode.PeerCount() == 0 {
		if err := initiator.Snapshot().Err; err != nil {
			return fmt.Errorf("pairing failed: %w", err)
		}
		return fmt.Errorf("pairing failed: %w", domain.ErrMeshConnection)
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Paired %s with %s\n", shortNodeID(initiatorNode.ID()), shortNodeID(responderNode.ID()))
	return err
}

func waitForIdle(ctx context.Context, c *application.HandshakeCoordinator, limit time.Duration) error {
	ticker := time.NewTicker(pairPollInterval)
	defer ticker.Stop()

	deadline := time.NewTimer(limit)
	defer deadline.Stop()

	for c.State() != domain.StateIdle {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return fmt.Errorf("pairing did not settle within %s", limit)
		case <-ticker.C:
		}
	}
	return nil
}

func shortNodeID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func newPairDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <text>",
		Short: "Decode a scanned pairing code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			signal, err := signalcodec.Decode(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "type: %s\n%s\n", signal.Type, signal.Payload)
			return err
		},
	}
}
