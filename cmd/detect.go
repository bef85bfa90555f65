package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/bnema/meshsos/internal/adapters/sensor/replay"
	"github.com/bnema/meshsos/internal/application"
	"github.com/bnema/meshsos/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

type sentResult struct {
	message domain.SOSMessage
	err     error
}

func newDetectCmd(app *app) *cobra.Command {
	var tracePath string
	var realtime bool
	var countdown time.Duration
	var dismiss bool
	var metricsAddr string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Replay a motion trace through the fall detector",
		Long:  "detect feeds accelerometer samples from a YAML trace (or the built-in fall trace) to the fall detector. A detected fall starts the confirmation countdown; when it runs out an automatic SOS is queued.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			location, err := locationFromFlags(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("countdown") {
				countdown = app.cfg.Confirmation.Countdown
			}

			trace := replay.FallTrace()
			if tracePath != "" {
				trace, err = replay.LoadTrace(tracePath)
				if err != nil {
					return err
				}
			}

			if metricsAddr != "" {
				stop, err := serveMetrics(app, metricsAddr)
				if err != nil {
					return err
				}
				defer stop()
			}

			return runDetect(cmd, app, detectOptions{
				trace:     trace,
				realtime:  realtime,
				countdown: countdown,
				dismiss:   dismiss,
				location:  location,
				asJSON:    asJSON,
			})
		},
	}

	cmd.Flags().StringVar(&tracePath, "trace", "", "Path to a YAML motion trace (defaults to the built-in fall trace)")
	cmd.Flags().BoolVar(&realtime, "realtime", false, "Replay samples at their recorded pace")
	cmd.Flags().DurationVar(&countdown, "countdown", application.DefaultConfirmationCountdown, "Time to dismiss a detected fall before the SOS goes out")
	cmd.Flags().BoolVar(&dismiss, "dismiss", false, "Dismiss a detected fall as a false alarm instead of sending")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while running")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the automatic SOS as JSON")
	addLocationFlags(cmd)
	return cmd
}

type detectOptions struct {
	trace     replay.Trace
	realtime  bool
	countdown time.Duration
	dismiss   bool
	location  *domain.Location
	asJSON    bool
}

func runDetect(cmd *cobra.Command, app *app, opts detectOptions) error {
	ctx := cmd.Context()

	sensor := replay.New(opts.trace, replay.WithStart(app.now()), replay.WithPacing(opts.realtime))
	monitor := application.NewFallMonitor(sensor, app.cfg.FallDetection(), app.metrics, app.logger)
	confirmation := application.NewFallConfirmation(app.deadlines, app.deadlines, app.alerts, app.sos, opts.countdown, app.metrics, app.logger)
	confirmation.SetLocation(opts.location)

	sent := make(chan sentResult, 1)
	confirmation.OnSent(func(message domain.SOSMessage, err error) {
		sent <- sentResult{message: message, err: err}
	})

	var falls []domain.FallEvent
	monitor.Start(ctx, func(event domain.FallEvent) {
		falls = append(falls, event)
		confirmation.HandleFall(ctx, event)
	})
	if !monitor.Armed() {
		return fmt.Errorf("start fall monitor: %w", domain.ErrSensorUnavailable)
	}

	count, err := sensor.Replay(ctx)
	monitor.Stop()
	if err != nil {
		confirmation.Cancel()
		return fmt.Errorf("replay %s: %w", opts.trace.Name, err)
	}

	out := cmd.OutOrStdout()
	if len(falls) == 0 {
		_, err := fmt.Fprintf(out, "No fall detected (%d samples)\n", count)
		return err
	}

	last := falls[len(falls)-1]
	if _, err := fmt.Fprintf(out, "Fall detected: %s impact (%.1f m/s²)\n", last.Severity, last.PeakImpact); err != nil {
		return err
	}

	if opts.dismiss {
		confirmation.Cancel()
		_, err := fmt.Fprintln(out, "Dismissed as false alarm")
		return err
	}

	wait := func(ctx context.Context) (domain.SOSMessage, error) {
		select {
		case result := <-sent:
			return result.message, result.err
		case <-ctx.Done():
			return domain.SOSMessage{}, ctx.Err()
		}
	}

	var message domain.SOSMessage
	if opts.asJSON {
		message, err = wait(ctx)
	} else {
		remaining := func() time.Duration {
			pending, ok := confirmation.Pending()
			if !ok {
				return 0
			}
			return pending.Remaining
		}
		message, err = runCountdownSpinner(ctx, cmd.ErrOrStderr(), remaining, wait)
	}
	if err != nil {
		if ctx.Err() != nil && confirmation.Cancel() {
			_, werr := fmt.Fprintln(out, "Dismissed as false alarm")
			return werr
		}
		return fmt.Errorf("send automatic sos: %w", err)
	}

	if opts.asJSON {
		return writeMessageOutput(cmd, message, true)
	}
	_, err = fmt.Fprintf(out, "Automatic SOS queued %s\n", message.ID)
	return err
}

func serveMetrics(app *app, addr string) (func(), error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen for metrics: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))
	server := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error("metrics server stopped", "err", err)
		}
	}()
	app.logger.Info("serving metrics", "addr", listener.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}, nil
}
