package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/meshsos/internal/application"
	"github.com/bnema/meshsos/internal/domain"
	"github.com/spf13/cobra"
)

func newSOSCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sos",
		Short: "Queue SOS messages",
	}

	cmd.AddCommand(newSOSSendCmd(app), newSOSPanicCmd(app), newSOSStatusCmd(app))
	return cmd
}

func newSOSSendCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "send <text>",
		Short: "Queue an SOS message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location, err := locationFromFlags(cmd)
			if err != nil {
				return err
			}

			message, err := app.sos.Send(cmd.Context(), application.SendSOSCommand{
				Text:     strings.Join(args, " "),
				Location: location,
			})
			if err != nil {
				return fmt.Errorf("send sos: %w", err)
			}

			return writeMessageOutput(cmd, message, asJSON)
		},
	}

	addLocationFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the queued message as JSON")
	return cmd
}

func newSOSPanicCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "panic",
		Short: "Queue a panic button alert",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			location, err := locationFromFlags(cmd)
			if err != nil {
				return err
			}

			app.alerts.Trigger(cmd.Context())
			message, err := app.sos.Panic(cmd.Context(), location)
			if err != nil {
				return fmt.Errorf("send panic alert: %w", err)
			}

			return writeMessageOutput(cmd, message, asJSON)
		},
	}

	addLocationFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the queued message as JSON")
	return cmd
}

func newSOSStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <queued|sent|relayed|received>",
		Short: "Update the delivery status of a message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.MessageID(args[0])
			status := domain.SOSStatus(strings.ToLower(args[1]))
			if err := app.sos.MarkStatus(cmd.Context(), id, status); err != nil {
				return fmt.Errorf("update message status: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Message %s marked %s\n", id, status)
			return err
		},
	}
}

func addLocationFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("lat", 0, "Latitude in decimal degrees")
	cmd.Flags().Float64("lon", 0, "Longitude in decimal degrees")
	cmd.Flags().Float64("accuracy", 0, "Location accuracy in meters")
	cmd.MarkFlagsRequiredTogether("lat", "lon")
}

// locationFromFlags returns nil unless --lat and --lon were given.
func locationFromFlags(cmd *cobra.Command) (*domain.Location, error) {
	if !cmd.Flags().Changed("lat") {
		return nil, nil
	}

	lat, err := cmd.Flags().GetFloat64("lat")
	if err != nil {
		return nil, err
	}
	lon, err := cmd.Flags().GetFloat64("lon")
	if err != nil {
		return nil, err
	}
	accuracy, err := cmd.Flags().GetFloat64("accuracy")
	if err != nil {
		return nil, err
	}

	location := &domain.Location{Latitude: lat, Longitude: lon, Accuracy: accuracy}
	if err := location.Validate(); err != nil {
		return nil, fmt.Errorf("invalid location: %w", err)
	}
	return location, nil
}

func writeMessageOutput(cmd *cobra.Command, message domain.SOSMessage, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(message)
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Queued SOS %s\n", message.ID)
	return err
}
