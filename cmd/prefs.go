package cmd

import (
	"fmt"

	"github.com/bnema/meshsos/internal/application"
	"github.com/bnema/meshsos/internal/domain"
	"github.com/spf13/cobra"
)

func newPrefsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change alert feedback preferences",
	}

	cmd.AddCommand(newPrefsShowCmd(app), newPrefsSetCmd(app))
	return cmd
}

func newPrefsShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show alert preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefs, err := app.alerts.Prefs(cmd.Context())
			if err != nil {
				return fmt.Errorf("load alert preferences: %w", err)
			}
			return writePrefs(cmd, prefs)
		},
	}
}

func newPrefsSetCmd(app *app) *cobra.Command {
	var sound bool
	var haptic bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change alert preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var update application.AlertPrefsUpdate
			if cmd.Flags().Changed("sound") {
				update.Sound = &sound
			}
			if cmd.Flags().Changed("haptic") {
				update.Haptic = &haptic
			}
			if update.Empty() {
				return fmt.Errorf("nothing to change: pass --sound or --haptic")
			}

			prefs, err := app.alerts.SetPrefs(cmd.Context(), update)
			if err != nil {
				return fmt.Errorf("save alert preferences: %w", err)
			}
			return writePrefs(cmd, prefs)
		},
	}

	cmd.Flags().BoolVar(&sound, "sound", true, "Play the alarm sound on a detected fall")
	cmd.Flags().BoolVar(&haptic, "haptic", true, "Vibrate on a detected fall")
	return cmd
}

func writePrefs(cmd *cobra.Command, prefs domain.AlertPrefs) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "sound: %s\nhaptic: %s\n", onOff(prefs.Sound), onOff(prefs.Haptic))
	return err
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
