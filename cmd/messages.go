package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/meshsos/internal/adapters/render/feed"
	"github.com/spf13/cobra"
)

func newMessagesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "messages",
		Aliases: []string{"feed"},
		Short:   "Inspect the local SOS outbox",
	}

	cmd.AddCommand(newMessagesListCmd(app), newMessagesClearCmd(app))
	return cmd
}

func newMessagesListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List messages, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			messages, err := app.sos.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list messages: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(messages)
			}

			rendered, err := app.feedRenderer(messages, feed.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render messages: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print messages as JSON")
	return cmd
}

func newMessagesClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every stored message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.sos.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear messages: %w", err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Messages cleared")
			return err
		},
	}
}
