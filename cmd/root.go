package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "meshsos",
		Short:         "MeshSOS: offline-first emergency alerts",
		Long:          "meshsos detects falls from motion traces, keeps a local SOS outbox and pairs devices over a mesh with a QR offer/answer handshake.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newDetectCmd(app),
		newSOSCmd(app),
		newMessagesCmd(app),
		newPrefsCmd(app),
		newPairCmd(app),
	)

	return rootCmd
}
