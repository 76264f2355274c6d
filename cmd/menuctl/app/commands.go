// Package app implements the menuctl commands.
package app

import (
	"github.com/spf13/cobra"

	"qr-menu/pkg/log"
)

// NewRootCmd builds the menuctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "menuctl",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Short:             "Offline tools for QR menu filters",
		Long: `menuctl runs the menu filter engine against a catalog file without a server.
A catalog file is a JSON document with items, tags, categories and filters.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().Bool("debug", false, "Enable debug logging")

	root.AddCommand(newEvalCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newMigrateCmd())
	return root
}

// newLogger writes to stderr so stdout stays clean for command output.
func newLogger(cmd *cobra.Command) log.Logger {
	level := "warn"
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = "debug"
	}
	return log.Init(log.ZapConfig{
		Level:    level,
		Mode:     log.ModeDevelopment,
		Encoding: log.EncodingConsole,
		Output:   cmd.ErrOrStderr(),
	})
}

func addCatalogFlag(cmd *cobra.Command) {
	cmd.Flags().String("catalog", "catalog.json", "Path to the catalog file")
}
