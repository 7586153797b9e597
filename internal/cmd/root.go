package cmd

import (
	"github.com/logicossoftware/go-pak/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command for the pakctl CLI and
// wires up all subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pakctl",
		Short: "pakctl - inspect, extract, and build PACK archives",
		Long: `pakctl works with PACK archives, the flat asset bundles used by
classic id Software games.

Use subcommands to perform different operations:
  - list: List the entries of an archive
  - info: Print archive statistics
  - extract: Write entries out to a directory
  - create: Build an archive from a directory tree`,
		Version:       version.Full(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a pakctl TOML config file")

	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewInfoCmd())
	rootCmd.AddCommand(NewExtractCmd())
	rootCmd.AddCommand(NewCreateCmd())

	return rootCmd
}
