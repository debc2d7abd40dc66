// Package cmd implements the fern CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "fern",
	Short: "fern - declarative UI trees, reconciled in Go",
	Long: `fern converts declarative node trees into live widget trees and keeps
them synchronized as state changes. This CLI renders scene files through
the real reconciler and scaffolds new fern projects.

Use "fern <command> --help" for more information about a command.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("fern version %s (built %s)\n", Version, BuildTime))
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fern version %s (built %s)\n", Version, BuildTime)
	},
}
