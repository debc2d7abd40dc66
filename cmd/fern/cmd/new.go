package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-fern/fern/cmd/fern/internal/scaffold"
)

var newModulePath string

var newCmd = &cobra.Command{
	Use:   "new <dir>",
	Short: "Scaffold a new fern project",
	Long: `New creates a starter fern project in the given directory: a go.mod
requiring fern and a main.go with a stateful counter component.

The module path defaults to example.com/<dir>; pass --module to set it.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&newModulePath, "module", "", "module path for the new project")
}

func runNew(cmd *cobra.Command, args []string) error {
	dir := args[0]
	modulePath := newModulePath
	if modulePath == "" {
		modulePath = "example.com/" + filepath.Base(dir)
	}

	if err := scaffold.Create(dir, modulePath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created fern project in %s\n", dir)
	fmt.Fprintf(cmd.OutOrStdout(), "  module %s\n\nNext steps:\n  cd %s\n  go mod tidy\n  go run .\n", modulePath, dir)
	return nil
}
