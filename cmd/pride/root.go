package main

import (
	"github.com/mbezjak/pride/internal/gradle"
	"github.com/mbezjak/pride/internal/vcs"
	gitvcs "github.com/mbezjak/pride/internal/vcs/git"
	"github.com/mbezjak/pride/internal/workspace"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pride",
		Short:   "Manage a pride of Gradle modules as a single workspace",
		Version: version,
	}

	cmd.PersistentFlags().String("dir", ".", "Directory to resolve the workspace from")

	cmd.AddCommand(
		newInitCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newListCmd(),
		newUpdateCmd(),
		newRefreshCmd(),
	)

	return cmd
}

// newResolver wires the available VCS backends.
func newResolver() vcs.Resolver {
	return vcs.NewRegistry(gitvcs.New())
}

// requireWorkspace locates the workspace at or above --dir.
func requireWorkspace(cmd *cobra.Command) (*workspace.Workspace, error) {
	dir, _ := cmd.Flags().GetString("dir")
	return workspace.Require(dir, newResolver())
}

// connectorFor builds the introspection connector from the workspace
// config, forwarding gradle's stderr to the command's error stream.
func connectorFor(cmd *cobra.Command, ws *workspace.Workspace) gradle.Connector {
	g := ws.Config.Gradle
	return gradle.NewCLIConnector(g.Command, g.Args, cmd.ErrOrStderr())
}
