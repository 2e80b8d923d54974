package main

import (
	"fmt"

	"github.com/mbezjak/pride/internal/gradle"
	"github.com/mbezjak/pride/internal/workspace"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a pride workspace in the target directory",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
	cmd.Flags().Bool("force", false, "Recreate the workspace even if one already exists at or above the directory")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	force, _ := cmd.Flags().GetBool("force")

	if !force {
		existing, found, _ := workspace.Locate(dir, newResolver())
		if found {
			at := dir
			if existing != nil {
				at = existing.Root
			}
			return fmt.Errorf("a pride workspace already exists at %s (use --force to recreate)", at)
		}
	}

	connector := gradle.NewCLIConnector("", nil, cmd.ErrOrStderr())
	ws, err := workspace.Create(dir, newResolver(), connector)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized pride workspace at %s\n", ws.Root)
	return nil
}
