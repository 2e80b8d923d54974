package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name> ...",
		Aliases: []string{"rm"},
		Short:   "Remove modules from the pride and delete their directories",
		Args:    cobra.MinimumNArgs(1),
		RunE:    runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	ws, err := requireWorkspace(cmd)
	if err != nil {
		return err
	}

	for _, name := range args {
		if err := ws.RemoveModule(name); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", name)
	}

	if err := ws.Save(); err != nil {
		return err
	}
	return ws.Reinitialize(connectorFor(cmd, ws))
}
