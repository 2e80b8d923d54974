package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Regenerate the aggregate build descriptor",
		Args:  cobra.NoArgs,
		RunE:  runRefresh,
	}
}

func runRefresh(cmd *cobra.Command, _ []string) error {
	ws, err := requireWorkspace(cmd)
	if err != nil {
		return err
	}
	if err := ws.Reinitialize(connectorFor(cmd, ws)); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Build descriptor regenerated.")
	return nil
}
