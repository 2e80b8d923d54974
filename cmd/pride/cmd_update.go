package main

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/mbezjak/pride/internal/registry"
	"github.com/mbezjak/pride/internal/ui"
	"github.com/mbezjak/pride/internal/workspace"
	"github.com/spf13/cobra"
)

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [name ...]",
		Short: "Update module working copies and regenerate the build descriptor",
		RunE:  runUpdate,
	}
	cmd.Flags().Int("jobs", 4, "Number of parallel update workers")
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	if jobs < 1 {
		return fmt.Errorf("--jobs must be >= 1 (got %d)", jobs)
	}

	ws, err := requireWorkspace(cmd)
	if err != nil {
		return err
	}

	modules, err := selectModules(ws, args)
	if err != nil {
		return err
	}

	progress := ui.NewProgress(cmd.ErrOrStderr(), len(modules))
	if err := runParallelUpdate(ws, modules, jobs, progress); err != nil {
		return err
	}

	// Regenerate once after all workers finish, keeping descriptor
	// writes single-writer.
	if err := ws.Reinitialize(connectorFor(cmd, ws)); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Update complete.")
	return nil
}

// selectModules returns all modules, or only the named ones.
func selectModules(ws *workspace.Workspace, names []string) ([]*registry.Module, error) {
	if len(names) == 0 {
		return ws.Modules(), nil
	}
	modules := make([]*registry.Module, 0, len(names))
	for _, name := range names {
		m, err := ws.GetModule(name)
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, nil
}

func runParallelUpdate(ws *workspace.Workspace, modules []*registry.Module, jobs int, progress *ui.Progress) error {
	sem := make(chan struct{}, jobs)
	var wg sync.WaitGroup
	errCh := make(chan error, len(modules))

	for _, m := range modules {
		wg.Add(1)
		go func(m *registry.Module) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			dir := filepath.Join(ws.Root, m.Name)
			if !m.VCS.IsCloned(dir) {
				progress.Done(fmt.Sprintf("%s skipped (not cloned)", m.Name))
				return
			}
			if err := m.VCS.Update(dir); err != nil {
				errCh <- fmt.Errorf("module %s: %w", m.Name, err)
				return
			}
			progress.Done(fmt.Sprintf("%s updated", m.Name))
		}(m)
	}

	wg.Wait()
	close(errCh)

	for e := range errCh {
		return e
	}
	return nil
}
