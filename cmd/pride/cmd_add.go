package main

import (
	"fmt"
	"os"
	"path/filepath"

	gitvcs "github.com/mbezjak/pride/internal/vcs/git"
	"github.com/mbezjak/pride/internal/workspace"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [url ...]",
		Short: "Add modules to the pride",
		RunE:  runAdd,
	}
	cmd.Flags().String("vcs", "", "VCS backend type (default from workspace config)")
	cmd.Flags().String("name", "", "Module name (single URL only)")
	return cmd
}

// addRequest is one module to register and clone.
type addRequest struct {
	Name string
	URL  string
	VCS  string
}

func runAdd(cmd *cobra.Command, args []string) error {
	ws, err := requireWorkspace(cmd)
	if err != nil {
		return err
	}

	vcsType, _ := cmd.Flags().GetString("vcs")
	if vcsType == "" {
		vcsType = ws.Config.DefaultVCS
	}
	nameOverride, _ := cmd.Flags().GetString("name")

	var requests []addRequest
	if len(args) == 0 {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("no URLs provided and stdin is not a TTY; provide URLs as arguments")
		}
		requests, err = interactiveAddModules(ws, vcsType)
		if err != nil {
			return fmt.Errorf("interactive add: %w", err)
		}
	} else {
		requests, err = buildAddRequests(args, nameOverride, vcsType)
		if err != nil {
			return err
		}
	}

	if len(requests) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No modules added.")
		return nil
	}

	for _, req := range requests {
		if req.VCS == "git" && !gitvcs.IsInstalled() {
			return fmt.Errorf("git is not installed; cannot clone %s", req.Name)
		}
	}

	for _, req := range requests {
		if err := addOne(cmd, ws, req); err != nil {
			// Persist the modules added before the failure; the failed
			// one is no longer registered.
			if saveErr := ws.Save(); saveErr != nil {
				return saveErr
			}
			return err
		}
	}

	if err := ws.Save(); err != nil {
		return err
	}
	return ws.Reinitialize(connectorFor(cmd, ws))
}

// addOne registers the module and clones its working copy when absent.
// A failed clone unregisters the module again: the registry must never
// name a directory that does not exist, or every later load would
// reject it.
func addOne(cmd *cobra.Command, ws *workspace.Workspace, req addRequest) error {
	m, err := ws.AddModule(req.Name, req.VCS)
	if err != nil {
		return err
	}

	dir := filepath.Join(ws.Root, req.Name)
	if _, statErr := os.Stat(dir); statErr == nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Directory %s already exists; skipping clone\n", req.Name)
	} else if req.URL != "" {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Cloning %s ...\n", req.Name)
		if err := m.VCS.Clone(req.URL, dir); err != nil {
			_ = ws.RemoveModule(req.Name)
			return fmt.Errorf("cloning %s: %w", req.Name, err)
		}
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", req.Name, req.VCS)
	return nil
}

// buildAddRequests constructs requests from CLI arguments.
func buildAddRequests(urls []string, nameOverride, vcsType string) ([]addRequest, error) {
	if len(urls) > 1 && nameOverride != "" {
		return nil, fmt.Errorf("--name can only be used with a single URL")
	}

	requests := make([]addRequest, 0, len(urls))
	seen := make(map[string]bool, len(urls))
	for _, u := range urls {
		if u == "" {
			return nil, fmt.Errorf("empty URL is not allowed")
		}

		name := nameOverride
		if name == "" {
			name = moduleNameFromURL(u)
		}
		if err := validateModuleName(name); err != nil {
			return nil, fmt.Errorf("url %q: %w", u, err)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate module name %q in arguments", name)
		}
		seen[name] = true

		requests = append(requests, addRequest{Name: name, URL: u, VCS: vcsType})
	}
	return requests, nil
}

