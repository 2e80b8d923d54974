package main

import (
	"encoding/json"
	"path/filepath"

	"github.com/mbezjak/pride/internal/registry"
	"github.com/mbezjak/pride/internal/ui"
	"github.com/mbezjak/pride/internal/workspace"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the modules of the pride",
		RunE:  runList,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type moduleStatus struct {
	Name   string `json:"name"`
	VCS    string `json:"vcs"`
	Valid  bool   `json:"valid"`
	Cloned bool   `json:"cloned"`
	Branch string `json:"branch,omitempty"`
	Head   string `json:"head,omitempty"`
	Dirty  bool   `json:"dirty"`
}

func runList(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	ws, err := requireWorkspace(cmd)
	if err != nil {
		return err
	}

	modules := ws.Modules()
	statuses := make([]moduleStatus, 0, len(modules))
	for _, m := range modules {
		statuses = append(statuses, collectStatus(ws, m.Name))
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	tbl := ui.NewTable(out, "NAME", "VCS", "BRANCH", "HEAD", "DIRTY", "VALID")
	for _, s := range statuses {
		tbl.Row(s.Name, s.VCS, s.Branch, s.Head, yesNo(s.Dirty), yesNo(s.Valid))
	}
	return tbl.Flush()
}

func collectStatus(ws *workspace.Workspace, name string) moduleStatus {
	m, err := ws.GetModule(name)
	if err != nil {
		return moduleStatus{Name: name}
	}

	dir := filepath.Join(ws.Root, name)
	s := moduleStatus{
		Name:  name,
		VCS:   m.VCS.Type(),
		Valid: registry.IsValidModuleDir(dir),
	}

	if !m.VCS.IsCloned(dir) {
		return s
	}
	s.Cloned = true

	if branch, err := m.VCS.Branch(dir); err == nil {
		if branch == "" {
			s.Branch = "(detached)"
		} else {
			s.Branch = branch
		}
	}
	if head, err := m.VCS.Head(dir); err == nil {
		s.Head = head
	}
	if dirty, err := m.VCS.IsDirty(dir); err == nil {
		s.Dirty = dirty
	}
	return s
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
