package main

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mbezjak/pride/internal/workspace"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// --- inputModel: bubbletea model for text input with validation ---

type inputModel struct {
	textInput textinput.Model
	title     string
	validate  func(string) error
	errMsg    string
	done      bool
	aborted   bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			val := m.textInput.Value()
			if m.validate != nil {
				if err := m.validate(val); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}
	m.errMsg = ""
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.textInput.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// --- confirmModel: bubbletea model for yes/no confirmation ---

type confirmModel struct {
	title   string
	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "y", "Y":
			m.value = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.value = false
			m.done = true
			return m, tea.Quit
		case "left", "right", "tab", "h", "l":
			m.value = !m.value
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yes := " Yes "
	no := " No "
	if m.value {
		yes = selectedStyle.Render(" Yes ")
	} else {
		no = selectedStyle.Render(" No ")
	}
	return fmt.Sprintf("%s %s / %s\n", titleStyle.Render(m.title), yes, no)
}

// --- prompt helpers ---

func promptInput(title, placeholder string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	m := inputModel{
		textInput: ti,
		title:     title,
		validate:  validate,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	rm := result.(inputModel)
	if rm.aborted {
		return "", fmt.Errorf("user aborted")
	}
	return rm.textInput.Value(), nil
}

func promptConfirm(title string) (bool, error) {
	m := confirmModel{
		title: title,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, err
	}
	rm := result.(confirmModel)
	if rm.aborted {
		return false, fmt.Errorf("user aborted")
	}
	return rm.value, nil
}

// moduleNameFromURL extracts a module name from a repository URL.
// Handles both SSH (git@host:org/repo.git) and HTTPS (https://host/org/repo.git).
func moduleNameFromURL(url string) string {
	url = strings.TrimRight(url, "/")

	// SSH format: git@github.com:org/repo.git
	if idx := strings.LastIndex(url, ":"); idx != -1 && !strings.Contains(url, "://") {
		url = url[idx+1:]
	}

	name := path.Base(url)
	return strings.TrimSuffix(name, ".git")
}

// validateModuleName ensures a name is usable as a directory directly
// under the workspace root.
func validateModuleName(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("cannot infer a module name")
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("module name %q must not start with a dot", name)
	}
	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("module name %q must not contain path separators", name)
	}
	return nil
}

// interactiveAddModules runs an interactive loop collecting modules to
// add. Existing module names are rejected up front so a typo does not
// silently replace a registered module.
func interactiveAddModules(ws *workspace.Workspace, defaultVCS string) ([]addRequest, error) {
	var requests []addRequest
	seen := make(map[string]bool)
	for _, m := range ws.Modules() {
		seen[m.Name] = true
	}

	for {
		url, err := promptInput(
			"Repository URL",
			"git@github.com:org/repo.git",
			func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("repository URL is required")
				}
				return nil
			},
		)
		if err != nil {
			return nil, err
		}
		url = strings.TrimSpace(url)

		suggested := moduleNameFromURL(url)
		name, err := promptInput(
			"Module name",
			suggested,
			func(s string) error {
				s = strings.TrimSpace(s)
				if s == "" {
					s = suggested
				}
				if err := validateModuleName(s); err != nil {
					return err
				}
				if seen[s] {
					return fmt.Errorf("module %q is already part of the pride", s)
				}
				return nil
			},
		)
		if err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			name = suggested
		}

		vcsType, err := promptInput("VCS type", defaultVCS, nil)
		if err != nil {
			return nil, err
		}
		vcsType = strings.TrimSpace(vcsType)
		if vcsType == "" {
			vcsType = defaultVCS
		}

		seen[name] = true
		requests = append(requests, addRequest{Name: name, URL: url, VCS: vcsType})

		addMore, err := promptConfirm("Add another module?")
		if err != nil {
			return nil, err
		}
		if !addMore {
			break
		}
	}

	return requests, nil
}
