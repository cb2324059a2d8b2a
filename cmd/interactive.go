package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Beastly713/polysecret/pkg/format"
	"github.com/Beastly713/polysecret/pkg/interp"
	"github.com/Beastly713/polysecret/pkg/pipeline"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Styles
var (
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	cursorStyle  = focusedStyle
	secretStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	docStyle     = lipgloss.NewStyle().Margin(1, 2)
)

const browseHelp = "Navigate: ↑/↓ | Enter: Open dir / Solve document | 'e': Evaluate p(x) | 'q': Quit"

type fileItem struct {
	path  string
	name  string
	isDir bool
}

type model struct {
	path     string
	files    []fileItem
	cursor   int
	status   string
	opts     pipeline.Options
	result   *pipeline.Result
	solved   string // path of the document behind result
	input    textinput.Model
	entering bool
	quitting bool
}

// isDocument reports whether name looks like a share document.
func isDocument(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func initialModel(dir string, opts pipeline.Options) model {
	ti := textinput.New()
	ti.Placeholder = "x"
	ti.CharLimit = 32
	ti.Width = 20

	m := model{
		path:   dir,
		status: browseHelp,
		opts:   opts,
		input:  ti,
	}
	m.loadFiles()
	return m
}

func (m *model) loadFiles() {
	entries, err := os.ReadDir(m.path)
	if err != nil {
		m.status = "Error reading directory"
		return
	}

	m.files = []fileItem{}
	// Parent directory
	m.files = append(m.files, fileItem{name: "..", isDir: true, path: filepath.Dir(m.path)})

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || isDocument(name) {
			m.files = append(m.files, fileItem{
				name:  name,
				isDir: e.IsDir(),
				path:  filepath.Join(m.path, name),
			})
		}
	}
	m.cursor = 0
}

func (m model) Init() tea.Cmd {
	return nil
}

type solvedMsg struct {
	path   string
	result *pipeline.Result
	err    error
}

func (m model) solve(path string) tea.Cmd {
	opts := m.opts
	return func() tea.Msg {
		res, err := pipeline.ReconstructFile(path, opts)
		return solvedMsg{path: path, result: res, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.entering {
			return m.updateInput(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.files)-1 {
				m.cursor++
			}

		case "enter":
			if len(m.files) == 0 {
				return m, nil
			}
			selected := m.files[m.cursor]
			if selected.isDir {
				m.path = selected.path
				m.loadFiles()
				return m, nil
			}
			m.status = "Solving " + selected.name + "..."
			return m, m.solve(selected.path)

		case "e":
			if m.result == nil {
				m.status = "Solve a document first."
				return m, nil
			}
			m.entering = true
			m.input.SetValue("")
			m.status = "Type x and press Enter | Esc: back"
			blink := m.input.Focus()
			return m, blink
		}

	case solvedMsg:
		if msg.err != nil {
			m.result = nil
			m.status = errorStyle.Render("Error: " + describe(msg.err))
			return m, nil
		}
		m.result = msg.result
		m.solved = msg.path
		m.status = browseHelp
	}

	return m, nil
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.entering = false
		m.input.Blur()
		m.status = browseHelp
		return m, nil

	case "enter":
		x, err := strconv.ParseFloat(strings.TrimSpace(m.input.Value()), 64)
		if err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("Not a number: %q", m.input.Value()))
			return m, nil
		}
		y := interp.Evaluate(m.result.Coefficients, x)
		m.status = fmt.Sprintf("p(%s) = %s", format.Number(x), secretStyle.Render(format.Number(y)))
		m.input.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	s := fmt.Sprintf("Directory: %s\n\n", m.path)

	for i, file := range m.files {
		cursor := " " // no cursor
		if m.cursor == i {
			s += cursorStyle.Render(">")
		} else {
			s += cursor
		}

		line := file.name
		if file.isDir {
			line = fmt.Sprintf("[DIR] %s", file.name)
		} else if file.path == m.solved {
			line = focusedStyle.Render(line)
		}
		s += " " + line + "\n"
	}

	if m.result != nil {
		s += "\n" + dimStyle.Render(filepath.Base(m.solved)) + "\n"
		s += OutputPrefix + format.Render(m.result.Coefficients) + "\n"
		s += "Secret: " + secretStyle.Render(format.Number(m.result.Secret())) + "\n"
	}

	if m.entering {
		s += "\n" + m.input.View() + "\n"
	}

	s += fmt.Sprintf("\n%s\n", m.status)
	return docStyle.Render(s)
}

func (a *app) interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive [directory]",
		Short: "Interactive terminal UI for solving share documents",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			abs, err := filepath.Abs(dir)
			if err != nil {
				return err
			}

			opts := pipeline.Options{Strict: a.v.GetBool(flagStrict)}
			p := tea.NewProgram(initialModel(abs, opts), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			if _, err := p.Run(); err != nil {
				return err
			}
			return nil
		},
	}
}
