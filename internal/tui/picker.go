// Package tui provides a full-screen picker for browse --tui. It walks
// the same directory → file → dataset stages as the prompt loop and hands
// the chosen dataset back to the session layer; loading and visualization
// stay outside.
package tui

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hdfscope/internal/catalog"
	"hdfscope/internal/scan"
	"hdfscope/internal/store"
)

// Selection is the picker's result.
type Selection struct {
	FilePath    string
	DatasetPath string
	OK          bool // false when the user quit without choosing
}

type stage int

const (
	stageDirectory stage = iota
	stageFiles
	stageDatasets
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model for the picker.
type Model struct {
	open     store.Opener
	patterns []string

	stage    stage
	dirInput textinput.Model
	dir      string
	files    []string
	selFile  string // file the dataset list belongs to
	datasets []string
	cursor   int
	errMsg   string

	result Selection
}

// NewModel creates a picker. dir may be empty to start at the directory
// input stage.
func NewModel(open store.Opener, dir string, patterns []string) Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/data"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 48

	m := Model{
		open:     open,
		patterns: patterns,
		dirInput: ti,
		stage:    stageDirectory,
	}
	if dir != "" {
		m.enterDirectory(dir)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.dirInput, cmd = m.dirInput.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		if m.stage == stageDirectory && keyMsg.String() == "q" {
			break // let "q" type into the input
		}
		return m, tea.Quit
	case "up", "k":
		if m.stage != stageDirectory && m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.stage != stageDirectory && m.cursor < m.itemCount()-1 {
			m.cursor++
		}
		return m, nil
	case "esc":
		return m.back(), nil
	case "enter":
		return m.advance()
	}

	if m.stage == stageDirectory {
		var cmd tea.Cmd
		m.dirInput, cmd = m.dirInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) itemCount() int {
	if m.stage == stageFiles {
		return len(m.files)
	}
	return len(m.datasets)
}

func (m Model) back() Model {
	m.errMsg = ""
	m.cursor = 0
	switch m.stage {
	case stageFiles:
		m.stage = stageDirectory
	case stageDatasets:
		m.stage = stageFiles
	}
	return m
}

func (m Model) advance() (Model, tea.Cmd) {
	switch m.stage {
	case stageDirectory:
		m.enterDirectory(m.dirInput.Value())
	case stageFiles:
		if len(m.files) > 0 {
			m.enterFile(m.files[m.cursor])
		}
	case stageDatasets:
		if len(m.datasets) > 0 {
			m.result = Selection{
				FilePath:    filepath.Join(m.dir, m.selFile),
				DatasetPath: m.datasets[m.cursor],
				OK:          true,
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) enterDirectory(dir string) {
	files, err := scan.ListFiles(dir, m.patterns)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.dir = dir
	m.files = files
	m.cursor = 0
	m.errMsg = ""
	m.stage = stageFiles
}

func (m *Model) enterFile(name string) {
	f, err := m.open(filepath.Join(m.dir, name))
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	defer func() { _ = f.Close() }()

	cat, err := catalog.Discover(f)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	if cat.Len() == 0 {
		m.errMsg = "no datasets in " + name
		return
	}

	m.selFile = name
	m.datasets = cat.Paths()
	m.cursor = 0
	m.errMsg = ""
	m.stage = stageDatasets
}

// View implements tea.Model.
func (m Model) View() string {
	var out string
	switch m.stage {
	case stageDirectory:
		out = titleStyle.Render("Data directory") + "\n\n" + m.dirInput.View() + "\n"
	case stageFiles:
		out = titleStyle.Render("Files in "+m.dir) + "\n\n" + m.renderList(m.files)
	case stageDatasets:
		out = titleStyle.Render("Datasets") + "\n\n" + m.renderList(m.datasets)
	}

	if m.errMsg != "" {
		out += "\n" + errStyle.Render(m.errMsg) + "\n"
	}
	out += "\n" + dimStyle.Render("enter select · esc back · q quit") + "\n"
	return out
}

func (m Model) renderList(items []string) string {
	if len(items) == 0 {
		return dimStyle.Render("(nothing found)") + "\n"
	}
	var out string
	for i, item := range items {
		if i == m.cursor {
			out += cursorStyle.Render("> "+item) + "\n"
		} else {
			out += "  " + item + "\n"
		}
	}
	return out
}

// Pick runs the picker and returns the user's selection.
func Pick(open store.Opener, dir string, patterns []string) (Selection, error) {
	final, err := tea.NewProgram(NewModel(open, dir, patterns)).Run()
	if err != nil {
		return Selection{}, err
	}
	return final.(Model).result, nil
}
