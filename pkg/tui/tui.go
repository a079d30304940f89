// Package tui provides a terminal user interface for pgm2sp303
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/james-see/pgm2sp303/pkg/mpc"
	"github.com/james-see/pgm2sp303/pkg/organizer"
	"github.com/james-see/pgm2sp303/pkg/wavkit"
)

// SP-303 inspired color scheme (silver body, orange pads)
var (
	padOrange  = lipgloss.Color("#FF6B1A")
	padYellow  = lipgloss.Color("#FFD23F")
	silverGray = lipgloss.Color("#C0C0C0")
	darkGray   = lipgloss.Color("#333333")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(padOrange).
			Background(darkGray).
			Padding(0, 2).
			MarginBottom(1)

	menuStyle = lipgloss.NewStyle().
			Foreground(silverGray).
			PaddingLeft(2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(padOrange).
			Bold(true).
			PaddingLeft(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(padOrange).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(padOrange).
			Padding(1, 2)
)

// State represents the current TUI state
type State int

const (
	StateMenu State = iota
	StateFilePicker
	StateWorking
	StateResult
)

// Action identifies a menu workflow
type Action int

const (
	ActionInspect Action = iota
	ActionOrganize
	ActionPreprocess
	ActionExit
)

// MenuItem represents a menu option
type MenuItem struct {
	Title       string
	Description string
	Action      Action
	PicksDir    bool
}

var menuItems = []MenuItem{
	{Title: "Inspect program", Description: "Show the pad assignments in an MPC1000 .pgm file", Action: ActionInspect},
	{Title: "Organize banks", Description: "Copy matched WAVs into Bank_A..Bank_H next to the .pgm", Action: ActionOrganize},
	{Title: "Preprocess WAVs", Description: "Pad samples shorter than 110ms in a directory (in place)", Action: ActionPreprocess, PicksDir: true},
	{Title: "Exit", Description: "Exit the application", Action: ActionExit},
}

// Model represents the TUI model
type Model struct {
	state        State
	menuIndex    int
	filePicker   filepicker.Model
	spinner      spinner.Model
	selectedPath string
	action       MenuItem
	output       string
	err          error
	width        int
	height       int
}

// workDoneMsg signals workflow completion
type workDoneMsg struct {
	output string
	err    error
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick)
}

// New creates a new TUI model
func New() Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".pgm"}
	fp.CurrentDirectory, _ = os.Getwd()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(padOrange)

	return Model{
		state:      StateMenu,
		menuIndex:  0,
		filePicker: fp,
		spinner:    s,
	}
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The file picker needs to receive all messages while active
	if m.state == StateFilePicker {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				m.state = StateMenu
				return m, nil
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		}

		var cmd tea.Cmd
		m.filePicker, cmd = m.filePicker.Update(msg)

		if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
			m.selectedPath = path
			m.state = StateWorking
			return m, tea.Batch(m.spinner.Tick, m.performAction())
		}

		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.filePicker.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateMenu:
			return m.updateMenu(msg)
		case StateResult:
			return m.updateResult(msg)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case workDoneMsg:
		m.state = StateResult
		m.output = msg.output
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
		}
	case "enter":
		item := menuItems[m.menuIndex]
		if item.Action == ActionExit {
			return m, tea.Quit
		}
		m.action = item
		m.state = StateFilePicker

		if item.PicksDir {
			m.filePicker.DirAllowed = true
			m.filePicker.FileAllowed = false
			m.filePicker.AllowedTypes = nil
		} else {
			m.filePicker.DirAllowed = false
			m.filePicker.FileAllowed = true
			m.filePicker.AllowedTypes = []string{".pgm"}
		}

		return m, m.filePicker.Init()
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.state = StateMenu
		m.err = nil
		m.selectedPath = ""
		m.output = ""
		return m, nil
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) performAction() tea.Cmd {
	path := m.selectedPath
	action := m.action.Action

	return func() tea.Msg {
		switch action {
		case ActionInspect:
			prog, err := mpc.ParsePGMFile(path)
			if err != nil {
				return workDoneMsg{err: err}
			}
			return workDoneMsg{output: renderPadTable(prog)}

		case ActionOrganize:
			dir := filepath.Dir(path)
			report, err := organizer.Organize(organizer.Config{
				ProgramPath: path,
				SourceDir:   dir,
				OutputDir:   filepath.Join(dir, "sp303_banks"),
			})
			if err != nil {
				return workDoneMsg{err: err}
			}
			return workDoneMsg{output: report.Summary()}

		case ActionPreprocess:
			report, err := wavkit.ProcessDirectory(wavkit.Config{
				InputDir: path,
				Quiet:    true,
			})
			if err != nil {
				return workDoneMsg{err: err}
			}
			return workDoneMsg{output: report.Summary()}
		}

		return workDoneMsg{err: fmt.Errorf("unknown action")}
	}
}

func renderPadTable(prog *mpc.Program) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Header: %s\n", prog.Header)
	for bankIdx, bank := range prog.Banks() {
		fmt.Fprintf(&b, "Bank %s\n", mpc.BankNames[bankIdx])
		for _, pad := range bank {
			name := pad.SampleName
			if name == "" {
				name = "-"
			}
			fmt.Fprintf(&b, "  pad %d: %s\n", pad.BankSlot(), name)
		}
	}
	return b.String()
}

// View renders the TUI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(asciiLogo())
	s.WriteString("\n")

	switch m.state {
	case StateMenu:
		s.WriteString(m.viewMenu())
	case StateFilePicker:
		s.WriteString(m.viewFilePicker())
	case StateWorking:
		s.WriteString(m.viewWorking())
	case StateResult:
		s.WriteString(m.viewResult())
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("↑/↓: navigate • enter: select • q: quit"))

	return s.String()
}

func (m Model) viewMenu() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" SELECT TASK "))
	s.WriteString("\n\n")

	for i, item := range menuItems {
		if i == m.menuIndex {
			s.WriteString(selectedStyle.Render(fmt.Sprintf("▸ %s", item.Title)))
			s.WriteString("\n")
			s.WriteString(lipgloss.NewStyle().Foreground(padYellow).PaddingLeft(4).Render(item.Description))
		} else {
			s.WriteString(menuStyle.Render(fmt.Sprintf("  %s", item.Title)))
		}
		s.WriteString("\n")
	}

	return boxStyle.Render(s.String())
}

func (m Model) viewFilePicker() string {
	var s strings.Builder

	what := "PROGRAM FILE"
	if m.action.PicksDir {
		what = "WAV DIRECTORY"
	}
	s.WriteString(titleStyle.Render(fmt.Sprintf(" SELECT %s ", what)))
	s.WriteString("\n\n")
	s.WriteString(m.filePicker.View())
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("esc: back to menu"))

	return s.String()
}

func (m Model) viewWorking() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" WORKING "))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("%s %s %s...\n", m.spinner.View(), m.action.Title, filepath.Base(m.selectedPath)))

	return boxStyle.Render(s.String())
}

func (m Model) viewResult() string {
	var s strings.Builder

	if m.err != nil {
		s.WriteString(titleStyle.Render(" ERROR "))
		s.WriteString("\n\n")
		s.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s failed: %s", m.action.Title, m.err.Error())))
	} else {
		s.WriteString(titleStyle.Render(" DONE "))
		s.WriteString("\n\n")
		s.WriteString(successStyle.Render(fmt.Sprintf("✓ %s complete", m.action.Title)))
		s.WriteString("\n\n")
		s.WriteString(m.output)
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Press enter to continue"))

	return boxStyle.Render(s.String())
}

func asciiLogo() string {
	logo := `
   ____   ____ __  __ ___  ____  ____  _____  ___ _____
  |  _ \ / ___|  \/  |__ \/ ___||  _ \|___ / / _ \___ /
  | |_) | |  _| |\/| | ) \___ \| |_) | |_ \| | | ||_ \
  |  __/| |_| | |  | |/ / ___) |  __/ ___) | |_| |__) |
  |_|    \____|_|  |_|____|____/|_|   |____/ \___/____/
`
	return lipgloss.NewStyle().Foreground(padOrange).Render(logo)
}

// Run starts the TUI application
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
