package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// GridPreset is a named board size offered by the grid menu.
type GridPreset struct {
	Name   string
	Width  int
	Height int
}

// DefaultPresets returns the built-in sizes with the configured grid first.
func DefaultPresets(width, height int) []GridPreset {
	presets := []GridPreset{
		{Name: "Configured", Width: width, Height: height},
		{Name: "Small", Width: 10, Height: 10},
		{Name: "Classic", Width: 15, Height: 15},
		{Name: "Wide", Width: 30, Height: 15},
		{Name: "Large", Width: 25, Height: 20},
	}
	return presets
}

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

// GridMenuModel lets users choose a board size before playing.
type GridMenuModel struct {
	presets  []GridPreset
	cursor   int
	width    int
	height   int
	keys     KeyMap
	selected *GridPreset
	quitting bool
}

// NewGridMenuModel creates a grid selection model.
func NewGridMenuModel(presets []GridPreset, width, height int) GridMenuModel {
	return GridMenuModel{
		presets: presets,
		width:   width,
		height:  height,
		keys:    DefaultKeyMap(),
	}
}

// Init initializes the model.
func (m GridMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GridMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m GridMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.presets) == 0 {
			return m, nil
		}
		p := m.presets[m.cursor]
		m.selected = &p
	}
	return m, nil
}

// View renders the preset list.
func (m GridMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select board size:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-10s %3dx%-3d", cursor, p.Name, p.Width, p.Height)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen preset, or nil while still choosing.
func (m GridMenuModel) Selected() *GridPreset {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m GridMenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}
