// Package tui provides terminal user interface components for forage-ports
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/render"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionEnv
	ActionCommand
	ActionQuit
)

// PickerResult holds the result of the picker
type PickerResult struct {
	Action  Action
	Service *render.Row
}

// serviceItem implements list.Item for service display
type serviceItem struct {
	row render.Row
}

func (i serviceItem) Title() string {
	return i.row.Service
}

func (i serviceItem) Description() string {
	marker := "●"
	if i.row.Contested {
		marker = "◐"
	}

	desc := fmt.Sprintf("%s port %d", marker, i.row.Port)
	if i.row.TLSPort != 0 {
		desc += fmt.Sprintf(" | tls %d", i.row.TLSPort)
	}
	if i.row.Dir != "" {
		desc += " | " + truncatePath(i.row.Dir, 30)
	}
	return desc
}

func (i serviceItem) FilterValue() string {
	return i.row.Service
}

func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the service picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new service picker
func NewPicker(rows []render.Row, title string) Model {
	items := buildGroupedItems(rows)

	l := list.New(items, newServiceDelegate(), 80, 20)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	skipHeaders(&l, 1)

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter", "e":
			return m.selectCurrent(ActionEnv)

		case "c":
			return m.selectCurrent(ActionCommand)

		case "q", "esc":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}

		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		if isHeaderSelected(&m.list) {
			skipHeaders(&m.list, navigationDirection(msg))
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) selectCurrent(action Action) (tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(serviceItem)
	if !ok {
		return m, nil
	}
	row := item.row
	m.result = PickerResult{Action: action, Service: &row}
	m.quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Env  [c] Command  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive service picker
func RunPicker(rows []render.Row, title string) (PickerResult, error) {
	if len(rows) == 0 {
		return PickerResult{Action: ActionQuit}, nil
	}

	m := NewPicker(rows, title)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}

// SimpleList is a non-interactive fallback that lists every service
func SimpleList(rows []render.Row, title string) string {
	var sb strings.Builder

	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if len(rows) == 0 {
		sb.WriteString("No services found.\n")
		sb.WriteString("Declare services in forage-ports.toml or pass names to forage-ports assign.\n")
		return sb.String()
	}

	for i, row := range rows {
		marker := "●"
		if row.Contested {
			marker = "◐"
		}

		sb.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, marker, row.Service))
		if row.TLSPort != 0 {
			sb.WriteString(fmt.Sprintf("   Port: %d | TLS: %d\n\n", row.Port, row.TLSPort))
		} else {
			sb.WriteString(fmt.Sprintf("   Port: %d\n\n", row.Port))
		}
	}

	return sb.String()
}
