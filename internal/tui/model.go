// Package tui is the interactive roster window: four inputs, a display area
// and key bound add, search and remove actions
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/roster/internal/config"
	studentservice "github.com/thenoetrevino/roster/internal/services/student"
	"github.com/thenoetrevino/roster/internal/tui/state"
	"github.com/thenoetrevino/roster/internal/tui/theme"
)

// Input indexes, in focus order
const (
	nameInput = iota
	rollInput
	gradeInput
	searchInput
	inputCount
)

var inputLabels = [inputCount]string{
	nameInput:   "Name",
	rollInput:   "Roll Number",
	gradeInput:  "Grade",
	searchInput: "Search Roll Number",
}

const (
	defaultWidth  = 80
	defaultHeight = 10

	// rows used by everything except the display area
	chromeHeight = 16
)

// Model represents the application state for the TUI
type Model struct {
	ctx     context.Context
	service studentservice.Service
	keys    keyMap
	help    help.Model

	inputs        []textinput.Model
	focus         *state.FocusState
	notifications *state.NotificationState

	display viewport.Model
	content string

	width  int
	height int
}

// InitialModel creates the roster window and shows the current roster
func InitialModel(ctx context.Context, service studentservice.Service, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	theme.Init(cfg.ColorScheme)

	inputs := make([]textinput.Model, inputCount)
	for i := range inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = strings.ToLower(inputLabels[i])
		in.PlaceholderStyle = subtleStyle()
		in.CharLimit = 256
		in.Width = defaultWidth - labelWidth - 4
		inputs[i] = in
	}

	m := Model{
		ctx:           ctx,
		service:       service,
		keys:          newKeyMap(cfg.KeyMappings),
		help:          help.New(),
		inputs:        inputs,
		focus:         state.NewFocusState(inputCount),
		notifications: state.NewNotificationState(),
		display:       viewport.New(defaultWidth-4, defaultHeight),
		width:         defaultWidth,
	}
	m.inputs[nameInput].Focus()
	m.showAll()
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// DisplayText returns the text in the display area
func (m Model) DisplayText() string {
	return m.content
}

// Notifications returns the notifications raised by the last action
func (m Model) Notifications() []state.Notification {
	return m.notifications.All()
}

// FocusedInput returns the index of the focused input
func (m Model) FocusedInput() int {
	return m.focus.Index()
}

// InputValue returns the current text of input i
func (m Model) InputValue(i int) string {
	return m.inputs[i].Value()
}

func (m *Model) setDisplay(text string) {
	m.content = text
	m.display.SetContent(text)
	m.display.GotoTop()
}

// showAll lists the whole roster in the display area
func (m *Model) showAll() {
	students := m.service.ListStudents(m.ctx)
	lines := make([]string, len(students))
	for i, st := range students {
		lines[i] = st.String()
	}
	m.setDisplay(strings.Join(lines, "\n"))
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.focus.Set(i)
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus.Index() {
			cmd = m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Blur()
	}
	return cmd
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	m.display.Width = max(width-4, 10)
	m.display.Height = max(height-chromeHeight, 3)
	m.help.Width = width

	for i := range m.inputs {
		m.inputs[i].Width = max(width-labelWidth-4, 10)
	}
}

func (m *Model) clearInputs(indexes ...int) {
	for _, i := range indexes {
		m.inputs[i].SetValue("")
	}
}

func renderLabel(i int, focused bool) string {
	return labelStyle(focused).Render(inputLabels[i] + ":")
}

func (m Model) renderInputs() string {
	rows := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		focused := i == m.focus.Index()
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Bottom,
			renderLabel(i, focused),
			inputBoxStyle(focused).Render(in.View()),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

var _ tea.Model = Model{}
