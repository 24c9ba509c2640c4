package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/roster/internal/models"
	studentservice "github.com/thenoetrevino/roster/internal/services/student"
	"github.com/thenoetrevino/roster/internal/tui/state"
)

// Update handles all incoming messages and updates the model accordingly
// This is the core of the Elm Architecture event loop
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.display, cmd = m.display.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	i := m.focus.Index()
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.focus.Next()
		return m, m.setFocus(m.focus.Index())

	case key.Matches(msg, m.keys.Prev):
		m.focus.Prev()
		return m, m.setFocus(m.focus.Index())

	case key.Matches(msg, m.keys.Add):
		m.addStudent()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searchStudent()
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		m.removeStudents()
		return m, nil

	case key.Matches(msg, m.keys.ShowAll):
		m.notifications.Clear()
		m.showAll()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.focus.Index() == searchInput {
			m.searchStudent()
		} else {
			m.addStudent()
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.display, cmd = m.display.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	i := m.focus.Index()
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	return m, cmd
}

// addStudent adds the student typed into the three form fields.
// The fields are cleared once the student is in the roster, even when the
// save that follows fails.
func (m *Model) addStudent() {
	m.notifications.Clear()

	name := m.inputs[nameInput].Value()
	rollNumber := m.inputs[rollInput].Value()
	grade := m.inputs[gradeInput].Value()
	if name == "" || rollNumber == "" || grade == "" {
		m.notifications.Add(state.LevelWarning, models.MissingFieldsMessage)
		return
	}

	_, err := m.service.AddStudent(m.ctx, studentservice.AddStudentRequest{
		Name:       name,
		RollNumber: rollNumber,
		Grade:      grade,
	})
	if err != nil {
		slog.Error("failed to add student", "roll_number", rollNumber, "error", err)
		m.notifications.Add(state.LevelError, fmt.Sprintf("Could not save roster: %v", err))
	} else {
		m.notifications.Add(state.LevelInfo, "Student added.")
	}

	m.clearInputs(nameInput, rollInput, gradeInput)
	m.showAll()
}

// searchStudent shows the first student whose roll number matches the search field
func (m *Model) searchStudent() {
	m.notifications.Clear()

	st, ok := m.service.FindStudent(m.ctx, m.inputs[searchInput].Value())
	if !ok {
		m.setDisplay(models.NotFoundMessage)
		return
	}
	m.setDisplay(st.String())
}

// removeStudents removes every student whose roll number matches the search field
func (m *Model) removeStudents() {
	m.notifications.Clear()

	rollNumber := m.inputs[searchInput].Value()
	if rollNumber == "" {
		m.notifications.Add(state.LevelWarning, models.MissingRollNumberMessage)
		return
	}

	removed, err := m.service.RemoveStudents(m.ctx, rollNumber)
	if err != nil {
		slog.Error("failed to remove students", "roll_number", rollNumber, "error", err)
		m.notifications.Add(state.LevelError, fmt.Sprintf("Could not save roster: %v", err))
	} else {
		m.notifications.Add(state.LevelInfo, fmt.Sprintf("Removed %d student(s).", removed))
	}

	m.clearInputs(searchInput)
	m.showAll()
}
