// Package candidateform provides the registration form: four text inputs
// (name, contact, skills, experience) submitted together with Enter.
package candidateform

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/talentdb/internal/candidate"
	"github.com/zjrosen/talentdb/internal/ui/styles"
)

// Field identifies one input of the form.
type Field int

const (
	FieldName Field = iota
	FieldContact
	FieldSkills
	FieldExperience
	fieldCount
)

var fieldSpecs = [fieldCount]struct {
	label       string
	placeholder string
}{
	FieldName:       {"Name", "required"},
	FieldContact:    {"Contact", "required: phone or email"},
	FieldSkills:     {"Skills", "e.g. Go, PostgreSQL"},
	FieldExperience: {"Experience", "e.g. 3 years backend"},
}

// SubmitMsg is sent when the user presses Enter in any field. The payload
// carries the fields exactly as typed.
type SubmitMsg struct {
	Candidate candidate.Candidate
}

// LeaveMsg is sent when focus moves past the first or last field.
type LeaveMsg struct {
	Forward bool
}

// Model is the registration form state.
type Model struct {
	inputs  [fieldCount]textinput.Model
	focused Field
	active  bool
	width   int
}

// New creates an empty, unfocused form.
func New() Model {
	m := Model{width: 60}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = fieldSpecs[i].placeholder
		ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)
		m.inputs[i] = ti
	}
	m.resizeInputs()
	return m
}

// Focus activates the form on the given field.
func (m Model) Focus(f Field) (Model, tea.Cmd) {
	if f < 0 || f >= fieldCount {
		f = FieldName
	}
	m.active = true
	m.focused = f
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m, m.inputs[f].Focus()
}

// Blur deactivates the form.
func (m Model) Blur() Model {
	m.active = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m
}

// Active reports whether the form has keyboard focus.
func (m Model) Active() bool {
	return m.active
}

// FocusedField returns the field that has (or last had) focus.
func (m Model) FocusedField() Field {
	return m.focused
}

// Values returns the create payload built from the current inputs.
func (m Model) Values() candidate.Candidate {
	return candidate.NewCandidate(
		m.inputs[FieldName].Value(),
		m.inputs[FieldContact].Value(),
		m.inputs[FieldSkills].Value(),
		m.inputs[FieldExperience].Value(),
	)
}

// SetValue replaces the content of one field.
func (m Model) SetValue(f Field, v string) Model {
	if f >= 0 && f < fieldCount {
		m.inputs[f].SetValue(v)
	}
	return m
}

// Reset clears every field and returns focus to Name if the form is active.
func (m Model) Reset() (Model, tea.Cmd) {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	if !m.active {
		m.focused = FieldName
		return m, nil
	}
	return m.Focus(FieldName)
}

// SetWidth sets the outer width of the rendered form.
func (m Model) SetWidth(w int) Model {
	m.width = max(w, 24)
	m.resizeInputs()
	return m
}

func (m *Model) resizeInputs() {
	// Inner width minus borders, label column and cursor cell.
	w := max(m.width-2-labelWidth()-2, 4)
	for i := range m.inputs {
		m.inputs[i].Width = w
	}
}

// Update handles key input while the form is active.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			if m.focused == fieldCount-1 {
				return m, func() tea.Msg { return LeaveMsg{Forward: true} }
			}
			return m.Focus(m.focused + 1)
		case "shift+tab", "up":
			if m.focused == FieldName {
				return m, func() tea.Msg { return LeaveMsg{Forward: false} }
			}
			return m.Focus(m.focused - 1)
		case "enter":
			payload := m.Values()
			return m, func() tea.Msg { return SubmitMsg{Candidate: payload} }
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func labelWidth() int {
	w := 0
	for _, s := range fieldSpecs {
		w = max(w, runewidth.StringWidth(s.label))
	}
	return w + 2
}

// View renders the form as a bordered section.
func (m Model) View() string {
	lw := labelWidth()
	rows := make([]string, 0, fieldCount)
	for i := range m.inputs {
		labelStyle := lipgloss.NewStyle().Foreground(styles.FormLabelColor)
		if m.active && Field(i) == m.focused {
			labelStyle = lipgloss.NewStyle().Bold(true).Foreground(styles.FormFocusedLabelColor)
		}
		label := labelStyle.Render(runewidth.FillRight(fieldSpecs[i].label, lw))
		rows = append(rows, " "+label+m.inputs[i].View())
	}

	hint := ""
	if m.active {
		hint = "enter to register"
	}
	return styles.Section{Title: "Register Candidate", Hint: hint, Width: m.width, Focused: m.active}.Render(rows...)
}
