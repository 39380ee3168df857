package modal

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestNew_DefaultsAndFocus(t *testing.T) {
	m := New(Config{Title: "Delete Candidate"})

	require.Equal(t, FieldConfirm, m.Focused())
	require.Equal(t, "Confirm", m.config.ConfirmLabel)
	require.Equal(t, "Cancel", m.config.CancelLabel)
	require.Nil(t, m.Init())
}

func TestUpdate_EnterOnConfirmSubmits(t *testing.T) {
	m := New(Config{Title: "Delete"})

	_, cmd := m.Update(key("enter"))
	require.Equal(t, SubmitMsg{}, run(t, cmd))
}

func TestUpdate_EnterOnCancelCancels(t *testing.T) {
	m := New(Config{Title: "Delete"})

	m, _ = m.Update(key("tab"))
	require.Equal(t, FieldCancel, m.Focused())

	_, cmd := m.Update(key("enter"))
	require.Equal(t, CancelMsg{}, run(t, cmd))
}

func TestUpdate_Shortcuts(t *testing.T) {
	tests := []struct {
		key      string
		expected tea.Msg
	}{
		{"y", SubmitMsg{}},
		{"n", CancelMsg{}},
		{"esc", CancelMsg{}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, cmd := New(Config{}).Update(key(tt.key))
			require.Equal(t, tt.expected, run(t, cmd))
		})
	}
}

func TestUpdate_FocusToggles(t *testing.T) {
	m := New(Config{})
	for _, k := range []string{"tab", "l", "h"} {
		before := m.Focused()
		m, _ = m.Update(key(k))
		require.NotEqual(t, before, m.Focused(), "key %q should toggle focus", k)
	}
}

func TestUpdate_OtherKeysIgnored(t *testing.T) {
	m := New(Config{})
	m2, cmd := m.Update(key("x"))
	require.Nil(t, cmd)
	require.Equal(t, m.Focused(), m2.Focused())
}

func TestUpdate_WindowSize(t *testing.T) {
	m, _ := New(Config{}).Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	require.Equal(t, 100, m.width)
	require.Equal(t, 30, m.height)
}

func TestView_ShowsMessageAndButtons(t *testing.T) {
	m := New(Config{
		Title:          "Delete Candidate",
		Message:        "Really delete 'Alice'?",
		ConfirmLabel:   "Delete",
		ConfirmVariant: ButtonDanger,
	})

	view := zone.Scan(m.View())
	require.Contains(t, view, "Delete Candidate")
	require.Contains(t, view, "Really delete 'Alice'?")
	require.Contains(t, view, "Delete")
	require.Contains(t, view, "Cancel")
	require.Contains(t, view, "╭")
}

func TestOverlay_CentersOnBackground(t *testing.T) {
	m := New(Config{Title: "Delete", Message: "Sure?"})
	m.SetSize(80, 24)

	bg := ""
	for i := 0; i < 24; i++ {
		bg += "................................................................................\n"
	}
	out := zone.Scan(m.Overlay(bg))

	require.Contains(t, out, "Sure?")
	require.Contains(t, out, "........", "background still visible around the dialog")
}
