// Package help contains the help overlay component.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/talentdb/internal/keys"
	"github.com/zjrosen/talentdb/internal/log"
	"github.com/zjrosen/talentdb/internal/ui/markdown"
	"github.com/zjrosen/talentdb/internal/ui/overlay"
	"github.com/zjrosen/talentdb/internal/ui/styles"
)

// usage is the prose part of the help screen.
const usage = `**Register** fills the form and sends it with *enter*.
Name and contact are required by the server.

**Search** matches the keyword against names and skills.
An empty search shows the full list again.

**Delete** asks for confirmation first. Click *[ Delete ]* on a card,
or select a card and press *d*.`

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
			Foreground(styles.OverlayBorderColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Width(11)

	descStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.OverlayBorderColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// Model holds the help view state.
type Model struct {
	keys   keys.KeyMap
	prose  string
	width  int
	height int
}

// New creates the help view. style selects the markdown theme ("" = auto).
func New(km keys.KeyMap, style string) Model {
	return Model{keys: km, prose: renderUsage(style)}
}

func renderUsage(style string) string {
	out, err := markdown.Render(usage, markdown.Options{Width: 56, Style: style})
	if err == nil {
		return out
	}
	log.ErrorErr(log.CatUI, "Help markdown render failed", err)
	return usage
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help box centered in an empty screen.
func (m Model) View() string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderContent())
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.renderContent(), background)
}

func (m Model) renderContent() string {
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	column := func(title string, bindings ...key.Binding) string {
		var b strings.Builder
		b.WriteString(sectionStyle.Render(title))
		b.WriteString("\n")
		for _, kb := range bindings {
			h := kb.Help()
			b.WriteString(keyStyle.Render(h.Key) + descStyle.Render(h.Desc) + "\n")
		}
		return b.String()
	}

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(column("Focus", m.keys.NextField, m.keys.PrevField, m.keys.FocusSearch, m.keys.Escape)),
		columnStyle.Render(column("Candidates", m.keys.Up, m.keys.Down, m.keys.Submit, m.keys.Delete, m.keys.Refresh)),
		column("General", m.keys.Help, m.keys.Quit, m.keys.ForceQuit),
	)

	inner := lipgloss.JoinVertical(lipgloss.Left,
		columns,
		"",
		m.prose,
		footerStyle.Render("Press ? or Esc to close"),
	)
	boxWidth := lipgloss.Width(inner) + 4

	var content strings.Builder
	content.WriteString(titleStyle.Render("Keybindings"))
	content.WriteString("\n")
	content.WriteString(dividerStyle.Render(strings.Repeat("─", boxWidth)))
	content.WriteString("\n")
	content.WriteString(contentStyle.Render(inner))

	return boxStyle.Width(boxWidth).Render(content.String())
}
