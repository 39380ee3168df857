// Package candidatelist renders the candidate list: one bordered card per
// record with a clickable delete control, or a fixed empty state.
package candidatelist

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/talentdb/internal/candidate"
	"github.com/zjrosen/talentdb/internal/log"
	"github.com/zjrosen/talentdb/internal/ui/styles"
)

const deleteLabel = "[ Delete ]"

// Model holds the displayed records and the selection cursor.
type Model struct {
	records []candidate.Record
	cards   []Card
	cursor  int
	offset  int // first visible card
	focused bool
	width   int
	height  int // 0 = unlimited
}

// New creates an empty list.
func New() Model {
	return Model{width: 60}
}

// SetRecords replaces the whole list. The cursor is kept in range.
func (m Model) SetRecords(records []candidate.Record) Model {
	m.records = records
	m.cards = BuildCards(records)
	m.cursor = min(m.cursor, max(len(m.cards)-1, 0))
	m.offset = 0
	m.ensureVisible()
	log.Debug(log.CatUI, "List rendered", "cards", len(m.cards))
	return m
}

// Records returns the records currently shown.
func (m Model) Records() []candidate.Record {
	return m.records
}

// Len returns the number of cards.
func (m Model) Len() int {
	return len(m.cards)
}

// Cursor returns the selected card index.
func (m Model) Cursor() int {
	return m.cursor
}

// Selected returns the record under the cursor.
func (m Model) Selected() (candidate.Record, bool) {
	if len(m.records) == 0 {
		return candidate.Record{}, false
	}
	return m.records[m.cursor], true
}

// MoveDown advances the cursor, stopping at the last card.
func (m Model) MoveDown() Model {
	if m.cursor < len(m.cards)-1 {
		m.cursor++
		m.ensureVisible()
	}
	return m
}

// MoveUp moves the cursor back, stopping at the first card.
func (m Model) MoveUp() Model {
	if m.cursor > 0 {
		m.cursor--
		m.ensureVisible()
	}
	return m
}

// SetFocused toggles the selection highlight.
func (m Model) SetFocused(focused bool) Model {
	m.focused = focused
	return m
}

// SetSize sets the render area. A height of 0 disables scrolling.
func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 24)
	m.height = max(height, 0)
	m.ensureVisible()
	return m
}

// ClickedDelete resolves a mouse release to the record whose delete control
// was clicked.
func (m Model) ClickedDelete(msg tea.MouseMsg) (candidate.Record, bool) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return candidate.Record{}, false
	}
	for i, c := range m.cards {
		if z := zone.Get(c.DeleteZone()); z != nil && z.InBounds(msg) {
			return m.records[i], true
		}
	}
	return candidate.Record{}, false
}

// ensureVisible scrolls so the cursor card fits within height.
func (m *Model) ensureVisible() {
	if m.height <= 0 || len(m.cards) == 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	for m.offset < m.cursor {
		used := 0
		for i := m.offset; i <= m.cursor; i++ {
			used += m.cardHeight(i)
		}
		if used <= m.height {
			break
		}
		m.offset++
	}
}

func (m Model) cardHeight(i int) int {
	return lipgloss.Height(m.renderCard(i))
}

// View renders the visible cards, or the empty state.
func (m Model) View() string {
	if len(m.cards) == 0 {
		return renderEmpty(m.width)
	}

	var parts []string
	used := 0
	for i := m.offset; i < len(m.cards); i++ {
		card := m.renderCard(i)
		h := lipgloss.Height(card)
		if m.height > 0 && used+h > m.height && len(parts) > 0 {
			break
		}
		parts = append(parts, card)
		used += h
	}
	return strings.Join(parts, "\n")
}

func renderEmpty(width int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		"📭",
		EmptyTitle,
		lipgloss.NewStyle().Faint(true).Render(EmptyHint),
	)
	return styles.EmptyStyle.Width(width).Align(lipgloss.Center).Render(body)
}

func labelWidth() int {
	w := 0
	for _, l := range []string{LabelContact, LabelSkills, LabelExperience, LabelRegistered} {
		w = max(w, runewidth.StringWidth(l))
	}
	return w + 2
}

func (m Model) renderCard(i int) string {
	c := m.cards[i]
	selected := m.focused && i == m.cursor

	lw := labelWidth()
	valueWidth := max(m.width-2-2-lw, 8) // borders, left indent, label column
	indent := strings.Repeat(" ", 2+lw)

	rows := make([]string, 0, len(c.Rows)+1)
	for _, r := range c.Rows {
		label := styles.CardLabelStyle.Render(runewidth.FillRight(r.Label, lw))
		lines := strings.Split(wordwrap.String(r.Value, valueWidth), "\n")
		for j, line := range lines {
			value := styles.CardValueStyle.Render(line)
			if r.Label == LabelRegistered {
				value = styles.CardMetaStyle.Render(line)
			}
			if j == 0 {
				rows = append(rows, "  "+label+value)
			} else {
				rows = append(rows, indent+value)
			}
		}
	}

	deleteStyle := styles.DangerButtonStyle.Padding(0)
	if selected {
		deleteStyle = styles.DangerButtonFocusedStyle.Padding(0)
	}
	control := zone.Mark(c.DeleteZone(), deleteStyle.Render(deleteLabel))
	rows = append(rows, strings.Repeat(" ", max(m.width-2-lipgloss.Width(deleteLabel)-1, 0))+control)

	title := styles.CardNameStyle.Render(c.Name)
	if selected {
		title = styles.SelectionIndicatorStyle.Render(">") + " " + title
	}
	return styles.Section{Title: title, Width: m.width, Focused: selected}.Render(rows...)
}

// StatsView renders the displayed count.
func StatsView(n int) string {
	return styles.StatsStyle.Render(fmt.Sprintf("Total: %d", n))
}
