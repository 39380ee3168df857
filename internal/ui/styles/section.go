package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var sectionBorder = lipgloss.RoundedBorder()

// Section is a rounded box whose title and hint sit inside the top border:
//
//	╭─ Register Candidate (enter to register) ──╮
//	│ ...                                       │
//	╰───────────────────────────────────────────╯
type Section struct {
	Title   string
	Hint    string
	Width   int  // outer width, borders included
	Focused bool // highlight border and title
}

// Render draws rows inside the section. Rows are padded or cut to fit.
func (s Section) Render(rows ...string) string {
	color := BorderDefaultColor
	if s.Focused {
		color = BorderHighlightFocusColor
	}
	edge := lipgloss.NewStyle().Foreground(color)
	inner := max(s.Width-2, 1)

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, s.top(edge, color, inner))
	for _, row := range rows {
		if lipgloss.Width(row) > inner {
			row = ansi.Truncate(row, inner, "")
		}
		row += strings.Repeat(" ", inner-lipgloss.Width(row))
		lines = append(lines, edge.Render(sectionBorder.Left)+row+edge.Render(sectionBorder.Right))
	}
	lines = append(lines, edge.Render(sectionBorder.BottomLeft+
		strings.Repeat(sectionBorder.Bottom, inner)+sectionBorder.BottomRight))
	return strings.Join(lines, "\n")
}

func (s Section) top(edge lipgloss.Style, color lipgloss.TerminalColor, inner int) string {
	if s.Title == "" {
		return edge.Render(sectionBorder.TopLeft + strings.Repeat(sectionBorder.Top, inner) + sectionBorder.TopRight)
	}

	// "─ " before the label and " " after it take three cells.
	title := TruncateString(s.Title, max(inner-3, 1))
	label := lipgloss.NewStyle().Bold(true).Foreground(color).Render(title)
	used := lipgloss.Width(title)
	// The hint is dropped when it does not fit beside the title.
	if hint := "(" + s.Hint + ")"; s.Hint != "" && used+1+lipgloss.Width(hint)+3 <= inner {
		label += " " + lipgloss.NewStyle().Foreground(TextMutedColor).Render(hint)
		used += 1 + lipgloss.Width(hint)
	}
	fill := max(inner-used-3, 0)

	return edge.Render(sectionBorder.TopLeft+sectionBorder.Top+" ") + label +
		edge.Render(" "+strings.Repeat(sectionBorder.Top, fill)+sectionBorder.TopRight)
}
