package candidatelist

import (
	"os"
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/talentdb/internal/candidate"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func sampleRecords() []candidate.Record {
	return []candidate.Record{
		{ID: "1", Name: "Alice", Contact: "555-0100", Skills: "Go, PostgreSQL", Experience: "3 years", CreatedAt: "2026-10-14 09:00:00"},
		{ID: "2", Name: "Bob", Contact: "bob@example.com"},
	}
}

func genRecord() *rapid.Generator[candidate.Record] {
	text := rapid.StringMatching(`[A-Za-z0-9 ,.@-]{0,24}`)
	return rapid.Custom(func(t *rapid.T) candidate.Record {
		return candidate.Record{
			ID:         candidate.ID(strconv.Itoa(rapid.IntRange(0, 1_000_000).Draw(t, "id"))),
			Name:       rapid.StringMatching(`[A-Za-z]{1,12}`).Draw(t, "name"),
			Contact:    text.Draw(t, "contact"),
			Skills:     text.Draw(t, "skills"),
			Experience: text.Draw(t, "experience"),
			CreatedAt:  text.Draw(t, "created_at"),
		}
	})
}

func TestBuildCards_OnePerRecordInOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := rapid.SliceOfN(genRecord(), 0, 20).Draw(t, "records")
		cards := BuildCards(records)

		require.Len(t, cards, len(records))
		for i, c := range cards {
			require.Equal(t, records[i].ID, c.ID)
			require.Equal(t, records[i].Name, c.Name)
			require.Equal(t, Row{Label: LabelContact, Value: records[i].Contact}, c.Rows[0])
		}
	})
}

func TestBuildCards_OptionalRowsOnlyWhenPresent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := genRecord().Draw(t, "record")
		card := BuildCards([]candidate.Record{r})[0]

		labels := map[string]string{}
		for _, row := range card.Rows {
			labels[row.Label] = row.Value
		}
		check := func(label, value string) {
			got, ok := labels[label]
			require.Equal(t, value != "", ok, "row %s presence", label)
			if ok {
				require.Equal(t, value, got)
			}
		}
		check(LabelSkills, r.Skills)
		check(LabelExperience, r.Experience)
		check(LabelRegistered, r.CreatedAt)
	})
}

func TestView_EmptyStateOnlyWhenEmpty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := rapid.SliceOfN(genRecord(), 0, 5).Draw(t, "records")
		view := New().SetRecords(records).View()

		require.Equal(t, len(records) == 0, strings.Contains(view, EmptyTitle))
	})
}

func TestStatsView_ShowsCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 10_000).Draw(t, "n")
		require.Equal(t, "Total: "+strconv.Itoa(n), StatsView(n))
	})
}

func TestView_Card(t *testing.T) {
	m := New().SetSize(60, 0).SetRecords(sampleRecords())
	view := m.View()

	for _, want := range []string{"Alice", "555-0100", "Go, PostgreSQL", "3 years", "2026-10-14 09:00:00", "Bob", "bob@example.com", deleteLabel} {
		require.Contains(t, view, want)
	}
	require.Equal(t, 2, strings.Count(view, deleteLabel))
	require.Equal(t, 1, strings.Count(view, LabelSkills), "Bob has no skills row")
	for i, line := range strings.Split(zone.Scan(view), "\n") {
		require.Equal(t, 60, lipgloss.Width(line), "line %d", i)
	}
}

func TestView_MarkupIsNotInterpreted(t *testing.T) {
	m := New().SetRecords([]candidate.Record{{ID: "x", Name: "<b>Eve</b>", Contact: "<script>alert(1)</script>"}})
	view := m.View()
	require.Contains(t, view, "<b>Eve</b>")
	require.Contains(t, view, "<script>alert(1)</script>")
}

func TestView_WrapsLongSkills(t *testing.T) {
	skills := strings.TrimSpace(strings.Repeat("Kubernetes ", 12))
	m := New().SetSize(40, 0).SetRecords([]candidate.Record{{ID: "1", Name: "A", Contact: "1", Skills: skills}})

	view := zone.Scan(m.View())
	require.Equal(t, 12, strings.Count(view, "Kubernetes"), "no word lost to truncation")
}

func TestSetRecords_ReplacesAndClampsCursor(t *testing.T) {
	m := New().SetRecords(sampleRecords()).MoveDown()
	require.Equal(t, 1, m.Cursor())

	m = m.SetRecords(sampleRecords()[:1])
	require.Equal(t, 0, m.Cursor())
	require.Equal(t, 1, m.Len())

	m = m.SetRecords(nil)
	_, ok := m.Selected()
	require.False(t, ok)
	require.Contains(t, m.View(), EmptyTitle)
}

func TestCursor_Bounds(t *testing.T) {
	m := New().SetRecords(sampleRecords())

	m = m.MoveUp()
	require.Equal(t, 0, m.Cursor())

	m = m.MoveDown().MoveDown().MoveDown()
	require.Equal(t, 1, m.Cursor())

	sel, ok := m.Selected()
	require.True(t, ok)
	require.Equal(t, "Bob", sel.Name)
}

func TestView_SelectionMarker(t *testing.T) {
	m := New().SetRecords(sampleRecords())
	require.NotContains(t, m.View(), "> Alice")

	m = m.SetFocused(true)
	require.Contains(t, m.View(), "> Alice")
	require.NotContains(t, m.View(), "> Bob")
}

func TestView_ScrollsToCursor(t *testing.T) {
	records := make([]candidate.Record, 10)
	for i := range records {
		records[i] = candidate.Record{ID: candidate.ID(strconv.Itoa(i)), Name: "Person" + strconv.Itoa(i), Contact: "c"}
	}
	m := New().SetSize(40, 8).SetRecords(records)

	require.Contains(t, m.View(), "Person0")
	for range 9 {
		m = m.MoveDown()
	}
	view := m.View()
	require.Contains(t, view, "Person9")
	require.NotContains(t, view, "Person0")
	require.LessOrEqual(t, lipgloss.Height(view), 8)
}

func TestDeleteZone_IsPerCandidate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		id := candidate.ID(rapid.StringMatching(`[0-9a-z]{1,20}`).Draw(t, "id"))
		require.Equal(t, DeleteZonePrefix+id.String(), Card{ID: id}.DeleteZone())
	})
}

func TestClickedDelete_IgnoresNonRelease(t *testing.T) {
	m := New().SetRecords(sampleRecords())
	_, ok := m.ClickedDelete(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.False(t, ok)
}
