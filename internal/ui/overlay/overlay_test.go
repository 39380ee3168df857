package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func grid(w, h int) string {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat(".", w)
	}
	return strings.Join(rows, "\n")
}

func TestPlace_Positions(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		row      int
		expected string
	}{
		{"center", Config{Width: 6, Height: 3, Position: Center}, 1, "..XX.."},
		{"top", Config{Width: 6, Height: 3, Position: Top}, 0, "..XX.."},
		{"top padded", Config{Width: 6, Height: 3, Position: Top, PadY: 1}, 1, "..XX.."},
		{"bottom", Config{Width: 6, Height: 3, Position: Bottom}, 2, "..XX.."},
		{"top right", Config{Width: 6, Height: 3, Position: TopRight}, 0, "....XX"},
		{"top right padded", Config{Width: 6, Height: 3, Position: TopRight, PadX: 1, PadY: 1}, 1, "...XX."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := strings.Split(Place(tt.cfg, "XX", grid(6, 3)), "\n")
			require.Len(t, lines, 3)
			require.Equal(t, tt.expected, lines[tt.row])
			for i, line := range lines {
				if i != tt.row {
					require.Equal(t, "......", line, "row %d should be untouched", i)
				}
			}
		})
	}
}

func TestPlace_ForegroundLargerThanViewport(t *testing.T) {
	lines := strings.Split(Place(Config{Width: 3, Height: 2}, "XXXXX\nXXXXX\nXXXXX", grid(3, 2)), "\n")

	require.Len(t, lines, 2, "rows beyond the background are dropped")
	require.Equal(t, "XXXXX", lines[0])
}

func TestPlace_PadsShortBackground(t *testing.T) {
	lines := strings.Split(Place(Config{Width: 4, Height: 3, Position: Bottom}, "X", "...."), "\n")

	require.Len(t, lines, 3)
	require.Equal(t, " X  ", lines[2])
}

func TestPlace_PreservesAnsiBackground(t *testing.T) {
	bg := "\x1b[31m......\x1b[0m"
	out := Place(Config{Width: 6, Height: 1, Position: Center}, "XX", bg)

	require.Contains(t, out, "XX")
	require.Contains(t, out, "\x1b[31m", "left background styling kept")
}

func TestPlace_WideRunes(t *testing.T) {
	out := Place(Config{Width: 6, Height: 1, Position: TopRight}, "김", "......")
	require.Equal(t, "....김", out)
}
