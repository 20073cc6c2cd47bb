package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/stemlab/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for centered sections
// inside a cabinet frame.
func ContentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 72)
}

// CabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded-border card at the given outer width.
func Card(content string, width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(max(width-2, 0)).
		Padding(0, 1).
		Render(content)
}

// Panel renders a titled, bordered box. A focused panel gets the highlight
// border.
func Panel(title, body string, width, height int, focused bool) string {
	style := theme.Blurred
	if focused {
		style = theme.Focused
	}
	head := theme.Heading.Render(title)
	inner := head + "\n" + body

	s := style.Width(max(width-2, 0)).Padding(0, 1)
	if height > 2 {
		s = s.Height(height - 2)
	}
	return s.Render(clipLines(inner, max(height-2, 1)))
}

// clipLines keeps at most n lines of s.
func clipLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}
