package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/stemlab/internal/ui/components"
	"github.com/abhisek/stemlab/internal/ui/glyph"
	"github.com/abhisek/stemlab/internal/ui/theme"
)

const homeTitleCompact = "S · T · E · M   L · A · B"

type feature struct {
	glyph       string
	title       string
	description string
}

var features = []feature{
	{"science", "Interactive Lessons", "Learn STEM concepts through hands-on, interactive lessons designed for all skill levels."},
	{"code", "Micro:bit Programming", "Write and test code for the Micro:bit microcontroller."},
	{"build", "Arduino Projects", "Design Arduino circuits and programs in the virtual playground."},
	{"memory", "Parts Sorting", "Learn what every component does by sorting it into the right bucket."},
}

// renderTitle returns the heading block: title, tagline and board art.
func renderTitle(cw int, board BoardVariant, compact bool) string {
	title := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(homeTitleCompact)
	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Learn STEM concepts through interactive programming and hands-on projects")

	block := title + "\n" + tagline
	if !compact {
		block = RenderBoard(board) + "\n\n" + block
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderStatsBar renders the catalog totals in a bordered box matching
// content width.
func renderStatsBar(lessons, microbitPlans, arduinoPlans, cw int, compact bool) string {
	lessonStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	microbitStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	arduinoStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			lessonStyle.Render(fmt.Sprintf("▣%d", lessons)),
			microbitStyle.Render(fmt.Sprintf("⌨%d", microbitPlans)),
			arduinoStyle.Render(fmt.Sprintf("⚒%d", arduinoPlans)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			lessonStyle.Render(fmt.Sprintf("▣ %d LESSONS", lessons)),
			microbitStyle.Render(fmt.Sprintf("⌨ %d MICRO:BIT", microbitPlans)),
			arduinoStyle.Render(fmt.Sprintf("⚒ %d ARDUINO", arduinoPlans)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderFeatures lays the feature cards out two per row.
func renderFeatures(cw int) string {
	cardWidth := cw / 2
	var rows []string
	for i := 0; i < len(features); i += 2 {
		var cards []string
		for _, f := range features[i:min(i+2, len(features))] {
			body := lipgloss.NewStyle().Foreground(theme.Primary).Render(glyph.For(f.glyph)) + " " +
				theme.Heading.Render(f.title) + "\n" +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(f.description)
			cards = append(cards, components.Card(body, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

// renderMenuBlock centers the menu within the content width.
func renderMenuBlock(menu components.Menu, cw int, compact bool) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(menu.View(compact))
}
