package lessons

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/stemlab/internal/catalog"
	"github.com/abhisek/stemlab/internal/ui/components"
	"github.com/abhisek/stemlab/internal/ui/glyph"
	"github.com/abhisek/stemlab/internal/ui/theme"
)

// cardHeight is the rendered height of one lesson card including border.
const cardHeight = 6

func (l *LessonsScreen) View(width, height int) string {
	cw := min(max(width-4, 40), 100)

	intro := theme.Subtitle.Render("Explore interactive lessons to learn STEM concepts through hands-on projects.")

	l.search.SetWidth(cw - 4)
	controls := l.search.View() + "\n" + l.filter.View() + "   " + l.sort.View()

	top := intro + "\n\n" + controls + "\n"
	listHeight := max(height-lipgloss.Height(top)-1, cardHeight)

	var list string
	if len(l.results) == 0 {
		list = theme.Hint.Render("No lessons match your search.")
	} else {
		list = l.renderList(cw, listHeight)
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(top+"\n"+list))
}

func (l *LessonsScreen) renderList(width, height int) string {
	visible := max(height/cardHeight, 1)

	if l.cursor < l.scrollOffset {
		l.scrollOffset = l.cursor
	}
	if l.cursor >= l.scrollOffset+visible {
		l.scrollOffset = l.cursor - visible + 1
	}

	var cards []string
	end := min(l.scrollOffset+visible, len(l.results))
	for i := l.scrollOffset; i < end; i++ {
		cards = append(cards, renderCard(l.results[i], i == l.cursor, width))
	}
	return strings.Join(cards, "\n")
}

func renderCard(lesson catalog.Lesson, selected bool, width int) string {
	inner := max(width-4, 10)

	titleStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if selected {
		titleStyle = theme.Selected
	}
	title := lipgloss.NewStyle().Foreground(theme.Primary).Render(glyph.For(lesson.Glyph)) + " " +
		titleStyle.Render(lesson.Title)

	desc := lipgloss.NewStyle().Foreground(theme.TextDim).MaxWidth(inner).Render(lesson.Description)

	chips := []string{
		theme.Chip.Render(string(lesson.Category)),
		theme.DifficultyColor(string(lesson.Difficulty)).Render(string(lesson.Difficulty)),
	}
	for _, tag := range lesson.Tags[:min(2, len(lesson.Tags))] {
		chips = append(chips, theme.ChipOutline.Render(tag))
	}

	progress := components.NewProgressBar("Progress:", lesson.Progress, inner).View()

	body := fmt.Sprintf("%s\n%s\n%s\n%s", title, desc, strings.Join(chips, " "), progress)

	style := theme.Blurred
	if selected {
		style = theme.Focused
	}
	return style.Width(max(width-2, 0)).Padding(0, 1).Render(body)
}
