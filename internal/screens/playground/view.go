package playground

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/stemlab/internal/parts"
	pg "github.com/abhisek/stemlab/internal/playground"
	"github.com/abhisek/stemlab/internal/ui/components"
	"github.com/abhisek/stemlab/internal/ui/glyph"
	"github.com/abhisek/stemlab/internal/ui/theme"
)

const libraryWidth = 30

func (p *PlaygroundScreen) View(width, height int) string {
	if p.session.Mode == pg.ModeLesson {
		return p.viewLesson(width, height)
	}
	return p.viewBoard(width, height)
}

// viewBoard renders the parts library next to the 3x3 bucket grid.
func (p *PlaygroundScreen) viewBoard(width, height int) string {
	intro := theme.Subtitle.Render("Sort each part from the library into the bucket that describes what it does.")
	bodyHeight := max(height-2, 9)

	library := p.renderLibrary(bodyHeight)

	gridWidth := max(width-libraryWidth-1, 30)
	colWidth := gridWidth / 3
	rowHeight := max(bodyHeight/3, 3)

	all := parts.Buckets()
	var rows []string
	for r := 0; r < 3; r++ {
		var cols []string
		for c := 0; c < 3; c++ {
			i := r*3 + c
			if i >= len(all) {
				break
			}
			cols = append(cols, p.renderBucket(i, all[i], colWidth, rowHeight))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return intro + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, library, " ", grid)
}

func (p *PlaygroundScreen) renderLibrary(height int) string {
	all := p.session.Library().All()
	visible := max(height-3, 1)

	if p.libCursor < p.libOffset {
		p.libOffset = p.libCursor
	}
	if p.libCursor >= p.libOffset+visible {
		p.libOffset = p.libCursor - visible + 1
	}

	var lines []string
	for i := p.libOffset; i < len(all) && len(lines) < visible; i++ {
		part := all[i]
		label := glyph.For(part.Glyph) + " " + part.Name
		if b, ok := p.session.Store().Location(part.ID); ok {
			label += " " + lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("[%d]", bucketNumber(b)))
		}
		switch {
		case i == p.libCursor && p.focus == focusLibrary:
			lines = append(lines, theme.Selected.Render("▸ ")+label)
		case i == p.libCursor:
			lines = append(lines, theme.Hint.Render("› ")+label)
		default:
			lines = append(lines, "  "+label)
		}
	}
	if len(all) == 0 {
		lines = append(lines, theme.Hint.Render("No parts loaded."))
	}

	return components.Panel("Parts Library", strings.Join(lines, "\n"), libraryWidth, height, p.focus == focusLibrary)
}

func (p *PlaygroundScreen) renderBucket(i int, b parts.Bucket, width, height int) string {
	focused := p.focus == focusBuckets && i == p.bucketCursor
	title := fmt.Sprintf("%d %s %s", i+1, glyph.For(b.Glyph()), b.Name())

	contents := p.session.Contents(b)
	var lines []string
	for j, part := range contents {
		label := glyph.For(part.Glyph) + " " + part.Name
		if focused && j == p.partCursor {
			lines = append(lines, theme.Selected.Render("▸ "+label))
		} else {
			lines = append(lines, "  "+label)
		}
	}
	if len(contents) == 0 {
		lines = append(lines, theme.Hint.Render(b.Description()))
	}

	return components.Panel(title, strings.Join(lines, "\n"), width, height, focused)
}

func bucketNumber(b parts.Bucket) int {
	for i, x := range parts.Buckets() {
		if x == b {
			return i + 1
		}
	}
	return 0
}

// viewLesson renders the plan: required parts beside the step list.
func (p *PlaygroundScreen) viewLesson(width, height int) string {
	plan := p.session.Plan
	wrap := lipgloss.NewStyle().Width(max(width-2, 20))

	header := theme.Title.Render(plan.Title) + "\n" + wrap.Foreground(theme.TextDim).Render(plan.Description)
	bodyHeight := max(height-lipgloss.Height(header)-1, 6)

	var req []string
	for _, r := range p.session.Required() {
		line := glyph.For(r.Part.Glyph) + " " + r.Part.Name
		if r.Quantity > 1 {
			line += lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(fmt.Sprintf(" ×%d", r.Quantity))
		}
		req = append(req, line, "  "+theme.Hint.Render(r.Part.Category))
	}
	if len(req) == 0 {
		req = append(req, theme.Hint.Render("No parts needed."))
	}
	required := components.Panel("Required Parts", strings.Join(req, "\n"), libraryWidth, bodyHeight, false)

	stepsWidth := max(width-libraryWidth-1, 30)
	steps := components.Panel("Instructions", p.renderSteps(stepsWidth-4), stepsWidth, bodyHeight, true)

	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, required, " ", steps)
}

func (p *PlaygroundScreen) renderSteps(width int) string {
	st := p.session.Stepper()
	plan := p.session.Plan

	var b strings.Builder
	for i, step := range plan.Steps {
		if i > 0 {
			b.WriteString("\n")
		}
		switch {
		case i < st.Current():
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("✓ " + step.Title))
		case i == st.Current():
			b.WriteString(theme.Selected.Render("● " + step.Title))
		default:
			b.WriteString(theme.Hint.Render("○ " + step.Title))
		}
		if i != st.Current() {
			continue
		}

		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(max(width-2, 10)).PaddingLeft(2).Render(step.Description))
		if step.Code != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(
				theme.Code.Width(max(width-2, 10)).Render(strings.TrimRight(step.Code, "\n"))))
		}

		next := "Continue"
		if st.IsLast() {
			next = "Finish"
		}
		b.WriteString("\n  ")
		b.WriteString(components.NewButton(next, "→", st.IsLast()).View())
		b.WriteString(" ")
		b.WriteString(components.NewButton("Back", "←", st.IsFirst()).View())
	}
	return b.String()
}
