package about

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stemlab/internal/screen"
	"github.com/abhisek/stemlab/internal/ui/components"
	"github.com/abhisek/stemlab/internal/ui/layout"
	"github.com/abhisek/stemlab/internal/ui/theme"
)

type entry struct {
	title string
	text  string
}

type section struct {
	heading string
	intro   string
	entries []entry
}

var sections = []section{
	{
		heading: "Our Mission",
		intro: "STEM Lab is designed to make STEM education accessible, engaging, and practical for students of all ages. " +
			"We believe in learning by doing, and the lab provides the tools and resources needed to explore programming, " +
			"electronics, and robotics in an interactive environment.",
	},
	{
		heading: "Key Features",
		entries: []entry{
			{"Interactive Lessons", "Step-by-step tutorials with hands-on exercises"},
			{"Micro:bit Programming", "Learn programming with the Micro:bit microcontroller"},
			{"Arduino Projects", "Build and program Arduino-based projects"},
			{"Personalized Learning", "Track your progress and save your projects"},
		},
	},
	{
		heading: "Learning Approach",
		entries: []entry{
			{"Project-Based Learning", "Learn through real-world projects and applications"},
			{"Problem Solving", "Develop critical thinking and problem-solving skills"},
			{"Conceptual Understanding", "Build a strong foundation in STEM concepts"},
			{"Collaborative Learning", "Share projects and learn from others"},
		},
	},
	{
		heading: "Getting Started",
		entries: []entry{
			{"1. Explore the Lessons", "Browse through the collection of interactive lessons"},
			{"2. Choose a Project", "Select a project that interests you and matches your skill level"},
			{"3. Follow the Tutorial", "Work through the step-by-step instructions"},
			{"4. Experiment and Learn", "Modify the projects to explore new ideas and concepts"},
		},
	},
}

// AboutScreen shows what the lab is for and how to get started.
type AboutScreen struct {
	scrollOffset int
	lineCount    int
}

var _ screen.Screen = (*AboutScreen)(nil)

// New creates a new AboutScreen.
func New() *AboutScreen {
	return &AboutScreen{}
}

func (a *AboutScreen) Init() tea.Cmd {
	return nil
}

func (a *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if a.scrollOffset > 0 {
				a.scrollOffset--
			}
		case "down", "j":
			if a.lineCount == 0 || a.scrollOffset < a.lineCount-1 {
				a.scrollOffset++
			}
		case "home", "g":
			a.scrollOffset = 0
		}
	}
	return a, nil
}

func (a *AboutScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	lines := strings.Split(render(cw), "\n")
	a.lineCount = len(lines)

	a.scrollOffset = min(a.scrollOffset, max(len(lines)-height, 0))
	end := min(a.scrollOffset+height, len(lines))
	visible := strings.Join(lines[a.scrollOffset:end], "\n")

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, visible)
}

func (a *AboutScreen) Title() string {
	return "About"
}

func (a *AboutScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func render(width int) string {
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render("About STEM Lab"))
	b.WriteString("\n")
	b.WriteString(wrap.Foreground(theme.TextDim).Render(
		"Empowering students to learn STEM concepts through interactive programming and hands-on projects"))

	for _, s := range sections {
		b.WriteString("\n\n")
		b.WriteString(theme.Heading.Render(s.heading))
		if s.intro != "" {
			b.WriteString("\n")
			b.WriteString(wrap.Foreground(theme.Text).Render(s.intro))
		}
		for _, e := range s.entries {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render("▸ "))
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(e.title))
			b.WriteString("\n  ")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(max(width-2, 1)).Render(e.text))
		}
	}
	return b.String()
}
