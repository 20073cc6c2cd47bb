package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stemlab/internal/router"
	"github.com/abhisek/stemlab/internal/screen"
	"github.com/abhisek/stemlab/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// boardArt is a breadboard with a row of LEDs that light up in phase 2.
const boardArt = `╭──────────────────────╮
│ ▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪ │
│  %s  %s  %s  %s  %s  %s   │
│ ▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪ │
╰──────────────────────╯`

const ledCount = 6

type tickMsg time.Time

// WelcomeScreen shows a power-on animation before handing over to the home
// screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

// litLEDs returns how many LEDs are on at the current elapsed time.
func (w *WelcomeScreen) litLEDs() int {
	if w.elapsed < phase1End {
		return 0
	}
	span := phase2End - phase1End
	n := int((w.elapsed - phase1End) * ledCount / span)
	return min(n+1, ledCount)
}

func (w *WelcomeScreen) View(width, height int) string {
	on := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render("●")
	off := lipgloss.NewStyle().Foreground(theme.Border).Render("○")

	lit := w.litLEDs()
	leds := make([]any, ledCount)
	for i := range leds {
		if i < lit {
			leds[i] = on
		} else {
			leds[i] = off
		}
	}
	board := lipgloss.NewStyle().Foreground(theme.Secondary).Render(boardFrame(leds))

	sections := []string{board}

	if w.elapsed >= phase2End {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().
				Foreground(theme.Text).
				Bold(true).
				Render("Learn STEM concepts through interactive programming and hands-on projects"),
			"",
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Render("press any key to continue"),
		)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func boardFrame(leds []any) string {
	lines := strings.Split(boardArt, "\n")
	parts := strings.Split(lines[2], "%s")
	var b strings.Builder
	for i, p := range parts {
		b.WriteString(p)
		if i < len(leds) && i < len(parts)-1 {
			b.WriteString(leds[i].(string))
		}
	}
	lines[2] = b.String()
	return strings.Join(lines, "\n")
}
