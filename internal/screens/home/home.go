package home

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/stemlab/internal/catalog"
	pg "github.com/abhisek/stemlab/internal/playground"
	"github.com/abhisek/stemlab/internal/router"
	"github.com/abhisek/stemlab/internal/screen"
	"github.com/abhisek/stemlab/internal/screens/about"
	"github.com/abhisek/stemlab/internal/screens/lessons"
	"github.com/abhisek/stemlab/internal/screens/notice"
	playgroundscreen "github.com/abhisek/stemlab/internal/screens/playground"
	"github.com/abhisek/stemlab/internal/ui/components"
	"github.com/abhisek/stemlab/internal/ui/layout"
)

// Menu positions.
const (
	itemLessons = iota
	itemMicrobit
	itemArduino
	itemAbout
	itemExit
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu          components.Menu
	lessonCount   int
	microbitPlans int
	arduinoPlans  int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(engine *catalog.Engine, platforms pg.Platforms, logger *slog.Logger) *HomeScreen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	items := []components.MenuItem{
		{Label: "LESSONS", Action: func() tea.Cmd {
			return router.Push(lessons.New(engine, platforms, logger))
		}},
		{Label: "MICRO:BIT PLAYGROUND", Action: func() tea.Cmd {
			return openPlayground(platforms, pg.TargetMicrobit, logger)
		}},
		{Label: "ARDUINO PLAYGROUND", Action: func() tea.Cmd {
			return openPlayground(platforms, pg.TargetArduino, logger)
		}},
		{Label: "ABOUT", Action: func() tea.Cmd {
			return router.Push(about.New())
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h := &HomeScreen{
		menu: components.NewMenu(items),
	}
	if engine != nil {
		h.lessonCount = engine.Len()
	}
	if p, ok := platforms.Get(pg.TargetMicrobit); ok {
		h.microbitPlans = p.Plans.Len()
	}
	if p, ok := platforms.Get(pg.TargetArduino); ok {
		h.arduinoPlans = p.Plans.Len()
	}
	return h
}

// openPlayground opens the free-build board for target.
func openPlayground(platforms pg.Platforms, target pg.Target, logger *slog.Logger) tea.Cmd {
	p, ok := platforms.Get(target)
	if !ok {
		logger.Error("playground not loaded", "target", string(target))
		return router.Push(notice.New("Playground unavailable",
			fmt.Sprintf("No content is loaded for the %s playground.", target)))
	}
	return router.Push(playgroundscreen.New(p, "", logger))
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// board picks the art for the highlighted menu item.
func (h *HomeScreen) board() BoardVariant {
	switch h.menu.Selected {
	case itemMicrobit:
		return BoardMicrobit
	case itemArduino:
		return BoardArduino
	default:
		return BoardIdle
	}
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, h.board(), compact))
	if !compact {
		sections = append(sections, renderFeatures(cw))
	}
	sections = append(sections, renderStatsBar(h.lessonCount, h.microbitPlans, h.arduinoPlans, cw, compact))
	sections = append(sections, renderMenuBlock(h.menu, cw, compact && layout.IsTight(height)))

	content := strings.Join(sections, "\n\n")

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
