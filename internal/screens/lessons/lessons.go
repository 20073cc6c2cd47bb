package lessons

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/stemlab/internal/catalog"
	pg "github.com/abhisek/stemlab/internal/playground"
	"github.com/abhisek/stemlab/internal/router"
	"github.com/abhisek/stemlab/internal/screen"
	"github.com/abhisek/stemlab/internal/screens/notice"
	playgroundscreen "github.com/abhisek/stemlab/internal/screens/playground"
	"github.com/abhisek/stemlab/internal/ui/components"
	"github.com/abhisek/stemlab/internal/ui/layout"
)

// LessonsScreen is the searchable lesson catalog.
type LessonsScreen struct {
	engine    *catalog.Engine
	platforms pg.Platforms
	logger    *slog.Logger

	search components.TextInput
	filter components.Picker
	sort   components.Picker

	results      []catalog.Lesson
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*LessonsScreen)(nil)
var _ screen.KeyHintProvider = (*LessonsScreen)(nil)
var _ screen.StatusProvider = (*LessonsScreen)(nil)

// New creates a LessonsScreen over engine. Selected lessons open in the
// matching platform from platforms.
func New(engine *catalog.Engine, platforms pg.Platforms, logger *slog.Logger) *LessonsScreen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	filterOpts := []components.PickerOption{{Value: catalog.FilterAll, Label: "All Categories"}}
	for _, c := range catalog.Categories() {
		filterOpts = append(filterOpts, components.PickerOption{Value: string(c), Label: string(c)})
	}

	var sortOpts []components.PickerOption
	for _, k := range catalog.SortKeys() {
		sortOpts = append(sortOpts, components.PickerOption{Value: string(k), Label: k.Label()})
	}

	l := &LessonsScreen{
		engine:    engine,
		platforms: platforms,
		logger:    logger,
		search:    components.NewTextInput("", "Search lessons...", 64),
		filter:    components.NewPicker("Filter By", filterOpts, catalog.FilterAll),
		sort:      components.NewPicker("Sort By", sortOpts, string(catalog.SortTitle)),
	}
	l.refresh()
	return l
}

func (l *LessonsScreen) Init() tea.Cmd {
	return l.search.Init()
}

func (l *LessonsScreen) Title() string {
	return "STEM Lessons"
}

func (l *LessonsScreen) Status() string {
	return fmt.Sprintf("%d/%d lessons", len(l.results), l.engine.Len())
}

func (l *LessonsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "type", Description: "Search"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Filter"},
		{Key: "Shift+Tab", Description: "Sort"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

// Query returns the query the current controls describe.
func (l *LessonsScreen) Query() catalog.Query {
	return catalog.Query{
		Search:   l.search.Value(),
		Category: l.filter.Value(),
		Sort:     catalog.SortKey(l.sort.Value()),
	}
}

// Results returns the lessons currently listed.
func (l *LessonsScreen) Results() []catalog.Lesson {
	return l.results
}

func (l *LessonsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up":
			l.moveCursor(-1)
			return l, nil
		case "down":
			l.moveCursor(1)
			return l, nil
		case "tab":
			l.filter.Next()
			l.refresh()
			return l, nil
		case "shift+tab":
			l.sort.Next()
			l.refresh()
			return l, nil
		case "enter":
			return l, l.open()
		}
	}

	var cmd tea.Cmd
	var changed bool
	l.search, cmd, changed = l.search.Update(msg)
	if changed {
		l.refresh()
	}
	return l, cmd
}

// refresh re-runs the query. Each run replaces the previous results
// entirely.
func (l *LessonsScreen) refresh() {
	q := l.Query()
	l.results = l.engine.Query(q)
	l.cursor = 0
	l.scrollOffset = 0
	l.logger.Debug("catalog query",
		"search", q.Search,
		"category", q.Category,
		"sort", string(q.Sort),
		"results", len(l.results),
	)
}

func (l *LessonsScreen) moveCursor(delta int) {
	l.cursor = min(max(l.cursor+delta, 0), max(len(l.results)-1, 0))
}

// open routes the selected lesson to its playground.
func (l *LessonsScreen) open() tea.Cmd {
	if len(l.results) == 0 {
		return nil
	}
	lesson := l.results[l.cursor]

	sel, err := pg.Route(lesson)
	if err != nil {
		l.logger.Error("lesson routing failed",
			"lesson", lesson.ID,
			"category", string(lesson.Category),
			"error", err,
		)
		return router.Push(notice.New("Lesson unavailable",
			fmt.Sprintf("%q cannot be opened: its category %q has no playground.", lesson.Title, lesson.Category)))
	}

	platform, ok := l.platforms.Get(sel.Target)
	if !ok {
		l.logger.Error("playground not loaded", "lesson", lesson.ID, "target", string(sel.Target))
		return router.Push(notice.New("Playground unavailable",
			fmt.Sprintf("No content is loaded for the %s playground.", sel.Target)))
	}

	l.logger.Info("lesson selected", "lesson", sel.LessonID, "target", string(sel.Target))
	return router.Push(playgroundscreen.New(platform, sel.LessonID, l.logger))
}
