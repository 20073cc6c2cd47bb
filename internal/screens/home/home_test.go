package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/stemlab/internal/catalog"
	"github.com/abhisek/stemlab/internal/parts"
	pg "github.com/abhisek/stemlab/internal/playground"
	"github.com/abhisek/stemlab/internal/plans"
	"github.com/abhisek/stemlab/internal/router"
	"github.com/abhisek/stemlab/internal/screen"
	"github.com/abhisek/stemlab/internal/screens/about"
	"github.com/abhisek/stemlab/internal/screens/lessons"
	"github.com/abhisek/stemlab/internal/screens/notice"
	playgroundscreen "github.com/abhisek/stemlab/internal/screens/playground"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testHome() *HomeScreen {
	engine := catalog.NewEngine([]catalog.Lesson{
		{ID: "1", Title: "Introduction to Micro:bit", Category: catalog.CategoryMicrobit},
	})
	platforms := pg.Platforms{
		pg.TargetMicrobit: {
			Target:  pg.TargetMicrobit,
			Name:    "Micro:bit",
			Library: parts.NewLibrary([]parts.Part{{ID: "1", Name: "Micro:bit V2"}}),
			Plans:   plans.NewBook([]plans.Plan{{LessonID: "1", Title: "Intro"}}),
		},
	}
	return New(engine, platforms, nil)
}

// selectItem moves the cursor to item i and presses enter.
func selectItem(t *testing.T, h *HomeScreen, i int) screen.Screen {
	t.Helper()
	for range i {
		h.Update(specialKey(tea.KeyDown))
	}
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	return push.Screen
}

func TestHome_MenuOpensScreens(t *testing.T) {
	_, ok := selectItem(t, testHome(), itemLessons).(*lessons.LessonsScreen)
	assert.True(t, ok, "LESSONS should open the lesson catalog")

	s := selectItem(t, testHome(), itemMicrobit)
	ps, ok := s.(*playgroundscreen.PlaygroundScreen)
	require.True(t, ok, "got %T", s)
	assert.Equal(t, pg.ModeFreeBuild, ps.Session().Mode)
	assert.Equal(t, pg.TargetMicrobit, ps.Session().Platform.Target)

	_, ok = selectItem(t, testHome(), itemAbout).(*about.AboutScreen)
	assert.True(t, ok)
}

func TestHome_MissingPlatformShowsNotice(t *testing.T) {
	s := selectItem(t, testHome(), itemArduino)
	_, ok := s.(*notice.NoticeScreen)
	assert.True(t, ok, "got %T", s)
}

func TestHome_ExitQuits(t *testing.T) {
	h := testHome()
	for range itemExit {
		h.Update(specialKey(tea.KeyDown))
	}
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestHome_BoardFollowsSelection(t *testing.T) {
	h := testHome()
	assert.Equal(t, BoardIdle, h.board())
	h.Update(specialKey(tea.KeyDown))
	assert.Equal(t, BoardMicrobit, h.board())
	h.Update(specialKey(tea.KeyDown))
	assert.Equal(t, BoardArduino, h.board())
}

func TestHome_View(t *testing.T) {
	h := testHome()

	full := h.View(120, 50)
	assert.Contains(t, full, "Interactive Lessons")
	assert.Contains(t, full, "1 LESSONS")
	assert.Contains(t, full, "LESSONS")

	compact := h.View(80, 18)
	assert.NotContains(t, compact, "Interactive Lessons")
	assert.Contains(t, compact, "EXIT")
}
