package playground

import (
	"bytes"
	"log/slog"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/stemlab/internal/parts"
	pg "github.com/abhisek/stemlab/internal/playground"
	"github.com/abhisek/stemlab/internal/plans"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testPlatform() *pg.Platform {
	return &pg.Platform{
		Target: pg.TargetArduino,
		Name:   "Arduino",
		Library: parts.NewLibrary([]parts.Part{
			{ID: "1", Name: "Arduino Uno", Category: "Microcontroller", Glyph: "memory"},
			{ID: "2", Name: "LED", Category: "Output", Glyph: "display"},
			{ID: "3", Name: "Resistor 220Ω", Category: "Passive", Glyph: "bolt"},
		}),
		Plans: plans.NewBook([]plans.Plan{{
			LessonID:    "2",
			Title:       "LED Blinking with Arduino",
			Description: "Learn how to make an LED blink using Arduino.",
			Parts:       []string{"1", "2", "2", "3"},
			Steps: []plans.Step{
				{ID: "1", Title: "Connect the LED", Description: "Connect the LED to pin 13."},
				{ID: "2", Title: "Upload the Code", Description: "Upload the blink sketch.", Code: "void setup() {\n  pinMode(13, OUTPUT);\n}"},
			},
		}}),
	}
}

func TestFreeBuild_AssignWithDigit(t *testing.T) {
	p := New(testPlatform(), "", nil)
	require.Equal(t, pg.ModeFreeBuild, p.Session().Mode)

	p.Update(keyPress('2')) // Arduino Uno -> Process
	p.Update(specialKey(tea.KeyDown))
	p.Update(keyPress('3')) // LED -> Output

	store := p.Session().Store()
	b, ok := store.Location("1")
	require.True(t, ok)
	assert.Equal(t, parts.BucketProcess, b)
	b, ok = store.Location("2")
	require.True(t, ok)
	assert.Equal(t, parts.BucketOutput, b)
	assert.Equal(t, "2/3 sorted", p.Status())
}

func TestFreeBuild_ReassignMovesPart(t *testing.T) {
	p := New(testPlatform(), "", nil)

	p.Update(keyPress('1'))
	p.Update(keyPress('3'))

	store := p.Session().Store()
	assert.Empty(t, store.Contents(parts.BucketInput))
	require.Len(t, store.Contents(parts.BucketOutput), 1)
	assert.Equal(t, 1, store.Assigned())
}

func TestFreeBuild_RemoveFromBucket(t *testing.T) {
	p := New(testPlatform(), "", nil)

	p.Update(keyPress('1'))
	p.Update(specialKey(tea.KeyDown))
	p.Update(keyPress('1'))
	require.Len(t, p.Session().Contents(parts.BucketInput), 2)

	p.Update(specialKey(tea.KeyTab))
	require.Equal(t, focusBuckets, p.focus)
	p.Update(specialKey(tea.KeyDown))
	p.Update(keyPress('x'))

	contents := p.Session().Contents(parts.BucketInput)
	require.Len(t, contents, 1)
	assert.Equal(t, "1", contents[0].ID)
	assert.Equal(t, 0, p.partCursor)
}

func TestFreeBuild_MoveFocusedPartBetweenBuckets(t *testing.T) {
	p := New(testPlatform(), "", nil)
	p.Update(keyPress('1'))

	p.Update(specialKey(tea.KeyTab))
	p.Update(keyPress('9'))

	assert.Empty(t, p.Session().Contents(parts.BucketInput))
	assert.Len(t, p.Session().Contents(parts.BucketElectrical), 1)
}

func TestFreeBuild_BucketNavigationWraps(t *testing.T) {
	p := New(testPlatform(), "", nil)
	p.Update(specialKey(tea.KeyTab))

	p.Update(specialKey(tea.KeyLeft))
	assert.Equal(t, parts.BucketElectrical, p.focusedBucket())
	p.Update(specialKey(tea.KeyRight))
	assert.Equal(t, parts.BucketInput, p.focusedBucket())
}

func TestFreeBuild_RemoveOnEmptyBucketIsNoop(t *testing.T) {
	p := New(testPlatform(), "", nil)
	p.Update(specialKey(tea.KeyTab))
	p.Update(keyPress('x'))
	assert.Equal(t, 0, p.Session().Store().Assigned())
}

func TestFreeBuild_Reset(t *testing.T) {
	p := New(testPlatform(), "", nil)
	p.Update(keyPress('1'))
	p.Update(keyPress('r'))
	assert.Equal(t, 0, p.Session().Store().Assigned())
}

func TestFreeBuild_LibraryCursorClamped(t *testing.T) {
	p := New(testPlatform(), "", nil)
	for range 10 {
		p.Update(specialKey(tea.KeyDown))
	}
	assert.Equal(t, 2, p.libCursor)
	for range 10 {
		p.Update(specialKey(tea.KeyUp))
	}
	assert.Equal(t, 0, p.libCursor)
}

func TestFreeBuild_View(t *testing.T) {
	p := New(testPlatform(), "", nil)
	p.Update(keyPress('2'))

	view := p.View(150, 30)
	assert.Contains(t, view, "Parts Library")
	assert.Contains(t, view, "Arduino Uno")
	assert.Contains(t, view, "Mechanical Structure")
	assert.Contains(t, view, "[2]")
	assert.Equal(t, "Arduino Playground", p.Title())
}

func TestLessonMode_Steps(t *testing.T) {
	p := New(testPlatform(), "2", nil)
	require.Equal(t, pg.ModeLesson, p.Session().Mode)
	assert.Equal(t, "Step 1/2", p.Status())

	view := p.View(150, 30)
	assert.Contains(t, view, "Required Parts")
	assert.Contains(t, view, "×2")
	assert.Contains(t, view, "Continue")

	p.Update(keyPress('n'))
	assert.Equal(t, "Step 2/2", p.Status())
	view = p.View(150, 30)
	assert.Contains(t, view, "Finish")
	assert.Contains(t, view, "pinMode(13, OUTPUT);")

	// Finish is disabled on the last step.
	p.Update(specialKey(tea.KeyRight))
	assert.Equal(t, "Step 2/2", p.Status())

	p.Update(keyPress('b'))
	p.Update(specialKey(tea.KeyLeft))
	assert.Equal(t, "Step 1/2", p.Status())
}

func TestLessonMode_DigitsIgnored(t *testing.T) {
	p := New(testPlatform(), "2", nil)
	p.Update(keyPress('1'))
	assert.Equal(t, 0, p.Session().Store().Assigned())
}

func TestLeave_LogsClose(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	p := New(testPlatform(), "", logger)
	p.Update(keyPress('1'))
	p.Leave()

	assert.Contains(t, buf.String(), "playground opened")
	assert.Contains(t, buf.String(), "playground closed")
	assert.Contains(t, buf.String(), `"sorted":1`)
}
