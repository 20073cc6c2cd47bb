package playground

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/stemlab/internal/parts"
	pg "github.com/abhisek/stemlab/internal/playground"
	"github.com/abhisek/stemlab/internal/screen"
	"github.com/abhisek/stemlab/internal/ui/layout"
)

type focus int

const (
	focusLibrary focus = iota
	focusBuckets
)

// PlaygroundScreen runs one playground session. With a lesson plan it
// shows the tutorial; otherwise it shows the parts board.
type PlaygroundScreen struct {
	session *pg.Session

	focus        focus
	libCursor    int
	libOffset    int
	bucketCursor int
	partCursor   int
}

var _ screen.Screen = (*PlaygroundScreen)(nil)
var _ screen.KeyHintProvider = (*PlaygroundScreen)(nil)
var _ screen.Leaver = (*PlaygroundScreen)(nil)
var _ screen.StatusProvider = (*PlaygroundScreen)(nil)

// New opens a session on platform. An empty lessonID opens the free-build
// board.
func New(platform *pg.Platform, lessonID string, logger *slog.Logger) *PlaygroundScreen {
	return &PlaygroundScreen{
		session: pg.Open(platform, lessonID, logger),
	}
}

// Session exposes the running session.
func (p *PlaygroundScreen) Session() *pg.Session {
	return p.session
}

func (p *PlaygroundScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaygroundScreen) Title() string {
	name := "Playground"
	if p.session.Platform != nil {
		name = p.session.Platform.Name + " Playground"
	}
	if p.session.Mode == pg.ModeLesson {
		return name + " · " + p.session.Plan.Title
	}
	return name
}

func (p *PlaygroundScreen) Status() string {
	if p.session.Mode == pg.ModeLesson {
		st := p.session.Stepper()
		return fmt.Sprintf("Step %d/%d", st.Current()+1, st.Count())
	}
	return fmt.Sprintf("%d/%d sorted", p.session.Store().Assigned(), p.session.Library().Len())
}

func (p *PlaygroundScreen) Leave() {
	p.session.Close()
}

func (p *PlaygroundScreen) KeyHints() []layout.KeyHint {
	if p.session.Mode == pg.ModeLesson {
		return []layout.KeyHint{
			{Key: "→/n", Description: "Continue"},
			{Key: "←/b", Description: "Back"},
			{Key: "Esc", Description: "Exit"},
		}
	}
	if p.focus == focusBuckets {
		return []layout.KeyHint{
			{Key: "←→", Description: "Bucket"},
			{Key: "↑↓", Description: "Part"},
			{Key: "1-9", Description: "Move"},
			{Key: "x", Description: "Remove"},
			{Key: "Tab", Description: "Library"},
			{Key: "Esc", Description: "Exit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Part"},
		{Key: "1-9", Description: "Sort into bucket"},
		{Key: "Tab", Description: "Buckets"},
		{Key: "r", Description: "Reset"},
		{Key: "Esc", Description: "Exit"},
	}
}

func (p *PlaygroundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	key := kmsg.String()

	if p.session.Mode == pg.ModeLesson {
		switch key {
		case "right", "n", "enter":
			p.session.Next()
		case "left", "b":
			p.session.Back()
		}
		return p, nil
	}

	if b, ok := bucketForKey(key); ok {
		if id, ok := p.selectedPart(); ok {
			p.session.Assign(id, b)
			p.clampPartCursor()
		}
		return p, nil
	}

	switch key {
	case "tab":
		if p.focus == focusLibrary {
			p.focus = focusBuckets
		} else {
			p.focus = focusLibrary
		}
		p.clampPartCursor()
	case "up", "k":
		p.moveCursor(-1)
	case "down", "j":
		p.moveCursor(1)
	case "left", "h":
		if p.focus == focusBuckets {
			p.moveBucket(-1)
		}
	case "right", "l":
		if p.focus == focusBuckets {
			p.moveBucket(1)
		}
	case "x", "delete", "backspace":
		if p.focus == focusBuckets {
			p.removeFocused()
		}
	case "r":
		p.session.Reset()
		p.partCursor = 0
	}
	return p, nil
}

// bucketForKey maps the digit keys 1-9 to buckets in display order.
func bucketForKey(key string) (parts.Bucket, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return "", false
	}
	all := parts.Buckets()
	i := int(key[0] - '1')
	if i >= len(all) {
		return "", false
	}
	return all[i], true
}

func (p *PlaygroundScreen) focusedBucket() parts.Bucket {
	return parts.Buckets()[p.bucketCursor]
}

// selectedPart returns the part the next assignment applies to: the
// library cursor, or the focused part of the focused bucket.
func (p *PlaygroundScreen) selectedPart() (string, bool) {
	if p.focus == focusBuckets {
		contents := p.session.Contents(p.focusedBucket())
		if p.partCursor < len(contents) {
			return contents[p.partCursor].ID, true
		}
		return "", false
	}
	all := p.session.Library().All()
	if p.libCursor < len(all) {
		return all[p.libCursor].ID, true
	}
	return "", false
}

func (p *PlaygroundScreen) moveCursor(delta int) {
	if p.focus == focusBuckets {
		n := len(p.session.Contents(p.focusedBucket()))
		p.partCursor = min(max(p.partCursor+delta, 0), max(n-1, 0))
		return
	}
	n := p.session.Library().Len()
	p.libCursor = min(max(p.libCursor+delta, 0), max(n-1, 0))
}

func (p *PlaygroundScreen) moveBucket(delta int) {
	n := len(parts.Buckets())
	p.bucketCursor = (p.bucketCursor + delta + n) % n
	p.partCursor = 0
}

func (p *PlaygroundScreen) removeFocused() {
	b := p.focusedBucket()
	contents := p.session.Contents(b)
	if p.partCursor >= len(contents) {
		return
	}
	p.session.Unassign(b, contents[p.partCursor].ID)
	p.clampPartCursor()
}

func (p *PlaygroundScreen) clampPartCursor() {
	n := len(p.session.Contents(p.focusedBucket()))
	p.partCursor = min(p.partCursor, max(n-1, 0))
}
