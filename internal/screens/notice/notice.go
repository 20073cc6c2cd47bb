package notice

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stemlab/internal/router"
	"github.com/abhisek/stemlab/internal/screen"
	"github.com/abhisek/stemlab/internal/ui/layout"
	"github.com/abhisek/stemlab/internal/ui/theme"
)

// NoticeScreen shows a single message, such as a lesson that could not be
// opened.
type NoticeScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*NoticeScreen)(nil)

// New creates a NoticeScreen with the given title and message.
func New(title, message string) *NoticeScreen {
	return &NoticeScreen{title: title, message: message}
}

func (n *NoticeScreen) Init() tea.Cmd {
	return nil
}

func (n *NoticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "q":
			return n, router.Pop()
		}
	}
	return n, nil
}

func (n *NoticeScreen) View(width, height int) string {
	body := theme.Heading.Render(n.title) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Width(min(60, max(width-8, 20))).Render(n.message) + "\n\n" +
		theme.Hint.Render("press enter to go back")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Notice.Render(body))
}

func (n *NoticeScreen) Title() string {
	return n.title
}

func (n *NoticeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "enter", Description: "Back"},
	}
}
