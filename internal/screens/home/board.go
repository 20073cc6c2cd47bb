package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stemlab/internal/ui/theme"
)

// BoardVariant selects which board art to display next to the menu.
type BoardVariant int

const (
	BoardIdle     BoardVariant = iota // Breadboard
	BoardMicrobit                     // LED matrix and A/B buttons
	BoardArduino                      // Header pins and USB jack
)

const boardIdle = `╭──────────╮
│ ▪▪▪▪▪▪▪▪ │
│  ●    ●  │
│ ▪▪▪▪▪▪▪▪ │
╰──────────╯`

const boardMicrobit = `╭──────────╮
│  ·◆·◆·   │
│ A ◆···◆ B│
│  ·◆◆◆·   │
╰┬┬┬┬┬┬┬┬┬┬╯`

const boardArduino = `╭┬┬┬┬┬┬┬┬┬┬╮
│ UNO  ▣   │
█ ◉   ░░░░ │
│ ▪▪▪▪▪▪   │
╰┴┴┴┴┴┴┴┴┴┴╯`

// RenderBoard returns the board art for the given variant.
func RenderBoard(v BoardVariant) string {
	art := boardIdle
	fg := theme.Secondary

	switch v {
	case BoardMicrobit:
		art = boardMicrobit
		fg = theme.ArcadeCyan
	case BoardArduino:
		art = boardArduino
		fg = theme.Primary
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
