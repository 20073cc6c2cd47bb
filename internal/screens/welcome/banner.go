package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stemlab/internal/ui/theme"
)

const bannerArt = `
 ███████╗████████╗███████╗███╗   ███╗    ██╗      █████╗ ██████╗
 ██╔════╝╚══██╔══╝██╔════╝████╗ ████║    ██║     ██╔══██╗██╔══██╗
 ███████╗   ██║   █████╗  ██╔████╔██║    ██║     ███████║██████╔╝
 ╚════██║   ██║   ██╔══╝  ██║╚██╔╝██║    ██║     ██╔══██║██╔══██╗
 ███████║   ██║   ███████╗██║ ╚═╝ ██║    ███████╗██║  ██║██████╔╝
 ╚══════╝   ╚═╝   ╚══════╝╚═╝     ╚═╝    ╚══════╝╚═╝  ╚═╝╚═════╝`

const bannerCompact = "S T E M   L A B"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 66

// RenderBanner returns the STEM LAB banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
