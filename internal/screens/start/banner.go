package start

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbox/internal/ui/theme"
)

const bannerArt = `
  ___  _   _ ___ ______  _____  __
 / _ \| | | |_ _|_  / _ )/ _ \ \/ /
| (_) | |_| || | / /| _ \ (_) >  <
 \__\_\\___/|___/___|___/\___/_/\_\`

const bannerCompact = "Q U I Z B O X"

// RenderBanner returns the banner styled in the primary color, falling back
// to a compact form on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
