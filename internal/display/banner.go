package display

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerRaw string

// RenderBanner returns the banner art centred for the current terminal
// width. Replace banner.txt to change it.
func RenderBanner() string {
	return renderBanner(termWidth())
}

func renderBanner(width int) string {
	art := strings.TrimRight(bannerRaw, "\n")
	if art == "" {
		return ""
	}

	// Pad every line to the widest so the block centres as one piece.
	block := lipgloss.NewStyle().Align(lipgloss.Left).Render(art)
	if width > lipgloss.Width(block) {
		block = lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
	}

	lines := strings.Split(block, "\n")
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(BannerStyle.Render(strings.TrimRight(l, " ")))
		b.WriteByte('\n')
	}
	return b.String()
}

// termWidth returns the current terminal column count, or 80 as fallback.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
