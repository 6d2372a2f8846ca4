package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ayato/kioku/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar with a leading label.
type ProgressBar struct {
	Label   string
	Percent float64
	Width   int
}

// NewFractionBar creates a progress bar labelled "cur/total", used for
// the position indicator during a session.
func NewFractionBar(cur, total, width int) ProgressBar {
	percent := 0.0
	if total > 0 {
		percent = float64(cur) / float64(total)
	}
	return ProgressBar{
		Label:   fmt.Sprintf("%d/%d", cur, total),
		Percent: percent,
		Width:   width,
	}
}

// View renders the bar. The track fills the width left over after the
// label; Percent outside [0,1] is clamped.
func (p ProgressBar) View() string {
	label := ""
	if p.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	track := p.Width - lipgloss.Width(label)
	if track < 4 {
		track = 4
	}

	pct := p.Percent
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(float64(track) * pct)

	return label +
		lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", track-filled))
}
