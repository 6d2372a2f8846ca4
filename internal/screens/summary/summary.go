package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayato/kioku/internal/screen"
	"github.com/ayato/kioku/internal/session"
	"github.com/ayato/kioku/internal/ui/layout"
	"github.com/ayato/kioku/internal/ui/theme"
)

// SummaryScreen displays the session result after the last card.
type SummaryScreen struct {
	datasetName string
	result      session.Result
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(datasetName string, result session.Result) *SummaryScreen {
	return &SummaryScreen{datasetName: datasetName, result: result}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "學習結束"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, screen.Home()
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("お疲れ様でした！"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(s.datasetName))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("共複習 %d 張卡片", r.Total)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 40)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	statsLine := theme.Good.Render(fmt.Sprintf("記住了 %d", r.Good)) +
		"        " +
		theme.Hard.Render(fmt.Sprintf("還好 %d", r.Hard)) +
		"        " +
		theme.Again.Render(fmt.Sprintf("不會 %d", r.Again))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, statsLine))
	b.WriteString("\n\n")

	if r.Total > 0 {
		pct := float64(r.Good+r.Hard) / float64(r.Total)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("正確率 %.0f%%", pct*100))))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
