package study

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayato/kioku/internal/app"
	"github.com/ayato/kioku/internal/flashcard"
	"github.com/ayato/kioku/internal/screen"
	"github.com/ayato/kioku/internal/screens/summary"
	"github.com/ayato/kioku/internal/session"
	"github.com/ayato/kioku/internal/srs"
	"github.com/ayato/kioku/internal/ui/components"
	"github.com/ayato/kioku/internal/ui/layout"
	"github.com/ayato/kioku/internal/ui/theme"
)

// StudyScreen drives one flashcard session. Ratings are persisted as
// they happen, so backing out mid-session loses nothing.
type StudyScreen struct {
	env         *app.Env
	engine      *session.Engine
	datasetName string
	errMsg      string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)
var _ screen.HeaderInfoProvider = (*StudyScreen)(nil)

// New creates a StudyScreen over an already-built engine.
func New(env *app.Env, datasetName string, engine *session.Engine) *StudyScreen {
	return &StudyScreen{env: env, engine: engine, datasetName: datasetName}
}

func (s *StudyScreen) Init() tea.Cmd {
	return nil
}

func (s *StudyScreen) Title() string {
	return s.datasetName
}

func (s *StudyScreen) HeaderInfo() string {
	return s.env.Today().Format(srs.DateFormat)
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.engine.Empty() {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if s.engine.Flipped() {
		return []layout.KeyHint{
			{Key: "1", Description: "不會"},
			{Key: "2", Description: "還好"},
			{Key: "3", Description: "記住了"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "翻面"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case " ", "space", "enter":
		if !s.engine.Flipped() {
			s.engine.Flip()
		}
		return s, nil
	case "1", "a":
		return s.rate(srs.RatingAgain)
	case "2", "h":
		return s.rate(srs.RatingHard)
	case "3", "g":
		return s.rate(srs.RatingGood)
	}

	return s, nil
}

func (s *StudyScreen) rate(r srs.Rating) (screen.Screen, tea.Cmd) {
	if !s.engine.Flipped() {
		// Rating is only offered once the answer is showing.
		return s, nil
	}

	if err := s.engine.Rate(context.Background(), r); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.errMsg = ""

	if s.engine.Complete() {
		return s, screen.Replace(summary.New(s.datasetName, s.engine.Result()))
	}
	return s, nil
}

func (s *StudyScreen) View(width, height int) string {
	if s.engine.Empty() {
		msg := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("今天沒有要複習的卡片 🎉")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	card := s.engine.Current()
	if card == nil {
		return ""
	}

	var b strings.Builder

	barWidth := min(width-8, 50)
	bar := components.NewFractionBar(s.engine.Index()+1, s.engine.Total(), barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	cardWidth := min(width-10, 64)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		renderCard(card.Content, s.engine.Flipped(), cardWidth)))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// renderCard draws the card face. Before the flip only the front is
// shown; after it, the back is appended below a divider.
func renderCard(c flashcard.Content, flipped bool, width int) string {
	var b strings.Builder

	b.WriteString(renderSide(c.Front, theme.Title, width))

	if flipped {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Border).
			Render(strings.Repeat("─", width-10)))
		b.WriteString("\n\n")
		b.WriteString(renderSide(c.Back, theme.Body.Align(lipgloss.Center), width))
	}

	return theme.Card.Width(width).Render(b.String())
}

func renderSide(side flashcard.Side, primaryStyle lipgloss.Style, width int) string {
	var b strings.Builder

	b.WriteString(primaryStyle.Render(highlightBrackets(side.Primary)))

	if side.Secondary != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(highlightBrackets(side.Secondary)))
	}
	if side.Detail != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(width - 10).
			Render(side.Detail))
	}

	return b.String()
}

// highlightBrackets renders 【】-marked grammar spans in the accent
// color and strips the markers.
func highlightBrackets(text string) string {
	if !strings.Contains(text, "【") {
		return text
	}
	var b strings.Builder
	for _, part := range flashcard.ParseSentence(text) {
		if part.Grammar {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Accent).
				Bold(true).
				Render(part.Text))
		} else {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
