package setup

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayato/kioku/internal/app"
	"github.com/ayato/kioku/internal/dataset"
	"github.com/ayato/kioku/internal/flashcard"
	"github.com/ayato/kioku/internal/screen"
	"github.com/ayato/kioku/internal/screens/study"
	"github.com/ayato/kioku/internal/session"
	"github.com/ayato/kioku/internal/store"
	"github.com/ayato/kioku/internal/ui/components"
	"github.com/ayato/kioku/internal/ui/layout"
	"github.com/ayato/kioku/internal/ui/theme"
)

const (
	rowMode = iota
	rowType
	rowSize
	rowStart
	rowCount
)

var typeLabels = map[session.Type]string{
	session.TypeDue:    "到期複習",
	session.TypeRandom: "隨機複習",
}

// SetupScreen configures a session for one dataset: test mode, session
// type, and queue size.
type SetupScreen struct {
	env *app.Env
	ds  *dataset.Dataset

	modes   []flashcard.Mode
	modeIdx int
	types   []session.Type
	typeIdx int
	size    components.NumberInput

	row    int
	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen for the given dataset. The size field is
// pre-filled from the saved settings.
func New(env *app.Env, ds *dataset.Dataset) *SetupScreen {
	modes := flashcard.ModesFor(ds.Category)
	modeIdx := 0
	for i, m := range modes {
		if m == flashcard.DefaultMode(ds.Category) {
			modeIdx = i
			break
		}
	}

	sessionSize := env.Store.Settings().Load(context.Background()).SessionSize
	size := components.NewNumberInput(fmt.Sprintf("%d", sessionSize), 3)

	return &SetupScreen{
		env:     env,
		ds:      ds,
		modes:   modes,
		modeIdx: modeIdx,
		types:   []session.Type{session.TypeDue, session.TypeRandom},
		size:    size,
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return s.ds.Name
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "開始"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.row > 0 {
			s.row--
		}
		s.syncFocus()
		return s, nil
	case "down", "j", "tab":
		if s.row < rowCount-1 {
			s.row++
		}
		s.syncFocus()
		return s, nil
	case "left":
		s.cycle(-1)
		return s, nil
	case "right":
		s.cycle(1)
		return s, nil
	case "enter":
		return s, s.start()
	}

	if s.row == rowSize {
		var cmd tea.Cmd
		s.size, cmd = s.size.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SetupScreen) syncFocus() {
	if s.row == rowSize {
		s.size.Focus()
	} else {
		s.size.Blur()
	}
}

func (s *SetupScreen) cycle(dir int) {
	switch s.row {
	case rowMode:
		s.modeIdx = (s.modeIdx + dir + len(s.modes)) % len(s.modes)
	case rowType:
		s.typeIdx = (s.typeIdx + dir + len(s.types)) % len(s.types)
	}
}

// start builds the engine and pushes the study screen. A session with
// nothing due still opens the study screen, which shows the empty state.
func (s *SetupScreen) start() tea.Cmd {
	ctx := context.Background()

	size := s.sessionSize(ctx)

	engine, err := session.New(ctx, session.Config{
		Dataset:  s.ds,
		Mode:     s.modes[s.modeIdx],
		Type:     s.types[s.typeIdx],
		Size:     size,
		Progress: s.env.Store.Progress(),
		Rng:      s.env.Rng,
		Now:      s.env.Now,
	})
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	return screen.Push(study.New(s.env, s.ds.Name, engine))
}

// sessionSize resolves the queue size: the typed value if any, else the
// saved setting. A typed value becomes the new saved setting.
func (s *SetupScreen) sessionSize(ctx context.Context) int {
	if n, err := s.size.NumericValue(); err == nil && n > 0 {
		_ = s.env.Store.Settings().Save(ctx, store.Settings{SessionSize: n})
		return n
	}
	return s.env.Store.Settings().Load(ctx).SessionSize
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderRow(rowMode, "測驗模式", s.modes[s.modeIdx].Label()))
	b.WriteString("\n")
	b.WriteString(s.renderRow(rowType, "學習方式", typeLabels[s.types[s.typeIdx]]))
	b.WriteString("\n")
	b.WriteString(s.renderRow(rowSize, "卡片數量", s.size.View()))
	b.WriteString("\n\n")

	startLabel := "  開 始  "
	if s.row == rowStart {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.BgCard).
			Background(theme.Primary).
			Bold(true).
			Render(startLabel))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(startLabel))
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (s *SetupScreen) renderRow(row int, label, value string) string {
	marker := "  "
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if s.row == row {
		marker = "▸ "
		labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
		valueStyle = valueStyle.Foreground(theme.Primary)
	}
	arrows := ""
	if row == rowMode || row == rowType {
		arrows = lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ◂ ▸")
	}
	return marker + labelStyle.Render(label) + "   " + valueStyle.Render(value) + arrows
}
