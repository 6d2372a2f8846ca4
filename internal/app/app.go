package app

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayato/kioku/internal/dataset"
	"github.com/ayato/kioku/internal/screen"
	"github.com/ayato/kioku/internal/store"
	"github.com/ayato/kioku/internal/ui/layout"
)

// Env carries the shared dependencies every screen needs. The cmd
// layer builds one Env and threads it through the screen stack.
type Env struct {
	Datasets []*dataset.Dataset
	Store    *store.Store
	Rng      *rand.Rand
	Now      func() time.Time
}

// Today returns the current study date.
func (e *Env) Today() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Model is the root Bubble Tea model. It owns the screen stack and
// translates navigation messages from screens into stack operations.
type Model struct {
	stack  []screen.Screen
	width  int
	height int
}

// NewModel creates the root model with the given initial screen.
func NewModel(initial screen.Screen) Model {
	return Model{stack: []screen.Screen{initial}}
}

func (m Model) Init() tea.Cmd {
	return m.active().Init()
}

func (m Model) active() screen.Screen {
	return m.stack[len(m.stack)-1]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.PushMsg:
		m.stack = append(m.stack, msg.Screen)
		return m, msg.Screen.Init()

	case screen.PopMsg:
		return m.pop()

	case screen.ReplaceMsg:
		m.stack[len(m.stack)-1] = msg.Screen
		return m, msg.Screen.Init()

	case screen.HomeMsg:
		if len(m.stack) == 1 {
			return m, tea.Quit
		}
		m.stack = m.stack[:1]
		return m.forward(screen.RefreshMsg{})

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if len(m.stack) > 1 {
				return m.pop()
			}
			return m, nil
		}
	}

	return m.forward(msg)
}

// pop removes the top screen and refreshes the one underneath so that
// derived state, like due counts, is recomputed.
func (m Model) pop() (tea.Model, tea.Cmd) {
	if len(m.stack) <= 1 {
		return m, nil
	}
	m.stack = m.stack[:len(m.stack)-1]
	return m.forward(screen.RefreshMsg{})
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.active().Update(msg)
	m.stack[len(m.stack)-1] = updated
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.active()

	right := ""
	if p, ok := active.(screen.HeaderInfoProvider); ok {
		right = p.HeaderInfo()
	}
	header := layout.RenderHeader(active.Title(), right, m.width)

	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else if len(m.stack) > 1 {
		hints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(hints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := active.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program with the given initial screen.
func Run(initial screen.Screen) error {
	p := tea.NewProgram(NewModel(initial))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
