package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayato/kioku/internal/app"
	"github.com/ayato/kioku/internal/dataset"
	"github.com/ayato/kioku/internal/screen"
	"github.com/ayato/kioku/internal/screens/setup"
	"github.com/ayato/kioku/internal/srs"
	"github.com/ayato/kioku/internal/ui/components"
	"github.com/ayato/kioku/internal/ui/theme"
)

// HomeScreen lists the loaded datasets with their due counts.
type HomeScreen struct {
	env  *app.Env
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.HeaderInfoProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *app.Env) *HomeScreen {
	h := &HomeScreen{env: env}
	h.menu = h.buildMenu()
	return h
}

func (h *HomeScreen) buildMenu() components.Menu {
	// One progress snapshot covers every dataset's detail line.
	progress, err := h.env.Store.Progress().All(context.Background())
	if err != nil {
		progress = map[string]srs.CardProgress{}
	}

	items := make([]components.MenuItem, 0, len(h.env.Datasets)+1)

	for _, ds := range h.env.Datasets {
		ds := ds
		items = append(items, components.MenuItem{
			Label:  ds.Name,
			Detail: h.datasetDetail(ds, progress),
			Action: func() tea.Cmd {
				return screen.Push(setup.New(h.env, ds))
			},
		})
	}

	items = append(items, components.MenuItem{
		Label: "離 開",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	selected := h.menu.Selected
	menu := components.NewMenu(items)
	if selected > 0 && selected < len(items) {
		menu.Selected = selected
	}
	return menu
}

// datasetDetail summarizes one dataset for the menu: due count, learned
// share, and mastery.
func (h *HomeScreen) datasetDetail(ds *dataset.Dataset, progress map[string]srs.CardProgress) string {
	stats := dataset.ComputeStats(ds, progress, h.env.Today())
	return fmt.Sprintf("到期 %d ・ 已學 %d/%d ・ 掌握 %d%%",
		stats.DueCards, stats.LearnedCards, stats.TotalCards, stats.MasteryPercent)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "首頁"
}

func (h *HomeScreen) HeaderInfo() string {
	return h.env.Today().Format(srs.DateFormat)
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.RefreshMsg); ok {
		// Due counts change after a session; rebuild the menu.
		h.menu = h.buildMenu()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("記憶 ・ 日語閃卡"))
	b.WriteString("\n\n")

	if len(h.env.Datasets) == 0 {
		b.WriteString(theme.Hint.Render("找不到資料集，請確認 data 目錄"))
		b.WriteString("\n\n")
	}

	b.WriteString(h.menu.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
