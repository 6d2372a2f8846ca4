package summary

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ayato/kioku/internal/screen"
	"github.com/ayato/kioku/internal/session"
	"github.com/ayato/kioku/internal/srs"
)

func testResult() session.Result {
	return session.Result{
		Total: 12,
		Good:  8,
		Hard:  3,
		Again: 1,
		Cards: []session.RatedCard{
			{CardID: "v1", Rating: srs.RatingGood},
			{CardID: "v2", Rating: srs.RatingAgain},
		},
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New("N3 單字", testResult())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
}

func TestSummaryScreen_EnterGoesHome(t *testing.T) {
	s := New("N3 單字", testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(screen.HomeMsg); !ok {
		t.Error("expected a home navigation message on Enter")
	}
}

func TestSummaryScreen_ZeroTotal(t *testing.T) {
	s := New("N3 單字", session.Result{})
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view for an empty result")
	}
}
