package study

import (
	"context"
	"math/rand"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ayato/kioku/internal/app"
	"github.com/ayato/kioku/internal/dataset"
	"github.com/ayato/kioku/internal/flashcard"
	"github.com/ayato/kioku/internal/screen"
	"github.com/ayato/kioku/internal/session"
	"github.com/ayato/kioku/internal/srs"
)

type memProgress struct {
	records map[string]srs.CardProgress
}

func newMemProgress() *memProgress {
	return &memProgress{records: map[string]srs.CardProgress{}}
}

func (m *memProgress) Get(_ context.Context, cardID string) (*srs.CardProgress, error) {
	if p, ok := m.records[cardID]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *memProgress) All(_ context.Context) (map[string]srs.CardProgress, error) {
	out := make(map[string]srs.CardProgress, len(m.records))
	for k, v := range m.records {
		out[k] = v
	}
	return out, nil
}

func (m *memProgress) Put(_ context.Context, p srs.CardProgress) error {
	m.records[p.CardID] = p
	return nil
}

func testDataset() *dataset.Dataset {
	return &dataset.Dataset{
		ID:       "n5-vocab",
		Name:     "N5 單字",
		Category: dataset.CategoryVocabulary,
		Items: []dataset.Item{
			dataset.VocabItem{ID: "v1", Japanese: "水", Hiragana: "みず", SimpleChinese: "水"},
			dataset.VocabItem{ID: "v2", Japanese: "火", Hiragana: "ひ", SimpleChinese: "火"},
		},
	}
}

func testScreen(t *testing.T) *StudyScreen {
	t.Helper()
	engine, err := session.New(context.Background(), session.Config{
		Dataset:  testDataset(),
		Mode:     flashcard.ModeKanjiToChinese,
		Type:     session.TypeDue,
		Progress: newMemProgress(),
		Rng:      rand.New(rand.NewSource(1)),
		Now:      func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	env := &app.Env{Now: func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }}
	return New(env, "N5 單字", engine)
}

func press(s screen.Screen, key string) (screen.Screen, tea.Cmd) {
	return s.Update(tea.KeyPressMsg{Code: rune(key[0]), Text: key})
}

func TestRatingIgnoredBeforeFlip(t *testing.T) {
	s := testScreen(t)

	next, _ := press(s, "3")
	st := next.(*StudyScreen)
	if st.engine.Index() != 0 {
		t.Error("rating before the flip should not advance the session")
	}
}

func TestFlipThenRateAdvances(t *testing.T) {
	s := testScreen(t)

	next, _ := press(s, " ")
	st := next.(*StudyScreen)
	if !st.engine.Flipped() {
		t.Fatal("expected space to flip the card")
	}

	next, _ = press(st, "3")
	st = next.(*StudyScreen)
	if st.engine.Index() != 1 {
		t.Errorf("index = %d after rating, want 1", st.engine.Index())
	}
	if st.engine.Flipped() {
		t.Error("next card should start front side up")
	}
}

func TestLastRatingShowsSummary(t *testing.T) {
	s := testScreen(t)

	var cmd tea.Cmd
	var cur screen.Screen = s
	for i := 0; i < 2; i++ {
		cur, _ = press(cur, " ")
		cur, cmd = press(cur, "3")
	}

	if cmd == nil {
		t.Fatal("expected a command after the final rating")
	}
	if _, ok := cmd().(screen.ReplaceMsg); !ok {
		t.Error("expected the study screen to be replaced by the summary")
	}
}

func TestEmptySessionView(t *testing.T) {
	ds := testDataset()
	progress := newMemProgress()
	// Both cards reviewed moments ago, so nothing is due.
	for _, id := range ds.ItemIDs() {
		progress.records[id] = srs.CardProgress{
			CardID: id, DatasetID: ds.ID, EaseFactor: 2.5,
			Interval: 6, Repetitions: 2, NextReview: "2030-01-01",
		}
	}

	engine, err := session.New(context.Background(), session.Config{
		Dataset:  ds,
		Mode:     flashcard.ModeKanjiToChinese,
		Type:     session.TypeDue,
		Progress: progress,
		Now:      func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	if !engine.Empty() {
		t.Fatal("expected an empty session")
	}

	s := New(&app.Env{}, "N5 單字", engine)
	if view := s.View(80, 20); view == "" {
		t.Error("expected a non-empty nothing-to-study view")
	}
}
