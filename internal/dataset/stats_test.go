package dataset

import (
	"testing"
	"time"

	"github.com/ayato/kioku/internal/srs"
)

func TestComputeStats(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	d := &Dataset{
		ID:       "ds",
		Category: CategoryVocabulary,
		Items: []Item{
			VocabItem{ID: "a"}, // mastered, not due
			VocabItem{ID: "b"}, // learned, due
			VocabItem{ID: "c"}, // new
			VocabItem{ID: "d"}, // new
		},
	}
	progress := map[string]srs.CardProgress{
		"a": {CardID: "a", Repetitions: 4, NextReview: "2025-07-01"},
		"b": {CardID: "b", Repetitions: 1, NextReview: "2025-06-10"},
	}

	got := ComputeStats(d, progress, today)

	if got.TotalCards != 4 {
		t.Errorf("TotalCards = %d, want 4", got.TotalCards)
	}
	if got.LearnedCards != 2 {
		t.Errorf("LearnedCards = %d, want 2", got.LearnedCards)
	}
	if got.DueCards != 3 {
		t.Errorf("DueCards = %d, want 3 (new cards count as due)", got.DueCards)
	}
	if got.MasteredCards != 1 {
		t.Errorf("MasteredCards = %d, want 1", got.MasteredCards)
	}
	if got.MasteryPercent != 25 {
		t.Errorf("MasteryPercent = %d, want 25", got.MasteryPercent)
	}
}

func TestComputeStatsEmptyDataset(t *testing.T) {
	got := ComputeStats(&Dataset{}, nil, time.Now())
	if got.MasteryPercent != 0 || got.TotalCards != 0 {
		t.Errorf("empty dataset stats = %+v", got)
	}
}
