package srs

import (
	"math"
	"testing"
	"time"
)

var today = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScheduleFirstGood(t *testing.T) {
	got := Schedule(nil, "card-1", "ds-1", RatingGood, today)

	if got.CardID != "card-1" || got.DatasetID != "ds-1" {
		t.Errorf("identifiers = %q/%q, want card-1/ds-1", got.CardID, got.DatasetID)
	}
	if got.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", got.Repetitions)
	}
	if got.Interval != 1 {
		t.Errorf("Interval = %d, want 1", got.Interval)
	}
	if got.NextReview != "2025-06-16" {
		t.Errorf("NextReview = %q, want 2025-06-16", got.NextReview)
	}
	if got.LastRating != RatingGood {
		t.Errorf("LastRating = %q, want good", got.LastRating)
	}
	// EF = 2.5 + (0.1 - 0*(0.08 + 0*0.02)) = 2.6
	if !closeTo(got.EaseFactor, 2.6) {
		t.Errorf("EaseFactor = %v, want 2.6", got.EaseFactor)
	}
}

func TestScheduleAgainResets(t *testing.T) {
	current := &CardProgress{
		CardID:      "card-1",
		DatasetID:   "ds-1",
		EaseFactor:  2.5,
		Interval:    6,
		Repetitions: 2,
		NextReview:  "2025-06-15",
		LastRating:  RatingGood,
	}

	got := Schedule(current, "card-1", "ds-1", RatingAgain, today)

	if got.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0", got.Repetitions)
	}
	if got.Interval != 1 {
		t.Errorf("Interval = %d, want 1", got.Interval)
	}
	if got.NextReview != "2025-06-16" {
		t.Errorf("NextReview = %q, want 2025-06-16", got.NextReview)
	}
	// EF = 2.5 + (0.1 - 4*(0.08 + 4*0.02)) = 2.5 - 0.54 = 1.96
	if !closeTo(got.EaseFactor, 1.96) {
		t.Errorf("EaseFactor = %v, want 1.96", got.EaseFactor)
	}
}

func TestScheduleSecondGoodUsesFixedInterval(t *testing.T) {
	current := &CardProgress{
		CardID: "card-1", DatasetID: "ds-1",
		EaseFactor: 2.6, Interval: 1, Repetitions: 1,
		NextReview: "2025-06-15", LastRating: RatingGood,
	}

	got := Schedule(current, "card-1", "ds-1", RatingGood, today)

	if got.Repetitions != 2 {
		t.Errorf("Repetitions = %d, want 2", got.Repetitions)
	}
	if got.Interval != 6 {
		t.Errorf("Interval = %d, want 6", got.Interval)
	}
	if got.NextReview != "2025-06-21" {
		t.Errorf("NextReview = %q, want 2025-06-21", got.NextReview)
	}
}

func TestScheduleThirdGoodGrowsByEase(t *testing.T) {
	current := &CardProgress{
		CardID: "card-1", DatasetID: "ds-1",
		EaseFactor: 2.5, Interval: 6, Repetitions: 2,
		NextReview: "2025-06-15", LastRating: RatingGood,
	}

	got := Schedule(current, "card-1", "ds-1", RatingGood, today)

	if got.Repetitions != 3 {
		t.Errorf("Repetitions = %d, want 3", got.Repetitions)
	}
	// round(6 * 2.5) = 15
	if got.Interval != 15 {
		t.Errorf("Interval = %d, want 15", got.Interval)
	}
	if got.NextReview != "2025-06-30" {
		t.Errorf("NextReview = %q, want 2025-06-30", got.NextReview)
	}
}

// TestScheduleGoodSequence walks a fresh card through three consecutive
// good ratings and verifies the exact interval and ease recurrence.
func TestScheduleGoodSequence(t *testing.T) {
	var p *CardProgress
	var intervals []int
	for i := 0; i < 3; i++ {
		next := Schedule(p, "card-1", "ds-1", RatingGood, today)
		intervals = append(intervals, next.Interval)
		p = &next
	}

	// EF after the 2nd good is 2.7, so the 3rd interval is round(6*2.7) = 16.
	want := []int{1, 6, 16}
	for i := range want {
		if intervals[i] != want[i] {
			t.Errorf("interval[%d] = %d, want %d", i, intervals[i], want[i])
		}
	}
	if p.Repetitions != 3 {
		t.Errorf("Repetitions = %d, want 3", p.Repetitions)
	}
}

func TestScheduleHardLowersEase(t *testing.T) {
	got := Schedule(nil, "card-1", "ds-1", RatingHard, today)

	if got.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", got.Repetitions)
	}
	if got.Interval != 1 {
		t.Errorf("Interval = %d, want 1", got.Interval)
	}
	// EF = 2.5 + (0.1 - 2*(0.08 + 2*0.02)) = 2.5 - 0.14 = 2.36
	if !closeTo(got.EaseFactor, 2.36) {
		t.Errorf("EaseFactor = %v, want 2.36", got.EaseFactor)
	}
}

// TestScheduleEaseFloor hammers a card with failures and checks the ease
// factor never drops below the 1.3 floor.
func TestScheduleEaseFloor(t *testing.T) {
	var p *CardProgress
	for i := 0; i < 10; i++ {
		next := Schedule(p, "card-1", "ds-1", RatingAgain, today)
		if next.EaseFactor < MinEase {
			t.Fatalf("after %d failures EaseFactor = %v, below floor %v", i+1, next.EaseFactor, MinEase)
		}
		p = &next
	}
	if !closeTo(p.EaseFactor, MinEase) {
		t.Errorf("EaseFactor = %v, want clamped to %v", p.EaseFactor, MinEase)
	}
}

// TestScheduleEaseFloorMixed checks the floor across arbitrary rating mixes.
func TestScheduleEaseFloorMixed(t *testing.T) {
	seqs := [][]Rating{
		{RatingAgain, RatingAgain, RatingHard, RatingAgain},
		{RatingHard, RatingHard, RatingHard, RatingHard, RatingHard},
		{RatingGood, RatingAgain, RatingAgain, RatingAgain, RatingHard},
	}
	for _, seq := range seqs {
		var p *CardProgress
		for _, r := range seq {
			next := Schedule(p, "c", "d", r, today)
			if next.EaseFactor < MinEase {
				t.Fatalf("sequence %v: EaseFactor = %v below %v", seq, next.EaseFactor, MinEase)
			}
			p = &next
		}
	}
}

func TestIsDue(t *testing.T) {
	tests := []struct {
		name string
		p    *CardProgress
		want bool
	}{
		{"never reviewed", nil, true},
		{"due today", &CardProgress{NextReview: "2025-06-15"}, true},
		{"past due", &CardProgress{NextReview: "2025-06-01"}, true},
		{"future", &CardProgress{NextReview: "2025-06-16"}, false},
		{"far future", &CardProgress{NextReview: "2026-01-01"}, false},
	}
	for _, tc := range tests {
		if got := IsDue(tc.p, today); got != tc.want {
			t.Errorf("%s: IsDue = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRatingQuality(t *testing.T) {
	if RatingAgain.Quality() != 1 || RatingHard.Quality() != 3 || RatingGood.Quality() != 5 {
		t.Error("quality mapping must be again=1, hard=3, good=5")
	}
	if RatingAgain.Pass() {
		t.Error("again must not count as a pass")
	}
	if !RatingHard.Pass() || !RatingGood.Pass() {
		t.Error("hard and good must count as passes")
	}
	if Rating("easy").Valid() {
		t.Error("unknown rating must not validate")
	}
}
