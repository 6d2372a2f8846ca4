package srs

import "time"

// DateFormat is the calendar-date layout used for review dates.
// Dates in this format compare correctly as strings, which is what
// IsDue relies on; do not switch to a timestamp comparison.
const DateFormat = "2006-01-02"

// InitialEase is the ease factor assigned to a card on first review.
const InitialEase = 2.5

// MinEase is the floor the ease factor is clamped to after every update.
const MinEase = 1.3

// MasteredRepetitions is the streak length at which a card counts as mastered.
const MasteredRepetitions = 3

// CardProgress is the scheduling state of a single card.
type CardProgress struct {
	CardID      string  `json:"cardId" db:"card_id"`
	DatasetID   string  `json:"datasetId" db:"dataset_id"`
	EaseFactor  float64 `json:"easeFactor" db:"ease_factor"`
	Interval    int     `json:"interval" db:"interval_days"`
	Repetitions int     `json:"repetitions" db:"repetitions"`
	NextReview  string  `json:"nextReview" db:"next_review"`
	LastRating  Rating  `json:"lastRating" db:"last_rating"`
}

// Mastered reports whether the card has a long enough streak of
// successful reviews to count as learned for good.
func (p *CardProgress) Mastered() bool {
	return p.Repetitions >= MasteredRepetitions
}

// FormatDate renders t as a calendar date in the local zone.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}
