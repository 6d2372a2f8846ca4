// Package srs implements the SM-2 review scheduler used by study sessions.
//
// The variant here is the Anki-style three-button adaptation: ratings map
// to qualities 1/3/5 instead of the original 0-5 scale, and a failing
// rating resets the repetition streak but still adjusts the ease factor.
package srs

import (
	"math"
	"time"
)

// firstInterval and secondInterval are the fixed intervals (in days) for
// the first two successful reviews; later reviews grow by the ease factor.
const (
	firstInterval  = 1
	secondInterval = 6
)

// Schedule computes the next review state for a card given a rating.
// current may be nil for a card that has never been reviewed. today is
// injected so callers and tests control the clock; Schedule itself is a
// pure function of its arguments.
func Schedule(current *CardProgress, cardID, datasetID string, rating Rating, today time.Time) CardProgress {
	q := rating.Quality()

	ease := InitialEase
	interval := 0
	repetitions := 0
	if current != nil {
		ease = current.EaseFactor
		interval = current.Interval
		repetitions = current.Repetitions
	}

	if q < 3 {
		// Failed recall: restart the streak, see the card again tomorrow.
		repetitions = 0
		interval = firstInterval
	} else {
		switch repetitions {
		case 0:
			interval = firstInterval
		case 1:
			interval = secondInterval
		default:
			interval = int(math.Round(float64(interval) * ease))
		}
		repetitions++
	}

	// Ease update applies on every rating, including failures.
	ease += 0.1 - float64(5-q)*(0.08+float64(5-q)*0.02)
	if ease < MinEase {
		ease = MinEase
	}

	return CardProgress{
		CardID:      cardID,
		DatasetID:   datasetID,
		EaseFactor:  ease,
		Interval:    interval,
		Repetitions: repetitions,
		NextReview:  FormatDate(today.AddDate(0, 0, interval)),
		LastRating:  rating,
	}
}

// IsDue reports whether a card should be reviewed today. A card with no
// progress record is always due. Otherwise the stored review date is
// compared with today's date as strings; ISO calendar dates order the
// same way lexicographically and by calendar.
func IsDue(p *CardProgress, today time.Time) bool {
	if p == nil {
		return true
	}
	return p.NextReview <= FormatDate(today)
}
