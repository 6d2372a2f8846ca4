package srs

// Rating is the learner's self-assessment after seeing a card's back.
type Rating string

const (
	// RatingAgain means the card was not recalled. It resets the
	// repetition streak and requeues the card within the session.
	RatingAgain Rating = "again"

	// RatingHard means the card was recalled with effort.
	RatingHard Rating = "hard"

	// RatingGood means the card was recalled cleanly.
	RatingGood Rating = "good"
)

// Quality maps a rating onto the SM-2 quality scale. The six-point scale
// is collapsed to three buckets: fail (1), effortful pass (3), clean pass (5).
func (r Rating) Quality() int {
	switch r {
	case RatingAgain:
		return 1
	case RatingHard:
		return 3
	default:
		return 5
	}
}

// Pass reports whether the rating counts as a successful recall.
func (r Rating) Pass() bool {
	return r.Quality() >= 3
}

// Valid reports whether r is one of the three known ratings.
func (r Rating) Valid() bool {
	switch r {
	case RatingAgain, RatingHard, RatingGood:
		return true
	}
	return false
}
