package dataset

import (
	"math"
	"time"

	"github.com/ayato/kioku/internal/srs"
)

// Stats summarizes study progress over one dataset.
type Stats struct {
	TotalCards     int
	LearnedCards   int // reviewed at least once
	DueCards       int // due today (new cards count as due)
	MasteredCards  int // repetition streak at the mastery threshold
	MasteryPercent int // 0-100
}

// ComputeStats derives Stats for a dataset from a progress snapshot.
func ComputeStats(d *Dataset, progress map[string]srs.CardProgress, today time.Time) Stats {
	s := Stats{TotalCards: len(d.Items)}

	for _, it := range d.Items {
		p, ok := progress[it.ItemID()]
		if ok {
			s.LearnedCards++
			if p.Mastered() {
				s.MasteredCards++
			}
			if srs.IsDue(&p, today) {
				s.DueCards++
			}
		} else {
			s.DueCards++
		}
	}

	if s.TotalCards > 0 {
		s.MasteryPercent = int(math.Round(float64(s.MasteredCards) / float64(s.TotalCards) * 100))
	}
	return s
}
