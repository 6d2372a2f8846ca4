package plan

import "time"

// StudyPlan assigns a dataset's cards to ordered day-buckets.
// At most one plan exists per dataset at a time.
type StudyPlan struct {
	DatasetID string     `json:"datasetId"`
	TotalDays int        `json:"totalDays"`
	CardIDs   [][]string `json:"cardIds"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Day returns the card IDs for day (1-based), or nil if out of range.
func (p *StudyPlan) Day(day int) []string {
	if day < 1 || day > len(p.CardIDs) {
		return nil
	}
	return p.CardIDs[day-1]
}

// TotalCards returns the number of cards across all day-buckets.
func (p *StudyPlan) TotalCards() int {
	n := 0
	for _, bucket := range p.CardIDs {
		n += len(bucket)
	}
	return n
}
