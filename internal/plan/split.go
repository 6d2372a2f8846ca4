// Package plan builds and manages multi-day study plans: a dataset's
// cards divided into ordered day-buckets for first-exposure learning.
package plan

// Split divides cardIDs into totalDays contiguous buckets, preserving
// input order. When the cards don't divide evenly the earlier buckets
// take one extra card each: 10 cards over 3 days gives 4/3/3.
//
// totalDays greater than the card count yields empty trailing buckets;
// callers are expected to offer only day counts that make sense for the
// dataset (see Service.Create).
func Split(cardIDs []string, totalDays int) [][]string {
	buckets := make([][]string, 0, totalDays)
	baseSize := len(cardIDs) / totalDays
	remainder := len(cardIDs) % totalDays

	start := 0
	for i := 0; i < totalDays; i++ {
		size := baseSize
		if i < remainder {
			size++
		}
		buckets = append(buckets, cardIDs[start:start+size])
		start += size
	}
	return buckets
}
