package taxonomy

// Depth returns how deep an identification resolves: the 1-based position
// (from Kingdom = 1) of the most specific rank holding a present value, or
// 0 when no rank does. A record with a present Species value has depth 7
// regardless of gaps at more general ranks. Depth orders two records by
// specificity; it says nothing about whether either is correct.
func Depth(rec *Record) int {
	for i := len(Ranks) - 1; i >= 0; i-- {
		if rec.Present(Ranks[i]) {
			return i + 1
		}
	}
	return 0
}
