// Package taxonomy provides the fixed Linnaean rank hierarchy and a
// normalized view over a single source's taxonomic assignment for one
// specimen. Every reconciliation algorithm in this module depends on the
// rank ordering defined here; it never changes at runtime.
package taxonomy

// Rank is one level of the seven-tier taxonomic hierarchy.
type Rank string

// The seven ranks, most general to most specific.
const (
	Kingdom Rank = "Kingdom"
	Phylum  Rank = "Phylum"
	Class   Rank = "Class"
	Order   Rank = "Order"
	Family  Rank = "Family"
	Genus   Rank = "Genus"
	Species Rank = "Species"
)

// String returns the rank's column name.
func (r Rank) String() string {
	return string(r)
}

// Ranks lists all seven ranks in order, most general first. Callers must
// treat this slice as read-only.
var Ranks = []Rank{Kingdom, Phylum, Class, Order, Family, Genus, Species}

// BelowKingdom lists the ranks below Kingdom, most general first. Source
// schemas that omit Kingdom entirely still offer these.
var BelowKingdom = []Rank{Phylum, Class, Order, Family, Genus, Species}

// rankIndex maps each rank to its position in Ranks.
var rankIndex = func() map[Rank]int {
	m := make(map[Rank]int, len(Ranks))
	for i, r := range Ranks {
		m[r] = i
	}
	return m
}()

// IndexOf returns the rank's position in the hierarchy, 0 for the most
// general rank. It returns -1 for an unknown rank name.
func IndexOf(r Rank) int {
	i, ok := rankIndex[r]
	if !ok {
		return -1
	}
	return i
}

// IsRank reports whether name is one of the seven rank column names.
func IsRank(name string) bool {
	_, ok := rankIndex[Rank(name)]
	return ok
}

// MoreSpecificThan reports whether r1 is deeper in the hierarchy than r2.
func MoreSpecificThan(r1, r2 Rank) bool {
	i1, ok1 := rankIndex[r1]
	i2, ok2 := rankIndex[r2]
	return ok1 && ok2 && i1 > i2
}

// Before returns the next more general rank, or false when r is already
// the most general rank (or unknown).
func Before(r Rank) (Rank, bool) {
	i, ok := rankIndex[r]
	if !ok || i == 0 {
		return "", false
	}
	return Ranks[i-1], true
}
