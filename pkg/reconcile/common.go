// Package reconcile merges two independently produced taxonomic
// identifications for the same specimen into a single consensus call. The
// two inputs are partially filled rank hierarchies that may disagree at
// some rank; the algorithms here decide how deep each one resolves, where
// they last agree, and which one (or which truncated merge) to report,
// carrying both sources' diagnostic metadata through verbatim.
package reconcile

import (
	"strings"

	"github.com/geneflow/taxmerge/pkg/taxonomy"
)

// Agreement is the outcome of a common-rank search: the rank itself plus
// both sources' values associated with it by the walk rules.
type Agreement struct {
	Rank   taxonomy.Rank
	ValueA string
	ValueB string
}

// CommonRank finds the deepest rank at which two identifications agree,
// walking from Species toward Kingdom. The walk has three deliberate
// asymmetries that downstream logic depends on:
//
//   - Kingdom is skipped entirely when b's schema does not offer it; a
//     schema gap is not a mismatch.
//   - A disagreement at Phylum is reported at Phylum itself, with both
//     conflicting values, rather than generalized further.
//   - A disagreement at any deeper rank is reported one rank more general,
//     with both sources' raw values at that more general rank. Those
//     values are not compared again; they may themselves disagree.
//
// When the walk completes without hitting a disagreement, the returned
// agreement is the most specific rank where both values were present and
// equal (case-insensitive), with each source's raw value at that rank.
// The second return is false when no rank had both values present.
func CommonRank(a, b *taxonomy.Record) (Agreement, bool) {
	var (
		best  Agreement
		found bool
	)

	for i := len(taxonomy.Ranks) - 1; i >= 0; i-- {
		rank := taxonomy.Ranks[i]

		// Schema gap, not a mismatch.
		if rank == taxonomy.Kingdom && !b.Offers(taxonomy.Kingdom) {
			continue
		}
		if !a.Offers(rank) || !b.Offers(rank) {
			continue
		}

		va, okA := a.Value(rank)
		vb, okB := b.Value(rank)
		if !okA || !okB {
			continue
		}

		if strings.EqualFold(va, vb) {
			// The walk runs specific to general, so the first agreement
			// recorded is the deepest one.
			if !found {
				best = Agreement{Rank: rank, ValueA: va, ValueB: vb}
				found = true
			}
			continue
		}
		return disagreeAt(a, b, rank)
	}

	return best, found
}

// disagreeAt applies the mismatch rules: report Phylum conflicts at Phylum,
// otherwise step one rank more general and return that rank's raw values
// without re-checking whether they agree.
func disagreeAt(a, b *taxonomy.Record, rank taxonomy.Rank) (Agreement, bool) {
	if rank == taxonomy.Phylum {
		return Agreement{Rank: taxonomy.Phylum, ValueA: a.Raw(rank), ValueB: b.Raw(rank)}, true
	}
	prev, ok := taxonomy.Before(rank)
	if !ok || !a.Offers(prev) || !b.Offers(prev) {
		return Agreement{}, false
	}
	return Agreement{Rank: prev, ValueA: a.Raw(prev), ValueB: b.Raw(prev)}, true
}

// FirstAgreement walks from Kingdom toward Species and returns the first
// rank where both sources hold present, equal values (case-insensitive).
// It is the secondary search used only when CommonRank finds nothing.
func FirstAgreement(a, b *taxonomy.Record) (Agreement, bool) {
	for _, rank := range taxonomy.Ranks {
		if !a.Offers(rank) || !b.Offers(rank) {
			continue
		}
		va, okA := a.Value(rank)
		vb, okB := b.Value(rank)
		if !okA || !okB {
			continue
		}
		if strings.EqualFold(va, vb) {
			return Agreement{Rank: rank, ValueA: va, ValueB: vb}, true
		}
	}
	return Agreement{}, false
}
