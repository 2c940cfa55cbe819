package reconcile

import (
	"github.com/geneflow/taxmerge/pkg/taxonomy"
)

// Input is one source's contribution to a consensus call: the normalized
// taxonomic record plus that source's diagnostic metadata (similarity
// scores, status flags, supporting-record counts and the like). The
// diagnostics are never interpreted here; they ride along verbatim into
// the output no matter which source's taxonomy wins.
type Input struct {
	Record      *taxonomy.Record
	Diagnostics map[string]string
}

// Consensus is the single merged taxonomic call for one specimen. Ranks
// holds a raw value for every rank the winning side offered (a rank with
// no entry is absent from the output); Source tags which identification
// the taxonomy came from. Both sources' diagnostics are always carried,
// the non-contributing side's with empty values when it had no data.
type Consensus struct {
	Key         string
	Source      taxonomy.Source
	Ranks       map[taxonomy.Rank]string
	DiagnosticA map[string]string
	DiagnosticB map[string]string
}

// Rank returns the consensus value at r, or "" when absent.
func (c *Consensus) Rank(r taxonomy.Rank) string {
	return c.Ranks[r]
}

// Build reconciles two identifications of the same specimen into one
// consensus record. It is a pure function of its inputs; absence is data,
// not an error.
//
// The decision sequence:
//
//  1. A source that is value-absent at every rank below Kingdom is wholly
//     uninformative; if exactly one side is, the other wins outright and
//     the losing side's diagnostics are blanked.
//  2. Otherwise the deeper-resolving side wins, ties going to B, with B's
//     missing Kingdom backfilled from A when A has one.
//  3. When both sides resolve equally deep but disagree below their common
//     rank, every rank more specific than the common rank is cleared: only
//     the agreed-upon, more general portion is trustworthy.
//
// When both sides are wholly uninformative the tie rule still applies and
// the result is tagged B with all ranks empty.
func Build(a, b Input) Consensus {
	missingA := a.Record.AbsentFrom(taxonomy.BelowKingdom)
	missingB := b.Record.AbsentFrom(taxonomy.BelowKingdom)

	switch {
	case missingB && !missingA:
		return Consensus{
			Source:      taxonomy.SourceA,
			Ranks:       copyOffered(a.Record, taxonomy.Ranks),
			DiagnosticA: copyDiagnostics(a.Diagnostics),
			DiagnosticB: blankDiagnostics(b.Diagnostics),
		}
	case missingA && !missingB:
		return Consensus{
			Source:      taxonomy.SourceB,
			Ranks:       copyWithKingdomBackfill(a.Record, b.Record),
			DiagnosticA: blankDiagnostics(a.Diagnostics),
			DiagnosticB: copyDiagnostics(b.Diagnostics),
		}
	}

	common, found := CommonRank(a.Record, b.Record)
	if !found {
		common, found = FirstAgreement(a.Record, b.Record)
	}

	depthA := taxonomy.Depth(a.Record)
	depthB := taxonomy.Depth(b.Record)

	c := Consensus{
		DiagnosticA: copyDiagnostics(a.Diagnostics),
		DiagnosticB: copyDiagnostics(b.Diagnostics),
	}
	if depthA > depthB {
		c.Source = taxonomy.SourceA
		c.Ranks = copyOffered(a.Record, taxonomy.Ranks)
	} else {
		c.Source = taxonomy.SourceB
		c.Ranks = copyWithKingdomBackfill(a.Record, b.Record)
	}

	// Equal depth but genuinely different calls below the common rank:
	// keep only the portion both sources vouch for.
	if found && depthA == depthB && common.ValueA != common.ValueB {
		truncateBelow(c.Ranks, common.Rank)
	}

	return c
}

// copyOffered copies the raw value of every offered rank, markers and
// empty cells included.
func copyOffered(rec *taxonomy.Record, ranks []taxonomy.Rank) map[taxonomy.Rank]string {
	out := make(map[taxonomy.Rank]string, len(ranks))
	for _, r := range ranks {
		if rec.Offers(r) {
			out[r] = rec.Raw(r)
		}
	}
	return out
}

// copyWithKingdomBackfill copies b's offered ranks below Kingdom and fills
// Kingdom from a when a has a present value and b does not. Source B's
// schema may lack Kingdom entirely; this is the only place one source's
// taxonomy is spliced into the other's.
func copyWithKingdomBackfill(a, b *taxonomy.Record) map[taxonomy.Rank]string {
	out := copyOffered(b, taxonomy.BelowKingdom)
	if b.Present(taxonomy.Kingdom) {
		out[taxonomy.Kingdom] = b.Raw(taxonomy.Kingdom)
	} else if v, ok := a.Value(taxonomy.Kingdom); ok {
		out[taxonomy.Kingdom] = v
	}
	return out
}

// truncateBelow removes every rank strictly more specific than keep.
func truncateBelow(ranks map[taxonomy.Rank]string, keep taxonomy.Rank) {
	for _, r := range taxonomy.Ranks {
		if taxonomy.MoreSpecificThan(r, keep) {
			delete(ranks, r)
		}
	}
}

func copyDiagnostics(diag map[string]string) map[string]string {
	out := make(map[string]string, len(diag))
	for k, v := range diag {
		out[k] = v
	}
	return out
}

// blankDiagnostics keeps the column set but empties every value.
func blankDiagnostics(diag map[string]string) map[string]string {
	out := make(map[string]string, len(diag))
	for k := range diag {
		out[k] = ""
	}
	return out
}
