package reconcile

import (
	"testing"

	"github.com/geneflow/taxmerge/pkg/taxonomy"
)

// recA and recB build records the way the driver does, with map keys
// defining which ranks the source's schema offers.
func recA(values map[taxonomy.Rank]string) *taxonomy.Record {
	return taxonomy.NewRecord(taxonomy.SourceA, values)
}

func recB(values map[taxonomy.Rank]string) *taxonomy.Record {
	return taxonomy.NewRecord(taxonomy.SourceB, values)
}

func fullA(kingdom, phylum, class, order, family, genus, species string) *taxonomy.Record {
	return recA(map[taxonomy.Rank]string{
		taxonomy.Kingdom: kingdom, taxonomy.Phylum: phylum, taxonomy.Class: class,
		taxonomy.Order: order, taxonomy.Family: family, taxonomy.Genus: genus,
		taxonomy.Species: species,
	})
}

// noKingdomB mirrors a curated-reference schema without a Kingdom column.
func noKingdomB(phylum, class, order, family, genus, species string) *taxonomy.Record {
	return recB(map[taxonomy.Rank]string{
		taxonomy.Phylum: phylum, taxonomy.Class: class, taxonomy.Order: order,
		taxonomy.Family: family, taxonomy.Genus: genus, taxonomy.Species: species,
	})
}

func TestCommonRankFullAgreement(t *testing.T) {
	a := fullA("Animalia", "Arthropoda", "Insecta", "Diptera", "Chironomidae", "Chironomus", "Chironomus riparius")
	b := noKingdomB("Arthropoda", "Insecta", "Diptera", "Chironomidae", "Chironomus", "Chironomus riparius")

	got, ok := CommonRank(a, b)
	if !ok {
		t.Fatal("Expected a common rank")
	}
	if got.Rank != taxonomy.Species {
		t.Errorf("Common rank = %s, want Species", got.Rank)
	}
}

func TestCommonRankCaseInsensitive(t *testing.T) {
	a := fullA("Animalia", "ARTHROPODA", "insecta", "Diptera", "", "", "")
	b := noKingdomB("arthropoda", "Insecta", "DIPTERA", "", "", "")

	got, ok := CommonRank(a, b)
	if !ok || got.Rank != taxonomy.Order {
		t.Fatalf("Common rank = %v/%v, want Order", got.Rank, ok)
	}
}

// A disagreement below Phylum is reported one rank more general, with that
// rank's raw values and no further comparison.
func TestCommonRankGeneralizesByOne(t *testing.T) {
	a := fullA("Animalia", "Arthropoda", "Insecta", "Diptera", "", "", "")
	b := noKingdomB("Arthropoda", "Insecta", "Coleoptera", "Carabidae", "", "")

	got, ok := CommonRank(a, b)
	if !ok {
		t.Fatal("Expected a result")
	}
	if got.Rank != taxonomy.Class {
		t.Errorf("Rank = %s, want Class (one more general than the Order conflict)", got.Rank)
	}
	if got.ValueA != "Insecta" || got.ValueB != "Insecta" {
		t.Errorf("Values = %q/%q, want the raw Class values", got.ValueA, got.ValueB)
	}
}

// The generalize-by-one step returns the more general rank's values even
// when they disagree too; it never re-checks.
func TestCommonRankGeneralizeDoesNotRecheck(t *testing.T) {
	a := fullA("Animalia", "Arthropoda", "Insecta", "Diptera", "Culicidae", "", "")
	b := noKingdomB("Arthropoda", "Collembola", "Coleoptera", "Carabidae", "", "")

	// The walk hits the Family conflict first (Culicidae vs Carabidae,
	// both present), generalizes to Order, and returns Diptera vs
	// Coleoptera untouched.
	got, ok := CommonRank(a, b)
	if !ok {
		t.Fatal("Expected a result")
	}
	if got.Rank != taxonomy.Order {
		t.Errorf("Rank = %s, want Order", got.Rank)
	}
	if got.ValueA != "Diptera" || got.ValueB != "Coleoptera" {
		t.Errorf("Values = %q/%q, want the conflicting Order values verbatim", got.ValueA, got.ValueB)
	}
}

// Disagreement at Phylum is reported at Phylum itself, not generalized to
// Kingdom, even when Kingdom also differs.
func TestCommonRankPhylumException(t *testing.T) {
	a := fullA("Animalia", "Arthropoda", "", "", "", "", "")
	b := recB(map[taxonomy.Rank]string{
		taxonomy.Kingdom: "Plantae",
		taxonomy.Phylum:  "Chordata",
	})

	got, ok := CommonRank(a, b)
	if !ok {
		t.Fatal("Expected a result")
	}
	if got.Rank != taxonomy.Phylum {
		t.Errorf("Rank = %s, want Phylum", got.Rank)
	}
	if got.ValueA != "Arthropoda" || got.ValueB != "Chordata" {
		t.Errorf("Values = %q/%q, want the conflicting Phylum values", got.ValueA, got.ValueB)
	}
}

// A Kingdom column missing from b's schema is skipped as a schema gap,
// not treated as a mismatch.
func TestCommonRankSkipsMissingKingdomSchema(t *testing.T) {
	a := fullA("Animalia", "Arthropoda", "", "", "", "", "")
	b := noKingdomB("Arthropoda", "", "", "", "", "")

	got, ok := CommonRank(a, b)
	if !ok || got.Rank != taxonomy.Phylum {
		t.Fatalf("Common rank = %v/%v, want Phylum", got.Rank, ok)
	}
}

func TestCommonRankNothingShared(t *testing.T) {
	a := fullA("Animalia", NoMatchMarker, "", "", "", "", "")
	b := noKingdomB("", "", "", "", "", "")

	if _, ok := CommonRank(a, b); ok {
		t.Error("Expected no common rank when no rank has both values present")
	}
}

func TestFirstAgreement(t *testing.T) {
	// Agreement at Phylum and Species but a conflict between: the
	// general-to-specific fallback returns the first, most general one.
	a := fullA("Animalia", "Arthropoda", "Insecta", "", "", "", "")
	b := recB(map[taxonomy.Rank]string{
		taxonomy.Kingdom: "Animalia",
		taxonomy.Phylum:  "Arthropoda",
		taxonomy.Class:   "Entognatha",
	})

	got, ok := FirstAgreement(a, b)
	if !ok {
		t.Fatal("Expected an agreement")
	}
	if got.Rank != taxonomy.Kingdom {
		t.Errorf("Rank = %s, want Kingdom (first agreement walking general to specific)", got.Rank)
	}
}

// NoMatchMarker re-exported for test readability.
const NoMatchMarker = taxonomy.NoMatch
