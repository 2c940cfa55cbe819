package taxonomy

// NoMatch is the reserved marker some pipelines write into rank columns
// when a search produced no hit. It is equivalent to an empty cell for
// every presence check in this module.
const NoMatch = "no-match"

// Source identifies which of the two identification pipelines a record
// came from.
type Source string

// The two reconciled sources. SourceA is the sequence-similarity search,
// SourceB the curated reference database.
const (
	SourceA Source = "A"
	SourceB Source = "B"
)

// String returns the source tag.
func (s Source) String() string {
	return string(s)
}

// Record is a normalized view over one source's taxonomic assignment for a
// single specimen. It distinguishes two kinds of absence: a rank the
// source's schema never offers (no column at all) and a rank that is
// offered but holds no usable value (empty, or the NoMatch marker).
type Record struct {
	source Source
	values map[Rank]string
}

// NewRecord builds a record from a source's raw rank values. The map keys
// define which ranks the source's schema offers; values are kept verbatim,
// including empty strings and NoMatch markers. The map is copied.
func NewRecord(source Source, values map[Rank]string) *Record {
	copied := make(map[Rank]string, len(values))
	for r, v := range values {
		copied[r] = v
	}
	return &Record{source: source, values: copied}
}

// Source returns which pipeline produced this record.
func (rec *Record) Source() Source {
	return rec.source
}

// Offers reports whether the source's schema has a column for r at all,
// regardless of whether it holds a value.
func (rec *Record) Offers(r Rank) bool {
	_, ok := rec.values[r]
	return ok
}

// Raw returns the stored value for r verbatim, or "" when the rank is not
// offered. NoMatch markers and empty cells come back as stored.
func (rec *Record) Raw(r Rank) string {
	return rec.values[r]
}

// Value returns the value at r and whether it is present. A value is
// present iff the rank is offered and the cell is non-empty and not the
// NoMatch marker.
func (rec *Record) Value(r Rank) (string, bool) {
	v, ok := rec.values[r]
	if !ok || v == "" || v == NoMatch {
		return "", false
	}
	return v, true
}

// Present reports whether r holds a usable value.
func (rec *Record) Present(r Rank) bool {
	_, ok := rec.Value(r)
	return ok
}

// AbsentFrom reports whether every rank in ranks is value-absent. Ranks
// the schema does not offer count as absent. Callers pass BelowKingdom to
// test whether an identification is wholly uninformative: Kingdom is
// deliberately excluded there because source B's schema may not offer it.
func (rec *Record) AbsentFrom(ranks []Rank) bool {
	for _, r := range ranks {
		if rec.Present(r) {
			return false
		}
	}
	return true
}
