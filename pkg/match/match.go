// Package match pairs sequences from two FASTA files by exact string
// equality, optionally after truncating the second file's sequences to a
// fixed prefix length. Amplicons sequenced with different primer sets
// share their leading bases, so an exact hash join over the truncated
// prefix recovers cross-run matches without any alignment.
package match

import (
	"context"

	"github.com/geneflow/taxmerge/internal/seqio"
	"github.com/geneflow/taxmerge/pkg/logging"
)

// Pair links one record of file A to one record of file B whose
// (possibly truncated) sequences are identical.
type Pair struct {
	AID string `json:"a_id"`
	BID string `json:"b_id"`
}

// Matcher joins two sequence files.
type Matcher struct {
	// TruncateB trims B's sequences to this many leading bases before
	// comparing. Zero compares full sequences.
	TruncateB int
}

// Files matches every record of pathA against pathB. Identical sequences
// within a file collapse to the last record read, matching the
// dictionary semantics of the pipeline this replaces; multiple B records
// sharing one truncated prefix all pair with the same A record.
func (m *Matcher) Files(ctx context.Context, pathA, pathB string) ([]Pair, error) {
	logger := logging.FromContext(ctx)

	bySeq := make(map[string]string)
	countA := 0
	err := seqio.ScanFile(pathA, func(rec seqio.Record) error {
		bySeq[rec.Seq] = rec.ID
		countA++
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info().Str("file", pathA).Int("sequences", countA).Msg("Loaded sequences")

	var pairs []Pair
	countB := 0
	err = seqio.ScanFile(pathB, func(rec seqio.Record) error {
		countB++
		seq := rec.Seq
		if m.TruncateB > 0 && len(seq) > m.TruncateB {
			seq = seq[:m.TruncateB]
		}
		if aID, ok := bySeq[seq]; ok {
			pairs = append(pairs, Pair{AID: aID, BID: rec.ID})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("file", pathB).
		Int("sequences", countB).
		Int("matches", len(pairs)).
		Msg("Matched sequences")
	return pairs, nil
}
