// Package convert prepares curated reference exports for downstream
// search tools: it rewrites `ProcessID|BIN` FASTA headers to bare process
// IDs, deduplicates colliding IDs, and joins the resulting ID-to-BIN
// mapping with a BIN taxonomy table into an accession-keyed taxonomy
// table. Building or validating the search database itself is out of
// scope; the cleaned FASTA is handed to external tooling as-is.
package convert

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/geneflow/taxmerge/internal/seqio"
	"github.com/geneflow/taxmerge/pkg/errors"
	"github.com/geneflow/taxmerge/pkg/logging"
)

// dedupWarnLimit caps per-duplicate log noise on large exports.
const dedupWarnLimit = 10

// Dedup tracks process-ID collisions across one cleaning run. It replaces
// the global counters of the pipeline this tool supersedes: callers create
// one per run and pass it in explicitly.
type Dedup struct {
	seen       map[string]int
	Duplicates int
}

// NewDedup creates an empty duplicate tracker.
func NewDedup() *Dedup {
	return &Dedup{seen: make(map[string]int)}
}

// Uniquify returns id unchanged on first sight and id_N on the Nth
// collision, reporting whether a rename happened.
func (d *Dedup) Uniquify(id string) (string, bool) {
	n, ok := d.seen[id]
	if !ok {
		d.seen[id] = 0
		return id, false
	}
	d.seen[id] = n + 1
	d.Duplicates++
	return fmt.Sprintf("%s_%d", id, n+1), true
}

// Mapping records, in input order, which BIN each cleaned process ID
// belongs to. Headers without a BIN segment map the ID to itself.
type Mapping struct {
	IDs  []string
	BINs map[string]string
}

// BIN returns the BIN for a cleaned process ID.
func (m *Mapping) BIN(id string) string {
	return m.BINs[id]
}

// CleanHeaders rewrites inPath's headers to bare, deduplicated process
// IDs and writes the result to outPath. The returned mapping links every
// cleaned ID to its BIN.
func CleanHeaders(ctx context.Context, inPath, outPath string, dedup *Dedup) (*Mapping, error) {
	logger := logging.FromContext(ctx)

	out, err := os.Create(outPath)
	if err != nil {
		return nil, errors.NewIOError("create", outPath, err)
	}
	w := bufio.NewWriter(out)

	mapping := &Mapping{BINs: make(map[string]string)}
	err = seqio.ScanFile(inPath, func(rec seqio.Record) error {
		id, bin := splitHeader(rec.Header)
		id, renamed := dedup.Uniquify(id)
		if renamed && dedup.Duplicates <= dedupWarnLimit {
			logger.Warn().Str("process_id", id).Msg("Duplicate process ID renamed")
		} else if renamed && dedup.Duplicates == dedupWarnLimit+1 {
			logger.Warn().Msg("Further duplicate warnings suppressed")
		}

		mapping.IDs = append(mapping.IDs, id)
		mapping.BINs[id] = bin

		if _, err := fmt.Fprintf(w, ">%s\n%s\n", id, rec.Seq); err != nil {
			return errors.NewIOError("write", outPath, err)
		}
		return nil
	})
	if err != nil {
		out.Close()
		return nil, err
	}
	if err := w.Flush(); err != nil {
		out.Close()
		return nil, errors.NewIOError("write", outPath, err)
	}
	if err := out.Close(); err != nil {
		return nil, errors.NewIOError("close", outPath, err)
	}

	if dedup.Duplicates > 0 {
		logger.Warn().Int("duplicates", dedup.Duplicates).Msg("Renamed duplicate process IDs")
	}
	logger.Info().Int("sequences", len(mapping.IDs)).Str("file", outPath).Msg("Cleaned FASTA headers")
	return mapping, nil
}

// splitHeader separates a `ProcessID|BIN` header. A header without the
// separator is both ID and BIN, so self-mapped records still join against
// taxonomy tables keyed by process ID.
func splitHeader(header string) (id, bin string) {
	if i := strings.Index(header, "|"); i >= 0 {
		return header[:i], header[i+1:]
	}
	return header, header
}
