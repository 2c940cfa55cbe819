// Package seqio provides the minimal FASTA scanning the sequence-matching
// and header-cleaning commands need: record IDs and concatenated,
// uppercased sequences. It is not a general-purpose FASTA parser and
// deliberately ignores everything beyond that contract.
package seqio

import (
	"bufio"
	"os"
	"strings"

	"github.com/geneflow/taxmerge/pkg/errors"
)

// Record is one FASTA entry. ID is the first whitespace-delimited token
// of the header; Header is the full header line without the leading '>'.
type Record struct {
	ID     string
	Header string
	Seq    string
}

// maxLineSize bounds a single FASTA line; some exports put a whole
// mitochondrial sequence on one line.
const maxLineSize = 16 * 1024 * 1024

// ScanFile streams records from a FASTA file, invoking fn once per record
// with the sequence uppercased. Scanning stops at the first error fn
// returns.
func ScanFile(path string, fn func(Record) error) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &errors.IOError{Op: "open", Path: path, Err: errors.ErrNotFound}
		}
		return errors.NewIOError("open", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var (
		header string
		seq    strings.Builder
		open   bool
	)
	flush := func() error {
		if !open {
			return nil
		}
		rec := Record{
			ID:     firstField(header),
			Header: header,
			Seq:    strings.ToUpper(seq.String()),
		}
		seq.Reset()
		return fn(rec)
	}

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(text, ">") {
			if err := flush(); err != nil {
				return err
			}
			header = strings.TrimSpace(text[1:])
			open = true
			continue
		}
		if !open {
			if strings.TrimSpace(text) == "" {
				continue
			}
			return &errors.ParseError{File: path, Line: line, Err: errors.New("sequence data before first header")}
		}
		seq.WriteString(strings.TrimSpace(text))
	}
	if err := scanner.Err(); err != nil {
		return errors.NewIOError("read", path, err)
	}
	return flush()
}

func firstField(header string) string {
	if i := strings.IndexAny(header, " \t"); i >= 0 {
		return header[:i]
	}
	return header
}
