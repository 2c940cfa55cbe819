package reconcile

import (
	"context"
	"sync"
	"time"

	pkgerrors "github.com/geneflow/taxmerge/pkg/errors"
	"github.com/geneflow/taxmerge/pkg/logging"
	"github.com/geneflow/taxmerge/pkg/tabular"
	"github.com/geneflow/taxmerge/pkg/taxonomy"
)

// Default column names shared by both input schemas.
const (
	// DefaultKeyColumn is the unified specimen identifier column.
	DefaultKeyColumn = "unique ID"
	// KeyColumnAlias is the alternative identifier spelling some inputs
	// use; it is renamed onto the unified name before joining.
	KeyColumnAlias = "id"
	// SourceColumn tags each output row with the winning identification.
	SourceColumn = "ID_source"
)

// Driver joins two specimen-keyed tables and reconciles each matched pair
// into one consensus row. The join is driven by table A: rows of A without
// a partner in B pass through verbatim, rows of B without a partner in A
// are never emitted. That asymmetry is inherited from the pipeline this
// tool replaces and is deliberate; the output is complete over A only.
type Driver struct {
	// Key is the unified identifier column, DefaultKeyColumn when empty.
	Key string

	// LabelA and LabelB name the two sources in the source tag and in the
	// prefixed diagnostic column names. They default to "A" and "B".
	LabelA string
	LabelB string

	// Workers sets how many goroutines reconcile rows in parallel. Values
	// below 2 keep the run sequential. Rows are independent after the
	// join, so this changes nothing but wall time.
	Workers int
}

// Result is the outcome of one reconciliation run.
type Result struct {
	Table         *tabular.Table
	Reconciled    int
	PassedThrough int
	Elapsed       time.Duration
}

// Run reconciles tables a and b into one output table. Both tables must
// offer the identifier column (under its unified name or its alias) and
// are considered read-only afterwards, apart from the identifier rename.
func (d *Driver) Run(ctx context.Context, a, b *tabular.Table) (*Result, error) {
	start := time.Now()
	logger := logging.FromContext(ctx)

	key := d.Key
	if key == "" {
		key = DefaultKeyColumn
	}
	labelA, labelB := d.labels()

	if err := unifyKey(a, key, labelA); err != nil {
		return nil, err
	}
	if err := unifyKey(b, key, labelB); err != nil {
		return nil, err
	}

	ranksA := offeredRanks(a)
	ranksB := offeredRanks(b)
	diagA := diagnosticColumns(a, key)
	diagB := diagnosticColumns(b, key)

	// First occurrence wins; the input contract assumes 0 or 1 partner
	// rows in b per identifier.
	lookup := make(map[string]int, b.Len())
	for i := 0; i < b.Len(); i++ {
		id := b.Cell(i, key)
		if _, seen := lookup[id]; !seen {
			lookup[id] = i
		}
	}

	out := outputTable(key, labelA, labelB, diagA, diagB)

	consensuses := make([]*Consensus, a.Len())
	build := func(i int) {
		id := a.Cell(i, key)
		j, matched := lookup[id]
		if !matched {
			return
		}
		c := Build(
			Input{Record: rowRecord(a, i, ranksA, taxonomy.SourceA), Diagnostics: rowDiagnostics(a, i, diagA)},
			Input{Record: rowRecord(b, j, ranksB, taxonomy.SourceB), Diagnostics: rowDiagnostics(b, j, diagB)},
		)
		c.Key = id
		consensuses[i] = &c
	}

	if d.Workers > 1 {
		d.buildParallel(a.Len(), build)
	} else {
		for i := 0; i < a.Len(); i++ {
			if err := ctx.Err(); err != nil {
				return nil, pkgerrors.ErrCanceled
			}
			build(i)
			if n := i + 1; n%1000 == 0 {
				logger.Info().Int("processed", n).Int("total", a.Len()).Msg("Reconciling records")
			}
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, pkgerrors.ErrCanceled
	}

	result := &Result{Table: out}
	for i := 0; i < a.Len(); i++ {
		if c := consensuses[i]; c != nil {
			out.AppendMap(consensusRow(c, key, labelA, labelB))
			result.Reconciled++
		} else {
			out.AppendMap(passthroughRow(a, i, ranksA, key, labelA, diagA))
			result.PassedThrough++
		}
	}

	result.Elapsed = time.Since(start)
	logger.Info().
		Int("reconciled", result.Reconciled).
		Int("passed_through", result.PassedThrough).
		Dur("elapsed", result.Elapsed).
		Msg("Reconciliation complete")
	return result, nil
}

// buildParallel fans row indices out to a fixed worker pool. Each worker
// writes only its own slots of the results slice; the b lookup is
// read-only during this phase, so no locking is needed.
func (d *Driver) buildParallel(n int, build func(int)) {
	indices := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < d.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				build(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		indices <- i
	}
	close(indices)
	wg.Wait()
}

func (d *Driver) labels() (string, string) {
	labelA, labelB := d.LabelA, d.LabelB
	if labelA == "" {
		labelA = string(taxonomy.SourceA)
	}
	if labelB == "" {
		labelB = string(taxonomy.SourceB)
	}
	return labelA, labelB
}

// unifyKey renames the identifier alias onto the unified key name. A
// table offering neither spelling is an input error and aborts the run.
func unifyKey(t *tabular.Table, key, label string) error {
	if t.HasColumn(key) {
		return nil
	}
	if t.HasColumn(KeyColumnAlias) {
		return t.RenameColumn(KeyColumnAlias, key)
	}
	return pkgerrors.NewMissingColumnError(label, key)
}

// offeredRanks returns the ranks a table's schema offers, in hierarchy
// order.
func offeredRanks(t *tabular.Table) []taxonomy.Rank {
	var out []taxonomy.Rank
	for _, r := range taxonomy.Ranks {
		if t.HasColumn(r.String()) {
			out = append(out, r)
		}
	}
	return out
}

// diagnosticColumns returns every column that is neither the identifier
// nor a rank, in header order.
func diagnosticColumns(t *tabular.Table, key string) []string {
	var out []string
	for _, c := range t.Columns() {
		if c == key || taxonomy.IsRank(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// rowRecord builds the normalized taxonomy view for one table row.
func rowRecord(t *tabular.Table, i int, ranks []taxonomy.Rank, source taxonomy.Source) *taxonomy.Record {
	values := make(map[taxonomy.Rank]string, len(ranks))
	for _, r := range ranks {
		values[r] = t.Cell(i, r.String())
	}
	return taxonomy.NewRecord(source, values)
}

func rowDiagnostics(t *tabular.Table, i int, columns []string) map[string]string {
	out := make(map[string]string, len(columns))
	for _, c := range columns {
		out[c] = t.Cell(i, c)
	}
	return out
}

// outputTable lays out the result columns: identifier, the seven ranks,
// the source tag, then both sources' diagnostic columns in first-seen
// order, prefixed with their source label.
func outputTable(key, labelA, labelB string, diagA, diagB []string) *tabular.Table {
	columns := []string{key}
	for _, r := range taxonomy.Ranks {
		columns = append(columns, r.String())
	}
	columns = append(columns, SourceColumn)
	for _, c := range diagA {
		columns = append(columns, labelA+"_"+c)
	}
	for _, c := range diagB {
		columns = append(columns, labelB+"_"+c)
	}
	return tabular.New(columns...)
}

func consensusRow(c *Consensus, key, labelA, labelB string) map[string]string {
	row := make(map[string]string)
	row[key] = c.Key
	for r, v := range c.Ranks {
		row[r.String()] = v
	}
	if c.Source == taxonomy.SourceA {
		row[SourceColumn] = labelA
	} else {
		row[SourceColumn] = labelB
	}
	for col, v := range c.DiagnosticA {
		row[labelA+"_"+col] = v
	}
	for col, v := range c.DiagnosticB {
		row[labelB+"_"+col] = v
	}
	return row
}

// passthroughRow emits an unmatched a row verbatim: a's taxonomy and
// diagnostics, tagged source A, with every b diagnostic left empty.
func passthroughRow(a *tabular.Table, i int, ranks []taxonomy.Rank, key, labelA string, diagA []string) map[string]string {
	row := make(map[string]string)
	row[key] = a.Cell(i, key)
	for _, r := range ranks {
		row[r.String()] = a.Cell(i, r.String())
	}
	row[SourceColumn] = labelA
	for _, c := range diagA {
		row[labelA+"_"+c] = a.Cell(i, c)
	}
	return row
}
