package match

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFasta(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFilesExact(t *testing.T) {
	a := writeFasta(t, "a.fasta", ">a1\nACGTACGT\n>a2\nTTTTTTTT\n")
	b := writeFasta(t, "b.fasta", ">b1\nacgtacgt\n>b2\nGGGGGGGG\n")

	m := &Matcher{}
	pairs, err := m.Files(context.Background(), a, b)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, Pair{AID: "a1", BID: "b1"}, pairs[0], "matching is case-insensitive via uppercasing")
}

func TestFilesTruncated(t *testing.T) {
	a := writeFasta(t, "a.fasta", ">a1\nACGTAC\n")
	b := writeFasta(t, "b.fasta", ">b1\nACGTACGGGG\n>b2\nACGTACTTTT\n>b3\nTTTTTT\n")

	m := &Matcher{TruncateB: 6}
	pairs, err := m.Files(context.Background(), a, b)
	require.NoError(t, err)
	assert.Equal(t, []Pair{
		{AID: "a1", BID: "b1"},
		{AID: "a1", BID: "b2"},
	}, pairs, "every B record sharing the prefix pairs with the A record")
}

func TestFilesDuplicateASequences(t *testing.T) {
	a := writeFasta(t, "a.fasta", ">a1\nACGT\n>a2\nACGT\n")
	b := writeFasta(t, "b.fasta", ">b1\nACGT\n")

	m := &Matcher{}
	pairs, err := m.Files(context.Background(), a, b)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "a2", pairs[0].AID, "duplicate sequences collapse to the last record read")
}

func TestFilesNoMatches(t *testing.T) {
	a := writeFasta(t, "a.fasta", ">a1\nACGT\n")
	b := writeFasta(t, "b.fasta", ">b1\nTTTT\n")

	m := &Matcher{}
	pairs, err := m.Files(context.Background(), a, b)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestFilesMissingInput(t *testing.T) {
	b := writeFasta(t, "b.fasta", ">b1\nTTTT\n")
	m := &Matcher{}
	_, err := m.Files(context.Background(), filepath.Join(t.TempDir(), "nope.fasta"), b)
	assert.Error(t, err)
}
