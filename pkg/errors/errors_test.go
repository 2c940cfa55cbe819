package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingColumnError(t *testing.T) {
	err := NewMissingColumnError("midori.csv", "unique ID")
	assert.Contains(t, err.Error(), "unique ID")
	assert.Contains(t, err.Error(), "midori.csv")
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.True(t, IsMissingColumn(err))

	bare := NewMissingColumnError("", "Phylum")
	assert.Equal(t, `required column "Phylum" not found`, bare.Error())
}

func TestMissingColumnErrorWrapped(t *testing.T) {
	err := fmt.Errorf("loading table: %w", NewMissingColumnError("bold.csv", "id"))
	assert.True(t, IsMissingColumn(err))
	assert.False(t, IsNotFound(err))
}

func TestParseError(t *testing.T) {
	cause := New("bad record")
	err := &ParseError{File: "seqs.fasta", Line: 12, Err: cause}
	assert.Contains(t, err.Error(), "seqs.fasta")
	assert.Contains(t, err.Error(), "line 12")
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.True(t, errors.Is(err, cause))

	noLine := &ParseError{File: "seqs.fasta", Err: cause}
	assert.NotContains(t, noLine.Error(), "line")
}

func TestIOError(t *testing.T) {
	err := NewIOError("open", "/tmp/missing.csv", ErrNotFound)
	assert.Contains(t, err.Error(), "open /tmp/missing.csv")
	assert.True(t, IsNotFound(err))
}
