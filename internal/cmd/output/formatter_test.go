package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON))
	assert.IsType(t, &YAMLFormatter{}, NewFormatter(FormatYAML))
	assert.IsType(t, &TableFormatter{}, NewFormatter(FormatTable))
	assert.IsType(t, &TableFormatter{}, NewFormatter(Format("unknown")))
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{Indent: "  "}
	require.NoError(t, f.Format(&buf, map[string]string{"rank": "Phylum"}))
	assert.JSONEq(t, `{"rank": "Phylum"}`, buf.String())
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &YAMLFormatter{}
	require.NoError(t, f.Format(&buf, map[string]string{"rank": "Phylum"}))
	assert.Contains(t, buf.String(), "rank: Phylum")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}
	data := Data{
		Headers: []string{"Rank", "Depth"},
		Rows:    [][]string{{"Kingdom", "1"}, {"Species", "7"}},
	}
	require.NoError(t, f.Format(&buf, data))
	out := buf.String()
	assert.Contains(t, out, "Kingdom")
	assert.Contains(t, out, "Species")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}
	require.NoError(t, f.Format(&buf, map[string]int{"ranks": 7}))
	assert.JSONEq(t, `{"ranks": 7}`, buf.String())
}

func TestTitleHeaders(t *testing.T) {
	got := TitleHeaders([]string{"unique_id", "phylum"})
	assert.Equal(t, []string{"Unique Id", "Phylum"}, got)
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "JSON", "yaml", ""} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "xml"))
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
	assert.Equal(t, FormatJSON, DetectFormat("json"))
}
