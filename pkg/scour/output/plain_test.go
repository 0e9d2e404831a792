package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainFormatter_Format(t *testing.T) {
	formatter := &PlainFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, sampleResult())
	require.NoError(t, err)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[0], "SIZE")
	assert.Contains(t, lines[0], "PATH")
	assert.NotContains(t, lines[0], "SNIPPET")

	assert.Contains(t, out, "app.log")
	assert.Contains(t, out, "/home/user/docs/report.txt")
	assert.Contains(t, out, "2.0 KiB")
}

func TestPlainFormatter_SnippetColumn(t *testing.T) {
	formatter := &PlainFormatter{}
	var buf bytes.Buffer

	result := sampleResult()
	result.Query = "ERROR"
	result.Matches[0].Snippet = "2024-01-01 ERROR disk full"

	err := formatter.Format(&buf, result)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "SNIPPET")
	assert.Contains(t, out, "ERROR disk full")
}

func TestPlainFormatter_NoStyling(t *testing.T) {
	formatter := &PlainFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, sampleResult())
	require.NoError(t, err)

	// Plain output carries no ANSI escape sequences.
	assert.NotContains(t, buf.String(), "\x1b[")
}
