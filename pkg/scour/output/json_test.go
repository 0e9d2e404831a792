package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjcarter/scour/pkg/scour/types"
)

func TestJSONFormatter_Format_BasicOutput(t *testing.T) {
	formatter := &JSONFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, sampleResult())
	require.NoError(t, err)

	var parsed map[string]interface{}
	err = json.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)

	assert.Contains(t, parsed, "matches")
	assert.Contains(t, parsed, "meta")

	matches := parsed["matches"].([]interface{})
	require.Len(t, matches, 2)

	first := matches[0].(map[string]interface{})
	assert.Equal(t, "app.log", first["name"])
	assert.Equal(t, "/home/user/logs/app.log", first["path"])
	assert.Equal(t, float64(2048), first["size"])

	meta := parsed["meta"].(map[string]interface{})
	assert.Equal(t, "/home/user", meta["root"])
	assert.Equal(t, float64(150), meta["processed"])
	assert.Equal(t, float64(2), meta["total_files"])
	assert.Equal(t, float64(3072), meta["total_size"])
}

func TestJSONFormatter_Format_EmptyResult(t *testing.T) {
	formatter := &JSONFormatter{}
	var buf bytes.Buffer

	result := &Result{Root: "/home/user", Duration: time.Second}
	err := formatter.Format(&buf, result)
	require.NoError(t, err)

	var parsed map[string]interface{}
	err = json.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)

	matches := parsed["matches"].([]interface{})
	assert.Len(t, matches, 0)
}

func TestJSONFormatter_Format_SpecialCharacters(t *testing.T) {
	formatter := &JSONFormatter{}
	var buf bytes.Buffer

	result := &Result{
		Matches: []types.SearchMatch{
			{Name: `file"with"quotes.txt`, Path: `/tmp/file"with"quotes.txt`, Size: 10},
		},
		Root: "/tmp",
	}

	err := formatter.Format(&buf, result)
	require.NoError(t, err)

	var parsed map[string]interface{}
	err = json.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)
}

func TestJSONFormatter_Format_SnippetIncluded(t *testing.T) {
	formatter := &JSONFormatter{}
	var buf bytes.Buffer

	result := sampleResult()
	result.Query = "ERROR"
	result.Matches[0].Snippet = "ERROR disk full"

	err := formatter.Format(&buf, result)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))

	matches := parsed["matches"].([]interface{})
	first := matches[0].(map[string]interface{})
	assert.Equal(t, "ERROR disk full", first["snippet"])

	// Snippet is omitted for matches without one.
	second := matches[1].(map[string]interface{})
	assert.NotContains(t, second, "snippet")
}

func TestJSONLFormatter_Format(t *testing.T) {
	formatter := &JSONLFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, sampleResult())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	// Every line is an independent JSON object.
	for _, line := range lines {
		var parsed map[string]interface{}
		err := json.Unmarshal([]byte(line), &parsed)
		require.NoError(t, err)
		assert.Contains(t, parsed, "path")
		assert.Contains(t, parsed, "size")
	}
}

func TestJSONLFormatter_Format_EmptyResult(t *testing.T) {
	formatter := &JSONLFormatter{}
	var buf bytes.Buffer

	err := formatter.Format(&buf, &Result{Root: "/tmp"})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
