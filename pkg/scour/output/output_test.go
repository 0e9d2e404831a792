package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjcarter/scour/pkg/scour/types"
)

func sampleResult() *Result {
	return &Result{
		Matches: []types.SearchMatch{
			{
				Name:    "app.log",
				Path:    "/home/user/logs/app.log",
				Ext:     ".log",
				Size:    2048,
				ModTime: time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
				Mode:    "-rw-r--r--",
			},
			{
				Name:    "report.txt",
				Path:    "/home/user/docs/report.txt",
				Ext:     ".txt",
				Size:    1024,
				ModTime: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
				Mode:    "-rw-r--r--",
			},
		},
		Root:      "/home/user",
		Pattern:   "*",
		Processed: 150,
		Duration:  2 * time.Second,
	}
}

func TestResultTotalSize(t *testing.T) {
	r := sampleResult()
	assert.Equal(t, int64(3072), r.TotalSize())

	empty := &Result{}
	assert.Equal(t, int64(0), empty.TotalSize())
}

func TestResultHasSnippets(t *testing.T) {
	r := sampleResult()
	assert.False(t, r.HasSnippets())

	r.Query = "ERROR"
	assert.True(t, r.HasSnippets())
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	reg.Register("test", func() Formatter {
		return &PlainFormatter{}
	})

	f, err := reg.Get("test")
	require.NoError(t, err)
	assert.NotNil(t, f)
}

func TestRegistry_GetUnknown(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Get("nonexistent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown formatter")
}

func TestRegistry_Available(t *testing.T) {
	reg := NewRegistry()
	reg.Register("zebra", func() Formatter { return &PlainFormatter{} })
	reg.Register("alpha", func() Formatter { return &PlainFormatter{} })

	names := reg.Available()
	assert.Equal(t, []string{"alpha", "zebra"}, names)
}

func TestDefaultRegistry_BuiltinFormatters(t *testing.T) {
	for _, name := range []string{"plain", "json", "jsonl", "table"} {
		f, err := Get(name)
		require.NoError(t, err, "formatter %q should be registered", name)
		assert.NotNil(t, f)
	}
}

func TestAllFormatters_EmptyResult(t *testing.T) {
	result := &Result{Root: "/home/user", Duration: time.Second}

	for _, name := range Available() {
		t.Run(name, func(t *testing.T) {
			f, err := Get(name)
			require.NoError(t, err)

			var buf bytes.Buffer
			err = f.Format(&buf, result)
			assert.NoError(t, err)
		})
	}
}
