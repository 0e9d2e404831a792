package output

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/mjcarter/scour/pkg/scour/types"
)

// jsonOutput represents the full JSON output structure.
type jsonOutput struct {
	Matches []jsonMatch `json:"matches"`
	Meta    jsonMeta    `json:"meta"`
}

// jsonMatch represents a matched file in JSON output.
type jsonMatch struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Ext       string    `json:"ext,omitempty"`
	Size      int64     `json:"size"`
	SizeHuman string    `json:"size_human"`
	ModTime   time.Time `json:"mod_time"`
	Mode      string    `json:"mode,omitempty"`
	Snippet   string    `json:"snippet,omitempty"`
}

// jsonMeta represents search metadata in JSON output.
type jsonMeta struct {
	Root       string `json:"root"`
	Pattern    string `json:"pattern,omitempty"`
	Query      string `json:"query,omitempty"`
	Processed  int64  `json:"processed"`
	TotalFiles int    `json:"total_files"`
	TotalSize  int64  `json:"total_size"`
	Duration   string `json:"duration"`
}

// JSONFormatter formats output as a single indented JSON object.
// It produces a complete JSON document with matches and meta sections.
type JSONFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Result) error {
	output := f.buildOutput(r)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildOutput converts Result to the JSON output structure.
func (f *JSONFormatter) buildOutput(r *Result) jsonOutput {
	matches := make([]jsonMatch, len(r.Matches))
	for i, m := range r.Matches {
		matches[i] = buildMatch(m)
	}

	meta := jsonMeta{
		Root:       r.Root,
		Pattern:    r.Pattern,
		Query:      r.Query,
		Processed:  r.Processed,
		TotalFiles: len(r.Matches),
		TotalSize:  r.TotalSize(),
		Duration:   formatDurationString(r.Duration),
	}

	return jsonOutput{
		Matches: matches,
		Meta:    meta,
	}
}

// buildMatch converts one SearchMatch into its JSON shape.
func buildMatch(m types.SearchMatch) jsonMatch {
	return jsonMatch{
		Name:      m.Name,
		Path:      m.Path,
		Ext:       m.Ext,
		Size:      m.Size,
		SizeHuman: m.HumanSize(),
		ModTime:   m.ModTime,
		Mode:      m.Mode,
		Snippet:   m.Snippet,
	}
}

// formatDurationString formats a duration as a string for JSON output.
func formatDurationString(d time.Duration) string {
	if d == 0 {
		return ""
	}
	return d.String()
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)

// JSONLFormatter formats output as newline-delimited JSON (one object per line).
// Each match is written as a compact JSON object on its own line.
// This format is suitable for streaming processing with tools like jq.
type JSONLFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONLFormatter) Format(w *bytes.Buffer, r *Result) error {
	for _, m := range r.Matches {
		data, err := json.Marshal(buildMatch(m))
		if err != nil {
			return err
		}
		w.Write(data)
		w.WriteByte('\n')
	}
	return nil
}

func init() {
	Register("jsonl", func() Formatter {
		return &JSONLFormatter{}
	})
}

// Ensure JSONLFormatter implements Formatter.
var _ Formatter = (*JSONLFormatter)(nil)
