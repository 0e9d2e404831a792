package output

import (
	"bytes"
	"text/tabwriter"
)

// PlainFormatter formats output as a simple tab-separated table.
// It produces plain text output suitable for scripting and piping.
// No colors or styling are applied.
type PlainFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	header := "NAME\tSIZE\tMODIFIED\tPATH"
	if r.HasSnippets() {
		header += "\tSNIPPET"
	}
	if _, err := tw.Write([]byte(header + "\n")); err != nil {
		return err
	}

	for _, m := range r.Matches {
		row := m.Name + "\t" + m.HumanSize() + "\t" +
			m.ModTime.Format("2006-01-02 15:04") + "\t" + m.Path
		if r.HasSnippets() {
			row += "\t" + m.Snippet
		}
		if _, err := tw.Write([]byte(row + "\n")); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// Ensure PlainFormatter implements Formatter.
var _ Formatter = (*PlainFormatter)(nil)
