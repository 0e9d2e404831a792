package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// TableFormatter formats output with colors and styling using lipgloss.
// It produces a visually appealing table suitable for terminal display.
type TableFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *TableFormatter) Format(w *bytes.Buffer, r *Result) error {
	w.WriteString(f.formatHeader(r))
	w.WriteString("\n")
	w.WriteString(f.formatTable(r))
	w.WriteString(f.formatFooter(r))
	return nil
}

// formatHeader builds the header box with the search criteria.
func (f *TableFormatter) formatHeader(r *Result) string {
	var lines []string

	rootLabel := LabelStyle.Render("Root:")
	rootValue := ValueStyle.Render(r.Root)
	lines = append(lines, fmt.Sprintf("%s %s", rootLabel, rootValue))

	var infoParts []string
	if r.Pattern != "" {
		infoParts = append(infoParts,
			fmt.Sprintf("%s %s", LabelStyle.Render("Pattern:"), ValueStyle.Render(r.Pattern)))
	}
	if r.Query != "" {
		infoParts = append(infoParts,
			fmt.Sprintf("%s %s", LabelStyle.Render("Content:"), ValueStyle.Render(r.Query)))
	}
	infoParts = append(infoParts,
		fmt.Sprintf("%s %s", LabelStyle.Render("Searched:"),
			ValueStyle.Render(fmt.Sprintf("%d files in %s", r.Processed, formatDuration(r.Duration)))))

	lines = append(lines, strings.Join(infoParts, "  "))

	return HeaderBox.Render(strings.Join(lines, "\n"))
}

// formatTable builds the match table.
func (f *TableFormatter) formatTable(r *Result) string {
	if len(r.Matches) == 0 {
		return MutedStyle.Render("  No files found matching criteria\n")
	}

	var sb strings.Builder

	nameHeader := TableHeaderStyle.Render("NAME")
	sizeHeader := TableHeaderStyle.Render("SIZE")
	pathHeader := TableHeaderStyle.Render("PATH")
	sb.WriteString(fmt.Sprintf("  %s  %s  %s\n", sizeHeader, nameHeader, pathHeader))

	// Column widths for alignment.
	maxSizeWidth := 8
	maxNameWidth := 4
	for _, m := range r.Matches {
		if len(m.HumanSize()) > maxSizeWidth {
			maxSizeWidth = len(m.HumanSize())
		}
		if len(m.Name) > maxNameWidth {
			maxNameWidth = len(m.Name)
		}
	}

	for _, m := range r.Matches {
		sizeStr := SizeStyle.Render(padLeft(m.HumanSize(), maxSizeWidth))
		nameStr := NameStyle.Render(padRight(m.Name, maxNameWidth))
		pathStr := PathStyle.Render(m.Path)
		sb.WriteString(fmt.Sprintf("  %s  %s  %s\n", sizeStr, nameStr, pathStr))
		if m.Snippet != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", SnippetStyle.Render(m.Snippet)))
		}
	}

	return sb.String()
}

// formatFooter builds the footer box with summary information.
func (f *TableFormatter) formatFooter(r *Result) string {
	var parts []string

	matchLabel := LabelStyle.Render("Matches:")
	matchValue := ValueStyle.Render(fmt.Sprintf("%d", len(r.Matches)))
	parts = append(parts, fmt.Sprintf("%s %s", matchLabel, matchValue))

	totalLabel := LabelStyle.Render("Total:")
	totalValue := SizeStyle.Render(humanize.IBytes(uint64(r.TotalSize())))
	parts = append(parts, fmt.Sprintf("%s %s", totalLabel, totalValue))

	hint := MutedStyle.Render("Use -o plain for unformatted output")
	parts = append(parts, hint)

	return FooterBox.Render(strings.Join(parts, "  "))
}

// padLeft pads a string with spaces on the left to achieve the desired width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// padRight pads a string with spaces on the right to achieve the desired width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// formatDuration formats a time.Duration as a human-friendly string.
func formatDuration(d interface{ Seconds() float64 }) string {
	sec := d.Seconds()
	if sec < 1 {
		return fmt.Sprintf("%.0fms", sec*1000)
	}
	if sec < 60 {
		return fmt.Sprintf("%.1fs", sec)
	}
	minutes := int(sec) / 60
	seconds := int(sec) % 60
	if minutes < 60 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	hours := minutes / 60
	minutes = minutes % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

func init() {
	Register("table", func() Formatter {
		return &TableFormatter{}
	})
}

// Ensure TableFormatter implements Formatter.
var _ Formatter = (*TableFormatter)(nil)
