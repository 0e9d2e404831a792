// Package content implements the text-vs-binary heuristic and the
// line-oriented content scan used when a search carries a content query.
// Both operations are fail-safe: any I/O problem classifies the file as
// binary or as a non-match rather than surfacing an error, so one unreadable
// file never aborts a search.
package content

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// sampleSize is how many leading bytes are sniffed for the binary check.
	sampleSize = 512

	// snippetBefore is the maximum number of bytes kept before the match
	// start in a snippet.
	snippetBefore = 40

	// snippetMax is the maximum total snippet length in bytes, bounded by
	// the line.
	snippetMax = 160

	// maxLineSize caps the scanner buffer so a pathological line cannot
	// exhaust memory.
	maxLineSize = 1024 * 1024

	ellipsis = "..."
)

// IsText reports whether the file looks like text. It samples the first 512
// bytes (or the whole file if shorter): a NUL byte anywhere in the sample
// means binary. An empty file is text. A file that cannot be opened or read
// is classified binary, which excludes it from content search.
func IsText(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	sample := make([]byte, sampleSize)
	n, err := io.ReadFull(f, sample)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false
	}

	return !bytes.ContainsRune(sample[:n], 0)
}

// Scan reads the file line by line looking for the first line that contains
// query as a case-insensitive substring. On a hit it returns the bounded
// snippet for that line and true; scanning stops at the first match. Any I/O
// error during the scan reports no match. Cancellation is observed once per
// line.
func Scan(ctx context.Context, path, query string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	needle := []rune(strings.ToLower(query))

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return "", false
		default:
		}

		line := scanner.Text()
		if idx, n := indexFold(line, needle); idx >= 0 {
			return Snippet(line, idx, n), true
		}
	}

	// A scanner error (unreadable block, oversized line) means no match.
	return "", false
}

// indexFold locates the first case-insensitive occurrence of needle in s and
// returns its byte offset and byte length, both in s's own coordinates, or
// (-1, 0). Lowering a rune can change its encoded length, so offsets into a
// lowered copy of s do not transfer back; the walk stays on the original
// bytes instead. needle must already be lower-cased.
func indexFold(s string, needle []rune) (int, int) {
	if len(needle) == 0 {
		return 0, 0
	}
	for i := 0; i < len(s); {
		if n, ok := foldMatchAt(s[i:], needle); ok {
			return i, n
		}
		_, w := utf8.DecodeRuneInString(s[i:])
		i += w
	}
	return -1, 0
}

// foldMatchAt reports whether s starts with needle under simple case folding,
// returning the matched byte length in s.
func foldMatchAt(s string, needle []rune) (int, bool) {
	i := 0
	for _, want := range needle {
		r, w := utf8.DecodeRuneInString(s[i:])
		if w == 0 || unicode.ToLower(r) != want {
			return 0, false
		}
		i += w
	}
	return i, true
}

// Snippet extracts a bounded excerpt of line around a match starting at
// matchStart with the given length. Up to 40 bytes before the match and 160
// bytes total are kept, clamped to the line bounds and snapped to rune
// boundaries, with an ellipsis marker on each side where the line was
// truncated.
func Snippet(line string, matchStart, matchLen int) string {
	if matchStart < 0 {
		matchStart = 0
	}
	if matchStart > len(line) {
		matchStart = len(line)
	}

	start := matchStart - snippetBefore
	if start < 0 {
		start = 0
	}
	for start > 0 && !utf8.RuneStart(line[start]) {
		start--
	}

	end := start + snippetMax
	if end >= len(line) {
		end = len(line)
	} else {
		for end > start && !utf8.RuneStart(line[end]) {
			end--
		}
	}
	if matchEnd := matchStart + matchLen; end < matchEnd && matchEnd <= len(line) {
		end = matchEnd
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(ellipsis)
	}
	b.WriteString(line[start:end])
	if end < len(line) {
		b.WriteString(ellipsis)
	}
	return b.String()
}
