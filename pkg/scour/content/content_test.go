package content

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

// writeFile creates a file with the given contents inside dir.
func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestIsText(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{name: "plain text", data: []byte("hello world\n"), want: true},
		{name: "empty file", data: nil, want: true},
		{name: "nul then text", data: []byte{0x00, 0x41}, want: false},
		{name: "text then nul in sample", data: append([]byte("abc"), 0x00), want: false},
		{name: "utf8 text", data: []byte("héllo wörld"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, strings.ReplaceAll(tt.name, " ", "_"), tt.data)
			if got := IsText(path); got != tt.want {
				t.Errorf("IsText(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsTextNulBeyondSample(t *testing.T) {
	dir := t.TempDir()

	// NUL after the 512-byte sample window is not seen by the heuristic.
	data := append([]byte(strings.Repeat("a", 600)), 0x00)
	path := writeFile(t, dir, "late_nul", data)

	if !IsText(path) {
		t.Error("NUL beyond the sample should not mark the file binary")
	}
}

func TestIsTextMissingFile(t *testing.T) {
	if IsText(filepath.Join(t.TempDir(), "does-not-exist")) {
		t.Error("unreadable file should classify as binary")
	}
}

func TestScanFindsFirstMatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.log", []byte(
		"2024-01-01 INFO started\n"+
			"2024-01-01 INFO listening\n"+
			"2024-01-01 ERROR disk full\n"+
			"2024-01-01 ERROR second error never reached\n"))

	snippet, found := Scan(context.Background(), path, "ERROR")
	if !found {
		t.Fatal("expected a match")
	}
	if !strings.Contains(snippet, "ERROR disk full") {
		t.Errorf("snippet %q should contain the matched line text", snippet)
	}
	if strings.Contains(snippet, "second error") {
		t.Errorf("scan should stop at the first matching line, got %q", snippet)
	}
}

func TestScanCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mixed.txt", []byte("Warning: Disk Almost Full\n"))

	if _, found := Scan(context.Background(), path, "disk almost"); !found {
		t.Error("expected case-insensitive substring match")
	}
}

func TestScanNoMatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "quiet.txt", []byte("nothing to see here\n"))

	if _, found := Scan(context.Background(), path, "ERROR"); found {
		t.Error("expected no match")
	}
}

func TestScanMissingFile(t *testing.T) {
	if _, found := Scan(context.Background(), filepath.Join(t.TempDir(), "gone"), "x"); found {
		t.Error("missing file should report no match")
	}
}

func TestScanCancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "big.txt", []byte(strings.Repeat("filler line\n", 100)+"needle\n"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, found := Scan(ctx, path, "needle"); found {
		t.Error("cancelled scan should not report a match")
	}
}

func TestSnippetBounds(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		matchStart int
		matchLen   int
		want       string
	}{
		{
			name:       "short line untouched",
			line:       "2024-01-01 ERROR disk full",
			matchStart: 11,
			matchLen:   5,
			want:       "2024-01-01 ERROR disk full",
		},
		{
			name:       "left truncation",
			line:       strings.Repeat("x", 100) + "ERROR tail",
			matchStart: 100,
			matchLen:   5,
			want:       "..." + strings.Repeat("x", 40) + "ERROR tail",
		},
		{
			name:       "right truncation",
			line:       "ERROR " + strings.Repeat("y", 300),
			matchStart: 0,
			matchLen:   5,
			want:       "ERROR " + strings.Repeat("y", 154) + "...",
		},
		{
			name:       "match at start of line",
			line:       "ERROR at column zero",
			matchStart: 0,
			matchLen:   5,
			want:       "ERROR at column zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Snippet(tt.line, tt.matchStart, tt.matchLen)
			if got != tt.want {
				t.Errorf("Snippet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSnippetTruncatedBothSides(t *testing.T) {
	line := strings.Repeat("a", 80) + "NEEDLE" + strings.Repeat("b", 300)
	got := Snippet(line, 80, 6)

	if !strings.HasPrefix(got, "...") || !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis on both truncated sides, got %q", got)
	}
	if !strings.Contains(got, "NEEDLE") {
		t.Errorf("snippet must contain the match, got %q", got)
	}
	// 40 chars of left context plus the bounded window.
	if len(got) > len(ellipsis)*2+snippetMax {
		t.Errorf("snippet too long: %d chars", len(got))
	}
}

func TestScanFoldLengthChangingRunes(t *testing.T) {
	dir := t.TempDir()

	// Lowering these runes changes their UTF-8 length: 'Ⱥ' grows from two
	// bytes to three, 'İ' shrinks from two bytes to one. The match offset
	// must stay valid in the original line either way.
	tests := []struct {
		name string
		line string
	}{
		{name: "lowercase longer", line: strings.Repeat("Ⱥ", 100) + "error tail"},
		{name: "lowercase shorter", line: strings.Repeat("İ", 200) + "error tail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, strings.ReplaceAll(tt.name, " ", "_"), []byte(tt.line+"\n"))

			snippet, found := Scan(context.Background(), path, "error")
			if !found {
				t.Fatal("expected a match")
			}
			if !strings.Contains(snippet, "error tail") {
				t.Errorf("snippet %q should contain the matched text", snippet)
			}
			if !utf8.ValidString(snippet) {
				t.Errorf("snippet %q is not valid UTF-8", snippet)
			}
		})
	}
}

func TestIndexFold(t *testing.T) {
	tests := []struct {
		name      string
		s         string
		needle    string
		wantIdx   int
		wantBytes int
	}{
		{name: "ascii exact", s: "disk full", needle: "full", wantIdx: 5, wantBytes: 4},
		{name: "ascii folded", s: "Disk FULL", needle: "full", wantIdx: 5, wantBytes: 4},
		{name: "no match", s: "disk full", needle: "empty", wantIdx: -1, wantBytes: 0},
		{name: "unicode folded", s: "naïve NAÏVE", needle: "naïve", wantIdx: 0, wantBytes: 6},
		{name: "offset past wide runes", s: "世界 error", wantIdx: 7, needle: "error", wantBytes: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, n := indexFold(tt.s, []rune(strings.ToLower(tt.needle)))
			if idx != tt.wantIdx || n != tt.wantBytes {
				t.Errorf("indexFold(%q, %q) = (%d, %d), want (%d, %d)",
					tt.s, tt.needle, idx, n, tt.wantIdx, tt.wantBytes)
			}
		})
	}
}

func TestSnippetRuneBoundaries(t *testing.T) {
	// Three-byte runes on both sides force the raw byte offsets off rune
	// boundaries; the window must snap rather than emit a split rune.
	line := strings.Repeat("世", 30) + "NEEDLE" + strings.Repeat("界", 100)
	got := Snippet(line, 90, 6)

	if !utf8.ValidString(got) {
		t.Errorf("snippet %q is not valid UTF-8", got)
	}
	if !strings.Contains(got, "NEEDLE") {
		t.Errorf("snippet must contain the match, got %q", got)
	}
	if !strings.HasPrefix(got, "...") || !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis on both truncated sides, got %q", got)
	}
}

func TestSnippetClampsOutOfRangeStart(t *testing.T) {
	line := "short line"
	if got := Snippet(line, len(line)+50, 5); !strings.HasSuffix(got, "line") {
		t.Errorf("out-of-range match start should clamp to the line, got %q", got)
	}
}

func TestScanBinaryFilePairing(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bin", []byte{0x00, 0x41})

	// The engine consults IsText before Scan; a binary file is excluded
	// even though its textual bytes would match.
	if IsText(path) {
		t.Fatal("file with NUL in sample must classify binary")
	}
}
