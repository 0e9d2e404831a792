// Package filter combines the metadata criteria of a search (extension set,
// modification-date range, name wildcard) into a single predicate evaluated
// against one file's metadata. Constraints are ANDed; an absent constraint
// always passes.
package filter

import (
	"sort"
	"strings"
	"time"
)

// FileMeta carries the metadata the filter inspects for one file.
// It is deliberately small: content is never read at this stage.
type FileMeta struct {
	// Name is the base name of the file, without any directory part.
	Name string

	// Ext is the file extension including the dot. Case is irrelevant.
	Ext string

	// ModTime is the last modification time of the file.
	ModTime time.Time
}

// TypeGroups maps file type group names to their associated extensions,
// letting callers say "document" instead of spelling out every extension.
var TypeGroups = map[string][]string{
	"document": {
		".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx", ".odt", ".rtf", ".txt", ".md",
	},
	"image": {
		".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp", ".svg", ".ico", ".heic",
	},
	"audio": {
		".mp3", ".flac", ".wav", ".aac", ".ogg", ".m4a", ".opus",
	},
	"video": {
		".mp4", ".mkv", ".avi", ".mov", ".wmv", ".webm", ".m4v",
	},
	"code": {
		".go", ".py", ".js", ".ts", ".java", ".c", ".cpp", ".h", ".rs", ".rb", ".cs", ".sh",
	},
	"log": {
		".log", ".logs",
	},
}

// GroupNames returns the sorted names of all known type groups.
func GroupNames() []string {
	names := make([]string, 0, len(TypeGroups))
	for name := range TypeGroups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NormalizeExtensions lower-cases extensions and ensures each carries a
// leading dot. Empty elements are dropped.
func NormalizeExtensions(extensions []string) []string {
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return normalized
}
