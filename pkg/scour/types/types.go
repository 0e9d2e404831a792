// Package types provides the core data types exchanged between the scour
// search engine and its callers: matches, progress snapshots, and size
// formatting helpers.
package types

import (
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

// Size constants for binary (IEC) units.
const (
	KiB int64 = 1024
	MiB int64 = 1024 * KiB
	GiB int64 = 1024 * MiB
)

// SearchMatch describes a single file that satisfied every active search
// criterion. Matches are created by exactly one worker and, once the search
// completes, returned to the caller sorted by Name (ties broken by Path).
type SearchMatch struct {
	// Name is the base name of the file.
	Name string `json:"name"`

	// Path is the absolute path to the file.
	Path string `json:"path"`

	// Ext is the file extension including the dot, lower-cased.
	Ext string `json:"ext"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// ModTime is the last modification time of the file.
	ModTime time.Time `json:"mod_time"`

	// Mode is the file's mode and permission bits rendered as text
	// (e.g. "-rw-r--r--").
	Mode string `json:"mode"`

	// Snippet is a bounded excerpt of the first line that matched the
	// content query. Empty when no content query was supplied.
	Snippet string `json:"snippet,omitempty"`
}

// HumanSize returns the match's size formatted with IEC units.
func (m *SearchMatch) HumanSize() string {
	return FormatSize(m.Size)
}

// SearchProgress is an ephemeral snapshot of a running search. A fresh value
// is delivered to the progress sink after every processed file; snapshots are
// not retained by the engine.
type SearchProgress struct {
	// Total is the number of files the search will process, when known.
	// Subtree searches never pre-count, so it is always 0.
	Total int64 `json:"total"`

	// Processed is the number of files handled so far. Monotonically
	// non-decreasing for the duration of one search.
	Processed int64 `json:"processed"`

	// Status is a short human-readable message, carrying the path of the
	// file most recently processed.
	Status string `json:"status"`
}

// ModeText renders file mode bits the way matches carry them.
func ModeText(mode os.FileMode) string {
	return mode.String()
}

// FormatSize converts a size in bytes to a human-readable string using
// binary (IEC) units, consistent with common filesystem tools.
func FormatSize(bytes int64) string {
	return humanize.IBytes(uint64(bytes))
}
