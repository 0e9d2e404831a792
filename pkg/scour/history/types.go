// Package history records completed search runs to the filesystem.
package history

import "time"

// Criteria captures the inputs of one search run.
type Criteria struct {
	Root       string    `json:"root"`
	Pattern    string    `json:"pattern,omitempty"`
	Extensions []string  `json:"extensions,omitempty"`
	After      time.Time `json:"after,omitempty"`
	Before     time.Time `json:"before,omitempty"`
	Query      string    `json:"query,omitempty"`
	Recurse    bool      `json:"recurse"`
}

// Summary contains the outcome of one search run.
type Summary struct {
	Matches    int64         `json:"matches"`
	Processed  int64         `json:"processed"`
	TotalBytes int64         `json:"total_bytes"`
	Duration   time.Duration `json:"duration"`
}

// Record represents a single recorded search run.
type Record struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Criteria  Criteria  `json:"criteria"`
	Summary   Summary   `json:"summary"`
}
