// Package engine implements the concurrent search pipeline: a single
// enumerator goroutine feeding a bounded channel, a fixed pool of workers
// applying the metadata filter and content scan, per-file progress
// reporting, and a deterministic final sort. A search is cancellable at any
// point through its context; a cancelled search returns no results.
package engine

import (
	"runtime"
	"time"

	"github.com/mjcarter/scour/pkg/scour/types"
)

// DefaultQueueSize is the capacity of the path hand-off channel between the
// enumerator and the workers.
const DefaultQueueSize = 256

// Options configures one search. It is immutable once Search starts.
type Options struct {
	// Root is the directory to search. It must exist and be a directory;
	// this is checked before the pipeline starts.
	Root string

	// NamePattern is an optional wildcard ('*', '?') matched
	// case-insensitively against bare file names. Empty matches all.
	NamePattern string

	// Extensions restricts matches to the given extensions. Entries are
	// normalized (lower-cased, dot-prefixed). Empty means no constraint.
	Extensions []string

	// ModifiedAfter is the inclusive lower bound on modification time.
	// The zero time means unbounded.
	ModifiedAfter time.Time

	// ModifiedBefore is the inclusive upper bound on modification time.
	// Callers wanting a whole-day bound extend it to end-of-day themselves.
	// The zero time means unbounded.
	ModifiedBefore time.Time

	// Recurse controls whether subdirectories are searched.
	Recurse bool

	// ContentQuery is an optional case-insensitive literal substring that
	// must occur in the file's content. Binary files never match.
	ContentQuery string

	// Workers is the number of concurrent file-processing workers.
	// Defaults to twice the number of CPUs.
	Workers int

	// QueueSize is the capacity of the enumerator-to-worker channel.
	QueueSize int

	// OnProgress, when set, is called after every processed file.
	// It must be safe to call from multiple goroutines; any throttling
	// is the sink's responsibility.
	OnProgress func(types.SearchProgress)
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Root:      ".",
		Recurse:   true,
		Workers:   runtime.NumCPU() * 2,
		QueueSize: DefaultQueueSize,
	}
}

// Validate applies defaults for unset or invalid values.
func (o *Options) Validate() error {
	if o.Root == "" {
		o.Root = "."
	}
	if o.Workers < 1 {
		o.Workers = runtime.NumCPU() * 2
	}
	if o.QueueSize < 1 {
		o.QueueSize = DefaultQueueSize
	}
	return nil
}
