// Package walker implements the directory enumeration for a search: an
// explicit stack-based depth-first walk that yields the files of each
// directory before descending into its subdirectories. The walk is lazy
// (paths are handed to the visitor as they are discovered, never collected
// up front) and tolerant: a directory that cannot be listed is treated as
// empty and the walk continues.
package walker

import (
	"context"
	"os"
	"path/filepath"
)

// VisitFunc receives one absolute file path. Returning a non-nil error stops
// the walk immediately and Walk returns that error; the engine uses this to
// propagate cancellation out of the enumerator.
type VisitFunc func(path string) error

// Walk enumerates regular files below root. Files of the current directory
// are visited before any subdirectory is entered; siblings appear in the
// order the directory listing returns them, so the traversal is
// deterministic for a fixed filesystem snapshot. When recurse is false only
// the root directory's files are visited.
//
// Per-directory listing failures (permissions, I/O errors, a directory
// removed mid-walk) are swallowed: the directory contributes zero entries.
// Cancellation is checked once per directory visited.
func Walk(ctx context.Context, root string, recurse bool, visit VisitFunc) error {
	stack := []string{root}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			// Unreadable directory: treat as empty, keep walking.
			continue
		}

		var subdirs []string
		for _, entry := range entries {
			if entry.IsDir() {
				subdirs = append(subdirs, filepath.Join(dir, entry.Name()))
				continue
			}
			if !entry.Type().IsRegular() {
				// Symlinks and special files are not search candidates.
				continue
			}
			if err := visit(filepath.Join(dir, entry.Name())); err != nil {
				return err
			}
		}

		if !recurse {
			return nil
		}

		// Push in reverse so the stack pops subdirectories in listing order.
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	return nil
}
