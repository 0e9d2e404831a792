package engine

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mjcarter/scour/pkg/scour/filter"
	"github.com/mjcarter/scour/pkg/scour/logging"
	"github.com/mjcarter/scour/pkg/scour/types"
	"github.com/mjcarter/scour/pkg/scour/walker"
)

// logger is the package-level logger for the search engine.
var logger = logging.Get("engine")

// ErrNotDirectory indicates the search root exists but is not a directory.
var ErrNotDirectory = errors.New("search root is not a directory")

// Engine runs one search. Each call site constructs a fresh Engine per
// invocation; no state survives beyond a single Search call.
type Engine struct {
	opts Options
	flt  *filter.Filter

	// processed counts files handled by the worker pool, monotonically
	// non-decreasing for the lifetime of one search.
	processed atomic.Int64

	// results collects matches across workers.
	results   []types.SearchMatch
	resultsMu sync.Mutex

	// elapsed is set when Search returns successfully.
	elapsed time.Duration
}

// New creates an Engine with the given options, applying defaults for any
// unset values.
func New(opts Options) *Engine {
	_ = opts.Validate()
	return &Engine{opts: opts}
}

// Search runs the pipeline and blocks until it completes, fails its
// precondition, or is cancelled. On success it returns every match sorted by
// name (ties broken by path). On cancellation it returns (nil, ctx.Err()):
// partial results are discarded by contract.
func (e *Engine) Search(ctx context.Context) ([]types.SearchMatch, error) {
	start := time.Now()

	root, err := e.validateRoot()
	if err != nil {
		return nil, err
	}

	e.flt = filter.New(
		filter.WithExtensions(e.opts.Extensions...),
		filter.WithModifiedAfter(e.opts.ModifiedAfter),
		filter.WithModifiedBefore(e.opts.ModifiedBefore),
		filter.WithNamePattern(e.opts.NamePattern),
	)

	logger.Info("search started",
		"root", root,
		"pattern", e.opts.NamePattern,
		"query", e.opts.ContentQuery,
		"workers", e.opts.Workers)

	// The hand-off channel is the work distributor: one producer, many
	// consumers, channel close as the producer-done signal.
	paths := make(chan string, e.opts.QueueSize)

	go func() {
		defer close(paths)
		_ = walker.Walk(ctx, root, e.opts.Recurse, func(path string) error {
			select {
			case paths <- path:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()

	var wg sync.WaitGroup
	for range e.opts.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.worker(ctx, paths)
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		logger.Info("search cancelled", "processed", e.processed.Load())
		return nil, err
	}

	e.resultsMu.Lock()
	matches := make([]types.SearchMatch, len(e.results))
	copy(matches, e.results)
	e.resultsMu.Unlock()

	slices.SortFunc(matches, func(a, b types.SearchMatch) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.Path, b.Path)
	})

	e.elapsed = time.Since(start)
	logger.Info("search complete",
		"matches", len(matches),
		"processed", e.processed.Load(),
		"elapsed", e.elapsed)

	return matches, nil
}

// Processed returns the number of files handled so far. Safe to call
// concurrently with a running search.
func (e *Engine) Processed() int64 {
	return e.processed.Load()
}

// Elapsed returns the duration of the last completed search.
func (e *Engine) Elapsed() time.Duration {
	return e.elapsed
}

// validateRoot resolves the root to an absolute path and verifies it is an
// existing directory. This is the only precondition check; everything after
// it is fail-safe per item.
func (e *Engine) validateRoot() (string, error) {
	root, err := filepath.Abs(e.opts.Root)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	return root, nil
}
