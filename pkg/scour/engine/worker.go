package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/mjcarter/scour/pkg/scour/content"
	"github.com/mjcarter/scour/pkg/scour/filter"
	"github.com/mjcarter/scour/pkg/scour/types"
)

// worker drains the path channel until it is closed or the context is
// cancelled. On cancellation the channel is drained without processing so
// the producer never blocks on a full queue.
func (e *Engine) worker(ctx context.Context, paths <-chan string) {
	for {
		select {
		case <-ctx.Done():
			for range paths {
			}
			return

		case path, ok := <-paths:
			if !ok {
				return
			}
			e.process(ctx, path)
		}
	}
}

// process handles one candidate path: resolve metadata, apply the metadata
// filter, then the content classifier and line scan when a query is active.
// Every per-file failure mode skips the file; none aborts the search.
func (e *Engine) process(ctx context.Context, path string) {
	defer e.reportProgress(path)

	info, err := os.Lstat(path)
	if err != nil {
		// Deleted between enumeration and processing is an expected race.
		if !os.IsNotExist(err) {
			logger.Debug("stat failed", "path", path, "error", err)
		}
		return
	}
	if !info.Mode().IsRegular() {
		return
	}

	ext := strings.ToLower(filepath.Ext(path))
	meta := filter.FileMeta{
		Name:    info.Name(),
		Ext:     ext,
		ModTime: info.ModTime(),
	}
	if !e.flt.Match(meta) {
		return
	}

	var snippet string
	if e.opts.ContentQuery != "" {
		if !content.IsText(path) {
			return
		}
		s, found := content.Scan(ctx, path, e.opts.ContentQuery)
		if !found {
			return
		}
		snippet = s
	}

	// A cancel that lands mid-file discards the in-flight work; a partial
	// match is never exposed.
	if ctx.Err() != nil {
		return
	}

	match := types.SearchMatch{
		Name:    info.Name(),
		Path:    path,
		Ext:     ext,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Mode:    types.ModeText(info.Mode()),
		Snippet: snippet,
	}

	e.resultsMu.Lock()
	e.results = append(e.results, match)
	e.resultsMu.Unlock()
}

// reportProgress bumps the processed counter and delivers a snapshot to the
// sink. One snapshot per processed file, no batching; throttling is the
// sink's concern.
func (e *Engine) reportProgress(path string) {
	n := e.processed.Add(1)
	if e.opts.OnProgress == nil {
		return
	}
	e.opts.OnProgress(types.SearchProgress{
		Total:     0,
		Processed: n,
		Status:    path,
	})
}
