package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/mjcarter/scour/pkg/scour/config"
	"github.com/mjcarter/scour/pkg/scour/engine"
	"github.com/mjcarter/scour/pkg/scour/history"
	"github.com/mjcarter/scour/pkg/scour/logging"
	"github.com/mjcarter/scour/pkg/scour/output"
	"github.com/mjcarter/scour/pkg/scour/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// progressInterval is the minimum time between progress lines on stderr.
const progressInterval = 200 * time.Millisecond

// runSearch is the main search command handler.
func runSearch(_ *cobra.Command, args []string) error {
	// Determine search root
	root := viper.GetString("default_root")
	if len(args) > 0 {
		root = args[0]
	}

	expandedRoot, err := config.ExpandPath(root)
	if err != nil {
		return fmt.Errorf("failed to expand path: %w", err)
	}

	absRoot, err := filepath.Abs(expandedRoot)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	if err := initLogging(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logging.Close() }()

	opts, err := buildOptions(absRoot)
	if err != nil {
		return err
	}

	// Get output formatter before doing any work
	outFormat := viper.GetString("output")
	if outFormat == "" {
		outFormat = config.DefaultOutput
	}
	formatter, err := output.Get(outFormat)
	if err != nil {
		return fmt.Errorf("unknown output format %q: available formats are %v", outFormat, output.Available())
	}

	// Setup context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		printInfo("\nInterrupted, stopping search...")
		cancel()
	}()

	if !getQuiet() {
		opts.OnProgress = makeProgressSink()
	}

	printVerbose("Searching %s (workers=%d, recurse=%t)", absRoot, opts.Workers, opts.Recurse)

	eng := engine.New(opts)
	matches, err := eng.Search(ctx)
	clearProgress()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			printInfo("Search cancelled")
			return nil
		}
		return fmt.Errorf("search failed: %w", err)
	}

	result := &output.Result{
		Matches:   matches,
		Root:      absRoot,
		Pattern:   opts.NamePattern,
		Query:     opts.ContentQuery,
		Processed: eng.Processed(),
		Duration:  eng.Elapsed(),
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, result); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Print(buf.String())

	recordHistory(opts, result)

	return nil
}

// initLogging configures file logging from config and CLI flags.
func initLogging() error {
	logCfg := logging.Config{
		Level: viper.GetString("logging.level"),
		Path:  viper.GetString("logging.path"),
	}
	if logCfg.Level == "" {
		logCfg.Level = "info"
	}
	if getVerbose() {
		logCfg.Level = "debug"
		logCfg.ConsoleLevel = "debug"
	}
	return logging.Init(logCfg)
}

// progressShown tracks whether a progress line is currently on stderr.
var progressShown atomic.Bool

// makeProgressSink returns a progress callback that writes a throttled
// status line to stderr. The engine reports every file; the sink drops
// reports arriving faster than progressInterval.
func makeProgressSink() func(types.SearchProgress) {
	var last atomic.Int64
	return func(p types.SearchProgress) {
		now := time.Now().UnixNano()
		prev := last.Load()
		if now-prev < int64(progressInterval) {
			return
		}
		if !last.CompareAndSwap(prev, now) {
			return
		}
		fmt.Fprintf(os.Stderr, "\r\x1b[Ksearched %d files: %s", p.Processed, truncateString(p.Status, 60))
		progressShown.Store(true)
	}
}

// clearProgress erases the progress line if one was written.
func clearProgress() {
	if progressShown.Swap(false) {
		fmt.Fprint(os.Stderr, "\r\x1b[K")
	}
}

// recordHistory persists the completed run when history is enabled.
// History failures never fail the search.
func recordHistory(opts engine.Options, result *output.Result) {
	if !viper.GetBool("history.enabled") {
		return
	}

	dir := viper.GetString("history.path")
	if dir == "" {
		var err error
		dir, err = config.HistoryDir()
		if err != nil {
			printVerbose("history disabled: %v", err)
			return
		}
	}

	store, err := history.New(dir)
	if err != nil {
		printVerbose("history disabled: %v", err)
		return
	}
	if err := store.EnsureDir(); err != nil {
		printVerbose("history disabled: %v", err)
		return
	}

	criteria := history.Criteria{
		Root:       opts.Root,
		Pattern:    opts.NamePattern,
		Extensions: opts.Extensions,
		After:      opts.ModifiedAfter,
		Before:     opts.ModifiedBefore,
		Query:      opts.ContentQuery,
		Recurse:    opts.Recurse,
	}
	summary := history.Summary{
		Matches:    int64(len(result.Matches)),
		Processed:  result.Processed,
		TotalBytes: result.TotalSize(),
		Duration:   result.Duration,
	}

	if _, err := store.Log(criteria, summary); err != nil {
		printVerbose("failed to record history: %v", err)
	}
}
