package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mjcarter/scour/pkg/scour/config"
	"github.com/mjcarter/scour/pkg/scour/history"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View search history",
	Long: `View the history of past searches.

Each completed search is recorded with its criteria and result summary,
so past searches can be reviewed or repeated.`,
	RunE: runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show details of a specific search",
	Long:  `Display detailed information about a specific search by its ID.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean up old history records",
	Long:  `Remove history records older than the retention period.`,
	RunE:  runHistoryClean,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "maximum number of records to show")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyCleanCmd)
	rootCmd.AddCommand(historyCmd)
}

// getStore returns a history store with the configured directory.
func getStore() (*history.Store, error) {
	cfg, err := config.Load()
	if err != nil || cfg.History.Path == "" {
		// Use default history path if config fails to load
		historyDir, dirErr := config.HistoryDir()
		if dirErr != nil {
			return nil, fmt.Errorf("failed to get history directory: %w", dirErr)
		}
		return history.New(historyDir)
	}

	return history.New(cfg.History.Path)
}

// runHistory lists recent searches.
func runHistory(cmd *cobra.Command, args []string) error {
	store, err := getStore()
	if err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}

	records, err := store.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(records) == 0 {
		printInfo("No history records found.")
		printInfo("Run 'scour [path]' to search for files.")
		return nil
	}

	fmt.Printf("\n%-42s  %-20s  %-8s  %-10s\n", "ID", "ROOT", "MATCHES", "SIZE")
	fmt.Println(strings.Repeat("-", 88))

	for _, record := range records {
		fmt.Printf("%-42s  %-20s  %-8d  %-10s\n",
			truncateString(record.ID, 42),
			truncateString(record.Criteria.Root, 20),
			record.Summary.Matches,
			humanize.IBytes(uint64(record.Summary.TotalBytes)),
		)
	}

	fmt.Println(strings.Repeat("-", 88))
	fmt.Printf("\nShowing %d records. Use --limit to see more.\n", len(records))
	fmt.Println("Use 'scour history show <id>' for details on a specific record.")

	return nil
}

// runHistoryShow displays details of a specific search.
func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := getStore()
	if err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}

	record, err := store.Get(args[0])
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	fmt.Println("\nSearch Details")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("ID:         %s\n", record.ID)
	fmt.Printf("Timestamp:  %s\n", record.Timestamp.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("Root:       %s\n", record.Criteria.Root)
	if record.Criteria.Pattern != "" {
		fmt.Printf("Pattern:    %s\n", record.Criteria.Pattern)
	}
	if len(record.Criteria.Extensions) > 0 {
		fmt.Printf("Extensions: %s\n", strings.Join(record.Criteria.Extensions, ", "))
	}
	if record.Criteria.Query != "" {
		fmt.Printf("Content:    %s\n", record.Criteria.Query)
	}
	if !record.Criteria.After.IsZero() {
		fmt.Printf("After:      %s\n", record.Criteria.After.Format("2006-01-02"))
	}
	if !record.Criteria.Before.IsZero() {
		fmt.Printf("Before:     %s\n", record.Criteria.Before.Format("2006-01-02"))
	}
	fmt.Printf("Recurse:    %t\n", record.Criteria.Recurse)
	fmt.Printf("Matches:    %d\n", record.Summary.Matches)
	fmt.Printf("Processed:  %d files\n", record.Summary.Processed)
	fmt.Printf("Total Size: %s\n", humanize.IBytes(uint64(record.Summary.TotalBytes)))
	fmt.Printf("Duration:   %s\n", record.Summary.Duration)

	return nil
}

// runHistoryClean removes old history records.
func runHistoryClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	store, err := history.New(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}

	retentionDays := cfg.History.RetentionDays
	if retentionDays <= 0 {
		retentionDays = config.DefaultRetentionDays
	}

	printInfo("Cleaning history records older than %d days...", retentionDays)

	if err := store.Cleanup(retentionDays); err != nil {
		return fmt.Errorf("failed to clean history: %w", err)
	}

	printInfo("History cleanup complete.")
	return nil
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
