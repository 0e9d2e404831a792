package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mjcarter/scour/pkg/scour/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "scour [path]",
		Short: "Search files by name, metadata, and content",
		Long: `Scour searches directory trees for files matching name patterns,
extensions, modification dates, and content.

Examples:
  scour                            # List all files under the current directory
  scour -n "*report*" ~/docs       # Wildcard name search
  scour -e pdf,docx ~/docs         # Filter by extension
  scour -t document ~/docs         # Filter by type group
  scour -c "TODO" src              # Content search in text files
  scour --after 2026-01-01 .       # Modified on or after a date
  scour history                    # View search history`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSearch,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/scour/config.yaml)")
	rootCmd.PersistentFlags().StringP("name", "n", "", "file name wildcard pattern (* and ?)")
	rootCmd.PersistentFlags().StringP("ext", "e", "", "comma-separated extensions (e.g., pdf,docx)")
	rootCmd.PersistentFlags().StringP("type", "t", "", "comma-separated type groups (document, image, audio, video, code, log)")
	rootCmd.PersistentFlags().StringP("content", "c", "", "case-insensitive content substring")
	rootCmd.PersistentFlags().String("after", "", "modified on or after date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().String("before", "", "modified on or before date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().Bool("no-recurse", false, "search only the top-level directory")
	rootCmd.PersistentFlags().IntP("workers", "w", 0, "override worker count (0=auto)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (plain, json, jsonl, table)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")

	// Bind flags to viper
	_ = viper.BindPFlag("name", rootCmd.PersistentFlags().Lookup("name"))
	_ = viper.BindPFlag("ext", rootCmd.PersistentFlags().Lookup("ext"))
	_ = viper.BindPFlag("type", rootCmd.PersistentFlags().Lookup("type"))
	_ = viper.BindPFlag("content", rootCmd.PersistentFlags().Lookup("content"))
	_ = viper.BindPFlag("after", rootCmd.PersistentFlags().Lookup("after"))
	_ = viper.BindPFlag("before", rootCmd.PersistentFlags().Lookup("before"))
	_ = viper.BindPFlag("no_recurse", rootCmd.PersistentFlags().Lookup("no-recurse"))
	_ = viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		// Add config paths in order of precedence
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "scour"))
		}

		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "scour"))
		}
	}

	// Set environment variable prefix and enable auto env binding
	viper.SetEnvPrefix("SCOUR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Set defaults from config package
	viper.SetDefault("default_root", config.DefaultRoot)
	viper.SetDefault("workers", 0)
	viper.SetDefault("queue_size", config.DefaultQueueSize)
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.retention_days", config.DefaultRetentionDays)
	viper.SetDefault("logging.level", "info")

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if getVerbose() && !getQuiet() {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// printInfo prints a message if quiet mode is not enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
