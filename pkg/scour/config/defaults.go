// Package config provides configuration management for the scour file search tool.
package config

import "runtime"

// Default configuration values for scour.
const (
	// DefaultRoot is the directory searched when none is specified.
	DefaultRoot = "."

	// DefaultOutput is the output format used when none is specified.
	DefaultOutput = "plain"

	// DefaultQueueSize is the capacity of the enumerator-to-worker channel.
	DefaultQueueSize = 256

	// DefaultRetentionDays is the default number of days to retain search
	// history records.
	DefaultRetentionDays = 30
)

// DefaultWorkers returns the default worker pool size.
func DefaultWorkers() int {
	return runtime.NumCPU() * 2
}
