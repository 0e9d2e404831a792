package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/mjcarter/scour/pkg/scour/engine"
	"github.com/mjcarter/scour/pkg/scour/filter"
	"github.com/spf13/viper"
)

// dateLayout is the accepted format for --after and --before.
const dateLayout = "2006-01-02"

// buildOptions creates engine.Options from the CLI flags.
func buildOptions(root string) (engine.Options, error) {
	opts := engine.Options{
		Root:         root,
		NamePattern:  viper.GetString("name"),
		ContentQuery: viper.GetString("content"),
		Recurse:      !viper.GetBool("no_recurse"),
		Workers:      viper.GetInt("workers"),
		QueueSize:    viper.GetInt("queue_size"),
	}

	// Type groups expand to extensions; explicit extensions add on top.
	typeStr := viper.GetString("type")
	if typeStr != "" {
		exts, err := expandTypeGroups(parseCommaSeparated(typeStr))
		if err != nil {
			return engine.Options{}, err
		}
		opts.Extensions = append(opts.Extensions, exts...)
	}

	extStr := viper.GetString("ext")
	if extStr != "" {
		opts.Extensions = append(opts.Extensions, parseCommaSeparated(extStr)...)
	}

	afterStr := viper.GetString("after")
	if afterStr != "" {
		after, err := time.ParseInLocation(dateLayout, afterStr, time.Local)
		if err != nil {
			return engine.Options{}, fmt.Errorf("invalid after date %q: %w", afterStr, err)
		}
		opts.ModifiedAfter = after
	}

	beforeStr := viper.GetString("before")
	if beforeStr != "" {
		before, err := time.ParseInLocation(dateLayout, beforeStr, time.Local)
		if err != nil {
			return engine.Options{}, fmt.Errorf("invalid before date %q: %w", beforeStr, err)
		}
		// A bare date bound covers the whole day.
		opts.ModifiedBefore = before.Add(24*time.Hour - time.Nanosecond)
	}

	return opts, nil
}

// expandTypeGroups converts type group names into their extension lists.
func expandTypeGroups(groups []string) ([]string, error) {
	var exts []string
	for _, g := range groups {
		group, ok := filter.TypeGroups[strings.ToLower(g)]
		if !ok {
			return nil, fmt.Errorf("unknown type group %q: available groups are %v", g, filter.GroupNames())
		}
		exts = append(exts, group...)
	}
	return exts, nil
}

// parseCommaSeparated splits a comma- or semicolon-separated string and
// trims whitespace.
func parseCommaSeparated(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';'
	})
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
