package filter

import (
	"strings"
	"time"

	"github.com/mjcarter/scour/pkg/scour/pattern"
)

// Filter is the combined metadata predicate for one search. It is built once
// before the pipeline starts and never mutated afterwards, so workers may
// evaluate it concurrently without locking.
type Filter struct {
	// Extensions contains normalized (lower-case, dot-prefixed) extensions.
	// Empty means no extension constraint.
	Extensions []string

	// After is the inclusive lower bound on modification time.
	// The zero time means unbounded.
	After time.Time

	// Before is the inclusive upper bound on modification time.
	// The zero time means unbounded.
	Before time.Time

	// Name is the compiled wildcard matcher for the bare file name.
	Name *pattern.Matcher
}

// Option is a functional option for configuring a Filter.
type Option func(*Filter)

// New creates a Filter from the given options. With no options the filter
// passes every file.
func New(opts ...Option) *Filter {
	f := &Filter{
		Name: pattern.Compile(""),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithExtensions restricts matches to the given extensions.
// Extensions are normalized: lower-cased and dot-prefixed.
func WithExtensions(extensions ...string) Option {
	return func(f *Filter) {
		f.Extensions = NormalizeExtensions(extensions)
	}
}

// WithTypeGroups expands type group names to their extensions and sets them.
// Unknown group names are silently ignored.
func WithTypeGroups(groups ...string) Option {
	return func(f *Filter) {
		var extensions []string
		for _, group := range groups {
			if exts, ok := TypeGroups[strings.ToLower(group)]; ok {
				extensions = append(extensions, exts...)
			}
		}
		f.Extensions = extensions
	}
}

// WithModifiedAfter sets the inclusive lower modification-time bound.
func WithModifiedAfter(t time.Time) Option {
	return func(f *Filter) {
		f.After = t
	}
}

// WithModifiedBefore sets the inclusive upper modification-time bound.
func WithModifiedBefore(t time.Time) Option {
	return func(f *Filter) {
		f.Before = t
	}
}

// WithNamePattern compiles a wildcard expression ('*' and '?') into the name
// matcher. An empty pattern matches every name; a malformed pattern matches
// none.
func WithNamePattern(wildcard string) Option {
	return func(f *Filter) {
		f.Name = pattern.Compile(wildcard)
	}
}

// Match reports whether the file metadata satisfies every active constraint.
func (f *Filter) Match(meta FileMeta) bool {
	return f.matchExtension(meta) && f.matchDate(meta) && f.matchName(meta)
}

// matchExtension checks the extension against the normalized set.
func (f *Filter) matchExtension(meta FileMeta) bool {
	if len(f.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(meta.Ext)
	for _, e := range f.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// matchDate checks the modification time against the inclusive range.
func (f *Filter) matchDate(meta FileMeta) bool {
	if !f.After.IsZero() && meta.ModTime.Before(f.After) {
		return false
	}
	if !f.Before.IsZero() && meta.ModTime.After(f.Before) {
		return false
	}
	return true
}

// matchName delegates to the compiled wildcard matcher.
func (f *Filter) matchName(meta FileMeta) bool {
	if f.Name == nil {
		return true
	}
	return f.Name.Match(meta.Name)
}
