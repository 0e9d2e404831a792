package filter

import (
	"testing"
	"time"
)

func TestNewPassesEverything(t *testing.T) {
	f := New()

	metas := []FileMeta{
		{Name: "a.txt", Ext: ".txt", ModTime: time.Now()},
		{Name: "noext", Ext: "", ModTime: time.Time{}},
		{Name: "UPPER.LOG", Ext: ".LOG", ModTime: time.Unix(0, 0)},
	}
	for _, meta := range metas {
		if !f.Match(meta) {
			t.Errorf("unconstrained filter rejected %q", meta.Name)
		}
	}
}

func TestWithExtensionsNormalizes(t *testing.T) {
	f := New(WithExtensions("TXT", ".Log", " md "))

	want := []string{".txt", ".log", ".md"}
	if len(f.Extensions) != len(want) {
		t.Fatalf("Extensions = %v, want %v", f.Extensions, want)
	}
	for i, ext := range want {
		if f.Extensions[i] != ext {
			t.Errorf("Extensions[%d] = %q, want %q", i, f.Extensions[i], ext)
		}
	}
}

func TestMatchExtension(t *testing.T) {
	f := New(WithExtensions(".txt", ".log"))

	tests := []struct {
		ext  string
		want bool
	}{
		{".txt", true},
		{".TXT", true},
		{".log", true},
		{".pdf", false},
		{"", false},
	}

	for _, tt := range tests {
		meta := FileMeta{Name: "file" + tt.ext, Ext: tt.ext}
		if got := f.Match(meta); got != tt.want {
			t.Errorf("Match(ext=%q) = %v, want %v", tt.ext, got, tt.want)
		}
	}
}

func TestMatchDateInclusive(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
	f := New(WithModifiedAfter(from), WithModifiedBefore(to))

	tests := []struct {
		name string
		mod  time.Time
		want bool
	}{
		{name: "exactly from", mod: from, want: true},
		{name: "exactly to", mod: to, want: true},
		{name: "inside range", mod: from.AddDate(0, 6, 0), want: true},
		{name: "before range", mod: from.Add(-time.Second), want: false},
		{name: "after range", mod: to.Add(time.Second), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := FileMeta{Name: "f.txt", Ext: ".txt", ModTime: tt.mod}
			if got := f.Match(meta); got != tt.want {
				t.Errorf("Match(mod=%v) = %v, want %v", tt.mod, got, tt.want)
			}
		})
	}
}

func TestMatchDateUnboundedSides(t *testing.T) {
	old := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Now()

	onlyAfter := New(WithModifiedAfter(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
	if onlyAfter.Match(FileMeta{Name: "f", ModTime: old}) {
		t.Error("file older than after-bound should not match")
	}
	if !onlyAfter.Match(FileMeta{Name: "f", ModTime: recent}) {
		t.Error("recent file should match with no upper bound")
	}

	onlyBefore := New(WithModifiedBefore(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))
	if !onlyBefore.Match(FileMeta{Name: "f", ModTime: old}) {
		t.Error("old file should match with no lower bound")
	}
	if onlyBefore.Match(FileMeta{Name: "f", ModTime: recent}) {
		t.Error("recent file should not match before-bound")
	}
}

func TestMatchNamePattern(t *testing.T) {
	f := New(WithNamePattern("*report*.txt"))

	if !f.Match(FileMeta{Name: "annual_report_final.txt", Ext: ".txt"}) {
		t.Error("expected wildcard match")
	}
	if f.Match(FileMeta{Name: "summary.txt", Ext: ".txt"}) {
		t.Error("expected wildcard rejection")
	}
}

func TestMatchAllConstraintsANDed(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f := New(
		WithExtensions(".txt"),
		WithModifiedAfter(from),
		WithNamePattern("report*"),
	)

	good := FileMeta{Name: "report1.txt", Ext: ".txt", ModTime: from.AddDate(0, 1, 0)}
	if !f.Match(good) {
		t.Error("expected all constraints to pass")
	}

	badExt := good
	badExt.Ext = ".log"
	badExt.Name = "report1.log"
	if f.Match(badExt) {
		t.Error("wrong extension should fail the AND")
	}

	badDate := good
	badDate.ModTime = from.AddDate(-1, 0, 0)
	if f.Match(badDate) {
		t.Error("out-of-range date should fail the AND")
	}

	badName := good
	badName.Name = "summary.txt"
	if f.Match(badName) {
		t.Error("non-matching name should fail the AND")
	}
}

func TestWithTypeGroups(t *testing.T) {
	f := New(WithTypeGroups("log", "unknown"))

	if !f.Match(FileMeta{Name: "app.log", Ext: ".log"}) {
		t.Error("log group should include .log")
	}
	if f.Match(FileMeta{Name: "app.txt", Ext: ".txt"}) {
		t.Error(".txt is not in the log group")
	}
}
