package history

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Store manages search run records on the filesystem, one JSON file per run.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New creates a new Store with the given directory.
// The directory is not created until EnsureDir is called.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("history directory cannot be empty")
	}
	return &Store{dir: dir}, nil
}

// EnsureDir creates the history directory if it does not exist.
func (s *Store) EnsureDir() error {
	return os.MkdirAll(s.dir, 0o755)
}

// Log records a completed search run and returns the created record.
func (s *Store) Log(criteria Criteria, summary Summary) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &Record{
		ID:        generateID(),
		Timestamp: time.Now().UTC(),
		Criteria:  criteria,
		Summary:   summary,
	}

	if err := s.writeRecord(record); err != nil {
		return nil, fmt.Errorf("failed to write history record: %w", err)
	}

	return record, nil
}

// writeRecord writes a record to a JSON file in the history directory.
func (s *Store) writeRecord(record *Record) error {
	filePath := filepath.Join(s.dir, record.ID+".json")

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	// Write atomically using a temp file and rename
	tmpPath := filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// List returns all records sorted by timestamp descending (newest first).
// If limit is 0 or negative, all records are returned.
func (s *Store) List(limit int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("failed to read history directory: %w", err)
	}

	var records []Record
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}

		record, err := s.readRecordFile(f.Name())
		if err != nil {
			// Skip files that can't be parsed
			continue
		}
		records = append(records, *record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	if records == nil {
		records = []Record{}
	}

	return records, nil
}

// Get retrieves a specific record by ID.
func (s *Store) Get(id string) (*Record, error) {
	if id == "" {
		return nil, errors.New("record ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read history directory: %w", err)
	}

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}

		record, err := s.readRecordFile(f.Name())
		if err != nil {
			continue
		}

		if record.ID == id {
			return record, nil
		}
	}

	return nil, fmt.Errorf("record not found: %s", id)
}

// readRecordFile reads and parses a record from a JSON file.
func (s *Store) readRecordFile(filename string) (*Record, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return &record, nil
}

// Cleanup removes records older than retentionDays.
func (s *Store) Cleanup(retentionDays int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	files, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read history directory: %w", err)
	}

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}

		info, err := f.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(s.dir, f.Name()))
		}
	}

	return nil
}

// generateID creates a unique ID like "search-2026-06-15T10-30-00-abc123".
func generateID() string {
	ts := time.Now().UTC().Format("2006-01-02T15-04-05")

	suffix := make([]byte, 6)
	if _, err := rand.Read(suffix); err != nil {
		// Fallback to nanoseconds if crypto/rand fails
		suffix = []byte(fmt.Sprintf("%06d", time.Now().Nanosecond()%1000000))
	}

	return fmt.Sprintf("search-%s-%s", ts, hex.EncodeToString(suffix))
}
