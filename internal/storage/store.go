// Package storage persists synthesis runs. Each run gets its own directory
// holding metadata.json plus the two token files Z.csv and Y.csv, written as
// a single comma-joined line so downstream drawing tools can consume them
// directly.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/avetk/ladsyn/internal/synth"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Numerator   []float64 `json:"numerator"`
	Denominator []float64 `json:"denominator"`
	Kind        string    `json:"kind"`
	SeriesCount int       `json:"series_count"`
	ShuntCount  int       `json:"shunt_count"`
}

// Save writes a new run directory and returns its id. Token files are only
// written for a successful synthesis, so a run directory always holds a
// consistent Z/Y pair.
func (s *Store) Save(num, den []float64, ladder *synth.Ladder) (string, error) {
	runID := fmt.Sprintf("net_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Timestamp:   time.Now(),
		Numerator:   num,
		Denominator: den,
		Kind:        ladder.Kind,
		SeriesCount: len(ladder.Z),
		ShuntCount:  len(ladder.Y),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := writeTokenLine(filepath.Join(runDir, "Z.csv"), ladder.Z); err != nil {
		return "", err
	}
	if err := writeTokenLine(filepath.Join(runDir, "Y.csv"), ladder.Y); err != nil {
		return "", err
	}
	return runID, nil
}

// writeTokenLine writes tokens as one comma-joined line with a trailing
// newline and no trailing comma.
func writeTokenLine(path string, tokens []string) error {
	return os.WriteFile(path, []byte(strings.Join(tokens, ",")+"\n"), 0644)
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadTokens reads the Z and Y token lines of a run back into slices.
func (s *Store) LoadTokens(runID string) ([]string, []string, error) {
	z, err := readTokenLine(filepath.Join(s.baseDir, runID, "Z.csv"))
	if err != nil {
		return nil, nil, fmt.Errorf("run %s: %w", runID, err)
	}
	y, err := readTokenLine(filepath.Join(s.baseDir, runID, "Y.csv"))
	if err != nil {
		return nil, nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return z, y, nil
}

func readTokenLine(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	line := strings.TrimRight(string(data), "\n")
	if line == "" {
		return nil, nil
	}
	return strings.Split(line, ","), nil
}

// List returns metadata for all stored runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}
