// Package store keeps a small local file of finished-game results. The live
// game never touches disk; only completed rounds are recorded here.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/idilsaglam/pairs/internal/config"
)

const (
	scoresFileName = "scores.json"

	// maxEntries caps the file at a short best-of list.
	maxEntries = 10
)

// Entry records one finished game.
type Entry struct {
	Pairs    int       `json:"pairs"`
	Moves    int       `json:"moves"`
	Stars    int       `json:"stars"`
	Seconds  int       `json:"seconds"`
	PlayedAt time.Time `json:"played_at"`
}

func scoresPath() string {
	return filepath.Join(config.GetXDGDataHome(), "pairs", scoresFileName)
}

// Load reads the recorded results. A missing file is an empty list, not an
// error.
func Load() ([]Entry, error) {
	b, err := os.ReadFile(scoresPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("read scores: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("parse scores: %w", err)
	}
	return entries, nil
}

// Save writes the given results, creating the data directory if needed.
func Save(entries []Entry) error {
	p := scoresPath()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}
	if err := os.WriteFile(p, b, 0o644); err != nil {
		return fmt.Errorf("write scores: %w", err)
	}
	return nil
}

// Record inserts a finished game, keeps the list ordered best-first, trims it
// to the cap and saves. It returns the saved list.
func Record(e Entry) ([]Entry, error) {
	entries, err := Load()
	if err != nil {
		return nil, err
	}
	entries = append(entries, e)
	sort.SliceStable(entries, func(i, j int) bool { return better(entries[i], entries[j]) })
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}
	if err := Save(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Clear removes the results file.
func Clear() error {
	if err := os.Remove(scoresPath()); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove scores: %w", err)
	}
	return nil
}

// better orders results best-first: more stars, then fewer moves, then less
// time.
func better(a, b Entry) bool {
	if a.Stars != b.Stars {
		return a.Stars > b.Stars
	}
	if a.Moves != b.Moves {
		return a.Moves < b.Moves
	}
	return a.Seconds < b.Seconds
}
