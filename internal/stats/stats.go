// Package stats persists lifetime play statistics across games.
package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Record is the on-disk statistics document.
type Record struct {
	GamesStarted int           `json:"games_started"`
	GamesWon     int           `json:"games_won"`
	BestScore    int           `json:"best_score,omitempty"`
	BestTime     time.Duration `json:"best_time,omitempty"`
}

// Tracker loads a Record at startup and writes it back after every
// update. Save failures are logged rather than surfaced, so statistics
// never interrupt play.
type Tracker struct {
	path   string
	logger *log.Logger
	record Record
}

// DefaultPath returns the per-user statistics file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "klondike", "stats.json"), nil
}

// Open reads the statistics file at path. A missing file yields an
// empty record.
func Open(path string, logger *log.Logger) (*Tracker, error) {
	t := &Tracker{path: path, logger: logger.WithPrefix("stats")}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &t.record); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

// Snapshot returns a copy of the current statistics
func (t *Tracker) Snapshot() Record {
	return t.record
}

// GameStarted bumps the played counter
func (t *Tracker) GameStarted() {
	t.record.GamesStarted++
	t.save()
}

// GameWon records a finished game, keeping the best score and the
// fastest winning time seen so far.
func (t *Tracker) GameWon(score int, elapsed time.Duration) {
	t.record.GamesWon++
	if score > t.record.BestScore {
		t.record.BestScore = score
	}
	if t.record.BestTime == 0 || elapsed < t.record.BestTime {
		t.record.BestTime = elapsed
	}
	t.save()
}

func (t *Tracker) save() {
	data, err := json.MarshalIndent(&t.record, "", "  ")
	if err != nil {
		t.logger.Warn("failed to encode statistics", "error", err)
		return
	}
	if err := writeFileAtomic(t.path, data, 0o644); err != nil {
		t.logger.Warn("failed to save statistics", "path", t.path, "error", err)
	}
}

// writeFileAtomic writes through a temp file in the same directory and
// renames it over the target, so readers never observe a partial file.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp.*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	tmp = nil

	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	return os.Rename(tmpPath, filename)
}
