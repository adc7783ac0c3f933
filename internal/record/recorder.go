// Package record appends attempt outcomes to per-configuration CSV logs.
// Recording is best-effort: I/O failures are logged and never interrupt
// gameplay.
package record

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Attempt is one recorded search-and-click outcome.
type Attempt struct {
	// Distance is the normalized distance from the click to the signal.
	Distance float64
	// Time is the round duration in seconds at the click.
	Time float64
	// Strength is the signal strength at the click.
	Strength float64
}

// Recorder appends attempts under a base directory, one CSV file per game
// and configuration. All rows written by one process share a session ID so
// a sitting's attempts can be grouped offline.
type Recorder struct {
	base    string
	session string
}

// New creates a Recorder rooted at base with a fresh session ID.
func New(base string) *Recorder {
	return &Recorder{base: base, session: uuid.NewString()}
}

// Session returns the per-process session ID.
func (r *Recorder) Session() string {
	return r.session
}

// Record appends one attempt to <base>/<game>/<configKey>.csv, creating the
// directory and file as needed. Errors are logged and swallowed.
func (r *Recorder) Record(game, configKey string, a Attempt) {
	if err := r.record(game, configKey, a); err != nil {
		log.Printf("record attempt: %v", err)
	}
}

func (r *Recorder) record(game, configKey string, a Attempt) error {
	dir := filepath.Join(r.base, game)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, configKey+".csv")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	row := []string{
		r.session,
		fmt.Sprintf("%g", a.Distance),
		fmt.Sprintf("%g", a.Time),
		fmt.Sprintf("%g", a.Strength),
	}
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
