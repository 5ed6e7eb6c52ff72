package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// entry is one persisted poll: the raw status and trip payloads as the
// portal returned them, plus the wall-clock time of the poll.
type entry struct {
	RecordedAt time.Time       `json:"recordedAt"`
	Status     json.RawMessage `json:"status"`
	Trip       json.RawMessage `json:"trip"`
}

// Recorder persists each polled status/trip pair to a directory so a ride
// can be replayed later without being on the train.
type Recorder struct {
	dir string
	seq int
}

// NewRecorder creates a recorder writing into dir, creating it if needed.
// Numbering resumes after any recordings already in the directory so a new
// session never overwrites a previous ride.
func NewRecorder(dir string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create recording dir: %w", err)
	}

	existing, err := listRecordings(dir)
	if err != nil {
		return nil, err
	}
	seq := 0
	for _, f := range existing {
		var n int
		if _, err := fmt.Sscanf(filepath.Base(f), "rec-%d.json", &n); err == nil && n >= seq {
			seq = n + 1
		}
	}
	return &Recorder{dir: dir, seq: seq}, nil
}

// Record writes one status/trip pair as the next numbered recording.
func (r *Recorder) Record(status, trip json.RawMessage) error {
	e := entry{
		RecordedAt: time.Now(),
		Status:     status,
		Trip:       trip,
	}

	data, err := json.Marshal(e)
	if err != nil {
		return err
	}

	name := filepath.Join(r.dir, fmt.Sprintf("rec-%06d.json", r.seq))
	r.seq++
	return os.WriteFile(name, data, 0600)
}

// DefaultDir returns the default recording directory.
func DefaultDir() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "bordblick", "recordings")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "bordblick-recordings")
	}
	return filepath.Join(home, ".local", "share", "bordblick", "recordings")
}

// listRecordings returns the recording files in dir, oldest first.
func listRecordings(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "rec-*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}
