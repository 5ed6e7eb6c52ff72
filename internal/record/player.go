package record

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bordblick/bordblick-cli/internal/models"
)

// Player replays a recorded ride as a snapshot source. It serves
// recordings in order and wraps around at the end, so a short recording
// still drives a long-running dashboard. A directory holding plain
// status.json/trip.json fixture files works too and is served as a single
// repeating observation.
type Player struct {
	files []string
	pos   int

	// fixture pair mode
	statusPath string
	tripPath   string
}

// NewPlayer opens a recording directory for replay.
func NewPlayer(dir string) (*Player, error) {
	files, err := listRecordings(dir)
	if err != nil {
		return nil, err
	}
	if len(files) > 0 {
		return &Player{files: files}, nil
	}

	statusPath := filepath.Join(dir, "status.json")
	tripPath := filepath.Join(dir, "trip.json")
	if _, err := os.Stat(statusPath); err != nil {
		return nil, fmt.Errorf("no recordings or fixtures in %s", dir)
	}
	if _, err := os.Stat(tripPath); err != nil {
		return nil, fmt.Errorf("no recordings or fixtures in %s", dir)
	}

	return &Player{statusPath: statusPath, tripPath: tripPath}, nil
}

// Snapshot serves the next recorded observation. Implements api.SnapshotSource.
func (p *Player) Snapshot(_ context.Context) (*models.Snapshot, error) {
	status, trip, err := p.next()
	if err != nil {
		return nil, err
	}

	var st models.StatusResponse
	if err := json.Unmarshal(status, &st); err != nil {
		return nil, fmt.Errorf("failed to parse recorded status: %w", err)
	}
	var tr models.TripResponse
	if err := json.Unmarshal(trip, &tr); err != nil {
		return nil, fmt.Errorf("failed to parse recorded trip: %w", err)
	}

	return models.BuildSnapshot(&st, &tr), nil
}

func (p *Player) next() (status, trip json.RawMessage, err error) {
	if p.statusPath != "" {
		status, err = os.ReadFile(p.statusPath)
		if err != nil {
			return nil, nil, err
		}
		trip, err = os.ReadFile(p.tripPath)
		if err != nil {
			return nil, nil, err
		}
		return status, trip, nil
	}

	data, err := os.ReadFile(p.files[p.pos])
	if err != nil {
		return nil, nil, err
	}
	p.pos = (p.pos + 1) % len(p.files)

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, nil, fmt.Errorf("invalid recording: %w", err)
	}
	return e.Status, e.Trip, nil
}
