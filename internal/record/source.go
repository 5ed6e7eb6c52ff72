package record

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bordblick/bordblick-cli/internal/api"
	"github.com/bordblick/bordblick-cli/internal/models"
)

// Source wraps a live portal client and persists every polled pair before
// handing the merged snapshot to the dashboard. Recording failures are
// dropped silently; the live view matters more than the archive.
type Source struct {
	client   *api.Client
	recorder *Recorder
}

// NewSource creates a recording snapshot source.
func NewSource(client *api.Client, recorder *Recorder) *Source {
	return &Source{client: client, recorder: recorder}
}

// Snapshot fetches, records, and merges one observation. Implements
// api.SnapshotSource.
func (s *Source) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	status, err := s.client.GetStatusRaw(ctx)
	if err != nil {
		return nil, err
	}
	trip, err := s.client.GetTripRaw(ctx)
	if err != nil {
		return nil, err
	}

	_ = s.recorder.Record(status, trip)

	var st models.StatusResponse
	if err := json.Unmarshal(status, &st); err != nil {
		return nil, fmt.Errorf("failed to parse status response: %w", err)
	}
	var tr models.TripResponse
	if err := json.Unmarshal(trip, &tr); err != nil {
		return nil, fmt.Errorf("failed to parse trip response: %w", err)
	}

	return models.BuildSnapshot(&st, &tr), nil
}
