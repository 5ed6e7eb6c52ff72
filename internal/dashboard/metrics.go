package dashboard

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/bordblick/bordblick-cli/internal/models"
)

// Data-consistency errors surfaced by the metric computations. They degrade
// a single display field; the dashboard keeps running.
var (
	// ErrNoTotalDistance indicates the trip resource reported a zero route length
	ErrNoTotalDistance = errors.New("total route distance unknown")

	// ErrNoNextStop indicates the announced next stop is not on the route
	ErrNoNextStop = errors.New("next stop not found on route")

	// ErrAmbiguousNextStop indicates more than one stop matches the announced next stop
	ErrAmbiguousNextStop = errors.New("next stop ambiguous")
)

// AverageSpeed returns the arithmetic mean of the speed over every snapshot
// currently retained in the buffer. The effective window grows with buffer
// occupancy until it reaches the configured capacity. Returns false when
// the buffer is empty.
func AverageSpeed(buf *SnapshotBuffer) (float64, bool) {
	if buf.Len() == 0 {
		return 0, false
	}
	var sum float64
	for snap := range buf.Snapshots() {
		sum += snap.Speed
	}
	return sum / float64(buf.Len()), true
}

// Progress describes route completion derived from a single snapshot.
// Distances are kilometers.
type Progress struct {
	TotalKm      int64
	TraveledKm   int64
	RemainingKm  int64
	TraveledPct  float64
	RemainingPct float64
}

// RouteProgress computes traveled/remaining distance and percentages.
// A zero total distance is reported as ErrNoTotalDistance instead of
// letting the division produce NaN or Inf.
func RouteProgress(snap *models.Snapshot) (Progress, error) {
	if snap.TotalDistance == 0 {
		return Progress{}, ErrNoTotalDistance
	}
	traveled := snap.Position
	remaining := snap.TotalDistance - traveled
	return Progress{
		TotalKm:      snap.TotalDistance / 1000,
		TraveledKm:   traveled / 1000,
		RemainingKm:  remaining / 1000,
		TraveledPct:  float64(traveled) / float64(snap.TotalDistance) * 100,
		RemainingPct: float64(remaining) / float64(snap.TotalDistance) * 100,
	}, nil
}

// NextStop locates the unique stop whose EVA matches the route's announced
// next stop. Zero matches or more than one match is a data-consistency
// error, never a silent default.
func NextStop(snap *models.Snapshot) (*models.Stop, error) {
	var found *models.Stop
	for i := range snap.Stops {
		if snap.Stops[i].EVA != snap.NextStopEVA {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: eva %s matches multiple stops", ErrAmbiguousNextStop, snap.NextStopEVA)
		}
		found = &snap.Stops[i]
	}
	if found == nil {
		return nil, fmt.Errorf("%w: eva %s", ErrNoNextStop, snap.NextStopEVA)
	}
	return found, nil
}

// DistanceTo returns the distance in meters from the train's current
// position to the given stop.
func DistanceTo(snap *models.Snapshot, stop *models.Stop) int64 {
	return stop.DistanceFromStart - snap.Position
}

// StopDelay returns the arrival delay of a stop in whole minutes. A stop
// with either timestamp missing reports false ("delay unknown") rather
// than assuming the pair is complete.
func StopDelay(stop *models.Stop) (int, bool) {
	if stop.SchedArr == nil || stop.ActArr == nil {
		return 0, false
	}
	return int(math.Round(stop.ActArr.Sub(*stop.SchedArr).Minutes())), true
}

// Mood is the qualitative delay classification shown next to delay minutes.
type Mood int

const (
	MoodOnTime Mood = iota
	MoodSlight
	MoodModerate
	MoodSevere
	MoodExtreme
)

func (m Mood) String() string {
	switch m {
	case MoodOnTime:
		return "on time"
	case MoodSlight:
		return "slight delay"
	case MoodModerate:
		return "moderate delay"
	case MoodSevere:
		return "severe delay"
	case MoodExtreme:
		return "extreme delay"
	}
	return "unknown"
}

// ClassifyDelay buckets delay minutes into a Mood. The buckets are
// contiguous and cover every integer, open-ended on both tails.
func ClassifyDelay(minutes int) Mood {
	switch {
	case minutes <= 0:
		return MoodOnTime
	case minutes <= 5:
		return MoodSlight
	case minutes <= 15:
		return MoodModerate
	case minutes <= 60:
		return MoodSevere
	default:
		return MoodExtreme
	}
}

// Staleness returns the age of a snapshot relative to now, truncated to
// whole seconds. Display only; it gates nothing.
func Staleness(snap *models.Snapshot, now time.Time) time.Duration {
	return now.Sub(snap.ServerTime).Truncate(time.Second)
}
