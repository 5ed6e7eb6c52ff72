package record

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bordblick/bordblick-cli/internal/testutil"
)

func TestRecorderWritesNumberedFiles(t *testing.T) {
	dir := t.TempDir()

	rec, err := NewRecorder(dir)
	testutil.AssertNil(t, err)

	status := json.RawMessage(testutil.SampleStatusResponse)
	trip := json.RawMessage(testutil.SampleTripResponse)

	testutil.AssertNil(t, rec.Record(status, trip))
	testutil.AssertNil(t, rec.Record(status, trip))

	files, err := listRecordings(dir)
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, files, 2)
	testutil.AssertEqual(t, filepath.Base(files[0]), "rec-000000.json")
	testutil.AssertEqual(t, filepath.Base(files[1]), "rec-000001.json")
}

func TestRecorderSecondSessionKeepsEarlierRide(t *testing.T) {
	dir := t.TempDir()

	rec, err := NewRecorder(dir)
	testutil.AssertNil(t, err)
	testutil.AssertNil(t, rec.Record(json.RawMessage(`{"ride": 1}`), nil))

	// a later session reusing the same directory must not overwrite
	rec, err = NewRecorder(dir)
	testutil.AssertNil(t, err)
	testutil.AssertNil(t, rec.Record(json.RawMessage(`{"ride": 2}`), nil))

	files, err := listRecordings(dir)
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, files, 2)

	data, err := os.ReadFile(files[0])
	testutil.AssertNil(t, err)

	var e entry
	testutil.AssertNil(t, json.Unmarshal(data, &e))
	testutil.AssertEqual(t, string(e.Status), `{"ride": 1}`)
}

func TestRecorderCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "recordings")

	_, err := NewRecorder(dir)
	testutil.AssertNil(t, err)

	info, err := os.Stat(dir)
	testutil.AssertNil(t, err)
	testutil.AssertTrue(t, info.IsDir())
}

func TestRecordReplayRoundTrip(t *testing.T) {
	dir := t.TempDir()

	rec, err := NewRecorder(dir)
	testutil.AssertNil(t, err)

	status := json.RawMessage(testutil.SampleStatusResponse)
	trip := json.RawMessage(testutil.SampleTripResponse)
	testutil.AssertNil(t, rec.Record(status, trip))

	player, err := NewPlayer(dir)
	testutil.AssertNil(t, err)

	snap, err := player.Snapshot(context.Background())
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, snap.TrainType, "ICE")
	testutil.AssertEqual(t, snap.LineNumber, "513")
	testutil.AssertFloatEqual(t, snap.Speed, 113.0, 0.001)
	testutil.AssertLen(t, snap.Stops, 3)
}

func TestPlayerWrapsAround(t *testing.T) {
	dir := t.TempDir()

	rec, err := NewRecorder(dir)
	testutil.AssertNil(t, err)

	// two recordings with distinct speeds
	first := json.RawMessage(`{"speed": 100.0, "trainType": "ICE", "serverTime": 1700000000000}`)
	second := json.RawMessage(`{"speed": 200.0, "trainType": "ICE", "serverTime": 1700000001000}`)
	trip := json.RawMessage(testutil.SampleTripResponse)
	testutil.AssertNil(t, rec.Record(first, trip))
	testutil.AssertNil(t, rec.Record(second, trip))

	player, err := NewPlayer(dir)
	testutil.AssertNil(t, err)

	wantSpeeds := []float64{100, 200, 100, 200, 100}
	for i, want := range wantSpeeds {
		snap, err := player.Snapshot(context.Background())
		testutil.AssertNil(t, err)
		if snap.Speed != want {
			t.Errorf("snapshot %d: got speed %v, want %v", i, snap.Speed, want)
		}
	}
}

func TestPlayerFixturePairMode(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "status.json"), testutil.SampleStatusResponse)
	writeFile(t, filepath.Join(dir, "trip.json"), testutil.SampleTripResponse)

	player, err := NewPlayer(dir)
	testutil.AssertNil(t, err)

	// fixture pair repeats forever
	for i := 0; i < 3; i++ {
		snap, err := player.Snapshot(context.Background())
		testutil.AssertNil(t, err)
		testutil.AssertEqual(t, snap.TrainNumber, "Tz 9001")
	}
}

func TestPlayerEmptyDir(t *testing.T) {
	_, err := NewPlayer(t.TempDir())
	testutil.AssertError(t, err)
}

func TestPlayerInvalidRecording(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "rec-000000.json"), "not json")

	player, err := NewPlayer(dir)
	testutil.AssertNil(t, err)

	_, err = player.Snapshot(context.Background())
	testutil.AssertError(t, err)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
