package tui

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bordblick/bordblick-cli/internal/dashboard"
	"github.com/bordblick/bordblick-cli/internal/models"
	"github.com/bordblick/bordblick-cli/internal/testutil"
)

// fakeSource serves a fixed snapshot or error.
type fakeSource struct {
	snap *models.Snapshot
	err  error
}

func (f *fakeSource) Snapshot(_ context.Context) (*models.Snapshot, error) {
	return f.snap, f.err
}

func sampleSnapshot(t *testing.T) *models.Snapshot {
	t.Helper()
	var status models.StatusResponse
	if err := json.Unmarshal([]byte(testutil.SampleStatusResponse), &status); err != nil {
		t.Fatalf("failed to parse status fixture: %v", err)
	}
	var trip models.TripResponse
	if err := json.Unmarshal([]byte(testutil.SampleTripResponse), &trip); err != nil {
		t.Fatalf("failed to parse trip fixture: %v", err)
	}
	return models.BuildSnapshot(&status, &trip)
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return New(&fakeSource{snap: sampleSnapshot(t)}, Options{})
}

// ingest pushes a snapshot message through Update.
func ingest(t *testing.T, m Model, snap *models.Snapshot) Model {
	t.Helper()
	updated, _ := m.Update(snapshotMsg{snap: snap})
	return updated.(Model)
}

func keyPress(t *testing.T, m Model, key string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestNew_Defaults(t *testing.T) {
	m := newTestModel(t)

	testutil.AssertTrue(t, m.source != nil)
	testutil.AssertEqual(t, m.interval, time.Second)
	testutil.AssertEqual(t, m.buffer.Cap(), 60)
	testutil.AssertEqual(t, m.panel, dashboard.PanelBasic)
	testutil.AssertEqual(t, m.cursor.Index, 0)
	testutil.AssertFalse(t, m.cursor.Detail)
}

func TestNew_Options(t *testing.T) {
	m := New(&fakeSource{}, Options{Interval: 5 * time.Second, History: 10})

	testutil.AssertEqual(t, m.interval, 5*time.Second)
	testutil.AssertEqual(t, m.buffer.Cap(), 10)
}

func TestModel_Init(t *testing.T) {
	m := newTestModel(t)

	testutil.AssertTrue(t, m.Init() != nil)
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	testutil.AssertEqual(t, m.width, 120)
	testutil.AssertEqual(t, m.height, 40)
}

func TestUpdate_IngestsSnapshot(t *testing.T) {
	m := newTestModel(t)

	m = ingest(t, m, sampleSnapshot(t))

	testutil.AssertEqual(t, m.buffer.Len(), 1)
	testutil.AssertNil(t, m.lastErr)

	snap, ok := m.buffer.Latest()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, snap.LineNumber, "513")
}

func TestUpdate_FetchErrorKeepsLastSnapshot(t *testing.T) {
	m := newTestModel(t)
	m = ingest(t, m, sampleSnapshot(t))

	updated, _ := m.Update(snapshotMsg{err: errors.New("connection refused")})
	m = updated.(Model)

	// The last good snapshot stays; only the notice changes
	testutil.AssertEqual(t, m.buffer.Len(), 1)
	testutil.AssertError(t, m.lastErr)
}

func TestUpdate_RecoveryClearsStaleNotice(t *testing.T) {
	m := newTestModel(t)
	m = ingest(t, m, sampleSnapshot(t))

	updated, _ := m.Update(snapshotMsg{err: errors.New("connection refused")})
	m = updated.(Model)
	testutil.AssertError(t, m.lastErr)

	m = ingest(t, m, sampleSnapshot(t))
	testutil.AssertNil(t, m.lastErr)
	testutil.AssertEqual(t, m.buffer.Len(), 2)
}

func TestUpdate_ReclampsCursorOnRouteChange(t *testing.T) {
	m := newTestModel(t)
	m = ingest(t, m, sampleSnapshot(t))

	// Select the last of three stops in detail mode
	m.panel = dashboard.PanelTrip
	m.cursor.Detail = true
	m.cursor.Index = 2

	// Next poll returns a shorter route
	short := sampleSnapshot(t)
	short.Stops = short.Stops[:1]
	m = ingest(t, m, short)

	testutil.AssertEqual(t, m.cursor.Index, 0)
}

func TestUpdate_TickSchedulesFetch(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tickMsg(time.Now()))
	testutil.AssertTrue(t, cmd != nil)
}

func TestKeys_Quit(t *testing.T) {
	m := newTestModel(t)

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("key %s should quit", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %s should produce a quit message", key)
		}
	}
}

func TestKeys_TabCyclesPanels(t *testing.T) {
	m := newTestModel(t)

	want := []dashboard.Panel{
		dashboard.PanelStatus,
		dashboard.PanelSpeed,
		dashboard.PanelTrip,
		dashboard.PanelBasic,
	}
	for _, p := range want {
		m = keyPress(t, m, "tab")
		testutil.AssertEqual(t, m.panel, p)
	}
}

func TestKeys_ShiftTabCyclesBackwards(t *testing.T) {
	m := newTestModel(t)

	m = keyPress(t, m, "shift+tab")
	testutil.AssertEqual(t, m.panel, dashboard.PanelTrip)

	m = keyPress(t, m, "shift+tab")
	testutil.AssertEqual(t, m.panel, dashboard.PanelSpeed)
}

func TestKeys_EnterTogglesDetailOnlyOnTripPanel(t *testing.T) {
	m := newTestModel(t)
	m = ingest(t, m, sampleSnapshot(t))

	// Not on the trip panel: no effect
	m = keyPress(t, m, "enter")
	testutil.AssertFalse(t, m.cursor.Detail)

	m.panel = dashboard.PanelTrip
	m = keyPress(t, m, "enter")
	testutil.AssertTrue(t, m.cursor.Detail)

	m = keyPress(t, m, "enter")
	testutil.AssertFalse(t, m.cursor.Detail)
}

func TestKeys_StopNavigationRequiresDetail(t *testing.T) {
	m := newTestModel(t)
	m = ingest(t, m, sampleSnapshot(t))
	m.panel = dashboard.PanelTrip

	// Collapsed: j does nothing
	m = keyPress(t, m, "j")
	testutil.AssertEqual(t, m.cursor.Index, 0)

	m = keyPress(t, m, "enter")
	m = keyPress(t, m, "j")
	testutil.AssertEqual(t, m.cursor.Index, 1)

	m = keyPress(t, m, "down")
	testutil.AssertEqual(t, m.cursor.Index, 2)

	// Saturates at the last stop
	m = keyPress(t, m, "j")
	testutil.AssertEqual(t, m.cursor.Index, 2)

	m = keyPress(t, m, "k")
	m = keyPress(t, m, "up")
	testutil.AssertEqual(t, m.cursor.Index, 0)

	// Saturates at the first stop
	m = keyPress(t, m, "k")
	testutil.AssertEqual(t, m.cursor.Index, 0)
}

func TestKeys_ManualRefresh(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	testutil.AssertTrue(t, cmd != nil)
}
