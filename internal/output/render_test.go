package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/bordblick/bordblick-cli/internal/models"
	"github.com/bordblick/bordblick-cli/internal/testutil"
)

func sampleStatus(t *testing.T) *models.StatusResponse {
	t.Helper()
	var status models.StatusResponse
	if err := json.Unmarshal([]byte(testutil.SampleStatusResponse), &status); err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return &status
}

func sampleTrip(t *testing.T) *models.TripResponse {
	t.Helper()
	var trip models.TripResponse
	if err := json.Unmarshal([]byte(testutil.SampleTripResponse), &trip); err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return &trip
}

func TestRenderStatus(t *testing.T) {
	var buf bytes.Buffer
	opts := RenderOptions{Colors: NewColors(ColorNever)}

	RenderStatus(&buf, sampleStatus(t), opts)

	output := buf.String()
	testutil.AssertContains(t, output, "ICE Tz 9001")
	testutil.AssertContains(t, output, "113 km/h")
	testutil.AssertContains(t, output, "Series: 407")
	testutil.AssertContains(t, output, "Internet: HIGH")
	testutil.AssertContains(t, output, "WEAK in 15m0s")
	testutil.AssertContains(t, output, "GPS: VALID")
	testutil.AssertContains(t, output, "50.5710, 8.6680")
}

func TestRenderTrip(t *testing.T) {
	var buf bytes.Buffer
	opts := RenderOptions{Colors: NewColors(ColorNever)}

	RenderTrip(&buf, sampleTrip(t), opts)

	output := buf.String()
	testutil.AssertContains(t, output, "ICE 513 to Hamburg Hbf")
	testutil.AssertContains(t, output, "Frankfurt(Main)Hbf")
	testutil.AssertContains(t, output, "Fulda")
	testutil.AssertContains(t, output, "Hamburg Hbf")
	// Fulda is the next stop and runs two minutes late on track 6
	testutil.AssertContains(t, output, "<- next")
	testutil.AssertContains(t, output, "+2")
	testutil.AssertContains(t, output, "Pl.6")
}

func TestRenderTrip_Empty(t *testing.T) {
	var buf bytes.Buffer
	opts := RenderOptions{Colors: NewColors(ColorNever)}

	RenderTrip(&buf, &models.TripResponse{}, opts)

	testutil.AssertContains(t, buf.String(), "No trip information available")
}

func TestRenderTrip_NilColorsDefaultsToNever(t *testing.T) {
	var buf bytes.Buffer

	RenderTrip(&buf, sampleTrip(t), RenderOptions{})

	testutil.AssertNotContains(t, buf.String(), "\033[")
}
