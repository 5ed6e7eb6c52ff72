package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/bordblick/bordblick-cli/internal/testutil"
)

func TestGetStatus(t *testing.T) {
	server := testutil.NewPortalServer()
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	status, err := client.GetStatus(context.Background())
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, status.TrainType, "ICE")
	testutil.AssertEqual(t, status.TZN, "Tz 9001")
	testutil.AssertFloatEqual(t, status.Speed, 113.0, 0.001)
	testutil.AssertEqual(t, status.Internet, "HIGH")
	testutil.AssertEqual(t, status.Connectivity.RemainingTimeSeconds, int64(900))
}

func TestGetTrip(t *testing.T) {
	server := testutil.NewPortalServer()
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	trip, err := client.GetTrip(context.Background())
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, trip.Trip.VZN, "513")
	testutil.AssertEqual(t, trip.Trip.TotalDistance, int64(746000))
	testutil.AssertLen(t, trip.Trip.Stops, 3)
	testutil.AssertEqual(t, trip.Trip.StopInfo.ScheduledNext, "8000150")
}

func TestSnapshotMergesBothResources(t *testing.T) {
	server := testutil.NewPortalServer()
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	snap, err := client.Snapshot(context.Background())
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, snap.TrainNumber, "Tz 9001")
	testutil.AssertEqual(t, snap.LineNumber, "513")
	testutil.AssertEqual(t, snap.NextStopEVA, "8000150")
	testutil.AssertLen(t, snap.Stops, 3)
	testutil.AssertEqual(t, server.RequestCount(), 2)
}

func TestRequestHeaders(t *testing.T) {
	server := testutil.NewPortalServer()
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithUserAgent("bordblick-test"))

	_, err := client.GetStatusRaw(context.Background())
	testutil.AssertNil(t, err)

	req := server.LastRequest()
	testutil.AssertEqual(t, req.Header.Get("User-Agent"), "bordblick-test")
	testutil.AssertContains(t, req.Header.Get("Accept"), "application/json")
}

func TestNotFound(t *testing.T) {
	server := testutil.NewMockServer(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := client.GetStatus(context.Background())
	testutil.AssertError(t, err)
	testutil.AssertTrue(t, errors.Is(err, ErrNotFound))

	var apiErr *APIError
	testutil.AssertTrue(t, errors.As(err, &apiErr))
	testutil.AssertEqual(t, apiErr.StatusCode, 404)
	testutil.AssertEqual(t, apiErr.Endpoint, EndpointStatus)
}

func TestServerError(t *testing.T) {
	server := testutil.NewMockServer(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	})
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := client.GetTrip(context.Background())
	testutil.AssertError(t, err)
	testutil.AssertTrue(t, errors.Is(err, ErrServerError))
}

func TestInvalidJSON(t *testing.T) {
	server := testutil.NewMockServer(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := client.GetStatus(context.Background())
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "failed to parse status response")
}

func TestContextCancellation(t *testing.T) {
	server := testutil.NewMockServer(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.GetStatus(ctx)
	testutil.AssertError(t, err)
	testutil.AssertTrue(t, errors.Is(err, ErrTimeout))
}

func TestUnreachablePortal(t *testing.T) {
	// a closed server simulates being off the onboard network
	server := testutil.NewPortalServer()
	server.Close()

	client := NewClient(WithBaseURL(server.URL), WithTimeout(time.Second))

	_, err := client.GetStatus(context.Background())
	testutil.AssertError(t, err)
	testutil.AssertTrue(t, errors.Is(err, ErrNotOnTrain))
}
