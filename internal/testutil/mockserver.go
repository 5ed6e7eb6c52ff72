package testutil

import (
	"net/http"
	"net/http/httptest"
)

// MockServer wraps httptest.Server and records incoming requests
type MockServer struct {
	*httptest.Server
	Requests []*http.Request
}

// NewMockServer creates a mock HTTP server around the given handler
func NewMockServer(handler http.HandlerFunc) *MockServer {
	ms := &MockServer{}

	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ms.Requests = append(ms.Requests, r)
		handler(w, r)
	}))

	return ms
}

// NewPortalServer creates a mock server that answers the status and trip
// endpoints with the sample fixtures and 404s everything else
func NewPortalServer() *MockServer {
	return NewMockServer(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api1/rs/status":
			_, _ = w.Write([]byte(SampleStatusResponse))
		case "/api1/rs/tripInfo/trip":
			_, _ = w.Write([]byte(SampleTripResponse))
		default:
			http.NotFound(w, r)
		}
	})
}

// LastRequest returns the most recent request, or nil
func (ms *MockServer) LastRequest() *http.Request {
	if len(ms.Requests) == 0 {
		return nil
	}
	return ms.Requests[len(ms.Requests)-1]
}

// RequestCount returns the number of requests received
func (ms *MockServer) RequestCount() int {
	return len(ms.Requests)
}
