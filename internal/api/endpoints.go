package api

const (
	// BaseURL is the base URL of the onboard portal, reachable only from
	// the train's WiFi network
	BaseURL = "https://iceportal.de"

	// EndpointStatus returns scalar vehicle state
	// (speed, position, connectivity, server time)
	EndpointStatus = "/api1/rs/status"

	// EndpointTrip returns the route: ordered stops, distances, schedule
	EndpointTrip = "/api1/rs/tripInfo/trip"
)
