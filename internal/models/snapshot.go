package models

import "time"

// Snapshot is one merged observation of the train: scalar status from the
// status resource plus the route from the trip resource. Immutable once
// built; the dashboard history buffer owns stored snapshots exclusively.
type Snapshot struct {
	TrainType   string       `json:"trainType"`
	TrainNumber string       `json:"trainNumber"` // tzn, the rolling-stock designation
	Series      string       `json:"series,omitempty"`
	WagonClass  string       `json:"wagonClass,omitempty"`
	Speed       float64      `json:"speed"` // km/h
	Internet    string       `json:"internet"`
	GPSStatus   string       `json:"gpsStatus,omitempty"`
	Conn        Connectivity `json:"connectivity"`
	Latitude    float64      `json:"lat"`
	Longitude   float64      `json:"lon"`
	ServerTime  time.Time    `json:"serverTime"`

	TripDate      string `json:"tripDate,omitempty"`
	LineNumber    string `json:"lineNumber,omitempty"` // vzn, the timetable train number
	Position      int64  `json:"position"`             // meters from route start
	TotalDistance int64  `json:"totalDistance"`        // meters
	NextStopEVA   string `json:"nextStopEva"`
	FinalStation  string `json:"finalStation,omitempty"`
	Stops         []Stop `json:"stops"`
}

// Connectivity describes the onboard uplink state and its announced change.
type Connectivity struct {
	Current          string `json:"current"`
	Next             string `json:"next,omitempty"`
	RemainingSeconds int64  `json:"remainingSeconds,omitempty"`
}

// Stop is a single station entry along the route.
type Stop struct {
	EVA               string     `json:"eva"`
	Name              string     `json:"name"`
	Code              string     `json:"code,omitempty"`
	Lat               float64    `json:"lat,omitempty"`
	Lon               float64    `json:"lon,omitempty"`
	SchedArr          *time.Time `json:"schedArr,omitempty"`
	ActArr            *time.Time `json:"actArr,omitempty"`
	SchedDep          *time.Time `json:"schedDep,omitempty"`
	ActDep            *time.Time `json:"actDep,omitempty"`
	ScheduledTrack    string     `json:"scheduledTrack,omitempty"`
	ActualTrack       string     `json:"actualTrack,omitempty"`
	Passed            bool       `json:"passed"`
	DistanceFromStart int64      `json:"distanceFromStart"` // meters
}

// EffectiveTrack returns the real-time track if set, otherwise the scheduled one.
func (s *Stop) EffectiveTrack() string {
	if s.ActualTrack != "" {
		return s.ActualTrack
	}
	return s.ScheduledTrack
}

// Origin returns the name of the first stop on the route.
func (s *Snapshot) Origin() (string, bool) {
	if len(s.Stops) == 0 {
		return "", false
	}
	return s.Stops[0].Name, true
}

// Terminus returns the name of the last stop on the route.
func (s *Snapshot) Terminus() (string, bool) {
	if len(s.Stops) == 0 {
		return "", false
	}
	return s.Stops[len(s.Stops)-1].Name, true
}
