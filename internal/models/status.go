package models

import "time"

// StatusResponse represents the raw JSON of the onboard status resource.
// Timestamps are millisecond epochs.
type StatusResponse struct {
	Connection   bool                 `json:"connection"`
	ServiceLevel string               `json:"serviceLevel"`
	GPSStatus    string               `json:"gpsStatus"`
	Internet     string               `json:"internet"`
	Latitude     float64              `json:"latitude"`
	Longitude    float64              `json:"longitude"`
	Series       string               `json:"series"`
	ServerTime   int64                `json:"serverTime"`
	Speed        float64              `json:"speed"`
	TrainType    string               `json:"trainType"`
	TZN          string               `json:"tzn"`
	WagonClass   string               `json:"wagonClass"`
	Connectivity ConnectivityResponse `json:"connectivity"`
	BAPInstalled bool                 `json:"bapInstalled"`
}

// ConnectivityResponse is the raw connectivity block inside a status response.
type ConnectivityResponse struct {
	CurrentState         string `json:"currentState"`
	NextState            string `json:"nextState"`
	RemainingTimeSeconds int64  `json:"remainingTimeSeconds"`
}

// msEpoch converts a millisecond epoch to a time, nil for the zero value
// the API uses when a timestamp is absent.
func msEpoch(ms int64) *time.Time {
	if ms == 0 {
		return nil
	}
	t := time.UnixMilli(ms)
	return &t
}
