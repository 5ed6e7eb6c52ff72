package models

// TripResponse represents the raw JSON of the onboard trip resource.
type TripResponse struct {
	Trip   TripData `json:"trip"`
	Active *bool    `json:"active"`
}

// TripData is the trip block of a trip response.
type TripData struct {
	TripDate             string         `json:"tripDate"`
	TrainType            string         `json:"trainType"`
	VZN                  string         `json:"vzn"`
	ActualPosition       int64          `json:"actualPosition"`
	DistanceFromLastStop int64          `json:"distanceFromLastStop"`
	TotalDistance        int64          `json:"totalDistance"`
	StopInfo             TripStopInfo   `json:"stopInfo"`
	Stops                []StopResponse `json:"stops"`
}

// TripStopInfo carries the route-level stop pointers (next/last stop EVAs).
type TripStopInfo struct {
	ScheduledNext     string `json:"scheduledNext"`
	ActualNext        string `json:"actualNext"`
	ActualLast        string `json:"actualLast"`
	ActualLastStarted string `json:"actualLastStarted"`
	FinalStationName  string `json:"finalStationName"`
	FinalStationEvaNr string `json:"finalStationEvaNr"`
}

// StopResponse is one raw stop entry within a trip response.
type StopResponse struct {
	Station struct {
		EvaNr          string `json:"evaNr"`
		Name           string `json:"name"`
		Code           string `json:"code"`
		Geocoordinates struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"geocoordinates"`
	} `json:"station"`
	Timetable struct {
		ScheduledArrivalTime   int64  `json:"scheduledArrivalTime"`
		ActualArrivalTime      int64  `json:"actualArrivalTime"`
		ScheduledDepartureTime int64  `json:"scheduledDepartureTime"`
		ActualDepartureTime    int64  `json:"actualDepartureTime"`
		ArrivalDelay           string `json:"arrivalDelay"`
		DepartureDelay         string `json:"departureDelay"`
	} `json:"timetable"`
	Track struct {
		Scheduled string `json:"scheduled"`
		Actual    string `json:"actual"`
	} `json:"track"`
	Info struct {
		Status            int64  `json:"status"`
		Passed            bool   `json:"passed"`
		PositionStatus    string `json:"positionStatus"`
		Distance          int64  `json:"distance"`
		DistanceFromStart int64  `json:"distanceFromStart"`
	} `json:"info"`
}

// ToStop converts a raw stop entry to the domain Stop.
func (r *StopResponse) ToStop() Stop {
	return Stop{
		EVA:               r.Station.EvaNr,
		Name:              r.Station.Name,
		Code:              r.Station.Code,
		Lat:               r.Station.Geocoordinates.Latitude,
		Lon:               r.Station.Geocoordinates.Longitude,
		SchedArr:          msEpoch(r.Timetable.ScheduledArrivalTime),
		ActArr:            msEpoch(r.Timetable.ActualArrivalTime),
		SchedDep:          msEpoch(r.Timetable.ScheduledDepartureTime),
		ActDep:            msEpoch(r.Timetable.ActualDepartureTime),
		ScheduledTrack:    r.Track.Scheduled,
		ActualTrack:       r.Track.Actual,
		Passed:            r.Info.Passed,
		DistanceFromStart: r.Info.DistanceFromStart,
	}
}

// BuildSnapshot merges a status response and a trip response into one
// immutable Snapshot. Callers must not retain the responses afterwards.
func BuildSnapshot(st *StatusResponse, tr *TripResponse) *Snapshot {
	snap := &Snapshot{
		TrainType:   st.TrainType,
		TrainNumber: st.TZN,
		Series:      st.Series,
		WagonClass:  st.WagonClass,
		Speed:       st.Speed,
		Internet:    st.Internet,
		GPSStatus:   st.GPSStatus,
		Conn: Connectivity{
			Current:          st.Connectivity.CurrentState,
			Next:             st.Connectivity.NextState,
			RemainingSeconds: st.Connectivity.RemainingTimeSeconds,
		},
		Latitude:  st.Latitude,
		Longitude: st.Longitude,

		TripDate:      tr.Trip.TripDate,
		LineNumber:    tr.Trip.VZN,
		Position:      tr.Trip.ActualPosition,
		TotalDistance: tr.Trip.TotalDistance,
		NextStopEVA:   tr.Trip.StopInfo.ScheduledNext,
		FinalStation:  tr.Trip.StopInfo.FinalStationName,
	}

	if t := msEpoch(st.ServerTime); t != nil {
		snap.ServerTime = *t
	}

	snap.Stops = make([]Stop, 0, len(tr.Trip.Stops))
	for i := range tr.Trip.Stops {
		snap.Stops = append(snap.Stops, tr.Trip.Stops[i].ToStop())
	}

	return snap
}
