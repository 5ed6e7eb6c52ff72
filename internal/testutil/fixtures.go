package testutil

// Sample JSON responses mirroring the onboard portal API, for testing

// SampleStatusResponse is a minimal valid status resource payload
const SampleStatusResponse = `{
	"connection": true,
	"serviceLevel": "AVAILABLE_SERVICE",
	"gpsStatus": "VALID",
	"internet": "HIGH",
	"latitude": 50.571,
	"longitude": 8.668,
	"series": "407",
	"serverTime": 1700000000000,
	"speed": 113.0,
	"trainType": "ICE",
	"tzn": "Tz 9001",
	"wagonClass": "SECOND",
	"connectivity": {
		"currentState": "HIGH",
		"nextState": "WEAK",
		"remainingTimeSeconds": 900
	},
	"bapInstalled": false
}`

// SampleTripResponse is a minimal valid trip resource payload with three
// stops: origin (passed), next stop, terminus
const SampleTripResponse = `{
	"trip": {
		"tripDate": "2023-11-14",
		"trainType": "ICE",
		"vzn": "513",
		"actualPosition": 73000,
		"distanceFromLastStop": 12000,
		"totalDistance": 746000,
		"stopInfo": {
			"scheduledNext": "8000150",
			"actualNext": "8000150",
			"actualLast": "8000105",
			"actualLastStarted": "8000105",
			"finalStationName": "Hamburg Hbf",
			"finalStationEvaNr": "8002549"
		},
		"stops": [
			{
				"station": {
					"evaNr": "8000105",
					"name": "Frankfurt(Main)Hbf",
					"code": "FF",
					"geocoordinates": {"latitude": 50.107, "longitude": 8.663}
				},
				"timetable": {
					"scheduledArrivalTime": 0,
					"actualArrivalTime": 0,
					"scheduledDepartureTime": 1699999200000,
					"actualDepartureTime": 1699999260000,
					"arrivalDelay": "",
					"departureDelay": "+1"
				},
				"track": {"scheduled": "7", "actual": "7"},
				"info": {
					"status": 0,
					"passed": true,
					"positionStatus": "departed",
					"distance": 0,
					"distanceFromStart": 0
				}
			},
			{
				"station": {
					"evaNr": "8000150",
					"name": "Fulda",
					"code": "FFU",
					"geocoordinates": {"latitude": 50.554, "longitude": 9.684}
				},
				"timetable": {
					"scheduledArrivalTime": 1700000300000,
					"actualArrivalTime": 1700000420000,
					"scheduledDepartureTime": 1700000480000,
					"actualDepartureTime": 1700000600000,
					"arrivalDelay": "+2",
					"departureDelay": "+2"
				},
				"track": {"scheduled": "4", "actual": "6"},
				"info": {
					"status": 0,
					"passed": false,
					"positionStatus": "future",
					"distance": 21000,
					"distanceFromStart": 94000
				}
			},
			{
				"station": {
					"evaNr": "8002549",
					"name": "Hamburg Hbf",
					"code": "AH",
					"geocoordinates": {"latitude": 53.553, "longitude": 10.006}
				},
				"timetable": {
					"scheduledArrivalTime": 1700003000000,
					"actualArrivalTime": 1700003000000,
					"scheduledDepartureTime": 0,
					"actualDepartureTime": 0,
					"arrivalDelay": "",
					"departureDelay": ""
				},
				"track": {"scheduled": "14", "actual": "14"},
				"info": {
					"status": 0,
					"passed": false,
					"positionStatus": "future",
					"distance": 673000,
					"distanceFromStart": 746000
				}
			}
		]
	},
	"active": true
}`

// SampleEmptyResponse is an empty JSON object
const SampleEmptyResponse = `{}`

// SampleErrorResponse mimics the portal's error payload
const SampleErrorResponse = `{
	"error": {
		"code": "TRIP_NOT_AVAILABLE",
		"message": "Trip information not available"
	}
}`
