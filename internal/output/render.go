package output

import (
	"fmt"
	"io"
	"time"

	"github.com/bordblick/bordblick-cli/internal/dashboard"
	"github.com/bordblick/bordblick-cli/internal/models"
)

// RenderOptions configures the one-shot text output
type RenderOptions struct {
	Colors *Colors
}

// RenderStatus renders the vehicle status as formatted text
func RenderStatus(w io.Writer, status *models.StatusResponse, opts RenderOptions) {
	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	train := status.TrainType
	if status.TZN != "" {
		train += " " + status.TZN
	}

	_, _ = fmt.Fprintln(w, c.Header(train))
	_, _ = fmt.Fprintf(w, "  %s %s\n", c.Muted("Speed:"), c.Speed("%.0f km/h", status.Speed))
	if status.Series != "" {
		_, _ = fmt.Fprintf(w, "  %s %s\n", c.Muted("Series:"), status.Series)
	}
	_, _ = fmt.Fprintf(w, "  %s %s\n", c.Muted("Wagon class:"), status.WagonClass)
	_, _ = fmt.Fprintf(w, "  %s %s\n", c.Muted("Internet:"), status.Internet)
	if status.Connectivity.NextState != "" {
		_, _ = fmt.Fprintf(w, "  %s %s in %s\n",
			c.Muted("Next state:"),
			status.Connectivity.NextState,
			(time.Duration(status.Connectivity.RemainingTimeSeconds) * time.Second).String(),
		)
	}
	_, _ = fmt.Fprintf(w, "  %s %s\n", c.Muted("GPS:"), status.GPSStatus)
	_, _ = fmt.Fprintf(w, "  %s %.4f, %.4f\n", c.Muted("Position:"), status.Latitude, status.Longitude)
}

// RenderTrip renders the route as a formatted stop list
func RenderTrip(w io.Writer, trip *models.TripResponse, opts RenderOptions) {
	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	t := &trip.Trip
	if len(t.Stops) == 0 {
		_, _ = fmt.Fprintln(w, "No trip information available.")
		return
	}

	title := t.TrainType
	if t.VZN != "" {
		title += " " + t.VZN
	}
	if t.StopInfo.FinalStationName != "" {
		title += " to " + t.StopInfo.FinalStationName
	}
	_, _ = fmt.Fprintln(w, c.Header(title))
	_, _ = fmt.Fprintln(w)

	for i := range t.Stops {
		stop := t.Stops[i].ToStop()

		// Arrival time (departure for the origin)
		timeStr := "     "
		ref := stop.SchedArr
		if ref == nil {
			ref = stop.SchedDep
		}
		if ref != nil {
			timeStr = ref.Format("15:04")
		}

		delayStr := "    "
		if d, ok := dashboard.StopDelay(&stop); ok {
			delayStr = c.FormatDelay(d)
		}

		name := stop.Name
		switch {
		case stop.Passed:
			name = c.Passed(name)
		case stop.EVA == t.StopInfo.ScheduledNext:
			name = c.NextStop("%s  <- next", name)
		default:
			name = c.Station(name)
		}

		trackStr := "       "
		if track := stop.EffectiveTrack(); track != "" {
			trackStr = c.Track("Pl.%-4s", track)
		}

		_, _ = fmt.Fprintf(w, "  %s %s  %s %s\n", c.Muted(timeStr), delayStr, trackStr, name)
	}
}
