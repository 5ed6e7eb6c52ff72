package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/bordblick/bordblick-cli/internal/dashboard"
	"github.com/bordblick/bordblick-cli/internal/models"
)

// renderTrip renders the route panel: a scrollable stop list with the
// train position marked between the last passed and the next stop.
func (m Model) renderTrip(snap *models.Snapshot, width, height int) string {
	title := "TRIP"
	if snap.FinalStation != "" {
		title += " to " + truncate(snap.FinalStation, width-12)
	}
	titleStr := styleHeader.Render(title)

	if len(snap.Stops) == 0 {
		return titleStr + "\n" + styleMuted.Render(" No route information")
	}

	var b strings.Builder
	b.WriteString(titleStr)
	b.WriteString("\n")

	if progress, err := dashboard.RouteProgress(snap); err == nil {
		b.WriteString(renderProgressBar(progress, width-4))
		b.WriteString("\n")
	}

	detail := m.panel == dashboard.PanelTrip && m.cursor.DetailAvailable(len(snap.Stops))

	maxVisible := height - 4 // title, progress bar, footer
	if detail {
		maxVisible -= 5 // room for the detail block
	}
	if maxVisible < 1 {
		maxVisible = 1
	}

	if !detail && len(snap.Stops) < maxVisible {
		b.WriteString(m.renderProportionalStops(snap, width, maxVisible))
	} else {
		start, end := visibleRange(m.cursor.Index, len(snap.Stops), maxVisible)
		for i := start; i < end; i++ {
			b.WriteString(m.renderStopLine(snap, i, width, detail))
			if i < end-1 {
				b.WriteString("\n")
			}
		}
	}

	if detail {
		b.WriteString("\n")
		b.WriteString(renderStopDetail(snap, &snap.Stops[m.cursor.Index], width))
	}

	b.WriteString("\n")
	b.WriteString(m.renderTripFooter(snap))

	return b.String()
}

// renderProportionalStops lays the stops out vertically with spacing
// proportional to the track distance between them, the train position
// marked inside its current segment.
func (m Model) renderProportionalStops(snap *models.Snapshot, width, rows int) string {
	stops := snap.Stops
	extra := rows - len(stops)

	var b strings.Builder
	for i := range stops {
		b.WriteString(m.renderStopLine(snap, i, width, false))
		if i == len(stops)-1 {
			break
		}
		b.WriteString("\n")

		connectors := 0
		gap := stops[i+1].DistanceFromStart - stops[i].DistanceFromStart
		if snap.TotalDistance > 0 && extra > 0 {
			connectors = int(int64(extra) * gap / snap.TotalDistance)
		}

		// Place the train marker inside the segment it is traveling
		markerAt := -1
		if connectors > 0 && gap > 0 && stops[i].Passed && !stops[i+1].Passed {
			frac := float64(snap.Position-stops[i].DistanceFromStart) / float64(gap)
			if frac >= 0 && frac <= 1 {
				markerAt = int(frac * float64(connectors))
				if markerAt >= connectors {
					markerAt = connectors - 1
				}
			}
		}

		for c := 0; c < connectors; c++ {
			if c == markerAt {
				b.WriteString("  " + styleSpeed.Render("┣━▶"))
			} else {
				b.WriteString("  " + styleMuted.Render("┃"))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderTripFooter renders the snapshot age line.
func (m Model) renderTripFooter(snap *models.Snapshot) string {
	age := dashboard.Staleness(snap, time.Now())
	s := fmt.Sprintf("server time %s (%s ago)", snap.ServerTime.Format("15:04:05"), age)
	return styleMuted.Render(s)
}

// renderStopLine renders one stop entry.
func (m Model) renderStopLine(snap *models.Snapshot, i, width int, detail bool) string {
	stop := &snap.Stops[i]

	marker := "○"
	switch {
	case stop.Passed:
		marker = styleMuted.Render("●")
	case stop.EVA == snap.NextStopEVA:
		marker = styleNextStop.Render("◉")
	}

	timeStr := "     "
	ref := stop.SchedArr
	if ref == nil {
		ref = stop.SchedDep
	}
	if ref != nil {
		timeStr = ref.Format("15:04")
	}

	delayStr := "    "
	if d, ok := dashboard.StopDelay(stop); ok {
		delayStr = formatDelay(d)
	}

	name := truncate(stop.Name, width-20)
	switch {
	case stop.Passed:
		name = styleMuted.Render(name)
	case stop.EVA == snap.NextStopEVA:
		name = styleNextStop.Render(name)
	}

	entry := fmt.Sprintf("%s %s %s %s", marker, styleMuted.Render(timeStr), delayStr, name)

	if detail && i == m.cursor.Index {
		return styleSelected.Render(">") + " " + entry
	}
	return "  " + entry
}

// renderStopDetail renders the expanded block for the selected stop.
func renderStopDetail(snap *models.Snapshot, stop *models.Stop, width int) string {
	var b strings.Builder
	b.WriteString(styleMuted.Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n")
	b.WriteString(styleHeader.Render(truncate(stop.Name, width-4)))
	b.WriteString("\n")

	if stop.SchedArr != nil {
		arr := "Arrival: " + stop.SchedArr.Format("15:04")
		if d, ok := dashboard.StopDelay(stop); ok && d > 0 {
			arr += fmt.Sprintf(" (%s, +%d min, %s)", stop.ActArr.Format("15:04"), d, dashboard.ClassifyDelay(d))
		} else if !ok {
			arr += " (delay unknown)"
		}
		b.WriteString(arr + "\n")
	}

	if track := stop.EffectiveTrack(); track != "" {
		line := "Track: " + track
		if stop.ActualTrack != "" && stop.ActualTrack != stop.ScheduledTrack {
			line += styleTrack.Render(fmt.Sprintf(" (changed from %s)", stop.ScheduledTrack))
		}
		b.WriteString(line + "\n")
	}

	if !stop.Passed {
		km := dashboard.DistanceTo(snap, stop) / 1000
		b.WriteString(fmt.Sprintf("Distance: %d km", km))
		if km > 0 && snap.Speed > 0 {
			eta := time.Duration(float64(km)/snap.Speed*3600) * time.Second
			b.WriteString(styleMuted.Render(fmt.Sprintf("  ~%s at current speed", eta.Round(time.Minute))))
		}
	} else {
		b.WriteString(styleMuted.Render("Passed"))
	}

	return b.String()
}

// renderProgressBar renders route completion as a filled bar.
func renderProgressBar(progress dashboard.Progress, width int) string {
	if width < 4 {
		width = 4
	}
	filled := int(progress.TraveledPct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := styleSpeed.Render(strings.Repeat("━", filled)) +
		styleMuted.Render(strings.Repeat("─", width-filled))
	return bar
}
