package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bordblick/bordblick-cli/internal/dashboard"
	"github.com/bordblick/bordblick-cli/internal/models"
)

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	snap, ok := m.buffer.Latest()
	if !ok {
		return m.renderWaiting()
	}

	statusBar := m.renderStatusBar()
	statusHeight := lipgloss.Height(statusBar)

	panelHeight := m.height - statusHeight
	if panelHeight < 6 {
		panelHeight = 6
	}

	// Layout: Basic | Status on top, Speed | Trip below. The trip panel
	// gets the taller row since it holds the stop list.
	topHeight := panelHeight * 35 / 100
	if topHeight < 5 {
		topHeight = 5
	}
	bottomHeight := panelHeight - topHeight

	leftWidth := m.width/2 - 2
	rightWidth := m.width - leftWidth - 4
	if leftWidth < 20 {
		leftWidth = 20
	}
	if rightWidth < 20 {
		rightWidth = 20
	}

	basic := m.renderPanel(dashboard.PanelBasic, leftWidth, topHeight-2,
		m.renderBasic(snap, leftWidth))
	status := m.renderPanel(dashboard.PanelStatus, rightWidth, topHeight-2,
		m.renderStatus(snap, rightWidth))
	speed := m.renderPanel(dashboard.PanelSpeed, leftWidth, bottomHeight-2,
		m.renderSpeed(snap, leftWidth))
	trip := m.renderPanel(dashboard.PanelTrip, rightWidth, bottomHeight-2,
		m.renderTrip(snap, rightWidth, bottomHeight-2))

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, basic, status)
	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top, speed, trip)

	return lipgloss.JoinVertical(lipgloss.Left, topRow, bottomRow, statusBar)
}

// renderWaiting renders the pre-first-snapshot screen.
func (m Model) renderWaiting() string {
	msg := m.spinner.View() + " Connecting to onboard portal..."
	if m.lastErr != nil {
		msg += "\n" + styleError.Render(m.lastErr.Error())
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}

// renderPanel applies the border box, highlighting the focused panel.
func (m Model) renderPanel(p dashboard.Panel, width, height int, content string) string {
	border := stylePanelNormal
	if m.panel == p {
		border = stylePanelFocused
	}
	return border.Width(width).Height(height).Render(content)
}

// renderBasic renders the train identity panel.
func (m Model) renderBasic(snap *models.Snapshot, width int) string {
	var b strings.Builder
	b.WriteString(styleHeader.Render(strings.TrimSpace(snap.TrainType + " " + snap.LineNumber)))
	b.WriteString("\n\n")

	if origin, ok := snap.Origin(); ok {
		terminus := snap.FinalStation
		if terminus == "" {
			terminus, _ = snap.Terminus()
		}
		b.WriteString(fmt.Sprintf("%s %s\n", styleMuted.Render("Route:"),
			truncate(origin+" -> "+terminus, width-10)))
	}
	if snap.TrainNumber != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", styleMuted.Render("Unit:"), snap.TrainNumber))
	}
	if snap.Series != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", styleMuted.Render("Series:"), snap.Series))
	}
	if snap.TripDate != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", styleMuted.Render("Date:"), snap.TripDate))
	}
	b.WriteString(fmt.Sprintf("%s %s", styleMuted.Render("Class:"), snap.WagonClass))

	return b.String()
}

// renderStatus renders the live metrics panel.
func (m Model) renderStatus(snap *models.Snapshot, width int) string {
	var b strings.Builder
	b.WriteString(styleHeader.Render("STATUS"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s\n", styleMuted.Render("Speed:"),
		styleSpeed.Render(fmt.Sprintf("%.0f km/h", snap.Speed))))

	if avg, ok := dashboard.AverageSpeed(m.buffer); ok {
		b.WriteString(fmt.Sprintf("%s %.0f km/h\n", styleMuted.Render("Average:"), avg))
	}

	if progress, err := dashboard.RouteProgress(snap); err == nil {
		b.WriteString(fmt.Sprintf("%s %.1f%% (%d of %d km)\n",
			styleMuted.Render("Progress:"),
			progress.TraveledPct, progress.TraveledKm, progress.TotalKm))
	}

	b.WriteString(m.renderNextStop(snap))

	b.WriteString(fmt.Sprintf("%s %s", styleMuted.Render("Internet:"), snap.Internet))
	if snap.Conn.Next != "" {
		remaining := time.Duration(snap.Conn.RemainingSeconds) * time.Second
		b.WriteString(styleMuted.Render(fmt.Sprintf("  (%s in %s)", snap.Conn.Next, remaining)))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %s\n", styleMuted.Render("GPS:"), snap.GPSStatus))
	b.WriteString(fmt.Sprintf("%s %.4f, %.4f", styleMuted.Render("Position:"),
		snap.Latitude, snap.Longitude))

	return b.String()
}

// renderNextStop renders the next-stop line of the status panel. A data
// inconsistency degrades just this line.
func (m Model) renderNextStop(snap *models.Snapshot) string {
	label := styleMuted.Render("Next stop:")

	stop, err := dashboard.NextStop(snap)
	if err != nil {
		return fmt.Sprintf("%s %s\n", label, styleError.Render("data error"))
	}

	line := fmt.Sprintf("%s %s (%d km)", label,
		styleNextStop.Render(stop.Name), dashboard.DistanceTo(snap, stop)/1000)

	if d, ok := dashboard.StopDelay(stop); ok {
		mood := dashboard.ClassifyDelay(d)
		switch mood {
		case dashboard.MoodOnTime:
			line += "  " + styleOnTime.Render(mood.String())
		case dashboard.MoodSlight:
			line += "  " + styleDelay.Render(fmt.Sprintf("+%d min", d))
		default:
			line += "  " + styleDelayBad.Render(fmt.Sprintf("+%d min, %s", d, mood))
		}
	} else {
		line += "  " + styleMuted.Render("delay unknown")
	}

	return line + "\n"
}

// renderSpeed renders the speed history panel.
func (m Model) renderSpeed(snap *models.Snapshot, width int) string {
	var b strings.Builder
	b.WriteString(styleHeader.Render("SPEED"))
	b.WriteString("\n\n")

	graphWidth := width - 4
	if graphWidth < 10 {
		graphWidth = 10
	}

	speeds := m.buffer.Speeds()
	b.WriteString(styleSpeed.Render(sparkline(speeds, graphWidth)))
	b.WriteString("\n")

	min, max := speedBounds(speeds)
	b.WriteString(styleMuted.Render(fmt.Sprintf("min %.0f  max %.0f  now %.0f km/h",
		min, max, snap.Speed)))

	return b.String()
}

// renderStatusBar renders keyboard hints and the staleness notice.
func (m Model) renderStatusBar() string {
	hints := "Tab:panel  q:quit"
	if m.panel == dashboard.PanelTrip {
		hints = "Tab:panel  Enter:detail  j/k:stops  q:quit"
	}

	bar := " " + hints

	if m.lastErr != nil {
		notice := " STALE "
		if snap, ok := m.buffer.Latest(); ok {
			age := dashboard.Staleness(snap, time.Now())
			notice = fmt.Sprintf(" STALE %s ", age)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top,
			styleStale.Render(notice),
			styleStatusBar.Width(m.width-lipgloss.Width(notice)).Render(bar))
	}

	return styleStatusBar.Width(m.width).Render(bar)
}

// visibleRange calculates the start and end indices for a scrollable list.
func visibleRange(cursor, total, maxVisible int) (int, int) {
	if total <= maxVisible {
		return 0, total
	}

	start := cursor - maxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisible
	if end > total {
		end = total
		start = end - maxVisible
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

// truncate truncates a string to the given width.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-1] + "~"
}
