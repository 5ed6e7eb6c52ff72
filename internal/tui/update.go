package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bordblick/bordblick-cli/internal/dashboard"
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tea.Batch(tick(m.interval), fetchSnapshot(m.source))

	case snapshotMsg:
		return m.handleSnapshot(msg)

	case spinner.TickMsg:
		if m.buffer.Len() > 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleSnapshot ingests one poll result. A failed poll keeps the last
// good snapshot on screen and only records the error for the stale notice.
func (m Model) handleSnapshot(msg snapshotMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.lastErr = msg.err
		return m, nil
	}

	m.lastErr = nil
	m.lastUpdate = time.Now()
	m.buffer.Push(msg.snap)

	// The route can change shape between polls
	m.cursor.Reclamp(len(msg.snap.Stops))

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.panel = m.panel.Next()
		return m, nil

	case "shift+tab":
		m.panel = m.panel.Prev()
		return m, nil

	case "enter":
		if m.panel == dashboard.PanelTrip {
			m.cursor.ToggleDetail()
		}
		return m, nil

	case "j", "down":
		if m.panel == dashboard.PanelTrip && m.cursor.DetailAvailable(m.stopCount()) {
			m.cursor.MoveDown(m.stopCount())
		}
		return m, nil

	case "k", "up":
		if m.panel == dashboard.PanelTrip && m.cursor.DetailAvailable(m.stopCount()) {
			m.cursor.MoveUp()
		}
		return m, nil

	case "r":
		// Manual refresh between ticks
		return m, fetchSnapshot(m.source)
	}

	return m, nil
}
