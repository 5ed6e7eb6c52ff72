package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bordblick/bordblick-cli/internal/api"
)

const apiTimeout = 5 * time.Second

// tick returns a tea.Cmd that fires after the poll interval.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchSnapshot returns a tea.Cmd that polls the snapshot source once.
func fetchSnapshot(source api.SnapshotSource) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		snap, err := source.Snapshot(ctx)
		return snapshotMsg{snap: snap, err: err}
	}
}
