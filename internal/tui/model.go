package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bordblick/bordblick-cli/internal/api"
	"github.com/bordblick/bordblick-cli/internal/dashboard"
)

const (
	defaultInterval = time.Second
	defaultHistory  = 60
)

// Options configures the dashboard.
type Options struct {
	// Interval between polls. Defaults to one second.
	Interval time.Duration

	// History is the number of snapshots kept for the speed graph and
	// moving average. Defaults to 60.
	History int
}

// Model is the root Bubble Tea model for the dashboard.
type Model struct {
	source   api.SnapshotSource
	interval time.Duration

	width  int
	height int

	buffer *dashboard.SnapshotBuffer
	panel  dashboard.Panel
	cursor dashboard.RouteCursor

	// spinner shown until the first snapshot arrives
	spinner spinner.Model

	// lastErr holds the most recent poll failure. The last good snapshot
	// stays on screen; the status bar shows a stale notice.
	lastErr    error
	lastUpdate time.Time
}

// New creates a new dashboard model polling the given source.
func New(source api.SnapshotSource, opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.History < 1 {
		opts.History = defaultHistory
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styleLoading

	return Model{
		source:   source,
		interval: opts.Interval,
		buffer:   dashboard.NewSnapshotBuffer(opts.History),
		spinner:  sp,
	}
}

// Init starts the poll loop and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchSnapshot(m.source), tick(m.interval))
}

// stopCount returns the stop count of the latest snapshot.
func (m Model) stopCount() int {
	snap, ok := m.buffer.Latest()
	if !ok {
		return 0
	}
	return len(snap.Stops)
}
