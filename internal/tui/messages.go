package tui

import (
	"time"

	"github.com/bordblick/bordblick-cli/internal/models"
)

// tickMsg is sent every poll interval.
type tickMsg time.Time

// snapshotMsg carries a poll result back to the model. Exactly one of
// snap and err is set.
type snapshotMsg struct {
	snap *models.Snapshot
	err  error
}
