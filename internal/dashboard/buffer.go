package dashboard

import (
	"iter"

	"github.com/bordblick/bordblick-cli/internal/models"
)

// SnapshotBuffer is a fixed-capacity FIFO history of snapshots, oldest
// first. When full, a push evicts the front element. The buffer is the
// sole owner of its snapshots; capacity is fixed for its lifetime.
type SnapshotBuffer struct {
	entries  []*models.Snapshot
	capacity int
}

// NewSnapshotBuffer creates a buffer holding at most capacity snapshots.
func NewSnapshotBuffer(capacity int) *SnapshotBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &SnapshotBuffer{
		entries:  make([]*models.Snapshot, 0, capacity),
		capacity: capacity,
	}
}

// Push appends a snapshot, evicting the oldest entry when full.
func (b *SnapshotBuffer) Push(snap *models.Snapshot) {
	if len(b.entries) == b.capacity {
		copy(b.entries, b.entries[1:])
		b.entries[len(b.entries)-1] = nil
		b.entries = b.entries[:len(b.entries)-1]
	}
	b.entries = append(b.entries, snap)
}

// Latest returns the most recently pushed snapshot, or false when the
// buffer has never been filled. Rendering must check this before reading.
func (b *SnapshotBuffer) Latest() (*models.Snapshot, bool) {
	if len(b.entries) == 0 {
		return nil, false
	}
	return b.entries[len(b.entries)-1], true
}

// Len returns the number of snapshots currently retained.
func (b *SnapshotBuffer) Len() int {
	return len(b.entries)
}

// Cap returns the fixed capacity.
func (b *SnapshotBuffer) Cap() int {
	return b.capacity
}

// Snapshots iterates the retained snapshots oldest to newest. The sequence
// is restartable and reflects the buffer at iteration time.
func (b *SnapshotBuffer) Snapshots() iter.Seq[*models.Snapshot] {
	return func(yield func(*models.Snapshot) bool) {
		for _, snap := range b.entries {
			if !yield(snap) {
				return
			}
		}
	}
}

// Speeds returns the retained speed series oldest to newest.
func (b *SnapshotBuffer) Speeds() []float64 {
	speeds := make([]float64, 0, len(b.entries))
	for _, snap := range b.entries {
		speeds = append(speeds, snap.Speed)
	}
	return speeds
}
