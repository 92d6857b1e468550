package requestlog

import (
	"context"
	"sync"
	"time"

	"github.com/vedicworks/muhurat-api/internal/domain/audit"
)

const defaultCapacity = 1000

// MemoryLog keeps the most recent entries in a bounded in-process buffer.
type MemoryLog struct {
	mu       sync.Mutex
	entries  []audit.Entry
	capacity int
	nextID   int64
}

// NewMemoryLog constructs an in-memory audit log.
func NewMemoryLog(capacity int) *MemoryLog {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &MemoryLog{
		entries:  make([]audit.Entry, 0, capacity),
		capacity: capacity,
	}
}

// Record implements audit.Log. The oldest entry is dropped at capacity.
func (l *MemoryLog) Record(_ context.Context, entry audit.Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	entry.ID = l.nextID
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if len(l.entries) == l.capacity {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:l.capacity-1]
	}
	l.entries = append(l.entries, entry)
	return nil
}

// Recent returns up to limit entries, newest first.
func (l *MemoryLog) Recent(_ context.Context, limit int) ([]audit.Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limit <= 0 || limit > len(l.entries) {
		limit = len(l.entries)
	}
	out := make([]audit.Entry, 0, limit)
	for i := len(l.entries) - 1; i >= len(l.entries)-limit; i-- {
		out = append(out, l.entries[i])
	}
	return out, nil
}

var _ audit.Log = (*MemoryLog)(nil)
