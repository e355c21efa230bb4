package publisher

import (
	"sync"

	"tradedesk/internal/store/models"
)

// ringBuffer is a bounded FIFO of ledger entries waiting to be published.
// When full, the oldest entry is dropped to make room.
type ringBuffer struct {
	mu       sync.Mutex
	entries  []models.VerificationLogEntry
	head     int // next write position
	tail     int // next read position
	count    int
	capacity int

	dropped int64
}

func newRingBuffer(capacity int) *ringBuffer {
	if capacity <= 0 {
		capacity = defaultBufferSize
	}
	return &ringBuffer{
		entries:  make([]models.VerificationLogEntry, capacity),
		capacity: capacity,
	}
}

func (b *ringBuffer) enqueue(e models.VerificationLogEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.count >= b.capacity {
		b.tail = (b.tail + 1) % b.capacity
		b.count--
		b.dropped++
	}
	b.entries[b.head] = e
	b.head = (b.head + 1) % b.capacity
	b.count++
}

// dequeueBatch removes up to n entries, oldest first.
func (b *ringBuffer) dequeueBatch(n int) []models.VerificationLogEntry {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.count == 0 {
		return nil
	}
	n = min(n, b.count)
	out := make([]models.VerificationLogEntry, n)
	for i := range n {
		out[i] = b.entries[b.tail]
		b.entries[b.tail] = models.VerificationLogEntry{}
		b.tail = (b.tail + 1) % b.capacity
	}
	b.count -= n
	return out
}

func (b *ringBuffer) len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

func (b *ringBuffer) droppedCount() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}
