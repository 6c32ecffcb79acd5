package realtime

import (
	"sync"

	"github.com/google/uuid"
)

// Hub fans out discussion-change signals to live subscribers, keyed by
// petition ID. Signals carry no payload: a subscriber re-reads the full
// comment snapshot on every wake-up, which makes duplicate or reordered
// delivery harmless.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[string]chan struct{}
}

// NewHub creates an empty Hub
func NewHub() *Hub {
	return &Hub{subscribers: make(map[string]map[string]chan struct{})}
}

// Subscribe registers interest in one petition's discussion. The returned
// release func must be called when the subscriber goes away; releasing twice
// is safe. The channel is buffered and publishes coalesce, so a slow
// subscriber sees at least one signal for any burst of changes.
func (h *Hub) Subscribe(petitionID string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	id := uuid.NewString()

	h.mu.Lock()
	if h.subscribers[petitionID] == nil {
		h.subscribers[petitionID] = make(map[string]chan struct{})
	}
	h.subscribers[petitionID][id] = ch
	h.mu.Unlock()

	var once sync.Once
	release := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers[petitionID], id)
			if len(h.subscribers[petitionID]) == 0 {
				delete(h.subscribers, petitionID)
			}
			h.mu.Unlock()
		})
	}
	return ch, release
}

// Publish wakes every subscriber of the petition. Never blocks.
func (h *Hub) Publish(petitionID string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subscribers[petitionID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// SubscriberCount reports how many live subscribers a petition has
func (h *Hub) SubscriberCount(petitionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[petitionID])
}
