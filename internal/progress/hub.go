package progress

import "sync"

const subscriberBuffer = 16

// Hub fans logged attempts out to live subscribers (the server's websocket
// feed). Publishing never blocks: a subscriber that falls behind misses
// events rather than stalling the write path.
type Hub struct {
	mu   sync.Mutex
	subs map[chan Attempt]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan Attempt]struct{})}
}

// Subscribe registers a listener. The returned cancel func must be called
// when the listener goes away; it closes the channel.
func (h *Hub) Subscribe() (<-chan Attempt, func()) {
	ch := make(chan Attempt, subscriberBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers an attempt to every subscriber with room in its buffer.
func (h *Hub) Publish(a Attempt) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- a:
		default:
		}
	}
}
