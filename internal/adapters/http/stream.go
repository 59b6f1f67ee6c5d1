package http

import (
	"log/slog"
	"sync"
)

// StreamManager tracks the active SSE subscriptions, keyed by vehicle id.
type StreamManager struct {
	mu          sync.RWMutex
	logger      *slog.Logger
	subscribers map[string]map[chan<- string]struct{}
}

// NewStreamManager creates an empty StreamManager.
func NewStreamManager(logger *slog.Logger) *StreamManager {
	return &StreamManager{
		logger:      logger,
		subscribers: make(map[string]map[chan<- string]struct{}),
	}
}

// Subscribe registers a listener for a vehicle and returns its channel
// plus a cancel function that must be called when the client goes away.
func (sm *StreamManager) Subscribe(vehicleID string) (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	if _, ok := sm.subscribers[vehicleID]; !ok {
		sm.subscribers[vehicleID] = make(map[chan<- string]struct{})
	}
	sm.subscribers[vehicleID][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[vehicleID]; ok {
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, vehicleID)
			}
		}
	}
}

// Broadcast delivers msg to every subscriber of the vehicle. Slow
// clients whose buffer is full miss the message rather than block the
// request path.
func (sm *StreamManager) Broadcast(vehicleID, msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers[vehicleID] {
		select {
		case ch <- msg:
		default:
			sm.logger.Warn("sse client buffer full, dropping message", "vehicle_id", vehicleID)
		}
	}
}
