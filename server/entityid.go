package server

import "sync"

// EntityIDGenerator is a shared monotonic counter protected by a single
// mutex, per §5's "no global mutable state except the entity-id counter
// and the internal clock."
type EntityIDGenerator struct {
	mu   sync.Mutex
	next int32
}

// NewEntityIDGenerator starts the counter at 1; 0 is reserved.
func NewEntityIDGenerator() *EntityIDGenerator {
	return &EntityIDGenerator{next: 1}
}

// Next returns a fresh, never-repeated entity id.
func (g *EntityIDGenerator) Next() int32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.next
	g.next++
	return id
}
