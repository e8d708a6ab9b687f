// Package uuid wraps id generation so callers can swap in fixed ids under test.
package uuid

import (
	"sync"

	"github.com/google/uuid"
)

// Generator is an interface for generating UUIDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// StaticGenerator hands out a fixed list of ids in order, repeating the
// last one once the list is exhausted.
type StaticGenerator struct {
	mu  sync.Mutex
	ids []string
	pos int
}

// NewStaticGenerator creates a StaticGenerator over ids
func NewStaticGenerator(ids ...string) *StaticGenerator {
	return &StaticGenerator{ids: ids}
}

// New returns the next id
func (g *StaticGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.ids) == 0 {
		return ""
	}
	if g.pos >= len(g.ids) {
		return g.ids[len(g.ids)-1]
	}
	id := g.ids[g.pos]
	g.pos++
	return id
}
