package catalog

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces opaque identifiers for books and reviews. The web
// client used wall-clock timestamps; an injected generator keeps ids
// deterministic in tests and collision-free in production.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random UUIDv4 ids.
type UUIDGenerator struct{}

var _ IDGenerator = UUIDGenerator{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator issues "<prefix><n>" ids from a monotonic counter.
// Used in tests where predictable ids matter.
type SequenceGenerator struct {
	prefix string
	next   atomic.Int64
}

var _ IDGenerator = (*SequenceGenerator)(nil)

func NewSequenceGenerator(prefix string, start int64) *SequenceGenerator {
	g := &SequenceGenerator{prefix: prefix}
	g.next.Store(start)
	return g
}

func (g *SequenceGenerator) NewID() string {
	return fmt.Sprintf("%s%d", g.prefix, g.next.Add(1)-1)
}
