package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces identifiers for newly created records
type Generator interface {
	NewID() string
}

// Func adapts a plain function to the Generator interface
type Func func() string

// NewID calls f
func (f Func) NewID() string {
	return f()
}

// UUIDGenerator issues random v4 UUIDs
type UUIDGenerator struct{}

// NewUUID returns the default generator used outside of tests
func NewUUID() UUIDGenerator {
	return UUIDGenerator{}
}

// NewID returns a random UUID string
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Sequence issues predictable ids of the form <prefix><n>, starting at 1.
// Safe for concurrent use.
type Sequence struct {
	prefix string
	next   atomic.Int64
}

// NewSequence creates a Sequence with the given prefix
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewID returns the next id in the sequence
func (s *Sequence) NewID() string {
	return fmt.Sprintf("%s%d", s.prefix, s.next.Add(1))
}
