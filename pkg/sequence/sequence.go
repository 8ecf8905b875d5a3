package sequence

import (
	"errors"
	mathrand "math/rand/v2"
	"sync"
)

// ErrEmptyDomain is returned when an iterator is constructed over an empty
// domain.
var ErrEmptyDomain = errors.New("sequence: domain must not be empty")

// Iterator is a pull-based producer of values. Implementations are infinite:
// Next never signals exhaustion.
type Iterator interface {
	Next() any
}

// Cycle yields domain elements in fixed order, wrapping to the start after
// the last element. It is restartable only by constructing a new instance.
type Cycle struct {
	domain []any
	cursor int
	mu     sync.Mutex
}

// NewCycle creates a Cycle over the given domain.
// Returns ErrEmptyDomain if the domain is empty.
func NewCycle(domain []any) (*Cycle, error) {
	if len(domain) == 0 {
		return nil, ErrEmptyDomain
	}
	d := make([]any, len(domain))
	copy(d, domain)
	return &Cycle{domain: d}, nil
}

// Next returns the next element in order, wrapping around indefinitely.
func (c *Cycle) Next() any {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := c.domain[c.cursor]
	c.cursor = (c.cursor + 1) % len(c.domain)
	return v
}

// Sample yields a uniformly chosen domain element on each draw such that it
// never equals the immediately preceding draw. A single-element domain yields
// that element forever.
type Sample struct {
	domain  []any
	last    int
	hasLast bool
	rng     *mathrand.Rand
	mu      sync.Mutex
}

// NewSample creates a Sample over the given domain using the shared
// math/rand source. Returns ErrEmptyDomain if the domain is empty.
func NewSample(domain []any) (*Sample, error) {
	return NewSampleWithRand(domain, nil)
}

// NewSampleWithRand creates a Sample backed by the provided RNG.
// A nil rng falls back to the shared math/rand source.
func NewSampleWithRand(domain []any, rng *mathrand.Rand) (*Sample, error) {
	if len(domain) == 0 {
		return nil, ErrEmptyDomain
	}
	d := make([]any, len(domain))
	copy(d, domain)
	return &Sample{domain: d, rng: rng}, nil
}

// Next returns a random element, never equal to the previous one for domains
// larger than one element.
func (s *Sample) Next() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.domain) == 1 {
		return s.domain[0]
	}

	var i int
	if s.hasLast {
		// Draw from the domain minus the previous index.
		i = s.intN(len(s.domain) - 1)
		if i >= s.last {
			i++
		}
	} else {
		i = s.intN(len(s.domain))
	}
	s.last = i
	s.hasLast = true
	return s.domain[i]
}

func (s *Sample) intN(n int) int {
	if s.rng != nil {
		return s.rng.IntN(n)
	}
	return mathrand.IntN(n)
}
