package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCycleEmptyDomain(t *testing.T) {
	_, err := NewCycle(nil)
	require.ErrorIs(t, err, ErrEmptyDomain)

	_, err = NewCycle([]any{})
	require.ErrorIs(t, err, ErrEmptyDomain)
}

func TestCycleOrder(t *testing.T) {
	c, err := NewCycle([]any{"a", "b", "c"})
	require.NoError(t, err)

	want := []any{"a", "b", "c", "a", "b", "c", "a", "b"}
	for i, w := range want {
		assert.Equal(t, w, c.Next(), "draw %d", i)
	}
}

func TestCycleSingleElement(t *testing.T) {
	c, err := NewCycle([]any{"x"})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, "x", c.Next())
	}
}

func TestCycleDomainIsCopied(t *testing.T) {
	domain := []any{1, 2}
	c, err := NewCycle(domain)
	require.NoError(t, err)

	domain[0] = 99
	assert.Equal(t, 1, c.Next())
}

func TestNewSampleEmptyDomain(t *testing.T) {
	_, err := NewSample([]any{})
	require.ErrorIs(t, err, ErrEmptyDomain)
}

func TestSampleSingleElement(t *testing.T) {
	s, err := NewSample([]any{42})
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		assert.Equal(t, 42, s.Next())
	}
}

func TestSampleNoImmediateRepeat(t *testing.T) {
	domain := []any{"a", "b", "c", "d"}
	s, err := NewSample(domain)
	require.NoError(t, err)

	seen := make(map[any]bool)
	prev := s.Next()
	seen[prev] = true
	for i := 0; i < 999; i++ {
		v := s.Next()
		require.NotEqual(t, prev, v, "draw %d repeated the previous value", i)
		seen[v] = true
		prev = v
	}

	// Over 1000 draws every domain element should have appeared.
	for _, d := range domain {
		assert.True(t, seen[d], "element %v never drawn", d)
	}
}

func TestStoreNext(t *testing.T) {
	s := NewStore()

	assert.Equal(t, int64(1), s.Next("user", 1))
	assert.Equal(t, int64(2), s.Next("user", 1))
	assert.Equal(t, int64(3), s.Next("user", 1))

	// Independent counter.
	assert.Equal(t, int64(100), s.Next("order", 100))
	assert.Equal(t, int64(101), s.Next("order", 100))

	assert.Equal(t, int64(4), s.Current("user"))

	s.Reset("user")
	assert.Equal(t, int64(1), s.Next("user", 1))
}
