package lru_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solindexer/sonar/lru"
)

func TestCache_Eviction(t *testing.T) {
	c := lru.New[string, int](2)

	c.Put("a", 1)
	c.Put("b", 2)

	// touch "a" so "b" is the eviction candidate
	_, ok := c.Get("a")
	assert.True(t, ok)

	c.Put("c", 3)

	_, ok = c.Get("b")
	assert.False(t, ok)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	assert.Equal(t, 2, c.Len())
}

func TestCache_PutOverwrites(t *testing.T) {
	c := lru.New[string, int](2)

	c.Put("a", 1)
	c.Put("a", 7)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, c.Len())
}
