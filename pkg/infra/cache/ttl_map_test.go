package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLMap_SetGet(t *testing.T) {
	m := NewTTLMap(time.Minute)
	m.Set("k", 42)

	v, ok := m.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	m.Delete("k")
	_, ok = m.Get("k")
	assert.False(t, ok)
}

func TestTTLMap_Expiry(t *testing.T) {
	now := time.Now()
	m := NewTTLMap(time.Minute)
	m.now = func() time.Time { return now }
	m.Set("k", "v")

	now = now.Add(59 * time.Second)
	_, ok := m.Get("k")
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok = m.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestTTLMap_Clear(t *testing.T) {
	m := NewTTLMap(time.Minute)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Clear()

	_, ok := m.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestTTLMap_SetIfGeneration(t *testing.T) {
	m := NewTTLMap(time.Minute)

	gen := m.Generation()
	assert.True(t, m.SetIfGeneration(gen, "a", 1))

	stale := m.Generation()
	m.Clear()
	assert.False(t, m.SetIfGeneration(stale, "a", 2))

	_, ok := m.Get("a")
	assert.False(t, ok)
}
