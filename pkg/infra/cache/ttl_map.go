package cache

import (
	"sync"
	"time"
)

type ttlEntry struct {
	value     interface{}
	expiresAt time.Time
}

// TTLMap is the in-process layer in front of Redis. Entries expire lazily
// on read. Clear bumps a generation counter so a load that started before an
// invalidation cannot write stale data back with SetIfGeneration.
type TTLMap struct {
	mu         sync.RWMutex
	data       map[string]ttlEntry
	ttl        time.Duration
	generation uint64
	now        func() time.Time
}

func NewTTLMap(ttl time.Duration) *TTLMap {
	return &TTLMap{
		data: make(map[string]ttlEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (m *TTLMap) Get(key string) (interface{}, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if m.now().Before(entry.expiresAt) {
		return entry.value, true
	}

	m.mu.Lock()
	if current, ok := m.data[key]; ok && !m.now().Before(current.expiresAt) {
		delete(m.data, key)
	}
	m.mu.Unlock()
	return nil, false
}

func (m *TTLMap) Set(key string, value interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.set(key, value)
}

// Generation identifies the current contents; it changes on every Clear.
func (m *TTLMap) Generation() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.generation
}

// SetIfGeneration stores value only if the map was not cleared since gen
// was read. It reports whether the value was stored.
func (m *TTLMap) SetIfGeneration(gen uint64, key string, value interface{}) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.generation != gen {
		return false
	}
	m.set(key, value)
	return true
}

func (m *TTLMap) set(key string, value interface{}) {
	m.data[key] = ttlEntry{
		value:     value,
		expiresAt: m.now().Add(m.ttl),
	}
}

func (m *TTLMap) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

func (m *TTLMap) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]ttlEntry)
	m.generation++
}

// Len counts stored entries, expired ones included until they are read.
func (m *TTLMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
