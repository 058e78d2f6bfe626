package hashmap

import (
	"github.com/dborchard/tracekv/pkg/store"
	"github.com/dborchard/tracekv/pkg/y/entry"
)

// Map keeps entries in a plain Go map. Range filters the whole map and sorts
// the matches, so it costs O(n + m log m) per call.
type Map struct {
	entries map[int32]int32
}

var _ store.Store = new(Map)

func New() store.Store {
	return &Map{entries: make(map[int32]int32)}
}

func (m *Map) Name() string {
	return "hashmap"
}

func (m *Map) Put(key, val int32) {
	m.entries[key] = val
}

func (m *Map) Get(key int32) (int32, bool) {
	val, ok := m.entries[key]
	return val, ok
}

func (m *Map) Range(start, end int32) []entry.Pair[int32, int32] {
	if start >= end {
		return []entry.Pair[int32, int32]{}
	}

	uniqueKVs := make(map[int32]int32)
	for k, v := range m.entries {
		if start <= k && k < end {
			uniqueKVs[k] = v
		}
	}

	return entry.MapToArray(uniqueKVs)
}

func (m *Map) Delete(key int32) bool {
	if _, ok := m.entries[key]; !ok {
		return false
	}
	delete(m.entries, key)
	return true
}

func (m *Map) Len() int {
	return len(m.entries)
}
