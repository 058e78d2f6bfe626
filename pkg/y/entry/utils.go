package entry

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// MapToArray returns the map's entries ordered by ascending key.
func MapToArray[K constraints.Ordered, V any](uniqueKVs map[K]V) []Pair[K, V] {
	// 1. Sorted key set
	keys := maps.Keys(uniqueKVs)
	slices.Sort(keys)

	// 2. Map -> Array
	result := make([]Pair[K, V], 0, len(keys))
	for _, k := range keys {
		result = append(result, Pair[K, V]{Key: k, Val: uniqueKVs[k]})
	}
	return result
}
