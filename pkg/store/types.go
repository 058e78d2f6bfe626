package store

import (
	"fmt"
	"strings"

	"github.com/dborchard/tracekv/pkg/y/entry"
)

// Store is the mutable key/value state a workload is replayed against.
// Implementations are not safe for concurrent use.
type Store interface {
	Put(key, val int32)
	Get(key int32) (int32, bool)
	// Range returns every pair with start <= key < end in ascending key order.
	Range(start, end int32) []entry.Pair[int32, int32]
	Delete(key int32) bool

	Len() int
	Name() string
}

type Typ int

const (
	HashMap Typ = iota
	BTree
)

func (t Typ) String() string {
	switch t {
	case HashMap:
		return "hashmap"
	case BTree:
		return "btree"
	default:
		return fmt.Sprintf("Typ(%d)", int(t))
	}
}

func ParseTyp(s string) (Typ, error) {
	switch strings.ToLower(s) {
	case "hashmap", "map":
		return HashMap, nil
	case "btree":
		return BTree, nil
	default:
		return 0, fmt.Errorf("unknown store type %q", s)
	}
}
