package btree

import (
	"github.com/dborchard/tracekv/pkg/store"
	"github.com/dborchard/tracekv/pkg/y/entry"
	"github.com/tidwall/btree"
)

// Tree keeps entries in an ordered B-tree, so Range is a single in-order
// walk starting at the lower bound.
type Tree struct {
	tree *btree.BTreeG[entry.Pair[int32, int32]]
}

var _ store.Store = new(Tree)

func New() store.Store {
	bt := Tree{}

	// The store is owned by a single interpreter goroutine.
	bt.tree = btree.NewBTreeGOptions(func(a, b entry.Pair[int32, int32]) bool {
		return a.Key < b.Key
	}, btree.Options{NoLocks: true})

	return &bt
}

func (t *Tree) Name() string {
	return "btree"
}

func (t *Tree) Put(key, val int32) {
	t.tree.Set(entry.Pair[int32, int32]{Key: key, Val: val})
}

func (t *Tree) Get(key int32) (int32, bool) {
	row, ok := t.tree.Get(entry.Pair[int32, int32]{Key: key})
	if !ok {
		return 0, false
	}
	return row.Val, true
}

func (t *Tree) Range(start, end int32) []entry.Pair[int32, int32] {
	rows := []entry.Pair[int32, int32]{}
	if start >= end {
		return rows
	}

	startRow := entry.Pair[int32, int32]{Key: start}
	t.tree.Ascend(startRow, func(item entry.Pair[int32, int32]) bool {
		if item.Key >= end {
			return false
		}
		rows = append(rows, item)
		return true
	})

	return rows
}

func (t *Tree) Delete(key int32) bool {
	_, ok := t.tree.Delete(entry.Pair[int32, int32]{Key: key})
	return ok
}

func (t *Tree) Len() int {
	return t.tree.Len()
}
