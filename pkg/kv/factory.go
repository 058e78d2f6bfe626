package kv

import (
	"github.com/dborchard/tracekv/pkg/store"
	"github.com/dborchard/tracekv/pkg/store/btree"
	"github.com/dborchard/tracekv/pkg/store/hashmap"
)

func NewStore(typ store.Typ) (s store.Store) {

	switch typ {
	case store.HashMap:
		s = hashmap.New()

	case store.BTree:
		s = btree.New()

	default:
		panic("unknown store type " + typ.String())
	}

	return
}
