// Package storetest holds behaviour checks shared by every store.Store
// implementation. Each implementation package wires them up in its own
// _test.go file with a constructor.
package storetest

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/dborchard/tracekv/pkg/store"
	"github.com/dborchard/tracekv/pkg/y/entry"
	"github.com/stretchr/testify/assert"
)

// Test1 Overwrite. The last put for a key wins.
func Test1(newStore func() store.Store, t *testing.T) {
	s := newStore()

	s.Put(1, 100)
	s.Put(2, 200)
	s.Put(1, 101)
	s.Put(1, 102)

	val, ok := s.Get(1)
	assert.True(t, ok)
	assert.Equal(t, int32(102), val)

	val, ok = s.Get(2)
	assert.True(t, ok)
	assert.Equal(t, int32(200), val)

	assert.Equal(t, 2, s.Len())
}

// Test2 Get on keys never put, and on keys put then deleted.
func Test2(newStore func() store.Store, t *testing.T) {
	s := newStore()

	_, ok := s.Get(5)
	assert.False(t, ok)

	s.Put(5, 0)
	val, ok := s.Get(5)
	assert.True(t, ok)
	assert.Equal(t, int32(0), val)

	assert.True(t, s.Delete(5))
	_, ok = s.Get(5)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

// Test3 Delete on an absent key fails every time and leaves the store as is.
func Test3(newStore func() store.Store, t *testing.T) {
	s := newStore()
	s.Put(1, 10)

	assert.False(t, s.Delete(9))
	assert.False(t, s.Delete(9))
	assert.Equal(t, 1, s.Len())

	s.Put(9, 1)
	assert.True(t, s.Delete(9))
	assert.False(t, s.Delete(9))

	val, ok := s.Get(1)
	assert.True(t, ok)
	assert.Equal(t, int32(10), val)
}

// Test4 Range is half open and ordered by key.
func Test4(newStore func() store.Store, t *testing.T) {
	s := newStore()
	s.Put(1, 10)
	s.Put(5, 50)
	s.Put(3, 30)

	rows := s.Range(1, 5)
	assert.Equal(t, []entry.Pair[int32, int32]{{Key: 1, Val: 10}, {Key: 3, Val: 30}}, rows)

	rows = s.Range(1, 6)
	assert.Equal(t, []entry.Pair[int32, int32]{{Key: 1, Val: 10}, {Key: 3, Val: 30}, {Key: 5, Val: 50}}, rows)

	rows = s.Range(2, 3)
	assert.Equal(t, 0, len(rows))
}

// Test5 Empty and inverted ranges are empty, not errors.
func Test5(newStore func() store.Store, t *testing.T) {
	s := newStore()
	assert.Equal(t, 0, len(s.Range(0, 100)))

	s.Put(3, 30)
	assert.Equal(t, 0, len(s.Range(3, 3)))
	assert.Equal(t, 0, len(s.Range(10, 1)))
	assert.NotNil(t, s.Range(10, 1))
}

// Test6 Negative keys and the int32 extremes.
func Test6(newStore func() store.Store, t *testing.T) {
	s := newStore()
	s.Put(-2147483648, 1)
	s.Put(-1, 2)
	s.Put(0, 3)
	s.Put(2147483647, 4)

	rows := s.Range(-2147483648, 2147483647)
	assert.Equal(t, []entry.Pair[int32, int32]{{Key: -2147483648, Val: 1}, {Key: -1, Val: 2}, {Key: 0, Val: 3}}, rows)

	val, ok := s.Get(2147483647)
	assert.True(t, ok)
	assert.Equal(t, int32(4), val)
}

// Test7 Range after overwrites and deletes reflects only the live state.
func Test7(newStore func() store.Store, t *testing.T) {
	s := newStore()
	for i := int32(0); i < 10; i++ {
		s.Put(i, i*10)
	}
	s.Put(4, 400)
	s.Delete(5)
	s.Delete(7)

	rows := s.Range(3, 9)
	assert.Equal(t, []entry.Pair[int32, int32]{{Key: 3, Val: 30}, {Key: 4, Val: 400}, {Key: 6, Val: 60}, {Key: 8, Val: 80}}, rows)
}

// Test8 Random operations checked against a plain map model.
func Test8(newStore func() store.Store, t *testing.T) {
	s := newStore()
	model := make(map[int32]int32)
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		key := int32(r.Intn(200) - 100)
		switch r.Intn(4) {
		case 0, 1:
			val := r.Int31()
			s.Put(key, val)
			model[key] = val
		case 2:
			_, want := model[key]
			delete(model, key)
			assert.Equal(t, want, s.Delete(key))
		case 3:
			want, wantOk := model[key]
			got, ok := s.Get(key)
			assert.Equal(t, wantOk, ok)
			assert.Equal(t, want, got)
		}
	}

	start, end := int32(-50), int32(50)
	var want []entry.Pair[int32, int32]
	for k, v := range model {
		if start <= k && k < end {
			want = append(want, entry.Pair[int32, int32]{Key: k, Val: v})
		}
	}
	sort.Slice(want, func(i, j int) bool { return want[i].Key < want[j].Key })

	rows := s.Range(start, end)
	assert.Equal(t, len(want), len(rows))
	for i := range want {
		assert.Equal(t, want[i], rows[i])
	}
	assert.Equal(t, len(model), s.Len())
}
