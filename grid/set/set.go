package set

import (
	"fmt"
	"slices"

	"github.com/hnimtadd/tablo/grid/utils"
)

type Hashable interface {
	Hash() uint64
	Equals(t Hashable) bool
}

// ID identifies an item in the set. Zero is reserved for "no item".
type ID uint64

type elem[T Hashable] struct {
	data T
	// Ref is the reference count of the item.
	ref int64
}

// RefCountedSet interns values so that many holders can share one copy.
// Every Add or Use takes a reference; Release drops one and frees the item
// once nobody holds it. Freed IDs are reused, smallest first.
type RefCountedSet[T Hashable] struct {
	items map[ID]*elem[T]
	// Hash buckets of item IDs. Collisions are resolved with Equals.
	table map[uint64][]ID

	// The next fresh ID. Id 0 is reserved for unused items.
	nextID ID
	// Released IDs waiting to be reused, kept sorted.
	free []ID

	// The number of living items currently in the set.
	living int
}

func NewRefCountedSet[T Hashable]() *RefCountedSet[T] {
	return &RefCountedSet[T]{
		items:  make(map[ID]*elem[T]),
		table:  make(map[uint64][]ID),
		nextID: 1,
	}
}

// Add an item to the set if not present and increment its ref count.
//
// Returns the item's ID.
func (s *RefCountedSet[T]) Add(value T) ID {
	if id, found := s.Lookup(value); found {
		s.items[id].ref++
		return id
	}

	id := s.allocate()
	s.items[id] = &elem[T]{data: value, ref: 1}
	hash := value.Hash()
	s.table[hash] = append(s.table[hash], id)
	s.living++
	return id
}

func (s *RefCountedSet[T]) allocate() ID {
	if len(s.free) > 0 {
		id := s.free[0]
		s.free = s.free[1:]
		return id
	}
	id := s.nextID
	s.nextID++
	return id
}

// Lookup find an item in the table and return its ID.
// If the item doesn't exist in the table, return 0 and false.
func (s *RefCountedSet[T]) Lookup(value T) (ID, bool) {
	for _, id := range s.table[value.Hash()] {
		if s.items[id].data.Equals(value) {
			return id, true
		}
	}
	return 0, false
}

// Get returns the item stored under id.
func (s *RefCountedSet[T]) Get(id ID) (T, bool) {
	item, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return item.data, true
}

// Use takes one more reference on a living item.
func (s *RefCountedSet[T]) Use(id ID) {
	utils.Assert(id > 0, "cannot use item with ID 0")
	item, ok := s.items[id]
	// Using an item nobody holds means someone released too early.
	utils.Assertf(ok && item.ref > 0, "use of dead item %d", id)
	item.ref++
}

// Releases a reference to an item by its ID. The item is deleted once its
// count drops to zero.
func (s *RefCountedSet[T]) Release(id ID) {
	utils.Assert(id > 0, "cannot release item with ID 0")
	item, ok := s.items[id]
	utils.Assertf(ok && item.ref > 0, "release of dead item %d", id)

	item.ref--
	if item.ref > 0 {
		return
	}
	s.delete(id, item)
}

func (s *RefCountedSet[T]) delete(id ID, item *elem[T]) {
	hash := item.data.Hash()
	bucket := s.table[hash]
	idx := slices.Index(bucket, id)
	utils.Assert(idx >= 0, "item not found in table")
	bucket = slices.Delete(bucket, idx, idx+1)
	if len(bucket) == 0 {
		delete(s.table, hash)
	} else {
		s.table[hash] = bucket
	}

	delete(s.items, id)
	pos, _ := slices.BinarySearch(s.free, id)
	s.free = slices.Insert(s.free, pos, id)
	s.living--
}

// Refs returns the reference count of id, 0 for unknown IDs.
func (s *RefCountedSet[T]) Refs(id ID) int64 {
	if item, ok := s.items[id]; ok {
		return item.ref
	}
	return 0
}

func (s *RefCountedSet[T]) Count() int {
	return s.living
}

// Clone returns an independent copy holding the same IDs and counts.
func (s *RefCountedSet[T]) Clone() *RefCountedSet[T] {
	out := &RefCountedSet[T]{
		items:  make(map[ID]*elem[T], len(s.items)),
		table:  make(map[uint64][]ID, len(s.table)),
		nextID: s.nextID,
		free:   slices.Clone(s.free),
		living: s.living,
	}
	for id, item := range s.items {
		cp := *item
		out.items[id] = &cp
	}
	for hash, bucket := range s.table {
		out.table[hash] = slices.Clone(bucket)
	}
	return out
}

func (s *RefCountedSet[T]) String() string {
	return fmt.Sprintf("RefCountedSet{living: %d, next: %d}", s.living, s.nextID)
}
