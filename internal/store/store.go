package store

import (
	"container/list"
	"strconv"
	"sync"
	"time"
)

// Kind identifies the entity kind an entry belongs to.
type Kind string

// Entity kinds held by the store.
const (
	KindWorkspace Kind = "workspace"
	KindProject   Kind = "project"
	KindClient    Kind = "client"
)

type entry struct {
	kind     Kind
	key      string
	value    any
	storedAt time.Time
}

// Store is a concurrency-safe bounded key–value store with per-entry TTL and
// LRU eviction across all entity kinds. Writes are single-key upserts with
// last-writer-wins semantics on storedAt.
type Store struct {
	mu        sync.Mutex
	ttl       time.Duration
	maxSize   int
	elems     map[string]*list.Element
	order     *list.List // front = most recently used
	evictions int64
}

// New creates a store. Entries older than ttl read as absent; inserting past
// maxSize evicts the least-recently-used entry first.
func New(ttl time.Duration, maxSize int) *Store {
	return &Store{
		ttl:     ttl,
		maxSize: maxSize,
		elems:   make(map[string]*list.Element),
		order:   list.New(),
	}
}

func storeKey(kind Kind, id int64) string {
	return string(kind) + "/" + strconv.FormatInt(id, 10)
}

// Get returns the cached value if present and not expired, and marks it most
// recently used. An expired entry is removed and reads as absent.
func (s *Store) Get(kind Kind, id int64) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.elems[storeKey(kind, id)]
	if !ok {
		return nil, false
	}
	e := elem.Value.(*entry)
	if time.Since(e.storedAt) >= s.ttl {
		s.removeLocked(elem)
		return nil, false
	}
	s.order.MoveToFront(elem)
	return e.value, true
}

// Put inserts or refreshes an entry and marks it most recently used. When the
// store is full the least-recently-used entry is evicted first.
func (s *Store) Put(kind Kind, id int64, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := storeKey(kind, id)
	if elem, ok := s.elems[key]; ok {
		e := elem.Value.(*entry)
		e.value = value
		e.storedAt = time.Now()
		s.order.MoveToFront(elem)
		return
	}

	if s.maxSize > 0 && s.order.Len() >= s.maxSize {
		if back := s.order.Back(); back != nil {
			s.removeLocked(back)
			s.evictions++
		}
	}

	elem := s.order.PushFront(&entry{
		kind:     kind,
		key:      key,
		value:    value,
		storedAt: time.Now(),
	})
	s.elems[key] = elem
}

// Invalidate removes one entry immediately, independent of TTL.
func (s *Store) Invalidate(kind Kind, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.elems[storeKey(kind, id)]; ok {
		s.removeLocked(elem)
	}
}

// InvalidateKind removes every entry of one kind.
func (s *Store) InvalidateKind(kind Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var next *list.Element
	for elem := s.order.Front(); elem != nil; elem = next {
		next = elem.Next()
		if elem.Value.(*entry).kind == kind {
			s.removeLocked(elem)
		}
	}
}

// InvalidateAll empties the store and resets the eviction counter.
func (s *Store) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.elems = make(map[string]*list.Element)
	s.order.Init()
	s.evictions = 0
}

// Len returns the number of live entries. Expired entries not yet touched
// still count; Get re-validates, so this slack is harmless.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

// Evictions returns the number of capacity evictions since the last
// InvalidateAll.
func (s *Store) Evictions() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictions
}

func (s *Store) removeLocked(elem *list.Element) {
	s.order.Remove(elem)
	delete(s.elems, elem.Value.(*entry).key)
}
