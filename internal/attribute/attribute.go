// Package attribute implements the typed, heterogeneous per-stream
// side-channel (§4.1) by which analysis, indexing, and search components
// exchange per-token and per-iterator state. It follows Design Notes §9
// option (a): each Key carries a small integer tag, and a Store holds an
// unordered slice of opaque cells found by a linear scan for that tag, so
// lookup cost grows with the number of attributes in the Store; there is
// no inheritance hierarchy.
package attribute

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// Key identifies an attribute type. Keys are created once per attribute
// kind (typically in a package-level var) via NewKey and are comparable.
type Key[T any] struct {
	id int
}

var nextID atomic.Int64

// names records a human-readable name per key id, used only for
// AlreadyPresent error messages; it never participates in dispatch.
var (
	namesMu sync.Mutex
	names   = map[int]string{}
)

// NewKey allocates a fresh, process-unique attribute identity for T.
// Call once per attribute kind; typically from a package-level var.
func NewKey[T any](name string) Key[T] {
	id := int(nextID.Add(1))
	namesMu.Lock()
	names[id] = name
	namesMu.Unlock()
	return Key[T]{id: id}
}

func (k Key[T]) id_() int { return k.id }

func nameFor(id int) string {
	namesMu.Lock()
	defer namesMu.Unlock()
	if n, ok := names[id]; ok {
		return n
	}
	return fmt.Sprintf("attribute#%d", id)
}

// AlreadyPresent is returned by Store.Add when the key already holds a
// value — a caller contract violation per spec.md §7.
type AlreadyPresent struct{ id int }

func (e *AlreadyPresent) Error() string {
	return fmt.Sprintf("attribute: %s already present", nameFor(e.id))
}

// cell is the type-erased holder for one stored attribute value.
type cell struct {
	id  int
	val any
}

// Store owns a sparse set of attribute values and controls their lifetime.
// It is not safe for concurrent mutation — matching the single-threaded-
// per-iterator scheduling model of §5.
type Store struct {
	cells []cell // unordered; small N expected, linear scan is fine
}

// NewStore creates an empty attribute store.
func NewStore() *Store { return &Store{} }

func (s *Store) indexOf(id int) int {
	for i := range s.cells {
		if s.cells[i].id == id {
			return i
		}
	}
	return -1
}

// Add inserts a default T under key, failing if one is already present.
func Add[T any](s *Store, key Key[T]) (*T, error) {
	if s.indexOf(key.id_()) >= 0 {
		return nil, &AlreadyPresent{id: key.id_()}
	}
	var zero T
	s.cells = append(s.cells, cell{id: key.id_(), val: &zero})
	return s.cells[len(s.cells)-1].val.(*T), nil
}

// Emplace inserts or replaces the value under key with v, returning a
// pointer to the stored copy.
func Emplace[T any](s *Store, key Key[T], v T) *T {
	if i := s.indexOf(key.id_()); i >= 0 {
		p := s.cells[i].val.(*T)
		*p = v
		return p
	}
	cp := v
	s.cells = append(s.cells, cell{id: key.id_(), val: &cp})
	return s.cells[len(s.cells)-1].val.(*T)
}

// Get returns a pointer to the stored value under key, or nil if absent.
// Never fails.
func Get[T any](s *Store, key Key[T]) *T {
	if i := s.indexOf(key.id_()); i >= 0 {
		return s.cells[i].val.(*T)
	}
	return nil
}

// Remove deletes the value under key, if present. Never fails.
func Remove[T any](s *Store, key Key[T]) {
	if i := s.indexOf(key.id_()); i >= 0 {
		s.cells = append(s.cells[:i], s.cells[i+1:]...)
	}
}

// Clear removes every attribute from the store.
func (s *Store) Clear() { s.cells = s.cells[:0] }

// Len reports how many attributes are currently present.
func (s *Store) Len() int { return len(s.cells) }

// Visit calls fn once per stored attribute id in ascending id order
// (deterministic, though spec.md §4.1 only requires "unspecified order").
// Returning false from fn stops the visit early.
func (s *Store) Visit(fn func(id int) bool) {
	ids := make([]int, len(s.cells))
	for i, c := range s.cells {
		ids[i] = c.id
	}
	sort.Ints(ids)
	for _, id := range ids {
		if !fn(id) {
			return
		}
	}
}

// View exposes a store's entries to a consumer without transferring
// ownership. A View over a nil Store behaves like an empty view.
type View struct {
	store *Store
}

// ViewOf wraps store as a read-only view.
func ViewOf(store *Store) View { return View{store: store} }

// ViewGet looks up key's value through a view, returning nil if absent or
// if the view wraps no store.
func ViewGet[T any](v View, key Key[T]) *T {
	if v.store == nil {
		return nil
	}
	return Get(v.store, key)
}
