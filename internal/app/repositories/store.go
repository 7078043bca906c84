package repositories

import (
	"errors"
	"sync"

	"github.com/yigit/lmsdash/internal/pkg/idgen"
)

// ErrDuplicateKey is returned when a record id or unique attribute is already taken
var ErrDuplicateKey = errors.New("duplicate key")

// Entity is a record stored under a string key. WithKey returns a copy of the
// record carrying the given key; Clone returns a copy sharing no memory with
// the original.
type Entity[T any] interface {
	Key() string
	WithKey(id string) T
	Clone() T
}

// Table is an in-memory keyed container for one entity type. Records are kept
// as private deep copies and listed in insertion order; every record going in
// or out is cloned. All methods are safe for concurrent use and every
// read-modify-write runs under the write lock.
type Table[T Entity[T]] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
	ids   idgen.Generator
}

// NewTable creates an empty table drawing fresh ids from ids
func NewTable[T Entity[T]](ids idgen.Generator) *Table[T] {
	return &Table[T]{
		rows: make(map[string]T),
		ids:  ids,
	}
}

// Get returns the record stored under id
func (t *Table[T]) Get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rec, ok := t.rows[id]
	if !ok {
		return rec, false
	}
	return rec.Clone(), true
}

// List returns the records matching pred in insertion order. A nil pred
// matches everything. The result is never nil.
func (t *Table[T]) List(pred func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		rec := t.rows[id]
		if pred == nil || pred(rec) {
			out = append(out, rec.Clone())
		}
	}
	return out
}

// Find returns the first record, in insertion order, matching pred
func (t *Table[T]) Find(pred func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, id := range t.order {
		if rec := t.rows[id]; pred(rec) {
			return rec.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// Create stores rec under a freshly generated id and returns the stored record.
// Any id already set on rec is replaced.
func (t *Table[T]) Create(rec T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.createLocked(rec)
}

// CreateUnique behaves like Create but fails with ErrDuplicateKey when
// conflicts reports true for any stored record.
func (t *Table[T]) CreateUnique(rec T, conflicts func(existing T) bool) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, id := range t.order {
		if conflicts(t.rows[id]) {
			var zero T
			return zero, ErrDuplicateKey
		}
	}
	return t.createLocked(rec), nil
}

func (t *Table[T]) createLocked(rec T) T {
	id := t.ids.NewID()
	for {
		if _, taken := t.rows[id]; !taken {
			break
		}
		id = t.ids.NewID()
	}

	rec = rec.WithKey(id).Clone()
	t.rows[id] = rec
	t.order = append(t.order, id)
	return rec.Clone()
}

// Insert stores rec under its own key. Used for records whose ids are fixed
// in advance, such as fixtures.
func (t *Table[T]) Insert(rec T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := rec.Key()
	if id == "" {
		return errors.New("insert: record has no id")
	}
	if _, taken := t.rows[id]; taken {
		return ErrDuplicateKey
	}
	t.rows[id] = rec.Clone()
	t.order = append(t.order, id)
	return nil
}

// Update replaces the record under id with the result of apply, which
// receives the current record. The key cannot be changed by apply. The bool
// result is false when id is unknown, in which case apply is not called.
// An error from apply leaves the stored record untouched.
func (t *Table[T]) Update(id string, apply func(current T) (T, error)) (T, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false, nil
	}

	next, err := apply(current.Clone())
	if err != nil {
		return current.Clone(), true, err
	}
	next = next.WithKey(id).Clone()
	t.rows[id] = next
	return next.Clone(), true, nil
}

// Len returns the number of stored records
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.rows)
}
