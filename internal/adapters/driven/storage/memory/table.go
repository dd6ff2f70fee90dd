package memory

import (
	"sort"
	"sync"
)

// table is an auto-incrementing, insertion-ordered row set shared by the entity stores.
type table[T any] struct {
	mu    sync.RWMutex
	next  int64
	rows  map[int64]T
	id    func(T) int64
	setID func(*T, int64)
}

func newTable[T any](id func(T) int64, setID func(*T, int64)) *table[T] {
	return &table[T]{rows: make(map[int64]T), id: id, setID: setID}
}

// list returns the rows accepted by keep, in ID order. A nil keep accepts all.
// Callers must hold mu.
func (t *table[T]) list(keep func(T) bool) []T {
	ids := make([]int64, 0, len(t.rows))
	for id, row := range t.rows {
		if keep == nil || keep(row) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

// Callers must hold mu for writing.
func (t *table[T]) insert(row T) int64 {
	t.next++
	t.setID(&row, t.next)
	t.rows[t.next] = row
	return t.next
}

// Callers must hold mu for writing.
func (t *table[T]) update(row T) int64 {
	id := t.id(row)
	if _, ok := t.rows[id]; !ok {
		return 0
	}
	t.rows[id] = row
	return 1
}

func (t *table[T]) All() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.list(nil)
}

func (t *table[T]) Find(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) Add(row T) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.insert(row)
}

func (t *table[T]) Replace(row T) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.update(row)
}

func (t *table[T]) Remove(ids ...int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, id := range ids {
		delete(t.rows, id)
	}
}
