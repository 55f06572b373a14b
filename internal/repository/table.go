package repository

// table is one keyed collection with its own identifier counter.
// It is not safe for concurrent use; Store serialises access.
// Values are passed through clone on the way in and out, so no pointer
// field is shared between the store and its callers.
type table[T any] struct {
	rows   map[int]T
	order  []int
	nextID int
	clone  func(T) T
}

// newTable builds a table. A nil clone means T holds no pointers.
func newTable[T any](clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{rows: make(map[int]T), nextID: 1, clone: clone}
}

// insert assigns the next identifier and stores the value built for it.
func (t *table[T]) insert(build func(id int) T) T {
	id := t.nextID
	t.nextID++
	v := build(id)
	t.rows[id] = t.clone(v)
	t.order = append(t.order, id)
	return t.clone(v)
}

// insertAt stores v under an identifier reserved earlier by a Tx.
func (t *table[T]) insertAt(id int, v T) {
	t.rows[id] = t.clone(v)
	t.order = append(t.order, id)
	if id >= t.nextID {
		t.nextID = id + 1
	}
}

func (t *table[T]) get(id int) (T, bool) {
	v, ok := t.rows[id]
	if !ok {
		return v, false
	}
	return t.clone(v), true
}

// put replaces an existing row. It reports false if id is unknown.
func (t *table[T]) put(id int, v T) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = t.clone(v)
	return true
}

func (t *table[T]) remove(id int) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// list returns the rows in insertion order.
func (t *table[T]) list() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.clone(t.rows[id]))
	}
	return out
}

func (t *table[T]) filter(keep func(T) bool) []T {
	out := make([]T, 0)
	for _, id := range t.order {
		if v := t.rows[id]; keep(v) {
			out = append(out, t.clone(v))
		}
	}
	return out
}

func (t *table[T]) len() int {
	return len(t.rows)
}
