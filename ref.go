package kolam

// Ref is a non-owning handle to one slot of one pool. Two refs are equal
// when they point at the same slot of the same pool; the zero Ref points at
// nothing.
//
// A Ref does not keep its slot alive. After the slot is recycled the ref
// silently addresses whatever the pool stores there next.
type Ref[T any] struct {
	pool *Pool[T]
	idx  int
}

// Get returns a pointer to the referenced value. It panics on a nil Ref.
func (r Ref[T]) Get() *T {
	return &r.pool.items[r.idx]
}

// IsNil reports whether r points at no pool.
func (r Ref[T]) IsNil() bool {
	return r.pool == nil
}

// Index returns the slot index of r.
func (r Ref[T]) Index() int {
	return r.idx
}

// Pool returns the pool r points into, or nil.
func (r Ref[T]) Pool() *Pool[T] {
	return r.pool
}
