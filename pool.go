package kolam

// DefaultCapacity is the initial backing size of a pool and its free list.
const DefaultCapacity = 128

// Pool stores component values of shape T in a dense array. Slots are
// handed out by New and returned by Recycle; returned slots are reused
// last-in first-out before any new slot is minted. Slots are never removed
// from the backing array, so a slot index stays addressable for the life of
// the pool.
//
// A Pool is not safe for concurrent use. The owning system is expected to
// perform all component mutation from one goroutine at a time.
type Pool[T any] struct {
	reset func(*T)
	items []T
	free  []int
	id    Identity
	count int
}

// PoolOption configures a Pool.
type PoolOption[T any] func(*Pool[T])

// WithCapacity sets the initial backing size of the pool.
func WithCapacity[T any](n int) PoolOption[T] {
	return func(p *Pool[T]) {
		if n > 0 {
			p.items = make([]T, n)
		}
	}
}

// WithResetHook installs fn as the reset hook, replacing the shape's own
// AutoReset method if it has one.
func WithResetHook[T any](fn func(*T)) PoolOption[T] {
	return func(p *Pool[T]) {
		p.reset = fn
	}
}

// NewPool creates an empty pool for shape T, registering T with r if needed.
func NewPool[T any](r *Registry, opts ...PoolOption[T]) (*Pool[T], error) {
	id, err := IdentityOf[T](r)
	if err != nil {
		return nil, err
	}
	p := &Pool[T]{
		id:    id,
		items: make([]T, DefaultCapacity),
		free:  make([]int, 0, DefaultCapacity),
	}
	if id.AutoReset {
		p.reset = resetHookOf[T]()
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// MustNewPool is like NewPool but panics if T cannot be registered.
func MustNewPool[T any](r *Registry, opts ...PoolOption[T]) *Pool[T] {
	p, err := NewPool[T](r, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Identity returns the identity of the pool's shape.
func (p *Pool[T]) Identity() Identity {
	return p.id
}

// New returns a slot ready for use. A recycled slot is preferred and is
// returned as Recycle left it. A brand-new slot is passed through the reset
// hook once, so it starts from the shape's reset state rather than Go's
// zero value.
func (p *Pool[T]) New() int {
	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		return idx
	}
	idx := p.count
	if idx == len(p.items) {
		p.items = growTo(p.items, doubled(len(p.items)))
	}
	if p.reset != nil {
		p.reset(&p.items[idx])
	}
	p.count++
	return idx
}

// Get returns a pointer to the value in slot idx. The pointer is
// invalidated by any later New that grows the pool. Liveness of idx is not
// checked.
func (p *Pool[T]) Get(idx int) *T {
	return &p.items[idx]
}

// Value returns a copy of the value in slot idx.
func (p *Pool[T]) Value(idx int) any {
	return p.items[idx]
}

// Recycle resets slot idx and makes it available to New. Recycling a slot
// that is already free corrupts the free list.
func (p *Pool[T]) Recycle(idx int) {
	checkRecycle(p, idx)
	if p.reset != nil {
		p.reset(&p.items[idx])
	} else {
		var zero T
		p.items[idx] = zero
	}
	p.free = append(p.free, idx)
}

// Copy overwrites slot dst with a copy of slot src.
func (p *Pool[T]) Copy(src, dst int) {
	p.items[dst] = p.items[src]
}

// SetCapacity grows the backing array to at least n slots. It never shrinks.
func (p *Pool[T]) SetCapacity(n int) {
	p.items = growTo(p.items, n)
}

// Ref returns a handle to slot idx without checking it.
func (p *Pool[T]) Ref(idx int) Ref[T] {
	return Ref[T]{pool: p, idx: idx}
}

// Len returns the number of slots ever handed out, free or not.
func (p *Pool[T]) Len() int {
	return p.count
}

// Cap returns the size of the backing array.
func (p *Pool[T]) Cap() int {
	return len(p.items)
}

// FreeLen returns the number of slots waiting on the free list.
func (p *Pool[T]) FreeLen() int {
	return len(p.free)
}

// Clear forgets every slot without releasing memory. All previously issued
// slots are reset and the next New starts again from slot 0.
func (p *Pool[T]) Clear() {
	var zero T
	for i := 0; i < p.count; i++ {
		p.items[i] = zero
	}
	p.free = p.free[:0]
	p.count = 0
}
