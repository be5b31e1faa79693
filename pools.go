package kolam

// Pools owns at most one Pool per component shape, created on first use.
// Pools are indexed by ComponentID so shape-unaware code can reach them
// through View in O(1). Like Pool, it is not safe for concurrent use.
type Pools struct {
	registry *Registry
	views    []View // indexed by ComponentID; nil where no pool exists
	capacity int
	count    int
}

// PoolsOption configures a Pools set.
type PoolsOption func(*Pools)

// WithDefaultCapacity sets the initial backing size of every pool the set
// creates.
func WithDefaultCapacity(n int) PoolsOption {
	return func(s *Pools) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// NewPools creates an empty set backed by registry r.
func NewPools(r *Registry, opts ...PoolsOption) *Pools {
	s := &Pools{
		registry: r,
		capacity: DefaultCapacity,
		views:    make([]View, 0, 16),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry returns the registry the set assigns identities from.
func (s *Pools) Registry() *Registry {
	return s.registry
}

// PoolOf returns the pool for shape T, creating it on first request.
func PoolOf[T any](s *Pools) (*Pool[T], error) {
	id, err := IdentityOf[T](s.registry)
	if err != nil {
		return nil, err
	}
	if v, ok := s.View(id.ID); ok {
		return v.(*Pool[T]), nil
	}
	p, err := NewPool[T](s.registry, WithCapacity[T](s.capacity))
	if err != nil {
		return nil, err
	}
	s.views = growTo(s.views, int(id.ID)+1)
	s.views[id.ID] = p
	s.count++
	return p, nil
}

// MustPoolOf is like PoolOf but panics on error.
func MustPoolOf[T any](s *Pools) *Pool[T] {
	p, err := PoolOf[T](s)
	if err != nil {
		panic(err)
	}
	return p
}

// View returns the pool registered under id, if one has been created.
func (s *Pools) View(id ComponentID) (View, bool) {
	if id <= NoComponent || int(id) >= len(s.views) {
		return nil, false
	}
	v := s.views[id]
	return v, v != nil
}

// Recycle returns slot to the pool registered under id. It reports false
// when the set has no such pool.
func (s *Pools) Recycle(id ComponentID, slot int) bool {
	v, ok := s.View(id)
	if !ok {
		return false
	}
	v.Recycle(slot)
	return true
}

// Each calls fn for every pool in ascending ComponentID order.
func (s *Pools) Each(fn func(View)) {
	for _, v := range s.views {
		if v != nil {
			fn(v)
		}
	}
}

// Len returns the number of pools in the set.
func (s *Pools) Len() int {
	return s.count
}

// Clear empties every pool while keeping their memory.
func (s *Pools) Clear() {
	for _, v := range s.views {
		if v != nil {
			v.Clear()
		}
	}
}
