// Package kolam provides typed, pooled component storage for an
// Entity-Component-System. Component values of one shape live densely in a
// Pool and are addressed by small integer slots that are recycled through a
// free list, so steady-state allocation and removal never touch the heap.
package kolam

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// ComponentID is the identity a Registry assigns to a component shape.
type ComponentID int32

// NoComponent is never assigned to a shape. Filter code can use it to encode
// "absent" and treat additions and removals as signed deltas around it.
const NoComponent ComponentID = 0

// ErrAutoResetMismatch is reported when a shape declares an AutoReset method
// whose argument is not a pointer to the shape itself.
var ErrAutoResetMismatch = errors.New("AutoReset must take a pointer to its own component type")

// ConfigError describes a component shape that cannot be registered.
type ConfigError struct {
	Type reflect.Type
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("ecs: component %s: %v", e.Type, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Identity is the immutable descriptor of a registered component shape.
type Identity struct {
	// Type is kept for diagnostics only; pool operations never consult it.
	Type reflect.Type
	// ID is unique within the registry and always greater than NoComponent.
	ID ComponentID
	// IgnoreInFilter reports whether the shape implements IgnoreInFilter.
	IgnoreInFilter bool
	// AutoReset reports whether the shape implements AutoResetter for itself.
	AutoReset bool
}

// shapeEntry caches the registration outcome for one shape. once guarantees
// the ID counter is bumped a single time even under racing first use.
type shapeEntry struct {
	err  error
	id   Identity
	once sync.Once
	done atomic.Bool
}

// Registry assigns stable identities to component shapes. It is safe for
// concurrent use. Applications normally create one at startup and share it
// with every pool set; tests create their own to stay isolated.
type Registry struct {
	log    *zap.Logger
	shapes sync.Map // reflect.Type -> *shapeEntry
	next   atomic.Int32
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used to report registrations. The default is a
// no-op logger.
func WithLogger(log *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRegistry creates an empty registry whose first assigned ID is 1.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IdentityOf returns the identity of component shape T, registering it on
// first use. Subsequent calls return the same Identity, or the same error
// if the shape was rejected.
func IdentityOf[T any](r *Registry) (Identity, error) {
	t := reflect.TypeFor[T]()
	v, ok := r.shapes.Load(t)
	if !ok {
		v, _ = r.shapes.LoadOrStore(t, &shapeEntry{})
	}
	e := v.(*shapeEntry)
	e.once.Do(func() {
		e.id, e.err = register[T](r, t)
		e.done.Store(true)
	})
	return e.id, e.err
}

// MustIdentityOf is like IdentityOf but panics if T cannot be registered.
func MustIdentityOf[T any](r *Registry) Identity {
	id, err := IdentityOf[T](r)
	if err != nil {
		panic(err)
	}
	return id
}

func register[T any](r *Registry, t reflect.Type) (Identity, error) {
	autoReset := resetHookOf[T]() != nil
	if !autoReset {
		if _, declared := reflect.PointerTo(t).MethodByName(autoResetMethod); declared {
			err := &ConfigError{Type: t, Err: ErrAutoResetMismatch}
			r.log.Error("component rejected", zap.Stringer("type", t), zap.Error(err))
			return Identity{Type: t}, err
		}
	}
	id := Identity{
		Type:           t,
		ID:             ComponentID(r.next.Add(1)),
		IgnoreInFilter: isIgnoredInFilter[T](),
		AutoReset:      autoReset,
	}
	r.log.Debug("component registered",
		zap.Stringer("type", t),
		zap.Int32("id", int32(id.ID)),
		zap.Bool("ignoreInFilter", id.IgnoreInFilter),
		zap.Bool("autoReset", id.AutoReset),
	)
	return id, nil
}

// Lookup returns the identity of an already registered shape.
func (r *Registry) Lookup(t reflect.Type) (Identity, bool) {
	v, ok := r.shapes.Load(t)
	if !ok {
		return Identity{}, false
	}
	e := v.(*shapeEntry)
	if !e.done.Load() || e.err != nil {
		return Identity{}, false
	}
	return e.id, true
}

// Len returns the number of shapes successfully registered.
func (r *Registry) Len() int {
	return int(r.next.Load())
}
