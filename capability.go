package kolam

// IgnoreInFilter marks a component shape that query builders should not
// expose as an auto-generated accessor. It carries no behaviour inside the
// pool; the flag is only recorded on the shape's Identity.
//
//	type Dirty struct{}
//	func (Dirty) IgnoreInFilter() {}
type IgnoreInFilter interface {
	IgnoreInFilter()
}

// AutoResetter is implemented by shapes that supply their own reset logic.
// The type parameter must be the shape itself; a shape declaring AutoReset
// for any other element type is rejected at registration.
//
//	type Inventory struct{ Items []int }
//	func (*Inventory) AutoReset(c *Inventory) { c.Items = c.Items[:0] }
type AutoResetter[T any] interface {
	AutoReset(c *T)
}

// autoResetMethod is the method name inspected when a shape fails the
// AutoResetter[T] assertion.
const autoResetMethod = "AutoReset"

// resetHookOf returns a hook invoking the shape's AutoReset on the slot
// itself (receiver and argument are the same value), or nil if T does not
// implement AutoResetter[T].
func resetHookOf[T any]() func(*T) {
	var zero T
	if _, ok := any(&zero).(AutoResetter[T]); !ok {
		return nil
	}
	return func(c *T) {
		any(c).(AutoResetter[T]).AutoReset(c)
	}
}

func isIgnoredInFilter[T any]() bool {
	var zero T
	_, ok := any(&zero).(IgnoreInFilter)
	return ok
}
