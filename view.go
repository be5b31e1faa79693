package kolam

// View is the shape-independent surface of a Pool. Generic code such as
// bulk entity destruction or inspection tooling uses it when the component
// type is only known at run time. Value boxes the slot, so hot loops should
// use the typed Pool instead.
type View interface {
	Identity() Identity
	Value(idx int) any
	Recycle(idx int)
	New() int
	Copy(src, dst int)
	Len() int
	Clear()
}

var _ View = (*Pool[struct{}])(nil)
