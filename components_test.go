package kolam

type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Tag struct{}

func (Tag) IgnoreInFilter() {}

// Counted records how often it has been reset.
type Counted struct {
	Value  int
	Resets int
}

func (*Counted) AutoReset(c *Counted) {
	c.Value = -1
	c.Resets++
}

type Inventory struct {
	Items []int
}

func (*Inventory) AutoReset(c *Inventory) {
	c.Items = c.Items[:0]
}

// WrongReset declares AutoReset for another shape.
type WrongReset struct {
	N int
}

func (*WrongReset) AutoReset(c *Position) {}

type shape1 struct{ V int }
type shape2 struct{ V int }
type shape3 struct{ V int }
type shape4 struct{ V int }
type shape5 struct{ V int }
type shape6 struct{ V int }
type shape7 struct{ V int }
type shape8 struct{ V int }
