package kolam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolScenario(t *testing.T) {
	r := NewRegistry()
	id := MustIdentityOf[Position](r)
	assert.Equal(t, Identity{Type: id.Type, ID: 1}, id)

	p := MustNewPool[Position](r)
	assert.Equal(t, 0, p.New())
	assert.Equal(t, 1, p.New())
	assert.Equal(t, 2, p.New())

	*p.Get(1) = Position{X: 3, Y: 4}
	p.Recycle(1)
	assert.Equal(t, Position{}, *p.Get(1))

	assert.Equal(t, 1, p.New())

	*p.Get(0) = Position{X: 5, Y: 7}
	p.Copy(0, 2)
	assert.Equal(t, Position{X: 5, Y: 7}, *p.Get(2))
	assert.Equal(t, 3, p.Len())
}

func TestPoolRecycleIsLIFO(t *testing.T) {
	p := MustNewPool[Position](NewRegistry())
	for range 5 {
		p.New()
	}
	p.Recycle(1)
	p.Recycle(3)
	assert.Equal(t, 2, p.FreeLen())
	assert.Equal(t, 3, p.New())
	assert.Equal(t, 1, p.New())
	assert.Equal(t, 5, p.New())
	assert.Equal(t, 0, p.FreeLen())
}

func TestPoolResetOnNewSlot(t *testing.T) {
	p := MustNewPool[Counted](NewRegistry())
	idx := p.New()
	assert.Equal(t, Counted{Value: -1, Resets: 1}, *p.Get(idx))
}

func TestPoolResetOncePerRecycle(t *testing.T) {
	p := MustNewPool[Counted](NewRegistry())
	idx := p.New()
	p.Get(idx).Value = 42

	p.Recycle(idx)
	assert.Equal(t, Counted{Value: -1, Resets: 2}, *p.Get(idx))

	// Reuse does not reset again.
	require.Equal(t, idx, p.New())
	assert.Equal(t, 2, p.Get(idx).Resets)

	p.Recycle(idx)
	require.Equal(t, idx, p.New())
	assert.Equal(t, 3, p.Get(idx).Resets)
}

func TestPoolAutoResetKeepsBackingMemory(t *testing.T) {
	p := MustNewPool[Inventory](NewRegistry())
	idx := p.New()
	inv := p.Get(idx)
	inv.Items = append(inv.Items, 1, 2, 3)
	backing := cap(inv.Items)

	p.Recycle(idx)
	assert.Empty(t, p.Get(idx).Items)
	assert.Equal(t, backing, cap(p.Get(idx).Items))
}

func TestPoolWithoutResetUsesZeroValue(t *testing.T) {
	p := MustNewPool[Position](NewRegistry())
	idx := p.New()
	assert.Equal(t, Position{}, *p.Get(idx))

	*p.Get(idx) = Position{X: 1, Y: 2}
	p.Recycle(idx)
	assert.Equal(t, Position{}, *p.Get(idx))
}

func TestPoolWithResetHook(t *testing.T) {
	calls := 0
	hook := func(c *Counted) {
		calls++
		c.Value = 7
	}
	p := MustNewPool[Counted](NewRegistry(), WithResetHook(hook))
	idx := p.New()
	assert.Equal(t, Counted{Value: 7}, *p.Get(idx))
	p.Recycle(idx)
	p.New()
	assert.Equal(t, 2, calls)
}

func TestPoolCopyIsByValue(t *testing.T) {
	p := MustNewPool[Position](NewRegistry())
	src, dst := p.New(), p.New()
	*p.Get(src) = Position{X: 1, Y: 1}
	p.Copy(src, dst)
	p.Get(src).X = 99
	assert.Equal(t, Position{X: 1, Y: 1}, *p.Get(dst))
	assert.Equal(t, 0, p.FreeLen())
}

func TestPoolGrowsByDoubling(t *testing.T) {
	p := MustNewPool[Position](NewRegistry(), WithCapacity[Position](2))
	require.Equal(t, 2, p.Cap())
	for i := range 3 {
		*p.Get(p.New()) = Position{X: float32(i)}
	}
	assert.Equal(t, 4, p.Cap())
	for i := range 3 {
		assert.Equal(t, float32(i), p.Get(i).X)
	}
	p.New()
	p.New()
	assert.Equal(t, 8, p.Cap())
}

func TestPoolSetCapacityNeverShrinks(t *testing.T) {
	p := MustNewPool[Position](NewRegistry())
	before := p.Cap()

	p.SetCapacity(before / 2)
	assert.Equal(t, before, p.Cap())

	p.SetCapacity(before + 1)
	assert.GreaterOrEqual(t, p.Cap(), before+1)

	grown := p.Cap()
	p.SetCapacity(0)
	assert.Equal(t, grown, p.Cap())
}

func TestPoolSetCapacityKeepsValues(t *testing.T) {
	p := MustNewPool[Position](NewRegistry(), WithCapacity[Position](1))
	idx := p.New()
	*p.Get(idx) = Position{X: 4, Y: 2}
	p.SetCapacity(1000)
	assert.Equal(t, Position{X: 4, Y: 2}, *p.Get(idx))
	assert.Equal(t, 1000, p.Cap())
}

func TestPoolClear(t *testing.T) {
	p := MustNewPool[Counted](NewRegistry())
	a, b := p.New(), p.New()
	p.Get(a).Value = 10
	p.Recycle(b)
	capBefore := p.Cap()

	p.Clear()
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 0, p.FreeLen())
	assert.Equal(t, capBefore, p.Cap())

	// Slots are issued from zero again and reset as brand-new.
	idx := p.New()
	assert.Equal(t, 0, idx)
	assert.Equal(t, Counted{Value: -1, Resets: 1}, *p.Get(idx))
}

func TestNewPoolRejectsMismatchedAutoReset(t *testing.T) {
	p, err := NewPool[WrongReset](NewRegistry())
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrAutoResetMismatch)
	assert.Panics(t, func() { MustNewPool[WrongReset](NewRegistry()) })
}

func TestPoolSteadyStateDoesNotAllocate(t *testing.T) {
	p := MustNewPool[Inventory](NewRegistry())
	idx := p.New()
	p.Recycle(idx)
	allocs := testing.AllocsPerRun(100, func() {
		i := p.New()
		p.Get(i).Items = append(p.Get(i).Items, 1)
		p.Recycle(i)
	})
	assert.Zero(t, allocs)
}
