//go:build kolamdebug

package kolam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecycleTwicePanics(t *testing.T) {
	p := MustNewPool[Position](NewRegistry())
	idx := p.New()
	p.Recycle(idx)
	assert.Panics(t, func() { p.Recycle(idx) })
}

func TestRecycleUnissuedPanics(t *testing.T) {
	p := MustNewPool[Position](NewRegistry())
	p.New()
	assert.Panics(t, func() { p.Recycle(5) })
	assert.Panics(t, func() { p.Recycle(-1) })
}
