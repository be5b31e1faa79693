//go:build kolamdebug

package kolam

import "fmt"

// checkRecycle panics on slots that were never issued or are already free.
// The free list scan makes Recycle O(n); build with -tags kolamdebug only
// while hunting lifetime bugs.
func checkRecycle[T any](p *Pool[T], idx int) {
	if idx < 0 || idx >= p.count {
		panic(fmt.Sprintf("ecs: recycle of unissued slot %d in pool of %s", idx, p.id.Type))
	}
	for _, f := range p.free {
		if f == idx {
			panic(fmt.Sprintf("ecs: slot %d of %s recycled twice", idx, p.id.Type))
		}
	}
}
