package element

import "github.com/notargets/spacetree/utils"

// pool is a single-threaded free list of concrete element records. It is
// the context a scheme uses for New and Destroy; callers serialize access.
type pool[T any] struct {
	free        []*T
	outstanding int
}

func (p *pool[T]) get() *T {
	p.outstanding++
	if n := len(p.free); n > 0 {
		e := p.free[n-1]
		p.free = p.free[:n-1]
		return e
	}
	return new(T)
}

func (p *pool[T]) put(e *T) {
	utils.Assertf(e != nil, "pool: destroy of nil element")
	utils.Assertf(p.outstanding > 0, "pool: more destroys than news")
	p.outstanding--
	var zero T
	*e = zero
	p.free = append(p.free, e)
}
