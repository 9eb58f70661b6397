// Package entity provides the reusable-storage pool for falling game objects.
//
// A Pool keeps every object it ever constructed in a stable arena. Objects are
// either live or recycled; recycling pushes the arena slot onto a free list and
// the next Spawn pops it and overwrites it, so steady-state play allocates
// nothing per frame.
package entity

// DefaultSweepMargin is how far past the bound an object's top edge must move
// before UpdateAndSweep recycles it.
const DefaultSweepMargin = 5.0

// Body is implemented (on the pointer) by pooled objects.
type Body interface {
	// Fall advances the object by its own velocity over dt seconds.
	Fall(dt float64)
	// Top returns the y-coordinate of the object's top edge.
	Top() float64
}

// Handle identifies a live object. A handle goes stale once its object is
// recycled, even if the slot is reused later.
type Handle struct {
	index uint32
	gen   uint32
}

// Index returns the arena slot the handle refers to.
func (h Handle) Index() int {
	return int(h.index)
}

type slot[T any] struct {
	value   T
	gen     uint32
	livePos int // position in Pool.live, -1 when recycled
}

// Pool is an arena of T with a live list and a free list.
// P must be *T; it lets the pool call Body methods on arena slots in place.
type Pool[T any, P interface {
	*T
	Body
}] struct {
	slots  []slot[T]
	live   []uint32 // arena indices of live objects, in pool order
	free   []uint32 // arena indices of recycled objects
	margin float64
}

// New creates an empty pool. capacity pre-sizes the arena; margin is the
// sweep margin (see DefaultSweepMargin).
func New[T any, P interface {
	*T
	Body
}](capacity int, margin float64) *Pool[T, P] {
	return &Pool[T, P]{
		slots:  make([]slot[T], 0, capacity),
		live:   make([]uint32, 0, capacity),
		free:   make([]uint32, 0, capacity),
		margin: margin,
	}
}

// Spawn makes v live. A recycled slot is reused when one is available,
// otherwise the arena grows by one.
func (p *Pool[T, P]) Spawn(v T) Handle {
	var idx uint32
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		p.slots = append(p.slots, slot[T]{gen: 1})
		idx = uint32(len(p.slots) - 1) //#nosec G115 -- arena never nears 2^32 slots
	}

	s := &p.slots[idx]
	s.value = v
	s.livePos = len(p.live)
	p.live = append(p.live, idx)

	return Handle{index: idx, gen: s.gen}
}

// UpdateAndSweep advances every live object by dt and recycles those whose
// top edge passed bound plus the sweep margin. Removal is unordered: the last
// live object takes the removed one's place. Returns the number recycled.
func (p *Pool[T, P]) UpdateAndSweep(bound, dt float64) int {
	limit := bound + p.margin
	swept := 0

	for i := 0; i < len(p.live); {
		obj := P(&p.slots[p.live[i]].value)
		obj.Fall(dt)
		if obj.Top() > limit {
			// The object swapped into i has not been advanced yet.
			p.recycleAt(i)
			swept++
			continue
		}
		i++
	}

	return swept
}

// ClearAll recycles every live object. Returns the number recycled.
func (p *Pool[T, P]) ClearAll() int {
	n := len(p.live)
	var zero T
	for _, idx := range p.live {
		s := &p.slots[idx]
		s.value = zero
		s.livePos = -1
		s.gen++
		p.free = append(p.free, idx)
	}
	p.live = p.live[:0]
	return n
}

// Recycle moves the object behind h to the free list.
// Returns false if the handle is stale.
func (p *Pool[T, P]) Recycle(h Handle) bool {
	s, ok := p.slot(h)
	if !ok {
		return false
	}
	p.recycleAt(s.livePos)
	return true
}

// Get returns the live object behind h.
func (p *Pool[T, P]) Get(h Handle) (*T, bool) {
	s, ok := p.slot(h)
	if !ok {
		return nil, false
	}
	return &s.value, true
}

// First returns the first live object, in pool order, that matches pred.
func (p *Pool[T, P]) First(pred func(*T) bool) (Handle, *T, bool) {
	for _, idx := range p.live {
		s := &p.slots[idx]
		if pred(&s.value) {
			return Handle{index: idx, gen: s.gen}, &s.value, true
		}
	}
	return Handle{}, nil, false
}

// Each calls fn for every live object in pool order until fn returns false.
// fn must not spawn or recycle.
func (p *Pool[T, P]) Each(fn func(*T) bool) {
	for _, idx := range p.live {
		if !fn(&p.slots[idx].value) {
			return
		}
	}
}

// Live returns the number of live objects.
func (p *Pool[T, P]) Live() int {
	return len(p.live)
}

// Recycled returns the number of objects waiting on the free list.
func (p *Pool[T, P]) Recycled() int {
	return len(p.free)
}

// Constructed returns the number of objects ever allocated by the pool.
// It always equals Live() + Recycled().
func (p *Pool[T, P]) Constructed() int {
	return len(p.slots)
}

func (p *Pool[T, P]) slot(h Handle) (*slot[T], bool) {
	if int(h.index) >= len(p.slots) {
		return nil, false
	}
	s := &p.slots[h.index]
	if s.gen != h.gen || s.livePos < 0 {
		return nil, false
	}
	return s, true
}

func (p *Pool[T, P]) recycleAt(pos int) {
	idx := p.live[pos]
	last := len(p.live) - 1
	moved := p.live[last]
	p.live[pos] = moved
	p.slots[moved].livePos = pos
	p.live = p.live[:last]

	var zero T
	s := &p.slots[idx]
	s.value = zero
	s.livePos = -1
	s.gen++
	p.free = append(p.free, idx)
}
