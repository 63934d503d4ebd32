// Package pool provides depth-scoped reusable values for recursive searches.
//
// A Pool hands out slots in the order they are requested. Start records the
// current watermark and End rewinds to it, so the next Start at the same depth
// reuses the same slots instead of allocating. Start and End must nest like a
// stack around every code path that calls Get.
package pool

import "github.com/rs/zerolog/log"

// DefaultLimit caps the number of cached slots per pool.
const DefaultLimit = 1 << 16

type Pool[T any] struct {
	items []T
	next  int
	marks []int
	limit int
	alloc func() T
	reset func(T) T
}

// New returns a pool that allocates slots with alloc. When reset is non-nil it
// is applied to a slot every time the slot is reused.
func New[T any](alloc func() T, reset func(T) T) *Pool[T] {
	return &Pool[T]{
		alloc: alloc,
		reset: reset,
		limit: DefaultLimit,
	}
}

// SetLimit changes the maximum number of cached slots. Values below one are ignored.
func (p *Pool[T]) SetLimit(limit int) {
	if limit > 0 {
		p.limit = limit
	}
}

func (p *Pool[T]) Start() {
	p.marks = append(p.marks, p.next)
}

// Get returns the slot at the current watermark and advances it.
func (p *Pool[T]) Get() T {
	if p.next < len(p.items) {
		item := p.items[p.next]
		if p.reset != nil {
			item = p.reset(item)
			p.items[p.next] = item
		}
		p.next++
		return item
	}
	if p.next >= p.limit {
		log.Warn().Int("index", p.next).Int("limit", p.limit).Msg("pool overrun, allocating unpooled value")
		return p.alloc()
	}
	item := p.alloc()
	p.items = append(p.items, item)
	p.next++
	return item
}

// End rewinds the watermark to the matching Start.
func (p *Pool[T]) End() {
	if len(p.marks) == 0 {
		log.Error().Int("index", p.next).Msg("pool end without matching start")
		p.next = 0
		return
	}
	last := len(p.marks) - 1
	p.next = p.marks[last]
	p.marks = p.marks[:last]
}

// Depth is the number of open Start calls.
func (p *Pool[T]) Depth() int {
	return len(p.marks)
}

// Len is the number of cached slots.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// NewSlices returns a pool of slices that are truncated to length zero on reuse.
// Slots are pointers so that growth by append is kept for the next user.
func NewSlices[E any](capacity int) *Pool[*[]E] {
	return New(
		func() *[]E {
			s := make([]E, 0, capacity)
			return &s
		},
		func(s *[]E) *[]E {
			*s = (*s)[:0]
			return s
		},
	)
}

// NewObjects returns a pool of objects that are handed back as they were left.
// Callers reset whatever fields they rely on.
func NewObjects[T any](alloc func() T) *Pool[T] {
	return New(alloc, nil)
}

// NewRecords returns a pool of plain records that are zeroed on reuse.
func NewRecords[T any]() *Pool[*T] {
	return New(
		func() *T { return new(T) },
		func(r *T) *T {
			var zero T
			*r = zero
			return r
		},
	)
}
