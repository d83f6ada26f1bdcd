package typedpool

import "sync"

type Pool[T any] struct {
	pool sync.Pool
}

func New[T any]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any { return new(T) },
		},
	}
}

func (p *Pool[T]) Get() *T {
	cachedValue := p.pool.Get().(*T)
	return cachedValue
}

// Put returns the value to the pool. If reset is not nil, it is applied
// to the value before doing so.
func (p *Pool[T]) Put(value *T, reset func(*T)) {
	if reset != nil {
		reset(value)
	}

	p.pool.Put(value)
}
