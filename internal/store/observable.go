package store

import "sync"

// subBuffer is the per-subscriber channel capacity. Publishes never block;
// a subscriber that falls this far behind starts losing updates.
const subBuffer = 16

// Value is an observable single-value holder. The latest value is always
// retrievable with Get, and subscribers receive updates in publish order.
// New subscribers do not replay past values (last value wins via Get).
type Value[T any] struct {
	mu   sync.Mutex
	val  T
	subs []chan T
}

// NewValue creates a Value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{val: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.val
}

// Set stores val and notifies all subscribers.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.val = val
	for _, ch := range v.subs {
		select {
		case ch <- val:
		default:
		}
	}
}

// Subscribe registers a new subscriber and returns its update channel.
func (v *Value[T]) Subscribe() <-chan T {
	v.mu.Lock()
	defer v.mu.Unlock()
	ch := make(chan T, subBuffer)
	v.subs = append(v.subs, ch)
	return ch
}
