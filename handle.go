package mvvm

import "weak"

// Handle is a non-owning reference to a subscriber. Resolve returns the
// subscriber and whether it is still alive. A Handle never keeps its
// target reachable.
//
// Implementations must return an identity-comparable value from Resolve;
// Unregister matches entries by comparing resolved subscribers with ==.
type Handle interface {
	Resolve() (any, bool)
}

// weakHandle adapts a weak.Pointer to the Handle interface.
type weakHandle[T any] struct {
	p weak.Pointer[T]
}

// WeakHandle returns a Handle that tracks target without keeping it
// alive. Once the garbage collector reclaims target, Resolve reports
// false and any registration guarded by the handle is pruned on the
// next dispatch or unregister pass.
func WeakHandle[T any](target *T) Handle {
	return weakHandle[T]{p: weak.Make(target)}
}

func (h weakHandle[T]) Resolve() (any, bool) {
	v := h.p.Value()
	if v == nil {
		return nil, false
	}
	return v, true
}
