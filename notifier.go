// Package mvvm provides the core Notifier type for property-change
// broadcasting.
//
// Listeners are registered with OnChanged and removed through the
// returned Unbind handle. Raising a property also raises the properties
// declared dependent on it, with cycle protection.
//
// Batching:
//
// Use Batch() to coalesce multiple raises and avoid redundant listener
// execution:
//
//	n.Batch(func() {
//	    n.RaiseChanged("First")
//	    n.RaiseChanged("Last")
//	    n.RaiseChanged("First")
//	})  // listeners see First once and Last once, in that order
package mvvm

import (
	"sync"

	"github.com/grindlemire/go-mvvm/internal/debug"
)

// AllProperties is the sentinel property name meaning "every property
// changed," raised when a whole backing object is replaced.
const AllProperties = ""

// PropertyListener is called with the name of the property that
// changed, or AllProperties when everything changed.
type PropertyListener func(property string)

// Unbind is a handle to remove a listener. Call it to prevent future
// callback invocations for the associated listener.
type Unbind func()

// propListener is a registered callback that fires on property changes.
type propListener struct {
	fn     PropertyListener
	active bool
}

// batchState tracks an in-progress notification batch.
type batchState struct {
	depth   int // nesting depth (0 = not batching)
	pending map[string]struct{}
	order   []string // properties in first-raise order
}

// Notifier implements synchronous change notification with dependency
// cascades. The zero value is ready to use; embed it to make a type
// observable.
type Notifier struct {
	mu        sync.Mutex
	listeners []*propListener
	deps      *Dependencies
	batch     batchState
}

// SetDependencies attaches the dependency table consulted by
// RaiseChanged. Call it once, before the notifier is shared; the table
// is read-only afterwards.
func (n *Notifier) SetDependencies(d *Dependencies) {
	n.mu.Lock()
	n.deps = d
	n.mu.Unlock()
}

// OnChanged registers fn to be called whenever a property changes.
// Listeners run synchronously, in registration order. The returned
// Unbind handle removes the listener.
func (n *Notifier) OnChanged(fn PropertyListener) Unbind {
	n.mu.Lock()
	l := &propListener{fn: fn, active: true}
	n.listeners = append(n.listeners, l)
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		l.active = false
		n.mu.Unlock()
	}
}

// RaiseChanged notifies all listeners that property changed, then
// raises each property declared dependent on it. A name already raised
// within the current chain is skipped, so a miswired dependency cycle
// cannot recurse forever. Inside Batch, the raise is deferred and
// coalesced.
func (n *Notifier) RaiseChanged(property string) {
	if n.deferToBatch(property) {
		return
	}
	n.raise(property, map[string]bool{property: true})
}

// RaiseChangedForAll notifies listeners that every property changed,
// using the AllProperties sentinel. No dependency cascade runs: every
// property is already marked changed.
func (n *Notifier) RaiseChangedForAll() {
	if n.deferToBatch(AllProperties) {
		return
	}
	n.notify(AllProperties)
}

// raise notifies for property and recurses through its dependents.
// seen holds the names already raised in this chain.
func (n *Notifier) raise(property string, seen map[string]bool) {
	n.notify(property)
	for _, dep := range n.dependents(property) {
		if seen[dep] {
			continue
		}
		seen[dep] = true
		n.raise(dep, seen)
	}
}

func (n *Notifier) dependents(property string) []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.deps.Dependents(property)
}

// notify snapshots active listeners under the lock, dropping unbound
// ones to prevent leaks, and invokes the rest outside the lock in
// registration order.
func (n *Notifier) notify(property string) {
	n.mu.Lock()
	active := make([]*propListener, 0, len(n.listeners))
	for _, l := range n.listeners {
		if l.active {
			active = append(active, l)
		}
	}
	n.listeners = active
	n.mu.Unlock()

	debug.Log("Notifier.notify: %q to %d listeners", property, len(active))
	for _, l := range active {
		l.fn(property)
	}
}

// deferToBatch records property for the enclosing batch. Reports false
// when no batch is active.
func (n *Notifier) deferToBatch(property string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.batch.depth == 0 {
		return false
	}
	if n.batch.pending == nil {
		n.batch.pending = make(map[string]struct{})
	}
	if _, ok := n.batch.pending[property]; !ok {
		n.batch.pending[property] = struct{}{}
		n.batch.order = append(n.batch.order, property)
	}
	return true
}

// Batch executes fn and defers all raises until fn returns. A property
// raised multiple times during the batch fires once, in the order
// properties were first raised. Nested Batch calls are supported;
// notifications only fire when the outermost batch completes. If fn
// panics, the batch state is cleaned up before the panic propagates.
func (n *Notifier) Batch(fn func()) {
	n.mu.Lock()
	n.batch.depth++
	n.mu.Unlock()

	defer func() {
		n.mu.Lock()
		n.batch.depth--
		var flush []string
		if n.batch.depth == 0 && len(n.batch.order) > 0 {
			flush = n.batch.order
			n.batch.pending = nil
			n.batch.order = nil
		}
		n.mu.Unlock()

		// Raise outside the lock; cascades run here, once per property
		for _, property := range flush {
			if property == AllProperties {
				n.notify(AllProperties)
				continue
			}
			n.raise(property, map[string]bool{property: true})
		}
	}()

	fn()
}
