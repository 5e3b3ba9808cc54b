package mvvm

import "sync"

// registry is the process-wide store of per-source event managers.
// Sources are keyed by identity: they must be pointers (or otherwise
// identity-comparable), and two distinct sources with equal contents
// get distinct managers. Entries are never removed automatically; a
// manager lives for the remainder of the process once created. A
// single coarse lock guards the map, since contention is expected to
// be low.
type registry struct {
	mu       sync.Mutex
	managers map[any]*EventManager
}

var defaultRegistry = &registry{managers: make(map[any]*EventManager)}

// getOrCreate returns the single manager for source, creating and
// storing it if absent.
func (r *registry) getOrCreate(source any) *EventManager {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.managers[source]; ok {
		return m
	}
	m := newEventManager(source)
	r.managers[source] = m
	return m
}

// lookup returns the manager for source, or nil if none was created.
func (r *registry) lookup(source any) *EventManager {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.managers[source]
}

// ManagerFor returns the event manager for source, creating it on
// first use. The same source always yields the same manager.
func ManagerFor(source any) *EventManager {
	return defaultRegistry.getOrCreate(source)
}

// Register subscribes fn to source's event on behalf of owner. Only a
// weak handle to owner is stored: the registration neither keeps owner
// alive nor fires after owner is collected. Owners should still call
// Unregister on teardown; collection-based pruning is a safety net,
// not the primary cleanup path.
//
// fn must not capture owner, or the capture keeps owner reachable
// through the handler table for as long as the entry exists. Handlers
// that need their owner should use RegisterBound, which receives the
// weakly-resolved owner as an argument.
func Register[O any](source any, event string, owner *O, fn Handler) error {
	return RegisterHandle(source, event, WeakHandle(owner), fn)
}

// RegisterBound subscribes like Register, but fn receives the resolved
// owner on each invocation. This is the form to use when the handler
// needs owner state: the callback stays free of strong captures, so
// the registration still cannot keep owner alive.
func RegisterBound[O any](source any, event string, owner *O, fn func(owner *O, sender, args any) error) error {
	bound := func(o, sender, args any) error { return fn(o.(*O), sender, args) }
	return ManagerFor(source).register(event, WeakHandle(owner), bound)
}

// RegisterHandle registers fn against source's event using an explicit
// subscriber handle. Most callers want Register or RegisterBound,
// which build the weak handle themselves; RegisterHandle exists for
// custom liveness schemes.
func RegisterHandle(source any, event string, handle Handle, fn Handler) error {
	bound := func(_, sender, args any) error { return fn(sender, args) }
	return ManagerFor(source).register(event, handle, bound)
}

// Unregister removes all of owner's handlers for source's event. No-op
// if source has no manager or owner was never registered.
func Unregister(source any, event string, owner any) {
	if m := defaultRegistry.lookup(source); m != nil {
		m.Unregister(event, owner)
	}
}

// Dispatch raises source's event to all live registered handlers. See
// EventManager.Dispatch for ordering and error semantics. Dispatching
// an event nobody ever registered for is a no-op.
func Dispatch(source any, event string, sender, args any) error {
	if m := defaultRegistry.lookup(source); m != nil {
		return m.Dispatch(event, sender, args)
	}
	return nil
}

// TestResetManagers drops every registered manager.
// Only use this in test code.
func TestResetManagers() {
	defaultRegistry.mu.Lock()
	defaultRegistry.managers = make(map[any]*EventManager)
	defaultRegistry.mu.Unlock()
}
