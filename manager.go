package mvvm

import (
	"sync"

	"github.com/grindlemire/go-mvvm/internal/debug"
)

// Handler is an event callback. sender is the object that raised the
// event; args is an immutable value object supplied by the raiser. A
// non-nil error marks the handler as failed without stopping delivery
// to the rest of the pass.
type Handler func(sender, args any) error

// SenderOnly adapts a handler that has no use for event args.
func SenderOnly(fn func(sender any) error) Handler {
	return func(sender, _ any) error { return fn(sender) }
}

// boundHandler is the stored form of a handler. Dispatch passes in the
// owner resolved from the entry's weak handle, so callbacks that need
// their owner do not have to capture it strongly (which would keep the
// owner alive through the handler table and defeat the weak handle).
type boundHandler func(owner, sender, args any) error

// EventDeclarer is implemented by sources that declare their event
// names. The declaration is queried once, when the source's
// EventManager is created; registering against an undeclared name then
// fails with *UnknownEventError. Sources that do not implement it
// accept any event name.
type EventDeclarer interface {
	DeclaredEvents() []string
}

// EventManager tracks the handlers registered against a single source.
// It stores only weak handles to subscribers, so a registration never
// keeps its owner alive. One manager exists per source; obtain it with
// ManagerFor or go through the package-level Register, Unregister and
// Dispatch functions.
type EventManager struct {
	mu     sync.Mutex
	source any
	known  map[string]struct{} // nil when the source declares no events
	table  *handlerTable
}

func newEventManager(source any) *EventManager {
	m := &EventManager{source: source, table: newHandlerTable()}
	if d, ok := source.(EventDeclarer); ok {
		m.known = make(map[string]struct{})
		for _, name := range d.DeclaredEvents() {
			m.known[name] = struct{}{}
		}
	}
	return m
}

// register appends a handler entry for event under the manager lock.
func (m *EventManager) register(event string, handle Handle, fn boundHandler) error {
	if m.known != nil {
		if _, ok := m.known[event]; !ok {
			return &UnknownEventError{Event: event, Source: m.source}
		}
	}
	m.mu.Lock()
	m.table.add(event, &handlerEntry{handle: handle, fn: fn})
	m.mu.Unlock()
	return nil
}

// Unregister removes every entry for event whose handle resolves to
// owner. Unregistering a handler that was never registered is a no-op,
// not an error.
func (m *EventManager) Unregister(event string, owner any) {
	m.mu.Lock()
	removed := m.table.removeOwner(event, owner)
	m.mu.Unlock()
	if removed > 0 {
		debug.Log("EventManager.Unregister: removed %d entries for %q", removed, event)
	}
}

// Dispatch invokes the handlers registered for event in registration
// order. The entry list is snapshotted under the manager lock and dead
// entries are pruned from the live table; the lock is released before
// any handler runs, so a handler may register or unregister without
// deadlocking. Handlers added during the pass fire on the next
// dispatch, not this one.
//
// A failing handler does not stop the pass: every remaining handler is
// still attempted, and the first failure is returned wrapped in a
// *DispatchError once the pass completes.
func (m *EventManager) Dispatch(event string, sender, args any) error {
	m.mu.Lock()
	live := m.table.snapshot(event)
	m.mu.Unlock()

	debug.Log("EventManager.Dispatch: %q to %d handlers", event, len(live))
	var first error
	for _, h := range live {
		if err := h.fn(h.owner, sender, args); err != nil && first == nil {
			first = err
		}
	}
	if first != nil {
		return &DispatchError{Event: event, Err: first}
	}
	return nil
}

// pendingHandlers returns the stored entry count for event, dead
// entries included. Used by tests to observe pruning.
func (m *EventManager) pendingHandlers(event string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.table.count(event)
}
