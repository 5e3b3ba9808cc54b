package mvvm

// handlerEntry pairs a subscriber handle with the callable declared at
// registration. An entry whose handle no longer resolves is never
// invoked and is pruned on the next snapshot or unregister pass.
type handlerEntry struct {
	handle Handle
	fn     boundHandler
}

// liveHandler is a resolved entry captured by a dispatch snapshot. The
// owner reference pins the subscriber for the duration of the pass.
type liveHandler struct {
	owner any
	fn    boundHandler
}

// handlerTable maps event names to ordered handler entries. It is not
// self-locking: the owning EventManager guards all access.
type handlerTable struct {
	entries map[string][]*handlerEntry
}

func newHandlerTable() *handlerTable {
	return &handlerTable{entries: make(map[string][]*handlerEntry)}
}

// add appends an entry, preserving registration order. Duplicate
// (handle, fn) pairs are allowed and both fire.
func (t *handlerTable) add(event string, e *handlerEntry) {
	t.entries[event] = append(t.entries[event], e)
}

// snapshot resolves the current entries for event in registration order
// and prunes entries whose handle is dead. The returned slice is
// independent of the live table, so entries added during the subsequent
// invocation pass are not part of it.
func (t *handlerTable) snapshot(event string) []liveHandler {
	entries := t.entries[event]
	if len(entries) == 0 {
		return nil
	}
	live := make([]liveHandler, 0, len(entries))
	kept := entries[:0]
	for _, e := range entries {
		owner, ok := e.handle.Resolve()
		if !ok {
			continue
		}
		kept = append(kept, e)
		live = append(live, liveHandler{owner: owner, fn: e.fn})
	}
	t.replace(event, entries, kept)
	return live
}

// removeOwner drops every entry for event whose handle resolves to
// owner, pruning dead entries along the way. Returns the number of
// entries removed.
func (t *handlerTable) removeOwner(event string, owner any) int {
	entries := t.entries[event]
	if len(entries) == 0 {
		return 0
	}
	removed := 0
	kept := entries[:0]
	for _, e := range entries {
		resolved, ok := e.handle.Resolve()
		if !ok || resolved == owner {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	t.replace(event, entries, kept)
	return removed
}

// replace installs the filtered entry list, zeroing the dropped tail of
// the shared backing array so removed entries do not linger.
func (t *handlerTable) replace(event string, entries, kept []*handlerEntry) {
	for i := len(kept); i < len(entries); i++ {
		entries[i] = nil
	}
	if len(kept) == 0 {
		delete(t.entries, event)
		return
	}
	t.entries[event] = kept
}

// count returns the number of stored entries for event, dead or alive.
func (t *handlerTable) count(event string) int {
	return len(t.entries[event])
}
