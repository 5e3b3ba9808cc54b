package mvvm

// fakeHandle is an explicit-liveness Handle for tests: liveness is
// toggled directly instead of depending on the garbage collector.
type fakeHandle struct {
	owner any
	dead  bool
}

func (h *fakeHandle) Resolve() (any, bool) {
	if h.dead {
		return nil, false
	}
	return h.owner, true
}

// subscriber is a plain handler owner used across tests.
type subscriber struct {
	name string
	data []byte
}

func newSubscriber(name string) *subscriber {
	return &subscriber{name: name, data: make([]byte, 64)}
}

// plainSource is an event source that declares nothing.
type plainSource struct {
	name string
}

// declaringSource validates event names at registration.
type declaringSource struct {
	events []string
}

func (s *declaringSource) DeclaredEvents() []string { return s.events }
