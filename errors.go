package mvvm

import "fmt"

// UnknownEventError reports a registration against an event name the
// source does not declare. It is fatal to the registration call only.
type UnknownEventError struct {
	Event  string
	Source any
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("unknown event %q for source %T", e.Event, e.Source)
}

// DispatchError wraps the first handler failure from a dispatch pass.
// Every handler in the pass was still attempted before this error was
// returned; delivery is best-effort, not fail-fast.
type DispatchError struct {
	Event string
	Err   error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch %q: handler failed: %v", e.Event, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }
