package mvvm

import (
	"sync"
	"time"

	"github.com/grindlemire/go-mvvm/internal/debug"
)

// WatchChannel dispatches source's event for each value received on
// ch, with the value as the event args and source as the sender. The
// pump exits when ch closes or when the returned stop function is
// called; stop is safe to call more than once.
func WatchChannel[T any](source any, event string, ch <-chan T) (stop func()) {
	stopCh := make(chan struct{})
	go func() {
		for {
			select {
			case <-stopCh:
				return
			case v, ok := <-ch:
				if !ok {
					return
				}
				if err := Dispatch(source, event, source, v); err != nil {
					debug.Log("WatchChannel: dispatch %q failed: %v", event, err)
				}
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(stopCh) }) }
}

// DispatchEvery raises source's event at a fixed interval with nil
// args until the returned stop function is called.
func DispatchEvery(source any, event string, interval time.Duration) (stop func()) {
	stopCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				if err := Dispatch(source, event, source, nil); err != nil {
					debug.Log("DispatchEvery: dispatch %q failed: %v", event, err)
				}
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(stopCh) }) }
}
