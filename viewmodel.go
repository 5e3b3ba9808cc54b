package mvvm

import (
	"fmt"
	"sync"

	"github.com/grindlemire/go-mvvm/internal/debug"
)

// BusyProperty is the property name raised when a ViewModel's busy flag
// transitions.
const BusyProperty = "Busy"

// Observable is implemented by models that broadcast property changes.
// *Notifier satisfies it, so embedding a Notifier makes a model
// observable.
type Observable interface {
	OnChanged(fn PropertyListener) Unbind
}

// ViewModel wraps a model object and mirrors its change notifications.
// Properties named in the passthrough set are re-raised through the
// ViewModel's own Notifier when the model raises them. Embed ViewModel
// in concrete view-model types.
//
// The model reference must only be mutated through SetModel, which
// keeps the subscription to the model's notifications consistent with
// the held reference. Models are compared by identity, so they should
// be pointers.
type ViewModel struct {
	Notifier

	mu     sync.Mutex
	model  any
	unbind Unbind
	busy   bool
	mirror map[string]struct{}

	// ModelChanged, if set, is called after a model swap, strictly
	// after the "all properties changed" notification for the swap.
	ModelChanged func(oldModel, newModel any)

	// ModelPropertyChanged, if set, is called for every property change
	// the model raises, whether or not the name is mirrored.
	ModelPropertyChanged func(property string)
}

// NewViewModel creates a view-model that mirrors change notifications
// for the named passthrough properties of whatever model it wraps.
func NewViewModel(passthrough ...string) *ViewModel {
	vm := &ViewModel{mirror: make(map[string]struct{}, len(passthrough))}
	for _, name := range passthrough {
		vm.mirror[name] = struct{}{}
	}
	return vm
}

// Model returns the currently wrapped model, or nil.
func (vm *ViewModel) Model() any {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.model
}

// SetModel replaces the wrapped model. Setting the current model again
// is a no-op: no unsubscribe, no notification. Otherwise the old
// model's subscription is removed, the reference swapped, and the new
// model (if Observable) subscribed, all before a single "all
// properties changed" notification is raised. The ModelChanged hook
// runs last, strictly after that notification.
func (vm *ViewModel) SetModel(model any) {
	vm.mu.Lock()
	if model == vm.model {
		vm.mu.Unlock()
		return
	}
	old := vm.model
	if vm.unbind != nil {
		vm.unbind()
		vm.unbind = nil
	}
	vm.model = model
	if obs, ok := model.(Observable); ok {
		vm.unbind = obs.OnChanged(vm.onModelChanged)
	}
	vm.mu.Unlock()

	debug.Log("ViewModel.SetModel: %T -> %T", old, model)
	vm.RaiseChangedForAll()
	if vm.ModelChanged != nil {
		vm.ModelChanged(old, model)
	}
}

// onModelChanged is the internal listener subscribed to the current
// model's notifier.
func (vm *ViewModel) onModelChanged(property string) {
	if property == AllProperties {
		vm.RaiseChangedForAll()
	} else if vm.mirrorsProperty(property) {
		vm.RaiseChanged(property)
	}
	if vm.ModelPropertyChanged != nil {
		vm.ModelPropertyChanged(property)
	}
}

func (vm *ViewModel) mirrorsProperty(property string) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	_, ok := vm.mirror[property]
	return ok
}

// Busy reports whether a RunWithBusyIndicator work item is in flight.
func (vm *ViewModel) Busy() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.busy
}

// SetBusy sets the busy flag, raising a change for BusyProperty on a
// real transition. Setting the flag to its current value raises
// nothing.
func (vm *ViewModel) SetBusy(busy bool) {
	vm.mu.Lock()
	if vm.busy == busy {
		vm.mu.Unlock()
		return
	}
	vm.busy = busy
	vm.mu.Unlock()
	vm.RaiseChanged(BusyProperty)
}

// RunWithBusyIndicator runs work with the busy flag raised and blocks
// until it completes. The flag transition to true is observable (via a
// BusyProperty notification) before work starts; the transition back
// to false always runs, even when work fails or panics. Cancellation
// is not supported: once started, work runs to completion or failure.
func (vm *ViewModel) RunWithBusyIndicator(work func() error) error {
	return <-vm.RunWithBusyIndicatorAsync(work)
}

// RunWithBusyIndicatorAsync starts work on its own goroutine under the
// busy flag and returns a channel that yields the work's error (or
// nil) once the flag has been lowered. A panic in work is recovered
// and reported as an error after the flag resets.
func (vm *ViewModel) RunWithBusyIndicatorAsync(work func() error) <-chan error {
	vm.SetBusy(true)
	done := make(chan error, 1)
	go func() {
		var err error
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("busy work panicked: %v", r)
			}
			vm.SetBusy(false)
			done <- err
		}()
		err = work()
	}()
	return done
}
