// Package mvvm provides decoupled event subscription and property-change
// propagation for model/view-model style programs.
//
// Users import this single package for the complete public API: weak event
// registration, change notification with dependency cascades, and the
// ViewModel base type that mirrors a wrapped model's notifications.
package mvvm
