package mvvm

// Dependencies maps a property name to the ordered set of properties
// that must also be raised when it changes. Build it once, attach it to
// a Notifier with SetDependencies, and treat it as read-only afterwards.
type Dependencies struct {
	deps map[string][]string
}

// NewDependencies creates an empty dependency table.
func NewDependencies() *Dependencies {
	return &Dependencies{deps: make(map[string][]string)}
}

// Add declares that a change to prop also changes each of dependents.
// Multiple calls for the same prop accumulate. A dependent declared
// twice is kept once, at its first position. Add returns the table for
// chaining.
func (d *Dependencies) Add(prop string, dependents ...string) *Dependencies {
	for _, dep := range dependents {
		if d.declared(prop, dep) {
			continue
		}
		d.deps[prop] = append(d.deps[prop], dep)
	}
	return d
}

func (d *Dependencies) declared(prop, dep string) bool {
	for _, existing := range d.deps[prop] {
		if existing == dep {
			return true
		}
	}
	return false
}

// Dependents returns the properties declared dependent on prop, in
// declaration order. The returned slice must not be modified.
func (d *Dependencies) Dependents(prop string) []string {
	if d == nil {
		return nil
	}
	return d.deps[prop]
}
