package registry

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'pagecraft.registry'.
func tracer() tracing.Trace {
	return tracing.Select("pagecraft.registry")
}

// Kind partitions registrations into independent name spaces.
type Kind string

// The kinds of extension points the core knows about.
const (
	KindComponent  Kind = "component-type"
	KindTemplate   Kind = "template"
	KindRenderHook Kind = "render-hook"
	KindFilter     Kind = "filter"
)

// Errors reported for registry misuse.
var (
	ErrDuplicateRegistration = errors.New("duplicate registration")
	ErrUnknownRegistration   = errors.New("unknown registration")
	ErrFrozenRegistry        = errors.New("registry is frozen")
)

// Registry is a name→value lookup enabling extensibility without core
// modification. It is an explicit value, not ambient global state: tests and
// applications construct their own registries and hand them to rendering
// calls.
//
// The intended lifecycle is populate-then-freeze: all registrations happen
// during a single-threaded startup phase, Freeze flips the registry
// read-only, and from then on concurrent lookups from independent goroutines
// are safe.
type Registry struct {
	mu      sync.RWMutex
	entries map[Kind]map[string]interface{}
	order   map[Kind][]string
	frozen  bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[Kind]map[string]interface{}),
		order:   make(map[Kind][]string),
	}
}

// Register binds value to (kind, name). Binding names are unique per kind;
// re-registration under the same (kind, name) fails with
// ErrDuplicateRegistration. Registration after Freeze fails with
// ErrFrozenRegistry.
func (r *Registry) Register(kind Kind, name string, value interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return fmt.Errorf("%w: cannot register %s %q", ErrFrozenRegistry, kind, name)
	}
	byName := r.entries[kind]
	if byName == nil {
		byName = make(map[string]interface{})
		r.entries[kind] = byName
	}
	if _, ok := byName[name]; ok {
		return fmt.Errorf("%w: %s %q", ErrDuplicateRegistration, kind, name)
	}
	byName[name] = value
	r.order[kind] = append(r.order[kind], name)
	tracer().Debugf("registry: registered %s %q", kind, name)
	return nil
}

// Lookup returns the value bound to (kind, name), failing with
// ErrUnknownRegistration if the binding is absent.
func (r *Registry) Lookup(kind Kind, name string) (interface{}, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if byName := r.entries[kind]; byName != nil {
		if v, ok := byName[name]; ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %s %q", ErrUnknownRegistration, kind, name)
}

// Contains reports whether (kind, name) is bound.
func (r *Registry) Contains(kind Kind, name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	byName := r.entries[kind]
	if byName == nil {
		return false
	}
	_, ok := byName[name]
	return ok
}

// ListAll enumerates the names bound under kind, in registration order.
func (r *Registry) ListAll(kind Kind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order[kind]))
	copy(names, r.order[kind])
	return names
}

// Freeze flips the registry read-only. Freezing twice is harmless.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Frozen reports whether the registry has been frozen.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}
