// Package hook locates and runs pre-build hooks: built-in hook
// functions bound at startup, and user helper scripts discovered on a
// directory search path.
package hook

import (
	"fmt"
	"sort"

	"github.com/opencontrol/prebuild/buildenv"
)

// Func is a hook entry point. It receives the build environment
// object as its sole argument.
type Func func(env *buildenv.Env) error

// Registry maps hook names to statically bound hook functions. It is
// populated once at startup; resolution never falls back from a
// registered name to a script of the same name.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Register binds a hook name to a function. Registering the same name
// twice is a programmer error and panics.
func (r *Registry) Register(name string, fn Func) {
	if _, ok := r.funcs[name]; ok {
		panic(fmt.Sprintf("hook: duplicate registration of %q", name))
	}
	r.funcs[name] = fn
}

// Lookup returns the function bound to name.
func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns all registered hook names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
