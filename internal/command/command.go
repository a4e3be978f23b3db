// Package command is a registry of named actions that input bindings and
// overlay widgets invoke by name.
package command

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownCommand is returned when invoking a name nobody registered.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrDuplicateCommand is returned when registering a name twice.
	ErrDuplicateCommand = errors.New("command already registered")
)

// Func is a registered action.
type Func func() error

// Registry maps names to actions. It is not safe for concurrent use; all
// invocations happen on the main goroutine.
type Registry struct {
	commands map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Func)}
}

// Register publishes fn under name.
func (r *Registry) Register(name string, fn Func) error {
	if _, ok := r.commands[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}
	r.commands[name] = fn
	return nil
}

// Invoke runs the command registered under name.
func (r *Registry) Invoke(name string) error {
	fn, ok := r.commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return fn()
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.commands[name]
	return ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default is the process-wide registry.
var Default = NewRegistry()

// Register publishes fn under name in the Default registry.
func Register(name string, fn Func) error {
	return Default.Register(name, fn)
}

// Invoke runs name from the Default registry.
func Invoke(name string) error {
	return Default.Invoke(name)
}
