// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"sort"
	"sync"
)

// HostFactory creates a new Host with the given options.
type HostFactory func(opts Options) (Host, error)

// RegistryEntry represents a registered host backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Built-in priorities:
	//   - 20: svg
	//   - 10: image
	Priority int

	// Factory creates host instances.
	Factory HostFactory

	// Available reports if the backend can be used.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered host backends.
//
// Example registration:
//
//	func init() {
//	    surface.Register("pdf", 5, pdfFactory, nil)
//	}
//
// Example usage:
//
//	h, err := surface.NewSurfaceByName("svg", surface.Options{})
//	// or auto-select best available:
//	h, err := surface.NewSurface(surface.Options{})
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewSurface.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a backend to the global registry.
//
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory HostFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific backend.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// NewSurface creates a host using the best available backend.
func NewSurface(opts Options) (Host, error) {
	return globalRegistry.NewSurface(opts)
}

// NewSurfaceByName creates a host using a specific named backend.
func NewSurfaceByName(name string, opts Options) (Host, error) {
	return globalRegistry.NewSurfaceByName(name, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory HostFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific backend.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	entryCopy := *entry
	return &entryCopy, true
}

// NewSurface creates a host using the best available backend.
func (r *Registry) NewSurface(opts Options) (Host, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var lastErr error
	for _, name := range available {
		h, err := r.NewSurfaceByName(name, opts)
		if err == nil {
			return h, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// NewSurfaceByName creates a host using a specific backend.
func (r *Registry) NewSurfaceByName(name string, opts Options) (Host, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}

	return entry.Factory(opts)
}

// sortedNames returns backend names sorted by priority (highest first),
// then by name. Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].name < entries[j].name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no host backends are registered
	// or available.
	ErrNoBackendAvailable = errors.New("surface: no backend available")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

// init registers the built-in hosts.
func init() {
	Register("svg", 20, func(Options) (Host, error) {
		return NewSVG(), nil
	}, nil)
	Register("image", 10, func(opts Options) (Host, error) {
		return NewImage(opts.Background), nil
	}, fontsAvailable)
}
