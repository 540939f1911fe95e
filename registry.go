package numpydoc

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"numpydoc/docfields"
	"numpydoc/signature"
)

var (
	// ErrNotFound is returned when no documentation is registered under a
	// name.
	ErrNotFound = errors.New("documentation not found")

	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("documentation already registered")

	// ErrInvalidName is returned for a blank registry name.
	ErrInvalidName = errors.New("invalid name")
)

// Documentation is the function-independent view of a Documented value.
type Documentation interface {
	Doc() string
	Signature() signature.Descriptor
	Model() *docfields.Model
}

// Registry maps names to documentation. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Documentation
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Documentation)}
}

// Register stores d under name. Names are unique; registering a name
// again fails with ErrDuplicate.
func (r *Registry) Register(name string, d Documentation) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}

	if d == nil {
		return fmt.Errorf("%w: nil documentation for %s", ErrInvalidName, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}

	r.entries[name] = d

	return nil
}

// Lookup returns the documentation registered under name. Surrounding
// whitespace is ignored, as in Register.
func (r *Registry) Lookup(name string) (Documentation, bool) {
	name = strings.TrimSpace(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.entries[name]

	return d, ok
}

// Doc returns the rendered documentation registered under name.
func (r *Registry) Doc(name string) (string, error) {
	d, ok := r.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return d.Doc(), nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}
