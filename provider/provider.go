package provider

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrNoProvider is returned when no implementation of a capability matches.
var ErrNoProvider = errors.New("no provider found")

// ErrAmbiguousProvider is returned when more than one implementation is
// present and no discriminator was supplied.
var ErrAmbiguousProvider = errors.New("multiple providers found")

// Descriptor describes one implementation of a capability T: a qualified
// name used for explicit selection and a factory producing the
// implementation.
type Descriptor[T any] struct {
	Name string
	New  func() (T, error)
}

// Registry holds the implementations of a single capability. Implementations
// register themselves at a well-defined initialization point, typically the
// package wiring of the embedding application; there is no runtime scanning.
type Registry[T any] struct {
	mu          sync.RWMutex
	descriptors []Descriptor[T]
}

// NewRegistry creates an empty capability registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{}
}

// Register adds an implementation. Registering a descriptor with an already
// registered name replaces the prior descriptor, so repeated wiring in tests
// is safe.
func (r *Registry[T]) Register(descriptor Descriptor[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.descriptors {
		if existing.Name == descriptor.Name {
			r.descriptors[i] = descriptor

			return
		}
	}

	r.descriptors = append(r.descriptors, descriptor)
}

// Discover returns a snapshot of the registered implementations in
// registration order. The snapshot is independent of later registrations.
func (r *Registry[T]) Discover() []Descriptor[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]Descriptor[T], len(r.descriptors))
	copy(snapshot, r.descriptors)

	return snapshot
}

// SelectSingle returns the sole implementation in the list. It fails with
// ErrNoProvider on an empty list and with ErrAmbiguousProvider, naming the
// candidates, when the caller must supply a discriminator instead.
func SelectSingle[T any](list []Descriptor[T]) (Descriptor[T], error) {
	switch len(list) {
	case 0:
		return Descriptor[T]{}, ErrNoProvider
	case 1:
		return list[0], nil
	default:
		return Descriptor[T]{}, fmt.Errorf("%w: candidates [%s]", ErrAmbiguousProvider, names(list))
	}
}

// SelectByName returns the implementation whose name matches exactly.
func SelectByName[T any](list []Descriptor[T], name string) (Descriptor[T], error) {
	for _, descriptor := range list {
		if descriptor.Name == name {
			return descriptor, nil
		}
	}

	return Descriptor[T]{}, fmt.Errorf("%w: no candidate named %q in [%s]", ErrNoProvider, name, names(list))
}

func names[T any](list []Descriptor[T]) string {
	parts := make([]string, len(list))
	for i, descriptor := range list {
		parts[i] = descriptor.Name
	}

	return strings.Join(parts, ", ")
}
