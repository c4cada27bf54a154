package arc

import "reflect"

// TypeRegistry assigns each distinct component kind a dense integer index on
// first use. The mapping is bijective and stable for the registry's
// lifetime: indices are never reassigned or reclaimed, even when every
// instance of a kind has been removed. Each world owns its own registry, so
// independent worlds (and tests) never leak indices into each other.
type TypeRegistry struct {
	indices map[reflect.Type]int
	kinds   []reflect.Type
}

// NewTypeRegistry constructs an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{indices: make(map[reflect.Type]int)}
}

// IndexOf returns the index for kind, assigning the next free index the
// first time the kind is seen.
func (r *TypeRegistry) IndexOf(kind reflect.Type) int {
	if idx, ok := r.indices[kind]; ok {
		return idx
	}
	idx := len(r.kinds)
	r.indices[kind] = idx
	r.kinds = append(r.kinds, kind)
	return idx
}

// Lookup returns the index for kind without assigning one.
func (r *TypeRegistry) Lookup(kind reflect.Type) (int, bool) {
	idx, ok := r.indices[kind]
	return idx, ok
}

// Kind returns the component kind registered at index.
func (r *TypeRegistry) Kind(index int) (reflect.Type, bool) {
	if index < 0 || index >= len(r.kinds) {
		return nil, false
	}
	return r.kinds[index], true
}

// Count returns the number of registered kinds.
func (r *TypeRegistry) Count() int {
	return len(r.kinds)
}

// Reset forgets every assignment. Only valid between independent simulation
// runs; resetting a registry that live worlds still reference scrambles
// their component indices.
func (r *TypeRegistry) Reset() {
	r.indices = make(map[reflect.Type]int)
	r.kinds = nil
}

// KindOf normalizes a component value to its kind. Pointer components key on
// the pointed-to struct type, so &Health{} and Health{} name the same kind.
func KindOf(c Component) reflect.Type {
	t := reflect.TypeOf(c)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
