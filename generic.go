package arc

import "reflect"

// Get returns the component of struct kind T attached to e. Components are
// stored as pointers, so Get[Health] yields a *Health the caller may mutate
// in place.
func Get[T any](e Entity) (*T, bool) {
	if !e.Alive() {
		return nil, false
	}
	idx, ok := e.world.registry.Lookup(kindFor[T]())
	if !ok {
		return nil, false
	}
	c, ok := e.world.components.get(e.id, idx)
	if !ok {
		return nil, false
	}
	typed, ok := c.(*T)
	return typed, ok
}

// Has reports whether e carries a component of struct kind T. Pure bit-set
// read.
func Has[T any](e Entity) bool {
	if !e.Alive() {
		return false
	}
	idx, ok := e.world.registry.Lookup(kindFor[T]())
	if !ok {
		return false
	}
	return e.world.components.has(e.id, idx)
}

// Remove detaches the component of struct kind T from e and returns it, or
// reports absence.
func Remove[T any](e Entity) (*T, bool) {
	if !e.Alive() {
		return nil, false
	}
	idx, ok := e.world.registry.Lookup(kindFor[T]())
	if !ok {
		return nil, false
	}
	c, ok := e.world.components.remove(e.id, idx)
	if !ok {
		return nil, false
	}
	typed, ok := c.(*T)
	return typed, ok
}

// SystemFor returns the registered system of concrete type S, or absence.
func SystemFor[S System](w *World) (S, bool) {
	for _, sys := range w.systems {
		if typed, ok := sys.(S); ok {
			return typed, true
		}
	}
	var zero S
	return zero, false
}

func kindFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
