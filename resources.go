package arc

// Resources is a world-scoped blackboard for values shared across systems:
// clocks, random sources, tuning tables. The world is confined to one
// goroutine, so access is unsynchronized.
type Resources struct {
	values map[string]any
}

// NewResources constructs an empty container.
func NewResources() *Resources {
	return &Resources{values: make(map[string]any)}
}

// Get returns the resource registered under name.
func (r *Resources) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Set registers value under name, replacing any previous value.
func (r *Resources) Set(name string, value any) {
	r.values[name] = value
}

// Delete removes the resource registered under name.
func (r *Resources) Delete(name string) {
	delete(r.values, name)
}

// Range visits every resource. Returning false stops the walk.
func (r *Resources) Range(fn func(name string, value any) bool) {
	for k, v := range r.values {
		if !fn(k, v) {
			return
		}
	}
}
