package arc

import (
	"fmt"
	"reflect"
	"time"

	"github.com/rotisserie/eris"
)

const (
	defaultEntityHint    = 100
	defaultComponentHint = 200
)

// WorldOption configures a world at construction time.
type WorldOption func(*World)

// WithExpectedEntityCount sizes entity-indexed storage up front. A capacity
// hint, not a limit: exceeding it triggers growth, never failure.
func WithExpectedEntityCount(n int) WorldOption {
	return func(w *World) {
		if n > 0 {
			w.entityHint = n
		}
	}
}

// WithExpectedComponentCount sizes type-indexed storage up front. A capacity
// hint, not a limit.
func WithExpectedComponentCount(n int) WorldOption {
	return func(w *World) {
		if n > 0 {
			w.componentHint = n
		}
	}
}

// WithLogger overrides the default no-op logger.
func WithLogger(logger Logger) WorldOption {
	return func(w *World) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithInstrumentation installs an observer chain fed one UpdateSummary per
// system per update.
func WithInstrumentation(cfg InstrumentationConfig) WorldOption {
	return func(w *World) {
		w.instrumentation = cfg
	}
}

// WithResources overrides the default empty resource container.
func WithResources(resources *Resources) WorldOption {
	return func(w *World) {
		if resources != nil {
			w.resources = resources
		}
	}
}

// World is the aggregate root: it owns the entity manager, the component
// store aggregate, the type registry, and an ordered list of systems, and
// drives the update loop over them. A world is confined to a single
// goroutine; nothing in it is synchronized.
type World struct {
	entityHint      int
	componentHint   int
	logger          Logger
	instrumentation InstrumentationConfig

	registry   *TypeRegistry
	entities   *entityManager
	components *componentManager
	resources  *Resources
	systems    []System
	buffer     *CommandBuffer
	observer   UpdateObserver

	initialized bool
	delta       float64
	tick        uint64
}

// NewWorld constructs a world, applying options before any storage is sized.
func NewWorld(opts ...WorldOption) *World {
	w := &World{
		entityHint:    defaultEntityHint,
		componentHint: defaultComponentHint,
		logger:        noopLogger{},
	}
	for _, opt := range opts {
		opt(w)
	}
	w.registry = NewTypeRegistry()
	w.entities = newEntityManager(w, w.entityHint)
	w.components = newComponentManager(w, w.entityHint, w.componentHint)
	if w.resources == nil {
		w.resources = NewResources()
	}
	w.buffer = NewCommandBuffer()
	w.observer = buildObserverChain(w.logger, w.instrumentation)
	return w
}

// CreateEntity allocates a new entity, recycling the oldest deleted ID when
// one is available.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DeleteEntity removes e from the world: all components are detached first,
// the identity is released for recycling, and every enabled system is then
// notified in registration order. Observers therefore never see a component
// belonging to an entity mid-deletion. Deleting a dead or foreign entity is
// a no-op.
func (w *World) DeleteEntity(e Entity) {
	if e.world != w || !w.entities.isLive(e.id) {
		return
	}
	w.components.removeAll(e.id)
	w.entities.delete(e.id)
	for _, sys := range w.systems {
		b := sys.base()
		if b.state != stateInitialized || b.disabled {
			continue
		}
		if obs, ok := sys.(EntityDeleteObserver); ok {
			obs.OnEntityDeleted(e)
		}
	}
}

// Entity returns a handle for id, or absence for dead or never-issued IDs.
func (w *World) Entity(id int) (Entity, bool) {
	return w.entities.get(id)
}

// Entities returns a snapshot of the live entities in ID order. Structural
// changes made after the call do not disturb iteration over the snapshot.
func (w *World) Entities() []Entity {
	return w.entities.entities()
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.entities.size()
}

// AddSystem appends sys to the system list. Systems run in the order they
// were added. Adding a second system of the same concrete kind is an error,
// as is re-adding a disposed system. When the world is already initialized
// the new system is initialized immediately.
func (w *World) AddSystem(sys System) error {
	if sys == nil {
		return ErrNilSystem
	}
	b := sys.base()
	if b.state == stateDisposed {
		return eris.Wrapf(ErrSystemDisposed, "%T", sys)
	}
	kind := reflect.TypeOf(sys)
	for _, existing := range w.systems {
		if reflect.TypeOf(existing) == kind {
			return eris.Wrapf(ErrSystemAlreadyAdded, "%s", kind)
		}
	}
	w.systems = append(w.systems, sys)
	if w.initialized {
		w.initializeSystem(sys)
	}
	return nil
}

// RemoveSystem removes sys from the system list and disposes it. Removing a
// system that was never added reports false.
func (w *World) RemoveSystem(sys System) bool {
	for i, existing := range w.systems {
		if existing == sys {
			w.systems = append(w.systems[:i], w.systems[i+1:]...)
			w.disposeSystem(sys)
			return true
		}
	}
	return false
}

// Systems returns the registered systems in execution order.
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// Initialize moves every registered system to the initialized state. It is
// idempotent; repeat calls are no-ops. Must be called before Update.
func (w *World) Initialize() {
	if w.initialized {
		return
	}
	for _, sys := range w.systems {
		w.initializeSystem(sys)
	}
	w.initialized = true
}

// Update advances the world by dt seconds, running every enabled system in
// registration order. Structural commands deferred during a system's pass
// are applied as soon as that pass ends, so the next system observes them.
// Calling Update before Initialize is a programming error and panics.
func (w *World) Update(dt float64) {
	if !w.initialized {
		panic("arc: world must be initialized before update")
	}
	w.delta = dt
	w.tick++
	for _, sys := range w.systems {
		b := sys.base()
		if b.state != stateInitialized || b.disabled {
			continue
		}
		start := time.Now()
		deferred := w.buffer.Len()
		b.lastMatched = 0
		sys.Update(dt)
		queued := w.buffer.Len() - deferred
		err := w.flushDeferred()
		w.observer.SystemCompleted(UpdateSummary{
			System:           systemName(sys),
			Tick:             w.tick,
			Delta:            dt,
			Duration:         time.Since(start),
			EntitiesMatched:  b.lastMatched,
			EntitiesLive:     w.entities.size(),
			CommandsDeferred: queued,
			Error:            err,
		})
	}
}

// Dispose tears the world down: systems are disposed in registration order,
// then all component storage and entities are cleared. Idempotent; a
// disposed world may be re-populated and initialized again.
func (w *World) Dispose() {
	for _, sys := range w.systems {
		w.disposeSystem(sys)
	}
	w.systems = nil
	w.components.clear()
	w.entities.clear()
	w.buffer.Drain()
	w.initialized = false
}

// Defer queues a structural command to run after the current system's pass.
// Systems use this for mutations that would otherwise race their own
// iteration. Outside an update the command runs on the next flush.
func (w *World) Defer(cmd Command) {
	w.buffer.Push(cmd)
}

// FlushDeferred applies queued commands immediately. The update loop calls
// this after every system pass; callers mutating outside the loop may flush
// by hand.
func (w *World) FlushDeferred() error {
	return w.flushDeferred()
}

func (w *World) flushDeferred() error {
	var firstErr error
	for _, cmd := range w.buffer.Drain() {
		if cmd == nil {
			continue
		}
		if err := cmd.Apply(w); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			w.logger.Error("deferred command failed", "err", err)
		}
	}
	return firstErr
}

// Resources returns the world's shared resource container.
func (w *World) Resources() *Resources {
	return w.resources
}

// Registry returns the world's component type registry.
func (w *World) Registry() *TypeRegistry {
	return w.registry
}

// Logger returns the world's logger.
func (w *World) Logger() Logger {
	return w.logger
}

// Initialized reports whether Initialize has run.
func (w *World) Initialized() bool {
	return w.initialized
}

// Delta returns the dt passed to the most recent Update, in seconds.
func (w *World) Delta() float64 {
	return w.delta
}

// Tick returns the number of completed Update calls.
func (w *World) Tick() uint64 {
	return w.tick
}

func (w *World) String() string {
	return fmt.Sprintf("World{entities=%d, systems=%d, types=%d, initialized=%t}",
		w.entities.size(), len(w.systems), w.registry.Count(), w.initialized)
}

func (w *World) initializeSystem(sys System) {
	b := sys.base()
	switch b.state {
	case stateDisposed:
		panic(fmt.Sprintf("arc: cannot initialize disposed system %T", sys))
	case stateInitialized:
		return
	}
	b.attach(w)
	if init, ok := sys.(Initializer); ok {
		init.Initialize()
	}
}

func (w *World) disposeSystem(sys System) {
	b := sys.base()
	if b.state == stateDisposed {
		return
	}
	if d, ok := sys.(Disposer); ok {
		d.Dispose()
	}
	b.disabled = true
	b.state = stateDisposed
}

func systemName(sys System) string {
	t := reflect.TypeOf(sys)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
