package arc

import (
	"reflect"

	"github.com/arriety/arc/container"
)

type lifecycleState uint8

const (
	stateUninitialized lifecycleState = iota
	stateInitialized
	stateDisposed
)

var emptyBits container.BitSet

// BaseSystem carries the lifecycle state machine and the required/excluded
// component filter shared by every system. Concrete systems embed it (or
// IteratingSystem) and declare their filter with Require and Exclude before
// the world initializes them; the filter is fixed once resolved.
//
// Lifecycle: Uninitialized -> Initialized -> (enabled|disabled) -> Disposed.
// Initialization and disposal are idempotent, and disposal is terminal: a
// disposed system cannot be initialized again.
type BaseSystem struct {
	world    *World
	state    lifecycleState
	disabled bool

	requireKinds []reflect.Type
	excludeKinds []reflect.Type
	required     container.BitSet
	excluded     container.BitSet

	lastMatched int
}

// Require declares component kinds an entity must all carry to match.
func (s *BaseSystem) Require(protos ...Component) {
	for _, p := range protos {
		s.requireKinds = append(s.requireKinds, KindOf(p))
	}
}

// Exclude declares component kinds that disqualify an entity. An entity
// carrying any of them never matches. Declaring a kind both required and
// excluded is not an error; it just means nothing can ever match.
func (s *BaseSystem) Exclude(protos ...Component) {
	for _, p := range protos {
		s.excludeKinds = append(s.excludeKinds, KindOf(p))
	}
}

// World returns the world the system is attached to, nil before
// initialization.
func (s *BaseSystem) World() *World {
	return s.world
}

// IsEnabled reports whether the world runs this system during updates.
// Systems start enabled.
func (s *BaseSystem) IsEnabled() bool {
	return !s.disabled
}

// SetEnabled toggles whether the world runs this system during updates. It
// may be called before the system is added to a world; a system disabled
// before initialization stays disabled through it.
func (s *BaseSystem) SetEnabled(enabled bool) {
	if s.state == stateDisposed {
		return
	}
	s.disabled = !enabled
}

// Matches reports whether e satisfies the system's filter: e's membership
// bits contain every required bit and intersect none of the excluded bits.
// It is evaluated fresh on every call; match results are never cached across
// frames, because component membership can change between or during updates.
func (s *BaseSystem) Matches(e Entity) bool {
	if s.world == nil {
		return false
	}
	bits := s.world.components.bitsFor(e.id)
	if bits == nil {
		bits = &emptyBits
	}
	return bits.ContainsAll(&s.required) && !bits.Intersects(&s.excluded)
}

func (s *BaseSystem) base() *BaseSystem { return s }

// attach resolves the declared filter against the world's registry and moves
// the system to Initialized. Called by the world only.
func (s *BaseSystem) attach(w *World) {
	s.world = w
	s.required = container.BitSet{}
	s.excluded = container.BitSet{}
	for _, kind := range s.requireKinds {
		s.required.Set(w.registry.IndexOf(kind))
	}
	for _, kind := range s.excludeKinds {
		s.excluded.Set(w.registry.IndexOf(kind))
	}
	s.state = stateInitialized
}

// IteratingSystem is the supported processing shape: on every update it
// snapshots the live entities, tests each against the filter, and hands
// matching ones to the Processor. The snapshot makes structural changes
// performed mid-pass (directly or via World.Defer) safe for the pass itself.
//
// Manually scanning World.Entities from a plain BaseSystem remains possible
// but is deliberately not the default; it reintroduces the forgot-to-check-
// Matches class of bugs this type exists to remove.
type IteratingSystem struct {
	BaseSystem
	processor Processor
}

// NewIteratingSystem wires the per-entity hook. Concrete systems embed
// IteratingSystem, pass themselves as the processor, and declare their
// filter with Require/Exclude:
//
//	type MovementSystem struct{ arc.IteratingSystem }
//
//	func NewMovementSystem() *MovementSystem {
//		s := &MovementSystem{}
//		s.IteratingSystem = arc.NewIteratingSystem(s)
//		s.Require(&Transform{}, &Movement{})
//		return s
//	}
func NewIteratingSystem(p Processor) IteratingSystem {
	return IteratingSystem{processor: p}
}

// Update scans a snapshot of the live entities and processes each match.
func (s *IteratingSystem) Update(dt float64) {
	if s.world == nil || s.processor == nil || s.state != stateInitialized {
		return
	}
	entities := s.world.Entities()
	s.lastMatched = 0
	for _, e := range entities {
		// An earlier Process call in this pass may have deleted the entity.
		if !e.Alive() || !s.Matches(e) {
			continue
		}
		s.lastMatched++
		s.processor.Process(e, dt)
	}
}

var _ System = (*IteratingSystem)(nil)
