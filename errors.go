package arc

import "errors"

var (
	// ErrNilSystem is returned when a nil system is added to a world.
	ErrNilSystem = errors.New("arc: nil system")
	// ErrSystemAlreadyAdded indicates an attempt to add a second system of the same kind.
	ErrSystemAlreadyAdded = errors.New("arc: system already added")
	// ErrSystemDisposed indicates a disposed system was offered to a world.
	ErrSystemDisposed = errors.New("arc: system disposed")
	// ErrNilComponent is returned when a deferred add carries a nil component.
	ErrNilComponent = errors.New("arc: nil component")
	// ErrDeadEntity indicates a deferred command referenced an entity that is not alive.
	ErrDeadEntity = errors.New("arc: entity not alive")
	// ErrForeignEntity indicates an entity handle from a different world.
	ErrForeignEntity = errors.New("arc: entity belongs to another world")
)
