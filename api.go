// Package arc is a data-oriented entity-component-system runtime. Entities
// are integer identities, components are typed data attached to them, and
// systems iterate the entities whose component membership matches their
// required and excluded sets. Execution is single-threaded and step-driven:
// all mutation happens on the goroutine calling World.Update.
package arc

import (
	"io"
	"time"
)

// Component marks a value that can be attached to an entity. Components are
// added as pointers to structs; the pointed-to struct type is the component
// kind used for registry indices and matching.
type Component any

// System is a unit of processing driven by the world's update loop. Concrete
// systems embed BaseSystem (or IteratingSystem) to satisfy the unexported
// lifecycle accessor; the world drives state transitions, systems only
// implement Update.
type System interface {
	// Update runs one frame of work. dt is the elapsed time in seconds.
	Update(dt float64)

	base() *BaseSystem
}

// Initializer is implemented by systems that need setup when the world
// initializes them. The hook runs once; repeated world initialization does
// not re-run it.
type Initializer interface {
	Initialize()
}

// Disposer is implemented by systems that hold resources to release. The
// hook runs once when the system is disposed; disposal is terminal.
type Disposer interface {
	Dispose()
}

// EntityDeleteObserver is implemented by systems that want to observe entity
// deletion. The world notifies enabled systems in registration order,
// strictly after the entity's components have been removed.
type EntityDeleteObserver interface {
	OnEntityDeleted(e Entity)
}

// Processor receives one matching entity per call during an iterating
// system's update pass.
type Processor interface {
	Process(e Entity, dt float64)
}

// Command represents a structural mutation deferred until the current system
// pass completes.
type Command interface {
	Apply(world *World) error
}

// Logger captures structured log output from the world and its observers.
type Logger interface {
	With(key string, value any) Logger
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// UpdateObserver receives a summary after each system finishes its slice of
// an update.
type UpdateObserver interface {
	SystemCompleted(summary UpdateSummary)
}

// UpdateSummary captures execution metadata for one system during one update.
type UpdateSummary struct {
	System           string
	Tick             uint64
	Delta            float64
	Duration         time.Duration
	EntitiesMatched  int
	EntitiesLive     int
	CommandsDeferred int
	Error            error
}

// LogFormat controls structured logging encoding.
type LogFormat uint8

const (
	LogFormatJSON LogFormat = iota
	LogFormatKeyValue
)

// InstrumentationConfig configures the observer chain built for a world.
type InstrumentationConfig struct {
	Observer         UpdateObserver
	EnableLogging    bool
	LoggingFormat    LogFormat
	StructuredLogger Logger
	EnableMetrics    bool
	MetricsCollector MetricsCollector
	MetricsOptions   *MetricsCollectorOptions
	EnableSpans      bool
	SpanExporter     SpanExporter
	SpanOptions      *SpanExporterOptions
}

// MetricsCollector aggregates per-system summaries for metrics exposition.
type MetricsCollector interface {
	ObserveSystem(summary UpdateSummary)
}

// MetricsCollectorOptions tunes the built-in text-format collector.
type MetricsCollectorOptions struct {
	Writer          io.Writer
	DurationBuckets []time.Duration
}

// SpanExporter receives per-system summaries rendered as trace spans.
type SpanExporter interface {
	ExportSystem(summary UpdateSummary)
}

// SpanExporterOptions tunes the built-in JSON span exporter.
type SpanExporterOptions struct {
	Writer      io.Writer
	ServiceName string
}
