package registry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"github.com/vk/seedling/internal/config"
)

// Module is the interface all application modules implement to be listed in
// the core module manifest.
type Module interface {
	// Name is the module's stable identifier. It is also the relative path
	// of the module's manifest directory under the modules root.
	Name() string

	// Register installs the module's compiled-in parts: entity constructors,
	// resources, and report hooks.
	Register(r *Registry)
}

// Status is the load state of one module reference in the registry's table.
type Status int

const (
	StatusNotLoaded Status = iota
	StatusLoaded
)

// String implements fmt.Stringer for Status.
func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	default:
		return "not-loaded"
	}
}

// CreateFunc constructs one entity instance. name is the instance label from
// the seed file; input is the module's input struct, already decoded.
type CreateFunc func(ctx context.Context, res *Resources, name string, input any) error

// ReportFunc writes a module's view of the constructed state to w.
type ReportFunc func(ctx context.Context, res *Resources, w io.Writer) error

// RegisteredEntity holds the compiled Go parts of one entity type.
type RegisteredEntity struct {
	NewInput  func() any
	InputType reflect.Type
	Create    CreateFunc
}

type namedReport struct {
	name string
	fn   ReportFunc
}

// Registry holds everything activation produces for a single application
// instance.
type Registry struct {
	entities    map[string]*RegisteredEntity
	definitions map[string]*config.EntityDefinition
	resources   *Resources
	reports     []namedReport

	status      map[string]Status
	moduleOrder []string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		entities:    make(map[string]*RegisteredEntity),
		definitions: make(map[string]*config.EntityDefinition),
		resources:   newResources(),
		status:      make(map[string]Status),
	}
}

// RegisterEntity registers the compiled parts of an entity type. Registering
// the same entity type twice is a programmer error.
func (r *Registry) RegisterEntity(name string, e *RegisteredEntity) {
	if _, exists := r.entities[name]; exists {
		panic(fmt.Sprintf("entity %q already registered", name))
	}
	slog.Debug("Registering entity.", "name", name)
	r.entities[name] = e
}

// Entity returns the registered entity type, if any.
func (r *Registry) Entity(name string) (*RegisteredEntity, bool) {
	e, ok := r.entities[name]
	return e, ok
}

// RegisterReport appends a report hook. Hooks run in registration order,
// which follows the manifest's declared module order.
func (r *Registry) RegisterReport(name string, fn ReportFunc) {
	slog.Debug("Registering report hook.", "name", name)
	r.reports = append(r.reports, namedReport{name: name, fn: fn})
}

// RunReports invokes every registered report hook against w.
func (r *Registry) RunReports(ctx context.Context, w io.Writer) error {
	for _, rep := range r.reports {
		if err := rep.fn(ctx, r.resources, w); err != nil {
			return fmt.Errorf("report %q: %w", rep.name, err)
		}
	}
	return nil
}

// Resources returns the shared resource table.
func (r *Registry) Resources() *Resources {
	return r.resources
}

// Track adds a module reference to the status table as not-loaded. Tracking
// an already-tracked module is a no-op.
func (r *Registry) Track(module string) {
	if _, exists := r.status[module]; exists {
		return
	}
	r.status[module] = StatusNotLoaded
	r.moduleOrder = append(r.moduleOrder, module)
}

// ModuleStatus reports the load state of a module reference. Unknown modules
// are not-loaded.
func (r *Registry) ModuleStatus(module string) Status {
	return r.status[module]
}

// MarkLoaded records that a module reference finished loading.
func (r *Registry) MarkLoaded(module string) {
	r.Track(module)
	r.status[module] = StatusLoaded
}

// LoadedModules returns the names of all loaded modules in load order. It is
// the inspectable form of the activation table.
func (r *Registry) LoadedModules() []string {
	var loaded []string
	for _, name := range r.moduleOrder {
		if r.status[name] == StatusLoaded {
			loaded = append(loaded, name)
		}
	}
	return loaded
}

// AddDefinitions merges a module's parsed entity definitions into the
// registry. A definition for an already-defined entity type is a conflict
// between two manifests and is rejected.
func (r *Registry) AddDefinitions(def *config.ModuleDefinition) error {
	for name, entity := range def.Entities {
		if _, exists := r.definitions[name]; exists {
			return fmt.Errorf("entity type %q defined by more than one module manifest", name)
		}
		r.definitions[name] = entity
	}
	return nil
}

// Definition returns the manifest-declared definition of an entity type.
func (r *Registry) Definition(name string) (*config.EntityDefinition, bool) {
	d, ok := r.definitions[name]
	return d, ok
}
