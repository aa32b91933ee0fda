package manifest

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/vk/seedling/internal/config"
	"github.com/vk/seedling/internal/ctxlog"
	"github.com/vk/seedling/internal/registry"
)

// Ref identifies one loadable module: its name and the relative path of its
// manifest file under the modules root. Load status lives in the registry's
// module table, keyed by Name.
type Ref struct {
	Name string
	Path string
}

// SetupFunc is a one-time configuration hook, run after all modules loaded
// and validated. It runs at most once per Manifest regardless of how many
// times Activate is called.
type SetupFunc func(ctx context.Context, reg *registry.Registry) error

// Option configures a Manifest.
type Option func(*Manifest)

// WithSetup attaches a one-time setup hook to the manifest.
func WithSetup(fn SetupFunc) Option {
	return func(m *Manifest) { m.setup = fn }
}

// Manifest is the loader manifest for one application instance.
type Manifest struct {
	root    string
	modules []registry.Module
	loader  config.Loader
	setup   SetupFunc

	mu        sync.Mutex
	activated bool
	reg       *registry.Registry
	result    error
}

// New builds a manifest over the given modules, in order. root is the
// directory holding each module's manifest file at <root>/<name>/manifest.hcl.
func New(root string, loader config.Loader, modules []registry.Module, opts ...Option) *Manifest {
	m := &Manifest{
		root:    root,
		modules: modules,
		loader:  loader,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Refs returns the module references in declared order.
func (m *Manifest) Refs() []Ref {
	refs := make([]Ref, 0, len(m.modules))
	for _, mod := range m.modules {
		refs = append(refs, Ref{
			Name: mod.Name(),
			Path: filepath.Join(mod.Name(), "manifest.hcl"),
		})
	}
	return refs
}

// Activate makes every referenced module available and returns the populated
// registry. Calling Activate again returns the first call's registry and
// error unchanged; no load, validation, or setup side effect repeats.
func (m *Manifest) Activate(ctx context.Context) (*registry.Registry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.activated {
		ctxlog.FromContext(ctx).Debug("Manifest already activated, returning cached result.")
		return m.reg, m.result
	}
	m.activated = true

	reg, err := m.activate(ctx)
	if err != nil {
		m.result = err
		return nil, err
	}
	m.reg = reg
	return reg, nil
}

func (m *Manifest) activate(ctx context.Context) (*registry.Registry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Activating manifest.", "modules_root", m.root, "module_count", len(m.modules))

	reg := registry.New()

	for _, mod := range m.modules {
		name := mod.Name()
		reg.Track(name)
		if reg.ModuleStatus(name) == registry.StatusLoaded {
			logger.Debug("Module already loaded, skipping.", "module", name)
			continue
		}

		relPath := filepath.Join(name, "manifest.hcl")
		def, err := m.loader.LoadManifest(ctx, filepath.Join(m.root, relPath))
		if err != nil {
			return nil, &LoadFailure{Module: name, Path: relPath, Err: err}
		}
		if def.Name != name {
			return nil, &LoadFailure{
				Module: name,
				Path:   relPath,
				Err:    fmt.Errorf("manifest declares module %q, expected %q", def.Name, name),
			}
		}

		mod.Register(reg)
		if err := reg.AddDefinitions(def); err != nil {
			return nil, &LoadFailure{Module: name, Path: relPath, Err: err}
		}

		reg.MarkLoaded(name)
		logger.Debug("Module loaded.", "module", name, "entities", len(def.Entities))
	}

	if err := reg.Validate(ctx); err != nil {
		return nil, err
	}
	logger.Debug("Registry validation passed.")

	if m.setup != nil {
		logger.Debug("Running one-time setup hook.")
		if err := m.setup(ctx, reg); err != nil {
			return nil, fmt.Errorf("manifest setup failed: %w", err)
		}
	}

	logger.Info("Manifest activated.", "modules_loaded", len(reg.LoadedModules()))
	return reg, nil
}
