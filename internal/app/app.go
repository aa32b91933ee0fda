package app

import (
	"io"
	"log/slog"

	"github.com/vk/seedling/internal/config"
	"github.com/vk/seedling/internal/manifest"
	"github.com/vk/seedling/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. outW receives application output (reports); logW receives logs,
// so a load failure can terminate the run without producing any output.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   config.Loader
	manifest *manifest.Manifest
	registry *registry.Registry // populated by activation
	phase    Phase
}

// NewApp constructs the application. Nothing is loaded yet: activation
// happens inside Run so load failures surface as errors rather than panics.
// When no modules are passed, the compiled-in core module list is used;
// alternate entry points (the test harness) pass their own.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		loader:   loader,
		manifest: manifest.New(cfg.ModulesPath, loader, modules),
		phase:    PhaseStart,
	}
}

// Manifest returns the app's loader manifest. It is primarily for testing.
func (a *App) Manifest() *manifest.Manifest {
	return a.manifest
}

// Registry returns the app's registry, nil before successful activation. It
// is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
