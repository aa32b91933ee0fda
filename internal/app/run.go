package app

import (
	"context"
	"fmt"

	"github.com/vk/seedling/internal/ctxlog"
)

// RuntimeDefect wraps any failure occurring in application logic after
// successful activation, keeping it distinguishable from load failures.
type RuntimeDefect struct {
	Err error
}

// Error implements the error interface.
func (e *RuntimeDefect) Error() string {
	return fmt.Sprintf("runtime defect: %v", e.Err)
}

// Unwrap exposes the underlying cause.
func (e *RuntimeDefect) Unwrap() error {
	return e.Err
}

// Run executes the bootstrap lifecycle: activate the loader manifest, then
// execute application logic (seed the object graph and produce the report).
// On a load failure the app terminates before any application logic and
// produces no output.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(a.config.HealthcheckPort)
	}

	a.transition(ctx, PhaseActivating)
	reg, err := a.manifest.Activate(ctx)
	if err != nil {
		a.transition(ctx, PhaseFailed)
		return err
	}
	a.registry = reg
	a.transition(ctx, PhaseActivated)

	a.transition(ctx, PhaseRunning)
	if err := a.seed(ctx); err != nil {
		a.transition(ctx, PhaseFailed)
		return &RuntimeDefect{Err: err}
	}

	a.transition(ctx, PhaseDone)
	a.logger.Debug("App.Run method finished.")
	return nil
}
