// Package manifest implements the application's loader manifest: the single
// source of truth for which modules must be available before the application
// runs.
//
// A Manifest is built from an ordered list of modules and a modules root
// directory. Activate makes every referenced module available in one pass:
// it registers each module's compiled Go half into a fresh registry, parses
// each module's HCL manifest file, validates the two halves against each
// other, and finally runs the manifest's optional one-time setup hook.
//
// Activation is idempotent per Manifest value: after the first call, later
// calls return the first call's outcome without repeating any side effect.
// When any referenced module fails to load, Activate fails with a
// LoadFailure naming that module, no later module is treated as loaded, and
// no registry is handed to the caller.
package manifest
