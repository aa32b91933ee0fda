// Package registry provides the central glue for the module system.
//
// The Registry is the process-scoped table behind manifest activation. It
// records, per module, whether that module has been loaded (so repeated
// activation attempts are no-ops rather than implicit environment-wide side
// effects), and it stores what loading a module produces: entity
// constructors compiled into the binary, the entity definitions parsed from
// the module's manifest file, shared resources such as stores, and report
// hooks that produce the application's output.
//
// After activation the registry is validated to ensure the Go code and the
// public-facing manifests are in sync, turning a wide class of runtime
// errors into startup errors.
package registry
