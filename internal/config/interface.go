package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// LoadManifest reads a single module manifest file and translates it
	// into the format-agnostic definition. The path is resolved by the
	// caller; a missing or malformed file is returned as an error.
	LoadManifest(ctx context.Context, path string) (*ModuleDefinition, error)

	// LoadSeed reads a seed file (or a directory of seed files) and returns
	// the declared instances in declaration order, together with a Converter
	// matching the seed's format.
	LoadSeed(ctx context.Context, path string) (*Seed, Converter, error)
}

// Converter binds raw seed arguments to the Go input structs that modules
// register for their entity types.
type Converter interface {
	// DecodeArguments evaluates each argument expression, converts it to the
	// attribute's declared type, applies defaults for absent optional
	// attributes, and assigns the results into target via its `seed` field
	// tags. Unknown arguments and missing required attributes are errors.
	DecodeArguments(ctx context.Context, target any, args map[string]hcl.Expression, defs map[string]*AttributeDefinition) error
}
