package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// ModuleDefinition is the format-agnostic representation of a module's
// manifest file: the set of entity types the module provides.
type ModuleDefinition struct {
	Name        string
	Description string
	Entities    map[string]*EntityDefinition
}

// EntityDefinition describes one entity type a module provides, including
// the attributes a seed file may set when constructing an instance.
type EntityDefinition struct {
	Name        string
	Description string
	Attributes  map[string]*AttributeDefinition
}

// AttributeDefinition defines a single attribute of an entity type.
type AttributeDefinition struct {
	Name        string
	Type        cty.Type
	Description string
	Default     *cty.Value
	Optional    bool
}

// Seed is the format-agnostic representation of a seed file: the ordered
// list of entity instances the application constructs after activation.
type Seed struct {
	Instances []*Instance
}

// Instance is one `entity` block from a seed file. Arguments are kept as
// unevaluated expressions so the Converter can apply the declared attribute
// types and defaults when decoding into the module's input struct.
type Instance struct {
	EntityType string
	Name       string
	Arguments  map[string]hcl.Expression
}
