// Package hcl_adapter implements the config.Loader and config.Converter
// interfaces for HCL: module manifest files and seed files written in HCL
// native syntax.
package hcl_adapter

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/seedling/internal/config"
	"github.com/vk/seedling/internal/ctxlog"
	"github.com/vk/seedling/internal/fsutil"
)

// Loader is the HCL-specific implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// manifestRoot is the top-level schema of a module manifest file.
type manifestRoot struct {
	Module *moduleBlock `hcl:"module,block"`
	Remain hcl.Body     `hcl:",remain"`
}

type moduleBlock struct {
	Name        string         `hcl:"name,label"`
	Description string         `hcl:"description,optional"`
	Entities    []*entityBlock `hcl:"entity,block"`
}

type entityBlock struct {
	Name        string            `hcl:"name,label"`
	Description string            `hcl:"description,optional"`
	Attributes  []*attributeBlock `hcl:"attribute,block"`
}

type attributeBlock struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Description string         `hcl:"description,optional"`
	Default     hcl.Expression `hcl:"default,optional"`
}

// LoadManifest parses one module manifest file into the format-agnostic
// definition.
func (l *Loader) LoadManifest(ctx context.Context, path string) (*config.ModuleDefinition, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading module manifest.", "path", path)

	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	var root manifestRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}
	if root.Module == nil {
		return nil, fmt.Errorf("%s: missing required 'module' block", path)
	}

	def := &config.ModuleDefinition{
		Name:        root.Module.Name,
		Description: root.Module.Description,
		Entities:    make(map[string]*config.EntityDefinition, len(root.Module.Entities)),
	}
	for _, entity := range root.Module.Entities {
		translated, err := l.translateEntity(ctx, entity)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		def.Entities[translated.Name] = translated
	}

	logger.Debug("Module manifest loaded.", "module", def.Name, "entities", len(def.Entities))
	return def, nil
}

// seedRoot is the top-level schema of a seed file.
type seedRoot struct {
	Instances []*instanceBlock `hcl:"entity,block"`
	Remain    hcl.Body         `hcl:",remain"`
}

type instanceBlock struct {
	EntityType string   `hcl:"entity_type,label"`
	Name       string   `hcl:"instance_name,label"`
	Body       hcl.Body `hcl:",remain"`
}

// LoadSeed reads a seed file, or every .hcl file under a seed directory, and
// returns the declared instances in declaration order.
func (l *Loader) LoadSeed(ctx context.Context, path string) (*config.Seed, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading seed.", "path", path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error accessing seed path %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, nil, err
		}
		if len(files) == 0 {
			return nil, nil, fmt.Errorf("no .hcl seed files found in %s", path)
		}
	}

	seed := &config.Seed{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse %s: %w", file, diags)
		}

		var root seedRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode %s: %w", file, diags)
		}

		for _, block := range root.Instances {
			args, err := bodyAttributes(block.Body)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: entity %q %q: %w", file, block.EntityType, block.Name, err)
			}
			seed.Instances = append(seed.Instances, &config.Instance{
				EntityType: block.EntityType,
				Name:       block.Name,
				Arguments:  args,
			})
		}
	}

	logger.Debug("Seed loaded.", "instances", len(seed.Instances))
	return seed, NewConverter(), nil
}

// translateEntity converts the HCL entity schema into the agnostic model.
func (l *Loader) translateEntity(ctx context.Context, e *entityBlock) (*config.EntityDefinition, error) {
	def := &config.EntityDefinition{
		Name:        e.Name,
		Description: e.Description,
		Attributes:  make(map[string]*config.AttributeDefinition, len(e.Attributes)),
	}

	for _, attr := range e.Attributes {
		ctyType, err := typeExprToCtyType(ctx, attr.Type)
		if err != nil {
			return nil, fmt.Errorf("entity %q, attribute %q: %w", e.Name, attr.Name, err)
		}

		attrDef := &config.AttributeDefinition{
			Name:        attr.Name,
			Type:        ctyType,
			Description: attr.Description,
		}
		if attr.Default != nil {
			val, diags := attr.Default.Value(nil)
			// A default counts only when it evaluates cleanly to a non-null
			// value; a null default is the same as no default.
			if !diags.HasErrors() && !val.IsNull() {
				attrDef.Default = &val
				attrDef.Optional = true
			}
		}
		def.Attributes[attr.Name] = attrDef
	}

	return def, nil
}

// bodyAttributes flattens an instance block's body into a name→expression
// map. Nested blocks are not part of the seed language.
func bodyAttributes(body hcl.Body) (map[string]hcl.Expression, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	out := make(map[string]hcl.Expression, len(attrs))
	for name, attr := range attrs {
		out[name] = attr.Expr
	}
	return out, nil
}
