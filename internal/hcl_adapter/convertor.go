package hcl_adapter

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/seedling/internal/config"
	"github.com/vk/seedling/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Converter is the HCL-specific implementation of config.Converter.
type Converter struct{}

// NewConverter creates a new HCL argument converter.
func NewConverter() *Converter {
	return &Converter{}
}

// DecodeArguments evaluates seed arguments against the entity's declared
// attributes and assigns them into target's `seed`-tagged fields. Entity
// input structs are flat structs of primitives and simple collections, so
// conversion goes through cty/convert followed by gocty; no recursive
// object decoding is needed.
func (c *Converter) DecodeArguments(ctx context.Context, target any, args map[string]hcl.Expression, defs map[string]*config.AttributeDefinition) error {
	logger := ctxlog.FromContext(ctx)

	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Ptr || ptr.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("decode target must be a pointer to a struct, got %T", target)
	}
	fields := taggedFields(ptr.Elem())

	for name := range args {
		if _, ok := defs[name]; !ok {
			return fmt.Errorf("unsupported argument %q", name)
		}
	}

	for name, def := range defs {
		field, ok := fields[name]
		if !ok {
			// Validation guarantees parity; a miss here means the struct and
			// manifest diverged after validation, which cannot happen for a
			// registry-validated entity.
			return fmt.Errorf("no Go field carries attribute %q", name)
		}

		expr, declared := args[name]
		var val cty.Value
		switch {
		case declared:
			v, diags := expr.Value(nil)
			if diags.HasErrors() {
				return fmt.Errorf("argument %q: %w", name, diags)
			}
			val = v
		case def.Default != nil:
			logger.Debug("Applying default value.", "attribute", name)
			val = *def.Default
		case def.Optional:
			continue
		default:
			return fmt.Errorf("missing required argument %q", name)
		}

		converted, err := convert.Convert(val, def.Type)
		if err != nil {
			return fmt.Errorf("argument %q: value is not a valid %s: %w", name, def.Type.FriendlyName(), err)
		}
		if err := gocty.FromCtyValue(converted, field.Addr().Interface()); err != nil {
			return fmt.Errorf("argument %q: %w", name, err)
		}
	}

	return nil
}

// taggedFields maps `seed` tag names to addressable struct field values.
func taggedFields(structVal reflect.Value) map[string]reflect.Value {
	fields := make(map[string]reflect.Value)
	t := structVal.Type()
	for i := 0; i < t.NumField(); i++ {
		fieldDef := t.Field(i)
		fieldVal := structVal.Field(i)
		if !fieldDef.IsExported() || !fieldVal.CanSet() {
			continue
		}
		tag := strings.Split(fieldDef.Tag.Get("seed"), ",")[0]
		if tag != "" && tag != "-" {
			fields[tag] = fieldVal
		}
	}
	return fields
}
