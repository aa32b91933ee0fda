package registry

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/seedling/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Validate performs a strict parity check between module manifests and the
// compiled Go code. Every manifest-declared entity must have a registered Go
// constructor and vice versa, and each declared attribute must correspond to
// a `seed`-tagged field of a compatible type on the Go input struct.
func (r *Registry) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	for name := range r.definitions {
		if _, ok := r.entities[name]; !ok {
			errs = append(errs, fmt.Sprintf("entity %q: declared in a manifest, but no Go constructor is registered", name))
		}
	}

	for name, entity := range r.entities {
		def, ok := r.definitions[name]
		if !ok {
			errs = append(errs, fmt.Sprintf("entity %q: registered in Go, but no manifest declares it", name))
			continue
		}

		if entity.InputType == nil {
			if len(def.Attributes) > 0 {
				errs = append(errs, fmt.Sprintf("entity %q: manifest declares attributes, but the Go constructor has no input struct", name))
			}
			continue
		}

		goFields := seedFields(entity.InputType)

		for attr := range goFields {
			if _, ok := def.Attributes[attr]; !ok {
				errs = append(errs, fmt.Sprintf("entity %q: Go input struct has field for attribute %q which the manifest does not declare", name, attr))
			}
		}
		for attr := range def.Attributes {
			if _, ok := goFields[attr]; !ok {
				errs = append(errs, fmt.Sprintf("entity %q: manifest declares attribute %q which has no field in the Go input struct", name, attr))
			}
		}

		for attr, attrDef := range def.Attributes {
			field, ok := goFields[attr]
			if !ok {
				continue // already reported above
			}

			if attrDef.Type.Equals(cty.DynamicPseudoType) {
				logger.Warn("Manifest declares an attribute with 'type = any', which disables static type checking.", "entity", name, "attribute", attr)
				continue
			}

			fieldType, err := gocty.ImpliedType(reflect.Zero(field.Type).Interface())
			if err != nil {
				errs = append(errs, fmt.Sprintf("entity %q, attribute %q: cannot imply a manifest type from Go field type %s: %v", name, attr, field.Type, err))
				continue
			}
			if !attrDef.Type.Equals(fieldType) {
				errs = append(errs, fmt.Sprintf("entity %q, attribute %q: type mismatch between manifest type %s and Go field type %s",
					name, attr, attrDef.Type.FriendlyName(), fieldType.FriendlyName()))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// seedFields maps `seed` tag names to the exported struct fields carrying
// them.
func seedFields(t reflect.Type) map[string]reflect.StructField {
	fields := make(map[string]reflect.StructField)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := strings.Split(field.Tag.Get("seed"), ",")[0]
		if tag != "" && tag != "-" {
			fields[tag] = field
		}
	}
	return fields
}
