// Package garden provides the garden entity: a named container whose
// members are plants. The container holds no member list; membership is
// derived by query, so gardens and plants never own each other cyclically.
package garden

import (
	"context"
	"fmt"
	"reflect"

	"github.com/vk/seedling/internal/registry"
)

// StoreKey is the resource key under which the garden store is installed.
const StoreKey = "garden_store"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Name returns the module's identifier.
func (m *Module) Name() string { return "garden" }

// Input defines the seed arguments for a garden instance.
type Input struct {
	Name string `seed:"name"`
}

// Register installs the garden store and the garden entity constructor.
func (m *Module) Register(r *registry.Registry) {
	r.Resources().Put(StoreKey, NewStore())
	r.RegisterEntity("garden", &registry.RegisteredEntity{
		NewInput:  func() any { return new(Input) },
		InputType: reflect.TypeOf(Input{}),
		Create:    create,
	})
}

// create is the handler constructing one garden from a seed instance.
func create(ctx context.Context, res *registry.Resources, name string, input any) error {
	in, ok := input.(*Input)
	if !ok {
		return fmt.Errorf("unexpected input type %T", input)
	}
	store, err := registry.Resource[*Store](res, StoreKey)
	if err != nil {
		return err
	}
	return store.Put(&Garden{ID: ID(name), Name: in.Name})
}
