// Package plant provides the plant entity: a member that belongs to exactly
// one garden, referenced by the garden's ID.
package plant

import (
	"context"
	"fmt"
	"io"
	"reflect"

	"github.com/vk/seedling/internal/registry"
	"github.com/vk/seedling/modules/garden"
)

// StoreKey is the resource key under which the plant store is installed.
const StoreKey = "plant_store"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Name returns the module's identifier.
func (m *Module) Name() string { return "plant" }

// Input defines the seed arguments for a plant instance.
type Input struct {
	Name   string `seed:"name"`
	Garden string `seed:"garden"`
}

// Register installs the plant store, the plant entity constructor, and the
// membership report.
func (m *Module) Register(r *registry.Registry) {
	r.Resources().Put(StoreKey, NewStore())
	r.RegisterEntity("plant", &registry.RegisteredEntity{
		NewInput:  func() any { return new(Input) },
		InputType: reflect.TypeOf(Input{}),
		Create:    create,
	})
	r.RegisterReport("plant_membership", reportMembership)
}

// create is the handler constructing one plant from a seed instance. The
// referenced garden must already exist: seed instances are created in
// declaration order, so a garden is declared before its plants.
func create(ctx context.Context, res *registry.Resources, name string, input any) error {
	in, ok := input.(*Input)
	if !ok {
		return fmt.Errorf("unexpected input type %T", input)
	}

	gardens, err := registry.Resource[*garden.Store](res, garden.StoreKey)
	if err != nil {
		return err
	}
	if _, ok := gardens.Get(garden.ID(in.Garden)); !ok {
		return fmt.Errorf("plant %q references unknown garden %q", name, in.Garden)
	}

	plants, err := registry.Resource[*Store](res, StoreKey)
	if err != nil {
		return err
	}
	return plants.Put(&Plant{ID: ID(name), Name: in.Name, Garden: garden.ID(in.Garden)})
}

// reportMembership prints each garden with its member plants in insertion
// order.
func reportMembership(ctx context.Context, res *registry.Resources, w io.Writer) error {
	gardens, err := registry.Resource[*garden.Store](res, garden.StoreKey)
	if err != nil {
		return err
	}
	plants, err := registry.Resource[*Store](res, StoreKey)
	if err != nil {
		return err
	}

	for _, g := range gardens.All() {
		members := plants.Members(g.ID)
		if _, err := fmt.Fprintf(w, "garden %q: %d plants\n", g.Name, len(members)); err != nil {
			return err
		}
		for _, p := range members {
			if _, err := fmt.Fprintf(w, "  - %s\n", p.Name); err != nil {
				return err
			}
		}
	}
	return nil
}
