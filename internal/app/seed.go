package app

import (
	"context"
	"fmt"
)

// seed loads the seed file, constructs every declared instance in
// declaration order, and runs the registered report hooks.
func (a *App) seed(ctx context.Context) error {
	a.logger.Debug("Loading seed.", "seed_path", a.config.SeedPath)

	seed, converter, err := a.loader.LoadSeed(ctx, a.config.SeedPath)
	if err != nil {
		return fmt.Errorf("failed to load seed: %w", err)
	}
	a.logger.Info("Seed loaded.", "instances", len(seed.Instances))

	for _, inst := range seed.Instances {
		entity, ok := a.registry.Entity(inst.EntityType)
		if !ok {
			return fmt.Errorf("entity %q %q: unknown entity type", inst.EntityType, inst.Name)
		}
		def, ok := a.registry.Definition(inst.EntityType)
		if !ok {
			// Validation guarantees every registered entity has a definition.
			return fmt.Errorf("entity %q %q: no manifest definition", inst.EntityType, inst.Name)
		}

		input := entity.NewInput()
		if err := converter.DecodeArguments(ctx, input, inst.Arguments, def.Attributes); err != nil {
			return fmt.Errorf("entity %q %q: %w", inst.EntityType, inst.Name, err)
		}
		if err := entity.Create(ctx, a.registry.Resources(), inst.Name, input); err != nil {
			return fmt.Errorf("entity %q %q: %w", inst.EntityType, inst.Name, err)
		}
		a.logger.Debug("Instance created.", "entity", inst.EntityType, "name", inst.Name)
	}

	if err := a.registry.RunReports(ctx, a.outW); err != nil {
		return err
	}

	return nil
}
