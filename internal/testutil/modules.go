package testutil

import "github.com/vk/seedling/internal/registry"

// StaticModule is a test helper for creating a mock module with a fixed name
// and an arbitrary registration hook.
type StaticModule struct {
	ModuleName string
	Hook       func(r *registry.Registry)
}

// Name implements the registry.Module interface.
func (m *StaticModule) Name() string { return m.ModuleName }

// Register implements the registry.Module interface.
func (m *StaticModule) Register(r *registry.Registry) {
	if m.Hook != nil {
		m.Hook(r)
	}
}
