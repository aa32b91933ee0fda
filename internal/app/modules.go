package app

import (
	"github.com/vk/seedling/internal/registry"
	"github.com/vk/seedling/modules/garden"
	"github.com/vk/seedling/modules/plant"
)

// coreModules is the definitive list of all modules compiled into the
// seedling binary. Adding an application module means adding exactly one
// entry here (and shipping its manifest file); no other file enumerates
// modules.
var coreModules = []registry.Module{
	&garden.Module{},
	&plant.Module{},
}
