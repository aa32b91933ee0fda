// Package config defines the format-agnostic model of everything seedling
// loads at startup: module manifests (which entities a module provides) and
// seed files (which entity instances to construct). It also declares the
// Loader and Converter interfaces that format-specific adapters, such as the
// HCL one, implement.
//
// The model produced here is the single source of truth for the manifest
// activation and seeding phases; nothing downstream touches raw HCL.
package config
