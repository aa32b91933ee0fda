package hcl_adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/seedling/internal/config"
	"github.com/zclconf/go-cty/cty"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	manifestHCL := `
		module "widget" {
			description = "A test module."

			entity "widget" {
				description = "A widget."
				attribute "label" {
					type = string
				}
				attribute "count" {
					type    = number
					default = 1
				}
			}
		}
	`
	path := writeFile(t, t.TempDir(), "manifest.hcl", manifestHCL)

	// --- Act ---
	loader := NewLoader()
	def, err := loader.LoadManifest(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)

	defaultCount := cty.NumberIntVal(1)
	expected := &config.ModuleDefinition{
		Name:        "widget",
		Description: "A test module.",
		Entities: map[string]*config.EntityDefinition{
			"widget": {
				Name:        "widget",
				Description: "A widget.",
				Attributes: map[string]*config.AttributeDefinition{
					"label": {Name: "label", Type: cty.String},
					"count": {Name: "count", Type: cty.Number, Default: &defaultCount, Optional: true},
				},
			},
		},
	}
	if diff := cmp.Diff(expected, def, cmp.Comparer(func(a, b cty.Type) bool { return a.Equals(b) }),
		cmp.Comparer(func(a, b cty.Value) bool { return a.RawEquals(b) })); diff != "" {
		t.Errorf("LoadManifest() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadManifest_MissingFile(t *testing.T) {
	t.Parallel()

	loader := NewLoader()
	_, err := loader.LoadManifest(context.Background(), filepath.Join(t.TempDir(), "ghost", "manifest.hcl"))

	require.Error(t, err)
	assert.True(t, os.IsNotExist(err), "a missing manifest must surface as a not-exist error")
}

func TestLoadManifest_MalformedHCL(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "manifest.hcl", `module "broken" {`)

	loader := NewLoader()
	_, err := loader.LoadManifest(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoadManifest_MissingModuleBlock(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "manifest.hcl", `# empty manifest`)

	loader := NewLoader()
	_, err := loader.LoadManifest(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required 'module' block")
}

func TestLoadManifest_BadAttributeType(t *testing.T) {
	t.Parallel()

	manifestHCL := `
		module "widget" {
			entity "widget" {
				attribute "label" {
					type = rainbow
				}
			}
		}
	`
	path := writeFile(t, t.TempDir(), "manifest.hcl", manifestHCL)

	loader := NewLoader()
	_, err := loader.LoadManifest(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown primitive type "rainbow"`)
}

func TestLoadSeed_SingleFile(t *testing.T) {
	t.Parallel()

	seedHCL := `
		entity "garden" "front_lawn" {
			name = "Front Lawn"
		}
		entity "plant" "basil" {
			name   = "Basil"
			garden = "front_lawn"
		}
	`
	path := writeFile(t, t.TempDir(), "main.hcl", seedHCL)

	loader := NewLoader()
	seed, converter, err := loader.LoadSeed(context.Background(), path)

	require.NoError(t, err)
	require.NotNil(t, converter)
	require.Len(t, seed.Instances, 2)

	first := seed.Instances[0]
	assert.Equal(t, "garden", first.EntityType)
	assert.Equal(t, "front_lawn", first.Name)
	assert.Contains(t, first.Arguments, "name")

	second := seed.Instances[1]
	assert.Equal(t, "plant", second.EntityType)
	assert.Equal(t, "basil", second.Name)
	assert.Contains(t, second.Arguments, "garden")
}

func TestLoadSeed_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a_gardens.hcl", `
		entity "garden" "front_lawn" {
			name = "Front Lawn"
		}
	`)
	writeFile(t, dir, "b_plants.hcl", `
		entity "plant" "basil" {
			name   = "Basil"
			garden = "front_lawn"
		}
	`)

	loader := NewLoader()
	seed, _, err := loader.LoadSeed(context.Background(), dir)

	require.NoError(t, err)
	require.Len(t, seed.Instances, 2)
	assert.Equal(t, "garden", seed.Instances[0].EntityType, "files must load in lexical order")
	assert.Equal(t, "plant", seed.Instances[1].EntityType)
}

func TestLoadSeed_EmptyDirectory(t *testing.T) {
	t.Parallel()

	loader := NewLoader()
	_, _, err := loader.LoadSeed(context.Background(), t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .hcl seed files found")
}

func TestLoadSeed_MissingPath(t *testing.T) {
	t.Parallel()

	loader := NewLoader()
	_, _, err := loader.LoadSeed(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))

	require.Error(t, err)
}
