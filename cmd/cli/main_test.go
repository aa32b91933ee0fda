package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/seedling/internal/manifest"
)

func TestRun_FrontLawn(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	seedHCL := `
		entity "garden" "front_lawn" {
			name = "Front Lawn"
		}
		entity "plant" "basil" {
			name   = "Basil"
			garden = "front_lawn"
		}
		entity "plant" "cucumber" {
			name   = "Cucumber"
			garden = "front_lawn"
		}
	`
	seedPath := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(seedPath, []byte(seedHCL), 0o600))

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// --- Act ---
	// The test runs from this package's directory, so the repo's shipped
	// module manifests live two levels up.
	err := run(out, logs, []string{"-modules-path", "../../modules", seedPath})

	// --- Assert ---
	require.NoError(t, err)
	expected := "garden \"Front Lawn\": 2 plants\n" +
		"  - Basil\n" +
		"  - Cucumber\n"
	assert.Equal(t, expected, out.String())
}

func TestRun_LoadFailureProducesNoOutput(t *testing.T) {
	t.Parallel()

	seedPath := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(seedPath, []byte(`
		entity "garden" "front_lawn" {
			name = "Front Lawn"
		}
	`), 0o600))

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// Point the modules root at an empty directory: every core module's
	// manifest is now missing.
	err := run(out, logs, []string{"-modules-path", t.TempDir(), seedPath})

	require.Error(t, err)
	var loadErr *manifest.LoadFailure
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "garden", loadErr.Module, "the first module in declared order must be named")
	assert.Empty(t, out.String(), "no application output on load failure")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	err := run(out, logs, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when help was requested")
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	err := run(out, logs, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag provided but not defined")
}
