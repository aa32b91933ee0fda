// Package testutil provides a reusable harness for bootstrap tests. The
// harness is itself a second entry point: it activates the same loader
// manifest the CLI does, without duplicating any module load statements.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/seedling/internal/app"
	"github.com/vk/seedling/internal/hcl_adapter"
	"github.com/vk/seedling/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// BootResult holds the outcomes of one harness run.
type BootResult struct {
	App       *app.App
	Err       error
	Output    string
	LogOutput string
}

// RunBootTest writes the given files into a fresh temp directory, builds an
// app over them, and runs the full bootstrap. File keys are relative paths;
// module manifests go under "modules/", seed files under "seed/". When no
// modules are passed, the app falls back to the compiled-in core module
// list, exactly as the CLI entry point does.
func RunBootTest(t *testing.T, files map[string]string, modules ...registry.Module) *BootResult {
	t.Helper()
	return RunBootTestWithContext(context.Background(), t, files, modules...)
}

// RunBootTestWithContext is RunBootTest with a caller-provided context.
func RunBootTestWithContext(ctx context.Context, t *testing.T, files map[string]string, modules ...registry.Module) *BootResult {
	t.Helper()

	tmpDir := t.TempDir()
	WriteFiles(t, tmpDir, files)

	appConfig, err := app.NewConfig(app.Config{
		SeedPath:    filepath.Join(tmpDir, "seed"),
		ModulesPath: filepath.Join(tmpDir, "modules"),
		LogLevel:    "debug",
		LogFormat:   "text",
	})
	require.NoError(t, err)

	outBuf := &SafeBuffer{}
	logBuf := &SafeBuffer{}

	testApp := app.NewApp(outBuf, logBuf, appConfig, hcl_adapter.NewLoader(), modules...)
	runErr := testApp.Run(ctx)

	if os.Getenv("SEEDLING_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuf.String())
	}

	return &BootResult{
		App:       testApp,
		Err:       runErr,
		Output:    outBuf.String(),
		LogOutput: logBuf.String(),
	}
}

// WriteFiles materializes a map of relative path to content under root.
func WriteFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}
