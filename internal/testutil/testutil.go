package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/config"
)

// TestEnv holds the test environment
type TestEnv struct {
	T          *testing.T
	TmpDir     string
	ConfigPath string
	App        *app.App
}

// NewTestEnv writes the named workspace fixture into a temporary directory
// and installs an App reading it as app.Default. The previous default is
// restored when the test ends.
func NewTestEnv(t *testing.T, fixture string) *TestEnv {
	t.Helper()

	data, err := LoadFixture(fixture)
	if err != nil {
		t.Fatalf("Failed to load fixture %s: %v", fixture, err)
	}

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "forage-ports"+filepath.Ext(fixture))
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		t.Fatalf("Failed to write workspace file: %v", err)
	}

	testApp := app.New(
		app.WithConfigPath(configPath),
		app.WithWorkDir(tmpDir),
	)

	originalDefault := app.Default
	app.SetDefault(testApp)
	t.Cleanup(func() {
		app.SetDefault(originalDefault)
	})

	return &TestEnv{
		T:          t,
		TmpDir:     tmpDir,
		ConfigPath: configPath,
		App:        testApp,
	}
}

// CreateServiceDir creates a service directory relative to the workspace root.
func (e *TestEnv) CreateServiceDir(rel string) string {
	e.T.Helper()

	path := filepath.Join(e.TmpDir, rel)
	if err := os.MkdirAll(path, 0755); err != nil {
		e.T.Fatalf("Failed to create service dir: %v", err)
	}
	return path
}

// AddServiceMarker creates a discoverable service directory holding a
// marker file.
func (e *TestEnv) AddServiceMarker(rel, content string) string {
	e.T.Helper()

	dir := e.CreateServiceDir(rel)
	if err := os.WriteFile(filepath.Join(dir, config.ServiceMarker), []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write service marker: %v", err)
	}
	return dir
}

// Workspace loads the workspace through the test App.
func (e *TestEnv) Workspace() *config.Workspace {
	e.T.Helper()

	ws, err := e.App.LoadWorkspace()
	if err != nil {
		e.T.Fatalf("Failed to load workspace: %v", err)
	}
	return ws
}
