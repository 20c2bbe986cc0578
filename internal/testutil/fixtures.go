package testutil

import (
	"embed"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/config"
)

//go:embed fixtures/*.toml fixtures/*.yaml
var fixturesFS embed.FS

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadWorkspaceFixture decodes a workspace fixture. The format follows the
// file extension. The result is not validated.
func LoadWorkspaceFixture(name string) (*config.Workspace, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	return config.Decode(name, data)
}

// ValidWorkspace returns the valid TOML workspace fixture.
func ValidWorkspace() (*config.Workspace, error) {
	return LoadWorkspaceFixture("valid_workspace.toml")
}

// ValidYAMLWorkspace returns the valid YAML workspace fixture.
func ValidYAMLWorkspace() (*config.Workspace, error) {
	return LoadWorkspaceFixture("valid_workspace.yaml")
}

// InvalidWorkspace returns a workspace whose range is inverted.
func InvalidWorkspace() (*config.Workspace, error) {
	return LoadWorkspaceFixture("invalid_workspace.toml")
}

// CollidingWorkspace returns a workspace over 7-14 whose first three
// services share a preferred port.
func CollidingWorkspace() (*config.Workspace, error) {
	return LoadWorkspaceFixture("colliding_workspace.toml")
}

// TightWorkspace returns a workspace with more services than ports.
func TightWorkspace() (*config.Workspace, error) {
	return LoadWorkspaceFixture("tight_workspace.toml")
}
