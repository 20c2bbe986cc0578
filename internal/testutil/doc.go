// Package testutil provides test fixtures and utilities.
//
// This package contains embedded workspace fixtures and helper functions for
// loading valid and invalid workspaces in unit tests.
//
// # Fixtures
//
// Workspace fixtures are embedded using go:embed:
//
//	fixtures/valid_workspace.toml
//	fixtures/valid_workspace.yaml
//	fixtures/invalid_workspace.toml
//	fixtures/colliding_workspace.toml
//	fixtures/tight_workspace.toml
//
// # Loading Fixtures
//
//	ws, err := testutil.ValidWorkspace()
//	ws, err := testutil.CollidingWorkspace()
//	data, err := testutil.LoadFixture("valid_workspace.yaml")
//
// # Test Environment
//
// NewTestEnv writes a fixture to a temporary workspace and points
// app.Default at it, so commands run against it unchanged:
//
//	func TestAssign(t *testing.T) {
//	    env := testutil.NewTestEnv(t, "colliding_workspace.toml")
//	    ws := env.Workspace()
//	    ...
//	}
package testutil
