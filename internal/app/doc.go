// Package app provides the application context for forage-ports.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    ConfigPath string            // Explicit workspace file, if any
//	    WorkDir    string            // Start of workspace file discovery
//	    Workspace  *config.Workspace // Loaded lazily
//	}
//
// # Creating an App
//
// Use New with functional options:
//
//	// Production usage
//	a := app.New(app.WithConfigPath(flagConfig))
//
//	// Testing with a preloaded workspace
//	a := app.New(app.WithWorkspace(ws))
//
// # Plans
//
// Every command builds a Plan from the workspace and command-line overrides,
// then runs the allocator through it. Allocation errors come back as
// ForageErrors carrying the matching exit code:
//
//	plan, err := app.Default.Plan(app.Overrides{Secure: &secure})
//	assignment, err := plan.Assign()
//
// # Available Options
//
//	WithConfigPath(path)  // Explicit workspace file
//	WithWorkDir(dir)      // Directory to search upward from
//	WithWorkspace(ws)     // Preloaded workspace
package app
