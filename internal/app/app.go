// Package app provides the application context for forage-ports.
// It allows dependency injection for testing.
package app

import (
	"os"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/port"
)

// App holds the application dependencies
type App struct {
	// ConfigPath is an explicit workspace file; empty means resolve it
	ConfigPath string

	// WorkDir is where workspace file discovery starts
	WorkDir string

	// Workspace is the loaded workspace, populated lazily
	Workspace *config.Workspace
}

// Option is a function that configures the App
type Option func(*App)

// WithConfigPath sets an explicit workspace file
func WithConfigPath(path string) Option {
	return func(a *App) {
		a.ConfigPath = path
	}
}

// WithWorkDir sets the directory workspace discovery starts from
func WithWorkDir(dir string) Option {
	return func(a *App) {
		a.WorkDir = dir
	}
}

// WithWorkspace sets a preloaded workspace
func WithWorkspace(ws *config.Workspace) Option {
	return func(a *App) {
		a.Workspace = ws
	}
}

// New creates a new App with the given options.
// If no work directory is provided, the current directory is used.
func New(opts ...Option) *App {
	app := &App{}

	for _, opt := range opts {
		opt(app)
	}

	if app.WorkDir == "" {
		if wd, err := os.Getwd(); err == nil {
			app.WorkDir = wd
		} else {
			app.WorkDir = "."
		}
	}

	return app
}

// LoadWorkspace resolves and loads the workspace file once.
func (a *App) LoadWorkspace() (*config.Workspace, error) {
	if a.Workspace != nil {
		return a.Workspace, nil
	}

	path, err := config.Resolve(a.ConfigPath, a.WorkDir)
	if err != nil {
		return nil, errors.ConfigError("failed to locate workspace file", err)
	}

	ws, err := config.Load(path)
	if err != nil {
		return nil, errors.ConfigError("failed to load workspace", err)
	}

	logging.Debug("loaded workspace", "path", ws.Path, "services", len(ws.Services), "range", ws.Range().String())
	a.Workspace = ws
	return ws, nil
}

// Overrides adjust a plan from the command line.
type Overrides struct {
	Range    *port.Range
	Secure   *bool
	Projects []string
}

// Plan holds the inputs of one allocation run.
type Plan struct {
	Range    port.Range
	Secure   bool
	Projects []port.Identifier

	// Workspace is nil for ad-hoc plans built from Overrides.Projects
	Workspace *config.Workspace
}

// Plan builds allocation inputs. Ad-hoc service names bypass the workspace
// file and use the default range unless one is given.
func (a *App) Plan(ov Overrides) (*Plan, error) {
	p := &Plan{}

	if len(ov.Projects) > 0 {
		p.Range = port.DefaultRange
		p.Projects = make([]port.Identifier, len(ov.Projects))
		for i, name := range ov.Projects {
			p.Projects[i] = port.Identifier(name)
		}
	} else {
		ws, err := a.LoadWorkspace()
		if err != nil {
			return nil, err
		}
		p.Workspace = ws
		p.Range = ws.Range()
		p.Secure = ws.Ports.Secure
		p.Projects = ws.Projects()
	}

	if ov.Range != nil {
		p.Range = *ov.Range
	}
	if ov.Secure != nil {
		p.Secure = *ov.Secure
	}

	return p, nil
}

// Assign runs the allocator for the plan.
func (p *Plan) Assign() (*port.Assignment, error) {
	a, err := port.ComputeProjectsPort(p.Range, p.Projects, p.Secure)
	if err != nil {
		return nil, wrapAllocationError(err)
	}

	if logging.DebugEnabled() {
		logging.Debug("assigned ports",
			"services", len(p.Projects),
			"keys", a.Len(),
			"range", p.Range.String(),
			"secure", p.Secure,
			"fingerprint", a.Fingerprint())
	}
	return a, nil
}

// Explain runs the allocator and returns per-key placements.
func (p *Plan) Explain() ([]port.Placement, error) {
	placements, err := port.Explain(p.Range, p.Projects, p.Secure)
	if err != nil {
		return nil, wrapAllocationError(err)
	}
	return placements, nil
}

// Service returns the workspace entry for name, or a bare entry for ad-hoc
// plans that list it.
func (p *Plan) Service(name string) (*config.Service, error) {
	if p.Workspace != nil {
		if svc, ok := p.Workspace.Service(name); ok {
			return svc, nil
		}
		return nil, errors.ServiceNotFound(name)
	}

	for _, id := range p.Projects {
		if string(id) == name {
			return &config.Service{Name: name}, nil
		}
	}
	return nil, errors.ServiceNotFound(name)
}

func wrapAllocationError(err error) error {
	var projErr *port.InvalidProjectError
	switch {
	case errors.Is(err, port.ErrRangeTooSmall):
		return errors.RangeTooSmall(err)
	case errors.As(err, &projErr):
		return errors.ValidationError(projErr.Error())
	default:
		return errors.InvalidRange(err)
	}
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
