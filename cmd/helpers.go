package cmd

import (
	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/port"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/render"
)

// overrides collects the allocation flags shared by every command.
func overrides(projects []string) (app.Overrides, error) {
	ov := app.Overrides{Projects: projects}

	if secureFlag && noSecureFlag {
		return ov, errors.ValidationError("--secure and --no-secure cannot be used together")
	}
	if secureFlag || noSecureFlag {
		secure := secureFlag
		ov.Secure = &secure
	}

	if rangeFlag != "" {
		r, err := port.ParseRange(rangeFlag)
		if err != nil {
			return ov, errors.InvalidRange(err)
		}
		ov.Range = &r
	}

	return ov, nil
}

// loadPlan builds the allocation plan from flags and the workspace file.
func loadPlan(projects []string) (*app.Plan, error) {
	ov, err := overrides(projects)
	if err != nil {
		return nil, err
	}
	return app.Default.Plan(ov)
}

// loadServicePorts assigns ports for the plan and returns the ports of one
// service.
func loadServicePorts(name string) (*app.Plan, render.Ports, error) {
	plan, err := loadPlan(nil)
	if err != nil {
		return nil, render.Ports{}, err
	}
	if _, err := plan.Service(name); err != nil {
		return nil, render.Ports{}, err
	}

	a, err := plan.Assign()
	if err != nil {
		return nil, render.Ports{}, err
	}

	p, ok := render.PortsFor(a, name)
	if !ok {
		return nil, render.Ports{}, errors.ServiceNotFound(name)
	}
	return plan, p, nil
}
