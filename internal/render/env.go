package render

import (
	"fmt"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/port"
)

// Ports holds the ports of one service. TLSPort is zero when secure ports are
// disabled.
type Ports struct {
	Name    string
	Port    int
	TLSPort int
}

// PortsFor extracts the ports of a service from an assignment.
func PortsFor(a *port.Assignment, name string) (Ports, bool) {
	id := port.Identifier(name)

	plain, ok := a.PlainPort(id)
	if !ok {
		return Ports{}, false
	}

	p := Ports{Name: name, Port: plain}
	if tls, ok := a.TLSPort(id); ok {
		p.TLSPort = tls
	}
	return p, true
}

// EnvName returns the environment variable name for a service and suffix,
// e.g. ("web-api", "TLS_PORT") gives WEB_API_TLS_PORT.
func EnvName(service, suffix string) string {
	var sb strings.Builder
	for _, r := range strings.ToUpper(service) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}

	name := sb.String()
	if name != "" && name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name + "_" + suffix
}

// Env returns KEY=value pairs for a service. With generic set, PORT and
// TLS_PORT are included as well.
func Env(p Ports, generic bool) []string {
	env := []string{fmt.Sprintf("%s=%d", EnvName(p.Name, "PORT"), p.Port)}
	if p.TLSPort != 0 {
		env = append(env, fmt.Sprintf("%s=%d", EnvName(p.Name, "TLS_PORT"), p.TLSPort))
	}

	if generic {
		env = append(env, fmt.Sprintf("PORT=%d", p.Port))
		if p.TLSPort != 0 {
			env = append(env, fmt.Sprintf("TLS_PORT=%d", p.TLSPort))
		}
	}
	return env
}

// ExportLines renders KEY=value pairs as shell export statements.
func ExportLines(env []string) string {
	var sb strings.Builder
	for _, kv := range env {
		sb.WriteString(shellquote.Join("export", kv))
		sb.WriteByte('\n')
	}
	return sb.String()
}
