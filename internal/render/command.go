package render

import (
	"fmt"
	"strconv"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
)

// Command placeholders.
const (
	PlaceholderPort    = "{port}"
	PlaceholderTLSPort = "{tls_port}"
	PlaceholderName    = "{name}"
)

// Command expands placeholders in a service command and splits it into argv.
func Command(template string, p Ports) ([]string, error) {
	if strings.TrimSpace(template) == "" {
		return nil, fmt.Errorf("service %s has no command", p.Name)
	}
	if strings.Contains(template, PlaceholderTLSPort) && p.TLSPort == 0 {
		return nil, fmt.Errorf("service %s command uses %s but secure ports are disabled", p.Name, PlaceholderTLSPort)
	}

	expanded := strings.NewReplacer(
		PlaceholderPort, strconv.Itoa(p.Port),
		PlaceholderTLSPort, strconv.Itoa(p.TLSPort),
		PlaceholderName, p.Name,
	).Replace(template)

	argv, err := shellquote.Split(expanded)
	if err != nil {
		return nil, fmt.Errorf("invalid command for service %s: %w", p.Name, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("service %s has no command", p.Name)
	}
	return argv, nil
}

// CommandLine joins argv back into a single shell-safe line.
func CommandLine(argv []string) string {
	return shellquote.Join(argv...)
}
