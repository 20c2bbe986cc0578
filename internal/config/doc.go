// Package config provides workspace configuration loading for forage-ports.
//
// # Workspace Files
//
// A workspace file lists the services that need ports and the range they are
// drawn from. TOML is the primary format; YAML is accepted for workspaces
// that already keep their tooling config in YAML:
//
//	forage-ports.toml
//	forage-ports.yaml / forage-ports.yml
//
// Example:
//
//	discover = "services"
//
//	[ports]
//	min = 49152
//	max = 65535
//	secure = true
//
//	[[services]]
//	name = "users"
//	dir = "users"
//	command = "go run ./cmd/users --http {port} --https {tls_port}"
//
// # Locating the File
//
// Resolve picks the file to load: an explicit --config path, then
// $FORAGE_PORTS_CONFIG, then the nearest workspace file found by walking up
// from the current directory.
//
// # Discovery
//
// When discover is set, every subdirectory of that directory holding a
// forage-service.toml marker becomes a service, named after the directory
// unless the marker sets a name. Discovered services follow declared ones in
// directory name order; a declared service with the same name wins. Paths
// are resolved with filepath-securejoin so discovery never leaves the
// workspace root.
//
// # Validation
//
// Load validates after parsing: the range must be a valid non-empty TCP port
// range and service names must be unique and well formed. Unknown keys are
// rejected in both formats.
package config
