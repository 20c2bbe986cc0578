// Package render turns a port assignment into the forms other tools consume.
//
// # Environment
//
// Each service gets <NAME>_PORT and, with secure ports, <NAME>_TLS_PORT.
// Names are upper-cased and every character outside [A-Z0-9] becomes "_":
//
//	p, _ := render.PortsFor(assignment, "users")
//	fmt.Print(render.ExportLines(render.Env(p, true)))
//	// export USERS_PORT=49731
//	// export USERS_TLS_PORT=61020
//	// export PORT=49731
//	// export TLS_PORT=61020
//
// # Commands
//
// Service commands may reference {port}, {tls_port} and {name}. Command
// expands the placeholders and splits the result with shell quoting rules:
//
//	argv, err := render.Command("serve --listen :{port}", p)
//
// # Listings
//
// Table and JSON write the full assignment for the assign command; Explain
// writes the per-key placement report.
package render
